// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package getnum converts command-line arguments to integers with the checks
// the syscall examples need: sign constraints, selectable bases and range
// checks for 32-bit values.
package getnum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Flag controls how an argument is parsed and validated.
type Flag uint16

const (
	// NonNeg rejects values below zero.
	NonNeg Flag = 0o1
	// GT0 rejects values below one.
	GT0 Flag = 0o2

	// AnyBase selects the base from a 0x (hexadecimal) or 0 (octal) prefix
	// like strtol(3) with base 0.
	AnyBase Flag = 0o100
	// Base8 parses octal.
	Base8 Flag = 0o200
	// Base16 parses hexadecimal, with or without a 0x prefix.
	Base16 Flag = 0o400
)

// Reasons reported in [Error].
var (
	ErrEmpty       = errors.New("null or empty string")
	ErrNonNumeric  = errors.New("nonnumeric characters")
	ErrNegative    = errors.New("negative value not allowed")
	ErrNotPositive = errors.New("value must be > 0")
	ErrRange       = errors.New("integer out of range")
)

// Error describes why an argument was rejected.
type Error struct {
	// Func is the parsing function, "GetLong" or "GetInt".
	Func string
	// Name identifies the argument in messages; it may be empty.
	Name string
	// Arg is the offending text.
	Arg string
	// Err is one of the Err* reasons.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Func)
	b.WriteString(" error")
	if e.Name != "" {
		fmt.Fprintf(&b, " (in %s)", e.Name)
	}
	fmt.Fprintf(&b, ": %s", e.Err)
	if e.Arg != "" {
		fmt.Fprintf(&b, "\n        offending text: %s", e.Arg)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Base returns the numeric base selected by flags.
func (f Flag) Base() int {
	switch {
	case f&AnyBase != 0:
		return 0
	case f&Base8 != 0:
		return 8
	case f&Base16 != 0:
		return 16
	default:
		return 10
	}
}

// GetLong parses arg as a 64-bit integer.
func GetLong(arg string, flags Flag, name string) (int64, error) {
	return getNum("GetLong", arg, flags, name)
}

// GetInt parses arg as an integer that must fit in 32 bits.
func GetInt(arg string, flags Flag, name string) (int32, error) {
	v, err := getNum("GetInt", arg, flags, name)
	if err != nil {
		return 0, err
	}
	n, err := safecast.Conv[int32](v)
	if err != nil {
		return 0, &Error{Func: "GetInt", Name: name, Arg: arg, Err: ErrRange}
	}
	return n, nil
}

func getNum(fn, arg string, flags Flag, name string) (int64, error) {
	fail := func(reason error) (int64, error) {
		return 0, &Error{Func: fn, Name: name, Arg: arg, Err: reason}
	}

	if arg == "" {
		return fail(ErrEmpty)
	}

	// strtol tolerates leading white space; nothing may trail the digits.
	text := strings.TrimLeft(arg, " \t\n\v\f\r")
	if text == "" {
		return fail(ErrNonNumeric)
	}

	digits, base, ok := strtolForm(text, flags.Base())
	if !ok {
		return fail(ErrNonNumeric)
	}

	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return fail(ErrRange)
		}
		return fail(ErrNonNumeric)
	}

	if flags&NonNeg != 0 && v < 0 {
		return fail(ErrNegative)
	}
	if flags&GT0 != 0 && v <= 0 {
		return fail(ErrNotPositive)
	}
	return v, nil
}

// strtolForm resolves the prefixes strtol(3) understands into an explicit
// base and returns the signed digits for [strconv.ParseInt]. Go-only syntax
// such as digit separators or 0o and 0b prefixes is rejected.
func strtolForm(text string, base int) (string, int, bool) {
	if strings.ContainsRune(text, '_') {
		return "", 0, false
	}

	var sign string
	if text[0] == '+' || text[0] == '-' {
		sign, text = text[:1], text[1:]
	}

	hex := len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
	switch {
	case base == 0 && hex:
		text, base = text[2:], 16
	case base == 0 && len(text) > 1 && text[0] == '0':
		text, base = text[1:], 8
	case base == 0:
		base = 10
	case base == 16 && hex:
		text = text[2:]
	}

	if text == "" || text[0] == '+' || text[0] == '-' {
		return "", 0, false
	}
	return sign + text, base, true
}
