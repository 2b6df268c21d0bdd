// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package varargs shows two ways of consuming a variable argument list: a
// homogeneous fold and a directive-driven walk over values of mixed types.
package varargs

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoDirectives is returned by [Walk] for an empty directive string.
var ErrNoDirectives = errors.New("varargs: no directives")

// Pair is the structured value consumed by the 'p' directive.
type Pair struct {
	A int
	B int
}

// MismatchError reports a directive whose argument is missing or has the
// wrong type.
type MismatchError struct {
	// Index is the position of the directive.
	Index int
	// Directive is the offending directive character.
	Directive byte
	// Want names the expected type.
	Want string
	// Got is the supplied value; nil when the argument is missing.
	Got any
	// Missing is set when fewer arguments than directives were given.
	Missing bool
}

func (e *MismatchError) Error() string {
	if e.Missing {
		return fmt.Sprintf("varargs: directive %q at %d: missing %s argument", e.Directive, e.Index, e.Want)
	}
	return fmt.Sprintf("varargs: directive %q at %d: want %s, got %T", e.Directive, e.Index, e.Want, e.Got)
}

// BitwiseOr folds vals with |. No values yields zero.
func BitwiseOr(vals ...int) int {
	var r int
	for _, v := range vals {
		r |= v
	}
	return r
}

// Walk prints one line per directive, consuming one argument for each known
// directive:
//
//	s  string  "str = %s"
//	d  int     "int = %d"
//	p  Pair    "p.a = %d"
//
// Any other directive prints "unknown" and consumes nothing. Lines written
// before a mismatch stay written.
func Walk(w io.Writer, directives string, args ...any) error {
	if directives == "" {
		return ErrNoDirectives
	}

	next := 0
	take := func(i int, d byte, want string) (any, error) {
		if next >= len(args) {
			return nil, &MismatchError{Index: i, Directive: d, Want: want, Missing: true}
		}
		v := args[next]
		next++
		return v, nil
	}

	for i := 0; i < len(directives); i++ {
		d := directives[i]
		var err error
		switch d {
		case 's':
			err = walkOne(w, i, d, "string", take, func(v any) (string, bool) {
				s, ok := v.(string)
				return fmt.Sprintf("str = %s\n", s), ok
			})
		case 'd':
			err = walkOne(w, i, d, "int", take, func(v any) (string, bool) {
				n, ok := v.(int)
				return fmt.Sprintf("int = %d\n", n), ok
			})
		case 'p':
			err = walkOne(w, i, d, "Pair", take, func(v any) (string, bool) {
				switch p := v.(type) {
				case Pair:
					return fmt.Sprintf("p.a = %d\n", p.A), true
				case *Pair:
					if p != nil {
						return fmt.Sprintf("p.a = %d\n", p.A), true
					}
				}
				return "", false
			})
		default:
			_, err = io.WriteString(w, "unknown\n")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func walkOne(
	w io.Writer,
	i int,
	d byte,
	want string,
	take func(int, byte, string) (any, error),
	render func(any) (string, bool),
) error {
	v, err := take(i, d, want)
	if err != nil {
		return err
	}
	line, ok := render(v)
	if !ok {
		return &MismatchError{Index: i, Directive: d, Want: want, Got: v}
	}
	_, err = io.WriteString(w, line)
	return err
}
