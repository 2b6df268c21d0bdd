// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// EnvEnabled reports whether the environment variable key is switched on.
//
// The variable is treated as boolean-ish: unset or empty is off, any value
// [strconv.ParseBool] understands is taken literally, and any other
// non-empty value is on.
func EnvEnabled(key string) bool { return ParseToggle(os.Getenv(key)) }

// ParseToggle applies the [EnvEnabled] rules to a raw value.
func ParseToggle(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}

// IsTerminal reports whether f refers to a terminal.
// A nil file is never a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
