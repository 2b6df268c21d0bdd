// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diag

import (
	"fmt"
	"strings"
	"syscall"
	"unicode"
	"unicode/utf8"
)

// errnoEntry is one row of the error number table.
type errnoEntry struct {
	name string
	desc string
}

// Entry describes a known error number.
type Entry struct {
	Code        syscall.Errno
	Name        string
	Description string
}

// MaxErrno returns the highest error number the table knows about.
func MaxErrno() syscall.Errno { return syscall.Errno(maxErrno) }

// Lookup returns the symbolic name and description of errno. Codes outside
// 1..[MaxErrno], and unused numbers inside that range, yield [UnknownName]
// and an "Unknown error N" description.
func Lookup(errno syscall.Errno) (name, desc string) {
	if e, ok := lookupEntry(errno); ok {
		return e.name, e.desc
	}
	return UnknownName, fmt.Sprintf("Unknown error %d", errno)
}

// Known reports whether errno has a symbolic name.
func Known(errno syscall.Errno) bool {
	_, ok := lookupEntry(errno)
	return ok
}

// ByName finds the error number for a symbolic name such as "ENOENT".
// Matching is case-insensitive.
func ByName(name string) (syscall.Errno, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	for i := syscall.Errno(1); i <= MaxErrno(); i++ {
		if e, ok := lookupEntry(i); ok && e.name == name {
			return i, true
		}
	}
	return 0, false
}

// Table returns every known error number in ascending order.
func Table() []Entry {
	out := make([]Entry, 0, maxErrno)
	for i := syscall.Errno(1); i <= MaxErrno(); i++ {
		if e, ok := lookupEntry(i); ok {
			out = append(out, Entry{Code: i, Name: e.name, Description: e.desc})
		}
	}
	return out
}

// describe renders the platform text for errno the way strerror(3) does,
// with a leading capital.
func describe(errno syscall.Errno) string {
	return capitalize(errno.Error())
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
