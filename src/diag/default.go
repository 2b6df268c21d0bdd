// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diag

import (
	"sync/atomic"
	"syscall"
)

var std atomic.Pointer[Reporter]

func init() { std.Store(New()) }

// Default returns the process-wide reporter used by the package-level helpers.
func Default() *Reporter { return std.Load() }

// SetDefault replaces the process-wide reporter. A nil r is ignored.
func SetDefault(r *Reporter) {
	if r != nil {
		std.Store(r)
	}
}

// AtExit registers fn with the default reporter.
func AtExit(fn func()) { Default().AtExit(fn) }

// Report calls [Reporter.Report] on the default reporter.
func Report(p Policy, err error, format string, args ...any) {
	Default().Report(p, err, format, args...)
}

// Msgf calls [Reporter.Msgf] on the default reporter.
func Msgf(err error, format string, args ...any) { Default().Msgf(err, format, args...) }

// Exitf calls [Reporter.Exitf] on the default reporter.
func Exitf(err error, format string, args ...any) { Default().Exitf(err, format, args...) }

// ExitNowf calls [Reporter.ExitNowf] on the default reporter.
func ExitNowf(err error, format string, args ...any) { Default().ExitNowf(err, format, args...) }

// ExitENf calls [Reporter.ExitENf] on the default reporter.
func ExitENf(errno syscall.Errno, format string, args ...any) {
	Default().ExitENf(errno, format, args...)
}

// Fatalf calls [Reporter.Fatalf] on the default reporter.
func Fatalf(format string, args ...any) { Default().Fatalf(format, args...) }

// Usagef calls [Reporter.Usagef] on the default reporter.
func Usagef(format string, args ...any) { Default().Usagef(format, args...) }

// CmdLinef calls [Reporter.CmdLinef] on the default reporter.
func CmdLinef(format string, args ...any) { Default().CmdLinef(format, args...) }
