// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package diag implements the diagnostic reporter used by every syscall-lab
// command to report failures on the standard error stream.
//
// A diagnostic is a single line. When an OS error code is attached the line reads
//
//	ERROR [ENOENT No such file or directory] cannot open /tmp/x
//
// and without one it reads
//
//	ERROR: cannot write the whole buffer
//
// After the line is written and flushed the reporter applies exactly one
// [Policy]:
//   - [Resume]: return to the caller
//   - [Exit]: flush registered streams, run [Reporter.AtExit] cleanups, exit with status 1
//   - [ExitNow]: skip flushing and cleanup, then dump core when EF_DUMPCORE is set or exit with status 1
//   - [Abort]: raise SIGABRT for a core dump when EF_DUMPCORE is set, otherwise behave like [Exit]
//
// The printf-style helpers mirror the classic error function family:
//
//	diag.Msgf(err, "partially write: %s", path)   // resume
//	diag.Exitf(err, "open file %s", path)         // abort policy
//	diag.ExitNowf(err, "fork")                    // immediate exit
//	diag.ExitENf(unix.EBUSY, "pthread_create")    // explicit error number
//	diag.Fatalf("cannot write the whole buffer")  // no OS suffix
//	diag.Usagef("%s copy src dst\n", exe)         // "Usage: " prefix
//	diag.CmdLinef("bad option %q\n", opt)         // verbatim
//
// The user text is rendered into a bounded buffer of [DefaultCapacity] bytes,
// and the assembled ERROR line, newline included, is held to the same bound.
// Longer text is truncated silently. Writing a diagnostic never fails
// observably.
//
// Terminating helpers do not return in production. Tests replace the process
// exit with [WithTerminator].
//
//go:generate go run ../../tools/codegen
package diag
