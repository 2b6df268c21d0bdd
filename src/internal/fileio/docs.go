// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package fileio wraps the raw file descriptor system calls used by the
// syscall-lab examples.
//
// Every function works on plain integer descriptors through
// golang.org/x/sys/unix rather than [os.File], so the behaviour on display is
// that of the kernel interface: the lowest free descriptor is reused, offsets
// live in the shared open file description, and partial transfers are
// possible.
//
// Functions never terminate the process. Failures are returned as errors that
// wrap the underlying [syscall.Errno], so callers can hand them to the
// diagnostic reporter which prints the symbolic name:
//
//	fd, err := fileio.Open(path, unix.O_RDONLY, 0)
//	if err != nil {
//		diag.Exitf(err, "open file %s", path)
//	}
//
// Contract violations detected before any system call, such as a
// non-positive buffer size, are reported with [ErrInvalidSize].
package fileio
