// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix && (!linux || mips || mipsle || mips64 || mips64le)

package diag

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// scanLimit bounds the search for the highest named error number.
const scanLimit = 1024

var maxErrno = func() syscall.Errno {
	var highest syscall.Errno
	for i := syscall.Errno(1); i < scanLimit; i++ {
		if unix.ErrnoName(i) != "" {
			highest = i
		}
	}
	return highest
}()

func lookupEntry(errno syscall.Errno) (errnoEntry, bool) {
	if errno == 0 || errno > maxErrno {
		return errnoEntry{}, false
	}
	name := unix.ErrnoName(errno)
	if name == "" {
		return errnoEntry{}, false
	}
	return errnoEntry{name: name, desc: describe(errno)}, true
}
