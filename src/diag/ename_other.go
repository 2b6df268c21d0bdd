// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !unix

package diag

import "syscall"

// maxErrno is zero: no symbolic names are available off Unix.
const maxErrno = 0

func lookupEntry(syscall.Errno) (errnoEntry, bool) { return errnoEntry{}, false }
