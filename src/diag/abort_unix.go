// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package diag

import (
	"runtime/debug"
	"time"

	"golang.org/x/sys/unix"
)

// abort raises SIGABRT against the current process. With the traceback level
// set to "crash" the Go runtime re-raises the signal with the default action
// after dumping goroutines, which leaves a core file behind.
func abort() {
	debug.SetTraceback("crash")
	if err := unix.Kill(unix.Getpid(), unix.SIGABRT); err != nil {
		return
	}
	// Delivery is asynchronous.
	time.Sleep(time.Second)
}
