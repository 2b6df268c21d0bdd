// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diag

import "os"

// Terminator performs the process-ending side of a [Policy].
//
// Implementations must not return from either method. Flushing and cleanup
// have already happened (or been skipped on purpose) by the time they are called.
type Terminator interface {
	// Exit ends the process with the given status.
	Exit(code int)
	// Abort ends the process abnormally, producing a core dump where the
	// platform and resource limits allow it.
	Abort()
}

// osTerminator ends the real process.
type osTerminator struct{}

func (osTerminator) Exit(code int) { os.Exit(code) }

func (osTerminator) Abort() {
	abort()
	// The signal was ignored or handled elsewhere.
	os.Exit(ExitFailure)
}
