// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diag

import (
	"fmt"
	"strings"
)

// Policy selects what happens after a diagnostic has been written.
type Policy uint8

const (
	// Resume returns control to the caller.
	Resume Policy = iota
	// Exit flushes registered streams, runs cleanups and exits with [ExitFailure].
	Exit
	// ExitNow bypasses flushing and cleanups. It dumps core when the core-dump
	// toggle is set and otherwise exits with [ExitFailure].
	ExitNow
	// Abort dumps core when the core-dump toggle is set and otherwise behaves like Exit.
	Abort
)

// ExitFailure is the status used by every exiting policy.
const ExitFailure = 1

var policyNames = [...]string{
	Resume:  "resume",
	Exit:    "exit",
	ExitNow: "exit-now",
	Abort:   "abort",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// Terminates reports whether p ends the process.
func (p Policy) Terminates() bool { return p != Resume }

// ParsePolicy maps a policy name (as printed by [Policy.String]) back to its value.
func ParsePolicy(s string) (Policy, error) {
	for i, name := range policyNames {
		if strings.EqualFold(s, name) {
			return Policy(i), nil
		}
	}
	return Resume, fmt.Errorf("unknown policy %q (want one of %s)", s, strings.Join(policyNames[:], ", "))
}
