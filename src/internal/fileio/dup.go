// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package fileio

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// DupPlan selects the descriptors used by [DupDemo].
type DupPlan struct {
	// Source is the descriptor being duplicated, usually standard output.
	Source int
	// Target is the exact descriptor requested from dup2. An open Target is
	// closed first.
	Target int
	// Floor is closed and then used as the minimum for fcntl(F_DUPFD).
	Floor int
	// CloseStdin closes descriptor 0 before the plain dup so the copy lands on it.
	CloseStdin bool
}

// DupResult holds the descriptors produced by [DupDemo].
type DupResult struct {
	Dup   int
	Dup2  int
	DupFD int
}

// Descriptors returns every descriptor in r, in creation order.
func (r DupResult) Descriptors() []int { return []int{r.Dup, r.Dup2, r.DupFD} }

// Dup duplicates fd onto the lowest free descriptor.
func Dup(fd int) (int, error) {
	nfd, err := unix.Dup(fd)
	if err != nil {
		return -1, fmt.Errorf("dup %d: %w", fd, err)
	}
	return nfd, nil
}

// Dup2 makes newfd refer to the same open file description as oldfd.
// Duplicating a valid descriptor onto itself returns it unchanged.
func Dup2(oldfd, newfd int) (int, error) {
	if err := dup2(oldfd, newfd); err != nil {
		return -1, fmt.Errorf("dup2 %d onto %d: %w", oldfd, newfd, err)
	}
	return newfd, nil
}

// DupFrom duplicates fd onto the lowest free descriptor not below floor.
func DupFrom(fd, floor int) (int, error) {
	nfd, err := unix.FcntlInt(uintptr(fd), unix.F_DUPFD, floor)
	if err != nil {
		return -1, fmt.Errorf("fcntl(F_DUPFD) %d from %d: %w", fd, floor, err)
	}
	return nfd, nil
}

// DupDemo runs the three duplication calls described by plan. The returned
// descriptors stay open and belong to the caller.
func DupDemo(plan DupPlan) (DupResult, error) {
	var res DupResult

	if plan.CloseStdin {
		if err := Close(0); err != nil {
			return res, err
		}
	}

	var err error
	if res.Dup, err = Dup(plan.Source); err != nil {
		return res, err
	}
	if res.Dup2, err = Dup2(plan.Source, plan.Target); err != nil {
		return res, err
	}

	// The floor may legitimately be closed already.
	if err := unix.Close(plan.Floor); err != nil && !errors.Is(err, unix.EBADF) {
		return res, fmt.Errorf("close file descriptor %d: %w", plan.Floor, err)
	}
	if res.DupFD, err = DupFrom(plan.Source, plan.Floor); err != nil {
		return res, err
	}
	return res, nil
}
