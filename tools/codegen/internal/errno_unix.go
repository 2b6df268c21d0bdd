// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package codegen

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// collectErrnos lists the named error numbers from 1 to limit.
func collectErrnos(limit int) ([]ErrnoEntry, error) {
	var entries []ErrnoEntry
	for i := 1; i <= limit; i++ {
		errno := syscall.Errno(i)
		name := unix.ErrnoName(errno)
		if name == "" {
			continue
		}
		entries = append(entries, ErrnoEntry{Code: i, Name: name, Desc: capitalize(errno.Error())})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no named error numbers up to %d", limit)
	}
	return entries, nil
}
