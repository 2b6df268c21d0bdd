// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package fileio

import "golang.org/x/sys/unix"

// dup2 is built on dup3, which some Linux ports offer in place of dup2.
// dup3 rejects equal descriptors, so that case only validates oldfd.
func dup2(oldfd, newfd int) error {
	if oldfd == newfd {
		_, err := unix.FcntlInt(uintptr(oldfd), unix.F_GETFD, 0)
		return err
	}
	return unix.Dup3(oldfd, newfd, 0)
}
