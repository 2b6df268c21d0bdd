// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package fileio

import "golang.org/x/sys/unix"

func writev(fd int, iovs [][]byte) (int, error) { return unix.Writev(fd, iovs) }

func readv(fd int, iovs [][]byte) (int, error) { return unix.Readv(fd, iovs) }
