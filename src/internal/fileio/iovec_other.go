// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix && !linux

package fileio

import "golang.org/x/sys/unix"

// writev joins the vectors into one write so the transfer stays a single call.
func writev(fd int, iovs [][]byte) (int, error) {
	var joined []byte
	for _, v := range iovs {
		joined = append(joined, v...)
	}
	return unix.Write(fd, joined)
}

// readv performs one read and scatters the bytes across the vectors.
func readv(fd int, iovs [][]byte) (int, error) {
	size := 0
	for _, v := range iovs {
		size += len(v)
	}
	buf := make([]byte, size)
	n, err := unix.Read(fd, buf)
	if err != nil {
		return 0, err
	}
	rest := buf[:n]
	for _, v := range iovs {
		rest = rest[copy(v, rest):]
	}
	return n, nil
}
