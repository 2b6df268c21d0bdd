// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/H0llyW00dzZ/syscall-lab/src/internal/helper/gc"
	"golang.org/x/sys/unix"
)

const (
	// BufSize is the chunk size used by [Copy].
	BufSize = 8192

	// CreatePerm is the mode for files created by [Copy] (rw-rw-rw- before umask).
	CreatePerm os.FileMode = 0o666
)

var (
	// ErrInvalidSize reports a buffer or transfer size outside the accepted range.
	ErrInvalidSize = errors.New("invalid size")

	// ErrShortWrite reports a write that transferred fewer bytes than requested.
	ErrShortWrite = errors.New("short write")
)

// blank seeds pooled copy buffers to their working length.
var blank [BufSize]byte

// Open opens path and returns the new descriptor, which is always the lowest
// one not in use.
func Open(path string, flags int, mode os.FileMode) (int, error) {
	fd, err := unix.Open(path, flags|unix.O_CLOEXEC, uint32(mode.Perm()))
	if err != nil {
		return -1, fmt.Errorf("open file %s: %w", path, err)
	}
	return fd, nil
}

// Read reads at most len(buf) bytes. Zero bytes with a nil error means end of file.
func Read(fd int, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, fmt.Errorf("buffer size must be greater than zero, found %d: %w", len(buf), ErrInvalidSize)
	}
	n, err := unix.Read(fd, buf)
	if err != nil {
		return 0, fmt.Errorf("read from file descriptor %d: %w", fd, err)
	}
	return n, nil
}

// PRead reads at offset off without moving the file offset.
func PRead(fd int, buf []byte, off int64) (int, error) {
	if len(buf) == 0 {
		return 0, fmt.Errorf("buffer size must be greater than zero, found %d: %w", len(buf), ErrInvalidSize)
	}
	n, err := unix.Pread(fd, buf, off)
	if err != nil {
		return 0, fmt.Errorf("pread from file descriptor %d at %d: %w", fd, off, err)
	}
	return n, nil
}

// Write writes all of buf. A partial write is reported as [ErrShortWrite].
func Write(fd int, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, fmt.Errorf("write size must be greater than zero, found %d: %w", len(buf), ErrInvalidSize)
	}
	n, err := unix.Write(fd, buf)
	if err != nil {
		return n, fmt.Errorf("write to file descriptor %d: %w", fd, err)
	}
	if n != len(buf) {
		return n, fmt.Errorf("want %d but wrote %d: %w", len(buf), n, ErrShortWrite)
	}
	return n, nil
}

// Close closes fd.
func Close(fd int) error {
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("close file descriptor %d: %w", fd, err)
	}
	return nil
}

// Copy copies src to dst, creating or truncating dst, and returns the number
// of bytes copied.
func Copy(src, dst string) (written int64, err error) {
	srcFd, err := Open(src, unix.O_RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer closeInto(srcFd, "input", &err)

	dstFd, err := Open(dst, unix.O_CREAT|unix.O_WRONLY|unix.O_TRUNC, CreatePerm)
	if err != nil {
		return 0, err
	}
	defer closeInto(dstFd, "output", &err)

	gc.With(func(buf gc.Buffer) {
		buf.Set(blank[:])
		chunk := buf.Bytes()
		for {
			n, rerr := unix.Read(srcFd, chunk)
			if rerr != nil {
				err = fmt.Errorf("read %s: %w", src, rerr)
				return
			}
			if n == 0 {
				return
			}
			w, werr := unix.Write(dstFd, chunk[:n])
			written += int64(max(w, 0))
			if werr != nil {
				err = fmt.Errorf("write %s: %w", dst, werr)
				return
			}
			if w != n {
				err = fmt.Errorf("cannot write the whole buffer: %w", ErrShortWrite)
				return
			}
		}
	})
	return written, err
}

func closeInto(fd int, what string, err *error) {
	if cerr := unix.Close(fd); cerr != nil && *err == nil {
		*err = fmt.Errorf("close %s: %w", what, cerr)
	}
}

// ReadTerminal performs a single read of at most size-1 bytes, leaving room
// for a terminator the way a C buffer would. A terminal read returns at the
// end of a line.
func ReadTerminal(fd, size int) ([]byte, error) {
	if size <= 1 {
		return nil, fmt.Errorf("buffer size must be greater than 1, found %d: %w", size, ErrInvalidSize)
	}
	buf := make([]byte, size-1)
	n, err := unix.Read(fd, buf)
	if err != nil {
		return nil, fmt.Errorf("read from terminal: %w", err)
	}
	return buf[:n], nil
}

// SeekReverse writes data one byte at a time from last to first, seeking to
// the end of the file after each write. Without O_APPEND the bytes land in
// order of writing, which reverses data.
func SeekReverse(fd int, data []byte) error {
	for i := len(data) - 1; i >= 0; i-- {
		if _, err := Write(fd, data[i:i+1]); err != nil {
			return err
		}
		if _, err := unix.Seek(fd, 0, io.SeekEnd); err != nil {
			return fmt.Errorf("seek file descriptor %d: %w", fd, err)
		}
	}
	return nil
}

// Flags returns the open file status flags and access mode of fd.
func Flags(fd int) (int, error) {
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return 0, fmt.Errorf("fcntl: %w", err)
	}
	return flags, nil
}

// AccessMode renders the access mode held in flags, followed by any of the
// O_APPEND, O_NONBLOCK or O_SYNC status flags that are set.
func AccessMode(flags int) string {
	parts := make([]string, 0, 4)
	switch flags & unix.O_ACCMODE {
	case unix.O_RDONLY:
		parts = append(parts, "O_RDONLY")
	case unix.O_WRONLY:
		parts = append(parts, "O_WRONLY")
	case unix.O_RDWR:
		parts = append(parts, "O_RDWR")
	default:
		parts = append(parts, fmt.Sprintf("O_ACCMODE(%d)", flags&unix.O_ACCMODE))
	}

	for _, f := range statusFlags {
		if flags&f.bit == f.bit {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

var statusFlags = []struct {
	bit  int
	name string
}{
	{unix.O_APPEND, "O_APPEND"},
	{unix.O_NONBLOCK, "O_NONBLOCK"},
	{unix.O_SYNC, "O_SYNC"},
}
