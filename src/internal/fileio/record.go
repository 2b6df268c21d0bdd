// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package fileio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/sys/unix"
)

// TextLen is the fixed size of [Record.Text] on disk.
const TextLen = 128

// RecordSize is the on-disk size of a [Record]: two float64 values, one int32
// and the text, in native byte order without padding.
const RecordSize = 8 + 8 + 4 + TextLen

// Record is the three-part value moved by [WriteRecord] and [ReadRecord].
// Each part travels in its own I/O vector.
type Record struct {
	X, Y float64
	N    int32
	Text [TextLen]byte
}

// DefaultRecord returns the sample record: the point (2, 2), the number 23
// and a text of 'c' bytes.
func DefaultRecord() Record {
	rec := Record{X: 2, Y: 2, N: 23}
	for i := range rec.Text {
		rec.Text[i] = 'c'
	}
	return rec
}

// String returns the text up to its first NUL byte.
func (r Record) String() string {
	if i := bytes.IndexByte(r.Text[:], 0); i >= 0 {
		return string(r.Text[:i])
	}
	return string(r.Text[:])
}

// Transfer summarises one vectored transfer.
type Transfer struct {
	// Total is the number of bytes requested.
	Total int
	// Done is the number of bytes moved.
	Done int
	// Partial is set when Done < Total.
	Partial bool
}

// WriteRecord writes rec to path with a single gather write. The file is
// created with mode 0600 if needed and is not truncated. A short write is
// reported through [Transfer.Partial], not as an error.
func WriteRecord(path string, rec Record) (Transfer, error) {
	fd, err := Open(path, unix.O_WRONLY|unix.O_CREAT, 0o600)
	if err != nil {
		return Transfer{}, err
	}

	point := make([]byte, 16)
	binary.NativeEndian.PutUint64(point[0:], math.Float64bits(rec.X))
	binary.NativeEndian.PutUint64(point[8:], math.Float64bits(rec.Y))
	num := make([]byte, 4)
	binary.NativeEndian.PutUint32(num, uint32(rec.N))
	iovs := [][]byte{point, num, rec.Text[:]}

	n, werr := writev(fd, iovs)
	if cerr := Close(fd); werr == nil && cerr != nil {
		return Transfer{}, cerr
	}
	if werr != nil {
		return Transfer{}, fmt.Errorf("writev %s: %w", path, werr)
	}
	return transfer(n), nil
}

// ReadRecord reads a record from path with a single scatter read. Parts not
// covered by a short read keep their zero value.
func ReadRecord(path string) (Record, Transfer, error) {
	fd, err := Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return Record{}, Transfer{}, err
	}

	point := make([]byte, 16)
	num := make([]byte, 4)
	var rec Record
	iovs := [][]byte{point, num, rec.Text[:]}

	n, rerr := readv(fd, iovs)
	if cerr := Close(fd); rerr == nil && cerr != nil {
		return Record{}, Transfer{}, cerr
	}
	if rerr != nil {
		return Record{}, Transfer{}, fmt.Errorf("readv %s: %w", path, rerr)
	}

	if n >= 16 {
		rec.X = math.Float64frombits(binary.NativeEndian.Uint64(point[0:]))
		rec.Y = math.Float64frombits(binary.NativeEndian.Uint64(point[8:]))
	}
	if n >= 20 {
		rec.N = int32(binary.NativeEndian.Uint32(num))
	}
	return rec, transfer(n), nil
}

func transfer(n int) Transfer {
	return Transfer{Total: RecordSize, Done: n, Partial: n < RecordSize}
}
