// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diag_test

import (
	"bytes"
	"testing"

	"github.com/H0llyW00dzZ/syscall-lab/src/diag"
	"github.com/stretchr/testify/require"
)

// exitSignal and abortSignal are panicked by fakeTerminator so a terminating
// call never returns to the code under test.
type exitSignal struct{ code int }

type abortSignal struct{}

type fakeTerminator struct {
	exits  []int
	aborts int
}

func (f *fakeTerminator) Exit(code int) {
	f.exits = append(f.exits, code)
	panic(exitSignal{code: code})
}

func (f *fakeTerminator) Abort() {
	f.aborts++
	panic(abortSignal{})
}

// flushRecorder is a buffered stream that records how often it was flushed.
type flushRecorder struct {
	bytes.Buffer
	flushes int
}

func (f *flushRecorder) Flush() error {
	f.flushes++
	return nil
}

// harness bundles a reporter with its observable collaborators.
type harness struct {
	rep    *diag.Reporter
	stderr *flushRecorder
	stdout *flushRecorder
	term   *fakeTerminator
}

func newHarness(t *testing.T, dumpCore bool, opts ...diag.Option) *harness {
	t.Helper()
	h := &harness{
		stderr: &flushRecorder{},
		stdout: &flushRecorder{},
		term:   &fakeTerminator{},
	}
	base := []diag.Option{
		diag.WithStderr(h.stderr),
		diag.WithStdout(h.stdout),
		diag.WithTerminator(h.term),
		diag.WithDumpCore(func() bool { return dumpCore }),
	}
	h.rep = diag.New(append(base, opts...)...)
	return h
}

// terminates runs fn and returns what it panicked with.
func terminates(t *testing.T, fn func()) (sig any) {
	t.Helper()
	defer func() { sig = recover() }()
	fn()
	require.Fail(t, "expected the call to terminate")
	return nil
}
