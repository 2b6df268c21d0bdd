// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build linux

package diag_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"testing"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/syscall-lab/src/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitfOpenFailure(t *testing.T) {
	h := newHarness(t, false)

	sig := terminates(t, func() {
		h.rep.Exitf(syscall.ENOENT, "cannot open %s", "/tmp/x")
	})

	assert.Equal(t, exitSignal{code: diag.ExitFailure}, sig)
	assert.Equal(t, "ERROR [ENOENT No such file or directory] cannot open /tmp/x\n", h.stderr.String())
	assert.Equal(t, []int{1}, h.term.exits)
	assert.Positive(t, h.stderr.flushes, "stderr must be flushed")
}

func TestReportFormats(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "WrappedPathError",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				_, err := os.Open(t.TempDir() + "/missing")
				require.Error(t, err)

				h.rep.Msgf(fmt.Errorf("copy: %w", err), "open file %s", "missing")

				assert.Equal(t, "ERROR [ENOENT No such file or directory] open file missing\n", h.stderr.String())
			},
		},
		{
			name: "NilErrorHasNoSuffix",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				h.rep.Msgf(nil, "nothing to see")
				assert.Equal(t, "ERROR: nothing to see\n", h.stderr.String())
			},
		},
		{
			name: "ForeignErrorUsesUnknownMarker",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				h.rep.Msgf(errors.New("short read"), "readv %s", "f")
				assert.Equal(t, "ERROR [?UNKNOWN? short read] readv f\n", h.stderr.String())
			},
		},
		{
			name: "OutOfRangeErrno",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				errno := diag.MaxErrno() + 50
				h.rep.Report(diag.Resume, errno, "odd")
				want := fmt.Sprintf("ERROR [?UNKNOWN? Unknown error %d] odd\n", errno)
				assert.Equal(t, want, h.stderr.String())
			},
		},
		{
			name: "Fatal",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				terminates(t, func() { h.rep.Fatalf("cannot write the whole buffer") })
				assert.Equal(t, "ERROR: cannot write the whole buffer\n", h.stderr.String())
			},
		},
		{
			name: "Usage",
			testFunc: func(t *testing.T) {
				h := newHarness(t, true)
				sig := terminates(t, func() { h.rep.Usagef("%s copy src-file dst-file\n", "syscall-lab") })
				assert.Equal(t, exitSignal{code: 1}, sig, "usage never aborts")
				assert.Equal(t, "Usage: syscall-lab copy src-file dst-file\n", h.stderr.String())
			},
		},
		{
			name: "CmdLine",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				terminates(t, func() { h.rep.CmdLinef("unknown flag %q\n", "--x") })
				assert.Equal(t, "unknown flag \"--x\"\n", h.stderr.String())
			},
		},
		{
			name: "ExplicitErrno",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				terminates(t, func() { h.rep.ExitENf(syscall.EBUSY, "pthread_mutex_lock") })
				assert.Equal(t, "ERROR [EBUSY Device or resource busy] pthread_mutex_lock\n", h.stderr.String())
			},
		},
		{
			name: "Color",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false, diag.WithColor(true))
				h.rep.Msgf(nil, "tinted")
				out := h.stderr.String()
				assert.Contains(t, out, "\x1b[")
				assert.Contains(t, out, "ERROR")
				assert.True(t, strings.HasSuffix(out, ": tinted\n"), out)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestKnownCodesCarryNameAndDescription(t *testing.T) {
	for _, e := range diag.Table() {
		h := newHarness(t, false)
		h.rep.Msgf(e.Code, "code %d", int(e.Code))

		out := h.stderr.String()
		assert.Contains(t, out, "["+e.Name+" ", "code %d", e.Code)
		assert.NotEmpty(t, e.Description, "code %d", e.Code)
		assert.NotContains(t, out, diag.UnknownName, "code %d", e.Code)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	msgs := []string{"", "x", "cannot open /tmp/x", strings.Repeat("a", diag.DefaultCapacity-len("ERROR: \n")), "héllo wörld"}

	for _, msg := range msgs {
		h := newHarness(t, false)
		h.rep.Msgf(nil, "%s", msg)
		assert.Equal(t, "ERROR: "+msg+"\n", h.stderr.String())
	}
}

func TestMessageTruncation(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		msg      string
		want     string
	}{
		{
			name:     "AtCapacity",
			capacity: diag.DefaultCapacity,
			msg:      strings.Repeat("b", diag.DefaultCapacity-len("ERROR: \n")),
			want:     "ERROR: " + strings.Repeat("b", diag.DefaultCapacity-len("ERROR: \n")) + "\n",
		},
		{
			name:     "BeyondCapacity",
			capacity: diag.DefaultCapacity,
			msg:      strings.Repeat("c", 4*diag.DefaultCapacity),
			want:     "ERROR: " + strings.Repeat("c", diag.DefaultCapacity-len("ERROR: \n")) + "\n",
		},
		{
			name:     "SmallCapacity",
			capacity: 16,
			msg:      "truncate me",
			want:     "ERROR: truncate\n",
		},
		{
			name:     "NoSplitRune",
			capacity: 12,
			msg:      "abcdé",
			want:     "ERROR: abcd\n",
		},
		{
			name:     "SmallerThanPrefix",
			capacity: 4,
			msg:      "gone",
			want:     "ERR\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, false, diag.WithCapacity(tt.capacity))
			assert.NotPanics(t, func() { h.rep.Msgf(nil, "%s", tt.msg) })

			got := h.stderr.String()
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), tt.capacity)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestLineBound(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "LongSuffixAndMessage",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				cause := errors.New(strings.Repeat("s", 2*diag.DefaultCapacity))
				h.rep.Msgf(cause, "%s", strings.Repeat("m", 2*diag.DefaultCapacity))

				out := h.stderr.String()
				assert.Len(t, out, diag.DefaultCapacity)
				assert.True(t, strings.HasPrefix(out, "ERROR [?UNKNOWN? sss"), out)
				assert.True(t, strings.HasSuffix(out, "s\n"), "the suffix alone fills the line")
				assert.NotContains(t, out, "m")
			},
		},
		{
			name: "MessageCutAfterKnownSuffix",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				h.rep.Msgf(syscall.ENOENT, "%s", strings.Repeat("é", diag.DefaultCapacity))

				out := h.stderr.String()
				assert.LessOrEqual(t, len(out), diag.DefaultCapacity)
				assert.True(t, strings.HasPrefix(out, "ERROR [ENOENT No such file or directory] éé"), out)
				assert.True(t, strings.HasSuffix(out, "é\n"), out)
				assert.True(t, utf8.ValidString(out))
			},
		},
		{
			name: "ShortLineUntouched",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false, diag.WithCapacity(64))
				h.rep.Msgf(syscall.EBADF, "close %d", 7)
				assert.Equal(t, "ERROR [EBADF Bad file descriptor] close 7\n", h.stderr.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestPolicies(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "ResumeReturnsOnce",
			testFunc: func(t *testing.T) {
				h := newHarness(t, true)
				returned := 0
				h.rep.Report(diag.Resume, syscall.EIO, "partial")
				returned++

				assert.Equal(t, 1, returned)
				assert.Empty(t, h.term.exits)
				assert.Zero(t, h.term.aborts)
			},
		},
		{
			name: "GracefulExitFlushesAndRunsCleanupsInReverse",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				var order []string
				h.rep.AtExit(func() { order = append(order, "first") })
				h.rep.AtExit(func() { order = append(order, "second") })
				h.stdout.WriteString("pending output")

				sig := terminates(t, func() { h.rep.Report(diag.Exit, nil, "bye") })

				assert.Equal(t, exitSignal{code: 1}, sig)
				assert.Equal(t, []string{"second", "first"}, order)
				assert.GreaterOrEqual(t, h.stdout.flushes, 2, "stdout flushed before writing and before exit")
				assert.Positive(t, h.stderr.flushes)
			},
		},
		{
			name: "PanickingCleanupStillExits",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				ran := false
				h.rep.AtExit(func() { ran = true })
				h.rep.AtExit(func() { panic("boom") })

				sig := terminates(t, func() { h.rep.Report(diag.Exit, nil, "bye") })

				assert.Equal(t, exitSignal{code: 1}, sig)
				assert.True(t, ran)
			},
		},
		{
			name: "ExitNowSkipsFlushAndCleanups",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				ran := false
				h.rep.AtExit(func() { ran = true })

				sig := terminates(t, func() { h.rep.ExitNowf(syscall.EFAULT, "state is unsafe") })

				assert.Equal(t, exitSignal{code: 1}, sig)
				assert.False(t, ran)
				assert.Zero(t, h.stdout.flushes)
				assert.Zero(t, h.term.aborts)
				assert.Equal(t, "ERROR [EFAULT Bad address] state is unsafe\n", h.stderr.String())
			},
		},
		{
			name: "ExitNowDumpsCoreWithToggle",
			testFunc: func(t *testing.T) {
				h := newHarness(t, true)
				ran := false
				h.rep.AtExit(func() { ran = true })

				sig := terminates(t, func() { h.rep.Report(diag.ExitNow, syscall.EFAULT, "state is unsafe") })

				assert.Equal(t, abortSignal{}, sig)
				assert.Equal(t, 1, h.term.aborts)
				assert.Empty(t, h.term.exits)
				assert.False(t, ran, "cleanups never run before the core dump")
				assert.Zero(t, h.stdout.flushes)
				assert.Equal(t, "ERROR [EFAULT Bad address] state is unsafe\n", h.stderr.String())
			},
		},
		{
			name: "AbortWithToggle",
			testFunc: func(t *testing.T) {
				h := newHarness(t, true)
				sig := terminates(t, func() { h.rep.Exitf(syscall.ENOMEM, "malloc") })

				assert.Equal(t, abortSignal{}, sig)
				assert.Equal(t, 1, h.term.aborts)
				assert.Empty(t, h.term.exits)
			},
		},
		{
			name: "AbortWithoutToggleFallsThroughToExit",
			testFunc: func(t *testing.T) {
				h := newHarness(t, false)
				ran := false
				h.rep.AtExit(func() { ran = true })

				sig := terminates(t, func() { h.rep.Report(diag.Abort, nil, "fallthrough") })

				assert.Equal(t, exitSignal{code: 1}, sig)
				assert.True(t, ran)
				assert.Zero(t, h.term.aborts)
			},
		},
		{
			name: "DumpCoreToggleReadOnce",
			testFunc: func(t *testing.T) {
				calls := 0
				h := newHarness(t, false, diag.WithDumpCore(func() bool {
					calls++
					return false
				}))

				for range 3 {
					terminates(t, func() { h.rep.Fatalf("again") })
				}
				assert.Equal(t, 1, calls)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestDumpCoreFromEnvironment(t *testing.T) {
	t.Setenv(diag.DumpCoreEnv, "1")

	term := &fakeTerminator{}
	stderr := &flushRecorder{}
	rep := diag.New(diag.WithStderr(stderr), diag.WithTerminator(term))

	sig := terminates(t, func() { rep.Fatalf("core please") })
	assert.Equal(t, abortSignal{}, sig)
}

func TestDefaultReporter(t *testing.T) {
	prev := diag.Default()
	t.Cleanup(func() { diag.SetDefault(prev) })

	h := newHarness(t, false)
	diag.SetDefault(h.rep)
	diag.SetDefault(nil)
	require.Same(t, h.rep, diag.Default())

	diag.Msgf(syscall.EACCES, "open %s", "/root")
	assert.Equal(t, "ERROR [EACCES Permission denied] open /root\n", h.stderr.String())

	sig := terminates(t, func() { diag.Usagef("x\n") })
	assert.Equal(t, exitSignal{code: 1}, sig)
}
