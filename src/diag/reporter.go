// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"syscall"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/syscall-lab/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/syscall-lab/src/internal/helper/posix"
	"github.com/fatih/color"
)

const (
	// DefaultCapacity bounds the rendered user text, the error suffix and the
	// assembled ERROR line.
	DefaultCapacity = 512

	// DumpCoreEnv is the environment toggle consulted by the [Abort] and
	// [ExitNow] policies.
	DumpCoreEnv = "EF_DUMPCORE"

	// UnknownName replaces the symbolic name of error codes outside the table.
	UnknownName = "?UNKNOWN?"

	usagePrefix = "Usage: "
	errorPrefix = "ERROR"
)

// Flusher is implemented by buffered streams such as [bufio.Writer].
type Flusher interface {
	Flush() error
}

// Reporter formats diagnostics, writes them to the error stream and applies a
// termination [Policy].
//
// A Reporter serialises its own writes but makes no further concurrency
// promises: cleanups registered with [Reporter.AtExit] run on the goroutine
// that triggered the exit.
type Reporter struct {
	mu       sync.Mutex
	stderr   io.Writer
	stdout   []Flusher
	cleanups []func()
	capacity int
	color    bool
	term     Terminator
	dumpCore func() bool
}

// Option configures a [Reporter].
type Option func(*Reporter)

// WithStderr sets the stream diagnostics are written to. Nil means [io.Discard].
func WithStderr(w io.Writer) Option {
	return func(r *Reporter) {
		if w == nil {
			w = io.Discard
		}
		r.stderr = w
	}
}

// WithStdout registers a buffered output stream that is flushed before each
// diagnostic and again on graceful exit.
func WithStdout(f Flusher) Option {
	return func(r *Reporter) {
		if f != nil {
			r.stdout = append(r.stdout, f)
		}
	}
}

// WithCapacity sets the bound applied to the user text and to each complete
// ERROR line, newline included. Values below one are ignored.
func WithCapacity(n int) Option {
	return func(r *Reporter) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// WithColor renders the ERROR prefix in bold red.
func WithColor(enabled bool) Option {
	return func(r *Reporter) { r.color = enabled }
}

// WithTerminator replaces the process-ending hooks.
func WithTerminator(t Terminator) Option {
	return func(r *Reporter) {
		if t != nil {
			r.term = t
		}
	}
}

// WithDumpCore replaces the core-dump toggle. The function is consulted only
// by the [Abort] and [ExitNow] policies, and its first result is cached.
func WithDumpCore(fn func() bool) Option {
	return func(r *Reporter) {
		if fn != nil {
			r.dumpCore = sync.OnceValue(fn)
		}
	}
}

// New returns a Reporter writing to [os.Stderr] and ending the real process.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		stderr:   os.Stderr,
		capacity: DefaultCapacity,
		term:     osTerminator{},
		dumpCore: sync.OnceValue(func() bool { return posix.EnvEnabled(DumpCoreEnv) }),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AtExit registers fn to run on graceful exit. Cleanups run last-registered first.
func (r *Reporter) AtExit(fn func()) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.cleanups = append(r.cleanups, fn)
	r.mu.Unlock()
}

// Report writes a diagnostic and applies p. A nil err produces the "ERROR:"
// form; otherwise the error number found in err's chain is appended. Standard
// output is flushed first unless p is [ExitNow].
func (r *Reporter) Report(p Policy, err error, format string, args ...any) {
	r.emit(err != nil, errnoOf(err), err, p != ExitNow, format, args)
	r.apply(p)
}

// Msgf reports err and returns.
func (r *Reporter) Msgf(err error, format string, args ...any) {
	r.emit(err != nil, errnoOf(err), err, true, format, args)
}

// Exitf reports err and terminates under the [Abort] policy.
func (r *Reporter) Exitf(err error, format string, args ...any) {
	r.emit(err != nil, errnoOf(err), err, true, format, args)
	r.apply(Abort)
}

// ExitNowf reports err without flushing standard output and ends the process
// at once, skipping registered cleanups. It dumps core when the core-dump
// toggle is set.
func (r *Reporter) ExitNowf(err error, format string, args ...any) {
	r.emit(err != nil, errnoOf(err), err, false, format, args)
	r.apply(ExitNow)
}

// ExitENf reports an explicit error number and terminates under the [Abort]
// policy. It suits APIs that return error numbers instead of setting errno.
func (r *Reporter) ExitENf(errno syscall.Errno, format string, args ...any) {
	r.emit(true, errno, nil, true, format, args)
	r.apply(Abort)
}

// Fatalf reports a logical failure without an OS suffix and terminates under
// the [Abort] policy.
func (r *Reporter) Fatalf(format string, args ...any) {
	r.emit(false, 0, nil, true, format, args)
	r.apply(Abort)
}

// Usagef writes "Usage: " followed by the rendered text and exits. No newline
// is added and the error table is never consulted.
func (r *Reporter) Usagef(format string, args ...any) {
	r.raw(usagePrefix, format, args)
	r.apply(Exit)
}

// CmdLinef writes the rendered text verbatim and exits.
func (r *Reporter) CmdLinef(format string, args ...any) {
	r.raw("", format, args)
	r.apply(Exit)
}

// emit builds and writes one diagnostic line.
func (r *Reporter) emit(useErr bool, errno syscall.Errno, err error, flushStdout bool, format string, args []any) {
	if flushStdout {
		r.flushStdout()
	}

	gc.With(func(line gc.Buffer) {
		if r.color {
			line.WriteString(errorColor().Sprint(errorPrefix))
		} else {
			line.WriteString(errorPrefix)
		}

		if useErr {
			name, desc := describeErr(errno, err)
			gc.With(func(suffix gc.Buffer) {
				fmt.Fprintf(suffix, " [%s %s]", name, desc)
				line.Write(bound(suffix.Bytes(), r.capacity))
			})
		} else {
			line.WriteByte(':')
		}

		line.WriteByte(' ')
		gc.With(func(msg gc.Buffer) {
			fmt.Fprintf(msg, format, args...)
			line.Write(bound(msg.Bytes(), r.capacity))
		})

		// The finished line, newline included, never exceeds the capacity.
		line.Set(bound(line.Bytes(), r.capacity-1))
		line.WriteByte('\n')

		r.write(line.Bytes())
	})
}

// raw writes prefix plus the rendered text, bounded like emit.
func (r *Reporter) raw(prefix, format string, args []any) {
	r.flushStdout()
	gc.With(func(line gc.Buffer) {
		line.WriteString(prefix)
		gc.With(func(msg gc.Buffer) {
			fmt.Fprintf(msg, format, args...)
			line.Write(bound(msg.Bytes(), r.capacity))
		})
		r.write(line.Bytes())
	})
}

func (r *Reporter) write(p []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.stderr.Write(p)
	if f, ok := r.stderr.(Flusher); ok {
		_ = f.Flush()
	}
}

func (r *Reporter) flushStdout() {
	r.mu.Lock()
	streams := append([]Flusher(nil), r.stdout...)
	r.mu.Unlock()
	for _, f := range streams {
		_ = f.Flush()
	}
}

// apply carries out p. Terminating policies do not return unless the
// configured [Terminator] does.
func (r *Reporter) apply(p Policy) {
	switch p {
	case Resume:
		return
	case ExitNow:
		if r.dumpCore() {
			r.term.Abort()
			return
		}
		r.term.Exit(ExitFailure)
	case Abort:
		if r.dumpCore() {
			r.term.Abort()
			return
		}
		r.exit()
	default:
		r.exit()
	}
}

// exit is the graceful path: flush, cleanups in reverse order, then exit.
func (r *Reporter) exit() {
	r.flushStdout()

	r.mu.Lock()
	cleanups := r.cleanups
	r.cleanups = nil
	r.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		runCleanup(cleanups[i])
	}
	r.flushStdout()
	r.term.Exit(ExitFailure)
}

// runCleanup isolates a panicking cleanup so the exit still happens.
func runCleanup(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// errnoOf extracts the error number carried by err, if any.
func errnoOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}

// describeErr resolves the suffix parts. Errors without an error number keep
// their own text as the description.
func describeErr(errno syscall.Errno, err error) (name, desc string) {
	if errno == 0 && err != nil {
		return UnknownName, err.Error()
	}
	return Lookup(errno)
}

// bound truncates p to at most n bytes without splitting a UTF-8 sequence.
func bound(p []byte, n int) []byte {
	if len(p) <= n {
		return p
	}
	p = p[:n]
	for i := len(p) - 1; i >= 0 && i >= len(p)-utf8.UTFMax; i-- {
		if utf8.RuneStart(p[i]) {
			if !utf8.FullRune(p[i:]) {
				p = p[:i]
			}
			break
		}
	}
	return p
}

var errorColor = sync.OnceValue(func() *color.Color {
	c := color.New(color.FgRed, color.Bold)
	c.EnableColor()
	return c
})
