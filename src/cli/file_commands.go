// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/syscall-lab/src/getnum"
	"github.com/H0llyW00dzZ/syscall-lab/src/internal/fileio"
	"github.com/H0llyW00dzZ/syscall-lab/src/internal/helper/posix"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

// fileCommands returns the descriptor-level examples.
func fileCommands(a *app) []*cobra.Command {
	return []*cobra.Command{
		a.copyCommand(),
		a.readCommand(),
		a.preadCommand(),
		a.seekCommand(),
		a.flagsCommand(),
		a.dupCommand(),
		a.writevCommand(),
		a.readvCommand(),
		a.termCommand(),
	}
}

// fail routes a file error to the reporter: short writes are logical
// failures, everything else carries an error number.
func (a *app) fail(err error, format string, args ...any) {
	if errors.Is(err, fileio.ErrShortWrite) || errors.Is(err, fileio.ErrInvalidSize) {
		a.rep.Fatalf("%s: %v", fmt.Sprintf(format, args...), err)
		return
	}
	a.rep.Exitf(err, format, args...)
}

func (a *app) copyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a file with read(2) and write(2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 2, 2) {
				return nil
			}
			n, err := fileio.Copy(args[0], args[1])
			if err != nil {
				a.fail(err, "copy %s to %s", args[0], args[1])
				return nil
			}
			a.log.Println(a.printer.Sprintf("copied %d bytes from %s to %s", n, args[0], args[1]))
			return nil
		},
	}
}

func (a *app) readCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read FILE",
		Short: "Read the start of a file with a single read(2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 1, 1) {
				return nil
			}
			size, ok := a.size(cmd, "size", a.cfg.IO.ReadSize)
			if !ok {
				return nil
			}
			fd, err := fileio.Open(args[0], unix.O_RDONLY, 0)
			if err != nil {
				a.fail(err, "open file %s", args[0])
				return nil
			}
			defer a.closeFd(fd)

			buf := make([]byte, size)
			n, err := fileio.Read(fd, buf)
			if err != nil {
				a.fail(err, "error when reading from file descriptor %d", fd)
				return nil
			}
			a.log.Printf("%s", buf[:n])
			return nil
		},
	}
	cmd.Flags().String("size", "", "number of bytes to read (default from config)")
	return cmd
}

func (a *app) preadCommand() *cobra.Command {
	var offset string
	cmd := &cobra.Command{
		Use:   "pread FILE",
		Short: "Read at an offset with pread(2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 1, 1) {
				return nil
			}
			off, ok := a.number(offset, getnum.NonNeg|getnum.AnyBase, "--offset")
			if !ok {
				return nil
			}
			size, ok := a.size(cmd, "size", a.cfg.IO.ReadSize)
			if !ok {
				return nil
			}
			fd, err := fileio.Open(args[0], unix.O_RDONLY, 0)
			if err != nil {
				a.fail(err, "open file %s", args[0])
				return nil
			}
			defer a.closeFd(fd)

			buf := make([]byte, size)
			n, err := fileio.PRead(fd, buf, off)
			if err != nil {
				a.fail(err, "error when reading from file descriptor %d", fd)
				return nil
			}
			a.log.Printf("%s", buf[:n])
			return nil
		},
	}
	cmd.Flags().StringVar(&offset, "offset", "0", "file offset to read from")
	cmd.Flags().String("size", "", "number of bytes to read (default from config)")
	return cmd
}

func (a *app) seekCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seek FILE TEXT",
		Short: "Write TEXT backwards, seeking to the end after every byte",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 2, 2) {
				return nil
			}
			fd, err := fileio.Open(args[0], unix.O_CREAT|unix.O_WRONLY|unix.O_TRUNC, 0o644)
			if err != nil {
				a.fail(err, "open file %s", args[0])
				return nil
			}
			defer a.closeFd(fd)

			if err := fileio.SeekReverse(fd, []byte(args[1])); err != nil {
				a.fail(err, "seek example on %s", args[0])
				return nil
			}
			a.log.Printf("wrote %d bytes to %s", len(args[1]), args[0])
			return nil
		},
	}
}

func (a *app) flagsCommand() *cobra.Command {
	var (
		mode     string
		appendTo bool
		nonBlock bool
		sync     bool
	)
	cmd := &cobra.Command{
		Use:   "flags FILE",
		Short: "Open FILE and show its status flags from fcntl(F_GETFL)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 1, 1) {
				return nil
			}
			var flags int
			switch strings.ToLower(mode) {
			case "r", "read":
				flags = unix.O_RDONLY
			case "w", "write":
				flags = unix.O_WRONLY
			case "rw", "rdwr":
				flags = unix.O_RDWR
			default:
				a.rep.Usagef("%s (--mode is r, w or rw)\n", cmd.UseLine())
				return nil
			}
			if appendTo {
				flags |= unix.O_APPEND
			}
			if nonBlock {
				flags |= unix.O_NONBLOCK
			}
			if sync {
				flags |= unix.O_SYNC
			}

			fd, err := fileio.Open(args[0], flags, 0)
			if err != nil {
				a.fail(err, "open file %s", args[0])
				return nil
			}
			defer a.closeFd(fd)

			got, err := fileio.Flags(fd)
			if err != nil {
				a.fail(err, "fcntl")
				return nil
			}
			a.log.Printf("%s %s (%#o)", args[0], fileio.AccessMode(got), got)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "r", "access mode: r, w or rw")
	cmd.Flags().BoolVar(&appendTo, "append", false, "open with O_APPEND")
	cmd.Flags().BoolVar(&nonBlock, "nonblock", false, "open with O_NONBLOCK")
	cmd.Flags().BoolVar(&sync, "sync", false, "open with O_SYNC")
	return cmd
}

func (a *app) dupCommand() *cobra.Command {
	var (
		closeStdin bool
		target     string
		floor      string
	)
	cmd := &cobra.Command{
		Use:   "dup",
		Short: "Duplicate standard output with dup, dup2 and fcntl(F_DUPFD)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 0, 0) {
				return nil
			}
			t, ok := a.descriptor(target, "--target")
			if !ok {
				return nil
			}
			f, ok := a.descriptor(floor, "--floor")
			if !ok {
				return nil
			}

			// Pending output must reach descriptor 1 before it is shared.
			a.flush()
			res, err := fileio.DupDemo(fileio.DupPlan{
				Source:     unix.Stdout,
				Target:     t,
				Floor:      f,
				CloseStdin: closeStdin,
			})
			if err != nil {
				a.fail(err, "dup example")
				return nil
			}
			for _, fd := range res.Descriptors() {
				a.rep.AtExit(func() { _ = unix.Close(fd) })
			}
			a.log.Printf("dup: %d, dup2: %d, fcntl(F_DUPFD): %d", res.Dup, res.Dup2, res.DupFD)
			return nil
		},
	}
	cmd.Flags().BoolVar(&closeStdin, "close-stdin", false, "close descriptor 0 first so dup lands on it")
	cmd.Flags().StringVar(&target, "target", "10", "descriptor requested from dup2")
	cmd.Flags().StringVar(&floor, "floor", "11", "lowest descriptor accepted by fcntl(F_DUPFD)")
	return cmd
}

func (a *app) writevCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "writev FILE",
		Short: "Write a three-part record with one writev(2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 1, 1) {
				return nil
			}
			tr, err := fileio.WriteRecord(args[0], fileio.DefaultRecord())
			if err != nil {
				a.fail(err, "writev %s", args[0])
				return nil
			}
			if tr.Partial {
				a.rep.Msgf(nil, "partially write: %s", args[0])
			}
			a.log.Println(a.printer.Sprintf("total = %d, totalWritten = %d", tr.Total, tr.Done))
			return nil
		},
	}
}

func (a *app) readvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "readv FILE",
		Short: "Read a three-part record with one readv(2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 1, 1) {
				return nil
			}
			rec, tr, err := fileio.ReadRecord(args[0])
			if err != nil {
				a.fail(err, "readv %s", args[0])
				return nil
			}
			if tr.Partial {
				a.rep.Msgf(nil, "partially read: %s", args[0])
			}
			a.log.Printf("%f %f %d", rec.X, rec.Y, rec.N)
			a.log.Println(rec.String())
			a.log.Println(a.printer.Sprintf("total = %d, totalRead = %d", tr.Total, tr.Done))
			return nil
		},
	}
}

func (a *app) termCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Read one line from standard input with a single read(2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 0, 0) {
				return nil
			}
			size, ok := a.size(cmd, "size", a.cfg.IO.TermSize)
			if !ok {
				return nil
			}
			if posix.IsTerminal(a.stdin) {
				_, _ = fmt.Fprint(a.out, "> ")
				a.flush()
			}
			data, err := fileio.ReadTerminal(int(a.stdin.Fd()), size)
			if err != nil {
				a.fail(err, "error when reading from terminal")
				return nil
			}
			a.log.Printf("read %d bytes: %q", len(data), data)
			return nil
		},
	}
	cmd.Flags().String("size", "", "buffer size; at most size-1 bytes are read (default from config)")
	return cmd
}

func (a *app) closeFd(fd int) {
	if err := fileio.Close(fd); err != nil {
		a.rep.Msgf(err, "close file descriptor %d", fd)
	}
}
