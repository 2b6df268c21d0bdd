// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"fortio.org/safecast"
	"github.com/H0llyW00dzZ/syscall-lab/src/config"
	"github.com/H0llyW00dzZ/syscall-lab/src/diag"
	"github.com/H0llyW00dzZ/syscall-lab/src/getnum"
	"github.com/H0llyW00dzZ/syscall-lab/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/syscall-lab/src/logger"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Option customises the process resources used by [Execute].
type Option func(*settings)

type settings struct {
	name   string
	args   []string
	stdin  *os.File
	stdout io.Writer
	stderr io.Writer
	term   diag.Terminator
}

// WithArgs replaces os.Args[1:].
func WithArgs(args ...string) Option {
	return func(s *settings) { s.args = args }
}

// WithName sets the program name shown in usage lines and help.
func WithName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.name = name
		}
	}
}

// WithExecutableName names the program after os.Args[0].
func WithExecutableName() Option {
	return WithName(posix.GetExecutableName())
}

// WithStdio replaces the standard streams. Nil values keep the defaults.
func WithStdio(stdin *os.File, stdout, stderr io.Writer) Option {
	return func(s *settings) {
		if stdin != nil {
			s.stdin = stdin
		}
		if stdout != nil {
			s.stdout = stdout
		}
		if stderr != nil {
			s.stderr = stderr
		}
	}
}

// WithTerminator replaces the hooks that end the process after a
// terminating diagnostic.
func WithTerminator(t diag.Terminator) Option {
	return func(s *settings) { s.term = t }
}

// app holds the state shared by every command of one execution.
type app struct {
	settings

	configPath string
	jsonOut    bool
	colorMode  string

	cfg     *config.Config
	out     *bufio.Writer
	log     logger.Logger
	rep     *diag.Reporter
	printer *message.Printer
}

// Execute builds the command tree and runs it. It returns the errors Cobra
// reports, such as unknown flags or an invalid configuration; failures of
// the examples themselves go through the diagnostic reporter instead.
func Execute(ctx context.Context, version string, opts ...Option) error {
	s := settings{
		name:   "syscall-lab",
		args:   os.Args[1:],
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(&s)
	}

	a := &app{settings: s}
	root := a.rootCommand(version)
	root.SetArgs(s.args)
	root.SetOut(s.stdout)
	root.SetErr(s.stderr)

	defer a.flush()
	return root.ExecuteContext(ctx)
}

func (a *app) rootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   a.name,
		Short: "Explore POSIX file I/O and error reporting",
		Long: a.name + ` runs small system call examples and reports failures the way
classic Unix tools do: the symbolic error name, its description and a message
on standard error, followed by a non-zero exit.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (.json, .yaml, .yml or .toml)")
	flags.BoolVar(&a.jsonOut, "json", false, "write results as JSON lines")
	flags.StringVar(&a.colorMode, "color", config.ColorAuto, "color the ERROR prefix: auto, on or off")

	root.AddCommand(fileCommands(a)...)
	root.AddCommand(
		a.errnoCommand(),
		a.bitorCommand(),
		a.walkCommand(),
		a.getnumCommand(),
		a.reportCommand(),
	)
	return root
}

// setup loads the configuration and wires the output and the reporter.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("json") {
		cfg.Output.JSON = a.jsonOut
	}
	if cmd.Flags().Changed("color") {
		cfg.Reporter.Color = strings.ToLower(a.colorMode)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	a.out = bufio.NewWriter(a.stdout)
	if cfg.Output.JSON {
		a.log = logger.NewJSONLogger(a.out, false)
	} else {
		a.log = logger.NewCLILogger(a.out)
	}

	a.rep = diag.New(
		diag.WithStderr(a.stderr),
		diag.WithStdout(a.out),
		diag.WithCapacity(cfg.Reporter.Capacity),
		diag.WithColor(colorEnabled(cfg.Reporter.Color, a.stderr)),
		diag.WithTerminator(a.term),
		diag.WithDumpCore(func() bool { return cfg.Reporter.DumpCore }),
	)
	a.printer = message.NewPrinter(language.English)
	return nil
}

func (a *app) flush() {
	if a.out != nil {
		_ = a.out.Flush()
	}
}

// colorEnabled resolves a color mode. Auto colors only a terminal and
// honours NO_COLOR.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && posix.IsTerminal(f)
}

// checkArgs reports a usage diagnostic, which exits, when the argument count
// is outside [lo, hi]. A negative hi means no upper bound.
func (a *app) checkArgs(cmd *cobra.Command, args []string, lo, hi int) bool {
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		a.rep.Usagef("%s\n", cmd.UseLine())
		return false
	}
	return true
}

// number parses arg with getnum and exits with the parser's message on failure.
func (a *app) number(arg string, flags getnum.Flag, name string) (int64, bool) {
	v, err := getnum.GetLong(arg, flags, name)
	if err != nil {
		a.rep.CmdLinef("%s\n", err)
		return 0, false
	}
	return v, true
}

// size resolves a positive size flag, falling back to def when unset.
func (a *app) size(cmd *cobra.Command, name string, def int) (int, bool) {
	if !cmd.Flags().Changed(name) {
		return def, true
	}
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		a.rep.Fatalf("flag --%s: %v", name, err)
		return 0, false
	}
	v, ok := a.number(raw, getnum.GT0|getnum.AnyBase, "--"+name)
	if !ok {
		return 0, false
	}
	n, err := safecast.Conv[int](v)
	if err != nil {
		a.rep.CmdLinef("--%s: %v\n", name, err)
		return 0, false
	}
	return n, true
}

// descriptor parses a non-negative descriptor number.
func (a *app) descriptor(arg, name string) (int, bool) {
	v, err := getnum.GetInt(arg, getnum.NonNeg, name)
	if err != nil {
		a.rep.CmdLinef("%s\n", err)
		return 0, false
	}
	return int(v), true
}
