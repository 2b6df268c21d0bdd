// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bufio"
	"strings"

	"github.com/H0llyW00dzZ/syscall-lab/src/getnum"
	"github.com/H0llyW00dzZ/syscall-lab/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/syscall-lab/src/internal/varargs"
	"github.com/spf13/cobra"
)

func (a *app) bitorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bitor N...",
		Short: "Bitwise OR a list of integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 1, -1) {
				return nil
			}
			vals := make([]int, 0, len(args))
			for _, arg := range args {
				v, err := getnum.GetInt(arg, getnum.AnyBase, "N")
				if err != nil {
					a.rep.CmdLinef("%s\n", err)
					return nil
				}
				vals = append(vals, int(v))
			}
			r := varargs.BitwiseOr(vals...)
			a.log.Printf("%d (%#x)", r, r)
			return nil
		},
	}
}

func (a *app) walkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "walk DIRECTIVES [ARG...]",
		Short: "Print typed arguments driven by a directive string",
		Long: `walk consumes one ARG for each directive: s takes a string, d an integer
and p a pair written as A,B. Any other directive prints "unknown".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 1, -1) {
				return nil
			}
			directives, rest := args[0], args[1:]

			vals, ok := a.walkValues(directives, rest)
			if !ok {
				return nil
			}

			var werr error
			gc.With(func(buf gc.Buffer) {
				werr = varargs.Walk(buf, directives, vals...)
				sc := bufio.NewScanner(strings.NewReader(buf.String()))
				for sc.Scan() {
					a.log.Println(sc.Text())
				}
			})
			if werr != nil {
				a.rep.Fatalf("%v", werr)
			}
			return nil
		},
	}
}

// walkValues converts raw arguments to the types their directives expect.
// Surplus arguments and arguments for unknown directives stay strings.
func (a *app) walkValues(directives string, raw []string) ([]any, bool) {
	vals := make([]any, 0, len(raw))
	next := 0
	for i := 0; i < len(directives) && next < len(raw); i++ {
		arg := raw[next]
		switch directives[i] {
		case 's':
			vals = append(vals, arg)
		case 'd':
			v, err := getnum.GetInt(arg, getnum.AnyBase, "d")
			if err != nil {
				a.rep.CmdLinef("%s\n", err)
				return nil, false
			}
			vals = append(vals, int(v))
		case 'p':
			p, ok := a.parsePair(arg)
			if !ok {
				return nil, false
			}
			vals = append(vals, p)
		default:
			continue
		}
		next++
	}
	for _, arg := range raw[next:] {
		vals = append(vals, arg)
	}
	return vals, true
}

func (a *app) parsePair(arg string) (varargs.Pair, bool) {
	left, right, found := strings.Cut(arg, ",")
	if !found {
		a.rep.CmdLinef("pair %q: want A,B\n", arg)
		return varargs.Pair{}, false
	}
	x, err := getnum.GetInt(left, getnum.AnyBase, "p.a")
	if err != nil {
		a.rep.CmdLinef("%s\n", err)
		return varargs.Pair{}, false
	}
	y, err := getnum.GetInt(right, getnum.AnyBase, "p.b")
	if err != nil {
		a.rep.CmdLinef("%s\n", err)
		return varargs.Pair{}, false
	}
	return varargs.Pair{A: int(x), B: int(y)}, true
}

func (a *app) getnumCommand() *cobra.Command {
	var (
		nonNeg bool
		gt0    bool
		base   int
		asInt  bool
	)
	cmd := &cobra.Command{
		Use:   "getnum VALUE",
		Short: "Parse VALUE the way numeric command-line arguments are checked",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 1, 1) {
				return nil
			}
			var flags getnum.Flag
			if nonNeg {
				flags |= getnum.NonNeg
			}
			if gt0 {
				flags |= getnum.GT0
			}
			switch base {
			case 0:
				flags |= getnum.AnyBase
			case 8:
				flags |= getnum.Base8
			case 16:
				flags |= getnum.Base16
			case 10:
			default:
				a.rep.Usagef("%s (--base is 0, 8, 10 or 16)\n", cmd.UseLine())
				return nil
			}

			if asInt {
				v, err := getnum.GetInt(args[0], flags, "VALUE")
				if err != nil {
					a.rep.CmdLinef("%s\n", err)
					return nil
				}
				a.log.Printf("%d", v)
				return nil
			}
			v, ok := a.number(args[0], flags, "VALUE")
			if !ok {
				return nil
			}
			a.log.Printf("%d", v)
			return nil
		},
	}
	cmd.Flags().BoolVar(&nonNeg, "nonneg", false, "reject negative values")
	cmd.Flags().BoolVar(&gt0, "gt0", false, "reject values below one")
	cmd.Flags().IntVar(&base, "base", 10, "numeric base: 0 (prefix decides), 8, 10 or 16")
	cmd.Flags().BoolVar(&asInt, "int", false, "require the value to fit in 32 bits")
	return cmd
}
