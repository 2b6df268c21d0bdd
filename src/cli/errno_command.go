// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"io"
	"strconv"
	"strings"
	"syscall"

	"github.com/H0llyW00dzZ/syscall-lab/src/diag"
	"github.com/H0llyW00dzZ/syscall-lab/src/getnum"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

func (a *app) errnoCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "errno [CODE|NAME...]",
		Short: "Look up error numbers by code or symbolic name",
		Long: `errno resolves each argument, a number such as 2 or 0x2 or a name such as
ENOENT, to its symbolic name and description. Codes outside the table show as
?UNKNOWN?. With --all the whole table is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && !a.checkArgs(cmd, args, 1, -1) {
				return nil
			}

			var entries []diag.Entry
			if all {
				entries = diag.Table()
			}
			for _, arg := range args {
				e, ok := a.resolveErrno(arg)
				if !ok {
					return nil
				}
				entries = append(entries, e)
			}

			if a.cfg.Output.JSON {
				for _, e := range entries {
					a.log.Printf("%d %s %s", e.Code, e.Name, e.Description)
				}
				return nil
			}
			renderErrnoTable(a.out, entries)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every known error number")
	return cmd
}

// resolveErrno accepts a number in any base or a symbolic name.
func (a *app) resolveErrno(arg string) (diag.Entry, bool) {
	if name := strings.TrimSpace(arg); name != "" && !isDigit(name[0]) {
		errno, ok := diag.ByName(name)
		if !ok {
			a.rep.Fatalf("unknown error name %s", arg)
			return diag.Entry{}, false
		}
		return entryFor(errno), true
	}

	v, err := getnum.GetInt(arg, getnum.NonNeg|getnum.AnyBase, "errno")
	if err != nil {
		a.rep.CmdLinef("%s\n", err)
		return diag.Entry{}, false
	}
	return entryFor(syscall.Errno(v)), true
}

func entryFor(errno syscall.Errno) diag.Entry {
	name, desc := diag.Lookup(errno)
	return diag.Entry{Code: errno, Name: name, Description: desc}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// renderErrnoTable writes entries as a markdown table.
func renderErrnoTable(w io.Writer, entries []diag.Entry) {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Code", "Name", "Description"})

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{strconv.Itoa(int(e.Code)), e.Name, e.Description})
	}
	table.Bulk(rows)
	table.Render()
}
