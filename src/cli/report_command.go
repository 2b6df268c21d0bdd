// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"strings"
	"syscall"

	"github.com/H0llyW00dzZ/syscall-lab/src/diag"
	"github.com/H0llyW00dzZ/syscall-lab/src/getnum"
	"github.com/spf13/cobra"
)

func (a *app) reportCommand() *cobra.Command {
	var (
		policy string
		errno  string
	)
	cmd := &cobra.Command{
		Use:   "report MESSAGE...",
		Short: "Emit a diagnostic under a chosen termination policy",
		Long: `report writes one diagnostic line and then applies the policy:

  resume    return and keep running
  exit      flush output, run cleanups, exit 1
  exit-now  exit 1 at once without flushing output (core dump when EF_DUMPCORE is set)
  abort     dump core when EF_DUMPCORE is set, otherwise behave like exit

With --errno the line carries the symbolic error name and description.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.checkArgs(cmd, args, 1, -1) {
				return nil
			}
			p, err := diag.ParsePolicy(policy)
			if err != nil {
				a.rep.Usagef("%s (%v)\n", cmd.UseLine(), err)
				return nil
			}

			var cause error
			if errno != "" {
				v, err := getnum.GetInt(errno, getnum.NonNeg|getnum.AnyBase, "--errno")
				if err != nil {
					a.rep.CmdLinef("%s\n", err)
					return nil
				}
				if v != 0 {
					cause = syscall.Errno(v)
				}
			}

			a.rep.Report(p, cause, "%s", strings.Join(args, " "))
			a.log.Printf("resumed after %s diagnostic", p)
			return nil
		},
	}
	cmd.Flags().StringVar(&policy, "policy", diag.Resume.String(), "resume, exit, exit-now or abort")
	cmd.Flags().StringVar(&errno, "errno", "", "error number to attach, in any base")
	return cmd
}
