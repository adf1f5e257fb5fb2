package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/odvcencio/xonshts/grammars"
)

func newTablesCmd(a *app) *cobra.Command {
	var showConflicts bool

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Report on the generated parse tables and runtime support",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, report, err := grammars.BuildXonsh()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LANGUAGE\tABI\tRUNTIME\tSTATES\tSYMBOLS\tBACKEND\tREASON")
			for _, s := range grammars.AuditParseSupport() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
					s.Name, s.LanguageVersion, s.RuntimeVersion, s.StateCount, s.SymbolCount, s.Backend, s.Reason)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			unexpected := report.Unexpected()
			fmt.Fprintf(out, "\nxonsh: %d states, %d productions, %d terminals, %d nonterminals\n",
				report.States, report.Productions, report.Terminals, report.Nonterminals)
			fmt.Fprintf(out, "conflicts: %d resolved, %d unexpected\n", len(report.Conflicts), len(unexpected))
			list := unexpected
			if showConflicts {
				list = report.Conflicts
			}
			for _, c := range list {
				fmt.Fprintf(out, "  %s\n", c)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showConflicts, "conflicts", false, "list every conflict, not only unexpected ones")
	return cmd
}
