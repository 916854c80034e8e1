package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/lvlgraph/internal/runner"
	"github.com/spf13/cobra"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the job kinds a config may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, k := range runner.Kinds() {
				fmt.Fprintf(w, "%s\t%s\n", k, runner.Describe(k))
			}
			return w.Flush()
		},
	}
}
