package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/symbolic"
)

func newOperatorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operators",
		Short: "List the operators and their arities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tARITY")
			for _, k := range symbolic.Operators() {
				fmt.Fprintf(w, "%s\t%d\n", k, k.Arity())
			}
			return w.Flush()
		},
	}
}
