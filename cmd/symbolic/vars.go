package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVarsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vars [file...]",
		Short: "List the variables of expression documents",
		Long: `Print the sorted names of the free variables of each expression document,
one line per document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, readErr := readDocs(cmd.InOrStdin(), args, v.GetString("format"))
			w := cmd.OutOrStdout()
			for _, d := range docs {
				if _, err := fmt.Fprintln(w, strings.Join(d.expr.Vars(), " ")); err != nil {
					return err
				}
			}
			return readErr
		},
	}
	addInputFlags(cmd.Flags())
	return cmd
}
