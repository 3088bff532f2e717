package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/screenings/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "screenings %s\n", version.String())
			if !version.IsRelease() {
				fmt.Fprintln(out, "development build")
			}
			return nil
		},
	}
}
