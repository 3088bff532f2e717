package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/screenings/internal/config"
)

func main() {
	if os.Getenv("SCREENINGS_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}

	if err := newRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(cfg config.Config) *cobra.Command {
	src := &sourceFlags{}
	var chartName string

	root := &cobra.Command{
		Use:   "screenings",
		Short: "Screenings plots a film screening history by month and production year.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if chartName != "" {
				cfg.Chart = chartName
			}
			return runViewer(cmd.Context(), cfg, src.resolve(cfg))
		},
		SilenceUsage: true,
	}
	src.register(root.PersistentFlags())
	root.Flags().StringVar(&chartName, "chart", "", "initial chart preset")

	root.AddCommand(
		newRenderCommand(cfg, src),
		newFacetsCommand(cfg, src),
		newImportCommand(cfg, src),
		newVersionCommand(),
	)
	return root
}
