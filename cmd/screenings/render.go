package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/screenings/internal/chart"
	"github.com/janekbaraniewski/screenings/internal/config"
	"github.com/janekbaraniewski/screenings/internal/svg"
)

func newRenderCommand(cfg config.Config, src *sourceFlags) *cobra.Command {
	var (
		chartName string
		output    string
		languages []string
		genres    []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the chart as an SVG document.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := chartOptions(cfg, chartName)
			if err != nil {
				return err
			}
			records, err := loadRecords(cmd.Context(), src.resolve(cfg))
			if err != nil {
				return err
			}

			c := chart.Build(records, opts)
			if err := applyFilters(c, languages, genres); err != nil {
				return err
			}

			if output == "" || output == "-" {
				return svg.Render(cmd.OutOrStdout(), c)
			}
			return writeSVGFile(output, c)
		},
	}

	cmd.Flags().StringVar(&chartName, "chart", "", "chart preset (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().StringSliceVar(&languages, "language", nil, "activate language facet (repeatable)")
	cmd.Flags().StringSliceVar(&genres, "genre", nil, "activate genre facet (repeatable)")
	return cmd
}

func writeSVGFile(path string, c *chart.Chart) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return svg.Render(f, c)
}
