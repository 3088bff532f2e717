package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	"github.com/janekbaraniewski/screenings/internal/config"
	"github.com/janekbaraniewski/screenings/internal/facets"
)

var (
	facetTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA"))
	facetBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDB76B"))
	facetDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#585B70"))
)

func newFacetsCommand(cfg config.Config, src *sourceFlags) *cobra.Command {
	var axisName string

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List languages and genres ranked by number of films.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			axes := catalog.Axes
			if axisName != "" {
				axis, ok := catalog.ParseAxis(axisName)
				if !ok {
					return fmt.Errorf("unknown axis %q (want language or genre)", axisName)
				}
				axes = []catalog.Axis{axis}
			}
			records, err := loadRecords(cmd.Context(), src.resolve(cfg))
			if err != nil {
				return err
			}
			printFacets(cmd.OutOrStdout(), facets.Build(records), axes)
			return nil
		},
	}
	cmd.Flags().StringVar(&axisName, "axis", "", "only list one axis: language or genre")
	return cmd
}

func printFacets(w io.Writer, ix facets.Index, axes []catalog.Axis) {
	const barW = 20
	for i, axis := range axes {
		counts := ix.Axis(axis)
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := strings.ToUpper(string(axis[:1])) + string(axis[1:])
		fmt.Fprintln(w, facetTitleStyle.Render(fmt.Sprintf("%ss (%d)", title, len(counts)))+
			facetDimStyle.Render(fmt.Sprintf("  %d tags over %d films", facets.Total(counts), ix.Records)))

		nameW := 0
		for _, c := range counts {
			nameW = max(nameW, lipgloss.Width(c.Name))
		}
		for _, c := range counts {
			frac := facets.HighlightFraction(c.Count, ix.Records)
			filled := int(frac*barW + 0.5)
			bar := facetBarStyle.Render(strings.Repeat("━", filled)) + facetDimStyle.Render(strings.Repeat("━", barW-filled))
			fmt.Fprintf(w, "  %s %4d  %s %5.1f%%\n", c.Name+strings.Repeat(" ", nameW-lipgloss.Width(c.Name)), c.Count, bar, frac*100)
		}
	}
}
