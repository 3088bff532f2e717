package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHighlightBar draws the share of records carrying a facet as a
// left-filled bar. fraction is clamped to [0,1].
func renderHighlightBar(fraction float64, width int, active bool) string {
	if width < 3 {
		width = 3
	}
	if math.IsNaN(fraction) || fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(math.Round(fraction * float64(width)))
	if fraction > 0 && filled == 0 {
		filled = 1
	}

	fill := colorYellow
	if active {
		fill = colorAccent
	}
	filledStyle := lipgloss.NewStyle().Foreground(fill)
	trackStyle := lipgloss.NewStyle().Foreground(colorSurface1)

	return filledStyle.Render(strings.Repeat("━", filled)) +
		trackStyle.Render(strings.Repeat("━", width-filled))
}
