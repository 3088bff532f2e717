package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ─── Help Overlay ───────────────────────────────────────────────────────────

// renderHelpOverlay draws a centered popup with the key bindings. Any key
// dismisses it.
func (m Model) renderHelpOverlay(screenW, screenH int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(colorSapphire)
	descStyle := lipgloss.NewStyle().Foreground(colorText)
	dimHintStyle := lipgloss.NewStyle().Foreground(colorDim).Italic(true)

	var lines []string
	lines = append(lines, titleStyle.Render("  Screenings Help"), "")

	lines = append(lines, headingStyle.Render("  Reading the chart"), "")
	lines = append(lines,
		"    "+descStyle.Render("x: month of the screening   y: production year"),
		"    "+descStyle.Render("size: running time (∙ short • medium ● long)"),
		"    "+descStyle.Render("Dimmed films do not match the active facets."),
		"")

	sections := []struct {
		title string
		keys  []struct{ key, desc string }
	}{
		{"Facets", []struct{ key, desc string }{
			{"↑↓ / j k", "Move between facets"},
			{"Space / ⏎", "Toggle facet"},
			{"r / 0", "Clear all facets"},
		}},
		{"Films", []struct{ key, desc string }{
			{"n / ]", "Select next visible film"},
			{"p / [", "Select previous visible film"},
			{"Esc", "Clear selection"},
		}},
		{"Global", []struct{ key, desc string }{
			{"Tab / Shift+Tab", "Switch chart preset"},
			{"t", "Cycle theme"},
			{"?", "Toggle this help"},
			{"q / Ctrl+C", "Quit"},
		}},
	}
	for _, s := range sections {
		lines = append(lines, headingStyle.Render("  "+s.title), "")
		for _, k := range s.keys {
			lines = append(lines, "    "+keyStyle.Render(padRight(k.key, 18))+descStyle.Render(k.desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, "  "+dimHintStyle.Render("Press any key to dismiss"))

	contentW := 0
	for _, line := range lines {
		contentW = max(contentW, lipgloss.Width(line))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Width(min(contentW+4, max(screenW-4, 10))).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}
