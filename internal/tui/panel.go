package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	"github.com/janekbaraniewski/screenings/internal/chart"
)

var axisTitles = map[catalog.Axis]string{
	catalog.AxisLanguage: "Languages",
	catalog.AxisGenre:    "Genres",
}

// facetLines lays the buttons out under axis headers and returns, for every
// button, the line it sits on.
func facetLines(buttons []chart.FacetButton, cursor, width int, focused bool) ([]string, []int) {
	const barW = 8
	countW := 1
	for _, b := range buttons {
		countW = max(countW, len(fmt.Sprint(b.Count)))
	}
	labelW := max(width-2-2-countW-1-barW-1, 4)

	var lines []string
	at := make([]int, len(buttons))
	var prev catalog.Axis
	for i, b := range buttons {
		if i == 0 || b.Axis != prev {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, sectionHeaderStyle.Render(axisTitles[b.Axis]))
			prev = b.Axis
		}

		marker := "  "
		if i == cursor && focused {
			marker = helpKeyStyle.Render("› ")
		}
		indicator, style := "◇ ", buttonStyle
		if b.Active {
			indicator, style = "◆ ", buttonActiveStyle
		}
		label := padRight(truncateToWidth(b.Label, labelW), labelW)
		count := dimStyle.Render(fmt.Sprintf("%*d", countW, b.Count))
		line := marker + style.Render(indicator+label) + " " + count + " " + renderHighlightBar(b.HighlightFraction, barW, b.Active)
		if i == cursor && focused {
			line = buttonCursorStyle.Render(fitAnsiWidth(line, width))
		}
		at[i] = len(lines)
		lines = append(lines, line)
	}
	return lines, at
}

// renderFacetPanel draws the button list into width x height, scrolled so
// the cursor stays visible.
func renderFacetPanel(buttons []chart.FacetButton, cursor, width, height int, focused bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(buttons) == 0 {
		return fitBlock([]string{dimStyle.Render("No facets")}, width, height)
	}

	lines, at := facetLines(buttons, cursor, width, focused)
	visible := height
	if len(lines) > height {
		visible = max(height-1, 1)
	}

	offset := 0
	if cursor >= 0 && cursor < len(at) && at[cursor] >= visible {
		offset = at[cursor] - visible + 1
	}
	offset = clamp(offset, 0, max(len(lines)-visible, 0))

	window := lines[offset:min(offset+visible, len(lines))]
	if len(lines) > visible {
		window = append(window, renderScrollBarLine(width, offset, visible, len(lines)))
	}
	return fitBlock(window, width, height)
}

// renderDetail shows the selected record, or a hint when nothing is selected.
func renderDetail(rec *catalog.MovieRecord, width int) string {
	if rec == nil {
		return dimStyle.Render(truncateToWidth("n/p to step through visible films", width))
	}
	lines := rec.Detail().Lines()
	out := make([]string, 0, len(lines))
	out = append(out, detailTitleStyle.Render(truncateToWidth(lines[0], width)))
	for _, l := range lines[1:] {
		if k, v, ok := strings.Cut(l, ": "); ok {
			out = append(out, labelStyle.Render(k+": ")+valueStyle.Render(truncateToWidth(v, max(width-len(k)-2, 1))))
			continue
		}
		out = append(out, dimStyle.Render(truncateToWidth(l, width)))
	}
	return strings.Join(out, "\n")
}

func fitBlock(lines []string, width, height int) string {
	out := make([]string, 0, height)
	for _, l := range lines {
		if len(out) == height {
			break
		}
		out = append(out, fitAnsiWidth(l, width))
	}
	for len(out) < height {
		out = append(out, strings.Repeat(" ", width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
