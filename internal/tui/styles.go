package tui

import "github.com/charmbracelet/lipgloss"

// ─── Color Palette (overwritten by applyTheme) ──────────────────────────────

var (
	colorBase     = lipgloss.Color("#1E1E2E") // background
	colorSurface0 = lipgloss.Color("#313244") // panel bg
	colorSurface1 = lipgloss.Color("#45475A") // tracks, rails
	colorText     = lipgloss.Color("#CDD6F4") // primary text
	colorSubtext  = lipgloss.Color("#A6ADC8") // secondary text
	colorDim      = lipgloss.Color("#585B70") // muted, borders

	colorAccent   = lipgloss.Color("#CBA6F7") // selection, active facets
	colorBlue     = lipgloss.Color("#89B4FA") // section headers
	colorSapphire = lipgloss.Color("#74C7EC") // key hints
	colorLavender = lipgloss.Color("#B4BEFE") // titles
	colorYellow   = lipgloss.Color("#F9E2AF") // highlight bars
	colorRed      = lipgloss.Color("#F38BA8") // errors
)

// ─── Reusable Styles ────────────────────────────────────────────────────────

var (
	headerStyle        lipgloss.Style
	headerBrandStyle   lipgloss.Style
	sectionHeaderStyle lipgloss.Style
	helpStyle          lipgloss.Style
	helpKeyStyle       lipgloss.Style
	labelStyle         lipgloss.Style
	valueStyle         lipgloss.Style
	dimStyle           lipgloss.Style
	errorStyle         lipgloss.Style
	axisStyle          lipgloss.Style

	buttonStyle       lipgloss.Style
	buttonActiveStyle lipgloss.Style
	buttonCursorStyle lipgloss.Style

	detailTitleStyle lipgloss.Style
	panelStyle       lipgloss.Style
)

func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	headerBrandStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	helpStyle = lipgloss.NewStyle().Foreground(colorDim)
	helpKeyStyle = lipgloss.NewStyle().Foreground(colorSapphire).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	valueStyle = lipgloss.NewStyle().Foreground(colorText)
	dimStyle = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	axisStyle = lipgloss.NewStyle().Foreground(colorDim)

	buttonStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	buttonActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	buttonCursorStyle = lipgloss.NewStyle().Background(colorSurface0)

	detailTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface1).
		Padding(0, 1)
}

func applyTheme(t Theme) {
	colorBase = t.Base
	colorSurface0 = t.Surface0
	colorSurface1 = t.Surface1
	colorText = t.Text
	colorSubtext = t.Subtext
	colorDim = t.Dim
	colorAccent = t.Accent
	colorBlue = t.Blue
	colorSapphire = t.Sapphire
	colorLavender = t.Lavender
	colorYellow = t.Yellow
	colorRed = t.Red
	rebuildStyles()
}
