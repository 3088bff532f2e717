package tui

import (
	"math"
	"sort"
	"strconv"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/janekbaraniewski/screenings/internal/chart"
	"github.com/janekbaraniewski/screenings/internal/filter"
	"github.com/janekbaraniewski/screenings/internal/layout"
)

const (
	yGutter = 5 // "2020 "
	xGutter = 2 // axis row + label row
)

// plotGrid maps chart pixels onto terminal cells.
type plotGrid struct {
	left, top, right, bottom float64
	originX                  int
	cols, rows               int
}

func newPlotGrid(vp layout.Viewport, width, height int) (plotGrid, bool) {
	cols := width - yGutter - 1
	rows := height - xGutter
	if cols < 4 || rows < 3 {
		return plotGrid{}, false
	}
	l, t, r, b := vp.PlotArea()
	return plotGrid{left: l, top: t, right: r, bottom: b, originX: yGutter + 1, cols: cols, rows: rows}, true
}

func (g plotGrid) col(x float64) int {
	if g.right == g.left {
		return g.originX
	}
	c := int(math.Round((x - g.left) / (g.right - g.left) * float64(g.cols-1)))
	return g.originX + clamp(c, 0, g.cols-1)
}

func (g plotGrid) row(y float64) int {
	if g.bottom == g.top {
		return 0
	}
	r := int(math.Round((y - g.top) / (g.bottom - g.top) * float64(g.rows-1)))
	return clamp(r, 0, g.rows-1)
}

// markRune picks a glyph by radius relative to the largest mark.
func markRune(radius, maxRadius float64, selected bool) rune {
	if selected {
		return '◉'
	}
	if maxRadius <= 0 {
		return '•'
	}
	switch ratio := radius / maxRadius; {
	case ratio < 0.34:
		return '∙'
	case ratio < 0.67:
		return '•'
	default:
		return '●'
	}
}

// blendOpacity approximates alpha compositing over the theme background.
// Full opacity is drawn at the mark's own color.
func blendOpacity(fill string, opacity float64) lipgloss.Color {
	fg, err := colorful.Hex(fill)
	if err != nil {
		fg, _ = colorful.Hex(chart.DefaultFill)
	}
	bg, err := colorful.Hex(string(colorBase))
	if err != nil {
		return lipgloss.Color(fg.Hex())
	}
	t := opacity / filter.OpacityFull
	if t > 1 {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	return lipgloss.Color(bg.BlendRgb(fg, t).Hex())
}

func setString(c *canvas.Model, x, y int, s string, style lipgloss.Style) {
	for i, r := range []rune(s) {
		c.SetRuneWithStyle(canvas.Point{X: x + i, Y: y}, r, style)
	}
}

// renderPlot draws the scatter plot with axes into a width x height block.
// opacity(i) is the displayed opacity of marks[i]; selected is a mark index
// or -1.
func renderPlot(marks []chart.MarkState, opacity func(int) float64, scales layout.Scales, vp layout.Viewport, selected, width, height int) string {
	grid, ok := newPlotGrid(vp, width, height)
	if !ok {
		return ""
	}
	c := canvas.New(width, height)

	axisRow := grid.rows
	for y := 0; y < axisRow; y++ {
		c.SetRuneWithStyle(canvas.Point{X: yGutter, Y: y}, '│', axisStyle)
	}
	c.SetRuneWithStyle(canvas.Point{X: yGutter, Y: axisRow}, '└', axisStyle)
	for x := grid.originX; x < width; x++ {
		c.SetRuneWithStyle(canvas.Point{X: x, Y: axisRow}, '─', axisStyle)
	}

	for _, year := range layout.YearTicks(scales.YearFrom, scales.YearTo, scales.YearStep) {
		y := grid.row(scales.Y.Map(float64(year)))
		label := strconv.Itoa(year)
		setString(&c, max(yGutter-1-len(label), 0), y, label, labelStyle)
		c.SetRuneWithStyle(canvas.Point{X: yGutter, Y: y}, '┤', axisStyle)
	}

	nextFree := 0
	for _, tick := range layout.MonthTicks(scales.X.From, scales.X.To) {
		x := grid.col(scales.X.Map(tick))
		c.SetRuneWithStyle(canvas.Point{X: x, Y: axisRow}, '┬', axisStyle)
		label := tick.Format("01/2006")
		if x < nextFree || x+len(label) > width {
			continue
		}
		setString(&c, x, axisRow+1, label, labelStyle)
		nextFree = x + len(label) + 1
	}

	maxRadius := 0.0
	for _, m := range marks {
		maxRadius = math.Max(maxRadius, m.Radius)
	}

	// Faint marks first so visible ones win shared cells; the selection last.
	order := make([]int, len(marks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if (ia == selected) != (ib == selected) {
			return ib == selected
		}
		return opacity(ia) < opacity(ib)
	})

	for _, i := range order {
		m := marks[i]
		style := lipgloss.NewStyle().Foreground(blendOpacity(m.Fill, opacity(i)))
		if i == selected {
			style = style.Bold(true)
		}
		c.SetRuneWithStyle(canvas.Point{X: grid.col(m.X), Y: grid.row(m.Y)}, markRune(m.Radius, maxRadius, i == selected), style)
	}

	return c.View()
}
