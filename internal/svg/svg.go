// Package svg renders a chart as a standalone SVG document.
package svg

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	"github.com/janekbaraniewski/screenings/internal/chart"
	"github.com/janekbaraniewski/screenings/internal/layout"
)

const (
	legendWidth   = 280
	legendRow     = 18
	legendBarMax  = 120
	legendPadding = 16
	tickLength    = 6
	activeStroke  = "#333333"
	axisColor     = "#444444"
	barColor      = "#D8D3A8"
)

// Surface collects what a chart pushes so it can be written out.
type Surface struct {
	marks   []chart.MarkState
	buttons []chart.FacetButton
}

func (s *Surface) PushMarks(marks []chart.MarkState) { s.marks = marks }

func (s *Surface) PushFacets(buttons []chart.FacetButton) { s.buttons = buttons }

// Render writes c as SVG, including axes and the facet legend.
func Render(w io.Writer, c *chart.Chart) error {
	s := &Surface{}
	c.Push(s)

	bw := bufio.NewWriter(w)
	s.write(bw, c.Options().Layout, c.Scales())
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("svg: writing: %w", err)
	}
	return nil
}

func (s *Surface) write(w *bufio.Writer, cfg layout.Config, sc layout.Scales) {
	vp := cfg.Viewport
	rows := len(s.buttons) + 2*len(catalog.Axes)
	height := max(vp.Height, float64(rows*legendRow+2*legendPadding))
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" font-family="sans-serif" font-size="11">`+"\n",
		num(vp.Width+legendWidth), num(height))

	s.writeAxes(w, vp, sc)
	s.writeMarks(w)
	s.writeLegend(w, vp.Width)

	fmt.Fprintln(w, `</svg>`)
}

func (s *Surface) writeAxes(w *bufio.Writer, vp layout.Viewport, sc layout.Scales) {
	left, top, right, bottom := vp.PlotArea()

	fmt.Fprintln(w, `<g class="x-axis">`)
	fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n", num(left), num(bottom), num(right), num(bottom), axisColor)
	for _, tick := range layout.MonthTicks(sc.X.From, sc.X.To) {
		x := sc.X.Map(tick)
		fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n", num(x), num(bottom), num(x), num(bottom+tickLength), axisColor)
		fmt.Fprintf(w, `<text x="%s" y="%s" text-anchor="end" transform="rotate(-45 %s %s)">%s</text>`+"\n",
			num(x), num(bottom+tickLength+10), num(x), num(bottom+tickLength+10), tick.Format("01/2006"))
	}
	fmt.Fprintln(w, `</g>`)

	fmt.Fprintln(w, `<g class="y-axis">`)
	fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n", num(left), num(top), num(left), num(bottom), axisColor)
	for _, year := range layout.YearTicks(sc.YearFrom, sc.YearTo, sc.YearStep) {
		y := sc.Y.Map(float64(year))
		fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n", num(left-tickLength), num(y), num(left), num(y), axisColor)
		fmt.Fprintf(w, `<text x="%s" y="%s" text-anchor="end" dominant-baseline="middle">%d</text>`+"\n", num(left-tickLength-3), num(y), year)
	}
	midY := vp.Height / 2
	fmt.Fprintf(w, `<text x="%s" y="%s" text-anchor="middle" transform="rotate(-90 %s %s)">Production Year</text>`+"\n",
		num(left/2), num(midY), num(left/2), num(midY))
	fmt.Fprintln(w, `</g>`)
}

func (s *Surface) writeMarks(w *bufio.Writer) {
	fmt.Fprintln(w, `<g class="marks">`)
	for _, m := range s.marks {
		events := ""
		if !m.Interactive {
			events = ` pointer-events="none"`
		}
		fmt.Fprintf(w, `<circle data-id="%s" cx="%s" cy="%s" r="%s" fill="%s" opacity="%s"%s>`,
			esc(m.Record.ID), num(m.X), num(m.Y), num(m.Radius), esc(m.Fill), num(m.Opacity), events)
		if m.Interactive {
			fmt.Fprintf(w, `<title>%s</title>`, esc(strings.Join(m.Record.Detail().Lines(), "\n")))
		}
		fmt.Fprintln(w, `</circle>`)
	}
	fmt.Fprintln(w, `</g>`)
}

func (s *Surface) writeLegend(w *bufio.Writer, x0 float64) {
	x := x0 + legendPadding
	y := float64(legendPadding)
	fmt.Fprintln(w, `<g class="facets">`)
	for _, axis := range catalog.Axes {
		fmt.Fprintf(w, `<text x="%s" y="%s" font-weight="bold">%s</text>`+"\n", num(x), num(y+12), axisTitle(axis))
		y += legendRow
		for _, b := range s.buttons {
			if b.Axis != axis {
				continue
			}
			stroke := "none"
			weight := "normal"
			if b.Active {
				stroke = activeStroke
				weight = "bold"
			}
			fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%d" fill="%s" stroke="%s"/>`+"\n",
				num(x), num(y+2), num(b.HighlightFraction*legendBarMax), legendRow-4, barColor, stroke)
			fmt.Fprintf(w, `<text x="%s" y="%s" font-weight="%s">%s (%d)</text>`+"\n",
				num(x+4), num(y+12), weight, esc(b.Label), b.Count)
			y += legendRow
		}
		y += legendRow
	}
	fmt.Fprintln(w, `</g>`)
}

func axisTitle(axis catalog.Axis) string {
	switch axis {
	case catalog.AxisLanguage:
		return "Languages"
	case catalog.AxisGenre:
		return "Genres"
	}
	return string(axis)
}

func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func esc(s string) string { return html.EscapeString(s) }
