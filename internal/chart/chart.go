// Package chart wires normalization, facet ranking, layout and filtering
// into one pipeline and pushes the results to a render surface.
package chart

import (
	"github.com/janekbaraniewski/screenings/internal/catalog"
	"github.com/janekbaraniewski/screenings/internal/facets"
	"github.com/janekbaraniewski/screenings/internal/filter"
	"github.com/janekbaraniewski/screenings/internal/layout"
)

// DefaultFill is the mark color used when a chart does not name one.
const DefaultFill = "#BDB76B"

// Options configures a chart build.
type Options struct {
	Layout layout.Config
	Fill   string
}

// MarkState is everything a surface needs to draw one mark.
type MarkState struct {
	X           float64
	Y           float64
	Radius      float64
	Fill        string
	Opacity     float64
	Interactive bool
	Record      catalog.MovieRecord
}

// FacetButton is the state of one facet toggle.
type FacetButton struct {
	Axis              catalog.Axis
	Label             string
	Count             int
	HighlightFraction float64
	Active            bool
}

// Surface receives computed attributes. Animation and presentation belong to
// the surface; the chart only hands over final values.
type Surface interface {
	PushMarks(marks []MarkState)
	PushFacets(buttons []FacetButton)
}

// Chart is a fully placed mark set plus its filter controller. A Chart is
// driven from a single goroutine.
type Chart struct {
	opts    Options
	records []catalog.MovieRecord
	marks   []layout.Mark
	scales  layout.Scales
	index   facets.Index
	filter  *filter.Controller
}

// Build runs the setup pipeline over normalized records. Records are
// re-sorted by screening month and id before placement.
func Build(records []catalog.MovieRecord, opts Options) *Chart {
	return BuildWithFilter(records, opts, filter.NewController())
}

// BuildWithFilter is Build with an existing controller, used when the
// dataset is reloaded mid-session and the selection should survive. Active
// names the new dataset no longer carries are dropped.
func BuildWithFilter(records []catalog.MovieRecord, opts Options, ctl *filter.Controller) *Chart {
	opts.Layout = opts.Layout.Normalized()
	if opts.Fill == "" {
		opts.Fill = DefaultFill
	}
	if ctl == nil {
		ctl = filter.NewController()
	}

	// Facets rank ties by first appearance, so they see the input order;
	// only placement works on the re-sorted copy.
	index := facets.Build(records)
	ctl.Retain(index.Has)

	sorted := layout.SortRecords(records)
	scales := layout.NewScales(sorted, opts.Layout)
	return &Chart{
		opts:    opts,
		records: sorted,
		marks:   layout.Place(sorted, scales, opts.Layout.CollisionStep),
		scales:  scales,
		index:   index,
		filter:  ctl,
	}
}

func (c *Chart) Options() Options { return c.opts }

func (c *Chart) Scales() layout.Scales { return c.scales }

func (c *Chart) Facets() facets.Index { return c.index }

func (c *Chart) Filter() *filter.Controller { return c.filter }

// Records returns the records in placement order.
func (c *Chart) Records() []catalog.MovieRecord { return c.records }

// Toggle flips a facet. Names no record carries are ignored.
func (c *Chart) Toggle(axis catalog.Axis, name string) {
	if !c.index.Has(axis, name) {
		return
	}
	c.filter.Toggle(axis, name)
}

func (c *Chart) Reset() { c.filter.Reset() }

// MarkStates recomputes visibility for every record and returns the marks
// that can be drawn. Records without a screening month are left out.
func (c *Chart) MarkStates() []MarkState {
	vis := c.filter.Apply(c.records)
	out := make([]MarkState, 0, len(c.marks))
	for i, m := range c.marks {
		if !m.Placed {
			continue
		}
		out = append(out, MarkState{
			X:           m.X,
			Y:           m.Y,
			Radius:      m.Radius,
			Fill:        c.opts.Fill,
			Opacity:     vis[i].Opacity,
			Interactive: vis[i].Interactive,
			Record:      c.records[m.Index],
		})
	}
	return out
}

// FacetButtons lists buttons for both axes, languages first. The highlight
// fraction is the facet's share of the whole catalog.
func (c *Chart) FacetButtons() []FacetButton {
	state := c.filter.State()
	var out []FacetButton
	for _, axis := range catalog.Axes {
		for _, fc := range c.index.Axis(axis) {
			out = append(out, FacetButton{
				Axis:              axis,
				Label:             fc.Name,
				Count:             fc.Count,
				HighlightFraction: facets.HighlightFraction(fc.Count, c.index.Records),
				Active:            state.IsActive(axis, fc.Name),
			})
		}
	}
	return out
}

// Push sends the current marks and buttons to s.
func (c *Chart) Push(s Surface) {
	s.PushMarks(c.MarkStates())
	s.PushFacets(c.FacetButtons())
}
