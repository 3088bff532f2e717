package filter

import "github.com/janekbaraniewski/screenings/internal/catalog"

// Controller owns the filter state for one chart session. Callers hold a
// reference to the controller instead of sharing the state directly.
//
// Controller is not safe for concurrent use; it is driven from a single
// event loop.
type Controller struct {
	state State
}

func NewController() *Controller { return &Controller{} }

// State returns a copy of the current selection.
func (c *Controller) State() State { return c.state.clone() }

// Toggle flips name on axis. Unknown axes are ignored. The controller does
// not know the catalog; callers that do should skip names it lacks.
func (c *Controller) Toggle(axis catalog.Axis, name string) {
	var set *map[string]struct{}
	switch axis {
	case catalog.AxisLanguage:
		set = &c.state.languages
	case catalog.AxisGenre:
		set = &c.state.genres
	default:
		return
	}

	if _, ok := (*set)[name]; ok {
		delete(*set, name)
		return
	}
	if *set == nil {
		*set = make(map[string]struct{})
	}
	(*set)[name] = struct{}{}
}

// Retain drops every active name for which keep returns false.
func (c *Controller) Retain(keep func(axis catalog.Axis, name string) bool) {
	for _, axis := range catalog.Axes {
		set := c.state.set(axis)
		for name := range set {
			if !keep(axis, name) {
				delete(set, name)
			}
		}
	}
}

// Reset clears both axes.
func (c *Controller) Reset() { c.state = State{} }

// VisibilityOf returns the full or dimmed visibility for rec.
func (c *Controller) VisibilityOf(rec catalog.MovieRecord) Visibility {
	if c.state.Matches(rec) {
		return visible
	}
	return dimmed
}

// Apply runs VisibilityOf over every record in one pass.
func (c *Controller) Apply(records []catalog.MovieRecord) []Visibility {
	out := make([]Visibility, len(records))
	for i, rec := range records {
		out[i] = c.VisibilityOf(rec)
	}
	return out
}
