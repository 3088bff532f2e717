// Package filter holds the facet selection state and decides which records
// stay visible under it.
package filter

import (
	"sort"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	"github.com/samber/lo"
)

const (
	OpacityFull = 0.7
	OpacityDim  = 0.1
)

// Visibility is the per-record outcome of a filter pass.
type Visibility struct {
	Opacity     float64
	Interactive bool
}

var (
	visible = Visibility{Opacity: OpacityFull, Interactive: true}
	dimmed  = Visibility{Opacity: OpacityDim, Interactive: false}
)

// State is the set of active names per axis. An empty set places no
// constraint on its axis. The zero value is the unfiltered state.
type State struct {
	languages map[string]struct{}
	genres    map[string]struct{}
}

func (s State) set(axis catalog.Axis) map[string]struct{} {
	switch axis {
	case catalog.AxisLanguage:
		return s.languages
	case catalog.AxisGenre:
		return s.genres
	}
	return nil
}

// IsActive reports whether name is selected on axis.
func (s State) IsActive(axis catalog.Axis, name string) bool {
	_, ok := s.set(axis)[name]
	return ok
}

// Active returns the selected names on axis, sorted.
func (s State) Active(axis catalog.Axis) []string {
	names := lo.Keys(s.set(axis))
	sort.Strings(names)
	return names
}

// IsEmpty reports whether no axis carries a selection.
func (s State) IsEmpty() bool { return len(s.languages) == 0 && len(s.genres) == 0 }

// Equal compares selections, treating nil and empty sets alike.
func (s State) Equal(o State) bool {
	return sameSet(s.languages, o.languages) && sameSet(s.genres, o.genres)
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Matches applies the selection rule: any selected name on an axis admits a
// record (OR within the axis) and every constrained axis must admit it (AND
// across axes).
func (s State) Matches(rec catalog.MovieRecord) bool {
	return admits(s.languages, rec.Languages) && admits(s.genres, rec.Genres)
}

func admits(active map[string]struct{}, tags []string) bool {
	if len(active) == 0 {
		return true
	}
	return lo.SomeBy(tags, func(tag string) bool {
		_, ok := active[tag]
		return ok
	})
}

func (s State) clone() State {
	return State{languages: cloneSet(s.languages), genres: cloneSet(s.genres)}
}

func cloneSet(in map[string]struct{}) map[string]struct{} {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}
