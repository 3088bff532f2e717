// Package facets ranks the language and genre tags present in a catalog.
package facets

import (
	"sort"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	"github.com/samber/lo"
)

// Count is the number of distinct records carrying a tag.
type Count struct {
	Name  string
	Count int
}

// Index holds both ranked facet lists. It is computed once over the full,
// unfiltered catalog and is not updated when filters change.
type Index struct {
	Languages []Count
	Genres    []Count
	Records   int
}

func Build(records []catalog.MovieRecord) Index {
	return Index{
		Languages: Aggregate(records, catalog.AxisLanguage),
		Genres:    Aggregate(records, catalog.AxisGenre),
		Records:   len(records),
	}
}

// Axis returns the ranked list for one axis.
func (ix Index) Axis(axis catalog.Axis) []Count {
	switch axis {
	case catalog.AxisLanguage:
		return ix.Languages
	case catalog.AxisGenre:
		return ix.Genres
	}
	return nil
}

// Has reports whether name occurs on the axis anywhere in the catalog.
func (ix Index) Has(axis catalog.Axis, name string) bool {
	return lo.ContainsBy(ix.Axis(axis), func(c Count) bool { return c.Name == name })
}

// Aggregate counts each tag once per record and sorts descending by count.
// Equal counts keep the order in which the tags were first seen.
func Aggregate(records []catalog.MovieRecord, axis catalog.Axis) []Count {
	var order []string
	counts := make(map[string]int)
	for _, rec := range records {
		for _, tag := range lo.Uniq(rec.Tags(axis)) {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	out := make([]Count, len(order))
	for i, name := range order {
		out[i] = Count{Name: name, Count: counts[name]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Total sums the counts of a facet list.
func Total(counts []Count) int {
	return lo.SumBy(counts, func(c Count) int { return c.Count })
}

// HighlightFraction is count/total clamped to [0, 1]; a zero total yields 0.
func HighlightFraction(count, total int) float64 {
	if total <= 0 || count <= 0 {
		return 0
	}
	f := float64(count) / float64(total)
	if f > 1 {
		return 1
	}
	return f
}
