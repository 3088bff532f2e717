package facets

import (
	"testing"

	"github.com/janekbaraniewski/screenings/internal/catalog"
)

func rec(id string, langs, genres []string) catalog.MovieRecord {
	return catalog.MovieRecord{ID: id, Languages: langs, Genres: genres}
}

func TestAggregateCountsPresencePerRecord(t *testing.T) {
	records := []catalog.MovieRecord{
		rec("a", []string{"Turkish", "Turkish"}, []string{"Drama"}),
		rec("b", []string{"English"}, []string{"Drama", "Comedy"}),
		rec("c", []string{"Turkish", "English"}, nil),
		rec("d", nil, []string{}),
	}

	got := Aggregate(records, catalog.AxisLanguage)
	want := []Count{{"Turkish", 2}, {"English", 2}}
	if len(got) != len(want) {
		t.Fatalf("Aggregate = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Aggregate[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAggregateSortsDescendingStable(t *testing.T) {
	records := []catalog.MovieRecord{
		rec("a", nil, []string{"War"}),
		rec("b", nil, []string{"Comedy"}),
		rec("c", nil, []string{"Drama"}),
		rec("d", nil, []string{"Drama", "Comedy"}),
		rec("e", nil, []string{"Drama"}),
	}

	got := Aggregate(records, catalog.AxisGenre)
	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.Name
	}
	want := []string{"Drama", "Comedy", "War"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestFacetCountMatchesDistinctRecords(t *testing.T) {
	records := []catalog.MovieRecord{
		rec("a", []string{"English"}, []string{"Drama", "Drama"}),
		rec("b", []string{"English", "French"}, []string{"Drama"}),
		rec("c", []string{"French"}, []string{"Comedy"}),
	}
	ix := Build(records)
	for _, axis := range catalog.Axes {
		tagged := 0
		for _, r := range records {
			if len(r.Tags(axis)) > 0 {
				tagged++
			}
		}
		for _, c := range ix.Axis(axis) {
			distinct := 0
			for _, r := range records {
				for _, tag := range r.Tags(axis) {
					if tag == c.Name {
						distinct++
						break
					}
				}
			}
			if c.Count != distinct {
				t.Errorf("%s/%s count = %d, want %d", axis, c.Name, c.Count, distinct)
			}
		}
		if Total(ix.Axis(axis)) < tagged {
			t.Errorf("%s total %d < tagged records %d", axis, Total(ix.Axis(axis)), tagged)
		}
	}
	if !ix.Has(catalog.AxisLanguage, "French") || ix.Has(catalog.AxisGenre, "French") {
		t.Fatal("Has reported wrong membership")
	}
}

func TestBuildEmpty(t *testing.T) {
	ix := Build(nil)
	if len(ix.Languages) != 0 || len(ix.Genres) != 0 || ix.Records != 0 {
		t.Fatalf("Build(nil) = %+v", ix)
	}
}

func TestHighlightFraction(t *testing.T) {
	tests := []struct {
		count, total int
		want         float64
	}{
		{0, 0, 0},
		{3, 0, 0},
		{1, 4, 0.25},
		{4, 4, 1},
		{5, 4, 1},
	}
	for _, tt := range tests {
		if got := HighlightFraction(tt.count, tt.total); got != tt.want {
			t.Errorf("HighlightFraction(%d, %d) = %v, want %v", tt.count, tt.total, got, tt.want)
		}
	}
}
