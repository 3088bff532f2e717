package filter

import (
	"testing"

	"github.com/janekbaraniewski/screenings/internal/catalog"
)

func record(langs, genres []string) catalog.MovieRecord {
	return catalog.MovieRecord{ID: "r", Languages: langs, Genres: genres}
}

func TestInitialStateShowsEverything(t *testing.T) {
	c := NewController()
	got := c.VisibilityOf(record(nil, nil))
	if got.Opacity != OpacityFull || !got.Interactive {
		t.Fatalf("VisibilityOf = %+v, want full and interactive", got)
	}
	if !c.State().IsEmpty() {
		t.Fatal("initial state is not empty")
	}
}

func TestToggleThenResetScenario(t *testing.T) {
	c := NewController()
	rec := record([]string{"English"}, []string{"Comedy"})

	c.Toggle(catalog.AxisLanguage, "English")
	c.Toggle(catalog.AxisGenre, "Drama")
	got := c.VisibilityOf(rec)
	if got.Opacity != OpacityDim || got.Interactive {
		t.Fatalf("after toggles VisibilityOf = %+v, want dimmed", got)
	}

	c.Reset()
	got = c.VisibilityOf(rec)
	if got.Opacity != OpacityFull || !got.Interactive {
		t.Fatalf("after reset VisibilityOf = %+v, want visible", got)
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	c := NewController()
	c.Toggle(catalog.AxisGenre, "Drama")
	before := c.State()

	c.Toggle(catalog.AxisLanguage, "French")
	c.Toggle(catalog.AxisLanguage, "French")
	if !c.State().Equal(before) {
		t.Fatalf("state = %v, want %v", c.State().Active(catalog.AxisLanguage), before.Active(catalog.AxisLanguage))
	}

	c.Toggle(catalog.AxisGenre, "Drama")
	if !c.State().IsEmpty() {
		t.Fatal("toggling the only active name should leave an empty state")
	}
}

func TestToggleUnknownAxis(t *testing.T) {
	c := NewController()
	c.Toggle(catalog.Axis("decade"), "1970s")
	if !c.State().IsEmpty() {
		t.Fatal("unknown axis should be ignored")
	}
}

func TestRetainDropsUnknownNames(t *testing.T) {
	c := NewController()
	c.Toggle(catalog.AxisGenre, "Opera")
	c.Toggle(catalog.AxisGenre, "Drama")
	c.Toggle(catalog.AxisLanguage, "Klingon")

	c.Retain(func(_ catalog.Axis, name string) bool { return name == "Drama" })

	state := c.State()
	if got := state.Active(catalog.AxisGenre); len(got) != 1 || got[0] != "Drama" {
		t.Fatalf("genres = %v, want [Drama]", got)
	}
	if got := state.Active(catalog.AxisLanguage); len(got) != 0 {
		t.Fatalf("languages = %v, want none", got)
	}
	if !c.VisibilityOf(record([]string{"English"}, []string{"Drama"})).Interactive {
		t.Fatal("record matching the retained genre should stay visible")
	}
}

func TestResetFromAnyState(t *testing.T) {
	c := NewController()
	for _, name := range []string{"English", "Turkish", "French"} {
		c.Toggle(catalog.AxisLanguage, name)
	}
	c.Toggle(catalog.AxisGenre, "War")
	c.Reset()
	if !c.State().Equal(State{}) {
		t.Fatal("reset did not return to the initial state")
	}
	c.Reset()
	if !c.State().IsEmpty() {
		t.Fatal("second reset left a selection")
	}
}

func TestStateIsACopy(t *testing.T) {
	c := NewController()
	c.Toggle(catalog.AxisLanguage, "English")
	snap := c.State()
	c.Toggle(catalog.AxisLanguage, "English")
	if !snap.IsActive(catalog.AxisLanguage, "English") {
		t.Fatal("snapshot changed after a later toggle")
	}
}

func intersects(tags []string, active []string) bool {
	for _, a := range active {
		for _, t := range tags {
			if a == t {
				return true
			}
		}
	}
	return false
}

// Exhaustively checks the OR-within-axis, AND-across-axes rule over every
// subset of a small vocabulary.
func TestVisibilityRule(t *testing.T) {
	langs := []string{"English", "Turkish", "French"}
	genres := []string{"Drama", "Comedy"}
	records := []catalog.MovieRecord{
		record(nil, nil),
		record([]string{"English"}, []string{"Comedy"}),
		record([]string{"Turkish", "French"}, []string{"Drama"}),
		record([]string{"French"}, []string{"Drama", "Comedy"}),
		record([]string{"German"}, nil),
	}

	for lm := 0; lm < 1<<len(langs); lm++ {
		for gm := 0; gm < 1<<len(genres); gm++ {
			c := NewController()
			var activeL, activeG []string
			for i, l := range langs {
				if lm&(1<<i) != 0 {
					c.Toggle(catalog.AxisLanguage, l)
					activeL = append(activeL, l)
				}
			}
			for i, g := range genres {
				if gm&(1<<i) != 0 {
					c.Toggle(catalog.AxisGenre, g)
					activeG = append(activeG, g)
				}
			}

			got := c.Apply(records)
			for i, rec := range records {
				want := (len(activeL) == 0 || intersects(rec.Languages, activeL)) &&
					(len(activeG) == 0 || intersects(rec.Genres, activeG))
				if got[i].Interactive != want {
					t.Fatalf("langs=%v genres=%v record %d: interactive = %v, want %v", activeL, activeG, i, got[i].Interactive, want)
				}
				if got[i].Opacity != OpacityFull && got[i].Opacity != OpacityDim {
					t.Fatalf("opacity %v is not one of the two levels", got[i].Opacity)
				}
				if want != (got[i].Opacity == OpacityFull) {
					t.Fatalf("opacity %v disagrees with visibility %v", got[i].Opacity, want)
				}
			}
		}
	}
}
