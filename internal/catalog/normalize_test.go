package catalog

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeDefaults(t *testing.T) {
	raws := []RawRecord{
		{ID: F("a"), Director: F(""), When: Field{}, Duration: F("long")},
		{ID: F("b")},
	}

	got := Normalize(raws)
	if len(got) != len(raws) {
		t.Fatalf("len = %d, want %d", len(got), len(raws))
	}
	for i, rec := range got {
		if rec.Directors == nil || rec.Genres == nil || rec.Languages == nil {
			t.Fatalf("record %d has nil list fields: %+v", i, rec)
		}
		if len(rec.Directors) != 0 {
			t.Errorf("record %d directors = %v, want empty", i, rec.Directors)
		}
		if !rec.ScreeningDate.IsZero() {
			t.Errorf("record %d screening date = %v, want unknown", i, rec.ScreeningDate)
		}
		if rec.DurationMinutes != 0 || rec.ProductionYear != 0 {
			t.Errorf("record %d numeric defaults = (%d, %d), want zeros", i, rec.DurationMinutes, rec.ProductionYear)
		}
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("order not preserved: %q, %q", got[0].ID, got[1].ID)
	}
}

func TestNormalizeOne(t *testing.T) {
	rec := NormalizeOne(RawRecord{
		ID:             F(" 12 "),
		Title:          F("Sürü"),
		Original:       F("Sürü"),
		Director:       F("Zeki Ökten, Yılmaz Güney"),
		YearProduction: F("1978"),
		When:           F("02/2024"),
		Genres:         F("Drama"),
		Languages:      F("Turkish, Kurdish"),
		Duration:       F("-5"),
		Link:           F("https://example.org/suru"),
	})

	if rec.ID != "12" {
		t.Errorf("ID = %q, want 12", rec.ID)
	}
	if len(rec.Directors) != 2 || rec.Directors[1] != "Yılmaz Güney" {
		t.Errorf("Directors = %v", rec.Directors)
	}
	if rec.ScreeningDate != NewMonth(2024, time.February) {
		t.Errorf("ScreeningDate = %v", rec.ScreeningDate)
	}
	if rec.DurationMinutes != 0 {
		t.Errorf("DurationMinutes = %d, want 0 for negative input", rec.DurationMinutes)
	}
	if got := rec.Tags(AxisLanguage); len(got) != 2 {
		t.Errorf("Tags(language) = %v", got)
	}
}

func TestDetailLines(t *testing.T) {
	rec := MovieRecord{
		Title:           "Yol",
		OriginalTitle:   "Yol",
		ProductionYear:  1982,
		Directors:       []string{"Şerif Gören", "Yılmaz Güney"},
		DurationMinutes: 114,
		Genres:          []string{"Drama"},
	}
	lines := rec.Detail().Lines()
	want := []string{
		"Yol (1982)",
		"Director: Şerif Gören, Yılmaz Güney",
		"Duration: 114 min",
		"Genres: Drama",
	}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("Lines() = %q, want %q", lines, want)
	}
}
