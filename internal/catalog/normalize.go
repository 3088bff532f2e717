package catalog

import "strings"

// RawRecord is a listing as it arrives from the dataset file or store.
type RawRecord struct {
	ID             Field `json:"id"`
	Title          Field `json:"title"`
	Original       Field `json:"original"`
	Director       Field `json:"director"`
	YearProduction Field `json:"year_production"`
	When           Field `json:"when"`
	Genres         Field `json:"genres"`
	Languages      Field `json:"languages"`
	Duration       Field `json:"duration"`
	Link           Field `json:"link"`
	Image          Field `json:"image"`
}

// Normalize converts raw listings into records, one per input and in the
// same order. It never drops a record: malformed fields fall back to their
// documented defaults.
func Normalize(raws []RawRecord) []MovieRecord {
	out := make([]MovieRecord, len(raws))
	for i, raw := range raws {
		out[i] = NormalizeOne(raw)
	}
	return out
}

// NormalizeOne converts a single listing.
//
// Invalid production years and durations become 0 rather than excluding the
// record; such records still count toward the year domain.
func NormalizeOne(raw RawRecord) MovieRecord {
	duration := ParseCount(raw.Duration.String())
	if duration < 0 {
		duration = 0
	}
	return MovieRecord{
		ID:              strings.TrimSpace(raw.ID.String()),
		Title:           raw.Title.String(),
		OriginalTitle:   raw.Original.String(),
		Link:            raw.Link.String(),
		ImageRef:        raw.Image.String(),
		Directors:       SplitList(raw.Director.String()),
		Genres:          SplitList(raw.Genres.String()),
		Languages:       SplitList(raw.Languages.String()),
		ProductionYear:  ParseCount(raw.YearProduction.String()),
		ScreeningDate:   ParseMonth(raw.When.String()),
		DurationMinutes: duration,
	}
}
