// Package catalog turns raw movie listings into normalized records.
package catalog

import (
	"cmp"
	"fmt"
	"time"
)

// Axis names a facet dimension records can be filtered on.
type Axis string

const (
	AxisLanguage Axis = "language"
	AxisGenre    Axis = "genre"
)

// Axes lists the facet axes in display order.
var Axes = []Axis{AxisLanguage, AxisGenre}

// ParseAxis accepts the singular and plural spellings used on the command line.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "language", "languages", "lang":
		return AxisLanguage, true
	case "genre", "genres":
		return AxisGenre, true
	}
	return "", false
}

// Month is a month-granularity calendar point. The zero value is the
// "unknown screening date" sentinel and orders before every real month.
type Month struct {
	year  int
	month time.Month
}

func NewMonth(year int, month time.Month) Month {
	if year < 1 || month < time.January || month > time.December {
		return Month{}
	}
	return Month{year: year, month: month}
}

func (m Month) IsZero() bool { return m.year == 0 }

func (m Month) Year() int { return m.year }

func (m Month) Month() time.Month { return m.month }

// Key is a dense ordinal (year*12 + month-1). The sentinel maps to -1 so it
// never shares a bucket with a real month.
func (m Month) Key() int {
	if m.IsZero() {
		return -1
	}
	return m.year*12 + int(m.month) - 1
}

func (m Month) Compare(o Month) int { return cmp.Compare(m.Key(), o.Key()) }

// Time returns the first instant of the month in UTC.
func (m Month) Time() time.Time {
	if m.IsZero() {
		return time.Time{}
	}
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%04d", int(m.month), m.year)
}

// MovieRecord is one normalized catalog entry. Records are not mutated after
// Normalize returns them.
type MovieRecord struct {
	ID            string
	Title         string
	OriginalTitle string
	Link          string
	ImageRef      string

	Directors []string
	Genres    []string
	Languages []string

	ProductionYear  int
	ScreeningDate   Month
	DurationMinutes int
}

// Tags returns the record's values on the given facet axis.
func (r MovieRecord) Tags(axis Axis) []string {
	switch axis {
	case AxisLanguage:
		return r.Languages
	case AxisGenre:
		return r.Genres
	}
	return nil
}
