package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Field is a loosely typed source value. Listings carry numbers both as JSON
// strings and as JSON numbers, and omit fields freely; Field records the raw
// text and whether anything was present at all.
type Field struct {
	text string
	set  bool
}

// F builds a present field.
func F(s string) Field { return Field{text: s, set: true} }

func (f Field) String() string { return f.text }

func (f Field) IsSet() bool { return f.set }

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = Field{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*f = Field{}
			return nil
		}
		*f = F(s)
		return nil
	}
	// Numbers, booleans and nested values keep their literal text; the
	// field parsers below decide what that text is worth.
	*f = F(string(b))
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.text)
}

// SplitList splits a comma-joined field into trimmed, non-empty segments.
// An empty or absent field yields an empty, non-nil slice.
func SplitList(val string) []string {
	if strings.TrimSpace(val) == "" {
		return []string{}
	}
	parts := lo.Map(strings.Split(val, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Compact(parts)
}

// ParseCount reads a whole number from a numeric field. Anything that is not
// a finite number becomes 0; fractions are truncated toward zero.
func ParseCount(val string) int {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(math.Trunc(f))
}

var monthLayouts = []string{
	"1/2006",
	"1.2006",
	"2006-1",
	"2006-01",
	"01-2006",
	"Jan 2006",
	"January 2006",
}

// ParseMonth reads a screening month such as "03/2024". Unparseable or empty
// input returns the zero Month.
func ParseMonth(val string) Month {
	val = strings.TrimSpace(val)
	if val == "" {
		return Month{}
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return NewMonth(t.Year(), t.Month())
		}
	}
	return Month{}
}
