package layout

import (
	"sort"
	"strings"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortRecords returns a copy of records ordered by screening month (unknown
// months first) and then by id. Ids are compared with the root collation,
// falling back to byte order so the result is total.
func SortRecords(records []catalog.MovieRecord) []catalog.MovieRecord {
	out := make([]catalog.MovieRecord, len(records))
	copy(out, records)

	col := collate.New(language.Und)
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].ScreeningDate.Compare(out[j].ScreeningDate); c != 0 {
			return c < 0
		}
		if c := col.CompareString(out[i].ID, out[j].ID); c != 0 {
			return c < 0
		}
		return strings.Compare(out[i].ID, out[j].ID) < 0
	})
	return out
}
