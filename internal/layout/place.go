package layout

import "github.com/janekbaraniewski/screenings/internal/catalog"

// Mark is the pixel geometry of one record. Records without a screening
// month are not placed and must not be drawn.
type Mark struct {
	Index  int
	X      float64
	Y      float64
	Radius float64
	Placed bool
}

// Place positions sorted records. Marks sharing a month fan out to the
// right: the first takes the month's x, each later one the previous x plus
// step. The bucket table lives only for this call, so placing the same input
// twice yields identical output.
func Place(sorted []catalog.MovieRecord, s Scales, step float64) []Mark {
	next := make(map[int]float64)
	marks := make([]Mark, len(sorted))
	for i, rec := range sorted {
		marks[i] = Mark{Index: i}
		if rec.ScreeningDate.IsZero() {
			continue
		}

		key := rec.ScreeningDate.Key()
		x, taken := next[key]
		if taken {
			x += step
		} else {
			x = s.X.MapMonth(rec.ScreeningDate)
		}
		next[key] = x

		marks[i].X = x
		marks[i].Y = s.Y.Map(float64(rec.ProductionYear))
		marks[i].Radius = s.R.Map(rec.DurationMinutes)
		marks[i].Placed = true
	}
	return marks
}
