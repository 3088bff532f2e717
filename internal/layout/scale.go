package layout

import (
	"math"
	"time"

	"github.com/janekbaraniewski/screenings/internal/catalog"
)

// LinearScale maps [D0, D1] onto [R0, R1]. A degenerate domain maps every
// input to the middle of the range.
type LinearScale struct {
	D0, D1 float64
	R0, R1 float64
}

func (s LinearScale) Map(v float64) float64 {
	span := s.D1 - s.D0
	if span == 0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)/span*(s.R1-s.R0)
}

// TimeScale is a LinearScale over unix milliseconds.
type TimeScale struct {
	From, To time.Time
	R0, R1   float64
}

func (s TimeScale) Map(t time.Time) float64 {
	return LinearScale{
		D0: float64(s.From.UnixMilli()),
		D1: float64(s.To.UnixMilli()),
		R0: s.R0,
		R1: s.R1,
	}.Map(float64(t.UnixMilli()))
}

func (s TimeScale) MapMonth(m catalog.Month) float64 { return s.Map(m.Time()) }

// RadiusScale maps a duration to a radius so that mark area, not radius,
// grows linearly with duration.
type RadiusScale struct {
	Factor float64
	Min    float64
}

func (s RadiusScale) Map(minutes int) float64 {
	if minutes < 0 {
		minutes = 0
	}
	return math.Max(s.Min, s.Factor*math.Sqrt(float64(minutes)))
}

// Scales bundles the three mappings for one chart.
type Scales struct {
	X TimeScale
	Y LinearScale
	R RadiusScale

	YearFrom int
	YearTo   int
	YearStep int
}

// NewScales derives scales for records under cfg. The x domain comes from
// cfg; the y domain from the records' production years.
func NewScales(records []catalog.MovieRecord, cfg Config) Scales {
	cfg = cfg.Normalized()
	left, top, right, bottom := cfg.Viewport.PlotArea()
	lo, hi := YearDomain(records, cfg.YearTickStep)
	return Scales{
		X: TimeScale{From: cfg.DateFrom, To: cfg.DateTo, R0: left, R1: right},
		Y: LinearScale{D0: float64(lo), D1: float64(hi), R0: bottom, R1: top},
		R: RadiusScale{Factor: cfg.RadiusScale, Min: cfg.MinRadius},

		YearFrom: lo,
		YearTo:   hi,
		YearStep: cfg.YearTickStep,
	}
}

// YearDomain rounds the production-year extent outward to multiples of step.
// When every year falls on the same boundary (or there are no records) the
// domain is widened by one step so the axis keeps a non-zero span.
func YearDomain(records []catalog.MovieRecord, step int) (int, int) {
	if step <= 0 {
		step = defaultYearTickStep
	}
	if len(records) == 0 {
		return 0, step
	}
	minY, maxY := records[0].ProductionYear, records[0].ProductionYear
	for _, r := range records[1:] {
		minY = min(minY, r.ProductionYear)
		maxY = max(maxY, r.ProductionYear)
	}
	lo := floorTo(minY, step)
	hi := ceilTo(maxY, step)
	if lo == hi {
		hi += step
	}
	return lo, hi
}

func floorTo(v, step int) int {
	return int(math.Floor(float64(v)/float64(step))) * step
}

func ceilTo(v, step int) int {
	return int(math.Ceil(float64(v)/float64(step))) * step
}

// YearTicks lists the multiples of step in [lo, hi].
func YearTicks(lo, hi, step int) []int {
	if step <= 0 || hi < lo {
		return nil
	}
	var ticks []int
	for y := lo; y <= hi; y += step {
		ticks = append(ticks, y)
	}
	return ticks
}

// MonthTicks lists the first day of every month between from and to.
func MonthTicks(from, to time.Time) []time.Time {
	if to.Before(from) {
		return nil
	}
	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	if cur.Before(from) {
		cur = cur.AddDate(0, 1, 0)
	}
	var ticks []time.Time
	for !cur.After(to) {
		ticks = append(ticks, cur)
		cur = cur.AddDate(0, 1, 0)
	}
	return ticks
}
