// Package layout maps catalog records into pixel space: scales, ordering and
// the fan-out placement of marks that share a screening month.
package layout

import "time"

type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

type Viewport struct {
	Width   float64
	Height  float64
	Margins Margins
}

// Config parameterizes one chart. Every concrete chart is a Config value
// rather than its own pipeline.
type Config struct {
	Viewport      Viewport
	DateFrom      time.Time
	DateTo        time.Time
	YearTickStep  int
	RadiusScale   float64
	MinRadius     float64
	CollisionStep float64
}

const (
	defaultWidth         = 1200
	defaultHeight        = 800
	defaultYearTickStep  = 5
	defaultRadiusScale   = 1.5
	defaultMinRadius     = 1.5
	defaultCollisionStep = 5
)

var defaultMargins = Margins{Top: 20, Right: 20, Bottom: 20, Left: 70}

func DefaultConfig() Config {
	return Config{
		Viewport: Viewport{
			Width:   defaultWidth,
			Height:  defaultHeight,
			Margins: defaultMargins,
		},
		DateFrom:      time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		DateTo:        time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		YearTickStep:  defaultYearTickStep,
		RadiusScale:   defaultRadiusScale,
		MinRadius:     defaultMinRadius,
		CollisionStep: defaultCollisionStep,
	}
}

// Normalized replaces unusable values with defaults.
func (c Config) Normalized() Config {
	def := DefaultConfig()
	if c.Viewport.Width <= 0 {
		c.Viewport.Width = def.Viewport.Width
	}
	if c.Viewport.Height <= 0 {
		c.Viewport.Height = def.Viewport.Height
	}
	m := &c.Viewport.Margins
	m.Top = max(m.Top, 0)
	m.Right = max(m.Right, 0)
	m.Bottom = max(m.Bottom, 0)
	m.Left = max(m.Left, 0)
	if c.DateFrom.IsZero() && c.DateTo.IsZero() {
		c.DateFrom, c.DateTo = def.DateFrom, def.DateTo
	}
	if c.DateTo.Before(c.DateFrom) {
		c.DateFrom, c.DateTo = c.DateTo, c.DateFrom
	}
	if c.YearTickStep <= 0 {
		c.YearTickStep = def.YearTickStep
	}
	if c.RadiusScale <= 0 {
		c.RadiusScale = def.RadiusScale
	}
	if c.MinRadius < 0 {
		c.MinRadius = 0
	}
	if c.CollisionStep < 0 {
		c.CollisionStep = 0
	}
	return c
}

// PlotArea returns the pixel bounds inside the margins.
func (v Viewport) PlotArea() (left, top, right, bottom float64) {
	return v.Margins.Left, v.Margins.Top, v.Width - v.Margins.Right, v.Height - v.Margins.Bottom
}
