package tui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/janekbaraniewski/screenings/internal/chart"
)

// fadeFrame is the animation tick interval.
const fadeFrame = 33 * time.Millisecond

// fader eases each mark's displayed opacity toward the value last pushed by
// the chart. Marks are keyed by their position in the pushed slice, which is
// stable for the lifetime of one chart.
type fader struct {
	duration float32
	shown    []float64
	target   []float64
	tweens   map[int]*gween.Tween
}

func newFader(d time.Duration) *fader {
	return &fader{
		duration: float32(d.Seconds()),
		tweens:   make(map[int]*gween.Tween),
	}
}

// Retarget sets new opacity targets. A mark count change means a different
// chart, so displayed values snap instead of animating.
func (f *fader) Retarget(marks []chart.MarkState) {
	if len(marks) != len(f.shown) {
		f.shown = make([]float64, len(marks))
		f.target = make([]float64, len(marks))
		clear(f.tweens)
		for i, m := range marks {
			f.shown[i] = m.Opacity
			f.target[i] = m.Opacity
		}
		return
	}

	for i, m := range marks {
		if f.target[i] == m.Opacity {
			continue
		}
		f.target[i] = m.Opacity
		if f.duration <= 0 {
			f.shown[i] = m.Opacity
			delete(f.tweens, i)
			continue
		}
		// A running tween is replaced, starting from what is on screen now.
		f.tweens[i] = gween.New(float32(f.shown[i]), float32(m.Opacity), f.duration, ease.OutQuad)
	}
}

// Step advances every running tween by dt and reports whether any is still
// running.
func (f *fader) Step(dt time.Duration) bool {
	sec := float32(dt.Seconds())
	for i, tw := range f.tweens {
		v, done := tw.Update(sec)
		if done {
			f.shown[i] = f.target[i]
			delete(f.tweens, i)
			continue
		}
		f.shown[i] = float64(v)
	}
	return len(f.tweens) > 0
}

func (f *fader) Animating() bool { return len(f.tweens) > 0 }

// Opacity is the displayed opacity of mark i.
func (f *fader) Opacity(i int) float64 {
	if i < 0 || i >= len(f.shown) {
		return 0
	}
	return f.shown[i]
}

// Reset forgets displayed values so the next Retarget snaps.
func (f *fader) Reset() {
	f.shown = nil
	f.target = nil
	clear(f.tweens)
}
