package tui

import (
	"testing"
	"time"

	"github.com/janekbaraniewski/screenings/internal/chart"
	"github.com/janekbaraniewski/screenings/internal/filter"
)

func marksWithOpacity(ops ...float64) []chart.MarkState {
	out := make([]chart.MarkState, len(ops))
	for i, o := range ops {
		out[i] = chart.MarkState{Opacity: o}
	}
	return out
}

func TestFaderSnapsOnFirstPush(t *testing.T) {
	f := newFader(300 * time.Millisecond)
	f.Retarget(marksWithOpacity(filter.OpacityFull, filter.OpacityDim))
	if f.Animating() {
		t.Fatal("first push should not animate")
	}
	if got := f.Opacity(1); got != filter.OpacityDim {
		t.Fatalf("opacity = %v, want %v", got, filter.OpacityDim)
	}
}

func TestFaderEasesToTarget(t *testing.T) {
	f := newFader(300 * time.Millisecond)
	f.Retarget(marksWithOpacity(filter.OpacityFull))
	f.Retarget(marksWithOpacity(filter.OpacityDim))
	if !f.Animating() {
		t.Fatal("expected running tween")
	}

	f.Step(100 * time.Millisecond)
	mid := f.Opacity(0)
	if mid >= filter.OpacityFull || mid <= filter.OpacityDim {
		t.Fatalf("mid-fade opacity = %v, want strictly between", mid)
	}

	for f.Step(fadeFrame) {
	}
	if got := f.Opacity(0); got != filter.OpacityDim {
		t.Fatalf("final opacity = %v, want %v", got, filter.OpacityDim)
	}
}

func TestFaderRetargetMidFadeStartsFromShown(t *testing.T) {
	f := newFader(300 * time.Millisecond)
	f.Retarget(marksWithOpacity(filter.OpacityFull))
	f.Retarget(marksWithOpacity(filter.OpacityDim))
	f.Step(150 * time.Millisecond)
	mid := f.Opacity(0)

	f.Retarget(marksWithOpacity(filter.OpacityFull))
	if got := f.Opacity(0); got != mid {
		t.Fatalf("retarget jumped from %v to %v", mid, got)
	}
	for f.Step(fadeFrame) {
	}
	if got := f.Opacity(0); got != filter.OpacityFull {
		t.Fatalf("final opacity = %v, want %v", got, filter.OpacityFull)
	}
}

func TestFaderZeroDurationSnaps(t *testing.T) {
	f := newFader(0)
	f.Retarget(marksWithOpacity(filter.OpacityFull))
	f.Retarget(marksWithOpacity(filter.OpacityDim))
	if f.Animating() {
		t.Fatal("zero duration should not animate")
	}
	if got := f.Opacity(0); got != filter.OpacityDim {
		t.Fatalf("opacity = %v", got)
	}
}
