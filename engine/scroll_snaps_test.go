package engine

import (
	"testing"

	"github.com/curiousTauseef/embla-carousel/core"
)

// fiveSlides is the canonical fixture: five 80-unit slides in an 80-unit
// viewport, content size 400
func fiveSlides() Measurements {
	slides := make([]core.Rect, 5)
	for i := range slides {
		slides[i] = core.Rect{X: float64(i) * 80, Width: 80, Height: 10}
	}
	return measure(core.AxisHorizontal, StaticMeasure{
		Container: core.Rect{Width: 80, Height: 10},
		Slides:    slides,
	})
}

func TestMeasure(t *testing.T) {
	m := fiveSlides()
	if m.ViewSize != 80 {
		t.Errorf("Expected view size 80, got %v", m.ViewSize)
	}
	if m.ContentSize != 400 {
		t.Errorf("Expected content size 400, got %v", m.ContentSize)
	}
	for i, offset := range m.SlideOffsets {
		if offset != float64(i)*80 {
			t.Errorf("Expected offset %v at slide %d, got %v", float64(i)*80, i, offset)
		}
	}
}

func TestScrollSnapsAligned(t *testing.T) {
	m := fiveSlides()
	snaps := scrollSnaps(m, slideGroups(m, 1))

	want := []float64{0, -80, -160, -240, -320}
	if len(snaps) != len(want) {
		t.Fatalf("Expected %d snaps, got %d", len(want), len(snaps))
	}
	for i := range want {
		if snaps[i] != want[i] {
			t.Errorf("Expected snap %d to be %v, got %v", i, want[i], snaps[i])
		}
	}
}

func TestScrollSnapsGrouped(t *testing.T) {
	m := fiveSlides()
	snaps := scrollSnaps(m, slideGroups(m, 2))

	want := []float64{0, -160, -320}
	if len(snaps) != len(want) {
		t.Fatalf("Expected %d snaps, got %d", len(want), len(snaps))
	}
	for i := range want {
		if snaps[i] != want[i] {
			t.Errorf("Expected snap %d to be %v, got %v", i, want[i], snaps[i])
		}
	}
}

func TestSlideGroupsAuto(t *testing.T) {
	slides := make([]core.Rect, 6)
	for i := range slides {
		slides[i] = core.Rect{X: float64(i) * 40, Width: 40, Height: 10}
	}
	m := measure(core.AxisHorizontal, StaticMeasure{
		Container: core.Rect{Width: 80, Height: 10},
		Slides:    slides,
	})

	groups := slideGroups(m, 0)
	if len(groups) != 3 {
		t.Fatalf("Expected 3 auto groups of 2, got %d", len(groups))
	}
	for g, group := range groups {
		if len(group) != 2 {
			t.Errorf("Expected group %d to hold 2 slides, got %d", g, len(group))
		}
	}
}

func TestMeasureLimit(t *testing.T) {
	m := fiveSlides()
	snaps := scrollSnaps(m, slideGroups(m, 1))

	limit := measureLimit(m, snaps, false)
	if limit.Min != -320 || limit.Max != 0 {
		t.Errorf("Expected limit {-320, 0}, got {%v, %v}", limit.Min, limit.Max)
	}

	loopLimit := measureLimit(m, snaps, true)
	if loopLimit.Min != -400 || loopLimit.Max != 0 {
		t.Errorf("Expected loop limit {-400, 0}, got {%v, %v}", loopLimit.Min, loopLimit.Max)
	}
}

func TestMeasureLimitContentFits(t *testing.T) {
	m := measure(core.AxisHorizontal, StaticMeasure{
		Container: core.Rect{Width: 400, Height: 10},
		Slides: []core.Rect{
			{X: 0, Width: 80, Height: 10},
			{X: 80, Width: 80, Height: 10},
		},
	})
	snaps := scrollSnaps(m, slideGroups(m, 1))
	limit := measureLimit(m, snaps, false)

	if limit.Min != 0 || limit.Max != 0 {
		t.Errorf("Expected fitting content to collapse the limit to {0, 0}, got {%v, %v}",
			limit.Min, limit.Max)
	}

	contained := containSnaps(snaps, limit)
	for i, s := range contained {
		if s != 0 {
			t.Errorf("Expected contained snap %d to collapse to 0, got %v", i, s)
		}
	}
}

func TestContainSnaps(t *testing.T) {
	// Wider viewport: trailing snaps would overscroll without containment
	slides := make([]core.Rect, 5)
	for i := range slides {
		slides[i] = core.Rect{X: float64(i) * 80, Width: 80, Height: 10}
	}
	m := measure(core.AxisHorizontal, StaticMeasure{
		Container: core.Rect{Width: 160, Height: 10},
		Slides:    slides,
	})
	snaps := scrollSnaps(m, slideGroups(m, 1))
	limit := measureLimit(m, snaps, false)

	if limit.Min != -240 {
		t.Fatalf("Expected limit min -240, got %v", limit.Min)
	}
	contained := containSnaps(snaps, limit)
	want := []float64{0, -80, -160, -240, -240}
	for i := range want {
		if contained[i] != want[i] {
			t.Errorf("Expected contained snap %d to be %v, got %v", i, want[i], contained[i])
		}
	}
}

func TestScrollSnapsEmpty(t *testing.T) {
	m := measure(core.AxisHorizontal, StaticMeasure{
		Container: core.Rect{Width: 80, Height: 10},
	})
	snaps := scrollSnaps(m, slideGroups(m, 1))
	if len(snaps) != 1 || snaps[0] != 0 {
		t.Errorf("Expected a single resting snap at 0 for zero slides, got %v", snaps)
	}
	limit := measureLimit(m, snaps, false)
	if limit.Min != 0 || limit.Max != 0 {
		t.Errorf("Expected degenerate limit {0, 0}, got {%v, %v}", limit.Min, limit.Max)
	}
}
