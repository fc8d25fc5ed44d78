package engine

import "math"

// LoopPoint is the translation a render sink applies to one slide so that
// wraparound appears seamless. Shift is always a whole multiple of the
// content size; zero means the slide sits at its measured position
type LoopPoint struct {
	Index int
	Shift float64
}

// SlideLooper computes per-slide shifts in loop mode. Pure transform
// bookkeeping over the measured geometry, no physics
type SlideLooper struct {
	viewSize    float64
	contentSize float64
	offsets     []float64
	sizes       []float64
}

// NewSlideLooper creates a looper over the measured geometry
func NewSlideLooper(m Measurements) *SlideLooper {
	return &SlideLooper{
		viewSize:    m.ViewSize,
		contentSize: m.ContentSize,
		offsets:     m.SlideOffsets,
		sizes:       m.SlideSizes,
	}
}

// CanLoop reports whether the content is large enough to cover the viewport
// at every wrapped position; smaller content would expose gaps
func (l *SlideLooper) CanLoop() bool {
	return len(l.offsets) > 0 && l.contentSize >= l.viewSize && l.contentSize > 0
}

// LoopPoints returns the shift for every slide at the given location. Each
// slide is moved by the content-size multiple that places it nearest the
// viewport center, so slides leaving one edge reappear at the other
func (l *SlideLooper) LoopPoints(location float64) []LoopPoint {
	points := make([]LoopPoint, len(l.offsets))
	viewCenter := l.viewSize / 2
	for i := range l.offsets {
		center := l.offsets[i] + location + l.sizes[i]/2
		k := math.Round((viewCenter - center) / l.contentSize)
		points[i] = LoopPoint{Index: i, Shift: k * l.contentSize}
	}
	return points
}
