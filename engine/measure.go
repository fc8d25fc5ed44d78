package engine

import (
	"github.com/curiousTauseef/embla-carousel/core"
)

// MeasureProvider supplies the container and slide geometry for one engine
// activation. The engine never assumes how rects are obtained, only that they
// stay stable until the next ReInit
type MeasureProvider interface {
	ContainerRect() core.Rect
	SlideRects() []core.Rect
}

// StaticMeasure is a fixed MeasureProvider for hosts that lay slides out
// themselves (and for tests)
type StaticMeasure struct {
	Container core.Rect
	Slides    []core.Rect
}

// ContainerRect implements MeasureProvider
func (m StaticMeasure) ContainerRect() core.Rect {
	return m.Container
}

// SlideRects implements MeasureProvider
func (m StaticMeasure) SlideRects() []core.Rect {
	return m.Slides
}

// Measurements holds the axis-reduced geometry every other component consumes.
// Recomputed wholesale on each activation, never mutated in place
type Measurements struct {
	ViewSize     float64
	SlideSizes   []float64
	SlideOffsets []float64 // Leading edges relative to the container start
	ContentSize  float64   // Span from first leading edge to last trailing edge
}

// measure reduces provider rects to scalars along the active axis
func measure(axis core.Axis, p MeasureProvider) Measurements {
	container := p.ContainerRect()
	slides := p.SlideRects()
	containerStart := axis.MeasureStart(container)

	m := Measurements{
		ViewSize:     axis.MeasureSize(container),
		SlideSizes:   make([]float64, len(slides)),
		SlideOffsets: make([]float64, len(slides)),
	}
	for i, r := range slides {
		m.SlideSizes[i] = axis.MeasureSize(r)
		m.SlideOffsets[i] = axis.MeasureStart(r) - containerStart
	}
	if len(slides) > 0 {
		first := m.SlideOffsets[0]
		last := m.SlideOffsets[len(slides)-1] + m.SlideSizes[len(slides)-1]
		m.ContentSize = last - first
	}
	return m
}
