package engine

// SlidesInView answers which slide indices intersect the viewport at a given
// location. In loop mode a slide is also checked at its wrapped positions one
// content span to either side, matching the looper's duplicated geometry
type SlidesInView struct {
	viewSize    float64
	contentSize float64
	offsets     []float64
	sizes       []float64
	loop        bool
}

// NewSlidesInView creates a visibility reader over the measured geometry
func NewSlidesInView(m Measurements, loop bool) SlidesInView {
	return SlidesInView{
		viewSize:    m.ViewSize,
		contentSize: m.ContentSize,
		offsets:     m.SlideOffsets,
		sizes:       m.SlideSizes,
		loop:        loop,
	}
}

// Check returns the indices of slides overlapping the viewport at location,
// in ascending order
func (v SlidesInView) Check(location float64) []int {
	var in []int
	for i := range v.offsets {
		if v.visible(i, location) {
			in = append(in, i)
		}
	}
	return in
}

// CheckNot returns the complement of Check: together they reproduce the full
// slide index set exactly once each
func (v SlidesInView) CheckNot(location float64) []int {
	var out []int
	for i := range v.offsets {
		if !v.visible(i, location) {
			out = append(out, i)
		}
	}
	return out
}

func (v SlidesInView) visible(i int, location float64) bool {
	start := v.offsets[i] + location
	if v.overlaps(start, v.sizes[i]) {
		return true
	}
	if v.loop && v.contentSize > 0 {
		return v.overlaps(start-v.contentSize, v.sizes[i]) ||
			v.overlaps(start+v.contentSize, v.sizes[i])
	}
	return false
}

// overlaps tests a slide span against the viewport [0, viewSize). Degenerate
// viewports treat every position as in view so a collapsed limit still
// reports content
func (v SlidesInView) overlaps(start, size float64) bool {
	if v.viewSize <= 0 {
		return true
	}
	return start < v.viewSize && start+size > 0
}
