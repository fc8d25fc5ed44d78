package core

import "math"

// Limit is the legal scroll range. Max is the scroll-start position and Min
// the scroll-end position, so Min <= Max always; increasing scroll moves in
// the negative direction. Degenerate content collapses to Min == Max.
type Limit struct {
	Min, Max float64
}

// NewLimit normalizes the pair so Min <= Max holds
func NewLimit(min, max float64) Limit {
	if min > max {
		min, max = max, min
	}
	return Limit{Min: min, Max: max}
}

// Length returns the span of the range
func (l Limit) Length() float64 {
	return l.Max - l.Min
}

// Constrain clamps v into [Min, Max]
func (l Limit) Constrain(v float64) float64 {
	if v < l.Min {
		return l.Min
	}
	if v > l.Max {
		return l.Max
	}
	return v
}

// ReachedMin reports whether v is at or past the scroll-end edge
func (l Limit) ReachedMin(v float64) bool {
	return v <= l.Min
}

// ReachedMax reports whether v is at or past the scroll-start edge
func (l Limit) ReachedMax(v float64) bool {
	return v >= l.Max
}

// ReachedAny reports whether v lies outside the range in either direction
func (l Limit) ReachedAny(v float64) bool {
	return l.ReachedMin(v) || l.ReachedMax(v)
}

// RemoveOffset wraps v modulo the range length into [Min, Max]. Used in loop
// mode where the limit spans the full content size
func (l Limit) RemoveOffset(v float64) float64 {
	length := l.Length()
	if length == 0 {
		return l.Max
	}
	r := math.Mod(v-l.Min, length)
	if r < 0 {
		r += length
	}
	return l.Min + r
}
