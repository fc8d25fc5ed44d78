package input

import (
	"math"
	"time"
)

// PointerKind classifies a pointer event along the active axis
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is one sample of a single-pointer gesture, already reduced to
// the active scroll axis. The engine does not care whether it originates from
// mouse, touch, or a synthetic source
type PointerEvent struct {
	Kind     PointerKind
	Position float64
	Time     time.Time
}

// Valid reports whether the event carries a usable position. Malformed
// samples are dropped by the consumer rather than surfaced as errors
func (e PointerEvent) Valid() bool {
	return !math.IsNaN(e.Position) && !math.IsInf(e.Position, 0)
}
