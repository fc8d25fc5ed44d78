package parameter

import "time"

// Drag handling
const (
	// DragTrackSpeed is the spring stiffness used while a pointer is down so
	// the body tracks the finger near 1:1 instead of lagging on the spring
	DragTrackSpeed = 80.0
	// DragThreshold is the net displacement beyond which a completed drag
	// suppresses the trailing synthetic click
	DragThreshold = 4.0
	// DragForceBoost scales release velocity into flick momentum
	DragForceBoost = 1.4
	// DragFreeScrollGate is the minimum flick force required to skip past the
	// adjacent snap group on release
	DragFreeScrollGate = 12.0
	// RubberBandRange is the softness of overscroll past a limit: pointer
	// movement beyond an edge is scaled by range/(range+excess), so each unit
	// of overscroll buys less travel than the last
	RubberBandRange = 50.0
	// VelocityWindow is the trailing sample span used to derive release
	// velocity from pointer movement
	VelocityWindow = 100 * time.Millisecond
)
