package engine

import (
	"math"

	"github.com/curiousTauseef/embla-carousel/core"
	"github.com/curiousTauseef/embla-carousel/event"
	"github.com/curiousTauseef/embla-carousel/input"
	"github.com/curiousTauseef/embla-carousel/parameter"
)

// dragState tracks one pointer-down..pointer-up cycle
type dragState int

const (
	dragIdle dragState = iota
	dragActive
	dragClickSuppressed
)

// DragHandler converts a single-pointer event stream into scroll body motion:
// while the pointer is down the body tracks it near 1:1, with rubber-band
// attenuation once the target sits past a limit, and on release the
// trailing-window velocity becomes flick momentum toward a snapped target.
// Movement is applied as per-move deltas so loop-mode wrap shifts never
// desync the gesture from the body
type DragHandler struct {
	enabled bool
	loop    bool
	state   dragState

	body      *ScrollBody
	scrollTo  *ScrollTo
	animation *Animation
	emitter   *event.Emitter
	limit     core.Limit
	tracker   *input.VelocityTracker

	startLocation float64
	startPosition float64
	startIndex    int
	lastPosition  float64
}

// NewDragHandler wires the handler to its collaborators
func NewDragHandler(body *ScrollBody, scrollTo *ScrollTo, animation *Animation,
	emitter *event.Emitter, limit core.Limit, loop, enabled bool) *DragHandler {
	return &DragHandler{
		enabled:   enabled,
		loop:      loop,
		body:      body,
		scrollTo:  scrollTo,
		animation: animation,
		emitter:   emitter,
		limit:     limit,
		tracker:   input.NewVelocityTracker(parameter.VelocityWindow),
	}
}

// Handle consumes one pointer event. Malformed samples (non-finite positions)
// are dropped without disturbing the gesture
func (d *DragHandler) Handle(ev input.PointerEvent) {
	if !ev.Valid() {
		return
	}
	switch ev.Kind {
	case input.PointerDown:
		d.down(ev)
	case input.PointerMove:
		d.move(ev)
	case input.PointerUp:
		d.up(ev)
	}
}

// PointerDown reports whether a drag cycle is live
func (d *DragHandler) PointerDown() bool {
	return d.state == dragActive
}

// ClickAllowed reports whether the last completed cycle permits the trailing
// synthetic click; a drag that actually moved suppresses it
func (d *DragHandler) ClickAllowed() bool {
	return d.state != dragClickSuppressed
}

func (d *DragHandler) down(ev input.PointerEvent) {
	if !d.enabled {
		return
	}
	d.state = dragActive
	d.startPosition = ev.Position
	d.lastPosition = ev.Position
	d.startLocation = d.body.Location()
	d.startIndex = d.scrollTo.Current().Get()
	d.tracker.Reset()
	d.tracker.Add(ev.Position, ev.Time)

	// Take ownership of a body in flight and track the pointer stiffly
	d.body.Grab().UseDefaultMass().UseSpeed(parameter.DragTrackSpeed)
	d.animation.Start()
	d.emitter.Emit(event.PointerDown)
}

func (d *DragHandler) move(ev input.PointerEvent) {
	if d.state != dragActive {
		return
	}
	delta := ev.Position - d.lastPosition
	d.lastPosition = ev.Position
	d.tracker.Add(ev.Position, ev.Time)
	d.body.SetTarget(d.body.Target() + d.dampened(delta))
}

func (d *DragHandler) up(ev input.PointerEvent) {
	if d.state != dragActive {
		return
	}
	d.lastPosition = ev.Position
	d.tracker.Add(ev.Position, ev.Time)

	force := d.tracker.Velocity(parameter.FrameInterval) * parameter.DragForceBoost
	d.body.UseDefaultSpeed().UseDefaultMass()

	total := ev.Position - d.startPosition
	if math.Abs(total) > parameter.DragThreshold {
		d.state = dragClickSuppressed
	} else {
		d.state = dragIdle
	}

	d.release(force, total)
	d.emitter.Emit(event.PointerUp)
}

// release snaps to the index nearest the projected stopping position. Small
// flicks stay within one group of where the drag started so a micro-drag
// cannot jump across the carousel
func (d *DragHandler) release(force, total float64) {
	projected := d.body.Target() + force
	target := d.scrollTo.Current().Set(d.scrollTo.nearestSnap(projected))

	if math.Abs(force) < parameter.DragFreeScrollGate {
		delta := d.indexDelta(d.startIndex, target.Get())
		if delta > 1 {
			delta = 1
		}
		if delta < -1 {
			delta = -1
		}
		target = target.Set(d.startIndex).Add(delta)
	}

	direction := sign(force)
	if direction == 0 {
		direction = sign(total)
	}
	d.scrollTo.Index(target, direction)
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// indexDelta returns the signed step count from a to b, taking the shortest
// wrapped path in loop mode
func (d *DragHandler) indexDelta(a, b int) int {
	delta := b - a
	length := d.scrollTo.Current().Length()
	if !d.loop || length == 0 {
		return delta
	}
	delta = ((delta % length) + length) % length
	if delta > length/2 {
		delta -= length
	}
	return delta
}

// dampened attenuates movement that pulls the target further past a limit.
// The factor shrinks as the overscroll deepens, a diminishing-returns curve
// tuned by the rubber band range; in-range movement and movement back toward
// the range stay 1:1. Loop mode has no limits to rub against
func (d *DragHandler) dampened(delta float64) float64 {
	if d.loop {
		return delta
	}
	target := d.body.Target()
	pullingOut := (target >= d.limit.Max && delta > 0) ||
		(target <= d.limit.Min && delta < 0)
	if !pullingOut {
		return delta
	}
	var excess float64
	if target >= d.limit.Max {
		excess = target - d.limit.Max
	} else {
		excess = d.limit.Min - target
	}
	return delta * parameter.RubberBandRange / (parameter.RubberBandRange + excess)
}
