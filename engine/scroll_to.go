package engine

import (
	"math"

	"github.com/curiousTauseef/embla-carousel/core"
	"github.com/curiousTauseef/embla-carousel/event"
)

// ScrollTo translates snap indexes and raw distances into scroll body targets
// and primes the animation loop. It owns the current/previous index cells on
// behalf of the engine
type ScrollTo struct {
	body      *ScrollBody
	animation *Animation
	emitter   *event.Emitter
	limit     core.Limit
	snaps     []float64
	loop      bool

	current  *Index
	previous *Index
}

// NewScrollTo wires the translator to its collaborators
func NewScrollTo(body *ScrollBody, animation *Animation, emitter *event.Emitter,
	limit core.Limit, snaps []float64, loop bool, current, previous *Index) *ScrollTo {
	return &ScrollTo{
		body:      body,
		animation: animation,
		emitter:   emitter,
		limit:     limit,
		snaps:     snaps,
		loop:      loop,
		current:   current,
		previous:  previous,
	}
}

// Current returns the currently targeted index
func (s *ScrollTo) Current() Index {
	return *s.current
}

// Index targets a snap point. direction is a hint (-1 backward, 1 forward,
// 0 none) that breaks ties for loop shortest-path resolution and is recorded
// on the body for styling consumers. Targeting the already-current snap with
// the body at rest on it is a silent no-op
func (s *ScrollTo) Index(target Index, direction int) {
	if len(s.snaps) == 0 {
		return
	}
	snap := s.snaps[target.Get()]
	newTarget := s.targetLocation(snap, direction)

	if target.Get() == s.current.Get() && newTarget == s.body.Target() {
		return
	}

	if target.Get() != s.current.Get() {
		*s.previous = s.current.Clone()
		*s.current = target
		s.body.SetTarget(newTarget)
		s.emitter.Emit(event.Select)
	} else {
		s.body.SetTarget(newTarget)
	}
	s.animation.Start()
}

// Distance offsets the current target by a raw delta. With snap set, the
// result re-snaps to the nearest snap point, which also updates the index
func (s *ScrollTo) Distance(delta float64, snap bool) {
	raw := s.body.Target() + delta
	if snap {
		s.Index(s.current.Set(s.nearestSnap(raw)), 0)
		return
	}
	if !s.loop {
		raw = s.limit.Constrain(raw)
	}
	s.body.SetTarget(raw)
	s.animation.Start()
}

// targetLocation maps a snap value to the concrete body target. Non-loop
// engines use the snap directly; loop engines move by the shortest wrapped
// distance from the current target, unless the direction hint (sign of the
// desired position delta) forces the long way around
func (s *ScrollTo) targetLocation(snap float64, direction int) float64 {
	if !s.loop {
		return snap
	}
	length := s.limit.Length()
	if length == 0 {
		return snap
	}
	base := s.limit.RemoveOffset(s.body.Target())
	diff := snap - base
	if math.Abs(diff) > length/2 {
		if diff > 0 {
			diff -= length
		} else {
			diff += length
		}
	}
	if direction > 0 && diff < 0 {
		diff += length
	}
	if direction < 0 && diff > 0 {
		diff -= length
	}
	return s.body.Target() + diff
}

// nearestSnap returns the index of the snap closest to location, comparing
// wrapped distances in loop mode
func (s *ScrollTo) nearestSnap(location float64) int {
	best, bestDist := 0, math.Inf(1)
	length := s.limit.Length()
	wrapLoop := s.loop && length > 0
	wrapped := location
	if wrapLoop {
		wrapped = s.limit.RemoveOffset(location)
	}
	for i, snap := range s.snaps {
		d := math.Abs(snap - wrapped)
		if wrapLoop {
			if alt := length - d; alt < d {
				d = alt
			}
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
