package engine

import (
	"math"

	"github.com/curiousTauseef/embla-carousel/parameter"
)

// ScrollBody integrates scroll position under a spring-damper model. Each
// Seek tick pulls velocity toward the target and decays it by friction:
//
//	diff     = target - location
//	velocity = (velocity + diff*spring) * friction
//	location = location + velocity
//
// With friction < 1 the body converges; once both diff and velocity drop
// below the settle epsilon the body pins itself to the target and further
// ticks are no-ops until a new target is set
type ScrollBody struct {
	location float64
	target   float64
	velocity float64

	// Sign of target-location when the scroll was requested; a styling hint
	// for forward/backward, not part of the physics
	direction int

	defaultSpeed float64
	defaultMass  float64
	speed        float64
	mass         float64
}

// NewScrollBody creates a settled body at the given location
func NewScrollBody(location, speed, mass float64) *ScrollBody {
	return &ScrollBody{
		location:     location,
		target:       location,
		defaultSpeed: speed,
		defaultMass:  mass,
		speed:        speed,
		mass:         mass,
	}
}

// Seek advances the simulation one tick
func (b *ScrollBody) Seek() *ScrollBody {
	diff := b.target - b.location
	spring := b.speed / (parameter.SpringDivisor * b.mass)
	b.velocity = (b.velocity + diff*spring) * parameter.FrictionCoeff
	b.location += b.velocity

	if b.settledNow() {
		// Pin exactly so machine-epsilon noise cannot oscillate forever
		b.location = b.target
		b.velocity = 0
	}
	return b
}

func (b *ScrollBody) settledNow() bool {
	return math.Abs(b.target-b.location) < parameter.SettleEpsilon &&
		math.Abs(b.velocity) < parameter.SettleEpsilon
}

// Settled reports whether the body rests on its target
func (b *ScrollBody) Settled() bool {
	return b.settledNow()
}

// Location returns the current position
func (b *ScrollBody) Location() float64 {
	return b.location
}

// Target returns the position the body is seeking
func (b *ScrollBody) Target() float64 {
	return b.target
}

// Velocity returns the current per-tick velocity
func (b *ScrollBody) Velocity() float64 {
	return b.velocity
}

// Direction returns the sign hint recorded by the latest target change
func (b *ScrollBody) Direction() int {
	return b.direction
}

// SetTarget points the body at a new position. Velocity is preserved so a
// retarget mid-flight decelerates and reaccelerates naturally
func (b *ScrollBody) SetTarget(target float64) *ScrollBody {
	b.target = target
	diff := target - b.location
	switch {
	case diff > 0:
		b.direction = 1
	case diff < 0:
		b.direction = -1
	}
	return b
}

// SetLocation teleports the body without animating, used when loop wrapping
// shifts both location and target by the content size
func (b *ScrollBody) SetLocation(location float64) *ScrollBody {
	b.location = location
	return b
}

// Grab halts momentum and parks the target at the current location, so a
// pointer press takes ownership of a body in flight
func (b *ScrollBody) Grab() *ScrollBody {
	b.velocity = 0
	b.target = b.location
	return b
}

// UseSpeed overrides spring stiffness for subsequent ticks
func (b *ScrollBody) UseSpeed(speed float64) *ScrollBody {
	b.speed = speed
	return b
}

// UseMass overrides mass for subsequent ticks
func (b *ScrollBody) UseMass(mass float64) *ScrollBody {
	b.mass = mass
	return b
}

// UseDefaultSpeed restores the configured stiffness
func (b *ScrollBody) UseDefaultSpeed() *ScrollBody {
	b.speed = b.defaultSpeed
	return b
}

// UseDefaultMass restores the configured mass
func (b *ScrollBody) UseDefaultMass() *ScrollBody {
	b.mass = b.defaultMass
	return b
}
