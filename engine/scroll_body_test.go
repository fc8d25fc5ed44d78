package engine

import (
	"math"
	"testing"

	"github.com/curiousTauseef/embla-carousel/parameter"
)

func TestScrollBodyConverges(t *testing.T) {
	tests := []struct {
		name     string
		location float64
		target   float64
	}{
		{"Forward", 0, -80},
		{"Backward", -160, -80},
		{"Long jump", 0, -320},
		{"Tiny step", 0, -0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewScrollBody(tt.location, parameter.DefaultSpeed, parameter.DefaultMass)
			b.SetTarget(tt.target)

			ticks := 0
			for !b.Settled() && ticks < 1000 {
				b.Seek()
				ticks++
			}
			if !b.Settled() {
				t.Fatalf("Expected body to settle within 1000 ticks, still at %v velocity %v",
					b.Location(), b.Velocity())
			}
			if b.Location() != tt.target {
				t.Errorf("Expected settled location to pin to %v, got %v", tt.target, b.Location())
			}
			if b.Velocity() != 0 {
				t.Errorf("Expected settled velocity 0, got %v", b.Velocity())
			}
		})
	}
}

func TestScrollBodySettledTicksAreNoOps(t *testing.T) {
	b := NewScrollBody(0, parameter.DefaultSpeed, parameter.DefaultMass)
	b.SetTarget(-80)
	for i := 0; i < 1000 && !b.Settled(); i++ {
		b.Seek()
	}

	location := b.Location()
	for i := 0; i < 100; i++ {
		b.Seek()
	}
	if b.Location() != location || b.Velocity() != 0 {
		t.Errorf("Expected settled body to stay pinned, drifted to %v velocity %v",
			b.Location(), b.Velocity())
	}
}

func TestScrollBodyRetargetKeepsMomentum(t *testing.T) {
	b := NewScrollBody(0, parameter.DefaultSpeed, parameter.DefaultMass)
	b.SetTarget(-80)
	for i := 0; i < 5; i++ {
		b.Seek()
	}
	velocity := b.Velocity()
	if velocity == 0 {
		t.Fatal("Expected body to be in motion after 5 ticks")
	}

	b.SetTarget(-160)
	if b.Velocity() != velocity {
		t.Errorf("Expected retarget to preserve velocity %v, got %v", velocity, b.Velocity())
	}
}

func TestScrollBodyDirection(t *testing.T) {
	b := NewScrollBody(0, parameter.DefaultSpeed, parameter.DefaultMass)
	b.SetTarget(-80)
	if b.Direction() != -1 {
		t.Errorf("Expected direction -1 scrolling forward, got %d", b.Direction())
	}
	b.SetTarget(40)
	if b.Direction() != 1 {
		t.Errorf("Expected direction 1 scrolling backward, got %d", b.Direction())
	}
}

func TestScrollBodySpeedOverride(t *testing.T) {
	slow := NewScrollBody(0, parameter.DefaultSpeed, parameter.DefaultMass)
	fast := NewScrollBody(0, parameter.DefaultSpeed, parameter.DefaultMass)
	slow.SetTarget(-80)
	fast.UseSpeed(parameter.DragTrackSpeed).SetTarget(-80)

	slow.Seek()
	fast.Seek()
	if math.Abs(fast.Velocity()) <= math.Abs(slow.Velocity()) {
		t.Errorf("Expected higher speed to accelerate harder: fast %v, slow %v",
			fast.Velocity(), slow.Velocity())
	}

	fast.UseDefaultSpeed()
	fastTick := fast.Velocity()
	slowRef := NewScrollBody(fast.Location(), parameter.DefaultSpeed, parameter.DefaultMass)
	slowRef.velocity = fastTick
	slowRef.SetTarget(-80)
	fast.Seek()
	slowRef.Seek()
	if fast.Velocity() != slowRef.Velocity() {
		t.Errorf("Expected UseDefaultSpeed to restore baseline stiffness")
	}
}

func TestScrollBodyGrab(t *testing.T) {
	b := NewScrollBody(0, parameter.DefaultSpeed, parameter.DefaultMass)
	b.SetTarget(-320)
	for i := 0; i < 10; i++ {
		b.Seek()
	}

	b.Grab()
	if b.Velocity() != 0 {
		t.Errorf("Expected grab to halt momentum, velocity %v", b.Velocity())
	}
	if b.Target() != b.Location() {
		t.Errorf("Expected grab to park target at location %v, got %v", b.Location(), b.Target())
	}
	if !b.Settled() {
		t.Error("Expected grabbed body to be settled")
	}
}
