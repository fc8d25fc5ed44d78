package parameter

import "time"

// Scroll body physics defaults
const (
	// DefaultSpeed is the baseline spring stiffness multiplier for snap scrolls
	DefaultSpeed = 10.0
	// DefaultMass scales spring pull inversely; heavier bodies accelerate slower
	DefaultMass = 1.0
	// SpringDivisor normalizes speed into a per-tick spring constant:
	// spring = speed / (SpringDivisor * mass)
	SpringDivisor = 100.0
	// FrictionCoeff is the per-tick velocity retention factor, must stay < 1
	// for the body to converge
	FrictionCoeff = 0.77
	// SettleEpsilon bounds both |target-location| and |velocity| below which
	// the body is settled and pins itself to the target
	SettleEpsilon = 0.001
)

// Animation frame pacing
const (
	// FrameInterval is the real scheduler tick period (60fps)
	FrameInterval = time.Second / 60
)
