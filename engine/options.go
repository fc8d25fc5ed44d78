package engine

import (
	"fmt"
	"math"

	"github.com/curiousTauseef/embla-carousel/core"
	"github.com/curiousTauseef/embla-carousel/parameter"
)

// Options is the closed configuration surface of one engine. Construct with
// DefaultOptions and override fields; every engine takes an immutable copy,
// never shared mutable defaults
type Options struct {
	// Axis selects the scroll dimension
	Axis core.Axis
	// Loop enables wraparound scrolling with modulo position arithmetic
	Loop bool
	// SlidesToScroll is the group size per snap point; zero or negative
	// selects auto grouping, packing as many slides as fit the viewport
	SlidesToScroll int
	// Draggable enables pointer dragging
	Draggable bool
	// StartIndex is the snap point targeted at activation, normalized with
	// the usual wrap/clamp rules
	StartIndex int
	// Speed is the default spring stiffness multiplier
	Speed float64
	// Mass is the default scroll body mass
	Mass float64
}

// DefaultOptions returns the documented defaults
func DefaultOptions() Options {
	return Options{
		Axis:           core.AxisHorizontal,
		Loop:           false,
		SlidesToScroll: 1,
		Draggable:      true,
		StartIndex:     0,
		Speed:          parameter.DefaultSpeed,
		Mass:           parameter.DefaultMass,
	}
}

// Validate rejects configurations no engine can be built from. Violations
// wrap ErrConfiguration
func (o Options) Validate() error {
	if o.Axis != core.AxisHorizontal && o.Axis != core.AxisVertical {
		return fmt.Errorf("%w: unknown axis %d", ErrConfiguration, int(o.Axis))
	}
	if math.IsNaN(o.Speed) || math.IsInf(o.Speed, 0) || o.Speed <= 0 {
		return fmt.Errorf("%w: speed must be finite and positive, got %v", ErrConfiguration, o.Speed)
	}
	if math.IsNaN(o.Mass) || math.IsInf(o.Mass, 0) || o.Mass <= 0 {
		return fmt.Errorf("%w: mass must be finite and positive, got %v", ErrConfiguration, o.Mass)
	}
	return nil
}
