package core

import "fmt"

// Axis selects the single scroll dimension active for one carousel instance
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// ParseAxis maps a configuration string to an Axis
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "horizontal":
		return AxisHorizontal, nil
	case "y", "vertical":
		return AxisVertical, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// String implements fmt.Stringer
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// MeasureSize returns the rect extent along the axis
func (a Axis) MeasureSize(r Rect) float64 {
	if a == AxisVertical {
		return r.Height
	}
	return r.Width
}

// MeasureStart returns the rect leading edge along the axis
func (a Axis) MeasureStart(r Rect) float64 {
	if a == AxisVertical {
		return r.Y
	}
	return r.X
}

// MeasureEnd returns the rect trailing edge along the axis
func (a Axis) MeasureEnd(r Rect) float64 {
	return a.MeasureStart(r) + a.MeasureSize(r)
}

// MeasurePoint picks the axis component of a two-dimensional point,
// used to reduce pointer coordinates to the active scroll dimension
func (a Axis) MeasurePoint(x, y float64) float64 {
	if a == AxisVertical {
		return y
	}
	return x
}
