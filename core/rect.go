package core

// Rect represents a measured rectangular extent
type Rect struct {
	X, Y          float64 // Top-left corner relative to the viewport origin
	Width, Height float64 // Dimensions (zero allowed for degenerate content)
}
