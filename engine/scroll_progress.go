package engine

import (
	"github.com/curiousTauseef/embla-carousel/core"
)

// ScrollProgress normalizes a location into [0,1]: the scroll-start position
// (limit max) reports 0, the scroll-end position (limit min) reports 1, and
// the value varies linearly in between
type ScrollProgress struct {
	limit core.Limit
}

// NewScrollProgress creates a progress reader over the scroll range
func NewScrollProgress(limit core.Limit) ScrollProgress {
	return ScrollProgress{limit: limit}
}

// Get returns the normalized progress at location. Degenerate ranges where
// the content fits the viewport report 0 everywhere
func (p ScrollProgress) Get(location float64) float64 {
	length := p.limit.Max - p.limit.Min
	if length == 0 {
		return 0
	}
	return (location - p.limit.Max) / (p.limit.Min - p.limit.Max)
}
