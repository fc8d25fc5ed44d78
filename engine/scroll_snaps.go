package engine

import (
	"github.com/curiousTauseef/embla-carousel/core"
)

// scrollSnaps returns one target position per slide group: the offset that
// aligns the group's first slide to the viewport start. Snap positions run
// non-increasing since scrolling forward moves in the negative direction.
// Slideless content still gets a single resting snap at the origin
func scrollSnaps(m Measurements, groups [][]int) []float64 {
	if len(groups) == 0 {
		return []float64{0}
	}
	snaps := make([]float64, len(groups))
	for g, group := range groups {
		snaps[g] = -m.SlideOffsets[group[0]]
	}
	return snaps
}

// containSnaps clamps every snap into the scrollable range so trailing groups
// do not overscroll past the content end. Non-loop mode only; loop geometry
// keeps raw aligned offsets and wraps positions instead
func containSnaps(snaps []float64, limit core.Limit) []float64 {
	contained := make([]float64, len(snaps))
	for i, s := range snaps {
		contained[i] = limit.Constrain(s)
	}
	return contained
}

// measureLimit computes the legal scroll range. Max is the first snap (the
// scroll-start position); Min reaches the content end, or collapses onto Max
// when the content fits the viewport. In loop mode the range spans the full
// content size so RemoveOffset wraps modulo content
func measureLimit(m Measurements, snaps []float64, loop bool) core.Limit {
	var max float64
	if len(snaps) > 0 {
		max = snaps[0]
	}
	if loop {
		return core.NewLimit(max-m.ContentSize, max)
	}
	overflow := m.ContentSize - m.ViewSize
	if overflow <= 0 {
		return core.NewLimit(max, max)
	}
	return core.NewLimit(max-overflow, max)
}
