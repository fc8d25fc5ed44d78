package engine

// slideGroups partitions slide indices into scroll groups. A positive
// slidesToScroll yields fixed-size chunks; zero or negative selects auto
// grouping, packing as many slides as fit the viewport into each group.
// Pure function of the measurements, deterministic for identical input
func slideGroups(m Measurements, slidesToScroll int) [][]int {
	count := len(m.SlideSizes)
	if count == 0 {
		return nil
	}

	if slidesToScroll > 0 {
		groups := make([][]int, 0, (count+slidesToScroll-1)/slidesToScroll)
		for start := 0; start < count; start += slidesToScroll {
			end := start + slidesToScroll
			if end > count {
				end = count
			}
			group := make([]int, 0, end-start)
			for i := start; i < end; i++ {
				group = append(group, i)
			}
			groups = append(groups, group)
		}
		return groups
	}

	// Auto: greedy fill against the viewport extent, at least one slide per
	// group so zero-size viewports still terminate
	var groups [][]int
	var group []int
	var span float64
	for i := 0; i < count; i++ {
		size := m.SlideSizes[i]
		if len(group) > 0 && span+size > m.ViewSize {
			groups = append(groups, group)
			group = nil
			span = 0
		}
		group = append(group, i)
		span += size
	}
	if len(group) > 0 {
		groups = append(groups, group)
	}
	return groups
}
