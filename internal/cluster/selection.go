package cluster

// Selection size bounds. A graph under six nodes reads as noise, over
// twelve it stops being legible; both are runtime-tunable via settings.
const (
	DefaultMinSelection = 6
	DefaultMaxSelection = 12
)

// Select picks the working set of signal indices for visualization:
// the largest component, truncated to maxSize, or padded from the
// following components (in component order, then member order) until
// minSize is reached or the batch runs out.
func Select(clusters [][]int, minSize, maxSize int) []int {
	if len(clusters) == 0 {
		return nil
	}

	top := clusters[0]
	if len(top) > maxSize {
		top = top[:maxSize]
	}
	selection := make([]int, len(top))
	copy(selection, top)

	if len(selection) >= minSize || len(clusters) == 1 {
		return selection
	}

	seen := make(map[int]bool, len(selection))
	for _, idx := range selection {
		seen[idx] = true
	}
	for _, c := range clusters[1:] {
		for _, idx := range c {
			if seen[idx] {
				continue
			}
			seen[idx] = true
			selection = append(selection, idx)
			if len(selection) >= minSize {
				return selection
			}
		}
	}
	return selection
}
