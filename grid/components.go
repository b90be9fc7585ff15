// SPDX-License-Identifier: MIT

package grid

// ConnectedComponents finds all 4-connected regions ("islands") of 1-cells.
// Components are returned in row-major order of their first cell; each one is a
// slice of row-major cell indices in BFS order from that cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(m·n·4).
// Memory: O(m·n) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	bounds := g.Bounds()
	var comps [][]int

	for i0, v := range g.cells {
		if v == 0 || seen[i0] {
			continue
		}
		comps = append(comps, g.flood(i0, bounds, seen))
	}

	return comps
}

// ComponentWithin returns the 1-cells 4-connected to (x,y) by paths that never
// leave bounds. The seed itself is included first; the remaining cells follow in
// BFS order. Returns nil when the seed is outside bounds or the grid, or holds a 0.
//
// Time:   O(area(bounds)·4).
// Memory: O(m·n) for seen flags.
func (g *Grid) ComponentWithin(x, y int, bounds Rect) []int {
	bounds = bounds.Intersect(g.Bounds())
	if !bounds.Contains(x, y) || !g.IsSet(x, y) {
		return nil
	}
	seen := make([]bool, len(g.cells))

	return g.flood(g.index(x, y), bounds, seen)
}

// flood runs a queue-based BFS over 1-cells from seed, restricted to bounds,
// marking every reached index in seen.
func (g *Grid) flood(seed int, bounds Rect, seen []bool) []int {
	queue := []int{seed}
	seen[seed] = true

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := g.Coordinate(queue[qi])
		for _, d := range offsets4 {
			vx, vy := ux+d[0], uy+d[1]
			if !bounds.Contains(vx, vy) || !g.IsSet(vx, vy) {
				continue
			}
			vi := g.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
