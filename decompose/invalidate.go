// SPDX-License-Identifier: MIT

package decompose

import "github.com/katalvlaran/gridrect/grid"

// invalidate consumes the region of a rejected candidate r: every 1-cell
// 4-connected to the seed (r.X, r.Y) without leaving r, together with the four
// grid neighbors of each such cell. Neighbors may lie outside r.
func (s *scanner) invalidate(r grid.Rect) {
	for _, idx := range s.g.ComponentWithin(r.X, r.Y, r) {
		x, y := s.g.Coordinate(idx)
		s.avail.ConsumeNeighborhood(x, y)
	}
}
