// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"

	"github.com/katalvlaran/gridrect/grid"
)

// Verify checks that rects is a valid decomposition result for g:
// every rectangle lies inside the grid, meets the minimum size from opts,
// covers only 1-cells, and shares no cell with any other rectangle.
// The first violation is returned wrapped with the offending rectangle;
// match it with errors.Is against ErrOutOfBounds, ErrTooSmall, ErrNotFilled
// or ErrOverlap.
//
// Verify does not re-run the scan, so any rectangle list may be checked,
// including one produced elsewhere.
func Verify(g *grid.Grid, rects []grid.Rect, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return err
	}

	bounds := g.Bounds()
	used := g.NewMask()
	for i, r := range rects {
		if !r.Within(bounds) {
			return fmt.Errorf("rect #%d %v: %w", i, r, ErrOutOfBounds)
		}
		if r.W < o.MinWidth || r.H < o.MinHeight {
			return fmt.Errorf("rect #%d %v: %w", i, r, ErrTooSmall)
		}
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if !g.IsSet(x, y) {
					return fmt.Errorf("rect #%d %v at (%d,%d): %w", i, r, x, y, ErrNotFilled)
				}
			}
		}
		if !used.AllAvailable(r) {
			return fmt.Errorf("rect #%d %v: %w", i, r, ErrOverlap)
		}
		used.ConsumeRect(r)
	}

	return nil
}
