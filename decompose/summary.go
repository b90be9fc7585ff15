// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"

	"github.com/katalvlaran/gridrect/grid"
)

// Summary aggregates how much of a grid a rectangle list covers.
type Summary struct {
	Rectangles int // number of rectangles
	Ones       int // 1-cells in the grid
	Covered    int // cells inside some rectangle
	Uncovered  int // 1-cells left outside every rectangle
	Islands    int // 4-connected components of 1-cells
}

// Summarize computes a Summary for rects over g. Rectangles are assumed to be
// non-overlapping and inside the grid (see Verify).
func Summarize(g *grid.Grid, rects []grid.Rect) Summary {
	s := Summary{
		Rectangles: len(rects),
		Ones:       g.Ones(),
		Islands:    len(g.ConnectedComponents()),
	}
	for _, r := range rects {
		s.Covered += r.Area()
	}
	s.Uncovered = s.Ones - s.Covered

	return s
}

// String formats the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("rectangles=%d ones=%d covered=%d uncovered=%d islands=%d",
		s.Rectangles, s.Ones, s.Covered, s.Uncovered, s.Islands)
}
