// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// offsets4 lists the 4-neighborhood as (dx, dy) pairs: N, E, S, W.
var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is an immutable m×n binary matrix.
// Cells are stored row-major: cells[y*cols+x] holds the value at column x, row y.
type Grid struct {
	rows, cols int
	cells      []uint8 // len == rows*cols, every entry is 0 or 1
}

// New constructs a Grid from a non-empty, rectangular 2D slice of 0/1 values.
// The input is deep-copied, so later changes to values do not affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs from the first,
// ErrNonBinary if any cell is neither 0 nor 1.
// Complexity: O(m×n) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for y, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), cols, ErrNonRectangular)
		}
	}

	cells := make([]uint8, rows*cols)
	for y, row := range values {
		for x, v := range row {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", x, y, v, ErrNonBinary)
			}
			cells[y*cols+x] = uint8(v)
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// NewFromCells constructs a Grid from a flat row-major slice of rows*cols values.
// Returns ErrInvalidDimensions if rows or cols is not positive,
// ErrShapeMismatch if len(cells) != rows*cols, ErrNonBinary on a non 0/1 value.
func NewFromCells(rows, cols int, cells []int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%d×%d: %w", rows, cols, ErrInvalidDimensions)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("got %d cells for %d×%d: %w", len(cells), rows, cols, ErrShapeMismatch)
	}

	data := make([]uint8, len(cells))
	for i, v := range cells {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("cell (%d,%d) = %d: %w", i%cols, i/cols, v, ErrNonBinary)
		}
		data[i] = uint8(v)
	}

	return &Grid{rows: rows, cols: cols, cells: data}, nil
}

// Rows returns the number of rows (m).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (n).
func (g *Grid) Cols() int { return g.cols }

// Bounds returns the rectangle covering the whole grid.
func (g *Grid) Bounds() Rect {
	return Rect{X: 0, Y: 0, W: g.cols, H: g.rows}
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the value (0 or 1) at column x, row y.
// (x,y) must be in bounds.
func (g *Grid) At(x, y int) int {
	return int(g.cells[g.index(x, y)])
}

// IsSet reports whether (x,y) is in bounds and holds a 1.
// Out-of-bounds coordinates read as 0, which lets edge probes skip explicit checks.
func (g *Grid) IsSet(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.index(x, y)] == 1
}

// Ones returns the number of 1-cells.
func (g *Grid) Ones() int {
	n := 0
	for _, v := range g.cells {
		n += int(v)
	}

	return n
}

// Values returns a fresh [][]int copy of the grid.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for y := range out {
		row := make([]int, g.cols)
		for x := range row {
			row[x] = int(g.cells[g.index(x, y)])
		}
		out[y] = row
	}

	return out
}

// index maps (x,y) to a row-major index: y*cols + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.cols + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.cols, idx / g.cols
}

// String renders the grid as space-separated rows, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * g.cols * 2)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + g.cells[g.index(x, y)])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
