// SPDX-License-Identifier: MIT

// Mask storage (row-major) & availability accessors.
//
// Purpose:
//   - Track which cells may still seed or join a rectangle.
//   - Keep the same flat layout as Grid (offset = y*cols + x) so both walk in lockstep.
//   - Out-of-bounds reads report "unavailable" and out-of-bounds writes are ignored,
//     so callers can mark a neighborhood without clipping it first.
//
// Complexity quicksheet:
//   - NewMask: O(m*n); Available/Consume: O(1); ConsumeRect/AllAvailable: O(area); Clone: O(m*n).

package grid

import "strings"

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Mask is an m×n availability matrix. A fresh Mask has every cell available;
// cells only ever move from available to consumed.
type Mask struct {
	rows, cols int
	free       []bool // contiguous row-major storage (len == rows*cols)
}

// NewMask creates a rows×cols Mask with every cell available.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate and fill the flat backing slice.
// Returns ErrInvalidDimensions on a non-positive shape.
func NewMask(rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	free := make([]bool, rows*cols)
	for i := range free {
		free[i] = true
	}

	return &Mask{rows: rows, cols: cols, free: free}, nil
}

// NewMask returns a fully available Mask shaped like g.
func (g *Grid) NewMask() *Mask {
	m, _ := NewMask(g.rows, g.cols) // a constructed Grid always has a valid shape

	return m
}

// Rows returns the number of rows in the mask.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the number of columns in the mask.
func (m *Mask) Cols() int { return m.cols }

func (m *Mask) inBounds(x, y int) bool {
	return x >= 0 && x < m.cols && y >= 0 && y < m.rows
}

// Available reports whether (x,y) is in bounds and not yet consumed.
func (m *Mask) Available(x, y int) bool {
	return m.inBounds(x, y) && m.free[y*m.cols+x]
}

// Consume marks (x,y) unavailable. Out-of-bounds cells are ignored.
func (m *Mask) Consume(x, y int) {
	if m.inBounds(x, y) {
		m.free[y*m.cols+x] = false
	}
}

// ConsumeNeighborhood marks (x,y) and its four orthogonal neighbors unavailable,
// clipped to the mask.
func (m *Mask) ConsumeNeighborhood(x, y int) {
	m.Consume(x, y)
	for _, d := range offsets4 {
		m.Consume(x+d[0], y+d[1])
	}
}

// ConsumeRect marks every cell of r unavailable, clipped to the mask.
func (m *Mask) ConsumeRect(r Rect) {
	c := r.Intersect(Rect{W: m.cols, H: m.rows})
	for y := c.Y; y < c.Bottom(); y++ {
		row := m.free[y*m.cols : (y+1)*m.cols]
		for x := c.X; x < c.Right(); x++ {
			row[x] = false
		}
	}
}

// AllAvailable reports whether r is non-empty, fully inside the mask,
// and every one of its cells is still available.
func (m *Mask) AllAvailable(r Rect) bool {
	if !r.Within(Rect{W: m.cols, H: m.rows}) {
		return false
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if !m.free[y*m.cols+x] {
				return false
			}
		}
	}

	return true
}

// Count returns the number of available cells.
func (m *Mask) Count() int {
	n := 0
	for _, f := range m.free {
		if f {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	free := make([]bool, len(m.free))
	copy(free, m.free)

	return &Mask{rows: m.rows, cols: m.cols, free: free}
}

// String renders the mask one bracketed row per line, 1 = available, 0 = consumed.
func (m *Mask) String() string {
	var sb strings.Builder
	for y := 0; y < m.rows; y++ {
		sb.WriteString(_fmtRowOpen)
		for x := 0; x < m.cols; x++ {
			if x > 0 {
				sb.WriteString(_fmtSep)
			}
			if m.free[y*m.cols+x] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
