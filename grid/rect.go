// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Rect is an axis-aligned box of cells.
// (X, Y) is the top-left corner as (column, row); W and H are the width
// in columns and the height in rows. Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// Area returns W*H.
func (r Rect) Area() int { return r.W * r.H }

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether cell (x,y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Within reports whether r lies entirely inside o.
func (r Rect) Within(o Rect) bool {
	return !r.Empty() && r.X >= o.X && r.Y >= o.Y && r.Right() <= o.Right() && r.Bottom() <= o.Bottom()
}

// Intersect returns the overlap of r and o; the result is Empty when they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}

	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// String formats r as "[x, y, w, h]".
func (r Rect) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d]", r.X, r.Y, r.W, r.H)
}
