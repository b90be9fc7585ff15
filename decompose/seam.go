// SPDX-License-Identifier: MIT

package decompose

import "github.com/katalvlaran/gridrect/grid"

// check returns the first failed condition for candidate r, or ReasonNone.
// Order: left, bottom, right, top (strict only), fill, size.
func (s *scanner) check(r grid.Rect) Reason {
	switch {
	case s.leftSeamBroken(r):
		return ReasonLeftSeam
	case s.bottomSeamBroken(r):
		return ReasonBottomSeam
	case s.rightSeamBroken(r):
		return ReasonRightSeam
	case s.opts.StrictSeams && s.topSeamBroken(r):
		return ReasonTopSeam
	case !s.filled(r):
		return ReasonNotFilled
	case r.W < s.opts.MinWidth || r.H < s.opts.MinHeight:
		return ReasonTooSmall
	}

	return ReasonNone
}

// leftSeamBroken: some row of r has a 1 at column X-1 next to a 1 at column X.
// Column -1 reads as 0, so a rectangle on the left grid edge always passes.
func (s *scanner) leftSeamBroken(r grid.Rect) bool {
	for y := r.Y; y < r.Bottom(); y++ {
		if s.g.IsSet(r.X-1, y) && s.g.IsSet(r.X, y) {
			return true
		}
	}

	return false
}

// bottomSeamBroken: some column of r has a 1 on row Bottom() under a 1 on the last row.
func (s *scanner) bottomSeamBroken(r grid.Rect) bool {
	last := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		if s.g.IsSet(x, r.Bottom()) && s.g.IsSet(x, last) {
			return true
		}
	}

	return false
}

// rightSeamBroken: some row of r has a 1 on column Right() next to a 1 on the last column.
func (s *scanner) rightSeamBroken(r grid.Rect) bool {
	last := r.Right() - 1
	for y := r.Y; y < r.Bottom(); y++ {
		if s.g.IsSet(r.Right(), y) && s.g.IsSet(last, y) {
			return true
		}
	}

	return false
}

// topSeamBroken: some column of r has a 1 on row Y-1 above a 1 on row Y.
func (s *scanner) topSeamBroken(r grid.Rect) bool {
	for x := r.X; x < r.Right(); x++ {
		if s.g.IsSet(x, r.Y-1) && s.g.IsSet(x, r.Y) {
			return true
		}
	}

	return false
}

// filled reports whether every cell of r is a 1 that is still available.
func (s *scanner) filled(r grid.Rect) bool {
	if !s.avail.AllAvailable(r) {
		return false
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if !s.g.IsSet(x, y) {
				return false
			}
		}
	}

	return true
}
