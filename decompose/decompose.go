// SPDX-License-Identifier: MIT

package decompose

import "github.com/katalvlaran/gridrect/grid"

// Decompose splits g into rectangles of 1-cells with clean seams.
//
// Behavior:
//  1. Visit cells in row-major order, skipping 0s and consumed cells.
//  2. Probe the candidate's width (run of 1s rightward) and height (run of 1s downward).
//  3. Check seams, fill and minimum size (see Reason for the order).
//  4. Accepted: emit and consume the box. Rejected: invalidate the seed's region.
//
// The grid is only read. The result is never nil; an all-zero grid yields an
// empty slice. Returns ErrNilGrid or ErrOptionViolation before scanning.
func Decompose(g *grid.Grid, opts ...Option) ([]grid.Rect, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	s := &scanner{g: g, avail: g.NewMask(), opts: o, rects: []grid.Rect{}}
	s.run()

	return s.rects, nil
}

// FromValues validates a raw 0/1 matrix and decomposes it.
// Input errors wrap grid.ErrInvalidArgument.
func FromValues(values [][]int, opts ...Option) ([]grid.Rect, error) {
	g, err := grid.New(values)
	if err != nil {
		return nil, err
	}

	return Decompose(g, opts...)
}

// scanner carries the state of one decomposition.
type scanner struct {
	g     *grid.Grid
	avail *grid.Mask
	opts  Options
	rects []grid.Rect
}

func (s *scanner) run() {
	for y := 0; y < s.g.Rows(); y++ {
		for x := 0; x < s.g.Cols(); x++ {
			if !s.g.IsSet(x, y) || !s.avail.Available(x, y) {
				continue
			}
			cand := s.probe(x, y)
			if reason := s.check(cand); reason != ReasonNone {
				s.opts.OnReject(cand, reason)
				s.invalidate(cand)
				continue
			}
			s.commit(cand)
		}
	}
}

// probe grows a candidate from (x,y): width along row y, height along column x.
// Both runs look only at grid values; availability is checked later.
func (s *scanner) probe(x, y int) grid.Rect {
	w := 1
	for s.g.IsSet(x+w, y) {
		w++
	}
	h := 1
	for s.g.IsSet(x, y+h) {
		h++
	}

	return grid.Rect{X: x, Y: y, W: w, H: h}
}

// commit emits r and consumes its cells.
func (s *scanner) commit(r grid.Rect) {
	s.rects = append(s.rects, r)
	s.avail.ConsumeRect(r)
	s.opts.OnAccept(r)
}
