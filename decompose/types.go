// SPDX-License-Identifier: MIT

package decompose

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridrect/grid"
)

// DefaultMinSize is the smallest accepted width and height.
const DefaultMinSize = 2

// Sentinel errors for Decompose and Verify.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed.
	ErrNilGrid = fmt.Errorf("decompose: grid is nil: %w", grid.ErrInvalidArgument)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("decompose: invalid option supplied: %w", grid.ErrInvalidArgument)

	// ErrOutOfBounds indicates a rectangle that is empty or leaves the grid.
	ErrOutOfBounds = errors.New("decompose: rectangle outside grid")

	// ErrTooSmall indicates a rectangle below the minimum size.
	ErrTooSmall = errors.New("decompose: rectangle below minimum size")

	// ErrNotFilled indicates a rectangle covering a 0-cell.
	ErrNotFilled = errors.New("decompose: rectangle covers a zero cell")

	// ErrOverlap indicates two rectangles sharing a cell.
	ErrOverlap = errors.New("decompose: rectangles overlap")
)

// Reason explains why a candidate rectangle was rejected.
type Reason int

const (
	// ReasonNone means the candidate passed every check.
	ReasonNone Reason = iota
	// ReasonLeftSeam: a 1 sits directly left of the left edge.
	ReasonLeftSeam
	// ReasonBottomSeam: a 1 sits directly below a 1 on the bottom edge.
	ReasonBottomSeam
	// ReasonRightSeam: a 1 sits directly right of a 1 on the right edge.
	ReasonRightSeam
	// ReasonTopSeam: a 1 sits directly above a 1 on the top edge (strict seams only).
	ReasonTopSeam
	// ReasonNotFilled: the box holds a 0 or an already consumed cell.
	ReasonNotFilled
	// ReasonTooSmall: width or height below the minimum.
	ReasonTooSmall
)

var reasonNames = [...]string{
	ReasonNone:       "none",
	ReasonLeftSeam:   "left-seam",
	ReasonBottomSeam: "bottom-seam",
	ReasonRightSeam:  "right-seam",
	ReasonTopSeam:    "top-seam",
	ReasonNotFilled:  "not-filled",
	ReasonTooSmall:   "too-small",
}

// String returns a short kebab-case name for the reason.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("reason(%d)", int(r))
	}

	return reasonNames[r]
}

// Option configures Decompose and Verify via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation on use.
type Option func(*Options)

// Options holds the parameters and hooks of one decomposition.
type Options struct {
	// MinWidth and MinHeight are the smallest accepted rectangle dimensions.
	MinWidth, MinHeight int

	// StrictSeams adds the top-edge seam check.
	StrictSeams bool

	// OnAccept is called for every emitted rectangle, in discovery order.
	OnAccept func(r grid.Rect)

	// OnReject is called for every rejected candidate before invalidation.
	OnReject func(r grid.Rect, reason Reason)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a 2×2 minimum, the default seam rules and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MinWidth:  DefaultMinSize,
		MinHeight: DefaultMinSize,
		OnAccept:  func(grid.Rect) {},
		OnReject:  func(grid.Rect, Reason) {},
	}
}

// WithMinSize sets the minimum accepted width and height.
//
//	w, h >= 1: accepted
//	otherwise: ErrOptionViolation
func WithMinSize(w, h int) Option {
	return func(o *Options) {
		if w < 1 || h < 1 {
			if o.err != nil {
				return
			}
			o.err = fmt.Errorf("%w: minimum size must be at least 1×1 (got %d×%d)", ErrOptionViolation, w, h)
			return
		}
		o.MinWidth, o.MinHeight = w, h
	}
}

// WithStrictSeams also rejects candidates with a 1 flush against their top edge.
func WithStrictSeams() Option {
	return func(o *Options) {
		o.StrictSeams = true
	}
}

// WithOnAccept registers a callback run for each emitted rectangle.
func WithOnAccept(fn func(r grid.Rect)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAccept = fn
		}
	}
}

// WithOnReject registers a callback run for each rejected candidate.
func WithOnReject(fn func(r grid.Rect, reason Reason)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReject = fn
		}
	}
}

// gatherOptions applies opts over the defaults and returns the first recorded violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
