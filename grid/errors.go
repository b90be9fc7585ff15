// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella sentinel for malformed input.
// Every other sentinel in this package wraps it, so callers may match
// either the specific condition or the whole class with errors.Is.
var ErrInvalidArgument = errors.New("grid: invalid argument")

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidArgument)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidArgument)
	// ErrNonBinary indicates a cell value other than 0 or 1.
	ErrNonBinary = fmt.Errorf("%w: cell values must be 0 or 1", ErrInvalidArgument)
	// ErrInvalidDimensions indicates non-positive rows or columns.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)
	// ErrShapeMismatch indicates a flat cell slice whose length is not rows*cols.
	ErrShapeMismatch = fmt.Errorf("%w: cell count does not match dimensions", ErrInvalidArgument)
)
