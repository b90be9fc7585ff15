// SPDX-License-Identifier: MIT

// Package grid models an immutable binary (0/1) grid together with the
// scratch structures needed to carve it into rectangles.
//
// What:
//
//   - Grid stores an m×n matrix of 0/1 cells in one row-major slice.
//   - Rect is an axis-aligned box addressed as (x, y, w, h), x = column, y = row.
//   - Mask is a same-shaped availability matrix, all cells available on creation.
//   - ConnectedComponents and ComponentWithin run 4-neighbor BFS over 1-cells.
//
// Coordinates:
//
//	x grows to the right (columns), y grows downward (rows).
//	The row-major index of (x, y) is y*Cols + x.
//
// Complexity:
//
//   - New, NewFromCells:  O(m×n) time and memory (deep copy + validation).
//   - ConnectedComponents: O(m×n×4), Memory: O(m×n).
//   - ComponentWithin:     O(area(bounds)×4), Memory: O(m×n) for the seen flags.
//
// Errors:
//
//   - ErrInvalidArgument: umbrella for every malformed-input condition.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonBinary: a cell holds a value other than 0 or 1.
//   - ErrInvalidDimensions: non-positive row or column count.
//   - ErrShapeMismatch: flat cell slice length differs from rows×cols.
//
// A Grid is safe for concurrent reads. A Mask is not safe for concurrent use.
package grid
