// SPDX-License-Identifier: MIT

// Package decompose carves a binary grid into non-overlapping rectangles of 1-cells
// whose edges form clean seams with the surrounding cells.
//
// What:
//
//   - Decompose scans a *grid.Grid in row-major order. Every available 1-cell
//     seeds a candidate: its width is the run of 1s to the right, its height the
//     run of 1s below.
//   - A candidate is rejected when a 1 sits flush against its left, bottom or
//     right edge, when its box is not entirely available 1-cells, or when it is
//     smaller than the minimum size (2×2 by default).
//   - Accepted candidates are emitted and their cells consumed. Rejected ones
//     invalidate every 1-cell connected to the seed inside the box, plus the four
//     neighbors of each such cell, so the same malformed region is not re-probed.
//
// Determinism:
//
//	The scan order is part of the contract: the top-left-most origin always wins,
//	and the result list is in discovery order.
//
// Options:
//
//   - WithMinSize(w, h): raise or lower the minimum rectangle size.
//   - WithStrictSeams(): additionally require a clean seam along the top edge.
//   - WithOnAccept / WithOnReject: observe each decision (logging, tracing).
//
// Complexity:
//
//   - Decompose: O(m·n·max(m,n)) worst case, Memory: O(m·n).
//
// Concurrency:
//
//	Each call owns its scratch mask; calls on independent (or the same, read-only)
//	grids may run concurrently.
package decompose
