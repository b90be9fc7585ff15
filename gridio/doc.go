// SPDX-License-Identifier: MIT

// Package gridio reads binary grids from and writes rectangle lists to text streams.
//
// Input format (whitespace separated, any line layout):
//
//	m n
//	v00 v01 ... v0(n-1)
//	...
//	v(m-1)0 ... v(m-1)(n-1)
//
// where m is the row count, n the column count and every v is 0 or 1.
// A stream starting with the zstd frame magic is decompressed transparently.
//
// Output format: one rectangle per line as "[x, y, w, h]" in discovery order,
// x being the column and y the row of the top-left corner.
package gridio
