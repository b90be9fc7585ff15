// SPDX-License-Identifier: MIT

// Package render draws a grid together with its rectangle decomposition
// as a block of glyphs, one per cell.
//
// Glyphs:
//   - 'A'..'Z' label rectangle cells in discovery order, cycling after 'Z'.
//   - '#' marks a 1-cell no rectangle covers.
//   - '.' marks a 0-cell.
//
// With Renderer.Color set, labels are drawn in a rotating lipgloss palette,
// '#' in the warning colour and '.' muted. Colours follow the terminal
// profile lipgloss detects, so piped output stays plain.
package render
