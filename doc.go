// Package gridrect finds the isolated solid rectangles of a binary grid.
//
// What is gridrect?
//
//	A small library and CLI that scans an m×n grid of 0/1 cells row by row and
//	reports every axis-aligned block of 1s that is completely filled, at least
//	2×2 by default, and not glued to other 1s along its left, bottom or right
//	edge. Regions that fail are invalidated so none of their cells seed a
//	second attempt.
//
// Packages:
//
//	grid/        Grid, Rect, availability Mask, 4-connected components
//	decompose/   the scan itself, rejection reasons, hooks, Verify & Summarize
//	gridio/      text (and zstd-compressed) grid reader, rectangle writers
//	render/      glyph view of a grid with its rectangles, optional colour
//	config/      viper-backed CLI configuration
//	logging/     slog wrapper used by the CLI
//	cmd/gridrect  the command-line tool
//
// Quick example:
//
//	1 1 0 0
//	1 1 0 0      →   [0, 0, 2, 2]
//	0 0 1 1          [2, 2, 2, 2]
//	0 0 1 1
//
//	rects, err := decompose.FromValues([][]int{{1, 1, 0, 0}, {1, 1, 0, 0}, {0, 0, 1, 1}, {0, 0, 1, 1}})
//
//	go install github.com/katalvlaran/gridrect/cmd/gridrect@latest
package gridrect
