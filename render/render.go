// SPDX-License-Identifier: MIT

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridrect/grid"
)

const (
	glyphUncovered = '#'
	glyphZero      = '.'
	labels         = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	warningColor = lipgloss.Color("#F59E0B") // Amber
	mutedColor   = lipgloss.Color("#9CA3AF") // Gray

	// palette cycles across rectangle labels.
	palette = []lipgloss.Color{
		lipgloss.Color("#A78BFA"), // Purple
		lipgloss.Color("#10B981"), // Green
		lipgloss.Color("#60A5FA"), // Blue
		lipgloss.Color("#FBBF24"), // Yellow
		lipgloss.Color("#F472B6"), // Pink
		lipgloss.Color("#FB923C"), // Orange
	}

	uncoveredStyle = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	zeroStyle      = lipgloss.NewStyle().Foreground(mutedColor)
)

// Renderer draws grids. The zero value renders plain text.
type Renderer struct {
	Color bool
}

// Label returns the glyph used for the i-th rectangle.
func Label(i int) byte {
	return labels[i%len(labels)]
}

// Render draws g with rects overlaid: space-separated glyphs, one line per row.
// Rectangles are clipped to the grid; where two overlap the later one wins.
func (r Renderer) Render(g *grid.Grid, rects []grid.Rect) string {
	owner := make([]int, g.Rows()*g.Cols())
	for i := range owner {
		owner[i] = -1
	}
	for i, rc := range rects {
		c := rc.Intersect(g.Bounds())
		for y := c.Y; y < c.Bottom(); y++ {
			for x := c.X; x < c.Right(); x++ {
				owner[y*g.Cols()+x] = i
			}
		}
	}

	var sb strings.Builder
	sb.Grow(len(owner) * 2)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(r.glyph(g, x, y, owner[y*g.Cols()+x]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (r Renderer) glyph(g *grid.Grid, x, y, owner int) string {
	var (
		s     string
		style lipgloss.Style
	)
	switch {
	case owner >= 0:
		s = string(Label(owner))
		style = lipgloss.NewStyle().Foreground(palette[owner%len(palette)]).Bold(true)
	case g.IsSet(x, y):
		s = string(glyphUncovered)
		style = uncoveredStyle
	default:
		s = string(glyphZero)
		style = zeroStyle
	}
	if !r.Color {
		return s
	}

	return style.Render(s)
}
