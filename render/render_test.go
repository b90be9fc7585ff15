package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridrect/grid"
	"github.com/katalvlaran/gridrect/render"
)

func mustGrid(t *testing.T, values [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(values)
	require.NoError(t, err)

	return g
}

func TestRender_Plain(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 0, 1},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	})
	rects := []grid.Rect{{X: 0, Y: 0, W: 2, H: 2}, {X: 2, Y: 2, W: 2, H: 2}}

	want := "" +
		"A A . #\n" +
		"A A . .\n" +
		". . B B\n" +
		". . B B\n"
	require.Equal(t, want, render.Renderer{}.Render(g, rects))
}

func TestRender_NoRects(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 0}, {0, 1}})
	require.Equal(t, "# .\n. #\n", render.Renderer{}.Render(g, nil))
}

func TestRender_ClipsOutOfBounds(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1}, {1, 1}})
	got := render.Renderer{}.Render(g, []grid.Rect{{X: 1, Y: 1, W: 5, H: 5}})
	require.Equal(t, "# #\n# A\n", got)
}

func TestLabel_Cycles(t *testing.T) {
	require.Equal(t, byte('A'), render.Label(0))
	require.Equal(t, byte('Z'), render.Label(25))
	require.Equal(t, byte('A'), render.Label(26))
}

// TestRender_Color keeps every glyph in place whatever colour profile is detected.
func TestRender_Color(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1, 0}, {1, 1, 1}})
	got := render.Renderer{Color: true}.Render(g, []grid.Rect{{W: 2, H: 2}})

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "A")
	require.Contains(t, lines[0], ".")
	require.Contains(t, lines[1], "#")
}
