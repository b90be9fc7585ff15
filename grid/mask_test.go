package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridrect/grid"
)

// TestNewMaskInvalidDimensions ensures that NewMask rejects non-positive dimensions.
func TestNewMaskInvalidDimensions(t *testing.T) {
	_, err := grid.NewMask(0, 5)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = grid.NewMask(5, -1)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

// TestMaskStartsAvailable verifies a fresh mask has every cell available.
func TestMaskStartsAvailable(t *testing.T) {
	m, err := grid.NewMask(2, 3)
	require.NoError(t, err)

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6, m.Count())
	require.True(t, m.AllAvailable(grid.Rect{W: 3, H: 2}))
	require.False(t, m.Available(3, 0), "out of bounds reads as unavailable")
}

// TestMaskConsumeNeighborhood checks the plus-shaped marking and edge clipping.
func TestMaskConsumeNeighborhood(t *testing.T) {
	m, err := grid.NewMask(3, 3)
	require.NoError(t, err)

	m.ConsumeNeighborhood(1, 1)
	require.Equal(t, "[1, 0, 1]\n[0, 0, 0]\n[1, 0, 1]\n", m.String())

	m.ConsumeNeighborhood(0, 0) // corner: neighbors outside the mask are ignored
	require.Equal(t, 3, m.Count())
}

// TestMaskConsumeRect checks rectangle marking, clipping and AllAvailable.
func TestMaskConsumeRect(t *testing.T) {
	m, err := grid.NewMask(3, 4)
	require.NoError(t, err)

	m.ConsumeRect(grid.Rect{X: 2, Y: 1, W: 5, H: 5}) // clipped to columns 2..3, rows 1..2
	require.Equal(t, "[1, 1, 1, 1]\n[1, 1, 0, 0]\n[1, 1, 0, 0]\n", m.String())

	require.True(t, m.AllAvailable(grid.Rect{X: 0, Y: 0, W: 2, H: 3}))
	require.False(t, m.AllAvailable(grid.Rect{X: 1, Y: 0, W: 2, H: 2}))
	require.False(t, m.AllAvailable(grid.Rect{X: 3, Y: 0, W: 2, H: 1}), "partly outside")
}

// TestMaskCloneIndependence ensures Clone() does not share storage.
func TestMaskCloneIndependence(t *testing.T) {
	g, err := grid.New([][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)

	m := g.NewMask()
	c := m.Clone()
	c.Consume(0, 0)

	require.True(t, m.Available(0, 0))
	require.False(t, c.Available(0, 0))
}
