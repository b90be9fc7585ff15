package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridrect/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents demonstrates how to identify contiguous
// "islands" of 1-cells in a binary grid.
//
//   - 4-directional adjacency (N/E/S/W); diagonal contact does not connect.
//   - Components are listed in row-major order of their first cell.
func ExampleGrid_ConnectedComponents() {
	g, _ := grid.New([][]int{
		{0, 1, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 0, 1, 1, 0},
	})

	comps := g.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := g.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Mask
////////////////////////////////////////////////////////////////////////////////

// ExampleMask shows how a rectangle and a neighborhood are consumed.
func ExampleMask() {
	g, _ := grid.New([][]int{
		{1, 1, 0, 0},
		{1, 1, 0, 1},
		{0, 0, 0, 0},
	})
	m := g.NewMask()
	m.ConsumeRect(grid.Rect{X: 0, Y: 0, W: 2, H: 2})
	m.ConsumeNeighborhood(3, 1)

	fmt.Print(m)
	fmt.Println("available:", m.Count())

	// Output:
	// [0, 0, 1, 0]
	// [0, 0, 0, 0]
	// [1, 1, 1, 0]
	// available: 4
}
