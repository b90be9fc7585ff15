package decompose_test

import (
	"fmt"

	"github.com/katalvlaran/gridrect/decompose"
	"github.com/katalvlaran/gridrect/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Decompose
////////////////////////////////////////////////////////////////////////////////

// ExampleDecompose demonstrates the basic decomposition of two clean blocks.
// Scenario:
//
//   - A 2×2 block in the top-left and a 2×2 block in the bottom-right.
//   - Both are bordered by zeros, so both seams are clean.
func ExampleDecompose() {
	g, _ := grid.New([][]int{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	})

	rects, _ := decompose.Decompose(g)
	for _, r := range rects {
		fmt.Println(r)
	}

	// Output:
	// [0, 0, 2, 2]
	// [2, 2, 2, 2]
}

////////////////////////////////////////////////////////////////////////////////
// Example: WithOnReject
////////////////////////////////////////////////////////////////////////////////

// ExampleWithOnReject traces why candidates were turned down.
// Scenario:
//
//   - The top-left block runs into a 1 past its right edge.
//   - The leftover sliver on the right touches the same region on its left.
func ExampleWithOnReject() {
	rects, _ := decompose.FromValues([][]int{
		{1, 1, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 1, 1},
	}, decompose.WithOnReject(func(r grid.Rect, why decompose.Reason) {
		fmt.Println("rejected", r, why)
	}))
	fmt.Println("rectangles:", len(rects))

	// Output:
	// rejected [0, 0, 2, 2] right-seam
	// rejected [3, 1, 1, 2] left-seam
	// rectangles: 0
}
