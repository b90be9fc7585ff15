package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridrect/grid"
)

// randomGrid builds a deterministic n×n grid with roughly density% ones.
func randomGrid(b *testing.B, n, density int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	cells := make([]int, n*n)
	for i := range cells {
		if rng.Intn(100) < density {
			cells[i] = 1
		}
	}
	g, err := grid.NewFromCells(n, n, cells)
	if err != nil {
		b.Fatalf("setup NewFromCells failed: %v", err)
	}

	return g
}

// BenchmarkConnectedComponents measures ConnectedComponents on a random 1000×1000 grid.
// Complexity: O(W×H×4)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 1000, 55)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkComponentWithin measures a bounded BFS over a 64×64 window.
func BenchmarkComponentWithin(b *testing.B) {
	g := randomGrid(b, 1000, 100)
	bounds := grid.Rect{X: 100, Y: 100, W: 64, H: 64}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ComponentWithin(100, 100, bounds)
	}
}
