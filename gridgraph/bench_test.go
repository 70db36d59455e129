package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cutpursuit/gridgraph"
)

// randomImage returns an n×n image with values in [0,1).
func randomImage(n int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]float64, n)
	for y := range grid {
		grid[y] = make([]float64, n)
		for x := range grid[y] {
			grid[y][x] = rng.Float64()
		}
	}
	return grid
}

// BenchmarkToGraph measures conversion of a 512×512 image under Conn8.
// Complexity: O(W×H×d + E log E)
func BenchmarkToGraph(b *testing.B) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(randomImage(512), opts)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := gg.ToGraph(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLevelRegions measures region labelling of a 512×512 image
// quantized to four levels.
func BenchmarkLevelRegions(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(randomImage(512), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	x := gg.Values()
	for i := range x {
		x[i] = float64(int(x[i] * 4))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gg.LevelRegions(x, 0)
	}
}
