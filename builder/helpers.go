// Package builder provides the edge accumulator shared by all
// constructors.
package builder

import (
	"fmt"
	"math"
)

// edgeList accumulates vertices and weighted undirected edges in emission
// order.
type edgeList struct {
	numVertices int
	edges       [][2]int
	weights     []float64
}

// addVertices reserves n fresh vertex ids and returns the first one.
// Complexity: O(1).
func (b *edgeList) addVertices(n int) int {
	first := b.numVertices
	b.numVertices += n

	return first
}

// addEdge appends u-v with a weight drawn from cfg.weightFn.
// Returns ErrInvalidWeight when the draw is negative or NaN.
// Complexity: amortized O(1).
func (b *edgeList) addEdge(method string, u, v int, cfg builderConfig) error {
	w := cfg.weightFn(cfg.rng)
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("%s: edge %d-%d, w=%g: %w", method, u, v, w, ErrInvalidWeight)
	}
	b.edges = append(b.edges, [2]int{u, v})
	b.weights = append(b.weights, w)

	return nil
}

// addCompleteEdges connects every unordered pair of ids in increasing
// (i, j) order.
// Complexity: O(m²) where m = len(ids).
func (b *edgeList) addCompleteEdges(method string, ids []int, cfg builderConfig) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := b.addEdge(method, ids[i], ids[j], cfg); err != nil {
				return err
			}
		}
	}

	return nil
}

// span returns the ids first..first+n-1.
func span(first, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = first + i
	}

	return ids
}
