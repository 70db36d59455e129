// Package gridgraph provides utilities to treat a 2D grid of real cell
// values as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a *graph.Graph with per-edge weights
//   - Flattening values to a vertex vector and reshaping solutions back
//   - Identification of piecewise-constant regions
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cutpursuit/graph"
)

// forward neighbor offsets; each undirected edge is emitted once, from the
// cell that comes first in row-major order.
var (
	forward4 = [][2]int{{1, 0}, {0, 1}}
	forward8 = [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadWeight for negative
// or NaN weights in opts.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]float64, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if !(opts.OrthogonalWeight >= 0) || !(opts.DiagonalWeight >= 0) {
		return nil, fmt.Errorf("NewGridGraph: weights %g/%g: %w", opts.OrthogonalWeight, opts.DiagonalWeight, ErrBadWeight)
	}
	// Deep copy to prevent external mutation
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], values[y])
	}
	offsets := forward4
	if opts.Conn == Conn8 {
		offsets = forward8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		orthoWeight:     opts.OrthogonalWeight,
		diagWeight:      opts.DiagonalWeight,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the forward neighbor offsets: following each of
// them from every cell visits every neighboring pair exactly once.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// NumVertices returns Width×Height.
func (gg *GridGraph) NumVertices() int { return gg.Width * gg.Height }

// ToGraph converts the grid into an undirected *graph.Graph over the
// row-major cell indices, together with the edge weights indexed by edge
// id. Orthogonal neighbors get OrthogonalWeight, diagonal ones
// DiagonalWeight.
// Complexity: O(W×H×d) time and memory, d = 2 or 4 forward offsets.
func (gg *GridGraph) ToGraph() (*graph.Graph, []float64, error) {
	edges := make([][2]int, 0, gg.NumVertices()*len(gg.neighborOffsets))
	weights := make([]float64, 0, cap(edges))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := gg.index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				edges = append(edges, [2]int{u, gg.index(nx, ny)})
				if d[0] != 0 && d[1] != 0 {
					weights = append(weights, gg.diagWeight)
				} else {
					weights = append(weights, gg.orthoWeight)
				}
			}
		}
	}

	g, perm, err := graph.FromEdges(gg.NumVertices(), edges)
	if err != nil {
		return nil, nil, fmt.Errorf("ToGraph: %w", err)
	}
	ordered := make([]float64, len(weights))
	for i, w := range weights {
		ordered[perm[i]] = w
	}

	return g, ordered, nil
}

// Values flattens CellValues in row-major order, matching the vertex
// numbering of ToGraph.
// Complexity: O(W×H).
func (gg *GridGraph) Values() []float64 {
	out := make([]float64, 0, gg.NumVertices())
	for _, row := range gg.CellValues {
		out = append(out, row...)
	}

	return out
}

// Reshape turns a vertex vector (e.g. a solution) back into a Height×Width
// grid. Returns ErrSizeMismatch when len(x) != Width×Height.
// Complexity: O(W×H).
func (gg *GridGraph) Reshape(x []float64) ([][]float64, error) {
	if len(x) != gg.NumVertices() {
		return nil, fmt.Errorf("Reshape: len=%d for %dx%d: %w", len(x), gg.Width, gg.Height, ErrSizeMismatch)
	}
	out := make([][]float64, gg.Height)
	for y := range out {
		out[y] = make([]float64, gg.Width)
		copy(out[y], x[y*gg.Width:(y+1)*gg.Width])
	}

	return out, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// closeValues reports whether a and b differ by at most tol relative to
// their magnitude (absolute below 1).
func closeValues(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
