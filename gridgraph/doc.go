// Package gridgraph treats a 2D grid of real values (an image, a raster)
// as a graph, the natural support for graph total-variation denoising.
//
// What:
//
//   - GridGraph wraps a rectangular [][]float64 grid.
//   - ToGraph emits the 4- or 8-neighborhood graph with per-edge weights.
//   - Values/Reshape convert between the grid and a vertex vector.
//   - LevelRegions identifies piecewise-constant regions of a solution.
//
// Complexity:
//
//   - ToGraph:       O(W×H×d + E log E), Memory: O(W×H + E).
//   - LevelRegions:  O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.OrthogonalWeight, DiagonalWeight: neighbor edge weights.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrSizeMismatch: vector length differs from Width×Height.
//   - ErrBadWeight: negative or NaN neighbor weight.
package gridgraph
