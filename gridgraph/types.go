// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/cutpursuit.
package gridgraph

import "math"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid graphs.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// OrthogonalWeight is the edge weight between horizontal or vertical neighbors.
	OrthogonalWeight float64
	// DiagonalWeight is the edge weight between diagonal neighbors (Conn8 only).
	DiagonalWeight float64
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn4, OrthogonalWeight=1, DiagonalWeight=1/√2 (the usual discrete
// approximation of isotropic total variation).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:             Conn4,
		OrthogonalWeight: 1,
		DiagonalWeight:   1 / math.Sqrt2,
	}
}

// GridGraph treats a 2D grid of real values (an image) as a graph. It is
// immutable once built. Width and Height define dimensions;
// CellValues[y][x] holds the original input value, and cell (x,y) is
// vertex y*Width + x.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]float64
	Conn            Connectivity
	orthoWeight     float64
	diagWeight      float64
	neighborOffsets [][2]int
}
