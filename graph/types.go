package graph

import "errors"

// Sentinel errors for graph and partition construction.
var (
	// ErrBadVertexCount indicates a negative number of vertices.
	ErrBadVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrBadFirstEdge indicates a malformed FirstEdge index.
	ErrBadFirstEdge = errors.New("graph: first-edge index is malformed")

	// ErrVertexOutOfRange indicates an edge endpoint outside 0..V-1.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrLoop indicates a self-loop, which carries no total variation.
	ErrLoop = errors.New("graph: self-loop not allowed")

	// ErrBadPartition indicates inconsistent CompAssign/CompList/FirstVertex.
	ErrBadPartition = errors.New("graph: inconsistent partition")
)

// Graph is an immutable forward-star representation of an undirected graph.
//
// Each undirected edge is stored once, at its origin vertex. Edge ids are
// positions in AdjVertices and stay stable for the lifetime of the Graph, so
// per-edge data (weights, activation flags) can live in plain slices.
type Graph struct {
	// V is the number of vertices.
	V int

	// FirstEdge has length V+1; edges of origin u are FirstEdge[u]..FirstEdge[u+1]-1.
	FirstEdge []int

	// AdjVertices has length E; AdjVertices[e] is the far endpoint of edge e.
	AdjVertices []int

	// origin[e] is the vertex owning edge e.
	origin []int

	// incFirst/incEdges index, for every vertex, all edges touching it.
	incFirst []int
	incEdges []int
}

// Partition groups the vertices of a graph into regions (components).
//
// The three slices follow the CSR convention: the vertices of region r are
// CompList[FirstVertex[r]:FirstVertex[r+1]], and CompAssign is the inverse map.
// The order of vertices inside a region segment is meaningful to callers that
// cache order statistics; Partition itself never reorders it.
type Partition struct {
	CompAssign  []int
	CompList    []int
	FirstVertex []int
}
