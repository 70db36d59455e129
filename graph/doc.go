// Package graph defines the compact storage shared by every stage of the
// cut-pursuit solver: a forward-star (CSR) graph in which each undirected edge
// is stored exactly once, and a Partition of its vertices into regions, itself
// laid out as CSR over regions.
//
// # Graph
//
// Vertices are the integers 0..V-1. Edges are numbered 0..E-1 and grouped by
// origin vertex:
//
//	FirstEdge[u] <= e < FirstEdge[u+1]  ⇒  edge e joins u and AdjVertices[e]
//
// An incidence index (both orientations) is precomputed so that per-vertex
// traversals need not scan the whole arc list.
//
// # Partition
//
//	CompAssign[v]                       region of vertex v
//	CompList[FirstVertex[r]:FirstVertex[r+1]]  vertices of region r
//
// Components builds the partition induced by the edges that are not active,
// and ReducedEdges aggregates the active edges into the quotient graph.
//
// Errors:
//
//	ErrBadVertexCount   - V is negative.
//	ErrBadFirstEdge     - FirstEdge has the wrong length or is not monotone.
//	ErrVertexOutOfRange - an endpoint lies outside 0..V-1.
//	ErrLoop             - an edge joins a vertex to itself.
//	ErrBadPartition     - partition arrays are inconsistent with the graph.
package graph
