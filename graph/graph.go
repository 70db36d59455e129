package graph

import (
	"fmt"
	"sort"
)

// New wraps an existing forward-star description. firstEdge and adjVertices
// are retained, not copied; callers must not mutate them afterwards.
//
// Steps:
//  1. Validate V ≥ 0, len(firstEdge) == V+1, firstEdge[0] == 0, monotone,
//     firstEdge[V] == len(adjVertices).
//  2. Validate every endpoint and reject self-loops.
//  3. Build the origin and incidence indexes.
//
// Complexity: O(V + E) time and memory.
func New(v int, firstEdge, adjVertices []int) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("New: V=%d: %w", v, ErrBadVertexCount)
	}
	if len(firstEdge) != v+1 || firstEdge[0] != 0 || firstEdge[v] != len(adjVertices) {
		return nil, fmt.Errorf("New: len=%d for V=%d: %w", len(firstEdge), v, ErrBadFirstEdge)
	}
	for u := 0; u < v; u++ {
		if firstEdge[u+1] < firstEdge[u] {
			return nil, fmt.Errorf("New: FirstEdge decreases at %d: %w", u, ErrBadFirstEdge)
		}
		for e := firstEdge[u]; e < firstEdge[u+1]; e++ {
			w := adjVertices[e]
			if w < 0 || w >= v {
				return nil, fmt.Errorf("New: edge %d → %d: %w", e, w, ErrVertexOutOfRange)
			}
			if w == u {
				return nil, fmt.Errorf("New: edge %d at %d: %w", e, u, ErrLoop)
			}
		}
	}

	g := &Graph{V: v, FirstEdge: firstEdge, AdjVertices: adjVertices}
	g.buildIndexes()

	return g, nil
}

// FromEdges builds a Graph from an undirected edge list. Edge ids follow
// a stable sort of the list by origin (the first endpoint), so the edge
// list order within an origin is preserved. The returned perm maps each
// input position to its edge id, letting callers reorder per-edge data.
//
// Complexity: O(V + E log E) time, O(V + E) memory.
func FromEdges(v int, edges [][2]int) (*Graph, []int, error) {
	if v < 0 {
		return nil, nil, fmt.Errorf("FromEdges: V=%d: %w", v, ErrBadVertexCount)
	}
	order := make([]int, len(edges))
	for i, uv := range edges {
		if uv[0] < 0 || uv[0] >= v || uv[1] < 0 || uv[1] >= v {
			return nil, nil, fmt.Errorf("FromEdges: edge %d (%d,%d): %w", i, uv[0], uv[1], ErrVertexOutOfRange)
		}
		if uv[0] == uv[1] {
			return nil, nil, fmt.Errorf("FromEdges: edge %d at %d: %w", i, uv[0], ErrLoop)
		}
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return edges[order[a]][0] < edges[order[b]][0] })

	firstEdge := make([]int, v+1)
	adj := make([]int, len(edges))
	perm := make([]int, len(edges))
	for e, i := range order {
		firstEdge[edges[i][0]+1]++
		adj[e] = edges[i][1]
		perm[i] = e
	}
	for u := 0; u < v; u++ {
		firstEdge[u+1] += firstEdge[u]
	}

	g := &Graph{V: v, FirstEdge: firstEdge, AdjVertices: adj}
	g.buildIndexes()

	return g, perm, nil
}

// buildIndexes fills origin, incFirst and incEdges by counting sort.
func (g *Graph) buildIndexes() {
	e := len(g.AdjVertices)
	g.origin = make([]int, e)
	g.incFirst = make([]int, g.V+1)
	for u := 0; u < g.V; u++ {
		for k := g.FirstEdge[u]; k < g.FirstEdge[u+1]; k++ {
			g.origin[k] = u
			g.incFirst[u+1]++
			g.incFirst[g.AdjVertices[k]+1]++
		}
	}
	for u := 0; u < g.V; u++ {
		g.incFirst[u+1] += g.incFirst[u]
	}
	g.incEdges = make([]int, 2*e)
	fill := make([]int, g.V)
	copy(fill, g.incFirst[:g.V])
	for k := 0; k < e; k++ {
		u, w := g.origin[k], g.AdjVertices[k]
		g.incEdges[fill[u]] = k
		fill[u]++
		g.incEdges[fill[w]] = k
		fill[w]++
	}
}

// E returns the number of (undirected) edges.
func (g *Graph) E() int { return len(g.AdjVertices) }

// Endpoints returns the origin and far endpoint of edge e.
func (g *Graph) Endpoints(e int) (u, v int) { return g.origin[e], g.AdjVertices[e] }

// Incident returns the ids of all edges touching v, in either orientation.
// The slice aliases internal storage and must not be modified.
func (g *Graph) Incident(v int) []int { return g.incEdges[g.incFirst[v]:g.incFirst[v+1]] }

// Degree returns the number of edges touching v.
func (g *Graph) Degree(v int) int { return g.incFirst[v+1] - g.incFirst[v] }

// Opposite returns the endpoint of edge e that is not v.
func (g *Graph) Opposite(e, v int) int {
	if g.origin[e] == v {
		return g.AdjVertices[e]
	}

	return g.origin[e]
}
