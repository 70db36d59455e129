package graph

import (
	"fmt"
	"sort"
)

// SinglePartition returns the partition with all V vertices in region 0,
// listed in increasing order.
func SinglePartition(v int) *Partition {
	p := &Partition{
		CompAssign:  make([]int, v),
		CompList:    make([]int, v),
		FirstVertex: []int{0, v},
	}
	for i := range p.CompList {
		p.CompList[i] = i
	}

	return p
}

// NumComponents returns the number of regions.
func (p *Partition) NumComponents() int { return len(p.FirstVertex) - 1 }

// Component returns the vertex segment of region r. The slice aliases
// CompList; writers reorder it in place.
func (p *Partition) Component(r int) []int {
	return p.CompList[p.FirstVertex[r]:p.FirstVertex[r+1]]
}

// Size returns the number of vertices of region r.
func (p *Partition) Size(r int) int { return p.FirstVertex[r+1] - p.FirstVertex[r] }

// Validate checks that the three CSR arrays describe a partition of 0..v-1.
// Complexity: O(V).
func (p *Partition) Validate(v int) error {
	if len(p.CompAssign) != v || len(p.CompList) != v || len(p.FirstVertex) < 1 {
		return fmt.Errorf("Validate: sizes %d/%d for V=%d: %w", len(p.CompAssign), len(p.CompList), v, ErrBadPartition)
	}
	if p.FirstVertex[0] != 0 || p.FirstVertex[len(p.FirstVertex)-1] != v {
		return fmt.Errorf("Validate: FirstVertex bounds: %w", ErrBadPartition)
	}
	seen := make([]bool, v)
	for r := 0; r < p.NumComponents(); r++ {
		if p.FirstVertex[r+1] < p.FirstVertex[r] {
			return fmt.Errorf("Validate: FirstVertex decreases at %d: %w", r, ErrBadPartition)
		}
		for _, u := range p.Component(r) {
			if u < 0 || u >= v || seen[u] || p.CompAssign[u] != r {
				return fmt.Errorf("Validate: vertex %d in region %d: %w", u, r, ErrBadPartition)
			}
			seen[u] = true
		}
	}

	return nil
}

// Components computes the connected components of g restricted to the
// edges whose active flag is false. Regions are numbered by their smallest
// vertex, and each segment lists vertices in breadth-first order from it.
//
// Complexity: O(V + E) time and memory.
func Components(g *Graph, active []bool) *Partition {
	p := &Partition{
		CompAssign:  make([]int, g.V),
		CompList:    make([]int, 0, g.V),
		FirstVertex: make([]int, 0, 2),
	}
	for i := range p.CompAssign {
		p.CompAssign[i] = -1
	}

	for seed := 0; seed < g.V; seed++ {
		if p.CompAssign[seed] >= 0 {
			continue
		}
		r := len(p.FirstVertex)
		head := len(p.CompList)
		p.FirstVertex = append(p.FirstVertex, head)
		p.CompAssign[seed] = r
		p.CompList = append(p.CompList, seed)
		for ; head < len(p.CompList); head++ {
			u := p.CompList[head]
			for _, e := range g.Incident(u) {
				if active[e] {
					continue
				}
				w := g.Opposite(e, u)
				if p.CompAssign[w] < 0 {
					p.CompAssign[w] = r
					p.CompList = append(p.CompList, w)
				}
			}
		}
	}
	p.FirstVertex = append(p.FirstVertex, g.V)

	return p
}

// ReducedEdges aggregates the edges joining distinct regions of p into the
// quotient graph. Each reduced edge (ru, rv) has ru < rv and carries the sum
// of the weights of the original edges it stands for. Output is sorted by
// (ru, rv).
//
// Complexity: O(E + R log R) where R is the number of reduced edges.
func ReducedEdges(g *Graph, p *Partition, weight func(e int) float64) ([][2]int, []float64) {
	acc := make(map[[2]int]float64)
	for e := 0; e < g.E(); e++ {
		u, v := g.Endpoints(e)
		ru, rv := p.CompAssign[u], p.CompAssign[v]
		if ru == rv {
			continue
		}
		if ru > rv {
			ru, rv = rv, ru
		}
		acc[[2]int{ru, rv}] += weight(e)
	}

	edges := make([][2]int, 0, len(acc))
	for k := range acc {
		edges = append(edges, k)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	weights := make([]float64, len(edges))
	for i, k := range edges {
		weights[i] = acc[k]
	}

	return edges, weights
}
