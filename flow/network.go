package flow

import (
	"fmt"
	"math"
)

// Network is a reusable min-cut workspace over a subset of 0..V-1.
type Network struct {
	opts options

	local []int // global id → local index, -1 outside the subset
	verts []int // local index → global id
	term  []float64

	// arcs come in pairs: arc a and its reverse a^1
	from, to []int
	capac    []float64
	numEdge  int // arcs owned by AddEdge; terminal arcs follow

	// solve scratch
	res      []float64
	adjFirst []int
	adjArcs  []int
	level    []int
	iter     []int
	queue    []int
	parent   []int
	reached  []bool
}

// NewNetwork allocates a workspace for vertex ids 0..numVertices-1.
// Complexity: O(V) memory, allocated once and reused across Reset calls.
func NewNetwork(numVertices int, opts ...Option) *Network {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	n := &Network{opts: o, local: make([]int, numVertices)}
	for i := range n.local {
		n.local[i] = -1
	}

	return n
}

// Reset clears all capacities and selects the vertex subset of the next
// cut. The previous subset is forgotten in O(previous size).
func (n *Network) Reset(vertices []int) error {
	for _, v := range n.verts {
		n.local[v] = -1
	}
	n.verts = n.verts[:0]
	n.term = n.term[:0]
	n.from, n.to, n.capac = n.from[:0], n.to[:0], n.capac[:0]
	n.numEdge = 0

	for _, v := range vertices {
		if v < 0 || v >= len(n.local) {
			n.Reset(nil)
			return fmt.Errorf("Reset: %d: %w", v, ErrVertexOutOfRange)
		}
		if n.local[v] >= 0 {
			n.Reset(nil)
			return fmt.Errorf("Reset: %d: %w", v, ErrDuplicateVertex)
		}
		n.local[v] = len(n.verts)
		n.verts = append(n.verts, v)
		n.term = append(n.term, 0)
	}

	return nil
}

// Len returns the number of vertices in the current subset.
func (n *Network) Len() int { return len(n.verts) }

func (n *Network) lookup(v int) (int, error) {
	if v < 0 || v >= len(n.local) || n.local[v] < 0 {
		return -1, fmt.Errorf("%d: %w", v, ErrVertexNotInNetwork)
	}
	return n.local[v], nil
}

// SetTerminal sets the signed terminal capacity of v, replacing any
// previous value.
func (n *Network) SetTerminal(v int, c float64) error {
	i, err := n.lookup(v)
	if err != nil {
		return fmt.Errorf("SetTerminal: %w", err)
	}
	n.term[i] = c

	return nil
}

// AddTerminal adds c to the signed terminal capacity of v.
func (n *Network) AddTerminal(v int, c float64) error {
	i, err := n.lookup(v)
	if err != nil {
		return fmt.Errorf("AddTerminal: %w", err)
	}
	n.term[i] += c

	return nil
}

// AddEdge adds an edge between u and v with capacity cuv from u to v and
// cvu from v to u.
func (n *Network) AddEdge(u, v int, cuv, cvu float64) error {
	iu, err := n.lookup(u)
	if err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	iv, err := n.lookup(v)
	if err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	if cuv < 0 || math.IsNaN(cuv) {
		return EdgeError{From: u, To: v, Cap: cuv}
	}
	if cvu < 0 || math.IsNaN(cvu) {
		return EdgeError{From: v, To: u, Cap: cvu}
	}
	n.addArcPair(iu, iv, cuv, cvu)
	n.numEdge = len(n.to)

	return nil
}

func (n *Network) addArcPair(a, b int, cab, cba float64) {
	n.from = append(n.from, a, b)
	n.to = append(n.to, b, a)
	n.capac = append(n.capac, cab, cba)
}

// MaxFlow computes a maximum flow from the source to the sink, labels the
// cut sides, and returns the flow value. It may be called repeatedly; each
// call starts from the current capacities. An infinite return value means
// an infinite-capacity path joins the terminals; sides are then undefined.
//
// Steps:
//  1. Append terminal arcs from the signed terminal capacities.
//  2. Index arcs by tail node (counting sort).
//  3. Run the selected augmenting strategy on a residual copy.
//  4. Mark nodes reachable from the source in the residual network.
func (n *Network) MaxFlow() float64 {
	size := len(n.verts)
	s, t := size, size+1
	nodes := size + 2

	n.from, n.to, n.capac = n.from[:n.numEdge], n.to[:n.numEdge], n.capac[:n.numEdge]
	for i, c := range n.term {
		switch {
		case c > 0:
			n.addArcPair(s, i, c, 0)
		case c < 0:
			n.addArcPair(i, t, -c, 0)
		}
	}

	n.res = append(n.res[:0], n.capac...)
	n.adjFirst = resizeInts(n.adjFirst, nodes+1)
	for i := range n.adjFirst {
		n.adjFirst[i] = 0
	}
	for _, u := range n.from {
		n.adjFirst[u+1]++
	}
	for u := 0; u < nodes; u++ {
		n.adjFirst[u+1] += n.adjFirst[u]
	}
	n.adjArcs = resizeInts(n.adjArcs, len(n.from))
	n.iter = resizeInts(n.iter, nodes)
	copy(n.iter, n.adjFirst[:nodes])
	for a, u := range n.from {
		n.adjArcs[n.iter[u]] = a
		n.iter[u]++
	}
	n.level = resizeInts(n.level, nodes)
	n.parent = resizeInts(n.parent, nodes)

	var total float64
	switch n.opts.algo {
	case EdmondsKarp:
		total = n.edmondsKarp(s, t)
	default:
		total = n.dinic(s, t)
	}

	n.markReached(s)

	return total
}

// IsSink reports whether v lies on the sink side of the last computed cut.
// Vertices outside the subset report false.
func (n *Network) IsSink(v int) bool {
	if v < 0 || v >= len(n.local) || n.local[v] < 0 || len(n.reached) <= n.local[v] {
		return false
	}
	return !n.reached[n.local[v]]
}

// markReached runs a breadth-first search from s over unsaturated arcs.
func (n *Network) markReached(s int) {
	nodes := len(n.adjFirst) - 1
	if cap(n.reached) < nodes {
		n.reached = make([]bool, nodes)
	}
	n.reached = n.reached[:nodes]
	for i := range n.reached {
		n.reached[i] = false
	}
	n.reached[s] = true
	n.queue = append(n.queue[:0], s)
	for head := 0; head < len(n.queue); head++ {
		u := n.queue[head]
		for k := n.adjFirst[u]; k < n.adjFirst[u+1]; k++ {
			a := n.adjArcs[k]
			if w := n.to[a]; !n.reached[w] && n.res[a] > n.opts.eps {
				n.reached[w] = true
				n.queue = append(n.queue, w)
			}
		}
	}
}

func resizeInts(b []int, n int) []int {
	if cap(b) < n {
		return make([]int, n)
	}
	return b[:n]
}
