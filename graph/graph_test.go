package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cutpursuit/graph"
)

// square returns the 4-cycle 0-1-2-3-0 with edges listed in input order.
func square(t *testing.T) *graph.Graph {
	t.Helper()
	g, _, err := graph.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}})
	require.NoError(t, err)

	return g
}

// TestNew_Errors verifies validation of raw forward-star input.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		v     int
		first []int
		adj   []int
		err   error
	}{
		{"NegativeV", -1, nil, nil, graph.ErrBadVertexCount},
		{"ShortFirst", 2, []int{0, 1}, []int{1}, graph.ErrBadFirstEdge},
		{"NonMonotone", 3, []int{0, 2, 1, 2}, []int{1, 2}, graph.ErrBadFirstEdge},
		{"OutOfRange", 2, []int{0, 1, 1}, []int{5}, graph.ErrVertexOutOfRange},
		{"Loop", 2, []int{0, 1, 1}, []int{0}, graph.ErrLoop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.New(tc.v, tc.first, tc.adj)
			require.True(t, errors.Is(err, tc.err), "got %v", err)
		})
	}
}

// TestFromEdges_Layout checks edge ids, perm and incidence.
func TestFromEdges_Layout(t *testing.T) {
	g, perm, err := graph.FromEdges(3, [][2]int{{2, 0}, {0, 1}, {1, 2}})
	require.NoError(t, err)
	require.Equal(t, 3, g.E())
	require.Equal(t, []int{0, 1, 2, 3}, g.FirstEdge)
	// input 1 (0,1) becomes edge 0, input 2 (1,2) edge 1, input 0 (2,0) edge 2
	require.Equal(t, []int{2, 0, 1}, perm)

	u, v := g.Endpoints(2)
	assert.Equal(t, 2, u)
	assert.Equal(t, 0, v)
	assert.Equal(t, 2, g.Degree(0))
	assert.ElementsMatch(t, []int{0, 2}, g.Incident(0))
	assert.Equal(t, 1, g.Opposite(0, 0))
	assert.Equal(t, 0, g.Opposite(0, 1))
}

// TestComponents_InactiveEdges splits the square by activating two edges.
func TestComponents_InactiveEdges(t *testing.T) {
	g := square(t)
	active := make([]bool, g.E())

	p := graph.Components(g, active)
	require.Equal(t, 1, p.NumComponents())
	require.NoError(t, p.Validate(g.V))

	// cut {0,1} from {2,3}: edges (1,2) and (0,3)
	for e := 0; e < g.E(); e++ {
		u, v := g.Endpoints(e)
		if (u <= 1) != (v <= 1) {
			active[e] = true
		}
	}
	p = graph.Components(g, active)
	require.NoError(t, p.Validate(g.V))
	require.Equal(t, 2, p.NumComponents())
	assert.Equal(t, []int{0, 0, 1, 1}, p.CompAssign)
	assert.ElementsMatch(t, []int{0, 1}, p.Component(0))
	assert.Equal(t, 2, p.Size(1))

	edges, w := graph.ReducedEdges(g, p, func(int) float64 { return 1.5 })
	require.Equal(t, [][2]int{{0, 1}}, edges)
	require.Equal(t, []float64{3}, w)
}

// TestSinglePartition checks the trivial one-region partition.
func TestSinglePartition(t *testing.T) {
	p := graph.SinglePartition(5)
	require.NoError(t, p.Validate(5))
	assert.Equal(t, 1, p.NumComponents())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, p.Component(0))
}

// TestValidate_Errors covers inconsistent partitions.
func TestValidate_Errors(t *testing.T) {
	p := &graph.Partition{
		CompAssign:  []int{0, 0},
		CompList:    []int{0, 0},
		FirstVertex: []int{0, 2},
	}
	require.ErrorIs(t, p.Validate(2), graph.ErrBadPartition)

	p = &graph.Partition{CompAssign: []int{0}, CompList: []int{0}, FirstVertex: []int{0, 1}}
	require.ErrorIs(t, p.Validate(2), graph.ErrBadPartition)
}
