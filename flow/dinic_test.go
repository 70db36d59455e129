package flow_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cutpursuit/flow"
)

// NetworkSuite exercises Network under both augmenting strategies.
type NetworkSuite struct {
	suite.Suite
	algo flow.Algorithm
}

func (s *NetworkSuite) network(v int) *flow.Network {
	return flow.NewNetwork(v, flow.WithAlgorithm(s.algo))
}

// TestSingleVertexTerminals verifies a lone vertex between both terminals.
func (s *NetworkSuite) TestSingleVertexTerminals() {
	n := s.network(3)
	require.NoError(s.T(), n.Reset([]int{1}))
	require.NoError(s.T(), n.SetTerminal(1, 2))
	require.Equal(s.T(), 0.0, n.MaxFlow(), "no sink arc, no flow")
	require.False(s.T(), n.IsSink(1))

	require.NoError(s.T(), n.SetTerminal(1, -3))
	require.Equal(s.T(), 0.0, n.MaxFlow())
	require.True(s.T(), n.IsSink(1), "unreachable from the source")
}

// TestPathCut cuts a path between a source-heavy and a sink-heavy half.
func (s *NetworkSuite) TestPathCut() {
	// 0 -1- 1 -1- 2 -1- 3 ; gradient (5, 5, -5, -5)
	n := s.network(4)
	require.NoError(s.T(), n.Reset([]int{0, 1, 2, 3}))
	for v, c := range []float64{5, 5, -5, -5} {
		require.NoError(s.T(), n.SetTerminal(v, c))
	}
	for v := 0; v < 3; v++ {
		require.NoError(s.T(), n.AddEdge(v, v+1, 1, 1))
	}
	require.Equal(s.T(), 1.0, n.MaxFlow())
	require.False(s.T(), n.IsSink(0))
	require.False(s.T(), n.IsSink(1))
	require.True(s.T(), n.IsSink(2))
	require.True(s.T(), n.IsSink(3))
}

// TestStrongCoupling keeps every vertex on one side when edges dominate.
func (s *NetworkSuite) TestStrongCoupling() {
	n := s.network(2)
	require.NoError(s.T(), n.Reset([]int{0, 1}))
	require.NoError(s.T(), n.SetTerminal(0, 0.5))
	require.NoError(s.T(), n.SetTerminal(1, -0.5))
	require.NoError(s.T(), n.AddEdge(0, 1, 1, 1))
	require.Equal(s.T(), 0.5, n.MaxFlow())
	require.Equal(s.T(), n.IsSink(0), n.IsSink(1))
}

// TestInfiniteTerminal pins a vertex to the source side.
func (s *NetworkSuite) TestInfiniteTerminal() {
	n := s.network(2)
	require.NoError(s.T(), n.Reset([]int{0, 1}))
	require.NoError(s.T(), n.SetTerminal(0, math.Inf(1)))
	require.NoError(s.T(), n.SetTerminal(1, -4))
	require.NoError(s.T(), n.AddEdge(0, 1, 3, 3))
	require.Equal(s.T(), 3.0, n.MaxFlow())
	require.False(s.T(), n.IsSink(0))
	require.True(s.T(), n.IsSink(1))

	// replace with an infinite sink arc: the pinned vertex now drags 1 along
	require.NoError(s.T(), n.SetTerminal(0, math.Inf(-1)))
	require.NoError(s.T(), n.SetTerminal(1, 2))
	require.Equal(s.T(), 2.0, n.MaxFlow())
	require.True(s.T(), n.IsSink(0))
	require.True(s.T(), n.IsSink(1))
}

// TestAddTerminalAndRepeat verifies accumulation and repeated MaxFlow calls.
func (s *NetworkSuite) TestAddTerminalAndRepeat() {
	n := s.network(2)
	require.NoError(s.T(), n.Reset([]int{0, 1}))
	require.NoError(s.T(), n.SetTerminal(0, 1))
	require.NoError(s.T(), n.AddTerminal(0, 2))
	require.NoError(s.T(), n.SetTerminal(1, -10))
	require.NoError(s.T(), n.AddEdge(0, 1, 7, 0))
	require.Equal(s.T(), 3.0, n.MaxFlow())
	require.Equal(s.T(), 3.0, n.MaxFlow(), "MaxFlow starts from the stored capacities")
}

// TestErrors covers the sentinel errors.
func (s *NetworkSuite) TestErrors() {
	n := s.network(3)
	require.True(s.T(), errors.Is(n.Reset([]int{0, 5}), flow.ErrVertexOutOfRange))
	require.Equal(s.T(), 0, n.Len())
	require.True(s.T(), errors.Is(n.Reset([]int{1, 1}), flow.ErrDuplicateVertex))
	require.NoError(s.T(), n.Reset([]int{0, 1}))
	require.True(s.T(), errors.Is(n.SetTerminal(2, 1), flow.ErrVertexNotInNetwork))
	require.True(s.T(), errors.Is(n.AddTerminal(-1, 1), flow.ErrVertexNotInNetwork))
	require.True(s.T(), errors.Is(n.AddEdge(0, 2, 1, 1), flow.ErrVertexNotInNetwork))

	var ee flow.EdgeError
	require.True(s.T(), errors.As(n.AddEdge(0, 1, -1, 1), &ee))
	require.Equal(s.T(), -1.0, ee.Cap)
	require.False(s.T(), n.IsSink(2))
}

// TestMaxFlowEqualsCut checks max-flow = min-cut capacity on random networks.
func (s *NetworkSuite) TestMaxFlowEqualsCut() {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 30; trial++ {
		const v = 12
		n := s.network(v)
		verts := r.Perm(v)[:8]
		require.NoError(s.T(), n.Reset(verts))
		term := map[int]float64{}
		for _, u := range verts {
			term[u] = r.Float64()*4 - 2
			require.NoError(s.T(), n.SetTerminal(u, term[u]))
		}
		type edge struct {
			u, v     int
			cuv, cvu float64
		}
		var edges []edge
		for i := 0; i < len(verts); i++ {
			for j := i + 1; j < len(verts); j++ {
				if r.Float64() < 0.4 {
					e := edge{verts[i], verts[j], r.Float64(), r.Float64()}
					edges = append(edges, e)
					require.NoError(s.T(), n.AddEdge(e.u, e.v, e.cuv, e.cvu))
				}
			}
		}
		mf := n.MaxFlow()

		// capacity of the labelled cut: source side S, sink side T
		var cut float64
		for _, u := range verts {
			if n.IsSink(u) && term[u] > 0 {
				cut += term[u]
			}
			if !n.IsSink(u) && term[u] < 0 {
				cut -= term[u]
			}
		}
		for _, e := range edges {
			if !n.IsSink(e.u) && n.IsSink(e.v) {
				cut += e.cuv
			}
			if n.IsSink(e.u) && !n.IsSink(e.v) {
				cut += e.cvu
			}
		}
		require.InDelta(s.T(), mf, cut, 1e-9)
	}
}

func TestNetworkSuite_Dinic(t *testing.T) {
	suite.Run(t, &NetworkSuite{algo: flow.Dinic})
}

func TestNetworkSuite_EdmondsKarp(t *testing.T) {
	suite.Run(t, &NetworkSuite{algo: flow.EdmondsKarp})
}

// TestOptionsPanics verifies option constructors reject nonsense.
func TestOptionsPanics(t *testing.T) {
	require.Panics(t, func() { flow.WithEpsilon(-1) })
	require.Panics(t, func() { flow.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { flow.WithAlgorithm(flow.Algorithm(9)) })
	require.Equal(t, "dinic", flow.Dinic.String())
	require.Equal(t, "edmonds-karp", flow.EdmondsKarp.String())
}

// BenchmarkGridCut measures one cut on a 64×64 grid with random gradients.
func BenchmarkGridCut(b *testing.B) {
	const side = 64
	r := rand.New(rand.NewSource(1))
	grad := make([]float64, side*side)
	for i := range grad {
		grad[i] = r.NormFloat64()
	}
	verts := make([]int, side*side)
	for i := range verts {
		verts[i] = i
	}
	for _, algo := range []flow.Algorithm{flow.Dinic, flow.EdmondsKarp} {
		b.Run(algo.String(), func(b *testing.B) {
			n := flow.NewNetwork(side*side, flow.WithAlgorithm(algo))
			for i := 0; i < b.N; i++ {
				_ = n.Reset(verts)
				for v, g := range grad {
					_ = n.SetTerminal(v, g)
					if (v+1)%side != 0 {
						_ = n.AddEdge(v, v+1, 0.5, 0.5)
					}
					if v+side < side*side {
						_ = n.AddEdge(v, v+side, 0.5, 0.5)
					}
				}
				n.MaxFlow()
			}
		})
	}
}
