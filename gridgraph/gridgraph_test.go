package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cutpursuit/gridgraph"
	"github.com/katalvlaran/cutpursuit/ql1b"
	"github.com/katalvlaran/cutpursuit/quadratic"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	negative := gridgraph.DefaultGridOptions()
	negative.DiagonalWeight = -1
	cases := []struct {
		name string
		grid [][]float64
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]float64{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"NegativeWeight", [][]float64{{1}}, negative, gridgraph.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			assert.True(t, errors.Is(err, tc.err), "got %v, want %v", err, tc.err)
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]float64{{0, 1, 0}, {1, 0, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "(%d,%d)", xy[0], xy[1])
	}
}

//----------------------------------------------------------------------------//
// ToGraph Tests
//----------------------------------------------------------------------------//

// weightsByPair maps unordered vertex pairs to edge weights.
func weightsByPair(t *testing.T, gg *gridgraph.GridGraph) map[[2]int]float64 {
	t.Helper()
	g, w, err := gg.ToGraph()
	require.NoError(t, err)
	require.Equal(t, gg.NumVertices(), g.V)
	m := make(map[[2]int]float64, g.E())
	for e := 0; e < g.E(); e++ {
		u, v := g.Endpoints(e)
		if u > v {
			u, v = v, u
		}
		_, dup := m[[2]int{u, v}]
		require.False(t, dup, "pair %d-%d emitted twice", u, v)
		m[[2]int{u, v}] = w[e]
	}
	return m
}

// TestToGraph_Conn4 verifies that only orthogonal edges exist under Conn4.
func TestToGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]float64{{1, 0, 2}, {1, 1, 3}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	m := weightsByPair(t, gg)
	// 2 rows × 2 horizontal + 3 vertical
	require.Len(t, m, 7)
	assert.Equal(t, 1.0, m[[2]int{0, 1}])
	assert.Equal(t, 1.0, m[[2]int{2, 5}])
	_, diag := m[[2]int{0, 4}]
	assert.False(t, diag, "unexpected diagonal edge under Conn4")
}

// TestToGraph_Conn8 verifies diagonal connectivity and weights under Conn8.
func TestToGraph_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]float64{{1, 0, 2}, {0, 1, 3}}, opts)
	require.NoError(t, err)

	m := weightsByPair(t, gg)
	// 7 orthogonal + 2×2 diagonal
	require.Len(t, m, 11)
	assert.Equal(t, 1.0, m[[2]int{0, 3}])
	assert.InDelta(t, 1/math.Sqrt2, m[[2]int{0, 4}], 1e-15)
	assert.InDelta(t, 1/math.Sqrt2, m[[2]int{1, 3}], 1e-15)
	assert.InDelta(t, 1/math.Sqrt2, m[[2]int{2, 4}], 1e-15)
}

// TestValuesReshape round-trips the grid through a vertex vector.
func TestValuesReshape(t *testing.T) {
	grid := [][]float64{{1, 2, 3}, {4, 5, 6}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	x := gg.Values()
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, x)
	back, err := gg.Reshape(x)
	require.NoError(t, err)
	assert.Equal(t, grid, back)

	// the grid is a deep copy
	grid[0][0] = 42
	assert.Equal(t, 1.0, gg.CellValues[0][0])

	_, err = gg.Reshape(x[:5])
	assert.ErrorIs(t, err, gridgraph.ErrSizeMismatch)

	cx, cy := gg.Coordinate(4)
	assert.Equal(t, 1, cx)
	assert.Equal(t, 1, cy)
}

// TestDenoise_TwoHalves runs cut-pursuit on a 4×4 step image: each half is
// shrunk toward the other by boundary/size = 4/8.
func TestDenoise_TwoHalves(t *testing.T) {
	grid := [][]float64{
		{0, 0, 10, 10},
		{0, 0, 10, 10},
		{0, 0, 10, 10},
		{0, 0, 10, 10},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, w, err := gg.ToGraph()
	require.NoError(t, err)

	s, err := ql1b.New(g)
	require.NoError(t, err)
	require.NoError(t, s.SetEdgeWeights(w, 0))
	q, err := quadratic.NewIdentity(g.V, 1, gg.Values())
	require.NoError(t, err)
	require.NoError(t, s.SetQuadratic(q))

	res, err := s.Run()
	require.NoError(t, err)
	require.Len(t, res.Values, 2)

	out, err := gg.Reshape(res.X)
	require.NoError(t, err)
	for y := range out {
		assert.InDeltaSlice(t, []float64{0.5, 0.5, 9.5, 9.5}, out[y], 1e-3, "row %d", y)
	}

	regions, err := gg.LevelRegions(res.X, 1e-6)
	require.NoError(t, err)
	assert.Len(t, regions, 2)
}
