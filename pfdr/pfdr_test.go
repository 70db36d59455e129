package pfdr_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cutpursuit/pfdr"
)

const tol = 1e-3

func solve(t *testing.T, p *pfdr.Problem, x []float64, opts pfdr.Options) []float64 {
	t.Helper()
	it, err := pfdr.Solve(p, x, opts)
	require.NoError(t, err)
	require.Greater(t, it, 0)
	require.LessOrEqual(t, it, opts.ItMax)

	return x
}

// TestSolve_ClosedForms compares small instances to hand-derived optima.
func TestSolve_ClosedForms(t *testing.T) {
	cases := []struct {
		name string
		p    pfdr.Problem
		want []float64
	}{
		{
			name: "WeakCoupling",
			p: pfdr.Problem{
				Edges: [][2]int{{0, 1}},
				Quad:  pfdr.Diag{D: []float64{1, 1}, R: []float64{0, 10}},
			},
			want: []float64{1, 9},
		},
		{
			name: "StrongCoupling",
			p: pfdr.Problem{
				Edges:       [][2]int{{0, 1}},
				EdgeWeights: []float64{10},
				Quad:        pfdr.Diag{D: []float64{1, 1}, R: []float64{0, 10}},
			},
			want: []float64{5, 5},
		},
		{
			name: "SoftThreshold",
			p: pfdr.Problem{
				Quad:      pfdr.Diag{D: []float64{1}, R: []float64{3}},
				L1Weights: []float64{1},
			},
			want: []float64{2},
		},
		{
			name: "SoftThresholdClipped",
			p: pfdr.Problem{
				Quad:      pfdr.Diag{D: []float64{1}, R: []float64{3}},
				L1Weights: []float64{1},
				Upp:       []float64{1.5},
			},
			want: []float64{1.5},
		},
		{
			name: "TargetOnly",
			p: pfdr.Problem{
				L1Weights: []float64{1, 1},
				Yl1:       []float64{4, -2},
				Low:       []float64{math.Inf(-1), -1},
			},
			want: []float64{4, -1},
		},
		{
			name: "GramPath",
			p: pfdr.Problem{
				Edges:       [][2]int{{0, 1}, {1, 2}},
				EdgeWeights: []float64{0.5, 0.5},
				Quad:        pfdr.Gram{Q: mat.NewSymDense(3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), R: []float64{0, 0, 3}},
			},
			want: []float64{0.25, 0.25, 2.5},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x := solve(t, &tc.p, make([]float64, len(tc.want)), pfdr.DefaultOptions())
			assert.InDeltaSlice(t, tc.want, x, tol)
		})
	}
}

// TestSolve_GramMatchesDirect checks that both shapes of the same quadratic
// give the same minimizer.
func TestSolve_GramMatchesDirect(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n, v = 8, 4
	a := mat.NewDense(n, v, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < v; j++ {
			a.Set(i, j, rng.NormFloat64())
		}
		y[i] = 3 * rng.NormFloat64()
	}
	var ata mat.SymDense
	ata.SymOuterK(1, a.T())
	aty := mat.NewVecDense(v, nil)
	aty.MulVec(a.T(), mat.NewVecDense(n, y))

	base := pfdr.Problem{
		Edges:       [][2]int{{0, 1}, {1, 2}, {2, 3}},
		EdgeWeights: []float64{0.3, 0.3, 0.3},
		L1Weights:   []float64{0.1, 0.1, 0.1, 0.1},
		Low:         []float64{-2, -2, -2, -2},
		Upp:         []float64{2, 2, 2, 2},
	}
	opts := pfdr.DefaultOptions()
	opts.DifTol = 1e-9
	opts.ItMax = 100000

	gram := base
	gram.Quad = pfdr.Gram{Q: &ata, R: aty.RawVector().Data}
	direct := base
	direct.Quad = pfdr.Direct{A: a, Y: y}

	xg := solve(t, &gram, make([]float64, v), opts)
	xd := solve(t, &direct, make([]float64, v), opts)
	assert.InDeltaSlice(t, xg, xd, tol)
	for _, xi := range xg {
		assert.True(t, xi >= -2 && xi <= 2)
	}

	// objective at the solution is not worse than at perturbed points
	obj := func(p *pfdr.Problem, x []float64) float64 {
		f := p.Quad.Value(x)
		for k, uv := range p.Edges {
			f += p.EdgeWeights[k] * math.Abs(x[uv[0]]-x[uv[1]])
		}
		for i, xi := range x {
			f += p.L1Weights[i] * math.Abs(xi)
		}
		return f
	}
	best := obj(&direct, xd)
	for k := 0; k < 20; k++ {
		z := make([]float64, v)
		for i := range z {
			z[i] = math.Max(-2, math.Min(2, xd[i]+0.05*rng.NormFloat64()))
		}
		assert.GreaterOrEqual(t, obj(&direct, z), best-1e-4)
	}
}

// TestSolve_Reconditioning checks that reconditioning keeps the minimizer.
func TestSolve_Reconditioning(t *testing.T) {
	p := &pfdr.Problem{
		Edges:       [][2]int{{0, 1}, {1, 2}, {2, 3}},
		EdgeWeights: []float64{1, 1, 1},
		Quad:        pfdr.Diag{D: []float64{1, 1, 1, 1}, R: []float64{0, 0, 10, 10}},
	}
	opts := pfdr.DefaultOptions()
	opts.DifRcd = 1e-2
	x := solve(t, p, make([]float64, 4), opts)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 9.5, 9.5}, x, tol)
}

// TestSolve_WarmStart verifies that starting at the optimum stops at once.
func TestSolve_WarmStart(t *testing.T) {
	p := &pfdr.Problem{Quad: pfdr.Diag{D: []float64{2}, R: []float64{4}}}
	x := []float64{2}
	it, err := pfdr.Solve(p, x, pfdr.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, it)
	assert.InDelta(t, 2, x[0], 1e-12)
}

// TestSolve_Errors covers parameter and dimension validation.
func TestSolve_Errors(t *testing.T) {
	bad := pfdr.DefaultOptions()
	bad.Rho = 2
	_, err := pfdr.Solve(&pfdr.Problem{}, []float64{0}, bad)
	require.ErrorIs(t, err, pfdr.ErrInvalidParameter)

	bad = pfdr.DefaultOptions()
	bad.ItMax = 0
	_, err = pfdr.Solve(&pfdr.Problem{}, []float64{0}, bad)
	require.ErrorIs(t, err, pfdr.ErrInvalidParameter)

	_, err = pfdr.Solve(&pfdr.Problem{L1Weights: []float64{1, 2}}, []float64{0}, pfdr.DefaultOptions())
	require.ErrorIs(t, err, pfdr.ErrDimension)

	_, err = pfdr.Solve(&pfdr.Problem{Edges: [][2]int{{0, 0}}}, []float64{0}, pfdr.DefaultOptions())
	require.ErrorIs(t, err, pfdr.ErrDimension)

	it, err := pfdr.Solve(&pfdr.Problem{}, nil, pfdr.DefaultOptions())
	require.NoError(t, err)
	assert.Zero(t, it)
}

// TestQuadratic_Lipschitz checks the diagonal majorants.
func TestQuadratic_Lipschitz(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, -2, 0, 3})
	l := make([]float64, 2)
	pfdr.Direct{A: a}.Lipschitz(l)
	// row sums |A| = [3, 3]; L = |A|ᵗ[3,3] = [3, 15]
	assert.Equal(t, []float64{3, 15}, l)

	q := mat.NewSymDense(2, []float64{2, -1, -1, 2})
	pfdr.Gram{Q: q}.Lipschitz(l)
	assert.Equal(t, []float64{3, 3}, l)

	g := make([]float64, 2)
	pfdr.Gram{Q: q, R: []float64{1, 1}}.Gradient([]float64{1, 1}, g)
	assert.Equal(t, []float64{0, 0}, g)
}
