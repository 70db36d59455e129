package problem

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cutpursuit/builder"
	"github.com/katalvlaran/cutpursuit/flow"
	"github.com/katalvlaran/cutpursuit/graph"
	"github.com/katalvlaran/cutpursuit/gridgraph"
	"github.com/katalvlaran/cutpursuit/pfdr"
	"github.com/katalvlaran/cutpursuit/ql1b"
	"github.com/katalvlaran/cutpursuit/quadratic"
)

// Instance is a problem ready to solve.
type Instance struct {
	Graph  *graph.Graph
	Solver *ql1b.Solver
	grid   *gridgraph.GridGraph
}

// Build validates f and configures a solver for it. The logger is passed
// to the solver; maxWorkers overrides Params.MaxWorkers when positive.
//
// Steps:
//  1. Build the graph and its edge weights.
//  2. Translate Params into solver options.
//  3. Apply the quadratic, l1 and box terms through the solver setters.
func (f *File) Build(logger *zap.Logger, maxWorkers int) (*Instance, error) {
	g, weights, gg, err := f.graph()
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	opts, err := f.Params.options()
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if logger != nil {
		opts = append(opts, ql1b.WithLogger(logger))
	}
	if maxWorkers > 0 {
		opts = append(opts, ql1b.WithMaxWorkers(maxWorkers))
	}

	s, err := ql1b.New(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	homo := 1.0
	if f.Edges != nil && f.Edges.Homo != nil {
		homo = *f.Edges.Homo
	}
	if err := s.SetEdgeWeights(weights, homo); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	var y []float64
	if gg != nil {
		y = gg.Values()
	}
	q, err := f.Quadratic.form(g.V, y)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if err := s.SetQuadratic(q); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if l := f.L1; l != nil {
		if err := s.SetL1(l.Weights, l.Homo, l.Targets); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if b := f.Bounds; b != nil {
		lo, hi := math.Inf(-1), math.Inf(1)
		if b.HomoLow != nil {
			lo = *b.HomoLow
		}
		if b.HomoUpp != nil {
			hi = *b.HomoUpp
		}
		if err := s.SetBounds(b.Low, b.Upp, lo, hi); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if p := f.Params; p != nil && p.PFDR != nil {
		if err := s.SetPFDRParams(p.PFDR.options(s.PFDRParams())); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return &Instance{Graph: g, Solver: s, grid: gg}, nil
}

// Solve runs cut-pursuit and packages the result.
func (in *Instance) Solve() (*Solution, error) {
	res, err := in.Solver.Run()
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	sol := &Solution{
		X:          res.X,
		CompAssign: res.CompAssign,
		Values:     res.Values,
		Iterations: res.Iterations,
		Converged:  res.Converged,
		Evolution:  res.Evolution,
		Objective:  res.Objective,
	}
	for _, d := range res.Times {
		sol.TimesNs = append(sol.TimesNs, d.Nanoseconds())
	}
	if in.grid != nil {
		if sol.Grid, err = in.grid.Reshape(res.X); err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
	}

	return sol, nil
}

// graph builds the graph described by exactly one of Edges, Grid and
// Generator. Weights are indexed by edge id; nil means homogeneous.
func (f *File) graph() (*graph.Graph, []float64, *gridgraph.GridGraph, error) {
	set := 0
	for _, ok := range []bool{f.Edges != nil, f.Grid != nil, f.Generator != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, nil, nil, fmt.Errorf("graph: %d graph descriptions, want exactly one: %w", set, ErrInvalid)
	}

	switch {
	case f.Edges != nil:
		e := f.Edges
		if e.Weights != nil && len(e.Weights) != len(e.Pairs) {
			return nil, nil, nil, fmt.Errorf("graph: %d weights for %d edges: %w", len(e.Weights), len(e.Pairs), ErrInvalid)
		}
		g, perm, err := graph.FromEdges(e.V, e.Pairs)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("graph: %w", err)
		}
		var w []float64
		if e.Weights != nil {
			w = make([]float64, len(e.Weights))
			for i, x := range e.Weights {
				w[perm[i]] = x
			}
		}
		return g, w, nil, nil

	case f.Grid != nil:
		opts := gridgraph.DefaultGridOptions()
		switch f.Grid.Conn {
		case 0, 4:
		case 8:
			opts.Conn = gridgraph.Conn8
		default:
			return nil, nil, nil, fmt.Errorf("graph: connectivity %d: %w", f.Grid.Conn, ErrInvalid)
		}
		gg, err := gridgraph.NewGridGraph(f.Grid.Values, opts)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("graph: %w", err)
		}
		g, w, err := gg.ToGraph()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("graph: %w", err)
		}
		return g, w, gg, nil

	default:
		ctor, bopts, err := f.Generator.constructor()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("graph: %w", err)
		}
		g, w, err := builder.BuildGraph(bopts, ctor)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("graph: %w", err)
		}
		return g, w, nil, nil
	}
}

// constructor maps the generator to a builder constructor and options.
func (gen *Generator) constructor() (builder.Constructor, []builder.BuilderOption, error) {
	var ctor builder.Constructor
	switch gen.Kind {
	case "path":
		ctor = builder.Path(gen.N)
	case "cycle":
		ctor = builder.Cycle(gen.N)
	case "star":
		ctor = builder.Star(gen.N)
	case "wheel":
		ctor = builder.Wheel(gen.N)
	case "complete":
		ctor = builder.Complete(gen.N)
	case "grid":
		ctor = builder.Grid(gen.Rows, gen.Cols)
	case "random_sparse":
		ctor = builder.RandomSparse(gen.N, gen.P)
	case "random_regular":
		ctor = builder.RandomRegular(gen.N, gen.D)
	default:
		return nil, nil, fmt.Errorf("generator kind %q: %w", gen.Kind, ErrInvalid)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(gen.Seed)}
	if wd := gen.Weight; wd != nil {
		fn, err := wd.weightFn()
		if err != nil {
			return nil, nil, err
		}
		bopts = append(bopts, builder.WithWeightFn(fn))
	}

	return ctor, bopts, nil
}

// weightFn validates the distribution before calling the panicking
// builder constructors.
func (wd *WeightDist) weightFn() (builder.WeightFn, error) {
	bad := func() error {
		return fmt.Errorf("weight %s(%g, %g): %w", wd.Dist, wd.A, wd.B, ErrInvalid)
	}
	switch wd.Dist {
	case "constant":
		if !(wd.A >= 0) {
			return nil, bad()
		}
		return builder.ConstantWeightFn(wd.A), nil
	case "uniform":
		if !(wd.A >= 0 && wd.B >= wd.A) {
			return nil, bad()
		}
		return builder.UniformWeightFn(wd.A, wd.B), nil
	case "normal":
		if !(wd.B >= 0) {
			return nil, bad()
		}
		return builder.NormalWeightFn(wd.A, wd.B), nil
	case "exponential":
		if !(wd.A > 0) {
			return nil, bad()
		}
		return builder.ExponentialWeightFn(wd.A), nil
	default:
		return nil, bad()
	}
}

// form builds the quadratic representation; fallbackY supplies the
// observations when q carries none. A nil q means no quadratic term
// unless fallbackY is set, in which case the identity is used.
func (q *Quadratic) form(v int, fallbackY []float64) (quadratic.Form, error) {
	if q == nil {
		if fallbackY == nil {
			return quadratic.NewZero(v), nil
		}
		q = &Quadratic{Kind: quadratic.Identity.String()}
	}
	y := q.Y
	if y == nil {
		y = fallbackY
	}

	var (
		form quadratic.Form
		err  error
	)
	switch q.Kind {
	case quadratic.None.String():
		return quadratic.NewZero(v), nil
	case quadratic.Identity.String():
		a := 1.0
		if q.Scale != nil {
			a = *q.Scale
		}
		form, err = quadratic.NewIdentity(v, a, y)
	case quadratic.Diagonal.String():
		form, err = quadratic.NewDiagonal(q.Diag, y)
	case quadratic.Gram.String():
		if len(q.Matrix) != v*v {
			return nil, fmt.Errorf("quadratic: gram matrix has %d entries for V=%d: %w", len(q.Matrix), v, ErrInvalid)
		}
		form, err = quadratic.NewGram(mat.NewSymDense(v, append([]float64(nil), q.Matrix...)), y)
	case quadratic.Direct.String():
		if q.Rows < 1 || len(q.Matrix) != q.Rows*v {
			return nil, fmt.Errorf("quadratic: direct matrix has %d entries for %d×%d: %w", len(q.Matrix), q.Rows, v, ErrInvalid)
		}
		form, err = quadratic.NewDirect(mat.NewDense(q.Rows, v, append([]float64(nil), q.Matrix...)), y)
	default:
		return nil, fmt.Errorf("quadratic: kind %q: %w", q.Kind, ErrInvalid)
	}
	if err != nil {
		return nil, fmt.Errorf("quadratic: %w", err)
	}

	return form, nil
}

// options translates Params, validating before the panicking option
// constructors run.
func (p *Params) options() ([]ql1b.Option, error) {
	if p == nil {
		return nil, nil
	}
	var opts []ql1b.Option
	finite := func(x float64) bool { return x >= 0 && !math.IsInf(x, 0) }
	if p.DifTol != nil {
		if !finite(*p.DifTol) {
			return nil, fmt.Errorf("params: dif_tol %g: %w", *p.DifTol, ErrInvalid)
		}
		opts = append(opts, ql1b.WithDifTol(*p.DifTol))
	}
	if p.ItMax < 0 {
		return nil, fmt.Errorf("params: it_max %d: %w", p.ItMax, ErrInvalid)
	}
	if p.ItMax > 0 {
		opts = append(opts, ql1b.WithItMax(p.ItMax))
	}
	if p.MergeTol != nil {
		if !finite(*p.MergeTol) {
			return nil, fmt.Errorf("params: merge_tol %g: %w", *p.MergeTol, ErrInvalid)
		}
		opts = append(opts, ql1b.WithMergeTol(*p.MergeTol))
	}
	if p.NoMerge {
		opts = append(opts, ql1b.WithoutMerge())
	}
	if p.Monitor {
		opts = append(opts, ql1b.WithObjectiveMonitoring())
	}
	if p.MaxWorkers != 0 {
		opts = append(opts, ql1b.WithMaxWorkers(p.MaxWorkers))
	}
	switch p.Flow {
	case "", flow.Dinic.String():
	case flow.EdmondsKarp.String():
		opts = append(opts, ql1b.WithFlowOptions(flow.WithAlgorithm(flow.EdmondsKarp)))
	default:
		return nil, fmt.Errorf("params: flow %q: %w", p.Flow, ErrInvalid)
	}

	return opts, nil
}

// options overrides the non-zero fields of base, the solver's current
// tuning.
func (p *PFDRParams) options(base pfdr.Options) pfdr.Options {
	o := base
	if p.Rho != 0 {
		o.Rho = p.Rho
	}
	if p.CondMin != 0 {
		o.CondMin = p.CondMin
	}
	if p.DifRcd != 0 {
		o.DifRcd = p.DifRcd
	}
	if p.DifTol != 0 {
		o.DifTol = p.DifTol
	}
	if p.ItMax != 0 {
		o.ItMax = p.ItMax
	}

	return o
}
