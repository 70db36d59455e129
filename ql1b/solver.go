package ql1b

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cutpursuit/graph"
	"github.com/katalvlaran/cutpursuit/internal/parallel"
	"github.com/katalvlaran/cutpursuit/pfdr"
	"github.com/katalvlaran/cutpursuit/quadratic"
)

// Solver holds a problem instance and the cut-pursuit state: the partition,
// the active edges, the per-region values and flags.
//
// A Solver is not safe for concurrent use; its operations parallelize
// internally.
type Solver struct {
	g    *graph.Graph
	opts options
	pool parallel.Pool

	edgeWeights    []float64 // nil: homoEdgeWeight
	homoEdgeWeight float64

	quad quadratic.Form

	l1Weights []float64 // nil: homoL1
	homoL1    float64
	yl1       []float64 // nil: zero targets

	low, upp         []float64 // nil: homogeneous bounds
	homoLow, homoUpp float64

	pfdrOpts pfdr.Options
	pfdrIt   int // iterations of the last reduced solve

	part      *graph.Partition
	active    []bool
	rX        []float64
	saturated []bool
	// ordered[r] tells that region r's segment is sorted by target, so the
	// median is recovered by a scan.
	ordered []bool

	lastRX         []float64
	lastCompAssign []int
}

// New returns a solver over g with unit edge weights, no quadratic term, no
// l1 term and no bounds.
func New(g *graph.Graph, opts ...Option) (*Solver, error) {
	if g == nil || g.V == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmptyGraph)
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := &Solver{
		g:              g,
		opts:           o,
		pool:           parallel.New(o.maxWorkers),
		homoEdgeWeight: 1,
		quad:           quadratic.NewZero(g.V),
		homoLow:        math.Inf(-1),
		homoUpp:        math.Inf(1),
		active:         make([]bool, g.E()),
	}
	s.pfdrOpts = pfdr.DefaultOptions()
	s.pfdrOpts.DifTol = pfdrDifTolScale * o.difTol
	s.pfdrOpts.MaxWorkers = o.maxWorkers
	s.pfdrOpts.Logger = o.logger.Named("pfdr")
	s.pfdrIt = s.pfdrOpts.ItMax

	return s, nil
}

// SetEdgeWeights sets the d1 weights, one per edge id of the graph, or the
// homogeneous weight when w is nil.
func (s *Solver) SetEdgeWeights(w []float64, homo float64) error {
	if w != nil && len(w) != s.g.E() {
		return fmt.Errorf("SetEdgeWeights: len %d for %d edges: %w", len(w), s.g.E(), ErrDimension)
	}
	if err := checkWeights(w, homo); err != nil {
		return fmt.Errorf("SetEdgeWeights: %w", err)
	}
	s.edgeWeights, s.homoEdgeWeight = w, homo

	return nil
}

// SetQuadratic sets the quadratic term. The form adopts the solver's worker
// cap.
func (s *Solver) SetQuadratic(q quadratic.Form) error {
	if q.Dim() != s.g.V {
		return fmt.Errorf("SetQuadratic: dim %d for V=%d: %w", q.Dim(), s.g.V, ErrDimension)
	}
	q.SetMaxWorkers(s.opts.maxWorkers)
	s.quad = q

	return nil
}

// SetL1 sets the l1 term: per-vertex weights, or the homogeneous weight
// when weights is nil, and the targets (nil for zero targets). A nil
// weights with homo = 0 removes the term.
func (s *Solver) SetL1(weights []float64, homo float64, targets []float64) error {
	if weights != nil && len(weights) != s.g.V {
		return fmt.Errorf("SetL1: len(weights)=%d for V=%d: %w", len(weights), s.g.V, ErrDimension)
	}
	if targets != nil && len(targets) != s.g.V {
		return fmt.Errorf("SetL1: len(targets)=%d for V=%d: %w", len(targets), s.g.V, ErrDimension)
	}
	if err := checkWeights(weights, homo); err != nil {
		return fmt.Errorf("SetL1: %w", err)
	}
	s.l1Weights, s.homoL1, s.yl1 = weights, homo, targets
	s.resetOrdered()

	return nil
}

// SetBounds sets the box: per-vertex arrays, or the homogeneous bound when
// an array is nil. Use ±Inf for no bound.
func (s *Solver) SetBounds(low, upp []float64, homoLow, homoUpp float64) error {
	for _, b := range [][]float64{low, upp} {
		if b != nil && len(b) != s.g.V {
			return fmt.Errorf("SetBounds: len %d for V=%d: %w", len(b), s.g.V, ErrDimension)
		}
	}
	if math.IsNaN(homoLow) || math.IsNaN(homoUpp) || homoLow > homoUpp {
		return fmt.Errorf("SetBounds: [%g, %g]: %w", homoLow, homoUpp, ErrBounds)
	}
	for v := 0; v < s.g.V; v++ {
		l, u := bound(low, homoLow, v), bound(upp, homoUpp, v)
		if math.IsNaN(l) || math.IsNaN(u) || l > u {
			return fmt.Errorf("SetBounds: vertex %d [%g, %g]: %w", v, l, u, ErrBounds)
		}
	}
	s.low, s.upp, s.homoLow, s.homoUpp = low, upp, homoLow, homoUpp

	return nil
}

// SetPFDRParams sets the tuning of the reduced-problem solver, replacing the
// defaults derived in New. MaxWorkers and Logger default to the solver's own
// when left zero.
func (s *Solver) SetPFDRParams(o pfdr.Options) error {
	if err := o.Validate(); err != nil {
		return fmt.Errorf("SetPFDRParams: %w", err)
	}
	if o.MaxWorkers == 0 {
		o.MaxWorkers = s.opts.maxWorkers
	}
	if o.Logger == nil {
		o.Logger = s.opts.logger.Named("pfdr")
	}
	s.pfdrOpts = o
	s.pfdrIt = o.ItMax

	return nil
}

func checkWeights(w []float64, homo float64) error {
	if homo < 0 || math.IsNaN(homo) {
		return fmt.Errorf("homogeneous weight %g: %w", homo, ErrNegativeWeight)
	}
	for i, wi := range w {
		if wi < 0 || math.IsNaN(wi) {
			return fmt.Errorf("weight %d = %g: %w", i, wi, ErrNegativeWeight)
		}
	}

	return nil
}

func bound(b []float64, homo float64, v int) float64 {
	if b == nil {
		return homo
	}
	return b[v]
}

func (s *Solver) edgeWeight(e int) float64 {
	if s.edgeWeights == nil {
		return s.homoEdgeWeight
	}
	return s.edgeWeights[e]
}

func (s *Solver) l1Weight(v int) float64 {
	if s.l1Weights == nil {
		return s.homoL1
	}
	return s.l1Weights[v]
}

func (s *Solver) target(v int) float64 {
	if s.yl1 == nil {
		return 0
	}
	return s.yl1[v]
}

func (s *Solver) lowBound(v int) float64 { return bound(s.low, s.homoLow, v) }

func (s *Solver) uppBound(v int) float64 { return bound(s.upp, s.homoUpp, v) }

func (s *Solver) hasL1() bool { return s.l1Weights != nil || s.homoL1 > 0 }

func (s *Solver) hasLow() bool { return s.low != nil || !math.IsInf(s.homoLow, -1) }

func (s *Solver) hasUpp() bool { return s.upp != nil || !math.IsInf(s.homoUpp, 1) }

func (s *Solver) resetOrdered() {
	for r := range s.ordered {
		s.ordered[r] = false
	}
}

// Partition returns the current partition. It is replaced, not mutated, by
// Run between iterations.
func (s *Solver) Partition() *graph.Partition { return s.part }

// Values returns the current value of every region. The slice is owned by
// the solver.
func (s *Solver) Values() []float64 { return s.rX }

// Active reports whether edge e separates two regions.
func (s *Solver) Active(e int) bool { return s.active[e] }

// Saturated reports whether region r is believed converged.
func (s *Solver) Saturated(r int) bool { return s.saturated[r] }

// Solution returns the current iterate expanded to one value per vertex.
func (s *Solver) Solution() []float64 {
	if s.part == nil {
		return nil
	}
	x := make([]float64, s.g.V)
	for v, r := range s.part.CompAssign {
		x[v] = s.rX[r]
	}

	return x
}

// PFDRParams returns the current tuning of the reduced-problem solver. By
// default its DifTol is 1e-3 times the outer tolerance.
func (s *Solver) PFDRParams() pfdr.Options { return s.pfdrOpts }

// InnerIterations returns the iteration count of the last reduced solve.
func (s *Solver) InnerIterations() int { return s.pfdrIt }

// setPartition installs p with values rX, all regions unsaturated and
// unordered.
func (s *Solver) setPartition(p *graph.Partition, rX []float64) {
	s.part = p
	s.rX = rX
	s.saturated = make([]bool, p.NumComponents())
	s.ordered = make([]bool, p.NumComponents())
}
