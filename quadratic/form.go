package quadratic

import (
	"errors"

	"github.com/katalvlaran/cutpursuit/graph"
	"github.com/katalvlaran/cutpursuit/internal/parallel"
	"github.com/katalvlaran/cutpursuit/pfdr"
)

// Sentinel errors for form construction.
var (
	// ErrDimension indicates inconsistent array or matrix sizes.
	ErrDimension = errors.New("quadratic: dimension mismatch")
	// ErrNegative indicates a negative or non-finite curvature coefficient.
	ErrNegative = errors.New("quadratic: negative or non-finite coefficient")
)

// Kind enumerates the representations.
type Kind int

// Representations of the quadratic term.
const (
	None Kind = iota
	Identity
	Diagonal
	Gram
	Direct
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Identity:
		return "identity"
	case Diagonal:
		return "diagonal"
	case Gram:
		return "gram"
	case Direct:
		return "direct"
	default:
		return "unknown"
	}
}

// Form is a quadratic term over V vertices. Points are piecewise constant:
// vertex v takes rX[p.CompAssign[v]].
type Form interface {
	// Kind reports the representation.
	Kind() Kind
	// Dim returns V.
	Dim() int
	// Univertex returns ‖A1‖² and ⟨A1, Y⟩, the statistics of the problem
	// restricted to constant vectors.
	Univertex() (aa, y float64)
	// Reduce returns the quadratic over the regions of p, nil for None.
	// premultiply only matters for Direct: the reduced term is then given
	// in Gram form.
	Reduce(p *graph.Partition, premultiply bool) pfdr.Quadratic
	// VertexGradient returns ∂Q/∂x_v at the point rX. Calls for distinct
	// vertices may run concurrently.
	VertexGradient(v int, p *graph.Partition, rX []float64) float64
	// Commit records rX as the current point (Direct refreshes its residual).
	Commit(p *graph.Partition, rX []float64)
	// Objective returns Q at rX.
	Objective(p *graph.Partition, rX []float64) float64
	// SetMaxWorkers caps the goroutines of Reduce, Commit and Objective;
	// n ≤ 0 means GOMAXPROCS.
	SetMaxWorkers(n int)
}

// workers holds the pool shared by a form's loops. The zero value uses
// GOMAXPROCS.
type workers struct{ pool parallel.Pool }

// SetMaxWorkers implements Form.
func (w *workers) SetMaxWorkers(n int) { w.pool = parallel.New(n) }

// Zero is the absent quadratic term.
type Zero struct {
	workers
	V int
}

// NewZero returns the absent term over v vertices.
func NewZero(v int) *Zero { return &Zero{V: v} }

// Kind implements Form.
func (z *Zero) Kind() Kind { return None }

// Dim implements Form.
func (z *Zero) Dim() int { return z.V }

// Univertex implements Form.
func (z *Zero) Univertex() (aa, y float64) { return 0, 0 }

// Reduce implements Form.
func (z *Zero) Reduce(*graph.Partition, bool) pfdr.Quadratic { return nil }

// VertexGradient implements Form.
func (z *Zero) VertexGradient(int, *graph.Partition, []float64) float64 { return 0 }

// Commit implements Form.
func (z *Zero) Commit(*graph.Partition, []float64) {}

// Objective implements Form.
func (z *Zero) Objective(*graph.Partition, []float64) float64 { return 0 }

// at returns y[i], or 0 for a nil y.
func at(y []float64, i int) float64 {
	if y == nil {
		return 0
	}
	return y[i]
}

// regionSums returns Σ_{v∈r} y_v per region, nil for a nil y.
func regionSums(pool parallel.Pool, p *graph.Partition, y []float64) []float64 {
	if y == nil {
		return nil
	}
	s := make([]float64, p.NumComponents())
	pool.Each(len(y), len(s), func(r int) {
		for _, v := range p.Component(r) {
			s[r] += y[v]
		}
	})

	return s
}
