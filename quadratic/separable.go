package quadratic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cutpursuit/graph"
	"github.com/katalvlaran/cutpursuit/pfdr"
)

// IdentityForm is Q(x) = ½ a‖x‖² − ⟨x, Y⟩.
type IdentityForm struct {
	workers
	A float64
	Y []float64 // AᵗY; nil means zeros
	v int
}

// NewIdentity returns the form AᵗA = a·I over v vertices.
func NewIdentity(v int, a float64, y []float64) (*IdentityForm, error) {
	if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return nil, fmt.Errorf("NewIdentity: a=%g: %w", a, ErrNegative)
	}
	if y != nil && len(y) != v {
		return nil, fmt.Errorf("NewIdentity: len(Y)=%d for V=%d: %w", len(y), v, ErrDimension)
	}

	return &IdentityForm{A: a, Y: y, v: v}, nil
}

// Kind implements Form.
func (f *IdentityForm) Kind() Kind { return Identity }

// Dim implements Form.
func (f *IdentityForm) Dim() int { return f.v }

// Univertex implements Form.
func (f *IdentityForm) Univertex() (aa, y float64) {
	if f.Y != nil {
		y = floats.Sum(f.Y)
	}
	return f.A * float64(f.v), y
}

// Reduce implements Form: region r gets curvature a·|r|.
func (f *IdentityForm) Reduce(p *graph.Partition, _ bool) pfdr.Quadratic {
	d := make([]float64, p.NumComponents())
	for r := range d {
		d[r] = f.A * float64(p.Size(r))
	}

	return pfdr.Diag{D: d, R: regionSums(f.pool, p, f.Y)}
}

// VertexGradient implements Form.
func (f *IdentityForm) VertexGradient(v int, p *graph.Partition, rX []float64) float64 {
	return f.A*rX[p.CompAssign[v]] - at(f.Y, v)
}

// Commit implements Form.
func (f *IdentityForm) Commit(*graph.Partition, []float64) {}

// Objective implements Form.
func (f *IdentityForm) Objective(p *graph.Partition, rX []float64) float64 {
	return f.pool.Sum(f.v, f.v, func(v int) float64 {
		x := rX[p.CompAssign[v]]
		return 0.5*f.A*x*x - at(f.Y, v)*x
	})
}

// DiagonalForm is Q(x) = ½ Σ D_v x_v² − ⟨x, Y⟩.
type DiagonalForm struct {
	workers
	D []float64
	Y []float64 // AᵗY; nil means zeros
}

// NewDiagonal returns the form AᵗA = diag(d).
func NewDiagonal(d, y []float64) (*DiagonalForm, error) {
	for v, dv := range d {
		if dv < 0 || math.IsNaN(dv) || math.IsInf(dv, 0) {
			return nil, fmt.Errorf("NewDiagonal: D[%d]=%g: %w", v, dv, ErrNegative)
		}
	}
	if y != nil && len(y) != len(d) {
		return nil, fmt.Errorf("NewDiagonal: len(Y)=%d for V=%d: %w", len(y), len(d), ErrDimension)
	}

	return &DiagonalForm{D: d, Y: y}, nil
}

// Kind implements Form.
func (f *DiagonalForm) Kind() Kind { return Diagonal }

// Dim implements Form.
func (f *DiagonalForm) Dim() int { return len(f.D) }

// Univertex implements Form.
func (f *DiagonalForm) Univertex() (aa, y float64) {
	if f.Y != nil {
		y = floats.Sum(f.Y)
	}
	return floats.Sum(f.D), y
}

// Reduce implements Form.
func (f *DiagonalForm) Reduce(p *graph.Partition, _ bool) pfdr.Quadratic {
	return pfdr.Diag{D: regionSums(f.pool, p, f.D), R: regionSums(f.pool, p, f.Y)}
}

// VertexGradient implements Form.
func (f *DiagonalForm) VertexGradient(v int, p *graph.Partition, rX []float64) float64 {
	return f.D[v]*rX[p.CompAssign[v]] - at(f.Y, v)
}

// Commit implements Form.
func (f *DiagonalForm) Commit(*graph.Partition, []float64) {}

// Objective implements Form.
func (f *DiagonalForm) Objective(p *graph.Partition, rX []float64) float64 {
	return f.pool.Sum(len(f.D), len(f.D), func(v int) float64 {
		x := rX[p.CompAssign[v]]
		return 0.5*f.D[v]*x*x - at(f.Y, v)*x
	})
}
