package quadratic

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cutpursuit/graph"
	"github.com/katalvlaran/cutpursuit/pfdr"
)

// DirectForm is Q(x) = ½‖Y − Ax‖² with A of size N×V. It keeps the residual
// R = Y − Ax of the last committed point.
type DirectForm struct {
	workers
	A *mat.Dense
	Y []float64 // length N; nil means zeros
	R []float64
}

// NewDirect returns the direct form; the residual starts at Y (x = 0).
func NewDirect(a *mat.Dense, y []float64) (*DirectForm, error) {
	n, _ := a.Dims()
	if y != nil && len(y) != n {
		return nil, fmt.Errorf("NewDirect: len(Y)=%d for N=%d: %w", len(y), n, ErrDimension)
	}
	f := &DirectForm{A: a, Y: y, R: make([]float64, n)}
	if y != nil {
		copy(f.R, y)
	}

	return f, nil
}

// Kind implements Form.
func (f *DirectForm) Kind() Kind { return Direct }

// Dim implements Form.
func (f *DirectForm) Dim() int {
	_, v := f.A.Dims()
	return v
}

// Observations returns N.
func (f *DirectForm) Observations() int {
	n, _ := f.A.Dims()
	return n
}

// Univertex implements Form with the summed column c = A1.
func (f *DirectForm) Univertex() (aa, y float64) {
	c := f.reducedDesign(graph.SinglePartition(f.Dim())).RawMatrix()
	n := f.Observations()
	for i := 0; i < n; i++ {
		ci := c.Data[i*c.Stride]
		aa += ci * ci
		y += ci * at(f.Y, i)
	}

	return aa, y
}

// reducedDesign returns the N×rV matrix whose column r sums the columns of A
// over region r.
func (f *DirectForm) reducedDesign(p *graph.Partition) *mat.Dense {
	n, v := f.A.Dims()
	rv := p.NumComponents()
	red := mat.NewDense(n, rv, nil)
	raw, rraw := f.A.RawMatrix(), red.RawMatrix()
	f.pool.For(n*v, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := raw.Data[i*raw.Stride : i*raw.Stride+v]
			rrow := rraw.Data[i*rraw.Stride : i*rraw.Stride+rv]
			for u, a := range row {
				rrow[p.CompAssign[u]] += a
			}
		}
	})

	return red
}

// Reduce implements Form. With premultiply the reduced term is given by its
// Gram matrix rAᵗrA and rAᵗY, otherwise by rA itself.
func (f *DirectForm) Reduce(p *graph.Partition, premultiply bool) pfdr.Quadratic {
	ra := f.reducedDesign(p)
	if !premultiply {
		return pfdr.Direct{A: ra, Y: f.Y}
	}

	rv := p.NumComponents()
	g := mat.NewSymDense(rv, nil)
	g.SymOuterK(1, ra.T())
	var r []float64
	if f.Y != nil {
		ry := mat.NewVecDense(rv, nil)
		ry.MulVec(ra.T(), mat.NewVecDense(len(f.Y), f.Y))
		r = ry.RawVector().Data
	}

	return pfdr.Gram{Q: g, R: r}
}

// VertexGradient implements Form: −(AᵗR)_v.
func (f *DirectForm) VertexGradient(v int, _ *graph.Partition, _ []float64) float64 {
	raw := f.A.RawMatrix()
	var g float64
	for i, ri := range f.R {
		g -= raw.Data[i*raw.Stride+v] * ri
	}

	return g
}

// Commit implements Form: R = Y − Ax, row by row.
func (f *DirectForm) Commit(p *graph.Partition, rX []float64) {
	x := expand(p, rX)
	raw := f.A.RawMatrix()
	n, v := f.A.Dims()
	f.pool.For(n*v, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f.R[i] = at(f.Y, i) - floats.Dot(raw.Data[i*raw.Stride:i*raw.Stride+v], x)
		}
	})
}

// Objective implements Form: ½‖R‖² of the last committed point.
func (f *DirectForm) Objective(*graph.Partition, []float64) float64 {
	return 0.5 * floats.Dot(f.R, f.R)
}

// Residual returns the residual of the last committed point. The slice is
// owned by the form.
func (f *DirectForm) Residual() []float64 { return f.R }
