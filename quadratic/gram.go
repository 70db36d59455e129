package quadratic

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cutpursuit/graph"
	"github.com/katalvlaran/cutpursuit/pfdr"
)

// GramForm is Q(x) = ½ xᵗGx − ⟨x, Y⟩ with G = AᵗA.
type GramForm struct {
	workers
	G *mat.SymDense
	Y []float64 // AᵗY; nil means zeros
}

// NewGram returns the form AᵗA = g.
func NewGram(g *mat.SymDense, y []float64) (*GramForm, error) {
	v := g.SymmetricDim()
	if y != nil && len(y) != v {
		return nil, fmt.Errorf("NewGram: len(Y)=%d for V=%d: %w", len(y), v, ErrDimension)
	}

	return &GramForm{G: g, Y: y}, nil
}

// Kind implements Form.
func (f *GramForm) Kind() Kind { return Gram }

// Dim implements Form.
func (f *GramForm) Dim() int { return f.G.SymmetricDim() }

// entry reads G_uv from the upper triangle.
func (f *GramForm) entry(raw []float64, stride, u, v int) float64 {
	if u > v {
		u, v = v, u
	}
	return raw[u*stride+v]
}

// Univertex implements Form: aa is the sum of all entries of G.
func (f *GramForm) Univertex() (aa, y float64) {
	raw := f.G.RawSymmetric()
	n := f.Dim()
	aa = f.pool.Sum(n*n/2, n, func(u int) float64 {
		row := raw.Data[u*raw.Stride : u*raw.Stride+n]
		s := row[u]
		for _, g := range row[u+1:] {
			s += 2 * g
		}
		return s
	})
	if f.Y != nil {
		y = floats.Sum(f.Y)
	}

	return aa, y
}

// Reduce implements Form. Entry (r, s) of the reduced matrix is the sum of
// G over the block (region r) × (region s); only r ≤ s is filled. Regions
// are processed concurrently, each filling its own row.
//
// Complexity: O(V²).
func (f *GramForm) Reduce(p *graph.Partition, _ bool) pfdr.Quadratic {
	rv := p.NumComponents()
	raw := f.G.RawSymmetric()
	red := mat.NewSymDense(rv, nil)
	rraw := red.RawSymmetric()
	n := f.Dim()
	f.pool.Dynamic(f.pool.Workers(n*n, rv), rv, func(_, ru int) {
		row := rraw.Data[ru*rraw.Stride : ru*rraw.Stride+rv]
		for _, u := range p.Component(ru) {
			for v := 0; v < n; v++ {
				if rs := p.CompAssign[v]; ru <= rs {
					row[rs] += f.entry(raw.Data, raw.Stride, u, v)
				}
			}
		}
	})

	return pfdr.Gram{Q: red, R: regionSums(f.pool, p, f.Y)}
}

// VertexGradient implements Form, skipping regions whose value is zero.
func (f *GramForm) VertexGradient(v int, p *graph.Partition, rX []float64) float64 {
	raw := f.G.RawSymmetric()
	var g float64
	for r, x := range rX {
		if x == 0 {
			continue
		}
		var s float64
		for _, u := range p.Component(r) {
			s += f.entry(raw.Data, raw.Stride, v, u)
		}
		g += x * s
	}

	return g - at(f.Y, v)
}

// Commit implements Form.
func (f *GramForm) Commit(*graph.Partition, []float64) {}

// Objective implements Form.
func (f *GramForm) Objective(p *graph.Partition, rX []float64) float64 {
	x := expand(p, rX)
	raw := f.G.RawSymmetric()
	n := len(x)

	return f.pool.Sum(n*n, n, func(u int) float64 {
		if x[u] == 0 {
			return 0
		}
		var gx float64
		for v, xv := range x {
			gx += f.entry(raw.Data, raw.Stride, u, v) * xv
		}
		return x[u] * (0.5*gx - at(f.Y, u))
	})
}

// expand returns the per-vertex values of the piecewise-constant point rX.
func expand(p *graph.Partition, rX []float64) []float64 {
	x := make([]float64, len(p.CompAssign))
	for v, r := range p.CompAssign {
		x[v] = rX[r]
	}

	return x
}
