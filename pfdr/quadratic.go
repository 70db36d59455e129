package pfdr

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Quadratic is the smooth part f of the objective.
type Quadratic interface {
	// Dim returns the number of coordinates.
	Dim() int
	// Gradient writes ∇f(x) into grad.
	Gradient(x, grad []float64)
	// Lipschitz writes per-coordinate bounds L with ∇²f ≼ diag(L).
	Lipschitz(l []float64)
	// Value returns f(x).
	Value(x []float64) float64
}

// Gram is f(x) = ½ xᵀQx − rᵀx with Q symmetric positive semidefinite.
// A nil R means r = 0.
type Gram struct {
	Q *mat.SymDense
	R []float64
}

// Dim implements Quadratic.
func (g Gram) Dim() int { return g.Q.SymmetricDim() }

// Gradient implements Quadratic.
func (g Gram) Gradient(x, grad []float64) {
	out := mat.NewVecDense(len(grad), grad)
	out.MulVec(g.Q, mat.NewVecDense(len(x), x))
	if g.R != nil {
		floats.Sub(grad, g.R)
	}
}

// Lipschitz implements Quadratic using absolute row sums (Gershgorin).
func (g Gram) Lipschitz(l []float64) {
	n := g.Dim()
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += math.Abs(g.Q.At(i, j))
		}
		l[i] = s
	}
}

// Value implements Quadratic.
func (g Gram) Value(x []float64) float64 {
	v := mat.NewVecDense(len(x), x)
	q := 0.5 * mat.Inner(v, g.Q, v)
	if g.R != nil {
		q -= floats.Dot(g.R, x)
	}

	return q
}

// Diag is f(x) = ½ Σ D_v x_v² − r_v x_v with D ≥ 0. A nil R means r = 0.
type Diag struct {
	D []float64
	R []float64
}

// Dim implements Quadratic.
func (d Diag) Dim() int { return len(d.D) }

// Gradient implements Quadratic.
func (d Diag) Gradient(x, grad []float64) {
	floats.MulTo(grad, d.D, x)
	if d.R != nil {
		floats.Sub(grad, d.R)
	}
}

// Lipschitz implements Quadratic.
func (d Diag) Lipschitz(l []float64) { copy(l, d.D) }

// Value implements Quadratic.
func (d Diag) Value(x []float64) float64 {
	var q float64
	for i, xi := range x {
		q += 0.5 * d.D[i] * xi * xi
	}
	if d.R != nil {
		q -= floats.Dot(d.R, x)
	}

	return q
}

// Direct is f(x) = ½ ‖Ax − Y‖² with A of size N×V. A nil Y means zeros.
type Direct struct {
	A *mat.Dense
	Y []float64
}

// Dim implements Quadratic.
func (d Direct) Dim() int {
	_, c := d.A.Dims()
	return c
}

// residual returns Ax − Y as a new vector.
func (d Direct) residual(x []float64) *mat.VecDense {
	n, _ := d.A.Dims()
	r := mat.NewVecDense(n, nil)
	r.MulVec(d.A, mat.NewVecDense(len(x), x))
	if d.Y != nil {
		r.SubVec(r, mat.NewVecDense(n, d.Y))
	}

	return r
}

// Gradient implements Quadratic: Aᵗ(Ax − Y).
func (d Direct) Gradient(x, grad []float64) {
	out := mat.NewVecDense(len(grad), grad)
	out.MulVec(d.A.T(), d.residual(x))
}

// Lipschitz implements Quadratic with L = |A|ᵗ|A|1, a diagonal majorant of
// AᵗA.
func (d Direct) Lipschitz(l []float64) {
	n, c := d.A.Dims()
	rowAbs := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			rowAbs[i] += math.Abs(d.A.At(i, j))
		}
	}
	for j := 0; j < c; j++ {
		var s float64
		for i := 0; i < n; i++ {
			s += math.Abs(d.A.At(i, j)) * rowAbs[i]
		}
		l[j] = s
	}
}

// Value implements Quadratic.
func (d Direct) Value(x []float64) float64 {
	r := d.residual(x)
	return 0.5 * mat.Dot(r, r)
}
