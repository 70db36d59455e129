package pfdr

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/cutpursuit/internal/parallel"
)

// Problem describes one instance. Nil optional arrays take these meanings:
// Quad nil means no smooth term; EdgeWeights nil means unit weights;
// L1Weights nil means no l1 term; Yl1 nil means zero targets; Low nil means
// −∞ and Upp nil means +∞.
type Problem struct {
	Edges       [][2]int
	EdgeWeights []float64
	Quad        Quadratic
	L1Weights   []float64
	Yl1         []float64
	Low, Upp    []float64
}

// solver holds the splitting state of one Solve call.
type solver struct {
	p    *Problem
	o    Options
	pool parallel.Pool
	v    int

	gamma []float64 // step sizes
	grad  []float64

	// incidence of coordinates in edge terms: slots 2e (first endpoint)
	// and 2e+1 (second endpoint)
	incFirst []int
	incSlots []int

	zE, wE []float64 // edge-term auxiliaries and weights, per slot
	zH, wH []float64 // l1+box-term auxiliaries and weights, per coordinate
	next   []float64
}

// Solve minimizes the problem starting from x, which is overwritten with the
// solution (projected onto the box). It returns the number of iterations.
//
// Steps:
//  1. Validate sizes; project x onto the box.
//  2. Compute step sizes γ_v = 1 / max(L_v, CondMin·max L); γ = 1 when there
//     is no smooth term.
//  3. Initialize weights W = 1/(deg+1) and auxiliaries z = x.
//  4. Iterate the relaxed splitting update until the relative evolution
//     falls below DifTol or ItMax is reached.
//
// Complexity: O(ItMax · (cost(∇f) + V + E)).
func Solve(p *Problem, x []float64, opts Options) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, fmt.Errorf("Solve: %w", err)
	}
	v := len(x)
	if err := p.check(v); err != nil {
		return 0, fmt.Errorf("Solve: %w", err)
	}
	if v == 0 {
		return 0, nil
	}

	s := &solver{p: p, o: opts, pool: parallel.New(opts.MaxWorkers), v: v}
	s.project(x)
	s.setup(x)

	difRcd := opts.DifRcd
	var it int
	var dif float64
	for it < opts.ItMax {
		dif = s.iterate(x)
		it++
		if difRcd > 0 && dif < difRcd {
			s.recondition(x)
			difRcd /= 10
			continue
		}
		if dif < opts.DifTol {
			break
		}
	}
	s.project(x)

	opts.logger().Debug("pfdr solved",
		zap.Int("vertices", v),
		zap.Int("edges", len(p.Edges)),
		zap.Int("iterations", it),
		zap.Float64("evolution", dif),
	)

	return it, nil
}

func (p *Problem) check(v int) error {
	for _, a := range []struct {
		name string
		s    []float64
	}{{"l1 weights", p.L1Weights}, {"l1 targets", p.Yl1}, {"lower bounds", p.Low}, {"upper bounds", p.Upp}} {
		if a.s != nil && len(a.s) != v {
			return fmt.Errorf("%s: len %d for %d coordinates: %w", a.name, len(a.s), v, ErrDimension)
		}
	}
	if p.EdgeWeights != nil && len(p.EdgeWeights) != len(p.Edges) {
		return fmt.Errorf("edge weights: len %d for %d edges: %w", len(p.EdgeWeights), len(p.Edges), ErrDimension)
	}
	if p.Quad != nil && p.Quad.Dim() != v {
		return fmt.Errorf("quadratic: dim %d for %d coordinates: %w", p.Quad.Dim(), v, ErrDimension)
	}
	for e, uv := range p.Edges {
		if uv[0] < 0 || uv[0] >= v || uv[1] < 0 || uv[1] >= v || uv[0] == uv[1] {
			return fmt.Errorf("edge %d (%d,%d): %w", e, uv[0], uv[1], ErrDimension)
		}
	}

	return nil
}

func (p *Problem) edgeWeight(e int) float64 {
	if p.EdgeWeights == nil {
		return 1
	}
	return p.EdgeWeights[e]
}

func (s *solver) setup(x []float64) {
	v, e := s.v, len(s.p.Edges)

	s.gamma = make([]float64, v)
	s.grad = make([]float64, v)
	if s.p.Quad == nil {
		for i := range s.gamma {
			s.gamma[i] = 1
		}
	} else {
		l := make([]float64, v)
		s.p.Quad.Lipschitz(l)
		var lmax float64
		for _, li := range l {
			lmax = math.Max(lmax, li)
		}
		floor := s.o.CondMin * lmax
		for i, li := range l {
			switch d := math.Max(li, floor); {
			case d > 0:
				s.gamma[i] = 1 / d
			default:
				s.gamma[i] = 1
			}
		}
	}

	s.incFirst = make([]int, v+1)
	for _, uv := range s.p.Edges {
		s.incFirst[uv[0]+1]++
		s.incFirst[uv[1]+1]++
	}
	for i := 0; i < v; i++ {
		s.incFirst[i+1] += s.incFirst[i]
	}
	s.incSlots = make([]int, 2*e)
	fill := make([]int, v)
	copy(fill, s.incFirst[:v])
	for k, uv := range s.p.Edges {
		s.incSlots[fill[uv[0]]] = 2 * k
		fill[uv[0]]++
		s.incSlots[fill[uv[1]]] = 2*k + 1
		fill[uv[1]]++
	}

	s.zE = make([]float64, 2*e)
	s.wE = make([]float64, 2*e)
	s.zH = make([]float64, v)
	s.wH = make([]float64, v)
	s.next = make([]float64, v)
	for i := 0; i < v; i++ {
		w := 1 / float64(s.incFirst[i+1]-s.incFirst[i]+1)
		s.wH[i] = w
		for _, k := range s.incSlots[s.incFirst[i]:s.incFirst[i+1]] {
			s.wE[k] = w
		}
	}
	s.resetAux(x)
}

// resetAux sets every auxiliary variable to the current iterate.
func (s *solver) resetAux(x []float64) {
	copy(s.zH, x)
	for k, uv := range s.p.Edges {
		s.zE[2*k] = x[uv[0]]
		s.zE[2*k+1] = x[uv[1]]
	}
}

// iterate performs one relaxed update and returns the relative evolution.
func (s *solver) iterate(x []float64) float64 {
	v, e := s.v, len(s.p.Edges)
	rho := s.o.Rho

	if s.p.Quad != nil {
		s.p.Quad.Gradient(x, s.grad)
	}

	s.pool.Each(8*e, e, func(k int) {
		u, w := s.p.Edges[k][0], s.p.Edges[k][1]
		a, b := 2*k, 2*k+1
		pu := 2*x[u] - s.zE[a] - s.gamma[u]*s.grad[u]
		pw := 2*x[w] - s.zE[b] - s.gamma[w]*s.grad[w]
		pu, pw = proxEdge(pu, pw, s.wE[a]/s.gamma[u], s.wE[b]/s.gamma[w], s.p.edgeWeight(k))
		s.zE[a] += rho * (pu - x[u])
		s.zE[b] += rho * (pw - x[w])
	})

	s.pool.Each(8*v, v, func(i int) {
		q := 2*x[i] - s.zH[i] - s.gamma[i]*s.grad[i]
		q = s.proxH(i, q, s.wH[i]/s.gamma[i])
		s.zH[i] += rho * (q - x[i])
	})

	s.pool.Each(v+2*e, v, func(i int) {
		acc := s.wH[i] * s.zH[i]
		for _, k := range s.incSlots[s.incFirst[i]:s.incFirst[i+1]] {
			acc += s.wE[k] * s.zE[k]
		}
		s.next[i] = acc
	})

	dif := s.pool.Sum(2*v, v, func(i int) float64 {
		d := s.next[i] - x[i]
		return d * d
	})
	amp := s.pool.Sum(2*v, v, func(i int) float64 { return s.next[i] * s.next[i] })
	copy(x, s.next)

	if amp > 0 {
		return math.Sqrt(dif / amp)
	}

	return math.Sqrt(dif)
}

// proxEdge is the proximal operator of w|a − b| in the metric diag(αa, αb).
func proxEdge(a, b, alphaA, alphaB, w float64) (float64, float64) {
	if w == 0 {
		return a, b
	}
	d := a - b
	if math.Abs(d) <= w*(1/alphaA+1/alphaB) {
		m := (alphaA*a + alphaB*b) / (alphaA + alphaB)
		return m, m
	}
	if d > 0 {
		return a - w/alphaA, b + w/alphaB
	}

	return a + w/alphaA, b - w/alphaB
}

// proxH is the proximal operator of λ_i|q − t_i| + ι[l_i, u_i] in the metric
// α: soft-thresholding toward the target followed by clipping.
func (s *solver) proxH(i int, q, alpha float64) float64 {
	if s.p.L1Weights != nil {
		var t float64
		if s.p.Yl1 != nil {
			t = s.p.Yl1[i]
		}
		th := s.p.L1Weights[i] / alpha
		switch d := q - t; {
		case d > th:
			q -= th
		case d < -th:
			q += th
		default:
			q = t
		}
	}

	return s.clip(i, q)
}

func (s *solver) clip(i int, q float64) float64 {
	if s.p.Low != nil && q < s.p.Low[i] {
		return s.p.Low[i]
	}
	if s.p.Upp != nil && q > s.p.Upp[i] {
		return s.p.Upp[i]
	}
	return q
}

func (s *solver) project(x []float64) {
	for i := range x {
		x[i] = s.clip(i, x[i])
	}
}

// recondition recomputes the splitting weights from the curvature of each
// nonsmooth term at x, approximated by weight / distance to its kink, and
// restarts the auxiliaries at x.
func (s *solver) recondition(x []float64) {
	var scale float64
	for _, xi := range x {
		scale = math.Max(scale, math.Abs(xi))
	}
	if scale == 0 {
		scale = 1
	}
	eps := s.o.CondMin * scale

	curvE := make([]float64, len(s.zE))
	for k, uv := range s.p.Edges {
		c := s.p.edgeWeight(k) / math.Max(math.Abs(x[uv[0]]-x[uv[1]]), eps)
		curvE[2*k], curvE[2*k+1] = c, c
	}

	for i := 0; i < s.v; i++ {
		var ch float64
		if s.p.L1Weights != nil {
			var t float64
			if s.p.Yl1 != nil {
				t = s.p.Yl1[i]
			}
			ch = s.p.L1Weights[i] / math.Max(math.Abs(x[i]-t), eps)
		}
		slots := s.incSlots[s.incFirst[i]:s.incFirst[i+1]]
		cmax := ch
		for _, k := range slots {
			cmax = math.Max(cmax, curvE[k])
		}
		if cmax == 0 {
			continue
		}
		floor := s.o.CondMin * cmax
		ch = math.Max(ch, floor)
		total := ch
		for _, k := range slots {
			total += math.Max(curvE[k], floor)
		}
		s.wH[i] = ch / total
		for _, k := range slots {
			s.wE[k] = math.Max(curvE[k], floor) / total
		}
	}
	s.resetAux(x)
}
