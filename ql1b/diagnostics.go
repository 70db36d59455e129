package ql1b

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ampFloor bounds the amplitude below in the relative evolution.
const ampFloor = 2.220446049250313e-16

// ComputeEvolution returns the relative evolution ‖x − x_prev‖ / ‖x‖ of the
// last reduced solve, where x_prev is the iterate before it, and the number
// of saturated regions. A saturated region whose value moved by more than
// the relative tolerance is released first; its change is measured through
// its first vertex only. The amplitude is floored, so the result is finite.
//
// Complexity: O(V).
func (s *Solver) ComputeEvolution() (float64, int) {
	if s.part == nil {
		return 0, 0
	}
	p := s.part
	rv := p.NumComponents()
	dif := make([]float64, rv)
	amp := make([]float64, rv)

	s.pool.Each(s.g.V, rv, func(r int) {
		x := s.rX[r]
		seg := p.Component(r)
		size := float64(len(seg))
		if s.saturated[r] {
			d := math.Abs(x - s.lastRX[s.lastCompAssign[seg[0]]])
			if d > math.Abs(x)*s.opts.difTol {
				s.saturated[r] = false
			}
			dif[r] = d * d * size
		} else {
			for _, v := range seg {
				d := x - s.lastRX[s.lastCompAssign[v]]
				dif[r] += d * d
			}
		}
		amp[r] = x * x * size
	})

	var saturation int
	for _, sat := range s.saturated {
		if sat {
			saturation++
		}
	}
	d, a := math.Sqrt(floats.Sum(dif)), math.Sqrt(floats.Sum(amp))
	if a > ampFloor {
		return d / a, saturation
	}

	return d / ampFloor, saturation
}

// ComputeObjective returns the objective at the current iterate: the
// quadratic term in its representation's closed form, plus the d1 term over
// active edges, plus the l1 term. Monitoring only; the state is unchanged.
func (s *Solver) ComputeObjective() float64 {
	if s.part == nil {
		return math.NaN()
	}
	p := s.part
	obj := s.quad.Objective(p, s.rX)

	e := s.g.E()
	obj += s.pool.Sum(e, e, func(k int) float64 {
		if !s.active[k] {
			return 0
		}
		u, v := s.g.Endpoints(k)
		return s.edgeWeight(k) * math.Abs(s.rX[p.CompAssign[u]]-s.rX[p.CompAssign[v]])
	})

	if s.hasL1() {
		obj += s.pool.Sum(s.g.V, s.g.V, func(v int) float64 {
			return s.l1Weight(v) * math.Abs(s.rX[p.CompAssign[v]]-s.target(v))
		})
	}

	return obj
}
