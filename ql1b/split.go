package ql1b

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/cutpursuit/flow"
	"github.com/katalvlaran/cutpursuit/quadratic"
)

// Split refines the partition: inside every unsaturated region it looks for
// the vertex subsets whose value should increase (+1_U cut) or decrease
// (−1_U cut), and activates the inactive edges crossing those cuts. A region
// in which both cuts activate nothing becomes saturated. Returns the number
// of activated edges; zero means the partition cannot be refined.
//
// Steps:
//  1. Gradient of the smooth part at the current iterate: quadratic term,
//     ±w over active edges by value order, ±λ_v by the side of the target.
//  2. Per region, one flow network per worker:
//     terminal capacity = gradient, +λ_v at the target, +∞ at the upper
//     bound; inactive internal edges carry w both ways; min cut.
//  3. Unless the problem has neither l1 term nor bounds, the same with −λ_v
//     and −∞ at the lower bound.
//
// Complexity: O(cost(∇Q) + V + E) plus the min cuts.
func (s *Solver) Split() (int, error) {
	if s.part == nil {
		return 0, fmt.Errorf("Split: %w", ErrNotInitialized)
	}
	grad := s.gradient()

	p, v, e := s.part, s.g.V, s.g.E()
	rv := p.NumComponents()
	workers := s.pool.Workers(2*v+5*e, rv)
	nets := make([]*flow.Network, workers)
	errs := make([]error, workers)
	counts := make([]int, rv)
	single := !s.hasL1() && !s.hasLow() && !s.hasUpp()

	s.pool.Dynamic(workers, rv, func(w, r int) {
		if s.saturated[r] || errs[w] != nil {
			return
		}
		if nets[w] == nil {
			nets[w] = flow.NewNetwork(v, s.opts.flowOpts...)
		}
		n, err := s.cut(nets[w], grad, r, 1)
		if err == nil && !single {
			var m int
			m, err = s.cut(nets[w], grad, r, -1)
			n += m
		}
		if err != nil {
			errs[w] = fmt.Errorf("region %d: %w", r, err)
			return
		}
		counts[r] = n
		s.saturated[r] = n == 0
	})
	if err := errors.Join(errs...); err != nil {
		return 0, fmt.Errorf("Split: %w", err)
	}

	var total int
	for _, n := range counts {
		total += n
	}

	return total, nil
}

// gradient returns the gradient of the differentiable part at the current
// iterate, one entry per vertex.
func (s *Solver) gradient() []float64 {
	p, v := s.part, s.g.V
	ops := v + 2*s.g.E()
	switch q := s.quad.(type) {
	case *quadratic.DirectForm:
		ops += v * q.Observations()
	case *quadratic.GramForm:
		ops += v * v
	}

	grad := make([]float64, v)
	hasL1 := s.hasL1()
	s.pool.Each(ops, v, func(u int) {
		g := s.quad.VertexGradient(u, p, s.rX)
		xu := s.rX[p.CompAssign[u]]
		for _, e := range s.g.Incident(u) {
			if !s.active[e] {
				continue
			}
			xo := s.rX[p.CompAssign[s.g.Opposite(e, u)]]
			w := s.edgeWeight(e)
			switch origin, _ := s.g.Endpoints(e); {
			case xu > xo:
				g += w
			case xu < xo:
				g -= w
			case origin == u:
				g -= w
			default:
				g += w
			}
		}
		if hasL1 {
			switch t := s.target(u); {
			case xu > t:
				g += s.l1Weight(u)
			case xu < t:
				g -= s.l1Weight(u)
			}
		}
		grad[u] = g
	})

	return grad
}

// cut solves the min cut of region r in direction dir (+1 or −1) and
// activates the inactive edges crossing it. Returns the activation count.
func (s *Solver) cut(net *flow.Network, grad []float64, r int, dir float64) (int, error) {
	seg := s.part.Component(r)
	x := s.rX[r]
	hasL1 := s.hasL1()
	if err := net.Reset(seg); err != nil {
		return 0, err
	}

	for _, v := range seg {
		c := grad[v]
		if hasL1 && x == s.target(v) {
			c += dir * s.l1Weight(v)
		}
		switch {
		case dir > 0 && x == s.uppBound(v):
			c = math.Inf(1)
		case dir < 0 && x == s.lowBound(v):
			c = math.Inf(-1)
		}
		if err := net.SetTerminal(v, c); err != nil {
			return 0, err
		}
		for _, e := range s.g.Incident(v) {
			if s.active[e] {
				continue
			}
			if u, w := s.g.Endpoints(e); u == v {
				we := s.edgeWeight(e)
				if err := net.AddEdge(u, w, we, we); err != nil {
					return 0, err
				}
			}
		}
	}
	net.MaxFlow()

	var n int
	for _, v := range seg {
		for _, e := range s.g.Incident(v) {
			if s.active[e] {
				continue
			}
			if u, w := s.g.Endpoints(e); u == v && net.IsSink(u) != net.IsSink(w) {
				s.active[e] = true
				n++
			}
		}
	}

	return n, nil
}
