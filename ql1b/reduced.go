package ql1b

import (
	"fmt"

	"github.com/katalvlaran/cutpursuit/graph"
	"github.com/katalvlaran/cutpursuit/pfdr"
	"github.com/katalvlaran/cutpursuit/quadratic"
)

// SolveReducedProblem computes the optimal value of every region of the
// current partition and replaces the region values with them.
//
// Steps:
//  1. Aggregate edges between regions into the quotient graph.
//  2. Reduce the quadratic term; a direct term is premultiplied into a Gram
//     matrix when that is cheaper for the expected inner iteration count.
//  3. Per region, in parallel: summed l1 weight, weighted median target,
//     tightest bounds.
//  4. Solve the quotient problem with pfdr, warm-started at the current
//     values, and commit the result.
//
// A region's target is the weighted median of its vertices' targets, which
// is exact only when the targets are constant on the region.
func (s *Solver) SolveReducedProblem() error {
	if s.part == nil {
		return fmt.Errorf("SolveReducedProblem: %w", ErrNotInitialized)
	}
	p := s.part
	rv := p.NumComponents()
	s.lastRX = append(s.lastRX[:0], s.rX...)
	s.lastCompAssign = append(s.lastCompAssign[:0], p.CompAssign...)

	edges, weights := graph.ReducedEdges(s.g, p, s.edgeWeight)
	prob := &pfdr.Problem{
		Edges:       edges,
		EdgeWeights: weights,
		Quad:        s.quad.Reduce(p, s.premultiply(rv)),
	}

	var l1, targets, lo, hi []float64
	if s.hasL1() {
		l1 = make([]float64, rv)
		if s.yl1 != nil {
			targets = make([]float64, rv)
		}
	}
	if s.hasLow() {
		lo = make([]float64, rv)
	}
	if s.hasUpp() {
		hi = make([]float64, rv)
	}
	s.pool.Each(s.g.V, rv, func(r int) {
		if l1 != nil {
			w, t := s.regionL1(r)
			l1[r] = w
			if targets != nil {
				targets[r] = t
			}
		}
		l, u := s.regionBounds(r)
		if lo != nil {
			lo[r] = l
		}
		if hi != nil {
			hi[r] = u
		}
	})
	prob.L1Weights, prob.Yl1, prob.Low, prob.Upp = l1, targets, lo, hi

	x := append([]float64(nil), s.rX...)
	it, err := pfdr.Solve(prob, x, s.pfdrOpts)
	if err != nil {
		return fmt.Errorf("SolveReducedProblem: %w", err)
	}
	s.pfdrIt = it
	s.rX = x
	s.quad.Commit(p, x)

	return nil
}

// premultiply reports whether a direct term over rv regions is cheaper in
// Gram form: N·rV² + rV²·it against 2·N·rV·it operations, that is
// rV < 2·N·it / (N + it).
func (s *Solver) premultiply(rv int) bool {
	d, ok := s.quad.(*quadratic.DirectForm)
	if !ok {
		return false
	}
	n, it := float64(d.Observations()), float64(s.pfdrIt)

	return float64(rv) < 2*n*it/(n+it)
}
