package ql1b

import (
	"math"

	"github.com/katalvlaran/cutpursuit/graph"
	"github.com/katalvlaran/cutpursuit/internal/selection"
)

// SolveUnivertex solves the problem restricted to constant vectors, installs
// the single-region partition with that value, and returns it.
//
// With aa = ‖A1‖², y = ⟨A1, Y⟩, the summed l1 weight wl1 and the weighted
// median m of the targets, the optimum of ½aa·u² − y·u + wl1|u − m| is
//
//	(y − wl1)/aa   if y − wl1 > aa·m
//	(y + wl1)/aa   if y + wl1 < aa·m
//	m              otherwise,
//
// clipped to [max_v l_v, min_v u_v]. Without quadratic term the median is
// returned.
//
// Complexity: that of the representation's reduction, plus O(V log V) for
// the median.
func (s *Solver) SolveUnivertex() float64 {
	p := graph.SinglePartition(s.g.V)
	s.setPartition(p, []float64{0})
	for e := range s.active {
		s.active[e] = false
	}
	s.lastRX = []float64{0}
	s.lastCompAssign = make([]int, s.g.V)

	aa, y := s.quad.Univertex()
	var wl1, m float64
	if s.hasL1() {
		wl1, m = s.regionL1(0)
	}

	var u float64
	switch {
	case aa == 0:
		u = m
	case y-wl1 > aa*m:
		u = (y - wl1) / aa
	case y+wl1 < aa*m:
		u = (y + wl1) / aa
	default:
		u = m
	}
	lo, hi := s.regionBounds(0)
	if u < lo {
		u = lo
	}
	if u > hi {
		u = hi
	}

	s.rX[0] = u
	s.quad.Commit(p, s.rX)

	return u
}

// regionL1 returns the summed l1 weight of region r and the weighted median
// of its targets. The region's segment is left ordered by target, which
// later calls exploit while the region stays unchanged.
func (s *Solver) regionL1(r int) (weight, target float64) {
	seg := s.part.Component(r)
	if s.l1Weights == nil {
		weight = s.homoL1 * float64(len(seg))
	} else {
		for _, v := range seg {
			weight += s.l1Weights[v]
		}
	}
	if s.yl1 == nil {
		return weight, 0
	}

	var pos int
	switch {
	case s.ordered[r] && s.l1Weights == nil:
		pos = selection.Middle(len(seg))
	case s.ordered[r]:
		pos = selection.ScanWeighted(seg, s.l1Weights)
	case s.l1Weights == nil:
		pos = selection.Median(seg, s.yl1)
	default:
		pos = selection.WeightedMedian(seg, s.yl1, s.l1Weights)
	}
	s.ordered[r] = true

	return weight, s.yl1[seg[pos]]
}

// regionBounds returns the tightest box valid for every vertex of region r.
func (s *Solver) regionBounds(r int) (lo, hi float64) {
	if s.low == nil {
		lo = s.homoLow
	} else {
		lo = math.Inf(-1)
		for _, v := range s.part.Component(r) {
			lo = math.Max(lo, s.low[v])
		}
	}
	if s.upp == nil {
		hi = s.homoUpp
	} else {
		hi = math.Inf(1)
		for _, v := range s.part.Component(r) {
			hi = math.Min(hi, s.upp[v])
		}
	}

	return lo, hi
}
