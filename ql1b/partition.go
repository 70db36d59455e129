package ql1b

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cutpursuit/graph"
)

// rebuild recomputes the regions after a split as the connected components
// over inactive edges. New regions inherit the value of the region they come
// from; regions left whole keep their flags and vertex order.
func (s *Solver) rebuild() {
	old := s.part
	np := graph.Components(s.g, s.active)
	rX := make([]float64, np.NumComponents())
	for r := range rX {
		rX[r] = s.rX[old.CompAssign[np.Component(r)[0]]]
	}
	s.deactivateInternal(np)
	s.adopt(np, rX)
}

// merge fuses adjacent regions whose values agree within the merge
// tolerance relative to the largest absolute region value: the edges between them are deactivated and the fused region
// takes the size-weighted mean value. Returns how many regions vanished.
func (s *Solver) merge() int {
	if !s.opts.merge {
		return 0
	}
	p := s.part
	tol := s.opts.mergeTol * floats.Norm(s.rX, math.Inf(1))
	var fused bool
	for e, act := range s.active {
		if !act {
			continue
		}
		u, v := s.g.Endpoints(e)
		if math.Abs(s.rX[p.CompAssign[u]]-s.rX[p.CompAssign[v]]) <= tol {
			s.active[e] = false
			fused = true
		}
	}
	if !fused {
		return 0
	}

	np := graph.Components(s.g, s.active)
	rX := make([]float64, np.NumComponents())
	for v, r := range np.CompAssign {
		rX[r] += s.rX[p.CompAssign[v]]
	}
	for r := range rX {
		rX[r] /= float64(np.Size(r))
	}
	s.deactivateInternal(np)
	vanished := p.NumComponents() - np.NumComponents()
	s.adopt(np, rX)
	s.quad.Commit(np, rX)

	return vanished
}

// deactivateInternal clears active edges whose endpoints share a region.
func (s *Solver) deactivateInternal(np *graph.Partition) {
	for e, act := range s.active {
		if act {
			u, v := s.g.Endpoints(e)
			if np.CompAssign[u] == np.CompAssign[v] {
				s.active[e] = false
			}
		}
	}
}

// adopt installs np with values rX. A region of np with the same size as
// the old region of its first vertex is that region unchanged: it keeps its
// saturation and order flags and its vertex order.
func (s *Solver) adopt(np *graph.Partition, rX []float64) {
	old := s.part
	nr := np.NumComponents()
	sat := make([]bool, nr)
	ord := make([]bool, nr)
	for r := 0; r < nr; r++ {
		seg := np.Component(r)
		or := old.CompAssign[seg[0]]
		if len(seg) == old.Size(or) {
			sat[r], ord[r] = s.saturated[or], s.ordered[or]
			copy(seg, old.Component(or))
		}
	}
	s.part, s.rX, s.saturated, s.ordered = np, rX, sat, ord
}
