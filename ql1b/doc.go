// Package ql1b implements cut-pursuit for the minimization over x ∈ R^V of
//
//	Q(x) + Σ_(u,v)∈E w_uv |x_u − x_v| + Σ_v λ_v |x_v − t_v| + ι[l_v, u_v](x_v)
//
// where Q is a quadratic data-fidelity term (see package quadratic).
//
// The solution is sought among functions constant on the regions of a
// partition of the graph. Starting from the single region, the solver
// alternates two steps:
//
//   - SolveReducedProblem computes the optimal value of every region on the
//     quotient graph (package pfdr);
//   - Split looks, inside every region, for a subset whose value should move
//     up or down, by two minimum cuts (package flow), and marks the edges on
//     its boundary active.
//
// Regions are the connected components of the graph deprived of its active
// edges. Run drives the loop until no edge activates, the relative evolution
// drops below the tolerance, or the iteration cap is reached.
//
// Typical use:
//
//	s, _ := ql1b.New(g, ql1b.WithLogger(logger))
//	q, _ := quadratic.NewIdentity(g.V, 1, y)
//	_ = s.SetQuadratic(q)
//	_ = s.SetL1(nil, 0.1, nil)
//	res, err := s.Run()
package ql1b
