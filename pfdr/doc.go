// Package pfdr solves the reduced problems of cut-pursuit with a
// preconditioned forward-Douglas–Rachford splitting (generalized
// forward-backward):
//
//	minimize   f(x) + Σ_(u,v) w_uv |x_u − x_v| + Σ_v λ_v |x_v − t_v| + ι[l_v, u_v](x_v)
//
// where f is a convex quadratic given in one of three shapes (Gram, Diag,
// Direct). The smooth part f is handled by explicit gradient steps with a
// diagonal step-size matrix Γ bounded by a per-coordinate Lipschitz estimate;
// every edge term and the separable l1 + box term is handled by its own
// closed-form proximal operator in the metric W_i Γ⁻¹, where the splitting
// weights W_i sum to one on every coordinate.
//
// One iteration:
//
//	g  = ∇f(x)
//	z_i ← z_i + ρ (prox_i(2x − z_i − Γ g) − x)     for every term i
//	x  ← Σ_i W_i z_i
//
// Iterations stop when ‖Δx‖ / ‖x‖ ≤ DifTol or after ItMax iterations. When
// DifRcd > 0 and the relative evolution falls below it, the splitting
// weights are recomputed from the local curvature of the nonsmooth terms at
// the current iterate (reconditioning) and DifRcd is divided by ten.
package pfdr
