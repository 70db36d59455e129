// Package quadratic holds the data-fidelity term Q of a cut-pursuit problem
// in one of its representations:
//
//	None          Q = 0
//	Identity(a)   AᵗA = a·I, Y holds AᵗY (length V)
//	Diagonal(D)   AᵗA = diag(D), Y holds AᵗY (length V)
//	Gram(G)       AᵗA = G (V×V symmetric), Y holds AᵗY (length V)
//	Direct(A)     A is N×V, Y has length N; the residual R = Y − Ax is kept
//
// Every Form reduces itself to the quotient problem over the regions of a
// partition (x constant on each region), evaluates the gradient at a
// piecewise-constant point, and reports the objective value. For the
// premultiplied representations the objective is ½⟨x, AᵗAx⟩ − ⟨x, AᵗY⟩, that
// is ½‖Ax − Y‖² up to the constant ½‖Y‖².
package quadratic
