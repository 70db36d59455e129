// Package problem defines the on-disk description of a cut-pursuit problem
// (graph, quadratic term, l1 term, box, solver parameters) and its
// solution, encoded as JSON or MessagePack, and turns a description into a
// configured ql1b.Solver.
package problem

// File is a problem description. Exactly one of Edges, Grid and Generator
// describes the graph.
type File struct {
	Edges     *EdgeGraph `json:"edges,omitempty"`
	Grid      *Grid      `json:"grid,omitempty"`
	Generator *Generator `json:"generator,omitempty"`

	Quadratic *Quadratic `json:"quadratic,omitempty"`
	L1        *L1        `json:"l1,omitempty"`
	Bounds    *Bounds    `json:"bounds,omitempty"`
	Params    *Params    `json:"params,omitempty"`
}

// EdgeGraph is an explicit undirected edge list over vertices 0..V-1.
type EdgeGraph struct {
	V     int      `json:"v"`
	Pairs [][2]int `json:"pairs"`
	// Weights are aligned with Pairs; nil means every edge weighs Homo.
	Weights []float64 `json:"weights,omitempty"`
	// Homo is the homogeneous weight; nil means 1.
	Homo *float64 `json:"homo,omitempty"`
}

// Grid is a 2D image; cell (x, y) is vertex y*width + x. When the
// quadratic term carries no observations, the cell values are used.
type Grid struct {
	Values [][]float64 `json:"values"`
	// Conn is 4 (default) or 8.
	Conn int `json:"conn,omitempty"`
}

// Generator names a synthetic topology built with the builder package.
type Generator struct {
	// Kind is one of path, cycle, star, wheel, complete, grid,
	// random_sparse, random_regular.
	Kind string  `json:"kind"`
	N    int     `json:"n,omitempty"`
	Rows int     `json:"rows,omitempty"`
	Cols int     `json:"cols,omitempty"`
	P    float64 `json:"p,omitempty"`
	D    int     `json:"d,omitempty"`
	Seed int64   `json:"seed,omitempty"`
	// Weight is the edge weight distribution; nil means constant 1.
	Weight *WeightDist `json:"weight,omitempty"`
}

// WeightDist selects a builder weight function. A and B are, per Dist:
// constant (value), uniform (min, max), normal (mean, stddev),
// exponential (rate).
type WeightDist struct {
	Dist string  `json:"dist"`
	A    float64 `json:"a"`
	B    float64 `json:"b,omitempty"`
}

// Quadratic describes ½‖Ax − y‖² or an equivalent form.
type Quadratic struct {
	// Kind is one of none, identity, diagonal, gram, direct.
	Kind string `json:"kind"`
	// Scale is the identity factor a (AᵗA = a·I); nil means 1.
	Scale *float64 `json:"scale,omitempty"`
	// Diag holds AᵗA for the diagonal kind.
	Diag []float64 `json:"diag,omitempty"`
	// Rows is the number of observations of the direct kind.
	Rows int `json:"rows,omitempty"`
	// Matrix holds AᵗA (V×V, gram) or A (Rows×V, direct) in row-major order.
	Matrix []float64 `json:"matrix,omitempty"`
	// Y holds Aᵗy (identity, diagonal, gram) or y (direct).
	Y []float64 `json:"y,omitempty"`
}

// L1 describes Σ λ_v |x_v − t_v|.
type L1 struct {
	Weights []float64 `json:"weights,omitempty"`
	Homo    float64   `json:"homo,omitempty"`
	Targets []float64 `json:"targets,omitempty"`
}

// Bounds describes the box; nil homogeneous bounds mean unbounded.
type Bounds struct {
	Low     []float64 `json:"low,omitempty"`
	Upp     []float64 `json:"upp,omitempty"`
	HomoLow *float64  `json:"homo_low,omitempty"`
	HomoUpp *float64  `json:"homo_upp,omitempty"`
}

// Params tunes the solver; zero values keep the library defaults.
type Params struct {
	DifTol     *float64 `json:"dif_tol,omitempty"`
	ItMax      int      `json:"it_max,omitempty"`
	MergeTol   *float64 `json:"merge_tol,omitempty"`
	NoMerge    bool     `json:"no_merge,omitempty"`
	Monitor    bool     `json:"monitor,omitempty"`
	MaxWorkers int      `json:"max_workers,omitempty"`
	// Flow is dinic (default) or edmonds-karp.
	Flow string      `json:"flow,omitempty"`
	PFDR *PFDRParams `json:"pfdr,omitempty"`
}

// PFDRParams tunes the reduced-problem solver; zero values keep defaults.
type PFDRParams struct {
	Rho     float64 `json:"rho,omitempty"`
	CondMin float64 `json:"cond_min,omitempty"`
	DifRcd  float64 `json:"dif_rcd,omitempty"`
	DifTol  float64 `json:"dif_tol,omitempty"`
	ItMax   int     `json:"it_max,omitempty"`
}

// Solution is the outcome of a solve.
type Solution struct {
	X          []float64 `json:"x"`
	CompAssign []int     `json:"comp_assign"`
	Values     []float64 `json:"values"`
	Iterations int       `json:"iterations"`
	Converged  bool      `json:"converged"`
	Evolution  []float64 `json:"evolution,omitempty"`
	Objective  []float64 `json:"objective,omitempty"`
	// TimesNs are elapsed nanoseconds at the end of each iteration.
	TimesNs []int64 `json:"times_ns,omitempty"`
	// Grid is X reshaped to the input image, for grid problems.
	Grid [][]float64 `json:"grid,omitempty"`
}
