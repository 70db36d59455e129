// Package cutpursuit minimizes graph total-variation problems with a
// quadratic fidelity, a weighted l1 term and box constraints:
//
//	F(x) = ½‖y − A x‖² + Σ_{(u,v)∈E} w_uv |x_u − x_v|
//	       + Σ_v λ_v |x_v − t_v| + ι_{[l_v, u_v]}(x_v)
//
// by cut-pursuit: the vertices are grouped into regions sharing a value, the
// problem restricted to the regions is solved, and regions are split along
// minimal cuts of the graph until no split improves the objective.
//
// 🚀 What is inside?
//
//	• ql1b/       the solver: univertex start, reduced solves, splits,
//	              evolution, objective and the outer loop (Run)
//	• quadratic/  representations of AᵗA: identity, diagonal, Gram, direct
//	• pfdr/       proximal splitting for the reduced problems
//	• flow/       reusable min-cut workspaces (Dinic, Edmonds–Karp)
//	• graph/      forward-star graphs and region partitions
//	• builder/    deterministic graph generators with weight distributions
//	• gridgraph/  images as 4/8-connected graphs
//	• cmd/cpql1b  command-line solver over JSON / MessagePack files
//
// Quick ASCII example:
//
//	    0───1───2───3        y = [0, 0, 10, 10], unit weights
//
//	is solved by two regions {0,1} and {2,3} with values 0.5 and 9.5.
//
//	go get github.com/katalvlaran/cutpursuit
package cutpursuit
