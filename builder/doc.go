// Package builder provides deterministic, functional-options style
// generators for the weighted undirected graphs consumed by the cut-pursuit
// solvers. Every generator produces a *graph.Graph together with one
// non-negative weight per edge, aligned with the graph's edge ids.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        resolves options and runs constructors in order.
//     – Constructor:       a closure that appends vertices and edges.
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – RandomSparse (Erdős–Rényi), RandomRegular (stub matching).
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed, WithRand, WithWeightFn and the WithXWeight shorthands.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped at zero.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//
// Composition:
//
//	Constructors passed to the same BuildGraph call produce a disjoint union:
//	each constructor numbers its vertices after those of the previous ones.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability, ...)
//     wrapped with the constructor name; branch with errors.Is.
//   - Same options, seed and constructor order ⇒ identical graph and weights.
package builder
