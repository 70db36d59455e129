// Package flow computes minimum s–t cuts on small networks induced by a
// subset of the vertices of a larger graph, as needed to certify whether a
// region of a piecewise-constant iterate should be split.
//
// A Network is a reusable, single-goroutine workspace sized for the whole
// vertex range 0..V-1. Each use selects a vertex subset with Reset, then
// receives:
//
//   - signed terminal capacities: c > 0 is an arc source→v of capacity c,
//     c < 0 an arc v→sink of capacity −c; ±Inf pins v to the source or sink
//     side of every minimum cut;
//   - undirected edges with one capacity per direction.
//
// MaxFlow returns the maximum flow value and labels every vertex with the
// side of a minimum cut it falls on; IsSink reports that label. Vertices not
// reachable from the source in the final residual network are on the sink
// side, which makes the labelling deterministic.
//
// Two augmenting strategies are available:
//
//   - Dinic (default)
//
//   - Method: breadth-first level graph + depth-first blocking flows.
//
//   - Time:   O(V² E) worst case, far lower on the shallow networks produced by graph cuts.
//
//   - EdmondsKarp
//
//   - Method: breadth-first shortest augmenting paths.
//
//   - Time:   O(V E²).
//
// Both operate on float64 capacities. Each augmentation saturates its
// bottleneck arc exactly, so termination does not depend on Epsilon; Epsilon
// only widens what counts as saturated.
//
// Independent Networks may run concurrently; a single Network may not.
//
// # Errors
//
//	ErrVertexOutOfRange   - a vertex id outside 0..V-1 was given to Reset.
//	ErrDuplicateVertex    - Reset received the same vertex twice.
//	ErrVertexNotInNetwork - a capacity refers to a vertex outside the current subset.
//	EdgeError             - an edge capacity is negative or NaN.
package flow
