package flow

import "math"

// dinic computes the maximum flow from s to t on the residual arrays using
// Dinic's algorithm (level graph + blocking flows).
//
// Steps:
//  1. BFS from s over unsaturated arcs to assign levels; stop if t unreachable.
//  2. Repeated DFS pushes along arcs that climb exactly one level, with a
//     per-node arc cursor so that each arc is scanned once per phase.
//  3. Accumulate pushed amounts; return +Inf at once if an unbounded path exists.
//
// Complexity:
//
//	Time:   O(V² E) worst case.
//	Memory: O(V) for levels and cursors, reused across calls.
func (n *Network) dinic(s, t int) float64 {
	var total float64
	for n.buildLevels(s, t) {
		copy(n.iter, n.adjFirst[:len(n.iter)])
		for {
			pushed := n.dfsPush(s, t, math.Inf(1))
			if pushed <= 0 {
				break
			}
			if math.IsInf(pushed, 1) {
				return pushed
			}
			total += pushed
		}
	}

	return total
}

// buildLevels assigns BFS distances from s and reports whether t is reachable.
func (n *Network) buildLevels(s, t int) bool {
	for i := range n.level {
		n.level[i] = -1
	}
	n.level[s] = 0
	n.queue = append(n.queue[:0], s)
	for head := 0; head < len(n.queue); head++ {
		u := n.queue[head]
		for k := n.adjFirst[u]; k < n.adjFirst[u+1]; k++ {
			a := n.adjArcs[k]
			if v := n.to[a]; n.level[v] < 0 && n.res[a] > n.opts.eps {
				n.level[v] = n.level[u] + 1
				n.queue = append(n.queue, v)
			}
		}
	}

	return n.level[t] >= 0
}

// dfsPush pushes at most available units from u toward t along the level
// graph, updating residual capacities in place, and returns the amount sent.
func (n *Network) dfsPush(u, t int, available float64) float64 {
	if u == t {
		return available
	}
	for ; n.iter[u] < n.adjFirst[u+1]; n.iter[u]++ {
		a := n.adjArcs[n.iter[u]]
		v := n.to[a]
		if n.res[a] <= n.opts.eps || n.level[v] != n.level[u]+1 {
			continue
		}
		pushed := n.dfsPush(v, t, math.Min(available, n.res[a]))
		if pushed > 0 {
			if !math.IsInf(pushed, 1) {
				n.res[a] -= pushed
				n.res[a^1] += pushed
			}
			return pushed
		}
	}

	return 0
}
