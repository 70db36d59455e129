package flow

import "math"

// edmondsKarp computes the maximum flow from s to t with breadth-first
// shortest augmenting paths.
//
// Steps:
//  1. BFS from s over unsaturated arcs, remembering the arc used to reach
//     every node; stop when t is unreachable.
//  2. Walk back from t to find the bottleneck, then augment along the path.
//
// Complexity:
//
//	Time:   O(V E²).
//	Memory: O(V) for parents and the queue.
func (n *Network) edmondsKarp(s, t int) float64 {
	var total float64
	for {
		for i := range n.parent {
			n.parent[i] = -1
		}
		n.parent[s] = len(n.to) // any non-negative marker
		n.queue = append(n.queue[:0], s)
		for head := 0; head < len(n.queue) && n.parent[t] < 0; head++ {
			u := n.queue[head]
			for k := n.adjFirst[u]; k < n.adjFirst[u+1]; k++ {
				a := n.adjArcs[k]
				if v := n.to[a]; n.parent[v] < 0 && n.res[a] > n.opts.eps {
					n.parent[v] = a
					n.queue = append(n.queue, v)
				}
			}
		}
		if n.parent[t] < 0 {
			return total
		}

		bottleneck := math.Inf(1)
		for v := t; v != s; v = n.from[n.parent[v]] {
			bottleneck = math.Min(bottleneck, n.res[n.parent[v]])
		}
		if math.IsInf(bottleneck, 1) {
			return bottleneck
		}
		for v := t; v != s; v = n.from[n.parent[v]] {
			a := n.parent[v]
			n.res[a] -= bottleneck
			n.res[a^1] += bottleneck
		}
		total += bottleneck
	}
}
