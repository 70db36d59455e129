// SPDX-License-Identifier: MIT
// Package: cutpursuit/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings would need a loop or a
//     repeated edge.
//   - Emits edges i-(i+1) for i=0..n-2, then the closing edge 0-(n-1).
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *edgeList, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		first := b.addVertices(n)
		for i := 0; i+1 < n; i++ {
			if err := b.addEdge(methodCycle, first+i, first+i+1, cfg); err != nil {
				return err
			}
		}

		return b.addEdge(methodCycle, first, first+n-1, cfg)
	}
}
