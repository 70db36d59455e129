// SPDX-License-Identifier: MIT
// Package: cutpursuit/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)-i for i=1..n-1 in increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) once per edge.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(b *edgeList, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		first := b.addVertices(n)
		for i := 1; i < n; i++ {
			if err := b.addEdge(methodPath, first+i-1, first+i, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
