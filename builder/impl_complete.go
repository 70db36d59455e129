// SPDX-License-Identifier: MIT
// Package: cutpursuit/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated vertex.
//   - Emits every unordered pair (i, j), i < j, in lexicographic order.
//
// Complexity:
//   - Time: O(n²).
//   - Space: O(n) for the id block.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(b *edgeList, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		return b.addCompleteEdges(methodComplete, span(b.addVertices(n), n), cfg)
	}
}
