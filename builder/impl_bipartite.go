// SPDX-License-Identifier: MIT
// Package: cutpursuit/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - The left side takes the first n1 ids of the block, the right side the
//     next n2.
//   - Emits left_i-right_j for i asc, then j asc.
//
// Complexity:
//   - Time: O(n1·n2).
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *edgeList, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: partition sizes %d and %d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := b.addVertices(n1 + n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := b.addEdge(methodCompleteBipartite, left+i, right+j, cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
