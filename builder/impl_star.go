// SPDX-License-Identifier: MIT
// Package: cutpursuit/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The center is the first vertex of the block; leaves follow.
//   - Emits spokes center-leaf in increasing leaf order.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one center and n-1
// leaves.
func Star(n int) Constructor {
	return func(b *edgeList, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := b.addVertices(n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			if err := b.addEdge(methodStar, center, leaf, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
