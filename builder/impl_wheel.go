// SPDX-License-Identifier: MIT
// Package: cutpursuit/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): a rim cycle of n-1 ≥ 3 vertices plus
//     a hub.
//   - The hub is the first vertex of the block; the rim follows.
//   - Emits the rim first (Cycle order), then spokes in increasing rim order.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(b *edgeList, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		hub := b.addVertices(1)
		if err := Cycle(n-1)(b, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		for rim := hub + 1; rim < hub+n; rim++ {
			if err := b.addEdge(methodWheel, hub, rim, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
