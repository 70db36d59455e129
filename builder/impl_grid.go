// SPDX-License-Identifier: MIT
// Package: cutpursuit/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Vertex r·cols + c (row-major) stands for cell (r, c).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) in row-major order, emits Right (r,c+1) then Bottom
//     (r+1,c) where they exist.
//
// Complexity:
//   • Time: O(rows·cols).
//   • Space: O(1) extra.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(b *edgeList, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		first := b.addVertices(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := first + r*cols + c
				if c+1 < cols {
					if err := b.addEdge(methodGrid, u, u+1, cfg); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := b.addEdge(methodGrid, u, u+cols, cfg); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
