// SPDX-License-Identifier: MIT
// Package: cutpursuit/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d).
//
// Canonical model:
//   - Stub matching: each vertex contributes d stubs, the stubs are shuffled
//     and paired consecutively. Pairings with a loop or a repeated pair are
//     rejected and reshuffled, up to maxStubMatchingAttempts times.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   - cfg.rng is required (else ErrNeedRandSource).
//   - Exhausted attempts yield ErrConstructFailed; retry with another seed.
//
// Complexity:
//   - Time: O(n·d) per attempt.
//   - Space: O(n·d) for the stubs and the pair set.

package builder

import "fmt"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 1000
)

// RandomRegular returns a Constructor that builds a simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(b *edgeList, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		first := b.addVertices(n)
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := b.addEdge(methodRandomRegular, first+stubs[i], first+stubs[i+1], cfg); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph:
// no loop and no pair repeated.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
