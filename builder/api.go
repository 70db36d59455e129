// SPDX-License-Identifier: MIT
// Package: cutpursuit/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order, then freezes the accumulated edge list into a *graph.Graph.
//   - Topology factories are implemented in impl_*.go.
//   - Determinism: same options/seed and constructor order ⇒ identical output.
//   - Safety: constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cutpursuit/graph"
)

// Constructor appends a topology to the edge list under construction using
// the resolved builderConfig. Constructors MUST:
//   - Validate parameters before emitting anything.
//   - Number their vertices after the ones already present.
//   - Preserve determinism for the same config and call order.
type Constructor func(b *edgeList, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting graph together with its
// edge weights, indexed by edge id.
//
// Complexity:
//   - Applying K constructors: Σ cost of each constructor.
//   - Freezing: O(V + E log E) for the forward-star layout.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, []float64, error) {
	cfg := newBuilderConfig(bopts...)
	b := &edgeList{}

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, perm, err := graph.FromEdges(b.numVertices, b.edges)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildGraph: %w", err)
	}
	weights := make([]float64, len(b.weights))
	for i, w := range b.weights {
		weights[perm[i]] = w
	}

	return g, weights, nil
}
