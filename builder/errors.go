// SPDX-License-Identifier: MIT
// Package: cutpursuit/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX).
//   • Implementations attach context with `%w`, prefixed by the method name.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is outside the allowed domain of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeight indicates that the weight function produced a negative
// or NaN edge weight.
var ErrInvalidWeight = errors.New("builder: invalid edge weight")

// ErrConstructFailed indicates that a constructor exhausted its attempts
// (RandomRegular) or that BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
