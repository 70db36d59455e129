package ql1b

import "errors"

var (
	// ErrEmptyGraph is returned for a graph without vertices.
	ErrEmptyGraph = errors.New("ql1b: graph has no vertices")

	// ErrDimension indicates an array whose length disagrees with the graph.
	ErrDimension = errors.New("ql1b: dimension mismatch")

	// ErrNegativeWeight indicates a negative or NaN edge or l1 weight.
	ErrNegativeWeight = errors.New("ql1b: negative weight")

	// ErrBounds indicates a lower bound above the upper bound.
	ErrBounds = errors.New("ql1b: lower bound exceeds upper bound")

	// ErrNotInitialized is returned by operations that need a current
	// iterate before SolveUnivertex has run.
	ErrNotInitialized = errors.New("ql1b: solver not initialized")
)
