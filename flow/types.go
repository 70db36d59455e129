package flow

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrVertexOutOfRange is returned when a vertex id is outside 0..V-1.
	ErrVertexOutOfRange = errors.New("flow: vertex out of range")

	// ErrDuplicateVertex is returned when Reset receives a vertex twice.
	ErrDuplicateVertex = errors.New("flow: duplicate vertex in subset")

	// ErrVertexNotInNetwork is returned when a capacity refers to a vertex
	// outside the current subset.
	ErrVertexNotInNetwork = errors.New("flow: vertex not in network")
)

// EdgeError is returned when an edge has a negative or NaN capacity.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: invalid capacity on edge %d→%d: %g", e.From, e.To, e.Cap)
}

// Algorithm selects the augmenting strategy used by MaxFlow.
type Algorithm int

const (
	// Dinic uses level graphs and blocking flows.
	Dinic Algorithm = iota
	// EdmondsKarp uses breadth-first shortest augmenting paths.
	EdmondsKarp
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Dinic:
		return "dinic"
	case EdmondsKarp:
		return "edmonds-karp"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// DefaultEpsilon is the residual capacity at or below which an arc counts
// as saturated.
const DefaultEpsilon = 0.0

const (
	panicEpsilonInvalid   = "flow: WithEpsilon: eps must be finite, non-negative"
	panicAlgorithmInvalid = "flow: WithAlgorithm: unknown algorithm"
)

// Option configures a Network. Constructors panic on nonsensical values.
type Option func(*options)

type options struct {
	algo Algorithm
	eps  float64
}

func defaultOptions() options {
	return options{algo: Dinic, eps: DefaultEpsilon}
}

// WithAlgorithm selects the augmenting strategy.
func WithAlgorithm(a Algorithm) Option {
	if a != Dinic && a != EdmondsKarp {
		panic(panicAlgorithmInvalid)
	}
	return func(o *options) { o.algo = a }
}

// WithEpsilon sets the saturation threshold for residual capacities.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *options) { o.eps = eps }
}
