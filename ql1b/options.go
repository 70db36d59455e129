package ql1b

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/cutpursuit/flow"
)

// Defaults of the cut-pursuit loop.
const (
	DefaultDifTol   = 1e-4
	DefaultItMax    = 10
	DefaultMergeTol = 1e-6
)

// pfdrDifTolScale relates the reduced-problem tolerance to the outer one.
const pfdrDifTolScale = 1e-3

const (
	panicDifTolInvalid   = "ql1b: WithDifTol: tolerance must be finite, non-negative"
	panicItMaxInvalid    = "ql1b: WithItMax: cap must be positive"
	panicMergeTolInvalid = "ql1b: WithMergeTol: tolerance must be finite, non-negative"
	panicLoggerNil       = "ql1b: WithLogger: nil logger"
)

// Option configures a Solver. Constructors panic on nonsensical values.
type Option func(*options)

type options struct {
	difTol     float64
	itMax      int
	mergeTol   float64
	merge      bool
	monitor    bool
	maxWorkers int
	logger     *zap.Logger
	flowOpts   []flow.Option
}

func defaultOptions() options {
	return options{
		difTol:   DefaultDifTol,
		itMax:    DefaultItMax,
		mergeTol: DefaultMergeTol,
		merge:    true,
		logger:   zap.NewNop(),
	}
}

// WithDifTol sets the relative evolution below which Run stops. It is also
// the relative change above which a saturated region is released, and it
// sets the reduced-problem tolerance to 1e-3 times its value.
func WithDifTol(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicDifTolInvalid)
	}
	return func(o *options) { o.difTol = tol }
}

// WithItMax caps the number of cut-pursuit iterations of Run.
func WithItMax(n int) Option {
	if n < 1 {
		panic(panicItMaxInvalid)
	}
	return func(o *options) { o.itMax = n }
}

// WithMergeTol sets the relative difference under which adjacent regions
// are merged after each reduced solve.
func WithMergeTol(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicMergeTolInvalid)
	}
	return func(o *options) { o.mergeTol = tol }
}

// WithoutMerge disables merging of adjacent regions.
func WithoutMerge() Option {
	return func(o *options) { o.merge = false }
}

// WithObjectiveMonitoring makes Run evaluate the objective every iteration.
func WithObjectiveMonitoring() Option {
	return func(o *options) { o.monitor = true }
}

// WithMaxWorkers caps parallelism; n ≤ 0 means GOMAXPROCS.
func WithMaxWorkers(n int) Option {
	return func(o *options) { o.maxWorkers = n }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *options) { o.logger = l }
}

// WithFlowOptions forwards options to every min-cut network.
func WithFlowOptions(opts ...flow.Option) Option {
	return func(o *options) { o.flowOpts = append(o.flowOpts, opts...) }
}
