package pfdr

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Defaults for Options.
const (
	DefaultRho     = 1.0
	DefaultCondMin = 1e-3
	DefaultDifRcd  = 0.0
	DefaultDifTol  = 1e-7
	DefaultItMax   = 10000
)

// ErrInvalidParameter is returned for out-of-range tuning parameters.
var ErrInvalidParameter = errors.New("pfdr: invalid parameter")

// ErrDimension is returned when problem arrays disagree in size.
var ErrDimension = errors.New("pfdr: dimension mismatch")

// Options tunes the splitting algorithm.
type Options struct {
	// Rho is the relaxation parameter, in (0, 2).
	Rho float64
	// CondMin floors the step-size conditioning relative to the largest
	// coordinate, in (0, 1].
	CondMin float64
	// DifRcd triggers reconditioning when the relative evolution drops
	// below it; 0 disables reconditioning.
	DifRcd float64
	// DifTol stops iterations when the relative evolution drops below it.
	DifTol float64
	// ItMax caps the number of iterations.
	ItMax int
	// MaxWorkers caps parallelism; 0 means GOMAXPROCS.
	MaxWorkers int
	// Logger receives a debug summary per solve; nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Rho:     DefaultRho,
		CondMin: DefaultCondMin,
		DifRcd:  DefaultDifRcd,
		DifTol:  DefaultDifTol,
		ItMax:   DefaultItMax,
	}
}

// Validate checks parameter domains.
func (o Options) Validate() error {
	switch {
	case !(o.Rho > 0 && o.Rho < 2):
		return fmt.Errorf("Validate: rho=%g: %w", o.Rho, ErrInvalidParameter)
	case !(o.CondMin > 0 && o.CondMin <= 1):
		return fmt.Errorf("Validate: cond_min=%g: %w", o.CondMin, ErrInvalidParameter)
	case o.DifRcd < 0 || math.IsNaN(o.DifRcd):
		return fmt.Errorf("Validate: dif_rcd=%g: %w", o.DifRcd, ErrInvalidParameter)
	case o.DifTol < 0 || math.IsNaN(o.DifTol):
		return fmt.Errorf("Validate: dif_tol=%g: %w", o.DifTol, ErrInvalidParameter)
	case o.ItMax < 1:
		return fmt.Errorf("Validate: it_max=%d: %w", o.ItMax, ErrInvalidParameter)
	}

	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
