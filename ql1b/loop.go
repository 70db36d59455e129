package ql1b

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of Run.
type Result struct {
	// X holds the solution, one value per vertex.
	X []float64
	// CompAssign maps each vertex to its final region.
	CompAssign []int
	// Values holds the value of every final region.
	Values []float64
	// Iterations counts completed cut-pursuit iterations.
	Iterations int
	// Converged is false when Run stopped at the iteration cap.
	Converged bool
	// Evolution, Objective and Times are per-iteration histories; Objective
	// is filled only with WithObjectiveMonitoring. Times are elapsed since
	// the start of Run.
	Evolution []float64
	Objective []float64
	Times     []time.Duration
}

// Run executes cut-pursuit from the single-region solution.
//
// Steps, per iteration:
//  1. Split; stop when no edge activates.
//  2. Rebuild the regions over inactive edges.
//  3. SolveReducedProblem.
//  4. Merge adjacent regions with equal values.
//  5. ComputeEvolution (and ComputeObjective when monitored); stop when the
//     evolution is at most the tolerance.
func (s *Solver) Run() (*Result, error) {
	start := time.Now()
	log := s.opts.logger

	u := s.SolveUnivertex()
	log.Debug("univertex solved", zap.Float64("value", u))

	res := &Result{}
	for res.Iterations < s.opts.itMax {
		activated, err := s.Split()
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		if activated == 0 {
			res.Converged = true
			break
		}
		s.rebuild()
		if err := s.SolveReducedProblem(); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		merged := s.merge()
		dif, saturated := s.ComputeEvolution()

		res.Iterations++
		res.Evolution = append(res.Evolution, dif)
		res.Times = append(res.Times, time.Since(start))
		fields := []zap.Field{
			zap.Int("iteration", res.Iterations),
			zap.Int("components", s.part.NumComponents()),
			zap.Int("activated", activated),
			zap.Int("merged", merged),
			zap.Int("saturated", saturated),
			zap.Float64("evolution", dif),
			zap.Int("pfdr_iterations", s.pfdrIt),
		}
		if s.opts.monitor {
			obj := s.ComputeObjective()
			res.Objective = append(res.Objective, obj)
			fields = append(fields, zap.Float64("objective", obj))
		}
		log.Debug("cut-pursuit iteration", fields...)

		if dif <= s.opts.difTol {
			res.Converged = true
			break
		}
	}

	res.X = s.Solution()
	res.CompAssign = append([]int(nil), s.part.CompAssign...)
	res.Values = append([]float64(nil), s.rX...)
	log.Info("cut-pursuit finished",
		zap.Int("iterations", res.Iterations),
		zap.Int("components", len(res.Values)),
		zap.Bool("converged", res.Converged),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}
