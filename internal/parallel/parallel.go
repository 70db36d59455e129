// Package parallel runs data-parallel loops over independent indices with a
// worker count chosen from the estimated workload, so that tiny loops stay
// sequential and large ones spread over the available processors.
package parallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// MinOpsPerWorker is the estimated number of elementary operations below
// which an additional worker is not worth its scheduling cost.
const MinOpsPerWorker = 10000

// Pool carries the worker cap. The zero value uses GOMAXPROCS.
type Pool struct {
	max int
}

// New returns a Pool capped at max workers; max ≤ 0 means GOMAXPROCS.
func New(max int) Pool {
	return Pool{max: max}
}

// Max returns the effective worker cap.
func (p Pool) Max() int {
	if p.max <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return p.max
}

// Workers returns how many workers to use for numOps operations spread over
// units independent items: min(Max, numOps/MinOpsPerWorker, units), at least 1.
func (p Pool) Workers(numOps, units int) int {
	w := numOps / MinOpsPerWorker
	if m := p.Max(); w > m {
		w = m
	}
	if w > units {
		w = units
	}
	if w < 1 {
		w = 1
	}

	return w
}

// For calls fn on contiguous chunks [lo, hi) covering [0, n) (static
// schedule). fn invocations run concurrently and must touch disjoint data.
func (p Pool) For(numOps, n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	w := p.Workers(numOps, n)
	if w == 1 {
		fn(0, n)
		return
	}

	var g errgroup.Group
	chunk := (n + w - 1) / w
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

// Each calls fn(i) for every i in [0, n) with the static schedule of For.
func (p Pool) Each(numOps, n int, fn func(i int)) {
	p.For(numOps, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}

// Dynamic hands out indices of [0, n) one at a time to exactly workers
// goroutines; fn receives the worker id in [0, workers) so callers can keep
// per-worker scratch state. Use it when item costs are uneven.
func (p Pool) Dynamic(workers, n int, fn func(worker, i int)) {
	if n <= 0 {
		return
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(0, i)
		}
		return
	}

	var next atomic.Int64
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return nil
				}
				fn(w, i)
			}
		})
	}
	_ = g.Wait()
}

// Reduce folds fn(i) over [0, n) with combine, starting every chunk from
// identity. combine must be associative and commutative; floating-point
// results may differ in the last bits between worker counts.
func (p Pool) Reduce(numOps, n int, identity float64, combine func(a, b float64) float64, fn func(i int) float64) float64 {
	if n <= 0 {
		return identity
	}
	w := p.Workers(numOps, n)
	partial := make([]float64, w)
	chunk := (n + w - 1) / w
	p.Each(numOps, w, func(k int) {
		acc := identity
		for i := k * chunk; i < min((k+1)*chunk, n); i++ {
			acc = combine(acc, fn(i))
		}
		partial[k] = acc
	})
	total := identity
	for _, s := range partial {
		total = combine(total, s)
	}

	return total
}

// Sum returns the sum of fn(i) over [0, n).
func (p Pool) Sum(numOps, n int, fn func(i int) float64) float64 {
	return p.Reduce(numOps, n, 0, func(a, b float64) float64 { return a + b }, fn)
}
