package parallel_test

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cutpursuit/internal/parallel"
)

// TestWorkers checks the workload heuristic bounds.
func TestWorkers(t *testing.T) {
	p := parallel.New(8)
	assert.Equal(t, 1, p.Workers(10, 100), "tiny workloads stay sequential")
	assert.Equal(t, 3, p.Workers(3*parallel.MinOpsPerWorker, 100))
	assert.Equal(t, 8, p.Workers(1<<40, 100), "capped by Max")
	assert.Equal(t, 2, p.Workers(1<<40, 2), "capped by units")
	assert.Equal(t, 1, p.Workers(1<<40, 0))
	assert.GreaterOrEqual(t, parallel.Pool{}.Max(), 1)
}

// TestFor_CoversRange verifies every index is visited exactly once.
func TestFor_CoversRange(t *testing.T) {
	p := parallel.New(4)
	const n = 1003
	hits := make([]int32, n)
	p.For(1<<30, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		require.EqualValues(t, 1, h, "index %d", i)
	}
}

// TestDynamic_WorkerIDs verifies indices are covered and worker ids in range.
func TestDynamic_WorkerIDs(t *testing.T) {
	p := parallel.New(4)
	const n, workers = 257, 4
	hits := make([]int32, n)
	var bad atomic.Int32
	p.Dynamic(workers, n, func(w, i int) {
		if w < 0 || w >= workers {
			bad.Add(1)
		}
		atomic.AddInt32(&hits[i], 1)
	})
	require.Zero(t, bad.Load())
	for i, h := range hits {
		require.EqualValues(t, 1, h, "index %d", i)
	}
}

// TestReductions compares parallel sums and maxima against sequential ones.
func TestReductions(t *testing.T) {
	p := parallel.New(6)
	const n = 5000
	f := func(i int) float64 { return float64(i%17) - 3 }
	var want float64
	for i := 0; i < n; i++ {
		want += f(i)
	}
	require.InDelta(t, want, p.Sum(1<<30, n, f), 1e-9)
	require.Equal(t, 13.0, p.Reduce(1<<30, n, math.Inf(-1), math.Max, f))
	require.Equal(t, -3.0, p.Reduce(1<<30, n, math.Inf(1), math.Min, f))
	require.Equal(t, 0.0, p.Sum(1<<30, 0, f))
}
