// Package selection computes medians and weighted medians of values indexed
// through a segment of vertex ids, leaving the segment ordered so that the
// same median can later be recovered by a cheap scan.
//
// Order is the total order on (value, vertex id), which makes every result
// independent of the initial order of the segment, ties included.
package selection

import (
	"cmp"
	"slices"
)

// Order sorts idx ascending by (values[v], v).
func Order(idx []int, values []float64) {
	slices.SortFunc(idx, func(a, b int) int {
		if c := cmp.Compare(values[a], values[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
}

// WeightedMedian orders idx and returns the position in idx of the weighted
// median of values: the first vertex, in (value, id) order, at which the
// cumulative weight reaches half of the total weight of the segment.
// Weights must be non-negative. Returns -1 for an empty segment.
//
// Complexity: O(n log n).
func WeightedMedian(idx []int, values, weights []float64) int {
	Order(idx, values)

	return ScanWeighted(idx, weights)
}

// ScanWeighted returns the weighted-median position of a segment already
// ordered by Order, without reordering it. Complexity: O(n).
func ScanWeighted(idx []int, weights []float64) int {
	if len(idx) == 0 {
		return -1
	}
	var total float64
	for _, v := range idx {
		total += weights[v]
	}
	half := total / 2
	var cum float64
	for i, v := range idx {
		cum += weights[v]
		if cum >= half {
			return i
		}
	}

	return len(idx) - 1
}

// Median orders idx and returns the position of the (upper) median, that is
// the weighted median for identical weights. Returns -1 for an empty segment.
func Median(idx []int, values []float64) int {
	Order(idx, values)

	return Middle(len(idx))
}

// Middle returns the median position n/2 of an ordered segment of length n,
// or -1 when n is zero.
func Middle(n int) int {
	if n == 0 {
		return -1
	}
	return n / 2
}
