// SPDX-License-Identifier: MIT

// Package pareto filters candidates down to a two-objective Pareto frontier
// with a third key breaking near-ties.
package pareto

import (
	"math"

	"golang.org/x/exp/slices"
)

// Key extracts one objective from a candidate. Lower is better.
type Key[T any] func(T) float64

// Frontier returns the candidates not dominated on (key1, key2).
//
// Candidates are stably sorted by (key1, key2, key3) and scanned in that
// order while tracking the smallest key2 seen so far. A candidate is kept
// when its key2 is below that minimum by more than eps. A candidate within
// eps of the minimum replaces the last kept one if it has the same key1 and
// a strictly smaller key3. key3 may be nil, in which case ties are never
// replaced.
//
// The input slice is not modified; the result is in scan order.
// Complexity: O(n log n).
func Frontier[T any](cands []T, key1, key2, key3 Key[T], eps float64) []T {
	if len(cands) == 0 {
		return nil
	}
	tie := func(T) float64 { return 0 }
	if key3 != nil {
		tie = key3
	}

	sorted := slices.Clone(cands)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if c := compare(key1(a), key1(b)); c != 0 {
			return c
		}
		if c := compare(key2(a), key2(b)); c != 0 {
			return c
		}
		return compare(tie(a), tie(b))
	})

	out := []T{sorted[0]}
	best := key2(sorted[0])
	for _, c := range sorted[1:] {
		k2 := key2(c)
		switch {
		case k2 < best-eps:
			out = append(out, c)
			best = k2
		case key3 != nil && math.Abs(k2-best) <= eps && sameQuality(c, out[len(out)-1], key1, key3):
			out[len(out)-1] = c
			best = math.Min(best, k2)
		}
	}

	return out
}

// sameQuality reports whether c ties last on key1 and beats it on key3.
func sameQuality[T any](c, last T, key1, key3 Key[T]) bool {
	return key1(c) == key1(last) && key3(c) < key3(last)
}

func compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
