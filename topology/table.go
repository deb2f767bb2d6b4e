// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Table, the per-(N, d) Pareto catalogue.
// Concurrency:
//   - Not safe for concurrent mutation; the search is sequential.

package topology

import (
	"fmt"

	"github.com/katalvlaran/topocast/pareto"
)

// FrontierEpsilon is the TB tolerance of bucket pruning.
const FrontierEpsilon = 1e-4

// Table holds entries for 1 ≤ N ≤ maxN and 1 ≤ d ≤ maxD.
type Table struct {
	maxN, maxD int
	buckets    map[int]map[int][]Entry
}

// NewTable returns an empty table; both bounds must be ≥ 1.
func NewTable(maxN, maxD int) (*Table, error) {
	if maxN < 1 || maxD < 1 {
		return nil, fmt.Errorf("NewTable: maxN=%d maxD=%d: %w", maxN, maxD, ErrInvalidArgument)
	}

	return &Table{maxN: maxN, maxD: maxD, buckets: make(map[int]map[int][]Entry)}, nil
}

// Bounds returns (maxN, maxD).
func (t *Table) Bounds() (int, int) { return t.maxN, t.maxD }

// Fits reports whether an (n, d) bucket exists.
func (t *Table) Fits(n, d int) bool {
	return n >= 1 && n <= t.maxN && d >= 1 && d <= t.maxD
}

// TryInsert appends e to its bucket and reports whether it did. Entries
// outside the bounds are ignored. Pruning is left to Prune.
func (t *Table) TryInsert(e Entry) bool {
	if !t.Fits(e.N, e.D) {
		return false
	}
	row, ok := t.buckets[e.N]
	if !ok {
		row = make(map[int][]Entry)
		t.buckets[e.N] = row
	}
	row[e.D] = append(row[e.D], e)

	return true
}

// Prune reduces bucket (n, d) to its Pareto frontier over (TL, TB), lower
// NestLevel winning ties within FrontierEpsilon.
func (t *Table) Prune(n, d int) {
	b := t.buckets[n][d]
	if len(b) < 2 {
		return
	}
	t.buckets[n][d] = pareto.Frontier(b,
		func(e Entry) float64 { return float64(e.TL) },
		func(e Entry) float64 { return e.TB },
		func(e Entry) float64 { return float64(e.NestLevel) },
		FrontierEpsilon)
}

// Bucket returns a copy of bucket (n, d).
func (t *Table) Bucket(n, d int) []Entry {
	return append([]Entry(nil), t.buckets[n][d]...)
}

// Each calls fn for every non-empty bucket in ascending (N, d) order.
func (t *Table) Each(fn func(n, d int, bucket []Entry)) {
	for n := 1; n <= t.maxN; n++ {
		row := t.buckets[n]
		if row == nil {
			continue
		}
		for d := 1; d <= t.maxD; d++ {
			if b := row[d]; len(b) > 0 {
				fn(n, d, append([]Entry(nil), b...))
			}
		}
	}
}

// Entries returns every entry in ascending (N, d) order.
func (t *Table) Entries() []Entry {
	var out []Entry
	t.Each(func(_, _ int, b []Entry) { out = append(out, b...) })

	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	total := 0
	for _, row := range t.buckets {
		for _, b := range row {
			total += len(b)
		}
	}

	return total
}
