// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: the two-pass population of the Table.
//
// Pass 1 (ascending N, then d): uni/bi-rings, then Cartesian products of
// the current bucket with every populated bucket (N2 ≤ N, d2 ≤ d).
// Pass 2 (ascending N, then d): circulant, complete, complete-bipartite
// and Kautz families, then line-graph, degree and power expansions of every
// entry. Each expansion lands in a bucket with a larger N, so a bucket is
// final once it has been visited.

package topology

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/topocast/bfs"
	"github.com/katalvlaran/topocast/builder"
)

// Search runs both passes. Cancellation is checked once per bucket; on
// cancellation the table keeps what was inserted so far.
func (f *Finder) Search(ctx context.Context) error {
	begin := time.Now()
	if err := f.passProducts(ctx); err != nil {
		return fmt.Errorf("Search: pass 1: %w", err)
	}
	f.metrics.RecordPass("1", time.Since(begin))
	f.metrics.SetCatalogueEntries(f.table.Len())
	f.log.Info("search pass done", "pass", 1, "entries", f.table.Len(), "elapsed", time.Since(begin).String())

	begin = time.Now()
	if err := f.passExpansions(ctx); err != nil {
		return fmt.Errorf("Search: pass 2: %w", err)
	}
	f.metrics.RecordPass("2", time.Since(begin))
	f.metrics.SetCatalogueEntries(f.table.Len())
	f.log.Info("search pass done", "pass", 2, "entries", f.table.Len(), "elapsed", time.Since(begin).String())

	return nil
}

func (f *Finder) passProducts(ctx context.Context) error {
	maxN, maxD := f.table.Bounds()
	for n := 2; n <= maxN; n++ {
		for d := 1; d <= maxD; d++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, e := range basicSet1(n, d) {
				f.offer(opBasic, e)
			}
			f.table.Prune(n, d)

			current := f.table.Bucket(n, d)
			if len(current) == 0 {
				continue
			}
			for n2 := 2; n2 <= n && n*n2 <= maxN; n2++ {
				for d2 := 1; d2 <= d && d+d2 <= maxD; d2++ {
					for _, a := range current {
						if !a.BWOptimal {
							continue
						}
						for _, b := range f.table.Bucket(n2, d2) {
							if !b.BWOptimal {
								continue
							}
							p, err := CartesianProductBound(a, b)
							if err != nil {
								return err
							}
							f.offer(opProduct, p)
						}
					}
				}
			}
			f.log.V(1).Info("bucket done", "pass", 1, "N", n, "d", d, "entries", len(current))
		}
	}

	return nil
}

func (f *Finder) passExpansions(ctx context.Context) error {
	maxN, maxD := f.table.Bounds()
	for n := 2; n <= maxN; n++ {
		for d := 1; d <= maxD; d++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			set, err := basicSet2(ctx, n, d)
			if err != nil {
				return err
			}
			for _, e := range set {
				f.offer(opBasic, e)
			}
			f.table.Prune(n, d)

			bucket := f.table.Bucket(n, d)
			for _, e := range bucket {
				f.expand(e)
			}
			if len(bucket) > 0 {
				f.log.V(1).Info("bucket done", "pass", 2, "N", n, "d", d, "entries", len(bucket))
			}
		}
	}

	return nil
}

// expand offers the line graph of e once, then degree and power expansions
// with growing factors until the first one falls outside the table.
func (f *Finder) expand(e Entry) {
	if e.D > 1 {
		if lg, err := LineGraphBound(e); err == nil {
			f.offer(opLine, lg)
		}
	}
	for i := 2; ; i++ {
		de, err := DegreeBound(e, i)
		if err != nil || !f.offer(opDegree, de) {
			break
		}
	}
	if e.N < 2 {
		return
	}
	for i := 2; ; i++ {
		pe, err := CartesianPowerBound(e, i)
		if err != nil || !f.offer(opPower, pe) {
			break
		}
	}
}

// basicSet1 holds the ring families.
func basicSet1(n, d int) []Entry {
	var out []Entry
	if d == 1 {
		out = append(out, basic(n, d, fmt.Sprintf("UniRing(%d)", n), n-1))
	}
	if d == 2 && n >= 3 {
		out = append(out, basic(n, d, fmt.Sprintf("BiRing(%d)", n), n/2))
	}

	return out
}

// basicSet2 holds the circulant, complete, complete-bipartite and
// generalized Kautz families. The circulant's TL is its measured diameter.
func basicSet2(ctx context.Context, n, d int) ([]Entry, error) {
	var out []Entry
	if d == 4 && n >= 5 {
		a := int(math.Floor(math.Sqrt(float64(n-2) / 2)))
		g, err := builder.Build(builder.Circulant(n, []int{a, a + 1}, false))
		if err != nil {
			return nil, fmt.Errorf("circulant(%d, [%d, %d]): %w", n, a, a+1, err)
		}
		dist, err := bfs.AllPairs(ctx, g)
		if err != nil {
			return nil, err
		}
		out = append(out, basic(n, d, fmt.Sprintf("C(%d, [%d, %d])", n, a, a+1), dist.Diameter()))
	}
	if d == n-1 {
		out = append(out, basic(n, d, fmt.Sprintf("K(%d)", n), 1))
	}
	if n%2 == 0 && d == n/2 {
		out = append(out, basic(n, d, fmt.Sprintf("K(%d, %d)", d, d), 2))
	}
	if n == d+1 {
		out = append(out, basic(n, d, fmt.Sprintf("Pi(%d,%d)", d, n), 1))
	}

	return out, nil
}
