// SPDX-License-Identifier: MIT
//
// File: summary.go
// Role: Summarize (TL, TB) and the lower Bound of a topology.

package schedule

import (
	"context"
	"fmt"

	"github.com/katalvlaran/topocast/bfs"
	"github.com/katalvlaran/topocast/core"
)

// Summarize returns TL, the number of steps, and TB, the sum over steps of
// the largest LoadU at that step. An empty schedule yields (−1, −1).
// Complexity: O(|entries|).
func Summarize(s Schedule) (tl int, tb float64) {
	if len(s) == 0 {
		return -1, -1
	}
	for _, step := range s {
		stepMax := 0.0
		for _, e := range step {
			if e.LoadU > stepMax {
				stepMax = e.LoadU
			}
		}
		tb += stepMax
	}

	return len(s), tb
}

// LowerBound is the ideal (TL, TB) of a topology: TL ≥ Diameter and
// TB ≥ (N−1)/d.
type LowerBound struct {
	N        int
	Degree   int
	Diameter int
	IdealTB  float64
}

// Bound computes the schedule lower bound of g.
//
// Errors:
//   - ErrNotRegular if in-degrees differ (or g is empty).
//   - ErrNotStronglyConnected if some vertex cannot reach another.
//
// Complexity: O(V·(V+E)).
func Bound(g *core.Graph) (LowerBound, error) {
	d, ok := g.RegularInDegree()
	if !ok {
		return LowerBound{}, fmt.Errorf("Bound: %w", ErrNotRegular)
	}
	if !bfs.StronglyConnected(g) {
		return LowerBound{}, fmt.Errorf("Bound: %w", ErrNotStronglyConnected)
	}
	dist, err := bfs.AllPairs(context.Background(), g)
	if err != nil {
		return LowerBound{}, fmt.Errorf("Bound: %w", err)
	}

	n := g.VertexCount()
	lb := LowerBound{N: n, Degree: d, Diameter: dist.Diameter()}
	if d > 0 {
		lb.IdealTB = float64(n-1) / float64(d)
	}

	return lb, nil
}
