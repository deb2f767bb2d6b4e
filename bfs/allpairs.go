// SPDX-License-Identifier: MIT
//
// File: allpairs.go
// Role: All-pairs hop distances and the quantities derived from them.
// Determinism:
//   - Distances is a plain map; callers iterate g.Vertices() for order.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/topocast/core"
)

// Distances holds shortest-path hop counts: d[v][u] is the length of the
// shortest directed path v→u. Unreachable pairs are absent.
type Distances map[string]map[string]int

// Get returns dist(v,u) and whether u is reachable from v.
func (d Distances) Get(v, u string) (int, bool) {
	row, ok := d[v]
	if !ok {
		return 0, false
	}
	h, ok := row[u]

	return h, ok
}

// Is reports whether dist(v,u) == hops.
func (d Distances) Is(v, u string, hops int) bool {
	h, ok := d.Get(v, u)

	return ok && h == hops
}

// Diameter returns the largest finite distance over all ordered pairs,
// 0 for an empty or edgeless graph.
func (d Distances) Diameter() int {
	diam := 0
	for _, row := range d {
		for _, h := range row {
			if h > diam {
				diam = h
			}
		}
	}

	return diam
}

// AllPairs runs one BFS per vertex and collects hop distances.
// Complexity: O(V·(V+E)) time, O(V²) space.
func AllPairs(ctx context.Context, g *core.Graph) (Distances, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	d := make(Distances, len(vertices))
	for _, v := range vertices {
		row, err := From(ctx, g, v)
		if err != nil {
			return nil, fmt.Errorf("bfs: AllPairs: %w", err)
		}
		d[v] = row
	}

	return d, nil
}
