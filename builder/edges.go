// SPDX-License-Identifier: MIT
// Package: topocast/builder
//
// edges.go - shared edge/vertex emission with set semantics.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/topocast/core"
)

// addVertices registers idFn(0..n-1) in ascending order and returns the IDs.
func addVertices(g *core.Graph, method string, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge inserts from→to, treating an existing edge as success.
func addEdge(g *core.Graph, method, from, to string) error {
	err := g.AddEdge(from, to)
	if err == nil || errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		return nil
	}

	return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, from, to, err)
}

// mod returns the non-negative remainder of a modulo m (m > 0).
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}
