// SPDX-License-Identifier: MIT
// Package: topocast/builder
//
// impl_ring.go - implementation of Ring(n, directed) constructor.
//
// Contract:
//   • n ≥ MinRingNodes (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges i → (i+1)%n for i=0..n-1; undirected also adds every reverse.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(n) for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/topocast/core"
)

// Ring returns a Constructor that builds the n-vertex ring. A directed ring
// has in/out-degree 1; an undirected one has degree 2 (1 when n == 2).
func Ring(n int, directed bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRing, n, MinRingNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, MethodRing, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			if err = addEdge(g, MethodRing, u, v); err != nil {
				return err
			}
			if !directed {
				if err = addEdge(g, MethodRing, v, u); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
