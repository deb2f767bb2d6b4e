// SPDX-License-Identifier: MIT
// Package: topocast/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • Emits every ordered pair i→j with i ≠ j, lexicographic by (i,j).
//
// Complexity:
//   • Time: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/topocast/core"
)

// Complete returns a Constructor that builds the complete digraph K_n
// (in/out-degree n−1, diameter 1).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, MethodComplete, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err = addEdge(g, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
