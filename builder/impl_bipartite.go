// SPDX-License-Identifier: MIT
// Package: topocast/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs "{leftPrefix}{i}", right IDs "{rightPrefix}{j}".
//   • Emits L_i → R_j and R_j → L_i for every cross pair.
//
// Complexity:
//   • Time: O(n1 + n2) vertices + O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/topocast/core"
)

// CompleteBipartite returns a Constructor for the complete bipartite
// digraph K_{n1,n2}. With n1 == n2 == d it is d-regular with diameter 2.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}
		left, err := addVertices(g, MethodCompleteBipartite, n1, SymbolNumberIDFn(cfg.leftPrefix))
		if err != nil {
			return err
		}
		right, err := addVertices(g, MethodCompleteBipartite, n2, SymbolNumberIDFn(cfg.rightPrefix))
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = addEdge(g, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
				if err = addEdge(g, MethodCompleteBipartite, v, u); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
