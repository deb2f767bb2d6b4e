// SPDX-License-Identifier: MIT
// Package: topocast/builder
//
// impl_kautz.go - implementation of GeneralizedKautz(d, m) constructor.
//
// Contract:
//   • d ≥ 1 and m ≥ 1 (else ErrInvalidArgument).
//   • For x in 0..m-1 and a in 1..d: x → (−d·x − a) mod m.
//   • Duplicate targets collapse; self-loops are kept, so the graph must be
//     created with core.WithLoops() (otherwise core.ErrLoopNotAllowed).
//
// Complexity:
//   • Time: O(m·d).

package builder

import (
	"fmt"

	"github.com/katalvlaran/topocast/core"
)

// GeneralizedKautz returns a Constructor for the generalized Kautz digraph
// on m vertices with out-degree at most d. With m == d+1 it equals K_m.
func GeneralizedKautz(d, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if d < MinKautzDegree || m < MinKautzNodes {
			return fmt.Errorf("%s: d=%d, m=%d (need d ≥ %d, m ≥ %d): %w",
				MethodGeneralizedKautz, d, m, MinKautzDegree, MinKautzNodes, ErrInvalidArgument)
		}
		ids, err := addVertices(g, MethodGeneralizedKautz, m, cfg.idFn)
		if err != nil {
			return err
		}
		for x := 0; x < m; x++ {
			for a := 1; a <= d; a++ {
				y := mod(-d*x-a, m)
				if err = addEdge(g, MethodGeneralizedKautz, ids[x], ids[y]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
