// SPDX-License-Identifier: MIT
// Package: topocast/builder
//
// impl_circulant.go - implementation of Circulant(n, generators, directed).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Generators congruent to 0 mod n are skipped; if none remain the call
//     fails with ErrInvalidArgument.
//   • For each i and generator a: i → (i+a) mod n. The "minus" edge
//     i → (i−a) mod n is also emitted unless the graph is directed and a is
//     the half step (even n, 2a == n), and never when it would be a loop.
//   • Undirected circulants are symmetrized: every u→v gets its v→u.
//
// Complexity:
//   • Time: O(n·|generators|).

package builder

import (
	"fmt"

	"github.com/katalvlaran/topocast/core"
)

// Circulant returns a Constructor for the circulant graph C_n(generators).
func Circulant(n int, generators []int, directed bool) Constructor {
	gens := append([]int(nil), generators...)

	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", MethodCirculant, n, ErrTooFewVertices)
		}
		usable := 0
		for _, a := range gens {
			if mod(a, n) != 0 {
				usable++
			}
		}
		if usable == 0 {
			return fmt.Errorf("%s: no generator of %v is non-zero mod %d: %w", MethodCirculant, gens, n, ErrInvalidArgument)
		}

		ids, err := addVertices(g, MethodCirculant, n, cfg.idFn)
		if err != nil {
			return err
		}
		link := func(i, j int) error {
			if err := addEdge(g, MethodCirculant, ids[i], ids[j]); err != nil {
				return err
			}
			if !directed {
				return addEdge(g, MethodCirculant, ids[j], ids[i])
			}

			return nil
		}

		for i := 0; i < n; i++ {
			for _, a := range gens {
				if mod(a, n) == 0 {
					continue
				}
				if err = link(i, mod(i+a, n)); err != nil {
					return err
				}
				half := n%2 == 0 && 2*a == n
				if directed && half {
					continue
				}
				if minus := mod(i-a, n); minus != i {
					if err = link(i, minus); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
