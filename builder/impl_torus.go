// SPDX-License-Identifier: MIT
// Package: topocast/builder
//
// impl_torus.go - implementation of Torus(dims...) constructor.
//
// Contract:
//   • len(dims) ≥ 1 (else ErrInvalidArgument); each dim ≥ MinRingNodes.
//   • Result is ring(dims[0]) □ ring(dims[1]) □ … (undirected rings),
//     folded left to right, so IDs nest: "((i,j),k)".
//   • cfg.idFn labels the ring positions.
//
// Complexity:
//   • Time: O(Π dims · len(dims)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/topocast/core"
	"github.com/katalvlaran/topocast/expansion"
)

// Torus returns a Constructor for the multi-dimensional torus.
func Torus(dims ...int) Constructor {
	dims = append([]int(nil), dims...)

	return func(g *core.Graph, cfg builderConfig) error {
		if len(dims) == 0 {
			return fmt.Errorf("%s: no dimensions: %w", MethodTorus, ErrInvalidArgument)
		}
		ring := func(n int) (*core.Graph, error) {
			r := core.NewGraph()
			if err := Ring(n, false)(r, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", MethodTorus, err)
			}

			return r, nil
		}

		acc, err := ring(dims[0])
		if err != nil {
			return err
		}
		for _, n := range dims[1:] {
			r, err := ring(n)
			if err != nil {
				return err
			}
			if acc, err = expansion.CartesianProduct(acc, r); err != nil {
				return fmt.Errorf("%s: %w", MethodTorus, err)
			}
		}

		for _, v := range acc.Vertices() {
			if err = g.AddVertex(v); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodTorus, v, err)
			}
		}
		for _, e := range acc.Edges() {
			if err = addEdge(g, MethodTorus, e.From, e.To); err != nil {
				return err
			}
		}

		return nil
	}
}
