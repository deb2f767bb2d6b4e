// SPDX-License-Identifier: MIT
//
// File: product.go
// Role: Cartesian product and power.

package expansion

import (
	"fmt"

	"github.com/katalvlaran/topocast/core"
)

// CartesianProduct returns G1 □ G2: vertices "(u,v)" and edges that move
// along one factor while the other coordinate stays fixed. The result has
// N1·N2 vertices and E1·N2 + E2·N1 edges.
//
// Errors: ErrGraphNil.
func CartesianProduct(g1, g2 *core.Graph) (*core.Graph, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrGraphNil
	}
	left, right := g1.Vertices(), g2.Vertices()

	p := newLike(g1, g2)
	for _, u := range left {
		for _, v := range right {
			if err := p.AddVertex(core.Tuple(u, v)); err != nil {
				return nil, fmt.Errorf("%s: %w", methodProduct, err)
			}
		}
	}
	for _, e := range g1.Edges() {
		for _, v := range right {
			if err := p.AddEdge(core.Tuple(e.From, v), core.Tuple(e.To, v)); err != nil {
				return nil, fmt.Errorf("%s: %w", methodProduct, err)
			}
		}
	}
	for _, e := range g2.Edges() {
		for _, u := range left {
			if err := p.AddEdge(core.Tuple(u, e.From), core.Tuple(u, e.To)); err != nil {
				return nil, fmt.Errorf("%s: %w", methodProduct, err)
			}
		}
	}

	return p, nil
}

// CartesianPower returns g□g□…□g with k factors, folded left to right.
// k == 1 yields a clone of g.
//
// Errors: ErrGraphNil; ErrInvalidArgument when k < 1.
func CartesianPower(g *core.Graph, k int) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k < 1 {
		return nil, fmt.Errorf("%s: k=%d < 1: %w", methodPower, k, ErrInvalidArgument)
	}

	acc := g.Clone()
	for i := 1; i < k; i++ {
		next, err := CartesianProduct(acc, g)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPower, err)
		}
		acc = next
	}

	return acc, nil
}
