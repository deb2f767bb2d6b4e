// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/Looped.
// Determinism:
//   - Edges() returns edges sorted by (From, To) under CompareIDs.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "golang.org/x/exp/slices"

// AddEdge inserts the directed edge from→to, creating missing endpoints.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Lock mu, register both endpoints.
//  3. Reject a duplicate from→to with ErrMultiEdgeNotAllowed.
//  4. Link out[from] and in[to].
//
// Generators treat ErrMultiEdgeNotAllowed as "already present", which gives
// the edge set its set semantics.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)
	if _, dup := g.out[from][to]; dup {
		return ErrMultiEdgeNotAllowed
	}
	g.out[from][to] = struct{}{}
	g.in[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Edges returns all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for from, bucket := range g.out {
		for to := range bucket {
			out = append(out, Edge{From: from, To: to})
		}
	}
	g.mu.RUnlock()

	slices.SortFunc(out, func(a, b Edge) int {
		if c := CompareIDs(a.From, b.From); c != 0 {
			return c
		}
		return CompareIDs(a.To, b.To)
	})

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
