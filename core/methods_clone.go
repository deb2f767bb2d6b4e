// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock on the source only; the clone is private until returned.

package core

// Clone returns a deep copy of g with the same loop policy, vertices and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	for id := range g.vertices {
		clone.ensureVertex(id)
	}
	for from, bucket := range g.out {
		for to := range bucket {
			clone.out[from][to] = struct{}{}
			clone.in[to][from] = struct{}{}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
