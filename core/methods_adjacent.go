// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Successors, Predecessors, degrees, regularity).
// Determinism:
//   - Successors()/Predecessors() return IDs sorted by CompareIDs.
// Concurrency:
//   - All methods take the mu read lock.

package core

// Successors returns the heads of all edges leaving id.
//
// Errors:
//   - ErrVertexNotFound: if id is not a vertex.
//
// Complexity: O(d log d).
func (g *Graph) Successors(id string) ([]string, error) {
	return g.neighborIDs(g.out, id)
}

// Predecessors returns the tails of all edges entering id.
//
// Errors:
//   - ErrVertexNotFound: if id is not a vertex.
//
// Complexity: O(d log d).
func (g *Graph) Predecessors(id string) ([]string, error) {
	return g.neighborIDs(g.in, id)
}

// OutDegree returns the number of edges leaving id.
func (g *Graph) OutDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.out[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// InDegree returns the number of edges entering id.
func (g *Graph) InDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.in[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// RegularOutDegree reports the common out-degree when every vertex has the
// same one. An empty graph is not regular.
// Complexity: O(V).
func (g *Graph) RegularOutDegree() (int, bool) {
	return g.regular(g.out)
}

// RegularInDegree reports the common in-degree when every vertex has the
// same one. An empty graph is not regular.
// Complexity: O(V).
func (g *Graph) RegularInDegree() (int, bool) {
	return g.regular(g.in)
}

func (g *Graph) neighborIDs(adj map[string]map[string]struct{}, id string) ([]string, error) {
	g.mu.RLock()
	bucket, ok := adj[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(bucket))
	for nb := range bucket {
		ids = append(ids, nb)
	}
	g.mu.RUnlock()
	SortIDs(ids)

	return ids, nil
}

func (g *Graph) regular(adj map[string]map[string]struct{}) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	d, first := 0, true
	for _, bucket := range adj {
		if first {
			d, first = len(bucket), false
			continue
		}
		if len(bucket) != d {
			return 0, false
		}
	}

	return d, !first
}
