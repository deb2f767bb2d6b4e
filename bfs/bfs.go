// Package bfs computes hop distances over a directed core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/topocast/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors is returned when fetching successors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// layer is the frontier at one hop count.
type layer struct {
	ids   []string
	depth int
}

// From runs breadth-first search from start along edge direction and
// returns the hop count of every reached vertex. The context is checked
// once per layer.
// Complexity: O(V + E).
func From(ctx context.Context, g *core.Graph, start string) (map[string]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: From %q: %w", start, ErrStartVertexNotFound)
	}

	depth := map[string]int{start: 0}
	cur := layer{ids: []string{start}}
	for len(cur.ids) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := layer{depth: cur.depth + 1}
		for _, id := range cur.ids {
			succ, err := g.Successors(id)
			if err != nil {
				return nil, fmt.Errorf("%w: successors of %q: %v", ErrNeighbors, id, err)
			}
			for _, nbr := range succ {
				if _, seen := depth[nbr]; !seen {
					depth[nbr] = next.depth
					next.ids = append(next.ids, nbr)
				}
			}
		}
		cur = next
	}

	return depth, nil
}
