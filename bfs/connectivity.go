// SPDX-License-Identifier: MIT
//
// File: connectivity.go
// Role: gonum view of a core.Graph and strong connectivity on top of it.

package bfs

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/topocast/core"
)

// Gonum converts g into a gonum simple.DirectedGraph. Vertex i of the
// returned index slice (g.Vertices() order) becomes simple.Node(i).
// Self-loops are dropped because simple graphs reject them; they never
// affect reachability.
func Gonum(g *core.Graph) (*simple.DirectedGraph, []string) {
	ids := g.Vertices()
	index := make(map[string]int64, len(ids))
	dg := simple.NewDirectedGraph()
	for i, id := range ids {
		index[id] = int64(i)
		dg.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		dg.SetEdge(dg.NewEdge(simple.Node(index[e.From]), simple.Node(index[e.To])))
	}

	return dg, ids
}

// StronglyConnected reports whether every vertex reaches every other one.
// An empty graph is not strongly connected.
// Complexity: O(V + E) (Tarjan).
func StronglyConnected(g *core.Graph) bool {
	if g == nil || g.VertexCount() == 0 {
		return false
	}
	dg, _ := Gonum(g)

	return len(topo.TarjanSCC(dg)) == 1
}
