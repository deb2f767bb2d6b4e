package expansion_test

import (
	"fmt"

	"github.com/katalvlaran/topocast/core"
	"github.com/katalvlaran/topocast/expansion"
)

// ExampleLineGraph expands a directed triangle; its line graph is again a
// triangle, one vertex per original edge.
func ExampleLineGraph() {
	g := core.NewGraph()
	_ = g.AddEdge("0", "1")
	_ = g.AddEdge("1", "2")
	_ = g.AddEdge("2", "0")

	lg, _, _ := expansion.LineGraph(g, nil)
	succ, _ := lg.Successors("(0,1)")
	fmt.Println(lg.Vertices())
	fmt.Println(succ)

	// Output:
	// [(0,1) (1,2) (2,0)]
	// [(1,2)]
}

// ExampleCartesianProduct builds the 2×2 torus from two 2-vertex rings.
func ExampleCartesianProduct() {
	ring := func() *core.Graph {
		g := core.NewGraph()
		_ = g.AddEdge("0", "1")
		_ = g.AddEdge("1", "0")
		return g
	}
	p, _ := expansion.CartesianProduct(ring(), ring())
	fmt.Println(p.VertexCount(), p.EdgeCount())

	// Output:
	// 4 8
}
