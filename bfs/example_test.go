package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/topocast/bfs"
	"github.com/katalvlaran/topocast/core"
)

// ExampleFrom shows layering on a directed ring with one chord.
func ExampleFrom() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}, {"0", "2"}} {
		_ = g.AddEdge(e[0], e[1])
	}

	depth, _ := bfs.From(context.Background(), g, "0")
	fmt.Println(depth["1"], depth["2"], depth["3"])

	// Output:
	// 1 1 2
}

// ExampleAllPairs computes the diameter of a bidirectional 6-ring.
func ExampleAllPairs() {
	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		a, b := fmt.Sprint(i), fmt.Sprint((i+1)%6)
		_ = g.AddEdge(a, b)
		_ = g.AddEdge(b, a)
	}

	d, _ := bfs.AllPairs(context.Background(), g)
	fmt.Println("diameter:", d.Diameter())
	fmt.Println("strongly connected:", bfs.StronglyConnected(g))

	// Output:
	// diameter: 3
	// strongly connected: true
}
