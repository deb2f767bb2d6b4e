package builder_test

import (
	"fmt"

	"github.com/katalvlaran/topocast/builder"
)

// ExampleGeneralizedKautz builds Pi(3,4), which is the complete digraph K_4.
func ExampleGeneralizedKautz() {
	g, err := builder.Build(builder.GeneralizedKautz(3, 4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	succ, _ := g.Successors("0")
	fmt.Println(g.VertexCount(), g.EdgeCount(), succ)

	// Output:
	// 4 12 [1 2 3]
}

// ExampleTorus builds a 3×3 torus of bidirectional rings.
func ExampleTorus() {
	g, _ := builder.Build(builder.Torus(3, 3))
	succ, _ := g.Successors("(1,1)")
	fmt.Println(succ)

	// Output:
	// [(0,1) (1,0) (1,2) (2,1)]
}
