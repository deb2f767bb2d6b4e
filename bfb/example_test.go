package bfb_test

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/topocast/bfb"
	"github.com/katalvlaran/topocast/builder"
	"github.com/katalvlaran/topocast/schedule"
)

// ExampleCompute schedules a bidirectional 4-ring and prints its totals.
func ExampleCompute() {
	g, _ := builder.Build(builder.Ring(4, false))
	s, err := bfb.Compute(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, _, _ = schedule.Fprint(os.Stdout, s, false)

	lb, _ := schedule.Bound(g)
	_ = schedule.FprintBound(os.Stdout, lb)

	// Output:
	// total T: 2, U: 1.5000
	// ideal T: 2, U: 1.5000
}
