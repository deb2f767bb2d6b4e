// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topocast/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every successor appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id)))
		}(i)
	}
	wg.Wait()

	succ, err := g.Successors("X")
	require.NoError(t, err)
	require.Len(t, succ, num)
}

// TestConcurrentReads runs predecessor queries while readers enumerate edges.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprint(i), fmt.Sprint((i+1)%50)))
	}

	var wg sync.WaitGroup
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				pred, err := g.Predecessors(fmt.Sprint(i))
				require.NoError(t, err)
				require.Len(t, pred, 1)
				require.Len(t, g.Edges(), 50)
			}
		}()
	}
	wg.Wait()
}
