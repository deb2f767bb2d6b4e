package bfs_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/topocast/bfs"
	"github.com/katalvlaran/topocast/core"
)

// BenchmarkFrom_Ring measures From on a directed ring of size N.
func BenchmarkFrom_Ring(b *testing.B) {
	const N = 10000
	g := cycle(b, N)

	b.ReportAllocs()
	b.SetBytes(int64(2 * N))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.From(context.Background(), g, "0")
	}
}

// BenchmarkAllPairs_RandomSparse measures AllPairs on a sparse random digraph.
func BenchmarkAllPairs_RandomSparse(b *testing.B) {
	const V = 300
	const E = 1200

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	for i := 0; i < V; i++ {
		_ = g.AddVertex(fmt.Sprintf("n%d", i))
	}
	for k := 0; k < E; k++ {
		u := fmt.Sprintf("n%d", rnd.Intn(V))
		v := fmt.Sprintf("n%d", rnd.Intn(V))
		if u != v {
			_ = g.AddEdge(u, v) // duplicates rejected and ignored
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.AllPairs(context.Background(), g)
	}
}
