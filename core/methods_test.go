package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topocast/core"
)

// TestAddEdge_Errors verifies the sentinel errors of AddEdge and AddVertex.
func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge("", "A"), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge("A", "A"), core.ErrLoopNotAllowed)

	require.NoError(t, g.AddEdge("A", "B"))
	err := g.AddEdge("A", "B")
	require.True(t, errors.Is(err, core.ErrMultiEdgeNotAllowed), "duplicate edge: got %v", err)
	require.Equal(t, 1, g.EdgeCount())

	// the reverse direction is a different edge
	require.NoError(t, g.AddEdge("B", "A"))
	require.Equal(t, 2, g.EdgeCount())
}

// TestLoops verifies WithLoops enables self-loops and that they count once
// in both directions.
func TestLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.True(t, g.Looped())
	require.NoError(t, g.AddEdge("0", "0"))

	out, err := g.OutDegree("0")
	require.NoError(t, err)
	in, err := g.InDegree("0")
	require.NoError(t, err)
	require.Equal(t, 1, out)
	require.Equal(t, 1, in)
}

// TestNeighbors checks successors and predecessors on a small directed graph.
func TestNeighbors(t *testing.T) {
	g := core.NewGraph()
	for _, e := range []core.Edge{{"1", "2"}, {"1", "10"}, {"3", "10"}, {"10", "1"}} {
		require.NoError(t, g.AddEdge(e.From, e.To))
	}

	succ, err := g.Successors("1")
	require.NoError(t, err)
	require.Equal(t, []string{"2", "10"}, succ)

	pred, err := g.Predecessors("10")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "3"}, pred)

	_, err = g.Successors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.InDegree("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestVerticesAndEdges_Order verifies natural ordering of enumeration.
func TestVerticesAndEdges_Order(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("10", "2"))
	require.NoError(t, g.AddEdge("2", "1"))
	require.NoError(t, g.AddEdge("1", "10"))

	require.Equal(t, []string{"1", "2", "10"}, g.Vertices())
	require.Equal(t, []core.Edge{{"1", "10"}, {"2", "1"}, {"10", "2"}}, g.Edges())
}

// TestRegularDegree covers regular, irregular and empty graphs.
func TestRegularDegree(t *testing.T) {
	empty := core.NewGraph()
	_, ok := empty.RegularOutDegree()
	require.False(t, ok)

	ring := core.NewGraph()
	for i, next := range []string{"1", "2", "0"} {
		require.NoError(t, ring.AddEdge([]string{"0", "1", "2"}[i], next))
	}
	d, ok := ring.RegularOutDegree()
	require.True(t, ok)
	require.Equal(t, 1, d)
	d, ok = ring.RegularInDegree()
	require.True(t, ok)
	require.Equal(t, 1, d)

	require.NoError(t, ring.AddEdge("0", "2"))
	_, ok = ring.RegularOutDegree()
	require.False(t, ok)
}

// TestClone ensures the clone is deep and keeps the loop policy.
func TestClone(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "b"))

	c := g.Clone()
	require.True(t, c.Looped())
	require.Equal(t, g.Edges(), c.Edges())

	require.NoError(t, c.AddEdge("b", "a"))
	require.False(t, g.HasEdge("b", "a"), "mutating the clone must not touch the source")
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, 3, c.EdgeCount())
}
