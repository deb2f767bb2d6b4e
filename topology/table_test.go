package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topocast/topology"
)

func TestNewTable_Bounds(t *testing.T) {
	_, err := topology.NewTable(0, 3)
	require.ErrorIs(t, err, topology.ErrInvalidArgument)

	tbl, err := topology.NewTable(8, 2)
	require.NoError(t, err)
	n, d := tbl.Bounds()
	require.Equal(t, 8, n)
	require.Equal(t, 2, d)
}

func TestTable_TryInsert(t *testing.T) {
	tbl, err := topology.NewTable(8, 2)
	require.NoError(t, err)

	require.True(t, tbl.TryInsert(optimal(8, 2, "BiRing(8)", 4)))
	require.False(t, tbl.TryInsert(optimal(9, 2, "BiRing(9)", 4)))
	require.False(t, tbl.TryInsert(optimal(8, 3, "x", 1)))
	require.False(t, tbl.TryInsert(topology.Entry{N: 0, D: 1}))
	require.Equal(t, 1, tbl.Len())
}

func TestTable_Prune(t *testing.T) {
	tbl, err := topology.NewTable(8, 2)
	require.NoError(t, err)

	slow := optimal(8, 2, "BiRing(8)", 4)
	fast := topology.Entry{N: 8, D: 2, Name: "Line(BiRing(4))", TL: 3, TB: 1, NestLevel: 1}
	best := optimal(8, 2, "diamond", 3)
	worse := optimal(8, 2, "Deg(2, UniRing(4))", 4)
	worse.NestLevel = 1
	for _, e := range []topology.Entry{slow, fast, worse, best} {
		require.True(t, tbl.TryInsert(e))
	}
	tbl.Prune(8, 2)
	require.Equal(t, []topology.Entry{best}, tbl.Bucket(8, 2))

	// Bucket hands out copies.
	b := tbl.Bucket(8, 2)
	b[0].Name = "changed"
	require.Equal(t, "diamond", tbl.Bucket(8, 2)[0].Name)
}

func TestTable_PruneKeepsFasterProduct(t *testing.T) {
	tbl, err := topology.NewTable(12, 2)
	require.NoError(t, err)

	ring := optimal(12, 2, "BiRing(12)", 6)
	product := optimal(12, 2, "Car(UniRing(3), UniRing(4))", 5)
	product.NestLevel = 1
	require.True(t, tbl.TryInsert(ring))
	require.True(t, tbl.TryInsert(product))
	tbl.Prune(12, 2)
	require.Equal(t, []topology.Entry{product}, tbl.Bucket(12, 2))
}

func TestTable_EachAscending(t *testing.T) {
	tbl, err := topology.NewTable(8, 3)
	require.NoError(t, err)
	tbl.TryInsert(optimal(8, 1, "UniRing(8)", 7))
	tbl.TryInsert(optimal(3, 2, "BiRing(3)", 1))
	tbl.TryInsert(optimal(3, 1, "UniRing(3)", 2))

	var order [][2]int
	tbl.Each(func(n, d int, _ []topology.Entry) { order = append(order, [2]int{n, d}) })
	require.Equal(t, [][2]int{{3, 1}, {3, 2}, {8, 1}}, order)
	require.Len(t, tbl.Entries(), 3)
	require.Equal(t, "UniRing(3)", tbl.Entries()[0].Name)
}
