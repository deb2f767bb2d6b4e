package topology_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topocast/topology"
)

func optimal(n, d int, name string, tl int) topology.Entry {
	return topology.Entry{N: n, D: d, Name: name, TL: tl, TB: topology.OptimalTB(n), BWOptimal: true}
}

func TestLineGraphBound(t *testing.T) {
	got, err := topology.LineGraphBound(optimal(6, 2, "BiRing(6)", 3))
	require.NoError(t, err)
	require.Equal(t, 12, got.N)
	require.Equal(t, 2, got.D)
	require.Equal(t, "Line(BiRing(6))", got.Name)
	require.Equal(t, 4, got.TL)
	require.InDelta(t, 1.0, got.TB, 1e-12)
	require.False(t, got.BWOptimal)
	require.Equal(t, 1, got.NestLevel)

	_, err = topology.LineGraphBound(topology.Entry{})
	require.ErrorIs(t, err, topology.ErrInvalidArgument)
}

func TestDegreeBound(t *testing.T) {
	got, err := topology.DegreeBound(optimal(4, 3, "K(4)", 1), 2)
	require.NoError(t, err)
	require.Equal(t, topology.Entry{N: 8, D: 6, Name: "Deg(2, K(4))", TL: 2, TB: got.TB, BWOptimal: true, NestLevel: 1}, got)
	require.InDelta(t, topology.OptimalTB(8), got.TB, 1e-12)

	_, err = topology.DegreeBound(optimal(4, 3, "K(4)", 1), 1)
	require.ErrorIs(t, err, topology.ErrInvalidArgument)
}

func TestCartesianProductBound(t *testing.T) {
	a, b := optimal(3, 1, "UniRing(3)", 2), optimal(4, 1, "UniRing(4)", 3)
	b.NestLevel = 2
	got, err := topology.CartesianProductBound(a, b)
	require.NoError(t, err)
	require.Equal(t, 12, got.N)
	require.Equal(t, 2, got.D)
	require.Equal(t, 5, got.TL)
	require.Equal(t, "Car(UniRing(3), UniRing(4))", got.Name)
	require.InDelta(t, 11.0/12, got.TB, 1e-12)
	require.True(t, got.BWOptimal)
	require.Equal(t, 3, got.NestLevel)

	line, err := topology.LineGraphBound(a)
	require.NoError(t, err)
	_, err = topology.CartesianProductBound(line, b)
	require.ErrorIs(t, err, topology.ErrPreconditionViolation)
}

func TestCartesianPowerBound(t *testing.T) {
	got, err := topology.CartesianPowerBound(optimal(5, 2, "BiRing(5)", 2), 2)
	require.NoError(t, err)
	require.Equal(t, 25, got.N)
	require.Equal(t, 4, got.D)
	require.Equal(t, 4, got.TL)
	require.Equal(t, "Car(2, BiRing(5))", got.Name)
	require.InDelta(t, 24.0/25, got.TB, 1e-12)

	_, err = topology.CartesianPowerBound(optimal(5, 2, "x", 2), 1)
	require.ErrorIs(t, err, topology.ErrInvalidArgument)
	_, err = topology.CartesianPowerBound(optimal(1, 1, "x", 0), 2)
	require.ErrorIs(t, err, topology.ErrInvalidArgument)
	_, err = topology.CartesianPowerBound(optimal(1000, 1, "x", 0), 10)
	require.ErrorIs(t, err, topology.ErrInvalidArgument)
}

// TestBounds_PreserveOptimality: degree and power expansions of an optimal
// entry land exactly on the optimal bandwidth of the larger topology.
func TestBounds_PreserveOptimality(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("degree and power stay at (N−1)/N", prop.ForAll(
		func(n, d, k int) bool {
			e := optimal(n, d, "G", 1)
			de, err := topology.DegreeBound(e, k)
			if err != nil || math.Abs(de.TB-topology.OptimalTB(de.N)) > 1e-12 {
				return false
			}
			pe, err := topology.CartesianPowerBound(e, k)
			if err != nil || math.Abs(pe.TB-topology.OptimalTB(pe.N)) > 1e-12 {
				return false
			}
			return de.BWOptimal && pe.BWOptimal && pe.TL == k && de.TL == 2
		},
		gen.IntRange(2, 30),
		gen.IntRange(1, 6),
		gen.IntRange(2, 4),
	))

	properties.TestingRun(t)
}
