package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topocast/core"
)

// TestTuple checks flat and nested composite identities.
func TestTuple(t *testing.T) {
	require.Equal(t, "(0,1)", core.Tuple("0", "1"))
	require.Equal(t, "((0,1),(1,2))", core.Tuple(core.Tuple("0", "1"), core.Tuple("1", "2")))
	require.Equal(t, "()", core.Tuple())
}

// TestCompareIDs verifies the natural order on plain and composite IDs.
func TestCompareIDs(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{"a", "b", -1},
		{"a", "a", 0},
		{"a", "a1", -1},
		{"(1,2)", "(1,10)", -1},
		{"((0,1),3)", "((0,1),12)", -1},
		{"007", "7", 1},
		{"L2", "L10", -1},
		{"L9", "R0", -1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, core.CompareIDs(tc.a, tc.b), "CompareIDs(%q,%q)", tc.a, tc.b)
	}
}

// TestSortIDs sorts a mixed slice.
func TestSortIDs(t *testing.T) {
	ids := []string{"(10,0)", "(2,1)", "(2,0)", "11", "3"}
	core.SortIDs(ids)
	require.Equal(t, []string{"(2,0)", "(2,1)", "(10,0)", "3", "11"}, ids)
}
