package topology_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topocast/topology"
)

func searched(t *testing.T, maxN, maxD int) *topology.Finder {
	f, err := topology.New(maxN, maxD)
	require.NoError(t, err)
	require.NoError(t, f.Search(context.Background()))
	return f
}

func TestCSV_RoundTrip(t *testing.T) {
	f := searched(t, 12, 3)

	var buf bytes.Buffer
	require.NoError(t, topology.WriteCSV(&buf, f.Table()))
	require.True(t, strings.HasPrefix(buf.String(), "nodes,degree,topology,tl,tb,bw_optimal,nest_level\n"))

	got, err := topology.ReadCSV(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(f.Table().Entries(), got); diff != "" {
		t.Fatalf("CSV round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestYAML_Catalogue(t *testing.T) {
	f := searched(t, 6, 2)
	c := f.Catalogue()
	require.Equal(t, f.RunID().String(), c.RunID)
	require.Equal(t, 6, c.MaxN)

	var buf bytes.Buffer
	require.NoError(t, topology.WriteYAML(&buf, c))
	require.Contains(t, buf.String(), "run_id: "+c.RunID)

	var back topology.Catalogue
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Empty(t, cmp.Diff(c, back))
}

func TestWriteFile(t *testing.T) {
	f := searched(t, 6, 2)
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "catalogue.csv")
	require.NoError(t, f.WriteFile(csvPath))
	yamlPath := filepath.Join(dir, "catalogue.yaml")
	require.NoError(t, f.WriteFile(yamlPath))

	other, err := topology.New(6, 2)
	require.NoError(t, err)
	require.NotEqual(t, f.RunID(), other.RunID())
}

func TestFprint(t *testing.T) {
	tbl, err := topology.NewTable(4, 2)
	require.NoError(t, err)
	tbl.TryInsert(optimal(4, 2, "BiRing(4)", 2))
	line, _ := topology.LineGraphBound(optimal(2, 2, "X", 1))
	tbl.TryInsert(line)

	var buf bytes.Buffer
	require.NoError(t, topology.Fprint(&buf, tbl))
	want := "\nN=4, d=2:\n\n" +
		"Topology: BiRing(4), N: 4, d: 2, TL: 2, TB: 0.7500, BW optimal: Yes\n" +
		"Topology: Line(X), N: 4, d: 2, TL: 2, TB: 1.0000, BW optimal: No\n"
	require.Equal(t, want, buf.String())
}
