// SPDX-License-Identifier: MIT
//
// File: catalogue.go
// Role: CSV/YAML export and the text report of a Table.

package topology

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Bucket is one (N, d) cell of a Catalogue.
type Bucket struct {
	N       int     `yaml:"nodes"`
	D       int     `yaml:"degree"`
	Entries []Entry `yaml:"entries"`
}

// Catalogue is the exported form of a search result.
type Catalogue struct {
	RunID   string   `yaml:"run_id"`
	MaxN    int      `yaml:"max_nodes"`
	MaxD    int      `yaml:"max_degree"`
	Buckets []Bucket `yaml:"buckets"`
}

// Catalogue snapshots the Finder's table under its run ID.
func (f *Finder) Catalogue() Catalogue {
	maxN, maxD := f.table.Bounds()
	c := Catalogue{RunID: f.runID.String(), MaxN: maxN, MaxD: maxD}
	f.table.Each(func(n, d int, b []Entry) {
		c.Buckets = append(c.Buckets, Bucket{N: n, D: d, Entries: b})
	})

	return c
}

// WriteCSV writes every entry of t as CSV with a header row.
func WriteCSV(w io.Writer, t *Table) error {
	entries := t.Entries()
	if entries == nil {
		entries = []Entry{}
	}
	if err := gocsv.Marshal(&entries, w); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

// ReadCSV reads entries written by WriteCSV.
func ReadCSV(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := gocsv.Unmarshal(r, &entries); err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	return entries, nil
}

// WriteYAML encodes c as YAML.
func WriteYAML(w io.Writer, c Catalogue) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}

// WriteFile exports the Finder's catalogue to filename: ".csv" as CSV,
// anything else as YAML.
func (f *Finder) WriteFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		err = WriteCSV(file, f.table)
	} else {
		err = WriteYAML(file, f.Catalogue())
	}
	if err != nil {
		return err
	}

	return file.Close()
}

// Fprint writes the per-bucket report of t.
func Fprint(w io.Writer, t *Table) error {
	var b strings.Builder
	t.Each(func(n, d int, bucket []Entry) {
		fmt.Fprintf(&b, "\nN=%d, d=%d:\n\n", n, d)
		for _, e := range bucket {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	})
	_, err := io.WriteString(w, b.String())

	return err
}
