// SPDX-License-Identifier: MIT
//
// File: reference.go
// Role: ingest of the distance-regular reference dataset.

package topology

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadReference reads rows "id,nodes,degree,diameter,..." after one header
// row and inserts each as a bandwidth-optimal entry "DistReg(<id>)" with
// TL = diameter. Rows with fewer than four fields or a non-numeric
// nodes/degree/diameter (e.g. "Inf") are skipped. It returns the number of
// entries that fit the table. Columns are taken by position; the header's
// names are never consulted.
func (f *Finder) LoadReference(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	inserted, skipped := 0, 0
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			skipped++
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("LoadReference: %w", err)
		}
		if header {
			header = false
			continue
		}

		e, ok := referenceEntry(rec)
		if !ok {
			skipped++
			continue
		}
		if f.offer(opReference, e) {
			inserted++
		}
	}
	f.metrics.SetCatalogueEntries(f.table.Len())
	f.log.Info("reference dataset loaded", "inserted", inserted, "skipped", skipped)

	return inserted, nil
}

// LoadReferenceFile is LoadReference over the named file.
func (f *Finder) LoadReferenceFile(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("LoadReferenceFile: %w", err)
	}
	defer file.Close()

	return f.LoadReference(file)
}

func referenceEntry(rec []string) (Entry, bool) {
	if len(rec) < 4 {
		return Entry{}, false
	}
	var vals [3]int
	for i := range vals {
		v, err := strconv.Atoi(strings.TrimSpace(rec[i+1]))
		if err != nil {
			return Entry{}, false
		}
		vals[i] = v
	}
	n, d, diam := vals[0], vals[1], vals[2]
	if n < 2 || d < 1 || diam < 0 {
		return Entry{}, false
	}

	return basic(n, d, fmt.Sprintf("DistReg(%s)", strings.TrimSpace(rec[0])), diam), true
}
