// SPDX-License-Identifier: MIT
//
// File: finder.go
// Role: Finder construction, options, seeding and candidate admission.

package topology

import (
	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/katalvlaran/topocast/metrics"
)

// Candidate origins, used as the "operator" metric label.
const (
	opSeed      = "seed"
	opReference = "reference"
	opBasic     = "basic"
	opLine      = "line"
	opDegree    = "degree"
	opProduct   = "product"
	opPower     = "power"
)

// Finder drives the topology search over one Table.
type Finder struct {
	table   *Table
	log     logr.Logger
	metrics *metrics.Registry
	runID   uuid.UUID
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger; the default discards.
func WithLogger(l logr.Logger) Option {
	return func(f *Finder) { f.log = l }
}

// WithMetrics records candidate and pass metrics into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(f *Finder) { f.metrics = r }
}

// New returns a Finder over an empty maxN × maxD table. Every Finder gets a
// fresh run ID that tags its exported catalogue.
func New(maxN, maxD int, opts ...Option) (*Finder, error) {
	t, err := NewTable(maxN, maxD)
	if err != nil {
		return nil, err
	}
	f := &Finder{table: t, log: logr.Discard(), runID: uuid.New()}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.WithName("topology")

	return f, nil
}

// Table returns the table being populated.
func (f *Finder) Table() *Table { return f.table }

// RunID identifies this search run.
func (f *Finder) RunID() uuid.UUID { return f.runID }

// offer inserts e and records the outcome under op.
func (f *Finder) offer(op string, e Entry) bool {
	ok := f.table.TryInsert(e)
	f.metrics.RecordCandidate(op, ok)
	if ok {
		f.log.V(2).Info("candidate inserted", "operator", op, "topology", e.Name, "N", e.N, "d", e.D, "TL", e.TL, "TB", e.TB)
	}

	return ok
}

// SeedKnown inserts the hand-curated topologies without a generator here:
// the diamond graph and four modified De Bruijn graphs. It returns how many
// fit the table.
func (f *Finder) SeedKnown() int {
	seeds := []Entry{
		basic(8, 2, "diamond", 3),
		basic(8, 2, "DBJ(2,3)", 4),
		basic(16, 2, "DBJ(2,4)", 5),
		basic(9, 3, "DBJ(3,2)", 3),
		basic(16, 4, "DBJ(4,2)", 3),
	}
	n := 0
	for _, e := range seeds {
		if f.offer(opSeed, e) {
			n++
		}
	}
	f.metrics.SetCatalogueEntries(f.table.Len())

	return n
}
