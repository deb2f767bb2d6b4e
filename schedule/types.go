// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Schedule, Entry, TransferKey and their sorted accessors.

package schedule

import (
	"errors"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/topocast/core"
)

// Sentinel errors for schedule operations.
var (
	// ErrNotRegular indicates the graph is not in-degree regular.
	ErrNotRegular = errors.New("schedule: graph is not in-degree regular")

	// ErrNotStronglyConnected indicates some vertex cannot reach another.
	ErrNotStronglyConnected = errors.New("schedule: graph is not strongly connected")

	// ErrInvariantViolation indicates a schedule entry breaks the
	// fraction-sum or link-load invariant.
	ErrInvariantViolation = errors.New("schedule: invariant violation")
)

// TimeStep is a 1-based communication step.
type TimeStep int

// TransferKey names a transfer: the shard of From forwarded to the
// destination through its in-neighbor Via.
type TransferKey struct {
	From string
	Via  string
}

// Entry is the schedule of one destination at one step.
type Entry struct {
	// LoadU is the normalized max per-link load at this (t, u).
	LoadU float64
	// Transfers maps (source, via) to the fraction of the source's shard.
	Transfers map[TransferKey]float64
}

// Schedule maps step → destination → Entry. A missing (t, u) means no
// transfer to u happens at step t.
type Schedule map[TimeStep]map[string]Entry

// Set stores e for (t, u), creating the step bucket on demand.
func (s Schedule) Set(t TimeStep, u string, e Entry) {
	step, ok := s[t]
	if !ok {
		step = make(map[string]Entry)
		s[t] = step
	}
	step[u] = e
}

// Get returns the entry for (t, u).
func (s Schedule) Get(t TimeStep, u string) (Entry, bool) {
	e, ok := s[t][u]

	return e, ok
}

// Steps returns the populated steps in ascending order.
func (s Schedule) Steps() []TimeStep {
	steps := make([]TimeStep, 0, len(s))
	for t := range s {
		steps = append(steps, t)
	}
	slices.Sort(steps)

	return steps
}

// Destinations returns the destinations scheduled at step t in ID order.
func (s Schedule) Destinations(t TimeStep) []string {
	dst := make([]string, 0, len(s[t]))
	for u := range s[t] {
		dst = append(dst, u)
	}
	core.SortIDs(dst)

	return dst
}

// Len returns the total number of (t, u) entries.
func (s Schedule) Len() int {
	n := 0
	for _, step := range s {
		n += len(step)
	}

	return n
}

// SortedKeys returns the transfer keys ordered by (From, Via).
func (e Entry) SortedKeys() []TransferKey {
	keys := make([]TransferKey, 0, len(e.Transfers))
	for k := range e.Transfers {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)

	return keys
}

// ViaLoads sums the fractions per via.
func (e Entry) ViaLoads() map[string]float64 {
	loads := make(map[string]float64)
	for k, f := range e.Transfers {
		loads[k.Via] += f
	}

	return loads
}

// MaxViaLoad returns the largest per-via sum, 0 for no transfers.
func (e Entry) MaxViaLoad() float64 {
	maxLoad := 0.0
	for _, l := range e.ViaLoads() {
		if l > maxLoad {
			maxLoad = l
		}
	}

	return maxLoad
}

func compareKeys(a, b TransferKey) int {
	if c := core.CompareIDs(a.From, b.From); c != 0 {
		return c
	}

	return core.CompareIDs(a.Via, b.Via)
}
