// SPDX-License-Identifier: MIT
//
// File: entry.go
// Role: Entry, sentinel errors and the optimal-bandwidth helper.

package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology operations.
var (
	// ErrInvalidArgument indicates a size, factor or bound outside the
	// operation's domain.
	ErrInvalidArgument = errors.New("topology: invalid argument")

	// ErrPreconditionViolation indicates an input that breaks a documented
	// precondition, e.g. a Cartesian product of entries that are not
	// bandwidth-optimal, or measuring an irregular graph.
	ErrPreconditionViolation = errors.New("topology: precondition violation")
)

// Entry summarizes one topology.
type Entry struct {
	N         int     `csv:"nodes" yaml:"nodes"`
	D         int     `csv:"degree" yaml:"degree"`
	Name      string  `csv:"topology" yaml:"topology"`
	TL        int     `csv:"tl" yaml:"tl"`
	TB        float64 `csv:"tb" yaml:"tb"`
	BWOptimal bool    `csv:"bw_optimal" yaml:"bw_optimal"`
	NestLevel int     `csv:"nest_level" yaml:"nest_level"`
}

// String renders e as one report line.
func (e Entry) String() string {
	opt := "No"
	if e.BWOptimal {
		opt = "Yes"
	}

	return fmt.Sprintf("Topology: %s, N: %d, d: %d, TL: %d, TB: %.4f, BW optimal: %s",
		e.Name, e.N, e.D, e.TL, e.TB, opt)
}

// OptimalTB is the bandwidth lower bound (N−1)/N of an N-node topology.
func OptimalTB(n int) float64 {
	return float64(n-1) / float64(n)
}

// basic returns a bandwidth-optimal, unexpanded entry.
func basic(n, d int, name string, tl int) Entry {
	return Entry{N: n, D: d, Name: name, TL: tl, TB: OptimalTB(n), BWOptimal: true}
}
