// SPDX-License-Identifier: MIT
//
// File: ids.go
// Role: Composite vertex identities and their natural ordering.
// Determinism:
//   - CompareIDs is a total order; SortIDs is stable for equal keys.

package core

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Tuple renders a composite vertex identity such as an edge pair "(u,v)",
// a replica pair "(v,2)" or a product pair "(u,v)". Parts may themselves be
// tuples, which yields nested identities after repeated expansion.
func Tuple(parts ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p)
	}
	b.WriteByte(')')

	return b.String()
}

// CompareIDs orders vertex IDs naturally: maximal digit runs compare by
// numeric value, every other byte compares as-is. Thus "2" < "10" and
// "(1,2)" < "(1,10)". Equal numeric values with different zero padding fall
// back to the shorter run first, so the order stays total.
func CompareIDs(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			if c := compareDigitRuns(a[si:i], b[sj:j]); c != 0 {
				return c
			}
			continue
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	default:
		return 0
	}
}

// SortIDs sorts ids in place by CompareIDs.
func SortIDs(ids []string) {
	slices.SortStableFunc(ids, CompareIDs)
}

// compareDigitRuns compares two decimal digit runs by value, then by length.
func compareDigitRuns(x, y string) int {
	tx := strings.TrimLeft(x, "0")
	ty := strings.TrimLeft(y, "0")
	if len(tx) != len(ty) {
		if len(tx) < len(ty) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(tx, ty); c != 0 {
		return c
	}
	// same value: fewer leading zeros first
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	default:
		return 0
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
