// SPDX-License-Identifier: MIT
//
// File: bounds.go
// Role: closed-form Entry of each expansion operator's output.

package topology

import (
	"fmt"
	"math"
)

// LineGraphBound is the Entry of L(G): N·d nodes of degree d, one extra
// step, TB grown by 1/N. The result is never flagged bandwidth-optimal.
func LineGraphBound(e Entry) (Entry, error) {
	if e.N < 1 || e.D < 1 {
		return Entry{}, fmt.Errorf("LineGraphBound: N=%d d=%d: %w", e.N, e.D, ErrInvalidArgument)
	}

	return Entry{
		N:         e.N * e.D,
		D:         e.D,
		Name:      fmt.Sprintf("Line(%s)", e.Name),
		TL:        e.TL + 1,
		TB:        e.TB + 1/float64(e.N),
		BWOptimal: false,
		NestLevel: e.NestLevel + 1,
	}, nil
}

// DegreeBound is the Entry of G∗n: n·N nodes of degree n·d, one extra step,
// TB grown by (n−1)/(n·N). Bandwidth optimality is inherited.
func DegreeBound(e Entry, n int) (Entry, error) {
	if n < 2 {
		return Entry{}, fmt.Errorf("DegreeBound: n=%d < 2: %w", n, ErrInvalidArgument)
	}
	if e.N < 1 {
		return Entry{}, fmt.Errorf("DegreeBound: N=%d: %w", e.N, ErrInvalidArgument)
	}

	return Entry{
		N:         n * e.N,
		D:         n * e.D,
		Name:      fmt.Sprintf("Deg(%d, %s)", n, e.Name),
		TL:        e.TL + 1,
		TB:        e.TB + float64(n-1)/float64(n*e.N),
		BWOptimal: e.BWOptimal,
		NestLevel: e.NestLevel + 1,
	}, nil
}

// CartesianProductBound is the Entry of a □ b. Both inputs must be
// bandwidth-optimal; the product then is too: TL adds and TB is (N−1)/N.
func CartesianProductBound(a, b Entry) (Entry, error) {
	if !a.BWOptimal || !b.BWOptimal {
		return Entry{}, fmt.Errorf("CartesianProductBound: %s × %s: both factors must be bandwidth-optimal: %w",
			a.Name, b.Name, ErrPreconditionViolation)
	}
	n := a.N * b.N

	return Entry{
		N:         n,
		D:         a.D + b.D,
		Name:      fmt.Sprintf("Car(%s, %s)", a.Name, b.Name),
		TL:        a.TL + b.TL,
		TB:        OptimalTB(n),
		BWOptimal: true,
		NestLevel: max(a.NestLevel, b.NestLevel) + 1,
	}, nil
}

// CartesianPowerBound is the Entry of the k-th Cartesian power of e:
// N^k nodes, degree k·d, TL·k, and TB rescaled from (N−1)/N to
// (N^k−1)/N^k. Bandwidth optimality is inherited.
func CartesianPowerBound(e Entry, k int) (Entry, error) {
	if k < 2 {
		return Entry{}, fmt.Errorf("CartesianPowerBound: k=%d < 2: %w", k, ErrInvalidArgument)
	}
	if e.N < 2 {
		return Entry{}, fmt.Errorf("CartesianPowerBound: N=%d < 2: %w", e.N, ErrInvalidArgument)
	}
	nk := 1
	for i := 0; i < k; i++ {
		if nk > math.MaxInt32/e.N {
			return Entry{}, fmt.Errorf("CartesianPowerBound: %d^%d overflows: %w", e.N, k, ErrInvalidArgument)
		}
		nk *= e.N
	}
	n := float64(e.N)

	return Entry{
		N:         nk,
		D:         k * e.D,
		Name:      fmt.Sprintf("Car(%d, %s)", k, e.Name),
		TL:        k * e.TL,
		TB:        e.TB * n / (n - 1) * float64(nk-1) / float64(nk),
		BWOptimal: e.BWOptimal,
		NestLevel: e.NestLevel + 1,
	}, nil
}
