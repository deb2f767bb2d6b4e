// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Validate checks the per-entry invariants of a Schedule.

package schedule

import (
	"fmt"
	"math"
)

// Validate checks every (t, u) entry of s:
//   - for each source, the fractions over its vias sum to 1 within eps;
//   - for each via, the fractions routed through it sum to at most LoadU+eps.
//
// The first violation found (in step, then destination order) is returned
// wrapped around ErrInvariantViolation.
func Validate(s Schedule, eps float64) error {
	for _, t := range s.Steps() {
		for _, u := range s.Destinations(t) {
			e := s[t][u]
			perSource := make(map[string]float64)
			for k, f := range e.Transfers {
				if f < -eps {
					return fmt.Errorf("Validate: t=%d u=%s: negative fraction %g for %v: %w",
						t, u, f, k, ErrInvariantViolation)
				}
				perSource[k.From] += f
			}
			for src, sum := range perSource {
				if math.Abs(sum-1) > eps {
					return fmt.Errorf("Validate: t=%d u=%s: source %s sums to %.6f: %w",
						t, u, src, sum, ErrInvariantViolation)
				}
			}
			for via, load := range e.ViaLoads() {
				if load > e.LoadU+eps {
					return fmt.Errorf("Validate: t=%d u=%s: via %s carries %.6f > U=%.6f: %w",
						t, u, via, load, e.LoadU, ErrInvariantViolation)
				}
			}
		}
	}

	return nil
}
