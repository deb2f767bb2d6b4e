// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Problem, Row, Status, Result, Solver and sentinel errors.

package lp

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrSolverFailure marks an internal failure of the LP engine.
	ErrSolverFailure = errors.New("lp: solver failure")

	// ErrInvalidProblem marks a malformed Problem (bad index, size mismatch).
	ErrInvalidProblem = errors.New("lp: invalid problem")
)

// Status is the outcome class of a solve.
type Status int

const (
	// Failed means the engine could not produce an answer.
	Failed Status = iota
	// Optimal means X minimizes the objective.
	Optimal
	// Infeasible means no x ≥ 0 satisfies the constraints.
	Infeasible
	// Unbounded means the objective decreases without limit.
	Unbounded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return "failed"
	}
}

// Row is one linear constraint: Σ Coef[j]·x_j (≤ or =) RHS.
// Coef is sparse; absent indices have coefficient 0.
type Row struct {
	Coef map[int]float64
	RHS  float64
}

// Problem is a minimization over NumVars non-negative variables.
type Problem struct {
	NumVars int
	// C is the objective; len(C) must equal NumVars.
	C   []float64
	Leq []Row
	Eq  []Row
}

// NewProblem returns an empty problem over n variables with zero objective.
func NewProblem(n int) *Problem {
	return &Problem{NumVars: n, C: make([]float64, n)}
}

// AddLeq appends Σ coef·x ≤ rhs.
func (p *Problem) AddLeq(coef map[int]float64, rhs float64) {
	p.Leq = append(p.Leq, Row{Coef: coef, RHS: rhs})
}

// AddEq appends Σ coef·x = rhs.
func (p *Problem) AddEq(coef map[int]float64, rhs float64) {
	p.Eq = append(p.Eq, Row{Coef: coef, RHS: rhs})
}

// Validate checks sizes and variable indices.
func (p *Problem) Validate() error {
	if p.NumVars < 1 {
		return fmt.Errorf("Validate: NumVars=%d: %w", p.NumVars, ErrInvalidProblem)
	}
	if len(p.C) != p.NumVars {
		return fmt.Errorf("Validate: len(C)=%d, NumVars=%d: %w", len(p.C), p.NumVars, ErrInvalidProblem)
	}
	check := func(kind string, rows []Row) error {
		for i, r := range rows {
			for j := range r.Coef {
				if j < 0 || j >= p.NumVars {
					return fmt.Errorf("Validate: %s row %d references x%d: %w", kind, i, j, ErrInvalidProblem)
				}
			}
		}
		return nil
	}
	if err := check("leq", p.Leq); err != nil {
		return err
	}

	return check("eq", p.Eq)
}

// Result is the outcome of a solve. X and Objective are meaningful only
// when Status is Optimal.
type Result struct {
	Status    Status
	X         []float64
	Objective float64
}

// Solver solves a Problem. A non-nil error means the engine failed; a
// non-optimal Status alone is not an error.
type Solver interface {
	Solve(ctx context.Context, p *Problem) (Result, error)
}
