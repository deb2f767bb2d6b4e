// SPDX-License-Identifier: MIT
//
// File: simplex.go
// Role: Solver backed by gonum's dense simplex (optimize/convex/lp).
// Concurrency:
//   - Simplex holds only configuration; Solve may run from many goroutines.

package lp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	glp "gonum.org/v1/gonum/optimize/convex/lp"
)

// DefaultTolerance is the simplex pivot/optimality tolerance.
const DefaultTolerance = 1e-10

// Simplex solves problems with gonum's simplex method.
type Simplex struct {
	tol     float64
	timeout time.Duration
}

// Option configures a Simplex.
type Option func(*Simplex)

// WithTolerance overrides DefaultTolerance. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(s *Simplex) {
		if tol > 0 {
			s.tol = tol
		}
	}
}

// WithTimeout bounds a single Solve call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Simplex) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// NewSimplex returns a gonum-backed Solver.
func NewSimplex(opts ...Option) *Simplex {
	s := &Simplex{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// standard is a Problem rewritten as min cᵀy, Ay = b, y ≥ 0.
type standard struct {
	c      []float64
	a      *mat.Dense
	b      []float64
	active []int // active[k] = original index of column k (k < len(active))
	n      int   // original NumVars
}

type outcome struct {
	res Result
	err error
}

// Solve implements Solver.
func (s *Simplex) Solve(ctx context.Context, p *Problem) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{Status: Failed}, fmt.Errorf("Solve: %w", err)
	}
	std, status := s.standardize(p)
	switch status {
	case Infeasible, Unbounded:
		return Result{Status: status}, nil
	case Optimal:
		// every variable was fixed at zero; nothing left to pivot
		return Result{Status: Optimal, X: make([]float64, p.NumVars)}, nil
	}
	rows, cols := std.a.Dims()
	if rows > cols {
		return Result{Status: Failed}, fmt.Errorf("Solve: %d rows > %d columns: %w", rows, cols, ErrSolverFailure)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{res: Result{Status: Failed}, err: fmt.Errorf("Solve: engine panic: %v: %w", r, ErrSolverFailure)}
			}
		}()
		ch <- s.run(std)
	}()

	select {
	case <-ctx.Done():
		return Result{Status: Failed}, fmt.Errorf("Solve: %w: %w", ErrSolverFailure, ctx.Err())
	case out := <-ch:
		return out.res, out.err
	}
}

// run calls the gonum engine and maps its outcome.
func (s *Simplex) run(std *standard) outcome {
	optF, optY, err := glp.Simplex(std.c, std.a, std.b, s.tol, nil)
	switch {
	case err == nil:
	case errors.Is(err, glp.ErrInfeasible):
		return outcome{res: Result{Status: Infeasible}}
	case errors.Is(err, glp.ErrUnbounded):
		return outcome{res: Result{Status: Unbounded}}
	default:
		return outcome{res: Result{Status: Failed}, err: fmt.Errorf("Solve: %v: %w", err, ErrSolverFailure)}
	}

	x := make([]float64, std.n)
	for k, j := range std.active {
		x[j] = optY[k]
	}

	return outcome{res: Result{Status: Optimal, X: x, Objective: optF}}
}

// standardize builds the equality form. The returned status is Failed when
// a standard problem was produced, otherwise the problem was decided while
// standardizing (Optimal means no variable survived).
func (s *Simplex) standardize(p *Problem) (*standard, Status) {
	used := make([]bool, p.NumVars)
	mark := func(rows []Row) {
		for _, r := range rows {
			for j, v := range r.Coef {
				if v != 0 {
					used[j] = true
				}
			}
		}
	}
	mark(p.Leq)
	mark(p.Eq)

	col := make(map[int]int, p.NumVars)
	var active []int
	for j := 0; j < p.NumVars; j++ {
		if used[j] {
			col[j] = len(active)
			active = append(active, j)
			continue
		}
		if p.C[j] < 0 {
			return nil, Unbounded
		}
	}

	type denseRow struct {
		coef  []float64
		rhs   float64
		slack bool
	}
	var rows []denseRow
	nSlack := 0
	for _, r := range p.Leq {
		coef := make([]float64, len(active))
		for j, v := range r.Coef {
			if v != 0 {
				coef[col[j]] = v
			}
		}
		rows = append(rows, denseRow{coef: coef, rhs: r.RHS, slack: true})
		nSlack++
	}
	for _, r := range p.Eq {
		coef := make([]float64, len(active))
		nonzero := false
		for j, v := range r.Coef {
			if v != 0 {
				coef[col[j]] = v
				nonzero = true
			}
		}
		if !nonzero {
			if math.Abs(r.RHS) > s.tol {
				return nil, Infeasible
			}
			continue
		}
		rows = append(rows, denseRow{coef: coef, rhs: r.RHS})
	}
	if len(active) == 0 {
		for _, r := range rows {
			if r.rhs < -s.tol {
				return nil, Infeasible
			}
		}
		return nil, Optimal
	}

	cols := len(active) + nSlack
	a := mat.NewDense(len(rows), cols, nil)
	b := make([]float64, len(rows))
	slackCol := len(active)
	for i, r := range rows {
		sign := 1.0
		if r.rhs < 0 {
			sign = -1
		}
		for k, v := range r.coef {
			if v != 0 {
				a.Set(i, k, sign*v)
			}
		}
		if r.slack {
			a.Set(i, slackCol, sign)
			slackCol++
		}
		b[i] = sign * r.rhs
	}

	c := make([]float64, cols)
	for k, j := range active {
		c[k] = p.C[j]
	}

	return &standard{c: c, a: a, b: b, active: active, n: p.NumVars}, Failed
}
