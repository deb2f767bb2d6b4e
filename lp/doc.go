// Package lp is the linear-programming boundary of the scheduler.
//
// A Problem is stated as
//
//	minimize   cᵀx
//	subject to Σ_j Leq[i].Coef[j]·x_j ≤ Leq[i].RHS
//	           Σ_j Eq[i].Coef[j]·x_j  = Eq[i].RHS
//	           x ≥ 0
//
// and handed to a Solver. Simplex, the bundled implementation, rewrites the
// problem into equality standard form (one slack per ≤ row, rows with a
// negative right-hand side negated, all-zero columns fixed at zero) and runs
// gonum's optimize/convex/lp simplex on a dense matrix.
//
// Outcome classes:
//
//   - Status Optimal, Infeasible or Unbounded with a nil error: the solver
//     ran and reports what it found.
//   - Status Failed with an error wrapping ErrSolverFailure: singular bases,
//     numerical trouble, a panic inside the engine or a timeout.
//
// Solvers are stateless and safe for concurrent use.
package lp
