// Package schedule defines the broadcast schedule value type produced by the
// BFB solver and the expansion operators, together with its reporting
// boundary.
//
// A Schedule maps a communication step t (1-based) and a destination u to an
// Entry: the fractions of each source's shard that reach u at step t through
// each in-neighbor (via) of u, plus the step's normalized per-link load U.
//
// What
//
//   - Summarize: (TL, TB) = (number of steps, Σ_t max_u LoadU).
//   - Bound:     the lower bound (diameter, (N−1)/d) of an in-regular,
//     strongly connected graph.
//   - Validate:  per-source fractions sum to 1, per-via sums stay ≤ LoadU.
//   - Fprint:    the human-readable per-step report.
//   - Encode/Decode, WriteFile/ReadFile: YAML (or JSON by file extension).
//
// Determinism
//
//	Steps ascend, destinations and transfer keys follow core.CompareIDs, so
//	reports and encodings are byte-stable for equal schedules.
//
// Concurrency
//
//	A Schedule is a plain map: safe for concurrent reads, not for writes.
package schedule
