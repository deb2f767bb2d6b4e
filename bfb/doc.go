// Package bfb computes breadth-first-broadcast (BFB) schedules.
//
// For a directed graph G, every vertex holds one shard that all other
// vertices must receive. At step t, destination u receives the shards of its
// sources S(t,u) = {v : dist(v,u) = t} through its in-neighbors w, and a
// shard may travel through w only if w already holds it (dist(v,w) = t−1).
// For each (t, u) the split of every source over the admissible vias is
// chosen by a linear program that minimizes the largest per-via load U:
//
//	minimize   U
//	subject to Σ_v x[v,w] ≤ U        for each via w
//	           Σ_w x[v,w] = 1        for each source v
//	           x ≥ 0, U ≥ 0
//
// All (t, u) programs are independent; Compute dispatches them to a bounded
// errgroup pool and merges the results under a single mutex.
//
// Failure policy
//
//   - A solver error or a non-optimal status drops only that (t, u) entry.
//   - A (t, u) where some source has no admissible via is skipped.
//   - Transfers at or below the epsilon (default 1e-5) are discarded; an
//     entry with nothing left is dropped.
//   - Only cancellation of the caller's context aborts the run.
//
// Observability: a logr.Logger (silent by default) and an optional
// metrics.Registry receive per-solve outcomes.
package bfb
