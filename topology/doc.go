// SPDX-License-Identifier: MIT

// Package topology searches for broadcast-efficient topologies.
//
// Every candidate is summarized by an Entry: node count N, degree d, its
// BFB latency TL (steps) and bandwidth TB (normalized so that (N−1)/N is
// optimal). A Table keeps, per (N, d) bucket, the Pareto frontier of
// entries over (TL, TB) with NestLevel breaking near-ties.
//
// A Finder populates the Table from generator families, hand-curated seeds
// and an optional reference dataset, then grows it with closed-form bounds
// of the expansion operators (LineGraphBound, DegreeBound,
// CartesianProductBound, CartesianPowerBound) without building the
// expanded graphs. MeasureGraph computes the Entry of a concrete graph by
// running the BFB scheduler on it.
//
// The search is sequential: pass 1 relies on buckets being visited in
// ascending N.
package topology
