// SPDX-License-Identifier: MIT

// Package expansion derives new topologies from existing ones.
//
// LineGraph and Degree also adapt a BFB schedule of the input analytically,
// so the derived topology gets a valid schedule without solving a single LP.
// CartesianProduct and CartesianPower transform the graph only; a product
// schedule has to be recomputed with package bfb.
//
// Composite vertex IDs are rendered with core.Tuple:
//
//	LineGraph         edge u→v          → "(u,v)"
//	Degree            replica i of v    → "(v,i)"
//	CartesianProduct  u ∈ G1, v ∈ G2    → "(u,v)"
//
// Repeated expansion nests tuples, e.g. "((0,1),2)".
package expansion
