// Package builder provides deterministic generators for the directed
// interconnection topologies the scheduler and the topology search work on.
//
// The package follows a single pattern: every topology is a Constructor,
// a closure validated up front that mutates a core.Graph, and BuildGraph
// composes constructors under one resolved builderConfig.
//
// Generators:
//
//   - Ring(n, directed):            0→1→…→n−1→0, plus reverses when undirected.
//   - Circulant(n, gens, directed): i→i±a mod n for each generator a.
//   - Complete(n):                  every ordered pair i≠j.
//   - CompleteBipartite(n1, n2):    L_i⇄R_j for all i, j.
//   - GeneralizedKautz(d, m):       x→(−d·x−a) mod m, a = 1..d (may loop).
//   - Torus(dims...):               Cartesian product of undirected rings.
//
// Options:
//
//   - WithIDScheme / WithSymbNumb / WithHexIDs relabel index-based vertices.
//   - WithPartitionPrefix sets the bipartite side prefixes (default "L"/"R").
//
// Guarantees:
//
//   - Set semantics: a repeated edge is silently ignored.
//   - Validation errors are sentinels (ErrTooFewVertices, ErrInvalidArgument)
//     wrapped with the constructor name.
//   - Option constructors panic on nil functions; constructors never panic.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Ring(6, false))
//	kautz, err := builder.Build(builder.GeneralizedKautz(3, 16))
package builder
