// Package topocast computes bandwidth-optimal broadcast (BFB) schedules on
// directed network topologies and searches for topologies that sit on the
// latency/bandwidth Pareto frontier.
//
// The module is organized in small packages:
//
//	core/       directed Graph keyed by string IDs, natural ID ordering, tuple IDs
//	builder/    generators: rings, circulants, complete, bipartite, Kautz, torus
//	bfs/        hop distances, diameter and strong connectivity
//	lp/         linear-program model and the simplex solver (gonum)
//	schedule/   Schedule type, lower bound, validation, report and codec
//	bfb/        per-step LP construction and concurrent solving
//	expansion/  line-graph, degree and Cartesian-product expansions
//	pareto/     generic three-key Pareto frontier
//	topology/   catalogue of (N, d) buckets and the expansion search
//	metrics/    Prometheus counters for solves and search passes
//	config/     YAML/JSON run configuration with validation
//	cmd/topocast command-line entry point
//
// Quick example:
//
//	g, _ := builder.Build(builder.Ring(6, false))
//	s, _ := bfb.Compute(ctx, g)
//	schedule.Fprint(os.Stdout, s, false) // total T: 3, U: 2.5000
package topocast
