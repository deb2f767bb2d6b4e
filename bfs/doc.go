// Package bfs provides breadth-first search over a directed core.Graph,
// plus the hop-distance machinery the schedule solver is built on.
//
// What
//
//   - From explores vertices layer by layer from a start vertex, following
//     edges in their direction only, and returns the hop count of every
//     reached vertex.
//   - AllPairs runs From for every vertex and returns Distances, where
//     d[v][u] is the length of the shortest directed path v→u.
//   - StronglyConnected checks that every vertex reaches every other one,
//     delegating to gonum's Tarjan SCC on a simple.DirectedGraph view.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - From:              O(V + E) time, O(V) memory
//   - AllPairs:          O(V·(V + E)) time, O(V²) memory
//   - StronglyConnected: O(V + E)
//
// Usage
//
//	d, err := bfs.AllPairs(ctx, g)
//	if err != nil {
//		// ErrGraphNil, ErrNeighbors or the context error
//	}
//	fmt.Println(d.Diameter())
package bfs
