// Package core provides the directed, thread-safe in-memory Graph that every
// other topocast package builds on.
//
// A topology G = (V,E) is a directed graph without parallel edges. Vertices
// are identified by strings; generators use decimal IDs ("0","1",...) and the
// expansion operators compose IDs into tuples such as "(3,1)" or
// "((0,1),(1,2))" through Tuple. Self-loops are rejected unless the graph was
// created WithLoops (generalized Kautz graphs need them).
//
// Determinism:
//
//	Vertices(), Edges(), Successors() and Predecessors() return results sorted
//	by CompareIDs, a natural order in which digit runs compare numerically
//	("2" < "10") and tuples compare component-wise. Schedules, reports and
//	tests rely on this order.
//
// Concurrency:
//
//	A single sync.RWMutex guards the vertex catalog and both adjacency maps.
//	Graphs are built once by a generator or an expansion operator and only read
//	afterwards, so the read path dominates and takes the shared lock.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop on a graph created without WithLoops.
//	ErrMultiEdgeNotAllowed - edge from→to already present.
//
// Complexity (V = |Vertices|, E = |Edges|):
//
//	AddVertex, AddEdge, HasEdge    O(1) amortized
//	Successors, Predecessors       O(d log d)
//	Vertices                       O(V log V)
//	Edges                          O(E log E)
//	Clone                          O(V + E)
package core
