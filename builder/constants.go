// Package builder defines shared constants used by the topology generators.
package builder

// Method names used to prefix constructor errors.
const (
	MethodRing              = "Ring"
	MethodCirculant         = "Circulant"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGeneralizedKautz  = "GeneralizedKautz"
	MethodTorus             = "Torus"
)

// MinRingNodes is the smallest ring; with two nodes the undirected ring is
// the pair 0⇄1.
const MinRingNodes = 2

// MinCompleteNodes is the smallest complete graph (a single isolated vertex).
const MinCompleteNodes = 1

// MinPartitionSize is the smallest side of a complete bipartite graph.
const MinPartitionSize = 1

// MinKautzDegree and MinKautzNodes bound GeneralizedKautz(d, m).
const (
	MinKautzDegree = 1
	MinKautzNodes  = 1
)
