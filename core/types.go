// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, GraphOption, sentinel errors and NewGraph.
// Concurrency:
//   - mu guards vertices, out, in and edgeCount.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the edge from→to already exists.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed link From→To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed graph without parallel edges.
//
// out[v] holds the successors of v and in[v] its predecessors; both maps have
// a (possibly empty) bucket for every registered vertex.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	vertices  map[string]struct{}
	out       map[string]map[string]struct{}
	in        map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty directed Graph. Loops are rejected unless
// WithLoops is given.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]struct{}),
		in:       make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
