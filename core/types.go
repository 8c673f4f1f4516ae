// SPDX-License-Identifier: MIT

// Package core: domain types, policy options and sentinel errors.
// This file declares Edge, Graph, GraphOption, the sentinel error set and
// the NewGraph constructor. Query/mutation methods live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To and a float64 Weight.
// For undirected graphs the stored orientation is the insertion order;
// adapters mirror it when materializing matrices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the strength of the link. Always 0 on unweighted graphs.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected, weighted vs. unweighted graphs,
// optional parallel edges (multi-edges) and optional self-loops.
// mu protects the vertex catalog, the edge list and the adjacency index.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags (immutable after NewGraph).
	directed   bool // edge orientation
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage.
	nextEdgeID uint64              // monotonically increasing edge ID source
	vertices   map[string]struct{} // vertex catalog
	edges      []*Edge             // edges in insertion order

	// adjacency[from][to] = number of parallel edges stored in that
	// orientation; used for HasEdge and multi-edge rejection.
	adjacency map[string]map[string]int
}

// NewGraph creates an empty Graph with the given policy options.
// By default a Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
