// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex/edge lifecycle and deterministic query surface.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - Edges() returns a copy of the edge list in insertion order.
//
// Concurrency:
//   - Every method acquires g.mu; snapshots are copies, safe to retain.

package core

import (
	"sort"
	"strconv"
)

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID when id == "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an edge from→to with the given weight, auto-creating
// missing endpoints. The generated edge ID is returned on success.
//
// Policy enforcement (strict sentinels, checked in order):
//   - ErrEmptyVertexID       if either endpoint ID is empty.
//   - ErrBadWeight           if weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed      if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if the (from,to) pair already holds an edge
//     and multi-edges are disabled (undirected graphs treat {from,to} as
//     an unordered pair).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if weight != 0 && !g.weighted {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if !g.allowMulti && g.edgeCountBetween(from, to) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	g.ensureVertex(from)
	g.ensureVertex(to)

	// Mint a stable edge ID from the monotone counter.
	g.nextEdgeID++
	id := "e" + strconv.FormatUint(g.nextEdgeID, 10)

	g.edges = append(g.edges, &Edge{ID: id, From: from, To: to, Weight: weight})
	g.bumpAdjacency(from, to)
	if !g.directed && from != to {
		g.bumpAdjacency(to, from)
	}

	return id, nil
}

// HasEdge reports whether at least one edge exists in the stored
// orientation from→to (for undirected graphs both orientations match).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCountBetween(from, to) > 0
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// The returned slice is a copy owned by the caller.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Edges returns a copy of the edge list in insertion order.
// Edge pointers are shared; edges are immutable by convention.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of stored edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports whether edges are directed. Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero weights are permitted. Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted. Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted. Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// ensureVertex registers id in the vertex catalog. Caller holds g.mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = struct{}{}
	}
}

// bumpAdjacency increments the parallel-edge counter for from→to.
// Caller holds g.mu.
func (g *Graph) bumpAdjacency(from, to string) {
	bucket, ok := g.adjacency[from]
	if !ok {
		bucket = make(map[string]int)
		g.adjacency[from] = bucket
	}
	bucket[to]++
}

// edgeCountBetween returns the stored edge count for from→to.
// Caller holds g.mu (read or write).
func (g *Graph) edgeCountBetween(from, to string) int {
	if bucket, ok := g.adjacency[from]; ok {
		return bucket[to]
	}

	return 0
}
