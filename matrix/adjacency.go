// SPDX-License-Identifier: MIT
// Package matrix: adjacency extraction from core.Graph.
//
// Adjacency fixes the vertex ordering once (lexicographic by vertex ID)
// so every downstream kernel — matrix-vector products, linear solves,
// score assembly — observes the same deterministic index space.

package matrix

import (
	"github.com/katalvlaran/domirank/core"
)

// Adjacency couples a CSR adjacency matrix with the vertex ordering that
// produced it.
//
//   - Mat[i][j] holds the weight of the edge from vertex index i to j
//     (1.0 per edge in unweighted mode).
//   - VertexIndex maps vertex ID → row/column index.
//   - Ordering is lexicographic by vertex ID, so identical graphs always
//     yield identical matrices.
type Adjacency struct {
	Mat           *CSR           // n×n sparse adjacency
	VertexIndex   map[string]int // vertex ID → matrix index
	vertexByIndex []string       // matrix index → vertex ID
}

// NewAdjacency extracts the adjacency matrix of g.
//
// Semantics:
//   - nil graph → ErrGraphNil; multigraphs → ErrMultiEdge.
//   - Unweighted graphs store 1.0 per edge; weighted graphs store the
//     edge weight.
//   - Undirected edges are mirrored into both (i, j) and (j, i);
//     self-loops are stored once.
//
// Complexity: O(V log V + E) time, O(V + E) space.
func NewAdjacency(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Multigraph() {
		return nil, ErrMultiEdge
	}

	ids := g.Vertices() // sorted lexicographically
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	edges := g.Edges()
	entries := make([]Entry, 0, 2*len(edges))
	for _, e := range edges {
		w := e.Weight
		if !g.Weighted() {
			w = 1.0
		}
		i, j := idx[e.From], idx[e.To]
		entries = append(entries, Entry{Row: i, Col: j, Val: w})
		if !g.Directed() && i != j {
			entries = append(entries, Entry{Row: j, Col: i, Val: w})
		}
	}

	mat, err := NewCSR(len(ids), len(ids), entries)
	if err != nil {
		return nil, err
	}

	return &Adjacency{Mat: mat, VertexIndex: idx, vertexByIndex: ids}, nil
}

// IDs returns the vertex IDs in matrix-index order (a defensive copy).
func (a *Adjacency) IDs() []string {
	out := make([]string, len(a.vertexByIndex))
	copy(out, a.vertexByIndex)

	return out
}
