// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building and querying weighted graphs.
//
// Overview:
//
//   - Vertices are identified by non-empty string IDs; enumeration via
//     Vertices() is always lexicographically sorted, so every algorithm
//     built on top of core sees a stable, reproducible vertex order.
//   - Edges carry float64 weights. Weights are only accepted when the
//     graph was constructed with WithWeighted(); unweighted graphs treat
//     every edge as structural (weight 0 at the core level, unit weight
//     at the adjacency level).
//   - Policy flags are fixed at construction time: WithDirected(bool),
//     WithWeighted(), WithLoops(), WithMultiEdges(). Flags are immutable
//     afterwards, which keeps every downstream adapter deterministic.
//
// Concurrency:
//
//   - All mutating and querying methods take an internal sync.RWMutex,
//     so a Graph can be shared across goroutines. Algorithms that take a
//     snapshot (Vertices/Edges) operate on copies and never observe a
//     half-applied mutation.
//
// Errors (sentinel, matched via errors.Is):
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// See matrix.NewAdjacency for exporting a Graph into a sparse adjacency
// matrix aligned with the Vertices() order.
package core
