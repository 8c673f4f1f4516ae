// SPDX-License-Identifier: MIT
// Package domirank computes DomiRank centrality — a dynamical notion of
// node importance in which every vertex competes with its neighbours for
// a bounded amount of "dominance". High scores mark vertices that
// dominate their neighbourhood; strongly negative scores mark vertices
// crowded out by dominant neighbours.
//
// # Model
//
// Given an adjacency matrix A over N vertices and a competition level
// σ ∈ [0, 1/|λmin|), the DomiRank vector Γ is the fixed point of
//
//	dΓ/dt = σ·A·(1 − Γ) − Γ
//
// which in closed form solves the sparse linear system
//
//	(σ·A + I)·Γ = σ·A·1.
//
// λmin is the most negative eigenvalue of A. The caller supplies σ as a
// fraction of the valid range; the solver rescales it internally by
// 1/|λmin| using a biased bisection over trial integrations.
//
// # Usage
//
//	g := core.NewGraph()
//	g.AddEdge("a", "b", 0)
//	g.AddEdge("b", "c", 0)
//
//	res, err := domirank.DomiRank(g, domirank.WithSigma(0.9))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Scores["b"], res.Converged)
//
// Two execution modes are available:
//
//   - Iterative (default): explicit-Euler integration of the dynamical
//     system in float32 arithmetic, with divergence detection. Reports
//     Converged or Diverged in Result.Converged.
//
//   - Analytical (WithAnalytical): direct solve of the closed-form
//     system in float64. Result.Converged is NotApplicable.
//
// All inputs are validated up front and rejected with sentinel errors
// (ErrNilGraph, ErrBadDt, ErrSuperchargedSigma, ...) matchable via
// errors.Is. Non-fatal conditions — very large graphs, supercharged σ in
// analytical mode — surface as advisory strings in Result.Warnings.
//
// Determinism: vertex ordering is lexicographic and every loop order is
// fixed, so identical graphs and options always produce identical
// results. A Graph is safe for concurrent reads; DomiRank itself only
// reads the graph.
//
// Subpackages:
//
//	core/   — thread-safe Graph, Edge primitives and mutation policies
//	matrix/ — CSR sparse storage, adjacency extraction, LU linear solve
package domirank
