// SPDX-License-Identifier: MIT

// Package builder constructs deterministic graph fixtures for DomiRank
// experiments and tests.
//
// A Constructor is a composable mutation applied to a fresh core.Graph
// by the single orchestrator, Build. Topology families cover the shapes
// whose DomiRank behaviour is well understood: paths and cycles
// (near-regular, weak competition gradients), stars and wheels (one
// dominant hub with submissive leaves), complete graphs (uniform
// stalemate), grids and seeded sparse random graphs.
//
// Determinism: identical options, seed and constructor order always
// produce identical graphs. Stochastic constructors require a seed via
// WithSeed and fail with ErrNeedRandSource otherwise.
//
//	g, err := builder.Build(nil, nil, builder.Star(8))
//	if err != nil { ... }
//	res, err := domirank.DomiRank(g)
//
// All validation failures are sentinel errors matchable with errors.Is;
// constructors never panic.
package builder
