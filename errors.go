// SPDX-License-Identifier: MIT
// Package domirank: sentinel errors.
//
// Every rejection is raised at the entry point, before any matrix is
// scaled or any iteration started. Match with errors.Is.

package domirank

import "errors"

var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("domirank: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("domirank: graph has no vertices")

	// ErrNoEdges is returned when the spectral search needs at least one
	// edge to scale its probe and the graph has none.
	ErrNoEdges = errors.New("domirank: graph has no edges")

	// ErrCheckStepTooSmall is returned when CheckStep < 5 — too few
	// samples to detect a three-point increasing divergence run.
	ErrCheckStepTooSmall = errors.New("domirank: check step below minimum of 5")

	// ErrCheckStepTooLarge is returned when CheckStep > MaxIter — the
	// sampling interval cannot exceed its own iteration budget.
	ErrCheckStepTooLarge = errors.New("domirank: check step exceeds max iterations")

	// ErrBadDt is returned when Dt lies outside (0, 1].
	ErrBadDt = errors.New("domirank: dt must be in (0, 1]")

	// ErrBadEpsilon is returned when Epsilon is negative.
	ErrBadEpsilon = errors.New("domirank: epsilon must be non-negative")

	// ErrNegativeSigma is returned when Sigma < 0, regardless of mode.
	ErrNegativeSigma = errors.New("domirank: sigma must be non-negative")

	// ErrSuperchargedSigma is returned when Sigma > 1 in iterative mode;
	// the dynamical system is guaranteed to diverge there. Analytical
	// mode accepts such sigmas with an advisory warning instead.
	ErrSuperchargedSigma = errors.New("domirank: sigma above 1 diverges in iterative mode")
)
