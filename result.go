// SPDX-License-Identifier: MIT
// Package domirank: result types.

package domirank

// Convergence describes how an iterative run ended. Analytical runs
// report NotApplicable because no integration took place.
type Convergence int

const (
	// NotApplicable marks analytical runs, which do not iterate.
	NotApplicable Convergence = iota

	// Diverged marks an iterative run whose update magnitudes grew
	// across three consecutive samples.
	Diverged

	// Converged marks an iterative run whose total update magnitude
	// fell below the tolerance boundary.
	Converged
)

// String implements fmt.Stringer.
func (c Convergence) String() string {
	switch c {
	case Diverged:
		return "diverged"
	case Converged:
		return "converged"
	default:
		return "not applicable"
	}
}

// Advisory warning texts appended to Result.Warnings. Non-fatal: the
// computation proceeds with the caller's parameters unchanged.
const (
	// WarnSuperchargedSigma is emitted in analytical mode for sigma > 1,
	// which lies outside the theoretically stable range.
	WarnSuperchargedSigma = "sigma above 1 is outside the stable range; analytical solution may be unreliable"

	// WarnLargeGraph is emitted when the analytical dense solve is
	// requested for a graph above the size threshold.
	WarnLargeGraph = "graph exceeds 5000 vertices; analytical solve may be slow, consider iterative mode"
)

// Result is the outcome of a DomiRank computation.
type Result struct {
	// Scores maps every vertex ID to its DomiRank centrality.
	Scores map[string]float64

	// Sigma is the normalized competition level actually used:
	// |Options.Sigma / λmin|.
	Sigma float64

	// Converged reports how the iterative integration ended;
	// NotApplicable for analytical runs.
	Converged Convergence

	// Warnings lists non-fatal advisory conditions observed during
	// validation, in the order they were detected. Empty on clean runs.
	Warnings []string
}
