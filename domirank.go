// SPDX-License-Identifier: MIT
// Package domirank: solver entry point.

package domirank

import (
	"math"

	"github.com/katalvlaran/domirank/core"
	"github.com/katalvlaran/domirank/matrix"
)

// DomiRank computes DomiRank centrality for every vertex of g.
//
// Stage 1 (Validate): reject nil/empty graphs and out-of-range knobs
// with sentinel errors before any matrix work; collect advisory
// warnings for conditions that degrade but do not invalidate the run.
// Stage 2 (Normalize): locate λmin via the spectral bound search and
// rescale the caller's sigma to σ = |sigma/λmin|.
// Stage 3 (Solve): integrate the dynamical system (iterative mode) or
// solve (σA+I)·Γ = σA·1 directly (analytical mode).
// Stage 4 (Assemble): zip scores back to vertex IDs in the matrix's
// lexicographic order.
//
// The returned Result carries the normalized sigma, the convergence
// verdict (NotApplicable for analytical runs) and any warnings.
// Identical graphs and options always produce identical results.
func DomiRank(g *core.Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return Result{}, ErrEmptyGraph
	}
	if o.CheckStep < 5 {
		return Result{}, ErrCheckStepTooSmall
	}
	if o.CheckStep > o.MaxIter {
		return Result{}, ErrCheckStepTooLarge
	}
	if o.Dt <= 0 || o.Dt > 1 {
		return Result{}, ErrBadDt
	}
	if o.Epsilon < 0 {
		return Result{}, ErrBadEpsilon
	}
	if o.Sigma < 0 {
		return Result{}, ErrNegativeSigma
	}
	if o.Sigma > 1 && !o.Analytical {
		return Result{}, ErrSuperchargedSigma
	}

	var warnings []string
	if o.Analytical && g.VertexCount() > largeGraphThreshold {
		warnings = append(warnings, WarnLargeGraph)
	}
	if o.Analytical && o.Sigma > 1 {
		warnings = append(warnings, WarnSuperchargedSigma)
	}

	adj, err := matrix.NewAdjacency(g)
	if err != nil {
		return Result{}, err
	}

	// The spectral search always runs iteratively, in both modes.
	lambda, err := smallestEigenvalue(adj.Mat, o.Dt, o.Epsilon, o.MaxIter, o.CheckStep)
	if err != nil {
		return Result{}, err
	}
	sigma := math.Abs(o.Sigma / lambda)

	ids := adj.IDs()
	res := Result{
		Scores:    make(map[string]float64, len(ids)),
		Sigma:     sigma,
		Warnings:  warnings,
		Converged: NotApplicable,
	}

	if o.Analytical {
		gamma, err := solveAnalytical(adj.Mat, sigma)
		if err != nil {
			return Result{}, err
		}
		for i, id := range ids {
			res.Scores[id] = gamma[i]
		}

		return res, nil
	}

	psi, converged := integrate(adj.Mat, sigma, o.Dt, o.Epsilon, o.MaxIter, o.CheckStep)
	if converged {
		res.Converged = Converged
	} else {
		res.Converged = Diverged
	}
	for i, id := range ids {
		res.Scores[id] = float64(psi[i])
	}

	return res, nil
}

// solveAnalytical solves the closed-form system (σA + I)·Γ = σA·1 in
// float64 via sparse assembly and a dense LU solve.
func solveAnalytical(a *matrix.CSR, sigma float64) ([]float64, error) {
	scaled, err := matrix.Scale(a, sigma)
	if err != nil {
		return nil, err
	}
	eye, err := matrix.Identity(a.Rows())
	if err != nil {
		return nil, err
	}
	system, err := matrix.Add(scaled, eye)
	if err != nil {
		return nil, err
	}

	// Right-hand side: σA·1, i.e. the σ-scaled row sums of A.
	rhs, err := matrix.RowSums(scaled)
	if err != nil {
		return nil, err
	}

	return matrix.SolveVec(system, rhs)
}
