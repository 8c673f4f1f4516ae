// SPDX-License-Identifier: MIT
// Package domirank: spectral bound search.
//
// The most negative eigenvalue λmin of the adjacency matrix bounds the
// stable competition range. Rather than a full eigendecomposition, the
// search exploits the integrator itself: the dynamical system converges
// for σ < 1/|λmin| and diverges beyond it, so a bisection over trial
// integrations brackets the boundary. The bracket shrinks asymmetrically
// on divergence because detecting divergence is much cheaper than
// certifying convergence.

package domirank

import (
	"github.com/katalvlaran/domirank/matrix"
)

// smallestEigenvalue approximates λmin(A), the most negative eigenvalue,
// by biased bisection over trial integrations.
//
// Stage 1 (Scale): the first probe is (low+high)/maxAbsRowSum — the
// maximum absolute row sum is a cheap upper bound on |λ|, used purely
// as a scaling heuristic. An edgeless matrix has no scale → ErrNoEdges.
// Stage 2 (Bisect): up to maxIter/5 rounds, stopping early once
// high−low < epsilon. A converged probe raises low; a diverged probe
// pulls high toward the probe by half. Subsequent probes are bracket
// midpoints.
// Stage 3 (Resolve): λmin ≈ −1 / midpoint(low, high).
//
// The bracket width never increases, so the estimate only refines.
func smallestEigenvalue(a *matrix.CSR, dt, epsilon float64, maxIter, checkStep int) (float64, error) {
	scale, err := matrix.MaxAbsRowSum(a)
	if err != nil {
		return 0, err
	}
	if scale == 0 {
		return 0, ErrNoEdges
	}

	var (
		low, high = 0.0, 1.0
		x         = (low + high) / scale
		maxDepth  = maxIter / 5
	)
	for depth := 0; depth < maxDepth; depth++ {
		if high-low < epsilon {
			break
		}
		if _, converged := integrate(a, x, dt, epsilon, maxIter, checkStep); converged {
			low = x
		} else {
			high = (x + high) / 2
		}
		x = (low + high) / 2
	}

	return -1 / ((low + high) / 2), nil
}
