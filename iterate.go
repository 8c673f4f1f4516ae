// SPDX-License-Identifier: MIT
// Package domirank: explicit-Euler integration kernel.
//
// The dynamical system dΓ/dt = σ·A·(1−Γ) − Γ is integrated in float32
// for speed; dt is cast once so no operand silently promotes the state
// vector back to float64. Convergence and divergence are sampled every
// CheckStep steps, convergence checked first.

package domirank

import (
	"github.com/katalvlaran/domirank/matrix"
)

// compressed float32 copy of σ·A, laid out row-major for the kernel.
type scaledAdj struct {
	n      int
	rowLen []int     // nonzeros per row
	colInd []int     // concatenated column indices
	data   []float32 // concatenated σ-scaled values
}

// newScaledAdj scales a by sigma into a fresh float32 structure;
// a itself is never touched.
func newScaledAdj(a *matrix.CSR, sigma float64) *scaledAdj {
	s := &scaledAdj{
		n:      a.Rows(),
		rowLen: make([]int, a.Rows()),
		colInd: make([]int, 0, a.NNZ()),
		data:   make([]float32, 0, a.NNZ()),
	}
	var i int
	for i = 0; i < s.n; i++ {
		cols, vals, _ := a.Row(i) // i is always in range here
		s.rowLen[i] = len(cols)
		s.colInd = append(s.colInd, cols...)
		for _, v := range vals {
			s.data = append(s.data, float32(sigma*v))
		}
	}

	return s
}

// integrate runs the explicit-Euler fixed-point iteration and reports
// the final state vector together with a convergence verdict.
//
// Semantics:
//   - Ψ starts uniform at 1/N.
//   - Per step: Δ = (σA·(1−Ψ) − Ψ)·dt, then Ψ ← Ψ + Δ.
//   - Every checkStep steps, stop with converged=true once
//     Σ|Δ| < epsilon·N·dt; otherwise sample max(Δ) and stop with
//     converged=false when the last three samples are strictly
//     increasing and the latest is positive (a decaying system walks
//     its negative updates toward zero — growth there is convergence,
//     not blow-up).
//   - Exhausting maxIter without a verdict reports converged=true.
//
// Only the last two samples are retained; a three-point increasing run
// is detectable without the full history.
//
// Complexity: O(maxIter·nnz) time, O(N + nnz) space.
func integrate(a *matrix.CSR, sigma, dt, epsilon float64, maxIter, checkStep int) ([]float32, bool) {
	sA := newScaledAdj(a, sigma)
	n := sA.n
	step := float32(dt)
	boundary := epsilon * float64(n) * float64(step)

	psi := make([]float32, n)
	delta := make([]float32, n)
	for i := range psi {
		psi[i] = 1.0 / float32(n)
	}

	var (
		prev1, prev2 float32 // last two sampled maxima
		samples      int     // how many maxima have been recorded
		i, r, k, off int
		acc          float32
	)
	for i = 0; i < maxIter; i++ {
		off = 0
		for r = 0; r < n; r++ {
			acc = 0
			for k = 0; k < sA.rowLen[r]; k++ {
				acc += sA.data[off] * (1 - psi[sA.colInd[off]])
				off++
			}
			delta[r] = (acc - psi[r]) * step
		}
		for r = 0; r < n; r++ {
			psi[r] += delta[r]
		}

		if i%checkStep != 0 {
			continue
		}

		var sumAbs, cur float32
		cur = delta[0]
		for r = 0; r < n; r++ {
			d := delta[r]
			if d < 0 {
				sumAbs -= d
			} else {
				sumAbs += d
			}
			if d > cur {
				cur = d
			}
		}
		if float64(sumAbs) < boundary {
			return psi, true
		}
		if samples >= 2 && cur > 0 && cur > prev1 && prev1 > prev2 {
			return psi, false
		}
		prev2, prev1 = prev1, cur
		samples++
	}

	return psi, true
}
