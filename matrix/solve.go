// SPDX-License-Identifier: MIT
// Package matrix: direct linear solve for square sparse systems.
//
// SolveVec densifies the system and runs a Doolittle LU factorization
// without pivoting, then forward/back substitution. Intended for the
// well-conditioned diagonally shifted systems this library produces;
// a zero pivot surfaces as ErrSingular rather than being repaired.

package matrix

import "math"

// pivotEps is the zero-pivot threshold for the LU factorization.
const pivotEps = 1e-12

// SolveVec solves a·x = b for a square matrix a and dense vector b.
//
// Stage 1 (Validate): a non-nil and square, len(b) == a.Rows().
// Stage 2 (Factorize): in-place Doolittle LU (unit lower diagonal)
// without pivoting; |pivot| ≤ 1e-12 → ErrSingular.
// Stage 3 (Substitute): forward solve L·y = b, back solve U·x = y.
//
// Complexity: O(n³) time, O(n²) space for the dense factor.
func SolveVec(a *CSR, b []float64) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.rows != a.cols {
		return nil, ErrNonSquare
	}
	if len(b) != a.rows {
		return nil, ErrDimensionMismatch
	}

	n := a.rows

	// Densify: one contiguous factor overwritten by L\U.
	lu := make([][]float64, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		lu[i] = make([]float64, n)
		for k = a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			lu[i][a.colInd[k]] = a.data[k]
		}
	}

	// Doolittle factorization, no pivoting.
	for k = 0; k < n; k++ {
		if math.Abs(lu[k][k]) <= pivotEps {
			return nil, ErrSingular
		}
		for i = k + 1; i < n; i++ {
			lu[i][k] /= lu[k][k]
			factor := lu[i][k]
			for j = k + 1; j < n; j++ {
				lu[i][j] -= factor * lu[k][j]
			}
		}
	}

	x := make([]float64, n)
	copy(x, b)

	// Forward substitution: L·y = b (unit diagonal).
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			x[i] -= lu[i][j] * x[j]
		}
	}
	// Back substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		for j = i + 1; j < n; j++ {
			x[i] -= lu[i][j] * x[j]
		}
		x[i] /= lu[i][i]
	}

	return x, nil
}
