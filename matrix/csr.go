// SPDX-License-Identifier: MIT
// Package matrix: compressed-sparse-row storage and kernels.
//
// Deliverables:
//  1. Deterministic COO→CSR construction (entries sorted by (row, col),
//     duplicates accumulated).
//  2. O(nnz) matrix-vector product with fixed row-major loop order.
//  3. Structural combinators (Scale, Add, Identity) that never mutate
//     their inputs — every result is a freshly allocated matrix.

package matrix

import "sort"

// Entry is a coordinate-form (COO) element used to build a CSR matrix.
type Entry struct {
	Row, Col int     // zero-based position
	Val      float64 // stored value
}

// CSR is a compressed-sparse-row matrix of float64 values.
//
// Internal layout: rowPtr has rows+1 offsets into colInd/data; the
// nonzeros of row i live in colInd[rowPtr[i]:rowPtr[i+1]], sorted by
// column ascending. The zero value is not usable; construct via NewCSR,
// Identity or the kernels below.
type CSR struct {
	rows, cols int
	rowPtr     []int     // length rows+1
	colInd     []int     // length nnz, column indices sorted per row
	data       []float64 // length nnz, values aligned with colInd
}

// NewCSR builds a CSR matrix from coordinate-form entries.
//
// Stage 1 (Validate): rows/cols must be positive; every entry must lie
// inside the shape (ErrBadShape).
// Stage 2 (Prepare): entries are copied and sorted by (row, col) so the
// result is independent of input order; duplicates are accumulated.
// Stage 3 (Finalize): row pointers, column indices and values are packed.
//
// Complexity: O(nnz log nnz) time, O(nnz) space.
func NewCSR(rows, cols int, entries []Entry) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, ErrBadShape
		}
	}

	// Sort a private copy; construction must not reorder caller data.
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}

		return sorted[i].Col < sorted[j].Col
	})

	m := &CSR{
		rows:   rows,
		cols:   cols,
		rowPtr: make([]int, rows+1),
		colInd: make([]int, 0, len(sorted)),
		data:   make([]float64, 0, len(sorted)),
	}

	var row int // current row being packed
	for _, e := range sorted {
		// Accumulate duplicates of the same (row, col) coordinate.
		last := len(m.colInd) - 1
		if last >= 0 && row == e.Row && m.colInd[last] == e.Col && m.rowPtr[e.Row] <= last {
			m.data[last] += e.Val
			continue
		}
		// Close row pointers up to the entry's row.
		for row < e.Row {
			row++
			m.rowPtr[row] = len(m.colInd)
		}
		m.colInd = append(m.colInd, e.Col)
		m.data = append(m.data, e.Val)
	}
	// Close the remaining row pointers.
	for row < rows {
		row++
		m.rowPtr[row] = len(m.colInd)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored nonzeros. Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.data) }

// At retrieves the element at (i, j); absent coordinates read as 0.
// Returns ErrOutOfRange for indices outside the shape.
// Complexity: O(log nnz(row i)) via binary search.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.colInd[lo:hi], j)
	if k < hi && m.colInd[k] == j {
		return m.data[k], nil
	}

	return 0, nil
}

// Row exposes read-only views of row i's column indices and values.
// The returned slices alias internal storage and MUST NOT be mutated.
// Returns ErrOutOfRange for an invalid row.
// Complexity: O(1).
func (m *CSR) Row(i int) ([]int, []float64, error) {
	if i < 0 || i >= m.rows {
		return nil, nil, ErrOutOfRange
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return m.colInd[lo:hi], m.data[lo:hi], nil
}

// MulVec computes y = a·x for a dense column vector x.
//
// Contract: a non-nil; len(x) == a.Cols().
// Determinism: fixed row-major loop order, one accumulator per row.
// Complexity: O(nnz) time, O(rows) space for y.
func MulVec(a *CSR, x []float64) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if len(x) != a.cols {
		return nil, ErrDimensionMismatch
	}

	y := make([]float64, a.rows)
	var (
		i, k int     // row index and nonzero cursor
		acc  float64 // per-row accumulator
	)
	for i = 0; i < a.rows; i++ {
		acc = 0
		for k = a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			acc += a.data[k] * x[a.colInd[k]]
		}
		y[i] = acc
	}

	return y, nil
}

// Scale returns alpha·a as a fresh matrix; a is never mutated.
// Complexity: O(nnz) time and space.
func Scale(a *CSR, alpha float64) (*CSR, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}

	out := &CSR{
		rows:   a.rows,
		cols:   a.cols,
		rowPtr: make([]int, len(a.rowPtr)),
		colInd: make([]int, len(a.colInd)),
		data:   make([]float64, len(a.data)),
	}
	copy(out.rowPtr, a.rowPtr)
	copy(out.colInd, a.colInd)
	for k, v := range a.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// Add computes a + b element-wise for identically shaped matrices.
// Coinciding coordinates are summed; the result stays sorted per row.
// Complexity: O(nnz(a) + nnz(b)) time and space.
func Add(a, b *CSR) (*CSR, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, ErrDimensionMismatch
	}

	out := &CSR{
		rows:   a.rows,
		cols:   a.cols,
		rowPtr: make([]int, a.rows+1),
		colInd: make([]int, 0, len(a.colInd)+len(b.colInd)),
		data:   make([]float64, 0, len(a.data)+len(b.data)),
	}

	var i, ka, kb int // row index and per-operand cursors
	for i = 0; i < a.rows; i++ {
		ka, kb = a.rowPtr[i], b.rowPtr[i]
		// Two-pointer merge of the sorted rows.
		for ka < a.rowPtr[i+1] || kb < b.rowPtr[i+1] {
			switch {
			case kb >= b.rowPtr[i+1] || (ka < a.rowPtr[i+1] && a.colInd[ka] < b.colInd[kb]):
				out.colInd = append(out.colInd, a.colInd[ka])
				out.data = append(out.data, a.data[ka])
				ka++
			case ka >= a.rowPtr[i+1] || b.colInd[kb] < a.colInd[ka]:
				out.colInd = append(out.colInd, b.colInd[kb])
				out.data = append(out.data, b.data[kb])
				kb++
			default: // equal columns
				out.colInd = append(out.colInd, a.colInd[ka])
				out.data = append(out.data, a.data[ka]+b.data[kb])
				ka++
				kb++
			}
		}
		out.rowPtr[i+1] = len(out.colInd)
	}

	return out, nil
}

// Identity returns I_n (n×n sparse identity).
// Complexity: O(n) time and space.
func Identity(n int) (*CSR, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	m := &CSR{
		rows:   n,
		cols:   n,
		rowPtr: make([]int, n+1),
		colInd: make([]int, n),
		data:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		m.rowPtr[i+1] = i + 1
		m.colInd[i] = i
		m.data[i] = 1.0
	}

	return m, nil
}

// RowSums returns vector r where r[i] = Σ_j a[i,j].
// Complexity: O(nnz).
func RowSums(a *CSR) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}

	r := make([]float64, a.rows)
	var i, k int
	for i = 0; i < a.rows; i++ {
		for k = a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			r[i] += a.data[k]
		}
	}

	return r, nil
}

// MaxAbsRowSum returns max_i |Σ_j a[i,j]| — the largest absolute row sum.
// This is a cheap upper-bound heuristic for spectral scaling, not a tight
// spectral bound.
// Complexity: O(nnz).
func MaxAbsRowSum(a *CSR) (float64, error) {
	sums, err := RowSums(a)
	if err != nil {
		return 0, err
	}

	var best float64
	for _, s := range sums {
		if s < 0 {
			s = -s
		}
		if s > best {
			best = s
		}
	}

	return best, nil
}
