// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0, or an entry outside the shape).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add with different shapes or MulVec where
	// len(x) != Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// was not square.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a zero pivot is encountered during the
	// non-pivoting LU factorization (intentional for determinism).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *CSR (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrGraphNil indicates that a nil *core.Graph was passed into the
	// adjacency adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrMultiEdge indicates that the source graph permits parallel edges;
	// adjacency matrices assume at most one weight per ordered vertex pair.
	ErrMultiEdge = errors.New("matrix: multigraph adjacency not supported")
)
