// Package matrix offers sparse matrix representations and the small set of
// linear-algebra kernels needed by spectral graph algorithms.
//
// The matrix package provides:
//
//   - CSR — a compressed-sparse-row matrix of float64 values with O(nnz)
//     memory, deterministic row-major iteration and O(nnz) matrix-vector
//     products.
//   - Adjacency — a deterministic graph→CSR adapter aligned with the
//     lexicographic vertex order of core.Graph.
//   - Identity / Add / Scale — sparse constructors and combinators used to
//     assemble shifted systems such as σ·A + I.
//   - SolveVec — a deterministic direct solver (Doolittle LU, no pivoting)
//     for square systems A·x = b.
//
// All kernels use fixed loop orders, never mutate their inputs, and return
// strict sentinel errors (matched via errors.Is) instead of panicking on
// user-triggered conditions.
package matrix
