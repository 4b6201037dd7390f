// SPDX-License-Identifier: MIT

// Package matrix is a small-matrix linear-algebra core over an immutable,
// row-major dense matrix.
//
// The matrix package provides:
//
//   - Dense: an immutable value over a flat []float64 (offset = i*cols + j).
//     Every operation returns a new *Dense; nothing is mutated in place, so
//     values may be shared between goroutines without locking.
//   - Structural queries: Submatrix, SectionToIndices, SelectionToMatrix,
//     SquareSubmatrices, Induced, IsNull.
//   - Determinant by Laplace expansion along the first row, Minors, Cofactors,
//     Adjugate, Inverse (adjugate / det) and Rank (largest non-vanishing minor).
//   - Arithmetic: Add, Sub, Scale, Mul, Transpose, Hadamard, MatVec, Pow.
//
// The cofactor-based algorithms are factorial in the matrix order. They are
// exact on rational inputs and easy to check term by term, which is the point:
// use them for matrices up to a handful of rows, not for numerical workloads.
//
// Errors are sentinels (ErrNotSquare, ErrDimensionMismatch, ErrInvalidOrder,
// ErrSingular, ErrOutOfRange, ...) wrapped with an operation tag; match them
// with errors.Is.
//
//	a, _ := matrix.NewDense(2, 2, []float64{-7.5, 6.5, 7, -6})
//	det, _ := a.Determinant() // -0.5
//	inv, _ := a.Inverse()
//	id, _ := matrix.Mul(a, inv) // ≈ I₂
package matrix
