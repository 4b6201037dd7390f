// SPDX-License-Identifier: MIT

// Package matrix - determinant, cofactor machinery, inverse and rank.
//
// Purpose:
//   - Determinant by Laplace expansion along the first row (textbook recursion).
//   - Minors / Cofactors / Adjugate as explicit derived matrices.
//   - Inverse = Adjugate · (1/det), rejecting an exactly-zero determinant.
//   - Rank by searching for the largest non-vanishing square minor.
//
// Numeric policy:
//   - Determinant is exact Laplace expansion: Σ (-1)^i · a[0,i] · det(M₀ᵢ).
//     The recursion is O(n!) and meant for small matrices (n ≤ ~8). The sign
//     pattern and summation order are part of the contract and stay fixed.
//   - Inverse refuses det == 0 exactly; near-singular inputs are inverted as-is.
//   - Rank compares |det| > eps (eps defaults to 0, see WithEpsilon).

package matrix

import "math"

const (
	opDeterminant = "Determinant"
	opMinors      = "Minors"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opRank        = "Rank"
)

// Determinant returns det(m) for a square matrix.
// MAIN DESCRIPTION:
//   - Base cases: order 0 → 1, order 1 → a, order 2 → ad − bc.
//   - General case: Laplace expansion along row 0 with alternating signs.
//
// Errors:
//   - ErrNotSquare when Rows != Cols.
//
// Determinism:
//   - Fixed expansion order (column 0 → n-1); bitwise reproducible.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.det(), nil
}

// det is the unchecked recursive kernel; m must be square.
func (m *Dense) det() float64 {
	switch m.r {
	case 0:
		return 1
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	total := 0.0
	sign := 1.0
	for i := 0; i < m.c; i++ {
		total += sign * m.data[i] * m.submatrix(0, i).det()
		sign = -sign
	}

	return total
}

// Minors returns the matrix whose (r,c) entry is det(Submatrix(r,c)).
// Errors:
//   - ErrNotSquare.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func (m *Dense) Minors() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinors, err)
	}

	return m.minors(), nil
}

func (m *Dense) minors() *Dense {
	out := m.like(m.r, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[i*m.c+j] = m.submatrix(i, j).det()
		}
	}

	return out
}

// checkerboard returns a copy of m with entry (r,c) multiplied by (-1)^(r+c).
func (m *Dense) checkerboard() *Dense {
	out := m.like(m.r, m.c)
	var i, j, off int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			off = i*m.c + j
			if (i+j)%2 == 0 {
				out.data[off] = m.data[off]
			} else {
				out.data[off] = -m.data[off]
			}
		}
	}

	return out
}

// Cofactors returns the matrix whose (r,c) entry is (-1)^(r+c) · minor(r,c).
// Errors:
//   - ErrNotSquare.
func (m *Dense) Cofactors() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return m.minors().checkerboard(), nil
}

// Adjugate returns the transpose of the cofactor matrix.
// Implementation:
//   - Stage 1: minors matrix.
//   - Stage 2: checkerboard signs over the minors.
//   - Stage 3: transpose.
//
// Behavior highlights:
//   - Satisfies m · Adjugate(m) = det(m) · I.
//   - The 0×0 adjugate is 0×0; the 1×1 adjugate is [1].
//
// Errors:
//   - ErrNotSquare.
func (m *Dense) Adjugate() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return m.minors().checkerboard().T(), nil
}

// Inverse returns m⁻¹ = Adjugate(m) · (1/det(m)).
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: det; exactly zero → ErrSingular (before any allocation of the result).
//   - Stage 3: Adjugate scaled by 1/det through Map (numeric policy applies).
//
// Errors:
//   - ErrNotSquare, ErrSingular, ErrNaNInf (1/det overflowed under policy ON).
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func (m *Dense) Inverse() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d := m.det()
	if d == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	inv := 1 / d
	out, err := m.minors().checkerboard().T().Map(func(_, _ int, v float64) float64 {
		return v * inv
	})
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return out, nil
}

// Rank returns the size of the largest square minor whose |det| > eps.
// MAIN DESCRIPTION:
//   - 0 for a null matrix; otherwise k from min(r,c) down to 1.
//
// Implementation:
//   - Stage 1: IsNull short-circuit.
//   - Stage 2: for each k, try the contiguous k×k windows first
//     (SquareSubmatrices → SelectionToMatrix → det), which settles most
//     full-rank inputs cheaply.
//   - Stage 3: otherwise enumerate every k-row × k-column combination
//     (lexicographic rows outer, columns inner) via Induced → det.
//
// Behavior highlights:
//   - Arbitrary row/column selections are considered, not only contiguous windows.
//   - WithEpsilon(eps) relaxes the zero test; the default is exact (eps = 0).
//
// Complexity:
//   - Worst case O(C(r,k)·C(c,k)·k!) per k; intended for small matrices.
func (m *Dense) Rank(opts ...Option) int {
	o := gatherOptions(opts...)
	if m.IsNull() {
		return 0
	}

	for k := min(m.r, m.c); k >= 1; k-- {
		if m.hasWindowMinor(k, o.eps) || m.hasMinor(k, o.eps) {
			return k
		}
	}

	return 0
}

// hasWindowMinor reports whether some contiguous k×k window has |det| > eps.
func (m *Dense) hasWindowMinor(k int, eps float64) bool {
	windows, err := m.SquareSubmatrices(k)
	if err != nil {
		return false
	}
	for _, idx := range windows {
		sub, err := m.SelectionToMatrix(k, k, idx)
		if err != nil {
			return false
		}
		if math.Abs(sub.det()) > eps {
			return true
		}
	}

	return false
}

// hasMinor reports whether any k-row × k-column selection has |det| > eps.
func (m *Dense) hasMinor(k int, eps float64) bool {
	rows := firstCombination(k)
	for {
		cols := firstCombination(k)
		for {
			sub, err := m.Induced(rows, cols)
			if err == nil && math.Abs(sub.det()) > eps {
				return true
			}
			if !nextCombination(cols, m.c) {
				break
			}
		}
		if !nextCombination(rows, m.r) {
			return false
		}
	}
}

// firstCombination returns [0, 1, ..., k-1].
func firstCombination(k int) []int {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// nextCombination advances idx (strictly increasing, values in [0,n)) to the
// next k-combination in lexicographic order. Returns false after the last one.
func nextCombination(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}

	return true
}

// ---------- Interface-level entry points ----------

// Determinant returns det(m) for any square Matrix.
// Non-dense inputs are materialized once through At.
func Determinant(m Matrix) (float64, error) {
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return d.Determinant()
}

// Adjugate returns the adjugate of any square Matrix.
func Adjugate(m Matrix) (*Dense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return d.Adjugate()
}

// Inverse returns m⁻¹ for any square, non-singular Matrix.
func Inverse(m Matrix) (*Dense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return d.Inverse()
}

// Rank returns the rank of any Matrix (see (*Dense).Rank).
func Rank(m Matrix, opts ...Option) (int, error) {
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return d.Rank(opts...), nil
}

// Minors returns the minors matrix of any square Matrix.
func Minors(m Matrix) (*Dense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinors, err)
	}

	return d.Minors()
}
