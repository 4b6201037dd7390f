// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestAddSubRoundTrip(t *testing.T) {
	a := RandDense(t, 3, 4, 1)
	b := RandDense(t, 3, 4, 2)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	back, err := matrix.Sub(sum, b)
	require.NoError(t, err)
	CompareExact(t, 3, 4, a.Values(), back)

	// fallback path agrees with the fast path
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, 3, 4, sum.Values(), slow)
}

func TestAddSubErrors(t *testing.T) {
	a := MustDense(t, 2, 2)
	_, err := matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(MustDense(t, 3, 2), a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.Sub(a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulIdentity(t *testing.T) {
	m := MustDense(t, 3, 3, 12, 13, 2, 14, 15, 2, 1, 2, 5)
	id := MustIdentity(t, 3)

	left, err := matrix.Mul(id, m)
	require.NoError(t, err)
	CompareExact(t, 3, 3, m.Values(), left)

	right, err := matrix.Mul(m, id)
	require.NoError(t, err)
	CompareExact(t, 3, 3, m.Values(), right)
}

func TestMulKnownProduct(t *testing.T) {
	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustDense(t, 3, 2, 7, 8, 9, 10, 11, 12)
	want := []float64{58, 64, 139, 154}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, 2, 2, want, fast)

	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, 2, 2, want, slow)
}

func TestMulZeroInner(t *testing.T) {
	p, err := matrix.Mul(MustDense(t, 2, 0), MustDense(t, 0, 3))
	require.NoError(t, err)
	CompareExact(t, 2, 3, []float64{0, 0, 0, 0, 0, 0}, p)
}

func TestMulMismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeTwice(t *testing.T) {
	m := RandDense(t, 3, 5, 7)
	tt, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 5, tt.Rows())
	require.Equal(t, 3, tt.Cols())
	require.Equal(t, MustAt(t, m, 1, 4), MustAt(t, tt, 4, 1))

	back, err := matrix.Transpose(hide{tt})
	require.NoError(t, err)
	CompareExact(t, 3, 5, m.Values(), back)
}

func TestScale(t *testing.T) {
	m := MustDense(t, 2, 2, 1, -2, 3, 0.5)
	s, err := matrix.Scale(m, -2)
	require.NoError(t, err)
	CompareExact(t, 2, 2, []float64{-2, 4, -6, -1}, s)

	z, err := matrix.Scale(hide{m}, 0)
	require.NoError(t, err)
	require.True(t, z.IsNull())
}

func TestHadamard(t *testing.T) {
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustDense(t, 2, 2, 5, 6, 7, 8)
	h, err := matrix.Hadamard(a, hide{b})
	require.NoError(t, err)
	CompareExact(t, 2, 2, []float64{5, 12, 21, 32}, h)
}

func TestMatVecVecMat(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	y, err := matrix.MatVec(m, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	y, err = matrix.MatVec(hide{m}, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15}, y)

	row, err := matrix.VecMat([]float64{1, 1}, m)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, row)

	_, err = matrix.MatVec(m, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.VecMat([]float64{1, 2, 3}, m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestPow(t *testing.T) {
	fib := MustDense(t, 2, 2, 1, 1, 1, 0)
	for k, want := range map[int][]float64{
		0:  {1, 0, 0, 1},
		1:  {1, 1, 1, 0},
		2:  {2, 1, 1, 1},
		10: {89, 55, 55, 34},
	} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			p, err := matrix.Pow(fib, k)
			require.NoError(t, err)
			CompareExact(t, 2, 2, want, p)
		})
	}

	_, err := matrix.Pow(fib, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidOrder)
	_, err = matrix.Pow(MustDense(t, 2, 3), 2)
	require.ErrorIs(t, err, matrix.ErrNotSquare)
}

// Arithmetic results are built with the default numeric policy, so
// operands that opted out of it may still be combined.
func TestArithmeticOnUncheckedOperands(t *testing.T) {
	inf, err := matrix.NewDense(1, 1, []float64{math.Inf(1)}, matrix.WithNaNInfCheck(false))
	require.NoError(t, err)

	s, err := matrix.Add(inf, MustDense(t, 1, 1, 1))
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, s, 0, 0), 1))
}

func TestAliases(t *testing.T) {
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustIdentity(t, 2)

	sum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	CompareExact(t, 2, 2, []float64{2, 2, 3, 5}, sum)

	diff, err := matrix.Diff(a, b)
	require.NoError(t, err)
	CompareExact(t, 2, 2, []float64{0, 2, 3, 3}, diff)

	prod, err := matrix.Product(a, b)
	require.NoError(t, err)
	CompareExact(t, 2, 2, a.Values(), prod)

	tr, err := matrix.T(a)
	require.NoError(t, err)
	CompareExact(t, 2, 2, []float64{1, 3, 2, 4}, tr)

	sc, err := matrix.ScaleBy(a, 2)
	require.NoError(t, err)
	CompareExact(t, 2, 2, []float64{2, 4, 6, 8}, sc)

	d, err := matrix.Det(a)
	require.NoError(t, err)
	require.Equal(t, -2.0, d)

	inv, err := matrix.InverseOf(a)
	require.NoError(t, err)
	CompareClose(t, MustDense(t, 2, 2, -2, 1, 1.5, -0.5), inv)
}

func TestZerosIdentityLike(t *testing.T) {
	z, err := matrix.ZerosLike(MustDense(t, 2, 3, 1, 2, 3))
	require.NoError(t, err)
	CompareExact(t, 2, 3, []float64{0, 0, 0, 0, 0, 0}, z)

	id, err := matrix.IdentityLike(MustDense(t, 2, 2))
	require.NoError(t, err)
	CompareExact(t, 2, 2, []float64{1, 0, 0, 1}, id)

	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	_, err = matrix.NewZeros(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
