// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Determinant, the cofactor
// family, Inverse and Rank.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestDeterminantKnownValues(t *testing.T) {
	cases := []struct {
		name string
		n    int
		vals []float64
		want float64
	}{
		{"1x1", 1, []float64{-3.25}, -3.25},
		{"2x2", 2, []float64{-7.5, 6.5, 7, -6}, -0.5},
		{"3x3", 3, []float64{12, 13, 2, 14, 15, 2, 1, 2, 5}, -6},
		{"3x3 singular", 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 0},
		{"4x4", 4, []float64{
			3, 2, 0, 1,
			4, 0, 1, 2,
			3, 0, 2, 1,
			9, 2, 3, 1,
		}, 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := MustDense(t, tc.n, tc.n, tc.vals...)
			require.Equal(t, tc.want, MustDet(t, m))

			// interface path materializes and agrees
			d, err := matrix.Determinant(hide{m})
			require.NoError(t, err)
			require.Equal(t, tc.want, d)
		})
	}
}

func TestDeterminantIdentity(t *testing.T) {
	for n := 0; n <= 5; n++ {
		require.Equal(t, 1.0, MustDet(t, MustIdentity(t, n)), "det(I_%d)", n)
	}
}

func TestDeterminantTransposeInvariant(t *testing.T) {
	for n := 1; n <= 5; n++ {
		m := RandDense(t, n, n, int64(n))
		require.Equal(t, MustDet(t, m), MustDet(t, m.T()), "n=%d", n)
	}
}

func TestDeterminantNotSquare(t *testing.T) {
	m := MustDense(t, 2, 3)
	_, err := m.Determinant()
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMinorsAndCofactors(t *testing.T) {
	m := MustDense(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	minors, err := m.Minors()
	require.NoError(t, err)
	CompareExact(t, 3, 3, []float64{-3, -6, -3, -6, -12, -6, -3, -6, -3}, minors)

	cof, err := m.Cofactors()
	require.NoError(t, err)
	CompareExact(t, 3, 3, []float64{-3, 6, -3, 6, -12, 6, -3, 6, -3}, cof)

	viaIface, err := matrix.Minors(hide{m})
	require.NoError(t, err)
	CompareExact(t, 3, 3, minors.Values(), viaIface)
}

func TestAdjugate2x2(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 2, 3, 4)
	adj, err := m.Adjugate()
	require.NoError(t, err)
	CompareExact(t, 2, 2, []float64{4, -2, -3, 1}, adj)
}

func TestAdjugateSmallOrders(t *testing.T) {
	adj, err := MustDense(t, 1, 1, 7).Adjugate()
	require.NoError(t, err)
	CompareExact(t, 1, 1, []float64{1}, adj)

	adj, err = MustDense(t, 0, 0).Adjugate()
	require.NoError(t, err)
	require.Equal(t, 0, adj.Len())
}

// M · adj(M) == det(M) · I holds exactly for integer matrices.
func TestAdjugateIdentity(t *testing.T) {
	for n := 1; n <= 4; n++ {
		m := RandDense(t, n, n, int64(10+n))
		adj, err := matrix.Adjugate(m)
		require.NoError(t, err)

		got, err := matrix.Mul(m, adj)
		require.NoError(t, err)
		want, err := matrix.Scale(MustIdentity(t, n), MustDet(t, m))
		require.NoError(t, err)
		CompareExact(t, n, n, want.Values(), got)
	}
}

func TestInverseScenario(t *testing.T) {
	m := MustDense(t, 2, 2, -7.5, 6.5, 7, -6)
	inv, err := m.Inverse()
	require.NoError(t, err)
	CompareExact(t, 2, 2, []float64{12, 13, 14, 15}, inv)
}

func TestInverseRoundTrip(t *testing.T) {
	fixtures := []*matrix.Dense{
		MustDense(t, 1, 1, 4),
		MustDense(t, 2, 2, -7.5, 6.5, 7, -6),
		MustDense(t, 3, 3, 12, 13, 2, 14, 15, 2, 1, 2, 5),
		MustDense(t, 4, 4, 3, 2, 0, 1, 4, 0, 1, 2, 3, 0, 2, 1, 9, 2, 3, 1),
	}
	for _, m := range fixtures {
		t.Run(fmt.Sprintf("%dx%d", m.Rows(), m.Cols()), func(t *testing.T) {
			inv, err := matrix.Inverse(m)
			require.NoError(t, err)

			prod, err := matrix.Mul(m, inv)
			require.NoError(t, err)
			ok, err := matrix.AllClose(prod, MustIdentity(t, m.Rows()), 0, closeTol)
			require.NoError(t, err)
			assert.True(t, ok, "M·M⁻¹ ≉ I:\n%v", prod)
		})
	}
}

func TestInverseErrors(t *testing.T) {
	_, err := MustDense(t, 2, 2, 1, 2, 2, 4).Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = MustDense(t, 1, 1, 0).Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = MustDense(t, 2, 3).Inverse()
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	_, err = matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCofactorFamilyNotSquare(t *testing.T) {
	m := MustDense(t, 3, 2)
	_, err := m.Minors()
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	_, err = m.Cofactors()
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	_, err = m.Adjugate()
	require.ErrorIs(t, err, matrix.ErrNotSquare)
}

func TestRank(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		vals       []float64
		want       int
	}{
		{"null", 2, 3, nil, 0},
		{"empty", 0, 0, nil, 0},
		{"identity", 3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, 3},
		{"singular 3x3", 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 2},
		{"proportional rows", 2, 3, []float64{1, 2, 3, 2, 4, 6}, 1},
		{"wide full rank", 2, 4, []float64{1, 0, 0, 0, 0, 0, 0, 1}, 2},
		// every contiguous 2x2 window vanishes; rows {0,2} × cols {0,2} does not
		{"non-contiguous minor", 3, 3, []float64{1, 0, 0, 0, 0, 0, 0, 0, 1}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols, tc.vals...)
			require.Equal(t, tc.want, m.Rank())

			r, err := matrix.Rank(hide{m})
			require.NoError(t, err)
			require.Equal(t, tc.want, r)
		})
	}
}

func TestRankEpsilon(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 0, 0, 1e-12)
	require.Equal(t, 2, m.Rank())
	require.Equal(t, 1, m.Rank(matrix.WithEpsilon(1e-9)))
}
