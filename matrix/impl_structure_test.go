// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for structural queries
// (Submatrix, SectionToIndices, SelectionToMatrix, SquareSubmatrices).
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestSubmatrixDeletesRowAndCol(t *testing.T) {
	m := MustDense(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	cases := []struct {
		row, col int
		want     []float64
	}{
		{0, 0, []float64{5, 6, 8, 9}},
		{1, 1, []float64{1, 3, 7, 9}},
		{2, 0, []float64{2, 3, 5, 6}},
		{0, 2, []float64{4, 5, 7, 8}},
	}
	for _, tc := range cases {
		sub, err := m.Submatrix(tc.row, tc.col)
		require.NoError(t, err)
		CompareExact(t, 2, 2, tc.want, sub)
	}
}

func TestSubmatrixRectangularAndBounds(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	sub, err := m.Submatrix(1, 1)
	require.NoError(t, err)
	CompareExact(t, 1, 2, []float64{1, 3}, sub)

	_, err = m.Submatrix(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = MustDense(t, 0, 0).Submatrix(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSectionToIndices(t *testing.T) {
	m := MustDense(t, 3, 4)

	idx, err := m.SectionToIndices(matrix.Section{Row: 1, Col: 1, Rows: 2, Cols: 2})
	require.NoError(t, err)
	require.Equal(t, []int{5, 6, 9, 10}, idx)

	// sections are concatenated in argument order
	idx, err = m.SectionToIndices(
		matrix.Section{Row: 2, Col: 3, Rows: 1, Cols: 1},
		matrix.Square(0, 0, 1),
		matrix.Section{Row: 0, Col: 0, Rows: 0, Cols: 4},
	)
	require.NoError(t, err)
	require.Equal(t, []int{11, 0}, idx)

	_, err = m.SectionToIndices(matrix.Section{Row: 2, Col: 0, Rows: 2, Cols: 1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.SectionToIndices(matrix.Section{Row: -1, Col: 0, Rows: 1, Cols: 1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// extents large enough to wrap origin+size around
	for _, s := range []matrix.Section{
		{Row: 1, Col: 0, Rows: math.MaxInt, Cols: 1},
		{Row: 0, Col: 1, Rows: 1, Cols: math.MaxInt},
		{Row: math.MaxInt, Col: 0, Rows: 1, Cols: 1},
		{Row: 0, Col: math.MaxInt, Rows: 1, Cols: 1},
	} {
		_, err = m.SectionToIndices(s)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "%+v", s)
	}
}

func TestSelectionToMatrix(t *testing.T) {
	m := MustDense(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	sel, err := m.SelectionToMatrix(2, 2, []int{8, 0, 4, 4})
	require.NoError(t, err)
	CompareExact(t, 2, 2, []float64{9, 1, 5, 5}, sel)

	_, err = m.SelectionToMatrix(2, 2, []int{0, 1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.SelectionToMatrix(1, 1, []int{9})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.SelectionToMatrix(-1, 1, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	// a wrapped rows*cols must not match an empty index list
	_, err = m.SelectionToMatrix(math.MaxInt/2+1, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestSquareSubmatricesOrder(t *testing.T) {
	m := MustDense(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	windows, err := m.SquareSubmatrices(2)
	require.NoError(t, err)
	require.Equal(t, [][]int{
		{0, 1, 3, 4},
		{1, 2, 4, 5},
		{3, 4, 6, 7},
		{4, 5, 7, 8},
	}, windows)

	full, err := m.SquareSubmatrices(3)
	require.NoError(t, err)
	require.Len(t, full, 1)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, full[0])

	singles, err := m.SquareSubmatrices(1)
	require.NoError(t, err)
	require.Len(t, singles, 9)
}

func TestSquareSubmatricesRectangular(t *testing.T) {
	m := MustDense(t, 2, 3)
	windows, err := m.SquareSubmatrices(2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 3, 4}, {1, 2, 4, 5}}, windows)
}

func TestSquareSubmatricesInvalidOrder(t *testing.T) {
	m := MustDense(t, 2, 3)
	for _, order := range []int{0, -1, 3} {
		_, err := m.SquareSubmatrices(order)
		require.ErrorIs(t, err, matrix.ErrInvalidOrder, "order %d", order)
	}
}
