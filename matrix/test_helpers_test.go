// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// closeTol is the absolute tolerance used by approximate comparisons.
const closeTol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the At-based (non-*Dense) fallback paths.
type hide struct{ matrix.Matrix }

// MustDense builds an r×c *Dense from row-major values or fails the test.
func MustDense(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, vals)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustIdentity builds I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustDet returns det(m) or fails the test.
func MustDet(t testing.TB, m *matrix.Dense) float64 {
	t.Helper()
	d, err := m.Determinant()
	require.NoError(t, err)

	return d
}

// RandDense returns an r×c matrix of small integers in [-5, 5] for a fixed seed.
// Integer entries keep cofactor arithmetic exact.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = float64(rng.Intn(11) - 5)
	}

	return MustDense(t, r, c, vals...)
}

// CompareExact asserts shape and exact element equality against want (row-major).
func CompareExact(t testing.TB, rows, cols int, want []float64, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, rows, got.Rows(), "rows")
	require.Equal(t, cols, got.Cols(), "cols")
	if diff := cmp.Diff(want, got.Values(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

// CompareClose asserts same shape and element-wise closeness within closeTol.
func CompareClose(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	opt := cmpopts.EquateApprox(0, closeTol)
	if diff := cmp.Diff(want.Values(), got.Values(), opt, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("values not close (-want +got):\n%s", diff)
	}
}
