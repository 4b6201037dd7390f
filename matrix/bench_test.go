// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// Cofactor kernels are factorial, so their sizes stay small.
var (
	arithSizes   = []int{16, 64, 128}
	cofactorSize = []int{3, 5, 7}
)

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
	sinkI int
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range arithSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 1337)
			B := RandDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range arithSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 1)
			B := RandDense(b, n, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range arithSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.T()
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cofactorSize {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.Determinant()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cofactorSize {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			// diagonally dominant → non-singular
			A := RandDense(b, n, n, 6)
			for k := 0; k < n; k++ {
				v := MustAt(b, A, k, k)
				A, _ = A.With(k, k, v+float64(10*n))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Inverse()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cofactorSize {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI = A.Rank()
			}
		})
	}
}
