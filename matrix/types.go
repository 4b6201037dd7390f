// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense engine and the arithmetic kernels.
// This file intentionally contains ONLY domain-facing types (the read-only
// Matrix interface and the Section descriptor). Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Matrix is the read-only view every kernel accepts.
// *Dense is the only implementation shipped by this package; wrapping it (or
// providing another layout) routes kernels through their At-based fallback.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Section describes a rectangular region of a matrix: Rows×Cols cells whose
// top-left corner is (Row, Col). It is a transient descriptor, consumed
// immediately by SectionToIndices to produce flat offsets.
type Section struct {
	Row  int // top row of the region
	Col  int // left column of the region
	Rows int // region height (>= 0)
	Cols int // region width (>= 0)
}

// Square returns the order×order section anchored at (row, col).
func Square(row, col, order int) Section {
	return Section{Row: row, Col: col, Rows: order, Cols: order}
}
