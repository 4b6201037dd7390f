// SPDX-License-Identifier: MIT

// Package matrix - structural queries over Dense.
//
// Purpose:
//   - Row/column deletion (Submatrix) used by the cofactor machinery.
//   - Flat-index plumbing: Section → offsets → gathered matrix.
//   - Enumeration of contiguous order×order windows.
//
// Determinism:
//   - Every traversal is row-major (row outer, column inner); section lists are
//     concatenated in argument order.

package matrix

import "fmt"

const (
	ctxSubmatrix = "Submatrix"
	ctxSection   = "SectionToIndices"
	ctxSelection = "SelectionToMatrix"
	ctxWindows   = "SquareSubmatrices"
)

// Submatrix returns the (r-1)×(c-1) matrix obtained by deleting excludeRow
// and excludeCol.
// Implementation:
//   - Stage 1: bounds check both indices (an empty matrix has no valid index).
//   - Stage 2: single i→j pass skipping the excluded row/column, appending in order.
//
// Behavior highlights:
//   - Remaining elements keep their row-major relative order.
//
// Errors:
//   - ErrOutOfRange when either index is outside the matrix.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense) Submatrix(excludeRow, excludeCol int) (*Dense, error) {
	if _, err := m.indexOf(excludeRow, excludeCol); err != nil {
		return nil, denseErrorf(ctxSubmatrix, excludeRow, excludeCol, err)
	}

	return m.submatrix(excludeRow, excludeCol), nil
}

// submatrix is the unchecked kernel behind Submatrix; callers guarantee the
// indices are in range.
func (m *Dense) submatrix(excludeRow, excludeCol int) *Dense {
	out := m.like(m.r-1, m.c-1)
	var i, j, base, k int
	for i = 0; i < m.r; i++ {
		if i == excludeRow {
			continue
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j == excludeCol {
				continue
			}
			out.data[k] = m.data[base+j]
			k++
		}
	}

	return out
}

// SectionToIndices flattens one or more rectangular sections into flat
// offsets into the row-major buffer.
// Implementation:
//   - Stage 1: validate each section lies inside the matrix.
//   - Stage 2: for each section, emit (Row+y)*cols + (Col+x) for y→x.
//
// Behavior highlights:
//   - Within a section the order is row-major; sections follow argument order.
//   - Zero-area sections contribute nothing.
//
// Errors:
//   - ErrOutOfRange when a section has a negative origin/size or exceeds the bounds.
//
// Complexity:
//   - Time O(Σ area), Space O(Σ area).
func (m *Dense) SectionToIndices(sections ...Section) ([]int, error) {
	total := 0
	for k, s := range sections {
		if s.Row < 0 || s.Col < 0 || s.Rows < 0 || s.Cols < 0 ||
			s.Row > m.r || s.Col > m.c || s.Rows > m.r-s.Row || s.Cols > m.c-s.Col {
			return nil, fmt.Errorf("Dense.%s: section %d %+v: %w", ctxSection, k, s, ErrOutOfRange)
		}
		total += s.Rows * s.Cols
	}

	out := make([]int, 0, total)
	var y, x int
	for _, s := range sections {
		for y = 0; y < s.Rows; y++ {
			for x = 0; x < s.Cols; x++ {
				out = append(out, (s.Row+y)*m.c+(s.Col+x))
			}
		}
	}

	return out, nil
}

// SelectionToMatrix gathers data[indices[i]] in order into a new rows×cols matrix.
// Errors:
//   - ErrInvalidDimensions for negative rows/cols or when rows*cols overflows.
//   - ErrDimensionMismatch when len(indices) != rows*cols.
//   - ErrOutOfRange when an index falls outside the buffer.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) SelectionToMatrix(rows, cols int, indices []int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxSelection, rows, cols, ErrInvalidDimensions)
	}
	capacity, ok := denseCapacity(rows, cols)
	if !ok {
		return nil, fmt.Errorf("Dense.%s(%d,%d): size overflows int: %w", ctxSelection, rows, cols, ErrInvalidDimensions)
	}
	if len(indices) != capacity {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %d indices: %w",
			ctxSelection, rows, cols, len(indices), ErrDimensionMismatch)
	}

	out := m.like(rows, cols)
	for k, idx := range indices {
		if idx < 0 || idx >= len(m.data) {
			return nil, fmt.Errorf("Dense.%s: index %d: %w", ctxSelection, idx, ErrOutOfRange)
		}
		out.data[k] = m.data[idx]
	}

	return out, nil
}

// SquareSubmatrices enumerates every contiguous order×order window as a flat
// index list.
// Implementation:
//   - Stage 1: ValidateOrder (1 <= order <= min(r,c)).
//   - Stage 2: row offset 0..r-order (outer), column offset 0..c-order (inner);
//     each window is produced by SectionToIndices(Square(row, col, order)).
//
// Errors:
//   - ErrInvalidOrder.
//
// Complexity:
//   - Time O((r-order+1)*(c-order+1)*order²).
func (m *Dense) SquareSubmatrices(order int) ([][]int, error) {
	if err := ValidateOrder(m, order); err != nil {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxWindows, order, err)
	}

	out := make([][]int, 0, (m.r-order+1)*(m.c-order+1))
	var row, col int
	for row = 0; row <= m.r-order; row++ {
		for col = 0; col <= m.c-order; col++ {
			idx, err := m.SectionToIndices(Square(row, col, order))
			if err != nil {
				return nil, fmt.Errorf("Dense.%s(%d): %w", ctxWindows, order, err)
			}
			out = append(out, idx)
		}
	}

	return out, nil
}
