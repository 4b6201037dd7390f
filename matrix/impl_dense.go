// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/With return errors instead of panicking.
//   - Keep values immutable: every method returning a matrix returns a new *Dense.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At: O(1); With: O(r*c) (copy-on-write); Map: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew    = "NewDense" // ctor tag used in error wrappers
	ctxAt     = "At"       // method tag used in error wrappers
	ctxWith   = "With"     // method tag used in error wrappers
	ctxMap    = "Map"      // method tag used in error wrappers
	ctxInduce = "Induced"  // ctor/tag for Dense.Induced
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel stays reachable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf is the numeric policy captured at construction and
//     inherited by every matrix derived from this one.
//
// A *Dense is never mutated after construction, so it may be shared freely
// between goroutines.
type Dense struct {
	r, c           int       // row and column counts (>= 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on construction/With/Map
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a rows×cols matrix filled from values in row-major order.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation, zero padding and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits in an int;
//     else ErrInvalidDimensions.
//   - Stage 2: reject len(values) > rows*cols with ErrDimensionMismatch.
//   - Stage 3: copy values; cells past len(values) stay 0.
//   - Stage 4: when the policy is on, reject NaN/±Inf with ErrNaNInf.
//
// Behavior highlights:
//   - values is copied; later changes to the caller's slice are not observed.
//   - 0×0, 0×n and n×0 matrices are legal.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (capacity), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, values []float64, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	capacity, ok := denseCapacity(rows, cols)
	if !ok {
		return nil, fmt.Errorf("%s(%d,%d): size overflows int: %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	if len(values) > capacity {
		return nil, fmt.Errorf("%s(%d,%d): %d values for capacity %d: %w",
			ctxNew, rows, cols, len(values), capacity, ErrDimensionMismatch)
	}

	o := gatherOptions(opts...)
	m := newDense(rows, cols, o.validateNaNInf)
	copy(m.data, values)

	if m.validateNaNInf {
		for idx, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxNew, idx/cols, idx%cols, ErrNaNInf)
			}
		}
	}

	return m, nil
}

// denseCapacity returns rows*cols, or false when the product overflows int.
// rows and cols must be non-negative.
func denseCapacity(rows, cols int) (int, bool) {
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, false
	}

	return rows * cols, true
}

// newDense allocates a zero-filled matrix; callers guarantee rows, cols >= 0.
func newDense(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: validateNaNInf,
	}
}

// like allocates a zero matrix of the given shape carrying m's numeric policy.
func (m *Dense) like(rows, cols int) *Dense {
	return newDense(rows, cols, m.validateNaNInf)
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols(). A 0×0 matrix is square.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// Len returns the number of stored elements (rows*cols).
func (m *Dense) Len() int { return len(m.data) }

// Values returns a copy of the row-major buffer.
// Complexity: O(r*c).
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns the wrapped sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// With returns a copy of m whose (row, col) element is v.
// MAIN DESCRIPTION:
//   - Copy-on-write element update; m itself is left untouched.
//
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: enforce the numeric policy on v.
//   - Stage 3: copy the buffer and write the cell.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) With(row, col int, v float64) (*Dense, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxWith, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return nil, denseErrorf(ctxWith, row, col, ErrNaNInf)
	}

	out := m.like(m.r, m.c)
	copy(out.data, m.data)
	out.data[off] = v

	return out, nil
}

// String renders rows as lines with comma-separated values ("[1, 2]\n[3, 4]\n").
// Intended for logs and debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. No allocations; deterministic order.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Map returns a new matrix with each element replaced by f(i,j,v).
// MAIN DESCRIPTION:
//   - Pure element-wise transform with policy enforcement and deterministic order.
//
// Implementation:
//   - Stage 1: allocate the result with m's policy.
//   - Stage 2: i→j loops; reject non-finite outputs when the policy is ON.
//
// Behavior highlights:
//   - All-or-nothing: on error no matrix is returned and m is unchanged.
//
// Errors:
//   - ErrNaNInf when f produced NaN/±Inf (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Map(f func(i, j int, v float64) float64) (*Dense, error) {
	out := m.like(m.r, m.c)
	var i, j, base int
	var nv float64

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return nil, denseErrorf(ctxMap, i, j, ErrNaNInf)
			}
			out.data[base+j] = nv
		}
	}

	return out, nil
}

// mapUnchecked applies a finite-preserving f over the flat buffer.
// Only for transforms that cannot create NaN/Inf from finite input (rounding).
func (m *Dense) mapUnchecked(f func(v float64) float64) *Dense {
	out := m.like(m.r, m.c)
	for idx, v := range m.data {
		out.data[idx] = f(v)
	}

	return out
}

// Round returns a new matrix with every element rounded to the nearest
// integer, halves away from zero (math.Round).
func (m *Dense) Round() *Dense { return m.mapUnchecked(math.Round) }

// Ceil returns a new matrix with every element rounded up (math.Ceil).
func (m *Dense) Ceil() *Dense { return m.mapUnchecked(math.Ceil) }

// Floor returns a new matrix with every element rounded down (math.Floor).
func (m *Dense) Floor() *Dense { return m.mapUnchecked(math.Floor) }

// IsNull reports whether every element is exactly zero. A matrix without
// elements is null.
// Complexity: O(r*c) worst case, stops at the first non-zero.
func (m *Dense) IsNull() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: allocate len(rowsIdx)×len(colsIdx) with m's policy.
//   - Stage 2: nested loops with direct offset math; bounds-check each index.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	res := m.like(rp, cp)

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// toDense returns m itself when it is a *Dense, otherwise a dense copy read
// through At in i→j order.
func toDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	out := newDense(rows, cols, DefaultValidateNaNInf)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
