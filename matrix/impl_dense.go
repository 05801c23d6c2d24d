// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an owned, contiguous row-major buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Hand out no-copy windows (View) over the same buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxSlice = "Slice" // ctor tag for Dense.Slice and View.Slice
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an owned row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Element] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for Block & fmt.Stringer conformance.
var (
	_ Block[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer   = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - Zero-area shapes (0×N) are legal; they arise from empty row ranges.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom adopts data (no copy) as an r×c row-major matrix.
// len(data) must equal rows*cols; otherwise ErrInvalidDimensions.
// Complexity: O(1).
func NewDenseFrom[T Element](rows, cols int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d,len=%d): %w", rows, cols, len(data), ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns the dims as a rank-2 slice; this lets *Dense act as a chunk.
func (m *Dense[T]) Shape() []int { return []int{m.r, m.c} }

// Ownership reports Owned: a Dense always owns its buffer.
func (m *Dense[T]) Ownership() Ownership { return Owned }

func (m *Dense[T]) block() {}

// Raw exposes the backing buffer. Writes are visible through the matrix.
func (m *Dense[T]) Raw() []T { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
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
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// RowSlice returns row i as a sub-slice of the backing buffer.
// Complexity: O(1).
func (m *Dense[T]) RowSlice(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// Clone returns a deep copy (new buffer).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	writeRows(&b, m.r, m.c, func(i, j int) T { return m.data[i*m.c+j] })

	return b.String()
}

// writeRows renders rows as "[a, b]\n" lines; shared by Dense and View.
func writeRows[T Element](b *strings.Builder, rows, cols int, at func(i, j int) T) {
	var i, j int
	for i = 0; i < rows; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		for j = 0; j < cols; j++ { // iterate cols
			fmt.Fprintf(b, "%v", at(i, j))
			if j+1 < cols {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}
}

// Slice creates a no-copy window [r0:r1, c0:c1) over the same storage.
// It makes *Dense usable as an in-memory chunk.
// MAIN DESCRIPTION:
//   - Lightweight submatrix referencing the base buffer (shared storage).
//
// Implementation:
//   - Stage 1: validate half-open window bounds; allow zero-area.
//   - Stage 2: return View with offset and stride == cols.
//
// Behavior highlights:
//   - Writes via the view reflect in the base.
//
// Errors:
//   - ErrBadShape when the window is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Slice(r0, r1, c0, c1 int) (*View[T], error) {
	if r0 < 0 || c0 < 0 || r1 < r0 || c1 < c0 || r1 > m.r || c1 > m.c {
		return nil, fmt.Errorf("Dense.%s(%d:%d,%d:%d): %w", ctxSlice, r0, r1, c0, c1, ErrBadShape)
	}

	return &View[T]{
		data:   m.data,      // share storage
		offset: r0*m.c + c0, // top-left element in base
		stride: m.c,         // distance between rows in base
		r:      r1 - r0,     // view height
		c:      c1 - c0,     // view width
	}, nil
}
