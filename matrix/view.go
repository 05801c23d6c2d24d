// SPDX-License-Identifier: MIT

// Package matrix - borrowed, strided windows over foreign storage.
//
// Purpose:
//   - View is the zero-copy half of the view-vs-copy contract: it aliases a
//     chunk's buffer and never allocates for the row dimension.
//   - Materialize is the explicit escape hatch to an Owned copy.

package matrix

import (
	"fmt"
	"strings"
)

// View is a non-owning window into row-major storage (shared buffer).
// The element (i, j) lives at data[offset + i*stride + j].
//
// Lifetime: a View is only valid while the storage it was cut from is alive
// (e.g. the memory map backing a chunk). It carries no ownership.
type View[T Element] struct {
	data   []T // foreign storage; never reallocated by the view
	offset int // flat offset of element (0,0)
	stride int // distance between consecutive rows (>= c)
	r      int // view height
	c      int // view width
}

var (
	_ Block[float64] = (*View[float64])(nil)
	_ fmt.Stringer   = (*View[float64])(nil)
)

// NewView wraps a row-major buffer with the given stride without copying.
// Chunk adapters use it to expose their native storage.
// MAIN DESCRIPTION:
//   - Validate that rows×cols fits inside data under stride; return a View.
//
// Errors:
//   - ErrInvalidDimensions for negative dims, stride < cols, or a buffer
//     that is too short.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewView[T Element](data []T, rows, cols, stride int) (*View[T], error) {
	if rows < 0 || cols < 0 || stride < cols {
		return nil, fmt.Errorf("NewView(%d,%d,stride=%d): %w", rows, cols, stride, ErrInvalidDimensions)
	}
	if rows > 0 && cols > 0 && (rows-1)*stride+cols > len(data) {
		return nil, fmt.Errorf("NewView(%d,%d,stride=%d,len=%d): %w", rows, cols, stride, len(data), ErrInvalidDimensions)
	}

	return &View[T]{data: data, stride: stride, r: rows, c: cols}, nil
}

// Rows returns the number of rows in the view.
func (v *View[T]) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *View[T]) Cols() int { return v.c }

// Ownership reports Borrowed.
func (v *View[T]) Ownership() Ownership { return Borrowed }

func (v *View[T]) block() {}

// Stride returns the row pitch of the underlying storage.
func (v *View[T]) Stride() int { return v.stride }

// At reads element (i,j) in the view or returns ErrOutOfRange.
// Complexity: O(1).
func (v *View[T]) At(i, j int) (T, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		var zero T
		return zero, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	// Translate to base coordinates and load directly from the flat buffer.
	return v.data[v.offset+i*v.stride+j], nil
}

// Set writes element (i,j) through to the source storage.
// Writing through a view mutates the chunk it was cut from.
// Complexity: O(1).
func (v *View[T]) Set(i, j int, val T) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("View.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	v.data[v.offset+i*v.stride+j] = val // write through

	return nil
}

// RowSlice returns row i aliasing the source storage (capacity clipped).
func (v *View[T]) RowSlice(i int) ([]T, error) {
	if i < 0 || i >= v.r {
		return nil, fmt.Errorf("View.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	base := v.offset + i*v.stride

	return v.data[base : base+v.c : base+v.c], nil
}

// Slice narrows the view to [r0:r1, c0:c1) in view coordinates, no copy.
// MAIN DESCRIPTION:
//   - Compose windows: the result still aliases the original storage.
//
// Errors:
//   - ErrBadShape when the window does not fit the view.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *View[T]) Slice(r0, r1, c0, c1 int) (*View[T], error) {
	if r0 < 0 || c0 < 0 || r1 < r0 || c1 < c0 || r1 > v.r || c1 > v.c {
		return nil, fmt.Errorf("View.%s(%d:%d,%d:%d): %w", ctxSlice, r0, r1, c0, c1, ErrBadShape)
	}

	return &View[T]{
		data:   v.data,
		offset: v.offset + r0*v.stride + c0,
		stride: v.stride,
		r:      r1 - r0,
		c:      c1 - c0,
	}, nil
}

// Shape returns the dims as a rank-2 slice; this lets a *View act as a chunk.
func (v *View[T]) Shape() []int { return []int{v.r, v.c} }

// Materialize copies the window into a freshly allocated Dense.
// Complexity: Time O(r*c), Space O(r*c).
func (v *View[T]) Materialize() *Dense[T] {
	out := &Dense[T]{r: v.r, c: v.c, data: make([]T, v.r*v.c)}
	v.copyInto(out.data)

	return out
}

// copyInto writes the window row by row into dst (len >= r*c).
func (v *View[T]) copyInto(dst []T) {
	var i, src int
	for i = 0; i < v.r; i++ {
		src = v.offset + i*v.stride
		copy(dst[i*v.c:(i+1)*v.c], v.data[src:src+v.c])
	}
}

// String renders the window like Dense.String.
func (v *View[T]) String() string {
	var b strings.Builder
	writeRows(&b, v.r, v.c, func(i, j int) T { return v.data[v.offset+i*v.stride+j] })

	return b.String()
}
