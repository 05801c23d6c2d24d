// SPDX-License-Identifier: MIT

// Package chunked - VirtualMatrix: row-stitched chunks behind one 2-D index space.
//
// Purpose:
//   - Present an ordered list of chunks with a common column count as one
//     logically contiguous M×N matrix.
//   - Answer within-chunk queries with a borrowed view (zero copy) and
//     cross-chunk queries with a freshly allocated owned buffer.
//
// Complexity quicksheet:
//   - New: O(k) for k chunks; Shape/Size: O(1);
//   - Get: O(log k) lookup + O(1) (view) or O(rows*cols) (copy).

package chunked

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/joschaschmiedt/syncopy/matrix"
)

// rowRange is the global half-open row interval [start, stop) of one chunk.
type rowRange struct {
	start, stop int
}

// VirtualMatrix is an immutable, read-only view of chunks stacked along rows.
//
// Invariants (established by New, never changed afterwards):
//   - at least one chunk;
//   - every chunk is 2-D with the same column count N;
//   - row ranges are contiguous, non-overlapping and cover [0, M).
//
// Concurrency: any number of goroutines may query one VirtualMatrix as long
// as the underlying chunks are safe for concurrent reads.
type VirtualMatrix[T matrix.Element] struct {
	chunks []Chunk[T] // caller-owned handles, stored verbatim
	rows   []rowRange // derived row-range table, sorted by start
	m, n   int        // global shape
	dtype  matrix.Dtype
	opts   Options
}

// New assembles a VirtualMatrix from chunks.
// MAIN DESCRIPTION:
//   - Validate the chunk list and derive cumulative row offsets.
//
// Implementation:
//   - Stage 1: reject an empty list (ErrEmptyInput) and nil handles (ErrNilChunk).
//   - Stage 2: require rank-2 shapes (ErrNotMatrix) and equal column counts
//     (ErrColumnMismatch), and equal declared dtypes (ErrDtypeMismatch).
//   - Stage 3: build the row-range table; copy only the slice of handles,
//     never chunk contents.
//
// Errors:
//   - Construction is atomic: on any error no VirtualMatrix is returned.
//
// Complexity:
//   - Time O(k), Space O(k).
func New[T matrix.Element](chunks []Chunk[T], opts ...Option) (*VirtualMatrix[T], error) {
	o := gatherOptions(opts...)

	if len(chunks) == 0 {
		return nil, fmt.Errorf("chunked.New: %w", ErrEmptyInput)
	}

	var (
		rows   = make([]rowRange, len(chunks))
		cols   int
		offset int
		dtype  matrix.Dtype
	)
	for i, c := range chunks {
		if isNilChunk(c) {
			return nil, fmt.Errorf("chunked.New: chunk %d: %w", i, ErrNilChunk)
		}
		shape := c.Shape()
		if len(shape) != 2 {
			return nil, fmt.Errorf("chunked.New: chunk %d has rank %d: %w", i, len(shape), ErrNotMatrix)
		}
		dt := chunkDtype(c)
		if i == 0 {
			cols, dtype = shape[1], dt
		} else {
			if shape[1] != cols {
				return nil, fmt.Errorf("chunked.New: chunk %d has %d cols, want %d: %w", i, shape[1], cols, ErrColumnMismatch)
			}
			if !dt.Equal(dtype) {
				return nil, fmt.Errorf("chunked.New: chunk %d has dtype %s, want %s: %w", i, dt, dtype, ErrDtypeMismatch)
			}
		}
		rows[i] = rowRange{start: offset, stop: offset + shape[0]}
		offset += shape[0]
	}

	vm := &VirtualMatrix[T]{
		chunks: append([]Chunk[T](nil), chunks...),
		rows:   rows,
		m:      offset,
		n:      cols,
		dtype:  dtype,
		opts:   o,
	}
	o.log.WithFields(logrus.Fields{
		"chunks": len(chunks),
		"rows":   vm.m,
		"cols":   vm.n,
		"dtype":  dtype.String(),
	}).Debug("virtual matrix assembled")

	return vm, nil
}

// isNilChunk catches both a nil interface and a typed nil pointer.
func isNilChunk[T matrix.Element](c Chunk[T]) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// chunkDtype returns the declared dtype of c, or the in-memory dtype of T.
func chunkDtype[T matrix.Element](c Chunk[T]) matrix.Dtype {
	if d, ok := c.(Dtyped); ok {
		return d.Dtype()
	}

	return matrix.DtypeOf[T]()
}

// Shape returns (M, N).
func (vm *VirtualMatrix[T]) Shape() (rows, cols int) { return vm.m, vm.n }

// Size returns M*N.
func (vm *VirtualMatrix[T]) Size() int { return vm.m * vm.n }

// Len is an alias of Size.
func (vm *VirtualMatrix[T]) Len() int { return vm.Size() }

// Dtype returns the element type shared by all chunks.
func (vm *VirtualMatrix[T]) Dtype() matrix.Dtype { return vm.dtype }

// NumChunks returns the number of stitched chunks.
func (vm *VirtualMatrix[T]) NumChunks() int { return len(vm.chunks) }

// ChunkRows returns the global row interval [start, stop) of chunk i.
func (vm *VirtualMatrix[T]) ChunkRows(i int) (start, stop int, err error) {
	if err = matrix.ValidateIndex("chunk", i, len(vm.rows)); err != nil {
		return 0, 0, err
	}

	return vm.rows[i].start, vm.rows[i].stop, nil
}

// locate returns the index of the chunk holding global row r (0 <= r < M).
// Chunks with zero rows never match.
func (vm *VirtualMatrix[T]) locate(r int) int {
	if vm.opts.linearScan {
		for i, rr := range vm.rows {
			if rr.start <= r && r < rr.stop {
				return i
			}
		}
		return -1 // unreachable for validated rows
	}

	// First chunk whose stop lies past r; ranges are sorted and contiguous.
	return sort.Search(len(vm.rows), func(i int) bool { return vm.rows[i].stop > r })
}

// Get answers a 2-D query.
// MAIN DESCRIPTION:
//   - Borrowed *matrix.View when the rows lie in one chunk, owned
//     *matrix.Dense when they span several.
//
// Implementation:
//   - Stage 1: resolve selectors (defaults 0 / full extent) and bounds-check.
//   - Stage 2: locate chunks i1 (first row) and i2 (last row).
//   - Stage 3a (i1 == i2): translate to chunk-local rows; return the chunk's view.
//   - Stage 3b (i1 != i2): tail of i1, all of i1+1..i2-1, head of i2 → VStack.
//
// Behavior highlights:
//   - A within-chunk query never allocates a buffer for the row dimension.
//   - Query errors leave the matrix untouched.
//
// Errors:
//   - ErrSelectorType for the zero Selector.
//   - *matrix.BoundsError naming "row"/"col", the legal [0, extent] and the value.
//   - Errors from chunk handles (e.g. ErrReleased) are wrapped and returned.
//
// Complexity:
//   - Time O(log k) + O(copied elements), Space O(copied elements).
func (vm *VirtualMatrix[T]) Get(row, col Selector) (matrix.Block[T], error) {
	r, err := row.resolve("row", vm.m)
	if err != nil {
		return nil, err
	}
	c, err := col.resolve("col", vm.n)
	if err != nil {
		return nil, err
	}

	i1 := vm.locate(r.start)
	i2 := vm.locate(r.stop - 1)

	if i1 == i2 {
		off := vm.rows[i1].start // global → chunk-local
		v, err := vm.chunks[i1].Slice(r.start-off, r.stop-off, c.start, c.stop)
		if err != nil {
			return nil, fmt.Errorf("VirtualMatrix.Get(%d:%d,%d:%d): chunk %d: %w", r.start, r.stop, c.start, c.stop, i1, err)
		}
		return v, nil
	}

	parts := make([]matrix.Block[T], 0, i2-i1+1)
	var lo, hi int
	for i := i1; i <= i2; i++ {
		lo, hi = 0, vm.rows[i].stop-vm.rows[i].start
		if i == i1 {
			lo = r.start - vm.rows[i].start
		}
		if i == i2 {
			hi = r.stop - vm.rows[i].start
		}
		v, err := vm.chunks[i].Slice(lo, hi, c.start, c.stop)
		if err != nil {
			return nil, fmt.Errorf("VirtualMatrix.Get(%d:%d,%d:%d): chunk %d: %w", r.start, r.stop, c.start, c.stop, i, err)
		}
		parts = append(parts, v)
	}

	vm.opts.log.WithFields(logrus.Fields{
		"first": i1,
		"last":  i2,
		"rows":  r.stop - r.start,
		"cols":  c.stop - c.start,
	}).Debug("materializing cross-chunk query")

	out, err := matrix.VStack(parts...)
	if err != nil {
		return nil, fmt.Errorf("VirtualMatrix.Get(%d:%d,%d:%d): %w", r.start, r.stop, c.start, c.stop, err)
	}

	return out, nil
}

// GetAny is Get for dynamically typed selectors (see ParseSelector).
func (vm *VirtualMatrix[T]) GetAny(row, col any) (matrix.Block[T], error) {
	rs, err := ParseSelector(row)
	if err != nil {
		return nil, fmt.Errorf("row: %w", err)
	}
	cs, err := ParseSelector(col)
	if err != nil {
		return nil, fmt.Errorf("col: %w", err)
	}

	return vm.Get(rs, cs)
}

// Rows returns rows [start, stop) with all columns.
func (vm *VirtualMatrix[T]) Rows(start, stop int) (matrix.Block[T], error) {
	return vm.Get(Range(start, stop), All())
}

// At returns the single element at global (i, j).
func (vm *VirtualMatrix[T]) At(i, j int) (T, error) {
	b, err := vm.Get(Index(i), Index(j))
	if err != nil {
		var zero T
		return zero, err
	}

	return b.At(0, 0)
}

// String summarizes the matrix, e.g. "VirtualMatrix <f8 [5 x 2] in 2 chunks".
func (vm *VirtualMatrix[T]) String() string {
	return fmt.Sprintf("VirtualMatrix %s [%d x %d] in %d chunks", vm.dtype, vm.m, vm.n, len(vm.chunks))
}
