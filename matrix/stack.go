// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// VStack vertically concatenates blocks into one newly allocated Dense.
// MAIN DESCRIPTION:
//   - The only allocation path for cross-chunk queries: the result is Owned
//     and never aliases any input.
//
// Implementation:
//   - Stage 1: validate non-nil inputs and a common column count.
//   - Stage 2: allocate sum(rows)×cols once.
//   - Stage 3: copy each block row by row (View fast-path copies whole rows).
//
// Errors:
//   - ErrNilMatrix when no block or a nil block is given.
//   - ErrDimensionMismatch when column counts differ.
//
// Complexity:
//   - Time O(total elements), Space O(total elements).
func VStack[T Element](blocks ...Block[T]) (*Dense[T], error) {
	if len(blocks) == 0 {
		return nil, fmt.Errorf("VStack: %w", ErrNilMatrix)
	}
	var rows, cols int
	for i, b := range blocks {
		if b == nil {
			return nil, fmt.Errorf("VStack: block %d: %w", i, ErrNilMatrix)
		}
		if i == 0 {
			cols = b.Cols()
		} else if b.Cols() != cols {
			return nil, fmt.Errorf("VStack: block %d has %d cols, want %d: %w", i, b.Cols(), cols, ErrDimensionMismatch)
		}
		rows += b.Rows()
	}

	out, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}

	var at int // next destination row
	for _, b := range blocks {
		switch src := b.(type) {
		case *View[T]:
			src.copyInto(out.data[at*cols:])
		case *Dense[T]:
			copy(out.data[at*cols:], src.data)
		}
		at += b.Rows()
	}

	return out, nil
}
