// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep chunk stores and sequences minimal by delegating nil/shape/range checks here.
//  - Range checks return *BoundsError so every layer reports the same shape of error.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the block reference is non-nil.
// Returns ErrNilMatrix if b == nil.
// Complexity: O(1).
func ValidateNotNil[T Element](b Block[T]) error {
	if b == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameCols ensures both blocks have the same column count.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameCols[T Element](a, b Block[T]) error {
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameCols", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRange checks a half-open range [start, stop) against extent.
// Legal values: 0 <= start < extent and 0 < stop <= extent, start < stop.
// The reported legal interval is [0, extent].
//
// Returns *BoundsError naming param and the offending range.
// Complexity: O(1).
func ValidateRange(param string, start, stop, extent int) error {
	if start < 0 || start >= extent || stop <= 0 || stop > extent || start >= stop {
		return NewBoundsError(param, 0, extent, fmt.Sprintf("[%d, %d)", start, stop))
	}

	return nil
}

// ValidateIndex checks 0 <= i < length. The reported legal interval is
// [0, length-1].
// Complexity: O(1).
func ValidateIndex(param string, i, length int) error {
	if i < 0 || i >= length {
		return NewBoundsError(param, 0, length-1, i)
	}

	return nil
}
