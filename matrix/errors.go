// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the structured bounds error.
// This file defines the package-level sentinels used across matrix, chunked,
// seq and segment. Callers MUST match them via errors.Is / errors.As. No
// public function panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Sentinels are wrapped with fmt.Errorf("Ctx.Method(...): %w", ErrX) at the
// detection site; errors.Is keeps matching through the wrap.

var (
	// ErrOutOfRange indicates that an index or range lies outside valid bounds.
	// Public indexers (At/Set/Slice) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when a requested window or shape is invalid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. stacking blocks with different column counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil block (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested dimensions are negative or
	// do not match the supplied buffer length.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrUnknownDtype is returned by ParseDtype for malformed type strings.
	ErrUnknownDtype = errors.New("matrix: unknown dtype")
)

// BoundsError reports a selector or index outside its legal interval.
// Param names the offending parameter ("row", "col", "idx"), Lower/Upper the
// legal closed interval as printed to the user, Actual the supplied value.
//
// errors.Is(err, ErrOutOfRange) holds for every *BoundsError.
type BoundsError struct {
	Param  string // offending parameter name
	Lower  int    // legal lower bound (inclusive)
	Upper  int    // legal upper bound (inclusive, as reported)
	Actual string // offending value, rendered
}

// Error renders "<param>: expected value between <lo> and <hi>, got <actual>".
func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: expected value between %d and %d, got %s: %v",
		e.Param, e.Lower, e.Upper, e.Actual, ErrOutOfRange)
}

// Unwrap exposes ErrOutOfRange for errors.Is.
func (e *BoundsError) Unwrap() error { return ErrOutOfRange }

// NewBoundsError builds a *BoundsError; actual is rendered with %v.
func NewBoundsError(param string, lower, upper int, actual any) *BoundsError {
	return &BoundsError{Param: param, Lower: lower, Upper: upper, Actual: fmt.Sprint(actual)}
}
