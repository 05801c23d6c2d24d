// SPDX-License-Identifier: MIT
// Package chunked: sentinel error set.
// Construction errors are atomic: New either returns a fully valid
// VirtualMatrix or none at all. Query errors never mutate state.

package chunked

import "errors"

// ERROR TAXONOMY
// --------------
// type errors:        ErrNilChunk, ErrSelectorType
// shape/consistency:  ErrEmptyInput, ErrNotMatrix, ErrColumnMismatch, ErrDtypeMismatch
// bounds:             *matrix.BoundsError (errors.Is(err, matrix.ErrOutOfRange))
// lifetime:           ErrReleased

var (
	// ErrEmptyInput is returned by New for an empty chunk list.
	ErrEmptyInput = errors.New("chunked: empty chunk list")

	// ErrNilChunk is returned by New when the chunk list holds a nil handle.
	ErrNilChunk = errors.New("chunked: nil chunk")

	// ErrNotMatrix is returned by New when a chunk does not expose a rank-2 shape.
	ErrNotMatrix = errors.New("chunked: chunk is not 2-dimensional")

	// ErrColumnMismatch is returned by New when column counts differ across chunks.
	ErrColumnMismatch = errors.New("chunked: column count differs across chunks")

	// ErrDtypeMismatch is returned by New when declared chunk dtypes differ.
	ErrDtypeMismatch = errors.New("chunked: element type differs across chunks")

	// ErrSelectorType is returned for a selector that is neither an integer nor a range.
	ErrSelectorType = errors.New("chunked: selector must be an integer or a range")

	// ErrReleased is returned when a handle's backing resource was closed.
	ErrReleased = errors.New("chunked: chunk backing resource released")
)
