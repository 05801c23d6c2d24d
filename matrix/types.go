// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense storage, views and stacking.
// This file contains ONLY the element constraint, the ownership tag and the
// sealed Block result type. Errors live in errors.go.

package matrix

// Element is the set of fixed-size numeric kinds a block may hold.
// All chunks of one virtual matrix share a single Element type.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Ownership tells whether a Block aliases foreign storage or owns its buffer.
type Ownership uint8

const (
	// Borrowed blocks alias a source chunk. Writes are visible in the chunk,
	// and the block is only valid while the chunk's backing resource lives.
	Borrowed Ownership = iota + 1
	// Owned blocks hold a freshly allocated buffer independent of any chunk.
	Owned
)

// String returns "borrowed" or "owned".
func (o Ownership) String() string {
	switch o {
	case Borrowed:
		return "borrowed"
	case Owned:
		return "owned"
	default:
		return "unknown"
	}
}

// Block is the result of a 2-D query: either a *View[T] (Borrowed) or a
// *Dense[T] (Owned). The interface is sealed; callers that need to write
// switch on the concrete type so a borrowed view is never mutated by accident.
//
// Complexity notes: all methods are O(1).
type Block[T Element] interface {
	// Rows returns the number of rows in the block.
	Rows() int

	// Cols returns the number of columns in the block.
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (T, error)

	// Ownership reports whether the block is Borrowed or Owned.
	Ownership() Ownership

	// RowSlice returns row i as a slice. For a View the slice aliases the
	// source storage; callers must not retain it past the source's lifetime.
	RowSlice(i int) ([]T, error)

	block() // seals the interface
}
