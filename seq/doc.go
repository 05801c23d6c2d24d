// SPDX-License-Identifier: MIT

// Package seq provides known-length lazy sequences.
//
// Two flavors share one bounds vocabulary:
//
//   - Sequence wraps a single-pass producer (Next). All access is relative to
//     a shared cursor: Index(i) skips i elements from wherever the previous
//     access stopped. It suits streaming consumers that walk forward once.
//   - Indexed wraps a position → element function. Access is absolute and
//     idempotent, so At(3) always returns the same element.
//
// Neither flavor caches. Out-of-range positions fail with *matrix.BoundsError
// (errors.Is(err, matrix.ErrOutOfRange) holds), naming the legal interval.
//
// Example:
//
//	s, _ := seq.New(seq.FromSlice([]int{10, 20, 30, 40}), 4)
//	a, _ := s.Index(1) // 20, cursor now past 20
//	b, _ := s.Index(0) // 30, relative to the cursor
package seq
