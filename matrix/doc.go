// Package matrix offers the 2-D building blocks of chunked data access.
//
// The matrix package provides:
//
//   - Dense, an owned row-major buffer (the result of any query that had to copy).
//   - View, a borrowed strided window over foreign storage (the zero-copy result).
//   - Block, the sealed interface both implement; Ownership() tells them apart
//     so a borrowed view is never mutated by mistake.
//   - VStack for vertical concatenation into a fresh Dense.
//   - Dtype tags (NumPy typestr) and a bridge to gonum's mat.Dense.
//   - BoundsError and the shared sentinel errors used by chunked, seq and segment.
//
// See the examples in this package and in chunked for usage patterns.
package matrix
