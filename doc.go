// Package syncopy is the in-memory access layer for large, chunked,
// segmented recordings: data that lives in several independently stored
// 2-D blocks (typically one memory-mapped file each) but is analyzed as one
// matrix cut into trials.
//
// What is in the box?
//
//	• Zero-copy views: a query that stays inside one chunk borrows its memory
//	• Explicit copies: a query that spans chunks returns an owned buffer,
//	  and the result says which one you got
//	• Lazy segments: trials are computed on demand, never materialized up front
//	• Bounds errors that report the legal interval next to the offending value
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   Dense (owned) and View (borrowed) blocks, VStack, dtypes, gonum bridge
//	chunked/  VirtualMatrix over row-stitched chunks, Handle lifetimes, adapters
//	seq/      cursor-relative Sequence and absolute Indexed lazy sequences
//	segment/  segment tables, epoch metadata and per-trial time axes
//
// Quick ASCII example:
//
//	chunk 0 ┌────────┐ rows 0..2
//	        │        │   Get(0:2, :)  → borrowed view into chunk 0
//	chunk 1 ├────────┤ rows 3..4
//	        │        │   Get(2:4, :)  → owned copy (crosses the seam)
//	        └────────┘
//
// See examples/ for a runnable walk through trials of a three-file recording.
//
//	go get github.com/joschaschmiedt/syncopy
package syncopy
