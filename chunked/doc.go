// Package chunked stitches independently stored, row-partitioned 2-D chunks
// into one logically contiguous matrix.
//
// A VirtualMatrix holds non-owning references to its chunks plus a derived
// row-range table. Get answers a (row, col) selection with:
//
//   - a borrowed *matrix.View when every selected row lives in one chunk
//     (zero copy; writes through the view reach the chunk), or
//   - an owned *matrix.Dense when the rows span several chunks (the only
//     allocation path).
//
// Chunks are caller-owned. Wrap a chunk whose memory comes from a resource
// that can be released (e.g. a memory map) in a Handle: after Close, queries
// touching it fail with ErrReleased instead of reading freed memory.
//
// Adapters make gonum *mat.Dense and ctessum/sparse *DenseArray values usable
// as chunks; *matrix.Dense and *matrix.View are chunks out of the box.
package chunked
