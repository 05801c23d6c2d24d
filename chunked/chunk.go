// SPDX-License-Identifier: MIT

package chunked

import (
	"fmt"
	"sync"

	"github.com/joschaschmiedt/syncopy/matrix"
)

// Chunk is an externally owned 2-D data block.
//
// Shape must report exactly two dimensions (rows, cols). Slice returns a
// borrowed view of the half-open window [r0:r1, c0:c1) in chunk-local
// coordinates without copying.
//
// A VirtualMatrix never owns chunk storage: the backing resource (an open
// memory map, a gonum matrix, ...) must outlive every view derived from it.
// *matrix.Dense and *matrix.View satisfy Chunk.
type Chunk[T matrix.Element] interface {
	Shape() []int
	Slice(r0, r1, c0, c1 int) (*matrix.View[T], error)
}

// Dtyped is implemented by chunks that know the dtype of their on-disk data.
// New refuses to mix chunks whose declared dtypes differ.
type Dtyped interface {
	Dtype() matrix.Dtype
}

var (
	_ Chunk[float64] = (*matrix.Dense[float64])(nil)
	_ Chunk[float64] = (*matrix.View[float64])(nil)
	_ Chunk[float64] = (*Handle[float64])(nil)
)

// Handle ties a chunk to the lifetime of its backing resource.
//
// Close runs the release function exactly once and marks the handle dead;
// every later Slice fails with ErrReleased instead of touching freed memory.
// Views handed out before Close are NOT revoked: keeping the resource alive
// while such views are in use stays the caller's responsibility.
//
// Concurrency: Slice and Close may be called from different goroutines;
// Close waits for in-flight Slice calls.
type Handle[T matrix.Element] struct {
	chunk   Chunk[T]
	release func() error

	mu     sync.RWMutex
	closed bool
	once   sync.Once
	err    error
}

// NewHandle wraps c. release may be nil when nothing needs freeing.
func NewHandle[T matrix.Element](c Chunk[T], release func() error) (*Handle[T], error) {
	if c == nil {
		return nil, fmt.Errorf("NewHandle: %w", ErrNilChunk)
	}

	return &Handle[T]{chunk: c, release: release}, nil
}

// Shape forwards to the wrapped chunk. Shape metadata stays readable after Close.
func (h *Handle[T]) Shape() []int { return h.chunk.Shape() }

// Dtype forwards the wrapped chunk's declared dtype, or the in-memory one.
func (h *Handle[T]) Dtype() matrix.Dtype {
	if d, ok := h.chunk.(Dtyped); ok {
		return d.Dtype()
	}

	return matrix.DtypeOf[T]()
}

// Slice forwards to the wrapped chunk while the handle is alive.
func (h *Handle[T]) Slice(r0, r1, c0, c1 int) (*matrix.View[T], error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return nil, fmt.Errorf("Handle.Slice(%d:%d,%d:%d): %w", r0, r1, c0, c1, ErrReleased)
	}

	return h.chunk.Slice(r0, r1, c0, c1)
}

// Alive reports whether Close has not been called yet.
func (h *Handle[T]) Alive() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return !h.closed
}

// Close releases the backing resource once; later calls return the first result.
func (h *Handle[T]) Close() error {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		h.mu.Unlock()
		if h.release != nil {
			h.err = h.release()
		}
	})

	return h.err
}
