// SPDX-License-Identifier: MIT

// Package seq - Sequence: a known-length, single-pass, lazily computed sequence.
//
// Purpose:
//   - Expose elements of a forward-only producer by position without
//     materializing them up front.
//
// Cursor-relative contract:
//   - Every access consumes the SAME producer. Index(i) skips i elements from
//     wherever the cursor currently is, then returns the next one.
//   - Index(3) followed by Index(0) returns the element after the fourth one,
//     not element 0. Out-of-order access is therefore not idempotent.
//   - Use Indexed when true random access is needed.

package seq

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"sync"

	"github.com/joschaschmiedt/syncopy/matrix"
)

// Next produces the next element of a sequence.
// It returns io.EOF when there are no more elements.
type Next[E any] func() (E, error)

// FromSlice returns a producer yielding items in order.
func FromSlice[E any](items []E) Next[E] {
	var i int
	return func() (E, error) {
		if i == len(items) {
			var zero E
			return zero, io.EOF
		}
		i++
		return items[i-1], nil
	}
}

// Map returns a producer yielding f(0), f(1), ..., f(n-1), computing each
// element only when it is pulled.
func Map[E any](n int, f func(i int) (E, error)) Next[E] {
	var i int
	return func() (E, error) {
		if i >= n {
			var zero E
			return zero, io.EOF
		}
		i++
		return f(i - 1)
	}
}

// Sequence wraps a producer and its known length L.
// It holds no cache: each element is computed when the cursor reaches it.
//
// Concurrency: cursor movement is serialized by an internal mutex, but the
// cursor itself is shared, so interleaved callers see each other's progress.
type Sequence[E any] struct {
	mu   sync.Mutex
	next Next[E]
	n    int
	pos  int  // elements consumed so far
	done bool // producer returned io.EOF
}

// New wraps next with the known element count length.
func New[E any](next Next[E], length int) (*Sequence[E], error) {
	if next == nil {
		return nil, fmt.Errorf("seq.New: %w", ErrNilProducer)
	}
	if length < 0 {
		return nil, fmt.Errorf("seq.New(%d): %w", length, ErrNegativeLength)
	}

	return &Sequence[E]{next: next, n: length}, nil
}

// Len returns the stored element count; it never touches the producer.
func (s *Sequence[E]) Len() int { return s.n }

// Consumed returns how many elements the shared cursor has moved past.
func (s *Sequence[E]) Consumed() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pos
}

// pull advances the cursor by one. Caller holds s.mu.
func (s *Sequence[E]) pull() (E, error) {
	var zero E
	if s.done {
		return zero, io.EOF
	}
	e, err := s.next()
	if errors.Is(err, io.EOF) {
		s.done = true
		return zero, io.EOF
	}
	if err != nil {
		return zero, err
	}
	s.pos++

	return e, nil
}

// All iterates the remaining elements once, in producer order.
// A producer error is yielded once and ends the iteration. Once the
// producer is exhausted, All yields nothing.
func (s *Sequence[E]) All() iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		for {
			s.mu.Lock()
			e, err := s.pull()
			s.mu.Unlock()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(e, err) || err != nil {
				return
			}
		}
	}
}

// Index validates 0 <= i < Len(), skips i elements from the current cursor
// and returns the next one.
// MAIN DESCRIPTION:
//   - Cursor-relative access; see the package comment.
//
// Errors:
//   - *matrix.BoundsError for i outside [0, Len()-1].
//   - ErrExhausted when the producer runs dry first.
//   - Producer errors are wrapped and returned.
//
// Complexity:
//   - Time O(i) producer calls.
func (s *Sequence[E]) Index(i int) (E, error) {
	var zero E
	if err := matrix.ValidateIndex("idx", i, s.n); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.index(i)
}

// index is Index without validation or locking.
func (s *Sequence[E]) index(i int) (E, error) {
	var zero E
	for k := 0; k <= i; k++ {
		e, err := s.pull()
		if errors.Is(err, io.EOF) {
			return zero, fmt.Errorf("Sequence.Index(%d): after %d elements: %w", i, s.pos, ErrExhausted)
		}
		if err != nil {
			return zero, fmt.Errorf("Sequence.Index(%d): %w", i, err)
		}
		if k == i {
			return e, nil
		}
	}

	return zero, nil // unreachable: loop returns at k == i
}

// Slice takes the elements at relative positions start, start+step, ... < stop.
// MAIN DESCRIPTION:
//   - Skip-then-take over the shared cursor: the cursor advances by up to
//     stop elements whatever step is.
//
// Implementation:
//   - Stage 1: validate 0 <= start < Len(), 0 < stop <= Len(), start < stop;
//     step 0 means 1, negative steps fail with ErrInvalidStep.
//   - Stage 2: pull positions 0..stop-1, keeping the selected ones.
//
// Behavior highlights:
//   - If the producer runs dry early, the elements taken so far are returned
//     without error.
//
// Complexity:
//   - Time O(stop) producer calls, Space O((stop-start)/step).
func (s *Sequence[E]) Slice(start, stop, step int) ([]E, error) {
	if err := matrix.ValidateRange("idx", start, stop, s.n); err != nil {
		return nil, err
	}
	if step < 0 {
		return nil, fmt.Errorf("Sequence.Slice(%d,%d,%d): %w", start, stop, step, ErrInvalidStep)
	}
	if step == 0 {
		step = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]E, 0, (stop-start+step-1)/step)
	for p := 0; p < stop; p++ {
		e, err := s.pull()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Sequence.Slice(%d,%d,%d): %w", start, stop, step, err)
		}
		if p >= start && (p-start)%step == 0 {
			out = append(out, e)
		}
	}

	return out, nil
}

// Bounds is a slice request whose nil bounds default to 0 and Len().
// A zero Step means 1.
type Bounds struct {
	Start *int
	Stop  *int
	Step  int
}

// Pos returns a pointer to i, for filling Bounds literals.
func Pos(i int) *int { return &i }

// resolve fills the defaults of b for a sequence of length n.
func (b Bounds) resolve(n int) (start, stop, step int) {
	start, stop, step = 0, n, b.Step
	if b.Start != nil {
		start = *b.Start
	}
	if b.Stop != nil {
		stop = *b.Stop
	}

	return start, stop, step
}

// Window is Slice with optional bounds, e.g. Window(Bounds{Start: Pos(2)})
// takes everything from relative position 2 to Len().
func (s *Sequence[E]) Window(b Bounds) ([]E, error) {
	return s.Slice(b.resolve(s.n))
}

// Take validates every index against [0, Len()) and then resolves each one
// through Index semantics, in the order given. A non-increasing index list
// will generally exhaust the producer early (ErrExhausted).
func (s *Sequence[E]) Take(indices []int) ([]E, error) {
	for _, ix := range indices {
		if err := matrix.ValidateIndex("idx", ix, s.n); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]E, 0, len(indices))
	for _, ix := range indices {
		e, err := s.index(ix)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}

// String returns "<n> element iterable".
func (s *Sequence[E]) String() string {
	return fmt.Sprintf("%d element iterable", s.n)
}
