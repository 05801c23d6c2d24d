// SPDX-License-Identifier: MIT

package seq

import (
	"fmt"
	"iter"

	"github.com/joschaschmiedt/syncopy/matrix"
)

// Indexed is a known-length lazy sequence with absolute positions.
// Element i is compute(i), evaluated on every access and never cached, so
// access is idempotent and order independent.
//
// Indexed is safe for concurrent use if compute is.
type Indexed[E any] struct {
	n       int
	compute func(i int) (E, error)
}

// NewIndexed wraps compute for positions [0, length).
func NewIndexed[E any](length int, compute func(i int) (E, error)) (*Indexed[E], error) {
	if compute == nil {
		return nil, fmt.Errorf("seq.NewIndexed: %w", ErrNilProducer)
	}
	if length < 0 {
		return nil, fmt.Errorf("seq.NewIndexed(%d): %w", length, ErrNegativeLength)
	}

	return &Indexed[E]{n: length, compute: compute}, nil
}

// Len returns the element count.
func (x *Indexed[E]) Len() int { return x.n }

// At returns element i.
func (x *Indexed[E]) At(i int) (E, error) {
	var zero E
	if err := matrix.ValidateIndex("idx", i, x.n); err != nil {
		return zero, err
	}
	e, err := x.compute(i)
	if err != nil {
		return zero, fmt.Errorf("Indexed.At(%d): %w", i, err)
	}

	return e, nil
}

// Slice returns elements start, start+step, ... < stop.
// Bounds and step follow Sequence.Slice.
func (x *Indexed[E]) Slice(start, stop, step int) ([]E, error) {
	if err := matrix.ValidateRange("idx", start, stop, x.n); err != nil {
		return nil, err
	}
	if step < 0 {
		return nil, fmt.Errorf("Indexed.Slice(%d,%d,%d): %w", start, stop, step, ErrInvalidStep)
	}
	if step == 0 {
		step = 1
	}

	out := make([]E, 0, (stop-start+step-1)/step)
	for i := start; i < stop; i += step {
		e, err := x.compute(i)
		if err != nil {
			return nil, fmt.Errorf("Indexed.Slice(%d,%d,%d): at %d: %w", start, stop, step, i, err)
		}
		out = append(out, e)
	}

	return out, nil
}

// Window is Slice with optional bounds.
func (x *Indexed[E]) Window(b Bounds) ([]E, error) {
	return x.Slice(b.resolve(x.n))
}

// Take returns the elements at indices, in the order given. Every index is
// validated before anything is computed.
func (x *Indexed[E]) Take(indices []int) ([]E, error) {
	for _, ix := range indices {
		if err := matrix.ValidateIndex("idx", ix, x.n); err != nil {
			return nil, err
		}
	}

	out := make([]E, 0, len(indices))
	for _, ix := range indices {
		e, err := x.compute(ix)
		if err != nil {
			return nil, fmt.Errorf("Indexed.Take: at %d: %w", ix, err)
		}
		out = append(out, e)
	}

	return out, nil
}

// All iterates every element in order. Unlike Sequence.All it can be
// ranged over any number of times. A compute error is yielded once and
// ends the iteration.
func (x *Indexed[E]) All() iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		for i := 0; i < x.n; i++ {
			e, err := x.compute(i)
			if err != nil {
				err = fmt.Errorf("Indexed.All: at %d: %w", i, err)
			}
			if !yield(e, err) || err != nil {
				return
			}
		}
	}
}

// Sequence returns a fresh cursor-relative Sequence over the same elements.
func (x *Indexed[E]) Sequence() *Sequence[E] {
	return &Sequence[E]{next: Map(x.n, x.compute), n: x.n}
}

// String returns "<n> element iterable".
func (x *Indexed[E]) String() string {
	return fmt.Sprintf("%d element iterable", x.n)
}
