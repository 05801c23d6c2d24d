// SPDX-License-Identifier: MIT

package seq

import "errors"

// Sentinel errors for sequence construction and access.
// Out-of-range positions are reported as *matrix.BoundsError.
var (
	// ErrNilProducer indicates New was given a nil producer.
	ErrNilProducer = errors.New("seq: nil producer")

	// ErrNegativeLength indicates a negative element count.
	ErrNegativeLength = errors.New("seq: negative length")

	// ErrExhausted is returned when the shared cursor runs past the last
	// element the producer can yield.
	ErrExhausted = errors.New("seq: producer exhausted")

	// ErrInvalidStep indicates a negative slice step.
	ErrInvalidStep = errors.New("seq: slice step must be positive")
)
