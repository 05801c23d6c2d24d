// SPDX-License-Identifier: MIT

package chunked

import (
	"fmt"
	"math"

	"github.com/joschaschmiedt/syncopy/matrix"
)

type selectorKind uint8

const (
	kindInvalid selectorKind = iota // zero Selector: rejected with ErrSelectorType
	kindIndex                       // single integer ⇒ length-1 range
	kindRange                       // half-open range with optional bounds
)

// Selector picks rows or columns of a VirtualMatrix: a single index or a
// half-open range whose missing bounds default to 0 and the full extent.
// The zero Selector is invalid; build one with Index, Range, From, To or All.
type Selector struct {
	kind     selectorKind
	start    int
	stop     int
	hasStart bool
	hasStop  bool
}

// Index selects the single position i (the range [i, i+1)).
func Index(i int) Selector { return Selector{kind: kindIndex, start: i, stop: i + 1, hasStart: true, hasStop: true} }

// Range selects [start, stop).
func Range(start, stop int) Selector {
	return Selector{kind: kindRange, start: start, stop: stop, hasStart: true, hasStop: true}
}

// From selects [start, extent).
func From(start int) Selector { return Selector{kind: kindRange, start: start, hasStart: true} }

// To selects [0, stop).
func To(stop int) Selector { return Selector{kind: kindRange, stop: stop, hasStop: true} }

// All selects the full extent.
func All() Selector { return Selector{kind: kindRange} }

// ParseSelector converts a dynamic value into a Selector.
// Accepted: any Go integer kind, Selector, [2]int (start, stop).
// Everything else, including nil and floats, fails with ErrSelectorType.
func ParseSelector(v any) (Selector, error) {
	switch x := v.(type) {
	case Selector:
		if x.kind == kindInvalid {
			return Selector{}, fmt.Errorf("ParseSelector(zero Selector): %w", ErrSelectorType)
		}
		return x, nil
	case [2]int:
		return Range(x[0], x[1]), nil
	case int:
		return parseSigned(int64(x))
	case int8:
		return Index(int(x)), nil
	case int16:
		return Index(int(x)), nil
	case int32:
		return Index(int(x)), nil
	case int64:
		return parseSigned(x)
	case uint8:
		return Index(int(x)), nil
	case uint16:
		return Index(int(x)), nil
	case uint32:
		return parseUnsigned(uint64(x))
	case uint:
		return parseUnsigned(uint64(x))
	case uint64:
		return parseUnsigned(x)
	default:
		return Selector{}, fmt.Errorf("ParseSelector(%T): %w", v, ErrSelectorType)
	}
}

// parseSigned guards Index against int truncation and stop overflow.
func parseSigned(x int64) (Selector, error) {
	if x < math.MinInt || x > math.MaxInt-1 {
		return Selector{}, matrix.NewBoundsError("idx", 0, math.MaxInt-1, x)
	}

	return Index(int(x)), nil
}

func parseUnsigned(u uint64) (Selector, error) {
	if u > math.MaxInt-1 {
		// Index(u) would overflow; report it as an out-of-range index.
		return Selector{}, matrix.NewBoundsError("idx", 0, math.MaxInt-1, u)
	}

	return Index(int(u)), nil
}

// span is a resolved half-open interval.
type span struct{ start, stop int }

// resolve applies defaults and validates against [0, extent).
func (s Selector) resolve(param string, extent int) (span, error) {
	switch s.kind {
	case kindIndex:
		if s.start < 0 || s.start >= extent {
			return span{}, matrix.NewBoundsError(param, 0, extent, s.start)
		}
		return span{s.start, s.stop}, nil
	case kindRange:
		sp := span{start: 0, stop: extent}
		if s.hasStart {
			sp.start = s.start
		}
		if s.hasStop {
			sp.stop = s.stop
		}
		if err := matrix.ValidateRange(param, sp.start, sp.stop, extent); err != nil {
			return span{}, err
		}
		return sp, nil
	default:
		return span{}, fmt.Errorf("%s: %w", param, ErrSelectorType)
	}
}

// String renders the selector in slice notation, e.g. "2", "2:5", ":".
func (s Selector) String() string {
	switch s.kind {
	case kindIndex:
		return fmt.Sprint(s.start)
	case kindRange:
		var lo, hi string
		if s.hasStart {
			lo = fmt.Sprint(s.start)
		}
		if s.hasStop {
			hi = fmt.Sprint(s.stop)
		}
		return lo + ":" + hi
	default:
		return "<invalid>"
	}
}
