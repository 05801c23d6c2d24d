// SPDX-License-Identifier: MIT

package segment

import "fmt"

// Range is one segment: the half-open row interval [Start, Stop) plus the
// trigger Offset of the epoch definition (0 when the table has no offsets).
type Range struct {
	Start  int
	Stop   int
	Offset int
}

// Len returns Stop-Start.
func (r Range) Len() int { return r.Stop - r.Start }

// Table is an ordered, immutable list of segment ranges.
// Ranges may overlap and need not be sorted.
type Table struct {
	ranges    []Range
	hasOffset bool
}

// NewTable builds a Table from rows of [start, stop] or [start, stop, offset].
// All rows must have the same width. Start and stop must be non-negative with
// start < stop; offsets may be negative.
func NewTable(rows [][]int) (Table, error) {
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("NewTable: no rows: %w", ErrBadTable)
	}

	width := len(rows[0])
	if width != 2 && width != 3 {
		return Table{}, fmt.Errorf("NewTable: %d columns, want 2 or 3: %w", width, ErrBadTable)
	}

	ranges := make([]Range, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return Table{}, fmt.Errorf("NewTable: row %d has %d columns, want %d: %w", i, len(row), width, ErrBadTable)
		}
		r := Range{Start: row[0], Stop: row[1]}
		if width == 3 {
			r.Offset = row[2]
		}
		if r.Start < 0 || r.Stop <= r.Start {
			return Table{}, fmt.Errorf("NewTable: row %d: [%d, %d) is not a non-empty non-negative range: %w", i, r.Start, r.Stop, ErrBadTable)
		}
		ranges[i] = r
	}

	return Table{ranges: ranges, hasOffset: width == 3}, nil
}

// Len returns the number of segments.
func (t Table) Len() int { return len(t.ranges) }

// At returns segment i. It panics if i is out of range, like a slice index.
func (t Table) At(i int) Range { return t.ranges[i] }

// Ranges returns a copy of all segments.
func (t Table) Ranges() []Range { return append([]Range(nil), t.ranges...) }

// HasOffset reports whether the table was built with an offset column.
func (t Table) HasOffset() bool { return t.hasOffset }

// Rows returns the table in the row form NewTable accepts.
func (t Table) Rows() [][]int {
	out := make([][]int, len(t.ranges))
	for i, r := range t.ranges {
		if t.hasOffset {
			out[i] = []int{r.Start, r.Stop, r.Offset}
		} else {
			out[i] = []int{r.Start, r.Stop}
		}
	}

	return out
}
