// SPDX-License-Identifier: MIT

// Package segment - Data: a VirtualMatrix bound to a table of row segments.
//
// Purpose:
//   - Hand out segments (row ranges of the matrix) lazily, either through a
//     fresh cursor Sequence per call or by absolute position.
//   - Expose epoch metadata only when the segmentation kind is ByEpoch.

package segment

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/joschaschmiedt/syncopy/chunked"
	"github.com/joschaschmiedt/syncopy/matrix"
	"github.com/joschaschmiedt/syncopy/seq"
)

// Unit is a time unit accepted by Data.Time.
type Unit string

// Supported time units.
const (
	Hour        Unit = "h"
	Minute      Unit = "min"
	Second      Unit = "s"
	Millisecond Unit = "ms"
	Nanosecond  Unit = "ns"
)

// perSecond converts seconds into each unit.
var perSecond = map[Unit]float64{
	Hour:        1.0 / 3600,
	Minute:      1.0 / 60,
	Second:      1,
	Millisecond: 1e3,
	Nanosecond:  1e9,
}

// Data binds a VirtualMatrix to a segment Table.
// Apart from the append-only provenance log it is read-only after New, and
// it is safe for concurrent use when the matrix's chunks are.
type Data[T matrix.Element] struct {
	vm     *chunked.VirtualMatrix[T]
	table  Table
	kind   Kind
	labels []string
	idx    *seq.Indexed[matrix.Block[T]]
	prov   *provenance
	opts   Options
}

// New validates every segment of table against the rows of vm.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil vm.
//   - ErrBadTable for an empty table, ErrUnknownKind for an undeclared kind.
//   - ErrLabelCount when WithLabels does not name every column.
//   - *matrix.BoundsError naming the offending segment.
func New[T matrix.Element](vm *chunked.VirtualMatrix[T], table Table, kind Kind, opts ...Option) (*Data[T], error) {
	if vm == nil {
		return nil, fmt.Errorf("segment.New: %w", matrix.ErrNilMatrix)
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("segment.New: %w", ErrBadTable)
	}
	if !kind.valid() {
		return nil, fmt.Errorf("segment.New: %s: %w", kind, ErrUnknownKind)
	}

	m, n := vm.Shape()
	for i, r := range table.ranges {
		if err := matrix.ValidateRange(fmt.Sprintf("segment %d", i), r.Start, r.Stop, m); err != nil {
			return nil, err
		}
	}

	o := gatherOptions(opts...)
	labels := o.labels
	if labels == nil {
		labels = make([]string, n)
		for j := range labels {
			labels[j] = fmt.Sprintf("channel%03d", j)
		}
	}
	if len(labels) != n {
		return nil, fmt.Errorf("segment.New: %d labels for %d columns: %w", len(labels), n, ErrLabelCount)
	}

	d := &Data[T]{vm: vm, table: table, kind: kind, labels: labels, opts: o}
	idx, err := seq.NewIndexed(table.Len(), d.segment)
	if err != nil {
		return nil, fmt.Errorf("segment.New: %w", err)
	}
	d.idx = idx
	d.prov = newProvenance(o.clock())
	d.AppendLog(fmt.Sprintf("Created %s data", kind))

	return d, nil
}

// segment returns segment i through VirtualMatrix.Rows.
func (d *Data[T]) segment(i int) (matrix.Block[T], error) {
	r := d.table.ranges[i]
	b, err := d.vm.Rows(r.Start, r.Stop)
	if err != nil {
		return nil, err
	}
	d.opts.log.WithFields(logrus.Fields{
		"segment":   i,
		"start":     r.Start,
		"stop":      r.Stop,
		"ownership": b.Ownership().String(),
	}).Debug("segment resolved")

	return b, nil
}

// Len returns the number of segments.
func (d *Data[T]) Len() int { return d.table.Len() }

// Kind returns the segmentation kind fixed at construction.
func (d *Data[T]) Kind() Kind { return d.kind }

// Table returns the segment table.
func (d *Data[T]) Table() Table { return d.table }

// Matrix returns the underlying VirtualMatrix.
func (d *Data[T]) Matrix() *chunked.VirtualMatrix[T] { return d.vm }

// SampleRate returns the configured sample rate, or 0 if none.
func (d *Data[T]) SampleRate() float64 { return d.opts.sampleRate }

// Labels returns a copy of the column labels.
func (d *Data[T]) Labels() []string { return append([]string(nil), d.labels...) }

// Dimord returns the dimension names in axis order: rows, then columns.
func (d *Data[T]) Dimord() []string { return []string{"time", "channel"} }

// Log returns the provenance log: a creation header followed by every entry
// added so far.
func (d *Data[T]) Log() string { return d.prov.String() }

// AppendLog adds msg to the provenance log, stamped with user, host and time.
// Entries are never rewritten or removed.
func (d *Data[T]) AppendLog(msg string) {
	at := d.opts.clock()
	d.prov.add(d.opts.user, d.opts.host, at, msg)
	d.opts.log.WithFields(logrus.Fields{
		"user": d.opts.user,
		"host": d.opts.host,
	}).Debug(msg)
}

// Shapes returns (rows, cols) of every segment.
func (d *Data[T]) Shapes() [][2]int {
	_, n := d.vm.Shape()
	out := make([][2]int, d.table.Len())
	for i, r := range d.table.ranges {
		out[i] = [2]int{r.Len(), n}
	}

	return out
}

// Segments returns a fresh cursor-relative sequence over all segments.
// Each call starts a new producer; see seq.Sequence for the cursor contract.
func (d *Data[T]) Segments() *seq.Sequence[matrix.Block[T]] {
	return d.idx.Sequence()
}

// Indexed returns absolute, idempotent access to the segments.
func (d *Data[T]) Indexed() *seq.Indexed[matrix.Block[T]] { return d.idx }

// Segment returns segment i: a borrowed view when it lies in one chunk,
// an owned copy otherwise.
func (d *Data[T]) Segment(i int) (matrix.Block[T], error) { return d.idx.At(i) }

// Trials is Segments for epoch-segmented data.
func (d *Data[T]) Trials() (*seq.Sequence[matrix.Block[T]], error) {
	if d.kind != ByEpoch {
		return nil, fmt.Errorf("Data.Trials: kind %s: %w", d.kind, ErrNotEpoched)
	}

	return d.Segments(), nil
}

// TrialInfo returns the epoch definition rows ([start, stop] or
// [start, stop, offset]).
func (d *Data[T]) TrialInfo() ([][]int, error) {
	if d.kind != ByEpoch {
		return nil, fmt.Errorf("Data.TrialInfo: kind %s: %w", d.kind, ErrNotEpoched)
	}

	return d.table.Rows(), nil
}

// SampleInfo returns the [start, stop) row interval of every epoch.
func (d *Data[T]) SampleInfo() ([][2]int, error) {
	if d.kind != ByEpoch {
		return nil, fmt.Errorf("Data.SampleInfo: kind %s: %w", d.kind, ErrNotEpoched)
	}
	out := make([][2]int, d.table.Len())
	for i, r := range d.table.ranges {
		out[i] = [2]int{r.Start, r.Stop}
	}

	return out, nil
}

// Time returns the time axis of segment i in unit: row k of the segment is
// at (Start+k) / sampleRate seconds, converted to unit.
func (d *Data[T]) Time(i int, unit Unit) ([]float64, error) {
	conv, ok := perSecond[unit]
	if !ok {
		return nil, fmt.Errorf("Data.Time(%d, %q): expected one of h, min, s, ms, ns: %w", i, unit, ErrUnknownUnit)
	}
	if d.opts.sampleRate == 0 {
		return nil, fmt.Errorf("Data.Time(%d, %q): %w", i, unit, ErrNoSampleRate)
	}
	if err := matrix.ValidateIndex("segment", i, d.table.Len()); err != nil {
		return nil, err
	}

	r := d.table.ranges[i]
	out := make([]float64, r.Len())
	for k := range out {
		out[k] = float64(r.Start+k) * conv / d.opts.sampleRate
	}

	return out, nil
}

// Concat stacks segments start, start+step, ... < stop into one owned
// Dense. Selection follows seq.Sequence.Slice over a fresh sequence.
func (d *Data[T]) Concat(start, stop, step int) (*matrix.Dense[T], error) {
	parts, err := d.Segments().Slice(start, stop, step)
	if err != nil {
		return nil, fmt.Errorf("Data.Concat(%d,%d,%d): %w", start, stop, step, err)
	}

	out, err := matrix.VStack(parts...)
	if err != nil {
		return nil, fmt.Errorf("Data.Concat(%d,%d,%d): %w", start, stop, step, err)
	}

	return out, nil
}

// String summarizes the data, e.g. "trial data [5 x 2] in 3 segments".
func (d *Data[T]) String() string {
	m, n := d.vm.Shape()

	return fmt.Sprintf("%s data [%d x %d] in %d segments", d.kind, m, n, d.table.Len())
}
