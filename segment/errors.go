// SPDX-License-Identifier: MIT

package segment

import "errors"

var (
	// ErrBadTable is returned by NewTable for a malformed segment definition.
	ErrBadTable = errors.New("segment: malformed segment table")

	// ErrUnknownKind is returned by ParseKind for a label other than "trial" or "other".
	ErrUnknownKind = errors.New("segment: unknown segmentation kind")

	// ErrNotEpoched is returned by epoch accessors on data not segmented by epoch.
	ErrNotEpoched = errors.New("segment: data is not segmented by epoch")

	// ErrUnknownUnit is returned by Time for a unit other than h, min, s, ms, ns.
	ErrUnknownUnit = errors.New("segment: unknown time unit")

	// ErrNoSampleRate is returned by Time when no sample rate was configured.
	ErrNoSampleRate = errors.New("segment: sample rate not set")

	// ErrLabelCount is returned by New when the labels do not match the column count.
	ErrLabelCount = errors.New("segment: label count differs from column count")
)
