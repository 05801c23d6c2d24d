// SPDX-License-Identifier: MIT

package segment

import "fmt"

// Kind tags how a Data value is segmented. It is fixed at construction;
// the epoch accessors (Trials, TrialInfo, SampleInfo) work only for ByEpoch.
type Kind uint8

const (
	// ByEpoch marks segments that are recording epochs (trials).
	ByEpoch Kind = iota + 1
	// Other marks any other segmentation.
	Other
)

// String returns the label used by ParseKind.
func (k Kind) String() string {
	switch k {
	case ByEpoch:
		return "trial"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps "trial" to ByEpoch and "other" to Other.
func ParseKind(label string) (Kind, error) {
	switch label {
	case "trial":
		return ByEpoch, nil
	case "other":
		return Other, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): expected one of trial, other: %w", label, ErrUnknownKind)
	}
}

// valid reports whether k is one of the declared kinds.
func (k Kind) valid() bool { return k == ByEpoch || k == Other }
