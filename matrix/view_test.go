// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joschaschmiedt/syncopy/matrix"
)

// TestNewViewValidation covers stride and buffer-length checks.
func TestNewViewValidation(t *testing.T) {
	buf := make([]int16, 10)

	tests := []struct {
		name             string
		rows, cols, strd int
		wantErr          error
	}{
		{"exact fit", 2, 5, 5, nil},
		{"padded stride", 2, 3, 5, nil},
		{"last row short", 2, 5, 6, matrix.ErrInvalidDimensions}, // needs 11 elements
		{"stride below cols", 2, 3, 2, matrix.ErrInvalidDimensions},
		{"negative rows", -1, 3, 3, matrix.ErrInvalidDimensions},
		{"zero area", 0, 3, 3, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := matrix.NewView(buf, tc.rows, tc.cols, tc.strd)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, []int{tc.rows, tc.cols}, v.Shape())
			require.Equal(t, tc.strd, v.Stride())
		})
	}
}

// TestViewStrided reads a padded buffer through its stride.
func TestViewStrided(t *testing.T) {
	// 2x2 logical matrix stored with one padding element per row.
	buf := []float64{1, 2, -1, 3, 4, -1}
	v, err := matrix.NewView(buf, 2, 2, 3)
	require.NoError(t, err)

	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rowsOf(t, v))
	require.Equal(t, "[1, 2]\n[3, 4]\n", v.String())

	_, err = v.At(0, 2) // would hit the padding
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(2, 0, 0), matrix.ErrOutOfRange)
}

// TestViewSliceComposes narrows a view twice and writes through both.
func TestViewSliceComposes(t *testing.T) {
	base := seqDense(t, 4, 4, 0) // 0..15

	outer, err := base.Slice(1, 4, 1, 4) // rows 1..3, cols 1..3
	require.NoError(t, err)
	inner, err := outer.Slice(1, 2, 0, 2) // global row 2, cols 1..2
	require.NoError(t, err)
	require.Equal(t, [][]float64{{9, 10}}, rowsOf(t, inner))

	require.NoError(t, inner.Set(0, 1, 100))
	got, _ := base.At(2, 2)
	require.Equal(t, 100.0, got)

	_, err = outer.Slice(0, 4, 0, 1) // taller than the view
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestViewMaterializeIsOwned ensures Materialize detaches from the source.
func TestViewMaterializeIsOwned(t *testing.T) {
	base := seqDense(t, 3, 3, 0)
	v, err := base.Slice(0, 2, 1, 3)
	require.NoError(t, err)

	d := v.Materialize()
	require.Equal(t, matrix.Owned, d.Ownership())
	require.Equal(t, [][]float64{{1, 2}, {4, 5}}, rowsOf(t, d))

	require.NoError(t, d.Set(0, 0, -1))
	src, _ := base.At(0, 1)
	require.Equal(t, 1.0, src) // source untouched
}

// TestOwnershipString covers the tag names.
func TestOwnershipString(t *testing.T) {
	require.Equal(t, "borrowed", matrix.Borrowed.String())
	require.Equal(t, "owned", matrix.Owned.String())
	require.Equal(t, "unknown", matrix.Ownership(0).String())
}
