// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joschaschmiedt/syncopy/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](-1, 5)            // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense[float64](5, -1)             // negative cols
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseZeroArea allows empty shapes.
func TestNewDenseZeroArea(t *testing.T) {
	m, err := matrix.NewDense[int32](0, 4)
	require.NoError(t, err)
	require.Equal(t, []int{0, 4}, m.Shape())
	require.Empty(t, m.Raw())
}

// TestNewDenseFrom adopts the buffer without copying and checks its length.
func TestNewDenseFrom(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)

	data[4] = 50 // mutate the adopted buffer
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 50.0, v) // change visible through the matrix

	_, err = matrix.NewDenseFrom(2, 2, data) // 4 != 6
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                             // define expected row and column counts
	m, err := matrix.NewDense[float64](rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)                        // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows())              // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols())              // assert Cols() equals expected cols
	require.Equal(t, matrix.Owned, m.Ownership()) // Dense always owns its buffer
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)                  // assert matrix creation succeeded

	_, err = m.At(-1, 0)                          // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4.56)                      // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.RowSlice(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 3) // create a 2x3 Dense matrix
	require.NoError(t, err)                  // ensure valid creation

	err = m.Set(1, 2, 7.89) // set element at row 1, column 2
	require.NoError(t, err) // assert Set() succeeded

	val, err := m.At(1, 2)      // retrieve the set element
	require.NoError(t, err)     // assert At() succeeded
	require.Equal(t, 7.89, val) // assert retrieved value matches set value
}

// TestRowSliceCapacity ensures an appended row cannot spill into the next one.
func TestRowSliceCapacity(t *testing.T) {
	m := seqDense(t, 2, 2, 0)
	row, err := m.RowSlice(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, row)
	require.Equal(t, 2, cap(row))

	_ = append(row, 99) // reallocates; must not overwrite (1,0)
	v, _ := m.At(1, 0)
	require.Equal(t, 2.0, v)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := seqDense(t, 2, 2, 1) // [[1 2] [3 4]]

	clone := m.Clone()       // clone the matrix
	_ = clone.Set(0, 0, 3.0) // modify the clone, but not the original

	origVal, err := m.At(0, 0)     // retrieve original matrix element
	require.NoError(t, err)        // assert At() succeeded on original
	require.Equal(t, 1.0, origVal) // expect original remains unchanged

	cloneVal, err := clone.At(0, 0) // retrieve clone's element
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestDenseString renders one bracketed line per row.
func TestDenseString(t *testing.T) {
	m := seqDense(t, 2, 2, 1)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestDenseSliceSharesStorage checks that Slice returns a borrowed window.
func TestDenseSliceSharesStorage(t *testing.T) {
	m := seqDense(t, 3, 3, 0) // 0..8

	v, err := m.Slice(1, 3, 1, 3) // [[4 5] [7 8]]
	require.NoError(t, err)
	require.Equal(t, matrix.Borrowed, v.Ownership())
	require.Equal(t, [][]float64{{4, 5}, {7, 8}}, rowsOf(t, v))

	require.NoError(t, v.Set(0, 0, -4)) // write through
	got, _ := m.At(1, 1)
	require.Equal(t, -4.0, got)

	_, err = m.Slice(2, 1, 0, 3) // r1 < r0
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.Slice(0, 4, 0, 3) // r1 > rows
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
