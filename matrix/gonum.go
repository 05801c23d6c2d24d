// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum wraps the storage of a gonum *mat.Dense as a borrowed View.
// No data is copied; writes through the view are visible in m.
// Complexity: O(1).
func FromGonum(m *mat.Dense) (*View[float64], error) {
	if m == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	raw := m.RawMatrix()

	return NewView(raw.Data, raw.Rows, raw.Cols, raw.Stride)
}

// ToGonum copies a block into a new gonum *mat.Dense.
// gonum rejects zero-sized matrices, so zero-area blocks return ErrBadShape.
// Complexity: O(r*c).
func ToGonum(b Block[float64]) (*mat.Dense, error) {
	if b == nil {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilMatrix)
	}
	if b.Rows() == 0 || b.Cols() == 0 {
		return nil, fmt.Errorf("ToGonum(%dx%d): %w", b.Rows(), b.Cols(), ErrBadShape)
	}

	var data []float64
	switch src := b.(type) {
	case *Dense[float64]:
		data = src.Clone().data
	case *View[float64]:
		data = src.Materialize().data
	}

	return mat.NewDense(b.Rows(), b.Cols(), data), nil
}
