// SPDX-License-Identifier: MIT

package chunked

import (
	"fmt"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/joschaschmiedt/syncopy/matrix"
)

// GonumChunk exposes a gonum *mat.Dense as a float64 chunk.
// Slices alias the gonum storage (no copy).
type GonumChunk struct {
	m *mat.Dense
}

// FromGonum wraps m. A nil matrix is rejected with ErrNilChunk.
func FromGonum(m *mat.Dense) (*GonumChunk, error) {
	if m == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilChunk)
	}

	return &GonumChunk{m: m}, nil
}

// Shape returns {rows, cols}.
func (g *GonumChunk) Shape() []int {
	r, c := g.m.Dims()
	return []int{r, c}
}

// Slice returns a borrowed view over the gonum buffer.
func (g *GonumChunk) Slice(r0, r1, c0, c1 int) (*matrix.View[float64], error) {
	v, err := matrix.FromGonum(g.m)
	if err != nil {
		return nil, err
	}

	return v.Slice(r0, r1, c0, c1)
}

// ArrayChunk exposes a ctessum/sparse DenseArray as a float64 chunk.
// DenseArray is N-dimensional; Shape reports its real rank so New can reject
// anything that is not 2-D.
type ArrayChunk struct {
	a *sparse.DenseArray
}

// FromDenseArray wraps a. A nil array is rejected with ErrNilChunk.
func FromDenseArray(a *sparse.DenseArray) (*ArrayChunk, error) {
	if a == nil {
		return nil, fmt.Errorf("FromDenseArray: %w", ErrNilChunk)
	}

	return &ArrayChunk{a: a}, nil
}

// Shape returns the array's shape verbatim (any rank).
func (c *ArrayChunk) Shape() []int {
	return append([]int(nil), c.a.Shape...)
}

// Slice returns a borrowed view over Elements (row-major, stride == cols).
func (c *ArrayChunk) Slice(r0, r1, c0, c1 int) (*matrix.View[float64], error) {
	if len(c.a.Shape) != 2 {
		return nil, fmt.Errorf("ArrayChunk.Slice: rank %d: %w", len(c.a.Shape), ErrNotMatrix)
	}
	rows, cols := c.a.Shape[0], c.a.Shape[1]
	v, err := matrix.NewView(c.a.Elements, rows, cols, cols)
	if err != nil {
		return nil, err
	}

	return v.Slice(r0, r1, c0, c1)
}
