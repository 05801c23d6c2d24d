// SPDX-License-Identifier: MIT
package chunked_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joschaschmiedt/syncopy/chunked"
	"github.com/joschaschmiedt/syncopy/matrix"
)

// seqChunk returns an r×c Dense whose element (i, j) is base + i*c + j.
func seqChunk(tb testing.TB, r, c int, base float64) *matrix.Dense[float64] {
	tb.Helper()
	data := make([]float64, r*c)
	for k := range data {
		data[k] = base + float64(k)
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// twoChunks builds the canonical fixture: a 3×2 chunk (0..5) over a
// 2×2 chunk (100..103), M = 5, N = 2.
func twoChunks(tb testing.TB, opts ...chunked.Option) (*chunked.VirtualMatrix[float64], *matrix.Dense[float64], *matrix.Dense[float64]) {
	tb.Helper()
	a := seqChunk(tb, 3, 2, 0)
	b := seqChunk(tb, 2, 2, 100)
	vm, err := chunked.New([]chunked.Chunk[float64]{a, b}, opts...)
	require.NoError(tb, err)

	return vm, a, b
}

// rowsOf reads every row of blk for whole-block comparisons.
func rowsOf(tb testing.TB, blk matrix.Block[float64]) [][]float64 {
	tb.Helper()
	out := make([][]float64, blk.Rows())
	for i := range out {
		row, err := blk.RowSlice(i)
		require.NoError(tb, err)
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// typedChunk declares a dtype different from its Go element type.
type typedChunk struct {
	*matrix.Dense[float64]
	dt string
}

func (c typedChunk) Dtype() matrix.Dtype {
	dt, err := matrix.ParseDtype(c.dt)
	if err != nil {
		panic(err)
	}

	return dt
}
