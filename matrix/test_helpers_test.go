// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures: dense matrices filled with
//     their own flat index, so every element identifies its position.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joschaschmiedt/syncopy/matrix"
)

// seqDense returns an r×c Dense whose element (i, j) is base + i*c + j.
func seqDense(tb testing.TB, r, c int, base float64) *matrix.Dense[float64] {
	tb.Helper()
	data := make([]float64, r*c)
	for k := range data {
		data[k] = base + float64(k)
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// rowsOf reads every row of b into a [][]float64 for whole-block comparisons.
func rowsOf(tb testing.TB, b matrix.Block[float64]) [][]float64 {
	tb.Helper()
	out := make([][]float64, b.Rows())
	for i := range out {
		row, err := b.RowSlice(i)
		require.NoError(tb, err)
		out[i] = append([]float64(nil), row...)
	}

	return out
}
