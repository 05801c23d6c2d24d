// SPDX-License-Identifier: MIT
package seq_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joschaschmiedt/syncopy/matrix"
	"github.com/joschaschmiedt/syncopy/seq"
)

func squares(t *testing.T, n int) *seq.Indexed[int] {
	t.Helper()
	x, err := seq.NewIndexed(n, func(i int) (int, error) { return i * i, nil })
	require.NoError(t, err)

	return x
}

func TestNewIndexedValidation(t *testing.T) {
	_, err := seq.NewIndexed[int](3, nil)
	require.ErrorIs(t, err, seq.ErrNilProducer)

	_, err = seq.NewIndexed(-2, func(int) (int, error) { return 0, nil })
	require.ErrorIs(t, err, seq.ErrNegativeLength)
}

func TestIndexedIsIdempotent(t *testing.T) {
	x := squares(t, 5)

	for _, i := range []int{3, 0, 3, 4, 0} {
		v, err := x.At(i)
		require.NoError(t, err)
		require.Equal(t, i*i, v)
	}

	_, err := x.At(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestIndexedIncreasingSequence(t *testing.T) {
	x, err := seq.NewIndexed(5, func(i int) (int, error) { return i, nil })
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		v, err := x.At(i)
		require.NoError(t, err)
		require.Equal(t, i, v)
	}

	v, err := x.At(4) // nothing is consumed, so the last element stays reachable
	require.NoError(t, err)
	require.Equal(t, 4, v)
}

func TestIndexedSliceTake(t *testing.T) {
	x := squares(t, 6)

	got, err := x.Slice(1, 6, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 9, 25}, got)

	got, err = x.Window(seq.Bounds{Start: seq.Pos(4)})
	require.NoError(t, err)
	require.Equal(t, []int{16, 25}, got)

	got, err = x.Take([]int{5, 0, 5})
	require.NoError(t, err)
	require.Equal(t, []int{25, 0, 25}, got)

	_, err = x.Take([]int{0, -1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = x.Slice(0, 2, -1)
	require.ErrorIs(t, err, seq.ErrInvalidStep)
}

func TestIndexedAllRepeatable(t *testing.T) {
	x := squares(t, 3)

	for pass := 0; pass < 2; pass++ {
		var got []int
		for v, err := range x.All() {
			require.NoError(t, err)
			got = append(got, v)
		}
		require.Equal(t, []int{0, 1, 4}, got)
	}
}

func TestIndexedComputeError(t *testing.T) {
	boom := errors.New("chunk unavailable")
	x, err := seq.NewIndexed(3, func(i int) (int, error) {
		if i == 2 {
			return 0, boom
		}
		return i, nil
	})
	require.NoError(t, err)

	_, err = x.At(2)
	require.ErrorIs(t, err, boom)
	_, err = x.Slice(0, 3, 1)
	require.ErrorIs(t, err, boom)

	var seen int
	for _, err := range x.All() {
		seen++
		if err != nil {
			require.ErrorIs(t, err, boom)
		}
	}
	require.Equal(t, 3, seen)
}

func TestIndexedSequenceIsFresh(t *testing.T) {
	x := squares(t, 4)

	s1 := x.Sequence()
	v, err := s1.Index(2)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	s2 := x.Sequence() // independent cursor
	v, err = s2.Index(0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
	require.Equal(t, "4 element iterable", x.String())
}

func TestIndexedConcurrent(t *testing.T) {
	x := squares(t, 100)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 99; i >= 0; i-- {
				v, err := x.At(i)
				if err != nil || v != i*i {
					t.Errorf("At(%d) = %d, %v", i, v, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
