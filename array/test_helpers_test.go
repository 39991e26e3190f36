// SPDX-License-Identifier: MIT
// Package array_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors, views and Multiply.

package array_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strided/array"
)

// MustRows builds a Dense from a nested literal or fails the test.
func MustRows[T any](t testing.TB, rows [][]T) *array.Dense[T] {
	t.Helper()
	d, err := array.FromRows(rows)
	require.NoError(t, err)

	return d
}

// MustAt reads (i,j) or fails the test.
func MustAt[T any](t testing.TB, r array.Readable[T], i, j int) T {
	t.Helper()
	v, err := r.At(i, j)
	require.NoError(t, err)

	return v
}

// Compare asserts that r holds exactly want (shape and values).
func Compare[T any](t testing.TB, want [][]T, r array.Readable[T]) {
	t.Helper()
	require.Equal(t, len(want), r.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), r.Cols(), "cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, r, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// RandomInts fills a rows×cols float64 array with integers in [-9, 9] so that
// products are exact in floating point.
func RandomInts(t testing.TB, rows, cols int, seed int64) *array.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d, err := array.FromFunc(rows, cols, func(_, _ int) float64 { return float64(rng.Intn(19) - 9) })
	require.NoError(t, err)

	return d
}

// sample3x4 is the matrix used by the package walkthrough.
func sample3x4(t testing.TB) *array.Dense[float64] {
	return MustRows(t, [][]float64{
		{1, 2, 7, 9},
		{3, 4, 8, 5},
		{5, 6, 4, 3},
	})
}
