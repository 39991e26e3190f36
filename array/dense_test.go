// Package array_test contains unit tests for Dense, its constructors and
// the read/write helpers shared by all ownership modes.
package array_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strided/array"
	"github.com/katalvlaran/strided/ring"
)

func TestZeros(t *testing.T) {
	z, err := array.Zeros[float32](2, 3)
	require.NoError(t, err)
	rows, cols := z.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, 3, z.Stride())
	require.Equal(t, 6, z.Len())
	Compare(t, [][]float32{{0, 0, 0}, {0, 0, 0}}, z)

	empty, err := array.Zeros[int](0, 4)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	_, err = array.Zeros[int](-1, 2)
	require.ErrorIs(t, err, array.ErrBadShape)
}

// TestIdentity checks id(n)[i,j] == One iff i == j.
func TestIdentity(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		id, err := array.Identity[int64](n)
		require.NoError(t, err)
		require.Equal(t, n, id.Rows())
		require.Equal(t, n, id.Cols())
		require.NoError(t, id.Do(func(i, j int, v int64) bool {
			if i == j {
				require.Equal(t, ring.One[int64](), v)
			} else {
				require.Equal(t, ring.Zero[int64](), v)
			}
			return true
		}))
	}
	_, err := array.Identity[float64](-2)
	require.ErrorIs(t, err, array.ErrBadShape)
}

func TestFromFunc_RowMajorOrder(t *testing.T) {
	var calls [][2]int
	d, err := array.FromFunc(2, 3, func(i, j int) int {
		calls = append(calls, [2]int{i, j})
		return 10*i + j
	})
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, calls)
	Compare(t, [][]int{{0, 1, 2}, {10, 11, 12}}, d)

	_, err = array.FromFunc[int](2, 2, nil)
	require.ErrorIs(t, err, array.ErrNilArray)
}

// TestFromRows_Ragged checks the failure returns no array at all.
func TestFromRows_Ragged(t *testing.T) {
	d, err := array.FromRows([][]float64{{1, 2, 3}, {4, 5, 6, 7}})
	require.ErrorIs(t, err, array.ErrRaggedRows)
	require.Nil(t, d)
}

func TestFromRows_CopiesAndEmpty(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	d := MustRows(t, src)
	src[0][0] = 99
	require.Equal(t, 1, MustAt[int](t, d, 0, 0))

	empty := MustRows(t, [][]int{})
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

func TestFromSlice(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	d, err := array.FromSlice(3, 2, data)
	require.NoError(t, err)
	Compare(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, d)
	data[0] = 42
	require.Equal(t, 1, MustAt[int](t, d, 0, 0))

	_, err = array.FromSlice(2, 2, data)
	require.ErrorIs(t, err, array.ErrBadShape)
	_, err = array.FromSlice(-1, 2, data)
	require.ErrorIs(t, err, array.ErrBadShape)
}

func TestAtSetOutOfBounds(t *testing.T) {
	d, err := array.Zeros[float64](2, 2)
	require.NoError(t, err)

	_, err = d.At(-1, 0)
	require.ErrorIs(t, err, array.ErrOutOfBounds)
	_, err = d.At(0, 2)
	require.ErrorIs(t, err, array.ErrOutOfBounds)
	require.ErrorIs(t, d.Set(2, 0, 1.23), array.ErrOutOfBounds)
	require.ErrorIs(t, d.Set(0, -1, 4.56), array.ErrOutOfBounds)
	require.EqualError(t, d.Set(2, 0, 1), "Dense.Set(2,0): array: index out of bounds")
}

func TestSetGet(t *testing.T) {
	d, err := array.Zeros[float64](2, 3)
	require.NoError(t, err)
	require.NoError(t, d.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt[float64](t, d, 1, 2))
}

func TestCloneIndependence(t *testing.T) {
	d := MustRows(t, [][]float64{{1, 0}, {0, 2}})
	c, err := d.Clone()
	require.NoError(t, err)
	require.NoError(t, c.Set(0, 0, 3))
	require.Equal(t, 1.0, MustAt[float64](t, d, 0, 0))
	require.Equal(t, 3.0, MustAt[float64](t, c, 0, 0))
}

func TestStringOutput(t *testing.T) {
	d := MustRows(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", d.String())

	empty, err := array.Zeros[int](0, 3)
	require.NoError(t, err)
	require.Equal(t, "", empty.String())
}

func TestApplyFillDo(t *testing.T) {
	d := MustRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, d.Apply(func(i, j, v int) int { return v * 10 }))
	Compare(t, [][]int{{10, 20}, {30, 40}}, d)

	var seen []int
	require.NoError(t, d.Do(func(i, j, v int) bool {
		seen = append(seen, v)
		return len(seen) < 3 // stop after the third element
	}))
	require.Equal(t, []int{10, 20, 30}, seen)

	require.NoError(t, d.Fill(7))
	Compare(t, [][]int{{7, 7}, {7, 7}}, d)

	require.ErrorIs(t, d.Apply(nil), array.ErrNilArray)
	require.ErrorIs(t, d.Do(nil), array.ErrNilArray)
}

func TestCopyFrom(t *testing.T) {
	dst, err := array.Zeros[int](2, 2)
	require.NoError(t, err)
	src := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	require.ErrorIs(t, dst.CopyFrom(src), array.ErrShapeMismatch)
	require.ErrorIs(t, dst.CopyFrom(nil), array.ErrNilArray)

	v, err := src.Slice(array.All(), array.From(1))
	require.NoError(t, err)
	require.NoError(t, dst.CopyFrom(v))
	require.NoError(t, v.Release())
	Compare(t, [][]int{{2, 3}, {5, 6}}, dst)
}

func TestRawData(t *testing.T) {
	d := MustRows(t, [][]int{{1, 2}, {3, 4}})
	raw, err := d.RawData()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, raw)

	v, err := d.Slice(array.All(), array.All())
	require.NoError(t, err)
	_, err = d.RawData()
	require.ErrorIs(t, err, array.ErrAliasingViolation)
	require.NoError(t, v.Release())
}

func TestEqual(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{1, 2}, {3, 4}})
	c := MustRows(t, [][]int{{1, 2, 0}, {3, 4, 0}})

	eq, err := array.Equal[int](a, b)
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = array.Equal[int](a, c)
	require.NoError(t, err)
	require.False(t, eq)

	// A view of c with the same values compares equal despite a different stride.
	v, err := c.Slice(array.All(), array.To(2))
	require.NoError(t, err)
	eq, err = array.Equal[int](a, v)
	require.NoError(t, err)
	require.True(t, eq)
	require.NoError(t, v.Release())

	require.NoError(t, b.Set(1, 1, 5))
	eq, err = array.Equal[int](a, b)
	require.NoError(t, err)
	require.False(t, eq)

	_, err = array.Equal[int](a, nil)
	require.ErrorIs(t, err, array.ErrNilArray)
}
