package array_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strided/array"
)

// TestBorrow_SliceMutWhileViewAlive: an exclusive borrow needs no other borrows.
func TestBorrow_SliceMutWhileViewAlive(t *testing.T) {
	d := sample3x4(t)
	v, err := d.Slice(array.All(), array.All())
	require.NoError(t, err)

	m, err := d.SliceMut(array.Index(0), array.All())
	require.ErrorIs(t, err, array.ErrAliasingViolation)
	require.Nil(t, m)

	require.NoError(t, v.Release())
	m, err = d.SliceMut(array.Index(0), array.All())
	require.NoError(t, err)
	require.NoError(t, m.Release())
}

func TestBorrow_OwnerFrozenWhileMutViewAlive(t *testing.T) {
	d := sample3x4(t)
	m, err := d.SliceMut(array.Index(0), array.Index(0))
	require.NoError(t, err)

	_, err = d.At(2, 3) // disjoint region still conflicts
	require.ErrorIs(t, err, array.ErrAliasingViolation)
	require.ErrorIs(t, d.Set(2, 3, 0), array.ErrAliasingViolation)
	_, err = d.Slice(array.All(), array.All())
	require.ErrorIs(t, err, array.ErrAliasingViolation)
	_, err = d.SliceMut(array.Index(2), array.All())
	require.ErrorIs(t, err, array.ErrAliasingViolation)
	_, err = d.Clone()
	require.ErrorIs(t, err, array.ErrAliasingViolation)
	require.ErrorIs(t, d.Do(func(_, _ int, _ float64) bool { return true }), array.ErrAliasingViolation)
	require.Equal(t, "<Dense 3x4: mutably borrowed>\n", d.String())

	shared, exclusive := d.Borrows()
	require.Zero(t, shared)
	require.True(t, exclusive)

	require.NoError(t, m.Release())
	_, err = d.At(2, 3)
	require.NoError(t, err)
}

func TestBorrow_ReadersCoexist(t *testing.T) {
	d := sample3x4(t)
	v1, err := d.Slice(array.To(2), array.All())
	require.NoError(t, err)
	v2, err := d.Slice(array.From(1), array.All())
	require.NoError(t, err)

	// Reads of the owner stay legal, writes do not.
	require.Equal(t, 1.0, MustAt[float64](t, d, 0, 0))
	require.ErrorIs(t, d.Set(0, 0, 0), array.ErrAliasingViolation)
	require.ErrorIs(t, d.Fill(0), array.ErrAliasingViolation)
	shared, _ := d.Borrows()
	require.Equal(t, 2, shared)

	require.NoError(t, v1.Release())
	require.ErrorIs(t, d.Set(0, 0, 0), array.ErrAliasingViolation)
	require.NoError(t, v2.Release())
	require.NoError(t, d.Set(0, 0, 0))
}

// TestBorrow_ViewOfMutView: a shared child of a MutView freezes writes to it.
func TestBorrow_ViewOfMutView(t *testing.T) {
	d := sample3x4(t)
	m, err := d.SliceMut(array.All(), array.All())
	require.NoError(t, err)
	v, err := m.Slice(array.Index(0), array.All())
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, 1), array.ErrAliasingViolation)
	require.Equal(t, 9.0, MustAt[float64](t, v, 0, 3))
	require.ErrorIs(t, m.Release(), array.ErrAliasingViolation)

	require.NoError(t, v.Release())
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Release())
}

func TestBorrow_ReleaseTwiceIsNoop(t *testing.T) {
	d := sample3x4(t)
	v, err := d.Slice(array.All(), array.All())
	require.NoError(t, err)
	require.NoError(t, v.Release())
	require.NoError(t, v.Release())
	shared, _ := d.Borrows()
	require.Zero(t, shared)

	m, err := d.SliceMut(array.All(), array.All())
	require.NoError(t, err)
	require.NoError(t, m.Release())
	require.NoError(t, m.Release())
	_, exclusive := d.Borrows()
	require.False(t, exclusive)
}

func TestBorrow_UseAfterReleasePanics(t *testing.T) {
	d := sample3x4(t)
	v, err := d.Slice(array.All(), array.All())
	require.NoError(t, err)
	require.NoError(t, v.Release())

	require.PanicsWithValue(t, "array: use of released view: At", func() { _, _ = v.At(0, 0) })
	require.Panics(t, func() { _ = v.String() })
	require.Panics(t, func() { _, _ = v.Slice(array.All(), array.All()) })

	m, err := d.SliceMut(array.All(), array.All())
	require.NoError(t, err)
	require.NoError(t, m.Release())
	require.PanicsWithValue(t, "array: use of released view: Set", func() { _ = m.Set(0, 0, 1) })
}

// TestBorrow_MultiplyOperands: the same array may be both operands, but not
// while it is mutably borrowed.
func TestBorrow_MultiplyOperands(t *testing.T) {
	a := MustRows(t, [][]int{{1, 1}, {0, 1}})
	sq, err := array.Multiply[int](a, a)
	require.NoError(t, err)
	Compare(t, [][]int{{1, 2}, {0, 1}}, sq)

	m, err := a.SliceMut(array.All(), array.All())
	require.NoError(t, err)
	_, err = array.Multiply[int](a, sq)
	require.ErrorIs(t, err, array.ErrAliasingViolation)
	_, err = array.Multiply[int](sq, a)
	require.ErrorIs(t, err, array.ErrAliasingViolation)

	// The MutView itself is a valid operand.
	got, err := array.Multiply[int](m, sq)
	require.NoError(t, err)
	Compare(t, [][]int{{1, 3}, {0, 1}}, got)
	require.NoError(t, m.Release())
}
