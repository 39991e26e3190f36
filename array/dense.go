// SPDX-License-Identifier: MIT

package array

// Dense is the owned array: the exclusive holder of a compact row-major
// buffer (stride == cols). It is readable and writable and is the source of
// every View and MutView.
type Dense[T any] struct {
	strided[T]
}

// newDense wraps a compact buffer of length rows*cols. Callers guarantee the length.
func newDense[T any](rows, cols int, data []T) *Dense[T] {
	return &Dense[T]{strided: strided[T]{
		kind:   kindDense,
		rows:   rows,
		cols:   cols,
		stride: cols,
		data:   data,
		guard:  &borrowState{},
	}}
}

// Set stores v at (i, j).
// Errors:
//   - ErrOutOfBounds for invalid indices.
//   - ErrAliasingViolation while any view of this array is alive.
//
// Complexity: O(1).
func (d *Dense[T]) Set(i, j int, v T) error { return d.set(i, j, v) }

// SliceMut returns an exclusive writable window over rows r and columns c.
// While the MutView is alive this array can be neither read nor written, and
// no other view of it can be created; Release the view to end the borrow.
//
// Errors:
//   - ErrOutOfBounds / ErrInvalidRange from range resolution.
//   - ErrAliasingViolation while any other view of this array is alive.
//
// Complexity: O(1).
func (d *Dense[T]) SliceMut(r, c Range) (*MutView[T], error) { return d.sliceMut(r, c) }

// Apply replaces each element with f(i,j,v) in row-major order.
// Complexity: O(rows*cols).
func (d *Dense[T]) Apply(f func(i, j int, v T) T) error { return d.apply(f) }

// Fill sets every element to v. Complexity: O(rows*cols).
func (d *Dense[T]) Fill(v T) error { return d.fill(v) }

// CopyFrom copies src into d; shapes must match (ErrShapeMismatch).
// Complexity: O(rows*cols).
func (d *Dense[T]) CopyFrom(src Readable[T]) error { return d.copyFrom(src) }

// RawData returns the backing buffer in row-major order (len == rows*cols).
// The slice aliases the array; writes through it bypass the borrow guard.
// Errors: ErrAliasingViolation while any view of d is alive.
func (d *Dense[T]) RawData() ([]T, error) {
	if err := d.guard.canWrite("RawData"); err != nil {
		return nil, methodErrorf(d.kind, "RawData", err)
	}

	return d.data, nil
}

// Borrows reports the number of live shared views and whether an exclusive
// view is alive. Intended for diagnostics.
func (d *Dense[T]) Borrows() (shared int, exclusive bool) { return d.guard.live() }
