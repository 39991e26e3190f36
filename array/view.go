// SPDX-License-Identifier: MIT

package array

// View is an immutable borrowed window produced by Slice. It shares storage
// with the array it was sliced from and never writes to it. Reads through a
// View are always allowed while it is alive: its source cannot be written
// until the View is released.
type View[T any] struct {
	strided[T]
}

// Release ends the shared borrow. Releasing twice is a no-op.
// After Release every other method panics.
// Errors: ErrAliasingViolation while views sliced from this view are alive.
func (v *View[T]) Release() error {
	if err := v.guard.release(); err != nil {
		return methodErrorf(v.kind, ctxRelease, err)
	}
	return nil
}

// MutView is an exclusive writable window produced by SliceMut. While it is
// alive its source can be neither read nor written.
type MutView[T any] struct {
	strided[T]
}

// Set stores v at (i, j) in the shared storage.
// Errors: ErrOutOfBounds; ErrAliasingViolation while views of this view are alive.
// Complexity: O(1).
func (m *MutView[T]) Set(i, j int, v T) error { return m.set(i, j, v) }

// SliceMut reborrows a narrower exclusive window. This view is frozen until
// the child is released.
// Complexity: O(1).
func (m *MutView[T]) SliceMut(r, c Range) (*MutView[T], error) { return m.sliceMut(r, c) }

// Apply replaces each element with f(i,j,v) in row-major order.
func (m *MutView[T]) Apply(f func(i, j int, v T) T) error { return m.apply(f) }

// Fill sets every element of the window to v.
func (m *MutView[T]) Fill(v T) error { return m.fill(v) }

// CopyFrom copies src into the window; shapes must match.
func (m *MutView[T]) CopyFrom(src Readable[T]) error { return m.copyFrom(src) }

// Release ends the exclusive borrow; the source becomes usable again.
// Releasing twice is a no-op. After Release every other method panics.
// Errors: ErrAliasingViolation while views sliced from this view are alive.
func (m *MutView[T]) Release() error {
	if err := m.guard.release(); err != nil {
		return methodErrorf(m.kind, ctxRelease, err)
	}
	return nil
}
