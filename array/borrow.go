// SPDX-License-Identifier: MIT

// Package array - dynamic borrow guard.
//
// Purpose:
//   - Enforce "exactly one writer OR any number of readers" over shared storage
//     at run time, in place of compile-time borrow checking.
//   - Track, per holder (owner or view), how many shared children and whether
//     an exclusive child are alive; children point back to their parent only to
//     undo the registration on Release.
//
// Rules (holder H):
//   - read H        : H has no live exclusive child.
//   - write H       : H has no live child at all.
//   - Slice of H    : as read; registers a shared child.
//   - SliceMut of H : as write; registers the exclusive child.
//   - Release child : only when the child itself has no live children.
//
// Tracking is per whole source, not per region: two disjoint windows of the
// same array still conflict when one of them is exclusive.

package array

import "fmt"

// panicReleased is the panic message prefix for use of a released view.
const panicReleased = "array: use of released view"

// borrowState is the guard attached to every owner and view.
type borrowState struct {
	parent    *borrowState // holder this view was sliced from; nil for owners
	shared    int          // live shared children
	exclusive bool         // live exclusive child
	mutable   bool         // this holder is itself an exclusive borrow
	released  bool         // this view's borrow has ended
}

// ensureLive panics when the holder was released.
func (b *borrowState) ensureLive(op string) {
	if b.released {
		panic(fmt.Sprintf("%s: %s", panicReleased, op))
	}
}

// canRead reports whether the holder may be read now.
func (b *borrowState) canRead(op string) error {
	b.ensureLive(op)
	if b.exclusive {
		return fmt.Errorf("read while mutably borrowed: %w", ErrAliasingViolation)
	}

	return nil
}

// canWrite reports whether the holder may be written now.
func (b *borrowState) canWrite(op string) error {
	b.ensureLive(op)
	if b.exclusive {
		return fmt.Errorf("write while mutably borrowed: %w", ErrAliasingViolation)
	}
	if b.shared > 0 {
		return fmt.Errorf("write while %d shared borrow(s) alive: %w", b.shared, ErrAliasingViolation)
	}

	return nil
}

// borrowShared registers and returns a shared child guard.
func (b *borrowState) borrowShared(op string) (*borrowState, error) {
	if err := b.canRead(op); err != nil {
		return nil, err
	}
	b.shared++

	return &borrowState{parent: b}, nil
}

// borrowExclusive registers and returns the exclusive child guard.
func (b *borrowState) borrowExclusive(op string) (*borrowState, error) {
	if err := b.canWrite(op); err != nil {
		return nil, err
	}
	b.exclusive = true

	return &borrowState{parent: b, mutable: true}, nil
}

// release ends this holder's borrow. Releasing twice is a no-op.
// A holder with live children cannot be released.
func (b *borrowState) release() error {
	if b.released {
		return nil
	}
	if b.exclusive || b.shared > 0 {
		return fmt.Errorf("release with live borrows: %w", ErrAliasingViolation)
	}
	b.released = true
	if b.parent == nil {
		return nil
	}
	if b.mutable {
		b.parent.exclusive = false
	} else {
		b.parent.shared--
	}

	return nil
}

// live reports the counts for diagnostics and tests.
func (b *borrowState) live() (shared int, exclusive bool) { return b.shared, b.exclusive }
