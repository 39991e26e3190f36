// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// Every failure in this package is one of these sentinels, returned directly
// or wrapped with method context via %w; callers match with errors.Is.
// No operation panics on user-triggered conditions. Panics are reserved for
// programmer errors: use of a released view, nil option values.

package array

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange indicates a resolved range whose start exceeds its end.
	ErrInvalidRange = errors.New("array: invalid range")

	// ErrOutOfBounds indicates an index or range outside the current shape.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfBounds = errors.New("array: index out of bounds")

	// ErrRaggedRows indicates a nested literal whose rows differ in length.
	ErrRaggedRows = errors.New("array: ragged rows")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Multiply
	// with a.Cols != b.Rows or CopyFrom between different shapes.
	ErrShapeMismatch = errors.New("array: shape mismatch")

	// ErrAliasingViolation indicates a borrow-rule violation: a write or an
	// exclusive borrow while other borrows are alive, or a read while an
	// exclusive borrow is alive.
	ErrAliasingViolation = errors.New("array: aliasing violation")

	// ErrBadShape indicates negative dimensions or a flat buffer whose length
	// does not match rows*cols.
	ErrBadShape = errors.New("array: invalid shape")

	// ErrNilArray indicates a nil operand or a nil generator function.
	ErrNilArray = errors.New("array: nil operand")
)

// Method tags used in error wrappers.
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxSlice    = "Slice"
	ctxSliceMut = "SliceMut"
	ctxDo       = "Do"
	ctxApply    = "Apply"
	ctxFill     = "Fill"
	ctxCopyFrom = "CopyFrom"
	ctxClone    = "Clone"
	ctxRelease  = "Release"
	opMultiply  = "Multiply"
	opEqual     = "Equal"
	opFromRows  = "FromRows"
	opFromFunc  = "FromFunc"
	opFromSlice = "FromSlice"
	opZeros     = "Zeros"
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
)

// cellErrorf wraps err with the array kind, method and coordinates,
// e.g. "View.At(3,0): array: index out of bounds".
func cellErrorf(kind, method string, i, j int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, i, j, err)
}

// methodErrorf wraps err with the array kind and method.
func methodErrorf(kind, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", kind, method, err)
}

// opErrorf wraps err with a package-level operation tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
