// SPDX-License-Identifier: MIT

package array

import "fmt"

// Readable is the read capability shared by all three ownership modes.
// The unexported layout method seals the interface to this package's types,
// which lets Multiply and CopyFrom reach the raw layout.
type Readable[T any] interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// Shape returns (Rows(), Cols()). Complexity: O(1).
	Shape() (rows, cols int)

	// Stride returns the row stride of the underlying allocation. Complexity: O(1).
	Stride() int

	// At returns element (i, j) or ErrOutOfBounds / ErrAliasingViolation.
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Slice returns a read-only zero-copy window. Complexity: O(1).
	Slice(r, c Range) (*View[T], error)

	// Do visits elements in row-major order until f returns false.
	Do(f func(i, j int, v T) bool) error

	// Clone copies the elements into a new compact Dense.
	Clone() (*Dense[T], error)

	fmt.Stringer

	layout() *strided[T]
}

// Writable extends Readable with mutation and exclusive slicing.
// Implemented by Dense and MutView only.
type Writable[T any] interface {
	Readable[T]

	// Set stores v at (i, j) or returns ErrOutOfBounds / ErrAliasingViolation.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// SliceMut returns an exclusive writable zero-copy window. Complexity: O(1).
	SliceMut(r, c Range) (*MutView[T], error)

	// Apply replaces every element with f(i, j, v) in row-major order.
	Apply(f func(i, j int, v T) T) error

	// Fill sets every element to v.
	Fill(v T) error

	// CopyFrom copies src element-wise; shapes must match.
	CopyFrom(src Readable[T]) error
}

// Compile-time assertions for capability conformance.
var (
	_ Writable[float64] = (*Dense[float64])(nil)
	_ Writable[float64] = (*MutView[float64])(nil)
	_ Readable[float64] = (*View[float64])(nil)
)
