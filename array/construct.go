// SPDX-License-Identifier: MIT

// Package array - constructors for owned arrays.
//
// Purpose:
//   - Build Dense values atomically: storage is allocated zero-filled and every
//     cell is written before the array is returned, so no caller can observe
//     an unwritten cell.
//   - Return sentinel errors (ErrBadShape, ErrRaggedRows, ErrNilArray) and a nil
//     array on failure; there is no partially constructed result.
//
// Complexity quicksheet:
//   - Zeros/Identity/FromFunc/FromRows/FromSlice: O(rows*cols) time and memory.

package array

import (
	"fmt"

	"github.com/katalvlaran/strided/ring"
)

// validateShape rejects negative dimensions. Zero-sized shapes are legal.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}

	return nil
}

// Zeros returns a rows×cols array filled with the additive identity.
// Errors: ErrBadShape for negative dimensions.
// Complexity: O(rows*cols).
func Zeros[T ring.Element](rows, cols int) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf(opZeros, err)
	}
	// make() zero-fills, and the zero value of every ring element is its additive identity.
	return newDense(rows, cols, make([]T, rows*cols)), nil
}

// Identity returns the n×n array with One on the diagonal and Zero elsewhere.
// Built via FromFunc.
// Errors: ErrBadShape for negative n.
// Complexity: O(n²).
func Identity[T ring.Element](n int) (*Dense[T], error) {
	return FromFunc(n, n, func(i, j int) T {
		if i == j {
			return ring.One[T]()
		}
		return ring.Zero[T]()
	})
}

// FromFunc builds a rows×cols array whose element (i,j) is f(i, j).
// MAIN DESCRIPTION:
//   - Generator construction; f is invoked exactly once per cell in row-major order.
//
// Implementation:
//   - Stage 1: validate shape and f.
//   - Stage 2: allocate zero-filled storage.
//   - Stage 3: write every cell, then wrap into a Dense.
//
// Behavior highlights:
//   - The array is not reachable by anyone until Stage 3 completes.
//
// Errors:
//   - ErrBadShape (negative dims), ErrNilArray (nil f).
//
// Complexity:
//   - Time O(rows*cols) calls of f, Space O(rows*cols).
func FromFunc[T any](rows, cols int, f func(i, j int) T) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf(opFromFunc, err)
	}
	if f == nil {
		return nil, opErrorf(opFromFunc, ErrNilArray)
	}
	buf := make([]T, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			buf[i*cols+j] = f(i, j)
		}
	}

	return newDense(rows, cols, buf), nil
}

// FromRows builds an array from a rectangular nested literal; data is copied.
// MAIN DESCRIPTION:
//   - Programmatic literal constructor: rows[i][j] becomes element (i,j).
//
// Behavior highlights:
//   - An empty outer slice yields a 0×0 array.
//   - Every row must have the length of rows[0]; otherwise ErrRaggedRows and nil.
//
// Errors:
//   - ErrRaggedRows (reports the first offending row).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		return newDense(0, 0, []T{}), nil
	}
	c := len(rows[0])
	// Validate rectangularity before allocating anything.
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, opErrorf(opFromRows,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(rows[i]), c, ErrRaggedRows))
		}
	}
	buf := make([]T, 0, r*c)
	for _, row := range rows {
		buf = append(buf, row...) // flatten into row-major storage
	}

	return newDense(r, c, buf), nil
}

// FromSlice builds a rows×cols array from a copy of a flat row-major slice.
// Errors: ErrBadShape when dims are negative or len(data) != rows*cols.
// Complexity: O(rows*cols).
func FromSlice[T any](rows, cols int, data []T) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf(opFromSlice, err)
	}
	if len(data) != rows*cols {
		return nil, opErrorf(opFromSlice,
			fmt.Errorf("%d elements for %dx%d: %w", len(data), rows, cols, ErrBadShape))
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return newDense(rows, cols, buf), nil
}
