// SPDX-License-Identifier: MIT

// Package array - element-wise arithmetic and small linear-algebra helpers.
//
// Purpose:
//   - Add/Sub/Hadamard/Scale/Transpose over any Readable, returning a fresh Dense.
//   - MatVec as an m×k by k×1 product through the same gemm kernels as Multiply.
//
// Determinism:
//   - Fixed i→j loop order over both operands; inputs are never mutated.
//   - Layout is read directly (offset + i*stride + j), so views need no copy.
//
// Complexity quicksheet:
//   - Add/Sub/Hadamard/Scale/Transpose: Time O(r*c), Space O(r*c).
//   - MatVec: Time O(r*c), Space O(r).

package array

import (
	"fmt"

	"github.com/katalvlaran/strided/gemm"
	"github.com/katalvlaran/strided/ring"
)

// readLayouts validates a binary element-wise call and returns both layouts.
func readLayouts[T any](op string, a, b Readable[T]) (*strided[T], *strided[T], error) {
	if a == nil || b == nil {
		return nil, nil, opErrorf(op, ErrNilArray)
	}
	la, lb := a.layout(), b.layout()
	if la.rows != lb.rows || la.cols != lb.cols {
		return nil, nil, opErrorf(op,
			fmt.Errorf("%dx%d and %dx%d: %w", la.rows, la.cols, lb.rows, lb.cols, ErrShapeMismatch))
	}
	if err := la.guard.canRead(op); err != nil {
		return nil, nil, opErrorf(op, fmt.Errorf("lhs: %w", err))
	}
	if err := lb.guard.canRead(op); err != nil {
		return nil, nil, opErrorf(op, fmt.Errorf("rhs: %w", err))
	}

	return la, lb, nil
}

// zipWith builds res[i,j] = f(a[i,j], b[i,j]) over two same-shape layouts.
func zipWith[T any](la, lb *strided[T], f func(x, y T) T) *Dense[T] {
	rows, cols := la.rows, la.cols
	buf := make([]T, rows*cols)
	var i, j, ra, rb int
	for i = 0; i < rows; i++ {
		ra, rb = la.offset+i*la.stride, lb.offset+i*lb.stride
		for j = 0; j < cols; j++ {
			buf[i*cols+j] = f(la.data[ra+j], lb.data[rb+j])
		}
	}

	return newDense(rows, cols, buf)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil, same shape, and readable.
//   - Stage 2: One i→j pass over both layouts.
//
// Inputs:
//   - a, b: any Readable of identical shape; may be views of the same array.
//
// Errors:
//   - ErrNilArray, ErrShapeMismatch, ErrAliasingViolation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T ring.Element](a, b Readable[T]) (*Dense[T], error) {
	la, lb, err := readLayouts(opAdd, a, b)
	if err != nil {
		return nil, err
	}

	return zipWith(la, lb, func(x, y T) T { return x + y }), nil
}

// Sub computes the element-wise difference C = A - B.
// Same contract as Add.
func Sub[T ring.Element](a, b Readable[T]) (*Dense[T], error) {
	la, lb, err := readLayouts(opSub, a, b)
	if err != nil {
		return nil, err
	}

	return zipWith(la, lb, func(x, y T) T { return x + ring.Neg(y) }), nil
}

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j].
// Same contract as Add.
func Hadamard[T ring.Element](a, b Readable[T]) (*Dense[T], error) {
	la, lb, err := readLayouts(opHadamard, a, b)
	if err != nil {
		return nil, err
	}

	return zipWith(la, lb, func(x, y T) T { return x * y }), nil
}

// Scale returns a new array whose elements are alpha * m[i,j].
// alpha = Zero yields an explicit zero array with the same shape.
// Errors: ErrNilArray, ErrAliasingViolation.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T ring.Element](m Readable[T], alpha T) (*Dense[T], error) {
	if m == nil {
		return nil, opErrorf(opScale, ErrNilArray)
	}
	l := m.layout()
	if err := l.guard.canRead(opScale); err != nil {
		return nil, opErrorf(opScale, err)
	}

	return zipWith(l, l, func(x, _ T) T { return alpha * x }), nil
}

// Transpose returns the c×r array with res[j,i] = m[i,j].
// Works for any element type; the result is compact.
// Errors: ErrNilArray, ErrAliasingViolation.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T any](m Readable[T]) (*Dense[T], error) {
	if m == nil {
		return nil, opErrorf(opTranspose, ErrNilArray)
	}
	l := m.layout()
	if err := l.guard.canRead(opTranspose); err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	rows, cols := l.rows, l.cols
	buf := make([]T, rows*cols)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = l.offset + i*l.stride
		for j = 0; j < cols; j++ {
			buf[j*rows+i] = l.data[base+j] // data[i,j] → res[j,i]
		}
	}

	return newDense(cols, rows, buf), nil
}

// MatVec computes y = m·x for an r×c array and a vector of length c.
// MAIN DESCRIPTION:
//   - Treat x as a c×1 column and run the selected gemm kernel, so the
//     accumulation order matches Multiply exactly.
//
// Errors:
//   - ErrNilArray, ErrShapeMismatch (len(x) != c), ErrAliasingViolation.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[T ring.Element](m Readable[T], x []T, opts ...Option[T]) ([]T, error) {
	if m == nil {
		return nil, opErrorf(opMatVec, ErrNilArray)
	}
	l := m.layout()
	if len(x) != l.cols {
		return nil, opErrorf(opMatVec,
			fmt.Errorf("%dx%d by vector of %d: %w", l.rows, l.cols, len(x), ErrShapeMismatch))
	}
	if err := l.guard.canRead(opMatVec); err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	o := gatherOptions(opts)
	y := make([]T, l.rows)
	p := &gemm.Params[T]{
		M:     l.rows,
		K:     l.cols,
		N:     1,
		Alpha: ring.One[T](),
		Beta:  ring.Zero[T](),
		A:     operand(l),
		B:     gemm.Operand[T]{Data: x, RowStride: 1, ColStride: 1},
		C:     gemm.Operand[T]{Data: y, RowStride: 1, ColStride: 1},
	}
	if err := o.kernel(p); err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	return y, nil
}
