// SPDX-License-Identifier: MIT

package array

import (
	"fmt"

	"github.com/katalvlaran/strided/gemm"
	"github.com/katalvlaran/strided/ring"
)

// Multiply returns the matrix product a·b as a new owned array.
// MAIN DESCRIPTION:
//   - Validate shapes and borrows, then delegate the arithmetic to a gemm.Kernel
//     over the raw layouts of a and b (views are multiplied in place, no copies).
//
// Implementation:
//   - Stage 1: nil operands ⇒ ErrNilArray; a.Cols != b.Rows ⇒ ErrShapeMismatch.
//   - Stage 2: both operands must be readable now (no live MutView).
//   - Stage 3: allocate a zero-filled (a.Rows × b.Cols) result.
//   - Stage 4: call the kernel with alpha = One, beta = Zero and, per operand,
//     offset, leading dimension = stride, column stride = 1.
//
// Behavior highlights:
//   - beta = Zero: the kernel contract forbids reading C and requires writing
//     every cell; the result is also zero-filled before the call, so a kernel
//     that skipped cells could not expose uninitialized memory.
//   - Accumulation order is k ascending for every cell, regardless of kernel.
//
// Inputs:
//   - a (m×k), b (k×n): any Readable (Dense, View, MutView), may be the same array.
//   - opts: WithKernel / WithLevel.
//
// Returns:
//   - *Dense[T] of shape m×n.
//
// Errors:
//   - ErrNilArray, ErrShapeMismatch, ErrAliasingViolation; kernel errors wrapped.
//
// Complexity:
//   - Time O(m*n*k), Space O(m*n).
//
// AI-Hints:
//   - Multiply(Identity(n), A) == A is a cheap sanity check for custom kernels.
func Multiply[T ring.Element](a, b Readable[T], opts ...Option[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, opErrorf(opMultiply, ErrNilArray)
	}
	la, lb := a.layout(), b.layout()
	if la.cols != lb.rows {
		return nil, opErrorf(opMultiply,
			fmt.Errorf("%dx%d by %dx%d: %w", la.rows, la.cols, lb.rows, lb.cols, ErrShapeMismatch))
	}
	if err := la.guard.canRead(opMultiply); err != nil {
		return nil, opErrorf(opMultiply, fmt.Errorf("lhs: %w", err))
	}
	if err := lb.guard.canRead(opMultiply); err != nil {
		return nil, opErrorf(opMultiply, fmt.Errorf("rhs: %w", err))
	}

	o := gatherOptions(opts)
	res := newDense(la.rows, lb.cols, make([]T, la.rows*lb.cols))
	p := &gemm.Params[T]{
		M:     la.rows,
		K:     la.cols,
		N:     lb.cols,
		Alpha: ring.One[T](),
		Beta:  ring.Zero[T](),
		A:     operand(la),
		B:     operand(lb),
		C:     operand(&res.strided),
	}
	if err := o.kernel(p); err != nil {
		return nil, opErrorf(opMultiply, err)
	}

	return res, nil
}
