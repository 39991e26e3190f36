// SPDX-License-Identifier: MIT

package gemm

import (
	"fmt"

	"github.com/katalvlaran/strided/ring"
)

// Operand describes one strided matrix inside a flat buffer.
// Element (i,j) lives at Data[Offset + i*RowStride + j*ColStride].
// RowStride is the leading dimension; ColStride is the element stride.
type Operand[T ring.Element] struct {
	Data      []T // shared backing buffer (never resliced by kernels)
	Offset    int // index of element (0,0)
	RowStride int // elements between consecutive row starts
	ColStride int // elements between consecutive columns
}

// at returns the flat index of (i,j). Bounds are established by Validate.
func (o *Operand[T]) at(i, j int) int { return o.Offset + i*o.RowStride + j*o.ColStride }

// Params carries one GEMM invocation: C(M×N) = Alpha*A(M×K)·B(K×N) + Beta*C.
type Params[T ring.Element] struct {
	M, K, N int // rows of A/C, shared dimension, columns of B/C
	Alpha   T   // scale of the product
	Beta    T   // scale of the prior C contents (0 ⇒ C is write-only)
	A, B, C Operand[T]
}

// Validate checks sizes, strides and that every addressed element of A, B and
// C lies inside its buffer. It also rejects output layouts where distinct
// cells would share storage.
// Complexity: O(1).
func Validate[T ring.Element](p *Params[T]) error {
	if p == nil {
		return ErrNilParams
	}
	if p.M < 0 || p.K < 0 || p.N < 0 {
		return fmt.Errorf("sizes m=%d k=%d n=%d: %w", p.M, p.K, p.N, ErrBadParams)
	}
	if err := validateOperand("A", &p.A, p.M, p.K); err != nil {
		return err
	}
	if err := validateOperand("B", &p.B, p.K, p.N); err != nil {
		return err
	}
	if err := validateOperand("C", &p.C, p.M, p.N); err != nil {
		return err
	}
	// Output cells must be pairwise distinct, otherwise "write every cell" is ill-defined.
	if p.M == 0 || p.N == 0 {
		return nil
	}
	if p.N > 1 && p.C.ColStride == 0 {
		return fmt.Errorf("C: zero column stride: %w", ErrBadParams)
	}
	if p.M > 1 && p.C.RowStride < (p.N-1)*p.C.ColStride+1 {
		return fmt.Errorf("C: row stride %d overlaps %d columns: %w", p.C.RowStride, p.N, ErrBadParams)
	}

	return nil
}

// validateOperand checks one operand of logical shape rows×cols.
func validateOperand[T ring.Element](name string, o *Operand[T], rows, cols int) error {
	if o.Offset < 0 || o.RowStride < 0 || o.ColStride < 0 {
		return fmt.Errorf("%s: negative offset or stride: %w", name, ErrBadParams)
	}
	if rows == 0 || cols == 0 {
		return nil // nothing is addressed
	}
	last := o.at(rows-1, cols-1)
	if last >= len(o.Data) {
		return fmt.Errorf("%s: element (%d,%d) at %d beyond buffer of %d: %w",
			name, rows-1, cols-1, last, len(o.Data), ErrBadParams)
	}

	return nil
}

// store writes the final value of cell (i,j) honoring Alpha/Beta.
// With Beta == 0 the prior contents are not read.
func (p *Params[T]) store(i, j int, acc T) {
	off := p.C.at(i, j)
	if p.Beta == ring.Zero[T]() {
		p.C.Data[off] = p.Alpha * acc
		return
	}
	p.C.Data[off] = p.Alpha*acc + p.Beta*p.C.Data[off]
}

// ops returns M*N*K, the multiply-add count used for size dispatch.
func (p *Params[T]) ops() int { return p.M * p.N * p.K }
