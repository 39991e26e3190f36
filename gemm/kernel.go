// SPDX-License-Identifier: MIT

package gemm

import "github.com/katalvlaran/strided/ring"

// Kernel computes C = Alpha*(A·B) + Beta*C for the given parameters and must
// follow the package contract (full writes, left-to-right accumulation).
type Kernel[T ring.Element] func(p *Params[T]) error

// Reference is the portable triple-loop kernel.
// MAIN DESCRIPTION:
//   - Numerical ground truth for every other kernel in the package.
//
// Implementation:
//   - Stage 1: Validate parameters.
//   - Stage 2: for i, for j: acc = Σ_k A(i,k)*B(k,j) from k=0 upward; store.
//
// Behavior highlights:
//   - Works for any ring.Element (integers, floats, complex).
//   - No zero-skipping: 0*Inf still yields NaN as IEEE-754 requires.
//
// Errors:
//   - ErrNilParams, ErrBadParams (from Validate).
//
// Complexity:
//   - Time O(M*N*K), Space O(1).
func Reference[T ring.Element](p *Params[T]) error {
	if err := Validate(p); err != nil {
		return err
	}
	referenceRows(p, 0, p.M)

	return nil
}

// referenceRows runs the triple loop over output rows [i0, i1).
func referenceRows[T ring.Element](p *Params[T], i0, i1 int) {
	var i, j, k int
	var acc T
	for i = i0; i < i1; i++ {
		for j = 0; j < p.N; j++ {
			acc = ring.Zero[T]()
			for k = 0; k < p.K; k++ {
				acc += p.A.Data[p.A.at(i, k)] * p.B.Data[p.B.at(k, j)]
			}
			p.store(i, j, acc)
		}
	}
}
