// SPDX-License-Identifier: MIT

// Package gemm implements the general matrix-multiply kernel contract used by
// the array package:
//
//	C = alpha*(A·B) + beta*C
//
// for an M×K by K×N product over raw layout parameters (base offset, row
// stride / leading dimension, column stride) into caller-owned buffers.
//
// Contract (every Kernel MUST honor it):
//   - Every one of the M*N output cells is written. No partial writes.
//   - Each dot product is accumulated left to right over k, starting from Zero.
//     All kernels in this package therefore produce identical results for
//     identical inputs.
//   - When beta == 0 the prior contents of C are never read (NaN garbage in C
//     cannot leak into the result).
//   - C must not alias A or B.
//
// Kernels:
//   - Reference: portable triple loop over any ring.Element.
//   - Blocked: column-tiled loop with a per-row accumulator (cache friendly).
//   - Parallel: row bands executed concurrently, each band blocked.
//
// Select picks a kernel for an element type using the CPU features detected
// at init (golang.org/x/sys/cpu). Setting STRIDED_NO_OPT=1 forces Reference.
package gemm
