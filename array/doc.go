// SPDX-License-Identifier: MIT

// Package array provides a dense 2-D array over row-major contiguous storage
// with zero-copy sub-views and a GEMM-backed matrix multiply.
//
// The package provides:
//
//   - Dense, the owned array: exclusive holder of its buffer, readable and writable.
//   - View, an immutable window produced by Slice on any array.
//   - MutView, an exclusive writable window produced by SliceMut on Dense or MutView.
//   - Readable / Writable capability interfaces implemented by the three modes.
//   - Range constructors (Span, From, To, All, Index, Through) for slicing.
//   - Zeros, Identity, FromFunc, FromRows, FromSlice constructors.
//   - Multiply and MatVec, delegating the arithmetic to a gemm.Kernel.
//   - Add, Sub, Hadamard, Scale, Transpose and Equal over any Readable.
//
// Layout: every array is described by (rows, cols, stride, offset) over one
// shared buffer; element (i,j) lives at offset + i*stride + j. Slicing narrows
// the shape and shifts the offset; the stride never changes.
//
// Borrowing: a dynamic guard on every owner and view enforces "one writer or
// many readers". Slice registers a shared borrow, SliceMut an exclusive one,
// Release ends it. Conflicting acquisitions and accesses fail with
// ErrAliasingViolation. Using a view after Release is a programmer error and
// panics.
//
// Arrays are not safe for concurrent use. Move a Dense between goroutines,
// do not share it or its views without external synchronization.
//
// Quick example:
//
//	b, _ := array.FromRows([][]float64{{1, 2, 7, 9}, {3, 4, 8, 5}, {5, 6, 4, 3}})
//	d, _ := b.SliceMut(array.Span(1, 3), array.Span(1, 4))
//	_ = d.Set(1, 1, 5) // writes b(2,2)
//	_ = d.Release()
//	_ = b.Set(0, 1, 1)
package array
