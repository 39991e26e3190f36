// Package strided is a dense 2-D array library with zero-copy views and a
// dispatched GEMM kernel.
//
// What is inside?
//
//	• ring/  : the Element constraint (ints, floats, complex) with Zero/One/Neg
//	• array/ : Dense (owned), View (shared borrow), MutView (exclusive borrow)
//	            over one strided layout; Slice/SliceMut, constructors, Multiply
//	• gemm/  : C = alpha·A·B + beta·C kernels: Reference, Blocked, Parallel,
//	            selected per CPU at init (STRIDED_NO_OPT=1 forces Reference)
//	• cmd/strided: CLI: mul, slice, demo, info over YAML matrices
//
// Borrow rules (checked at run time):
//
//   - any number of Views, or exactly one MutView, per holder at a time;
//   - a holder with a live MutView can be neither read nor written;
//   - Release a view to end its borrow; using it afterwards panics.
//
// Quick example:
//
//	b, _ := array.FromRows([][]float64{{1, 2, 7, 9}, {3, 4, 8, 5}, {5, 6, 4, 3}})
//	d, _ := b.SliceMut(array.Span(1, 3), array.Span(1, 4))
//	_ = d.Set(1, 1, 5) // writes b[2,2]
//	_ = d.Release()
//
//	go get github.com/katalvlaran/strided
package strided
