// SPDX-License-Identifier: MIT

// Package array - strided layout shared by all ownership modes.
//
// Purpose:
//   - Implement indexing and slicing ONCE over (rows, cols, stride, offset, data)
//     and embed it in Dense, View and MutView.
//   - Guarantee safety at the public surface: every access is bounds-checked
//     and guard-checked, then served by checked slice indexing.
//
// Invariant:
//   - For 0 ≤ i < rows, 0 ≤ j < cols: offset + i*stride + j < len(data).
//   - Derived views keep stride and data; they only narrow the shape and
//     shift the offset.
//
// Complexity quicksheet:
//   - At/Set: O(1); Slice/SliceMut: O(1); Do/Apply/Fill/Clone: O(rows*cols).

package array

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/strided/gemm"
	"github.com/katalvlaran/strided/ring"
)

// Kind names used in error messages and String output.
const (
	kindDense   = "Dense"
	kindView    = "View"
	kindMutView = "MutView"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// strided is the layout core embedded in every ownership mode.
type strided[T any] struct {
	kind   string       // Dense / View / MutView, for error context
	rows   int          // logical rows (>= 0)
	cols   int          // logical columns (>= 0)
	stride int          // elements between consecutive row starts; fixed at allocation
	offset int          // index of element (0,0) in data
	data   []T          // the original allocation, shared with every derived view
	guard  *borrowState // borrow bookkeeping of this holder
}

// Rows returns the number of rows. Complexity: O(1).
func (s *strided[T]) Rows() int { return s.rows }

// Cols returns the number of columns. Complexity: O(1).
func (s *strided[T]) Cols() int { return s.cols }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (s *strided[T]) Shape() (rows, cols int) { return s.rows, s.cols }

// Stride returns the distance in elements between consecutive row starts.
// It equals the column count of the original allocation. Complexity: O(1).
func (s *strided[T]) Stride() int { return s.stride }

// Offset returns the index of element (0,0) within the shared buffer.
// Complexity: O(1).
func (s *strided[T]) Offset() int { return s.offset }

// Len returns rows*cols. Complexity: O(1).
func (s *strided[T]) Len() int { return s.rows * s.cols }

// IsEmpty reports whether the array has no elements. Complexity: O(1).
func (s *strided[T]) IsEmpty() bool { return s.rows == 0 || s.cols == 0 }

// layout exposes the core to package functions working on Readable values.
func (s *strided[T]) layout() *strided[T] { return s }

// indexOf bounds-checks (i,j) and returns the flat offset into data.
// Returns a plain ErrOutOfBounds; public methods wrap with coordinates.
func (s *strided[T]) indexOf(i, j int) (int, error) {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return 0, ErrOutOfBounds
	}

	// Row-major strided offset: base + i*stride + j.
	return s.offset + i*s.stride + j, nil
}

// At returns the element at (i, j).
// MAIN DESCRIPTION:
//   - Safe element read at coordinates relative to this window.
//
// Implementation:
//   - Stage 1: guard check (no live exclusive borrow of this holder).
//   - Stage 2: bounds check via indexOf, load from the shared buffer.
//
// Errors:
//   - ErrOutOfBounds when i ∉ [0,rows) or j ∉ [0,cols).
//   - ErrAliasingViolation while a MutView of this holder is alive.
//
// Complexity:
//   - Time O(1), Space O(1).
func (s *strided[T]) At(i, j int) (T, error) {
	var zero T
	if err := s.guard.canRead(ctxAt); err != nil {
		return zero, cellErrorf(s.kind, ctxAt, i, j, err)
	}
	off, err := s.indexOf(i, j)
	if err != nil {
		return zero, cellErrorf(s.kind, ctxAt, i, j, err)
	}

	return s.data[off], nil
}

// set is the shared write path of Dense.Set and MutView.Set.
func (s *strided[T]) set(i, j int, v T) error {
	if err := s.guard.canWrite(ctxSet); err != nil {
		return cellErrorf(s.kind, ctxSet, i, j, err)
	}
	off, err := s.indexOf(i, j)
	if err != nil {
		return cellErrorf(s.kind, ctxSet, i, j, err)
	}
	s.data[off] = v

	return nil
}

// window computes the sub-layout selected by (r, c) without touching guards.
// MAIN DESCRIPTION:
//   - Resolve both ranges against the current shape and narrow the layout.
//
// Implementation:
//   - Stage 1: resolve rows and cols (open ends ⇒ current rows/cols).
//   - Stage 2: shape = widths; offset += rs*stride + cs; stride and data kept.
//
// Behavior highlights:
//   - Zero-width ranges yield empty windows with rows == 0 or cols == 0.
//   - The window never addresses outside the parent: rs+rows ≤ parent.rows and
//     cs+cols ≤ parent.cols.
//
// Complexity:
//   - Time O(1), Space O(1).
func (s *strided[T]) window(method string, r, c Range) (strided[T], error) {
	rs, re, err := r.resolve(s.rows)
	if err != nil {
		return strided[T]{}, methodErrorf(s.kind, method, fmt.Errorf("rows: %w", err))
	}
	cs, ce, err := c.resolve(s.cols)
	if err != nil {
		return strided[T]{}, methodErrorf(s.kind, method, fmt.Errorf("cols: %w", err))
	}

	return strided[T]{
		rows:   re - rs,
		cols:   ce - cs,
		stride: s.stride,                    // never changes under slicing
		offset: s.offset + rs*s.stride + cs, // new upper-left corner
		data:   s.data,                      // shared storage, no copy
	}, nil
}

// Slice returns a read-only view of rows r and columns c of this array.
// MAIN DESCRIPTION:
//   - Zero-copy window; the result shares storage and keeps the stride.
//
// Implementation:
//   - Stage 1: compute the window (ranges validated here).
//   - Stage 2: register a shared borrow on this holder.
//
// Behavior highlights:
//   - Valid on every mode; the view is read-only even when the source is writable.
//   - While the view is alive this holder cannot be written or mutably sliced.
//
// Errors:
//   - ErrOutOfBounds / ErrInvalidRange from range resolution.
//   - ErrAliasingViolation while a MutView of this holder is alive.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Pair with `defer v.Release()` so the source becomes writable again.
func (s *strided[T]) Slice(r, c Range) (*View[T], error) {
	w, err := s.window(ctxSlice, r, c)
	if err != nil {
		return nil, err
	}
	g, err := s.guard.borrowShared(ctxSlice)
	if err != nil {
		return nil, methodErrorf(s.kind, ctxSlice, err)
	}
	w.kind, w.guard = kindView, g

	return &View[T]{strided: w}, nil
}

// sliceMut is the shared exclusive-slicing path of Dense and MutView.
func (s *strided[T]) sliceMut(r, c Range) (*MutView[T], error) {
	w, err := s.window(ctxSliceMut, r, c)
	if err != nil {
		return nil, err
	}
	g, err := s.guard.borrowExclusive(ctxSliceMut)
	if err != nil {
		return nil, methodErrorf(s.kind, ctxSliceMut, err)
	}
	w.kind, w.guard = kindMutView, g

	return &MutView[T]{strided: w}, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Errors: ErrAliasingViolation while mutably borrowed; ErrNilArray for nil f.
// Complexity: O(rows*cols) time, O(1) space.
func (s *strided[T]) Do(f func(i, j int, v T) bool) error {
	if f == nil {
		return methodErrorf(s.kind, ctxDo, ErrNilArray)
	}
	if err := s.guard.canRead(ctxDo); err != nil {
		return methodErrorf(s.kind, ctxDo, err)
	}
	var i, j, base int
	for i = 0; i < s.rows; i++ {
		base = s.offset + i*s.stride
		for j = 0; j < s.cols; j++ {
			if !f(i, j, s.data[base+j]) {
				return nil // early exit requested by caller
			}
		}
	}

	return nil
}

// apply replaces each element with f(i,j,v) in row-major order.
func (s *strided[T]) apply(f func(i, j int, v T) T) error {
	if f == nil {
		return methodErrorf(s.kind, ctxApply, ErrNilArray)
	}
	if err := s.guard.canWrite(ctxApply); err != nil {
		return methodErrorf(s.kind, ctxApply, err)
	}
	var i, j, base int
	for i = 0; i < s.rows; i++ {
		base = s.offset + i*s.stride
		for j = 0; j < s.cols; j++ {
			s.data[base+j] = f(i, j, s.data[base+j])
		}
	}

	return nil
}

// fill sets every element of the window to v.
func (s *strided[T]) fill(v T) error {
	if err := s.guard.canWrite(ctxFill); err != nil {
		return methodErrorf(s.kind, ctxFill, err)
	}
	for i := 0; i < s.rows; i++ {
		row := s.data[s.offset+i*s.stride : s.offset+i*s.stride+s.cols]
		for j := range row {
			row[j] = v
		}
	}

	return nil
}

// copyFrom copies src element-wise into this window; shapes must match.
func (s *strided[T]) copyFrom(src Readable[T]) error {
	if src == nil {
		return methodErrorf(s.kind, ctxCopyFrom, ErrNilArray)
	}
	o := src.layout()
	if o.rows != s.rows || o.cols != s.cols {
		return methodErrorf(s.kind, ctxCopyFrom,
			fmt.Errorf("%dx%d from %dx%d: %w", s.rows, s.cols, o.rows, o.cols, ErrShapeMismatch))
	}
	if err := o.guard.canRead(ctxCopyFrom); err != nil {
		return methodErrorf(s.kind, ctxCopyFrom, fmt.Errorf("source: %w", err))
	}
	if err := s.guard.canWrite(ctxCopyFrom); err != nil {
		return methodErrorf(s.kind, ctxCopyFrom, err)
	}
	for i := 0; i < s.rows; i++ {
		copy(s.data[s.offset+i*s.stride:s.offset+i*s.stride+s.cols],
			o.data[o.offset+i*o.stride:o.offset+i*o.stride+o.cols])
	}

	return nil
}

// Clone copies the window into a fresh compact Dense (stride == cols).
// MAIN DESCRIPTION:
//   - Materialize a view (or copy an owner) with an independent lifetime.
//
// Behavior highlights:
//   - The result has no borrows and shares nothing with the source.
//
// Errors:
//   - ErrAliasingViolation while a MutView of this holder is alive.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (s *strided[T]) Clone() (*Dense[T], error) {
	if err := s.guard.canRead(ctxClone); err != nil {
		return nil, methodErrorf(s.kind, ctxClone, err)
	}
	buf := make([]T, s.rows*s.cols)
	for i := 0; i < s.rows; i++ {
		copy(buf[i*s.cols:(i+1)*s.cols], s.data[s.offset+i*s.stride:s.offset+i*s.stride+s.cols])
	}

	return newDense(s.rows, s.cols, buf), nil
}

// String renders rows as "[a, b]\n" lines with %v per element.
// A holder that is mutably borrowed renders a placeholder instead of values.
// Complexity: O(rows*cols).
func (s *strided[T]) String() string {
	s.guard.ensureLive("String")
	if s.guard.exclusive {
		return fmt.Sprintf("<%s %dx%d: mutably borrowed>\n", s.kind, s.rows, s.cols)
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < s.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = s.offset + i*s.stride
		for j = 0; j < s.cols; j++ {
			fmt.Fprintf(&b, "%v", s.data[base+j])
			if j+1 < s.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// operand describes this layout to a GEMM kernel.
func operand[T ring.Element](s *strided[T]) gemm.Operand[T] {
	return gemm.Operand[T]{Data: s.data, Offset: s.offset, RowStride: s.stride, ColStride: 1}
}
