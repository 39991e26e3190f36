// SPDX-License-Identifier: MIT

// Package array - range normalization for Slice/SliceMut.
//
// Purpose:
//   - Convert every supported range form into one canonical half-open pair.
//   - Defer open ends ("to the end of the dimension") until the range is
//     applied to a concrete array.
//   - Keep construction free of validation; resolve() is the single checker.

package array

import (
	"fmt"
	"strconv"
)

// Range is a normalized half-open interval [start, end) over one dimension.
// When open is true the end is the size of the dimension the range is applied to.
// The zero value is To(0), an empty range at the start of the dimension.
type Range struct {
	start int  // first index
	end   int  // one past the last index; ignored when open
	open  bool // end resolves to the dimension size
}

// Span returns the bounded range [start, end).
func Span(start, end int) Range { return Range{start: start, end: end} }

// From returns the open-ended range [start, dim).
func From(start int) Range { return Range{start: start, open: true} }

// To returns the open-start range [0, end).
func To(end int) Range { return Range{end: end} }

// All returns the unbounded range [0, dim).
func All() Range { return Range{open: true} }

// Index returns the width-1 range [k, k+1) selecting a single row or column.
func Index(k int) Range { return Range{start: k, end: k + 1} }

// Through returns the inclusive range [first, last], i.e. [first, last+1).
func Through(first, last int) Range { return Range{start: first, end: last + 1} }

// Start returns the first index of the range.
func (r Range) Start() int { return r.start }

// End returns the exclusive end and whether it is bounded.
// For open ranges it returns (0, false).
func (r Range) End() (int, bool) {
	if r.open {
		return 0, false
	}
	return r.end, true
}

// String renders the range in "start:end" form with omitted parts for
// defaults, e.g. "1:3", "2:", ":4", ":".
func (r Range) String() string {
	s := ""
	if r.start != 0 {
		s = strconv.Itoa(r.start)
	}
	s += ":"
	if !r.open {
		s += strconv.Itoa(r.end)
	}

	return s
}

// resolve applies the range to a dimension of size dim.
// MAIN DESCRIPTION:
//   - Substitute the open end with dim, then validate start ≤ end ≤ dim.
//
// Implementation:
//   - Stage 1: end := dim when open.
//   - Stage 2: start < 0, start > dim or end > dim ⇒ ErrOutOfBounds.
//   - Stage 3: start > end ⇒ ErrInvalidRange (never clamped).
//
// Behavior highlights:
//   - Zero-width ranges (start == end) are legal, including start == dim.
//
// Returns:
//   - (start, end, nil) or plain sentinels (callers add context).
//
// Complexity:
//   - Time O(1), Space O(1).
func (r Range) resolve(dim int) (int, int, error) {
	end := r.end
	if r.open {
		end = dim
	}
	if r.start < 0 || r.start > dim || end > dim {
		return 0, 0, fmt.Errorf("range %v over %d: %w", r, dim, ErrOutOfBounds)
	}
	if r.start > end {
		return 0, 0, fmt.Errorf("range %v: %w", r, ErrInvalidRange)
	}

	return r.start, end, nil
}
