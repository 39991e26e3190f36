// SPDX-License-Identifier: MIT

package array

// Equal reports whether a and b have the same shape and identical elements.
// Layout (stride, offset, ownership mode) is ignored; different shapes are
// simply not equal.
// Errors: ErrNilArray; ErrAliasingViolation when either side is mutably borrowed.
// Complexity: O(rows*cols).
func Equal[T comparable](a, b Readable[T]) (bool, error) {
	if a == nil || b == nil {
		return false, opErrorf(opEqual, ErrNilArray)
	}
	la, lb := a.layout(), b.layout()
	if err := la.guard.canRead(opEqual); err != nil {
		return false, opErrorf(opEqual, err)
	}
	if err := lb.guard.canRead(opEqual); err != nil {
		return false, opErrorf(opEqual, err)
	}
	if la.rows != lb.rows || la.cols != lb.cols {
		return false, nil
	}
	var i, j, ra, rb int
	for i = 0; i < la.rows; i++ {
		ra, rb = la.offset+i*la.stride, lb.offset+i*lb.stride
		for j = 0; j < la.cols; j++ {
			if la.data[ra+j] != lb.data[rb+j] {
				return false, nil
			}
		}
	}

	return true, nil
}
