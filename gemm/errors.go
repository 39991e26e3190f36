// SPDX-License-Identifier: MIT

package gemm

import "errors"

var (
	// ErrBadParams indicates inconsistent kernel parameters: negative sizes,
	// negative strides, an addressed element outside its buffer, or an output
	// layout in which two cells share storage.
	ErrBadParams = errors.New("gemm: invalid kernel parameters")

	// ErrNilParams indicates that a nil *Params was passed to a kernel.
	ErrNilParams = errors.New("gemm: nil params")
)
