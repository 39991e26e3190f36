// SPDX-License-Identifier: MIT

// Package array: functional configuration for Multiply.
//   - Option / options (functional options with internal state),
//   - WithX constructors panic on nonsensical values (programmer error),
//   - gatherOptions resolves defaults (kernel = gemm.Select[T]()).

package array

import (
	"github.com/katalvlaran/strided/gemm"
	"github.com/katalvlaran/strided/ring"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilKernel = "array: WithKernel: kernel must not be nil"
	panicBadLevel  = "array: WithLevel: unknown gemm level"
)

// Option configures Multiply. Safe to apply repeatedly; the last one wins.
type Option[T ring.Element] func(*options[T])

// options stores the effective configuration after applying Option setters.
type options[T ring.Element] struct {
	kernel gemm.Kernel[T] // nil ⇒ gemm.Select[T]()
}

// WithKernel makes Multiply call k instead of the dispatched kernel.
// Panics when k is nil.
func WithKernel[T ring.Element](k gemm.Kernel[T]) Option[T] {
	if k == nil {
		panic(panicNilKernel)
	}

	return func(o *options[T]) { o.kernel = k }
}

// WithLevel pins the kernel family regardless of the init-time dispatch,
// e.g. gemm.LevelReference for bit-for-bit reproducibility checks.
// Panics on an unknown level.
func WithLevel[T ring.Element](l gemm.Level) Option[T] {
	switch l {
	case gemm.LevelReference, gemm.LevelBlocked, gemm.LevelParallel:
	default:
		panic(panicBadLevel)
	}

	return func(o *options[T]) { o.kernel = gemm.SelectLevel[T](l) }
}

// gatherOptions applies opts over defaults. nil entries are skipped.
func gatherOptions[T ring.Element](opts []Option[T]) options[T] {
	var o options[T]
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.kernel == nil {
		o.kernel = gemm.Select[T]()
	}

	return o
}
