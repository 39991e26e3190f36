// SPDX-License-Identifier: MIT

package gemm

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strided/ring"
)

// ParallelThreshold is the M*N*K product below which Parallel runs the blocked
// loop on the calling goroutine; goroutine fan-out costs more than it saves on
// matrices that fit in cache.
const ParallelThreshold = 64 * 64 * 64

// Parallel returns a kernel that splits C into contiguous row bands and
// computes them concurrently, each band with the blocked loop.
// MAIN DESCRIPTION:
//   - Row-parallel GEMM: workers never write the same output row, inputs are read-only.
//
// Implementation:
//   - Stage 1: Validate; small products (< ParallelThreshold) or a single band
//     run inline.
//   - Stage 2: band height = ceil(M/workers); one errgroup task per band with
//     SetLimit(workers).
//
// Behavior highlights:
//   - The call is synchronous: it returns after every band finished.
//   - Per-cell summation order is that of Reference, so results do not depend
//     on the number of workers.
//
// Inputs:
//   - workers: maximum concurrent bands; <= 0 means runtime.GOMAXPROCS(0).
//   - t: tiling used inside each band.
//
// Complexity:
//   - Time O(M*N*K / workers) wall clock, Space O(workers*ColBlock).
func Parallel[T ring.Element](workers int, t Tiling) Kernel[T] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	t = t.normalized()

	return func(p *Params[T]) error {
		if err := Validate(p); err != nil {
			return err
		}
		if workers == 1 || p.M < 2 || p.ops() < ParallelThreshold {
			blockedRows(p, 0, p.M, t)
			return nil
		}

		band := (p.M + workers - 1) / workers
		var g errgroup.Group
		g.SetLimit(workers)
		for i0 := 0; i0 < p.M; i0 += band {
			i1 := min(i0+band, p.M)
			g.Go(func() error {
				blockedRows(p, i0, i1, t)
				return nil
			})
		}

		return g.Wait()
	}
}
