// SPDX-License-Identifier: MIT

package gemm

import "github.com/katalvlaran/strided/ring"

// Tiling holds the blocking parameters of the Blocked kernel.
//   - ColBlock: output columns processed per tile; the per-row accumulator has
//     this length and the B panel K×ColBlock is reused across RowBlock rows.
//   - RowBlock: output rows sharing one B panel before moving to the next tile.
type Tiling struct {
	RowBlock int
	ColBlock int
}

// defaultTiling is used when no CPU-specific tiling was detected.
var defaultTiling = Tiling{RowBlock: 32, ColBlock: 128}

// tilingFor derives a tiling from the detected vector width in bytes.
// The column block is a fixed number of vector registers worth of elements.
func tilingFor(vectorBytes, elemBytes int) Tiling {
	if vectorBytes <= 0 || elemBytes <= 0 {
		return defaultTiling
	}
	lanes := vectorBytes / elemBytes
	if lanes < 1 {
		lanes = 1
	}

	return Tiling{RowBlock: 32, ColBlock: 32 * lanes}
}

// Blocked returns a cache-tiled kernel with the given tiling.
// MAIN DESCRIPTION:
//   - Walk C in RowBlock×ColBlock tiles; for each row of a tile accumulate the
//     ColBlock dot products in a scratch row while streaming k upward.
//
// Behavior highlights:
//   - Summation order per cell equals Reference (k ascending, starting at Zero),
//     so results are identical to Reference for identical inputs.
//   - One scratch allocation of ColBlock elements per call.
//
// Complexity:
//   - Time O(M*N*K), Space O(ColBlock).
//
// Notes:
//   - Non-positive tiling fields fall back to defaultTiling values.
func Blocked[T ring.Element](t Tiling) Kernel[T] {
	t = t.normalized()

	return func(p *Params[T]) error {
		if err := Validate(p); err != nil {
			return err
		}
		blockedRows(p, 0, p.M, t)

		return nil
	}
}

// normalized replaces non-positive fields with defaults.
func (t Tiling) normalized() Tiling {
	if t.RowBlock <= 0 {
		t.RowBlock = defaultTiling.RowBlock
	}
	if t.ColBlock <= 0 {
		t.ColBlock = defaultTiling.ColBlock
	}

	return t
}

// blockedRows computes output rows [i0, i1) tile by tile.
func blockedRows[T ring.Element](p *Params[T], i0, i1 int, t Tiling) {
	if p.N == 0 || i0 >= i1 {
		return
	}
	acc := make([]T, min(t.ColBlock, p.N))
	var ib, jb, i, k, jj, width, rowEnd int
	var aik T
	zero := ring.Zero[T]()
	for jb = 0; jb < p.N; jb += t.ColBlock {
		width = min(t.ColBlock, p.N-jb)
		for ib = i0; ib < i1; ib += t.RowBlock {
			rowEnd = min(ib+t.RowBlock, i1)
			for i = ib; i < rowEnd; i++ {
				for jj = 0; jj < width; jj++ {
					acc[jj] = zero
				}
				for k = 0; k < p.K; k++ {
					aik = p.A.Data[p.A.at(i, k)]
					bOff := p.B.at(k, jb)
					for jj = 0; jj < width; jj++ {
						acc[jj] += aik * p.B.Data[bOff+jj*p.B.ColStride]
					}
				}
				for jj = 0; jj < width; jj++ {
					p.store(i, jb+jj, acc[jj])
				}
			}
		}
	}
}
