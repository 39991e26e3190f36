// SPDX-License-Identifier: MIT

//go:build amd64

package gemm

import "golang.org/x/sys/cpu"

func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX512F:
		vectorBytes, cpuName = 64, "avx512"
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		vectorBytes, cpuName = 32, "avx2"
	default:
		// SSE2 is the amd64 baseline.
		vectorBytes, cpuName = 16, "sse2"
	}
}
