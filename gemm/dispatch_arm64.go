// SPDX-License-Identifier: MIT

//go:build arm64

package gemm

import "golang.org/x/sys/cpu"

func detectCPUFeatures() {
	switch {
	case cpu.ARM64.HasSVE:
		// SVE length is implementation defined; tile for the 128-bit minimum.
		vectorBytes, cpuName = 16, "sve"
	case cpu.ARM64.HasASIMD:
		vectorBytes, cpuName = 16, "neon"
	default:
		vectorBytes, cpuName = 8, "scalar"
	}
}
