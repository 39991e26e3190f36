// SPDX-License-Identifier: MIT

//go:build !amd64 && !arm64

package gemm

func detectCPUFeatures() {
	vectorBytes, cpuName = 8, "scalar"
}
