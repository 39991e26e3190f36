// SPDX-License-Identifier: MIT

package gemm

import (
	"os"
	"runtime"
	"strconv"
	"unsafe"

	"go.uber.org/zap"

	"github.com/katalvlaran/strided/ring"
)

// Level identifies the kernel family Select hands out for float elements.
type Level int

const (
	// LevelReference selects the portable triple loop.
	LevelReference Level = iota

	// LevelBlocked selects the cache-tiled single-goroutine kernel.
	LevelBlocked

	// LevelParallel selects row-band parallelism over the blocked kernel.
	LevelParallel
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelReference:
		return "reference"
	case LevelBlocked:
		return "blocked"
	case LevelParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// NoOptEnvVar is the environment variable that forces the reference kernel.
const NoOptEnvVar = "STRIDED_NO_OPT"

// currentLevel is the dispatch level chosen at init.
var currentLevel Level

// vectorBytes is the SIMD register width in bytes reported by detectCPUFeatures.
var vectorBytes int

// cpuName is a human-readable name of the detected vector unit.
var cpuName string

func init() {
	detectCPUFeatures() // per-arch, see dispatch_*.go
	currentLevel = levelFor(NoOptEnv(), runtime.GOMAXPROCS(0))
}

// levelFor maps environment and parallelism to a dispatch level.
func levelFor(noOpt bool, procs int) Level {
	switch {
	case noOpt:
		return LevelReference
	case procs > 1:
		return LevelParallel
	default:
		return LevelBlocked
	}
}

// NoOptEnv reports whether STRIDED_NO_OPT is set to a true value.
// Any non-empty value that does not parse as a bool counts as true.
func NoOptEnv() bool {
	val := os.Getenv(NoOptEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// CurrentLevel returns the level chosen at init.
func CurrentLevel() Level { return currentLevel }

// CPUName returns the detected vector unit, e.g. "avx2", "neon", "scalar".
func CPUName() string { return cpuName }

// VectorBytes returns the detected SIMD register width in bytes.
func VectorBytes() int { return vectorBytes }

// TilingFor returns the tiling Select uses for element type T on this CPU.
func TilingFor[T ring.Element]() Tiling {
	var z T
	return tilingFor(vectorBytes, int(unsafe.Sizeof(z)))
}

// Select returns the kernel for element type T.
// MAIN DESCRIPTION:
//   - float32/float64 get the kernel of CurrentLevel with a CPU-derived tiling.
//   - Every other ring element (integers, complex, named types) gets Reference.
//
// Behavior highlights:
//   - Logs the decision at debug level on the package logger.
//
// Complexity:
//   - Time O(1).
func Select[T ring.Element]() Kernel[T] {
	return selectAt[T](currentLevel)
}

// SelectLevel returns the kernel for T at an explicit level, bypassing the
// init-time decision. Non-float element types still get Reference.
func SelectLevel[T ring.Element](l Level) Kernel[T] {
	return selectAt[T](l)
}

func selectAt[T ring.Element](l Level) Kernel[T] {
	var z T
	switch any(z).(type) {
	case float32, float64:
	default:
		l = LevelReference
	}

	Logger().Debug("gemm kernel selected",
		zap.Stringer("level", l),
		zap.String("cpu", cpuName),
		zap.Int("elem_bytes", int(unsafe.Sizeof(z))))

	switch l {
	case LevelParallel:
		return Parallel[T](0, TilingFor[T]())
	case LevelBlocked:
		return Blocked[T](TilingFor[T]())
	default:
		return Reference[T]
	}
}
