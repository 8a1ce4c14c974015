package config

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Default resolution chain (highest priority first):
//   1. CLI flag (--simd)
//   2. Environment variable (BIGRADIX_SIMD)
//   3. Adaptive hardware estimation (this file, applied by DefaultConfig)

// EstimateOptimalSIMDDefault heuristically decides whether the word-tiered
// SIMD-simulated arithmetic path is worth its bookkeeping overhead on this
// machine, absent an explicit --simd/--simd=false from the caller. Single-core
// machines rarely benefit from batching carry propagation into wider limbs
// regardless of architecture; on multi-core machines the decision follows the
// vector-unit width actually present, not just GOARCH, since a bare amd64
// build without AVX2 gains little from 15-byte limbs.
func EstimateOptimalSIMDDefault() bool {
	if runtime.NumCPU() <= 1 {
		return false
	}
	switch runtime.GOARCH {
	case "amd64":
		return cpu.X86.HasAVX2
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}
