// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel represents the instruction set used by the 256-bit kernels.
type DispatchLevel int

const (
	// DispatchScalar indicates the portable Vec256 implementation built
	// from four uint64 words.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates archsimd Uint64x4 kernels (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates an AVX-512 capable CPU. The 256-bit kernels
	// still run as AVX2 (VEX-encoded) on these machines.
	DispatchAVX512

	// DispatchNEON indicates an ARM64 CPU with ASIMD. There are no NEON
	// kernels yet, so Vec256 runs the portable code.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// HasVectorKernels reports whether the level runs hardware 256-bit
// kernels rather than the portable implementation.
func (d DispatchLevel) HasVectorKernels() bool {
	return d == DispatchAVX2 || d == DispatchAVX512
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes of the active kernels:
// 32 when the archsimd kernels are active, 8 (one machine word) otherwise.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the portable kernels are used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 8
}
