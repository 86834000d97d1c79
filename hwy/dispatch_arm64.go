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

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available; it's part of the
	// ARMv8-A base architecture. The level is reported for diagnostics but
	// Vec256 still runs the portable word-at-a-time code.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 8
	} else {
		setScalarMode()
	}
}

// HasAVX2 returns false on ARM (AVX2 is x86-specific).
func HasAVX2() bool {
	return false
}

// HasAVX512 returns false on ARM (AVX-512 is x86-specific).
func HasAVX512() bool {
	return false
}

// HasASIMD returns true if the CPU supports ARM Advanced SIMD.
func HasASIMD() bool {
	return cpu.ARM64.HasASIMD
}

// SimdCompiled reports whether archsimd kernels are part of this build.
func SimdCompiled() bool {
	return false
}
