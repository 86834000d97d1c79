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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd there is no archsimd, so the 256-bit kernels
// always run the portable implementation. CPU features are still recorded
// so tools can report what a simd build would select.

var (
	// hasAVX2 indicates AVX2 support (Haswell+, Excavator+).
	hasAVX2 bool

	// hasAVX512 indicates AVX-512 F+BW support.
	hasAVX512 bool
)

func init() {
	hasAVX2 = cpu.X86.HasAVX2
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW

	// Build with GOEXPERIMENT=simd for the AVX2 kernels.
	setScalarMode()
}

// HasAVX2 returns true if the CPU supports AVX2, whether or not the
// AVX2 kernels were compiled in.
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 returns true if the CPU supports AVX-512 F and BW.
func HasAVX512() bool {
	return hasAVX512
}

// HasASIMD returns false on x86 (ASIMD is ARM-specific).
func HasASIMD() bool {
	return false
}

// SimdCompiled reports whether archsimd kernels are part of this build.
func SimdCompiled() bool {
	return false
}
