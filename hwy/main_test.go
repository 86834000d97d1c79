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
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints dispatch diagnostics so CI logs show which kernels ran.
func TestMain(m *testing.M) {
	fmt.Printf("=== hwy dispatch ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("HWY_NO_SIMD=%q\n", os.Getenv("HWY_NO_SIMD"))
	fmt.Printf("Level: %s (width %d bytes, archsimd compiled: %v)\n",
		CurrentName(), CurrentWidth(), SimdCompiled())
	switch runtime.GOARCH {
	case "amd64":
		fmt.Printf("  AVX2: %v\n", HasAVX2())
		fmt.Printf("  AVX-512 (F+BW): %v\n", HasAVX512())
	case "arm64":
		fmt.Printf("  ASIMD: %v\n", HasASIMD())
	}
	fmt.Printf("====================\n\n")

	os.Exit(m.Run())
}
