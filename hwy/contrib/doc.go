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

// Package contrib holds the packages built on the hwy register helpers.
//
// # Subpackages
//
//   - bitmatrix: in-place transpose of square bit-packed matrices, serial
//     and on a worker pool
//   - bitptr: views of single bits inside []byte and []uint64 storage
//   - workerpool: persistent goroutines for index-parallel loops
//
// # Transpose
//
//	import "github.com/folded/Stim/hwy/contrib/bitmatrix"
//
//	if err := bitmatrix.CheckWidth(n); err != nil {
//	    return err
//	}
//	bitmatrix.Transpose(m, n)
//
// # Build Requirements
//
// The AVX2 pass kernel requires:
//   - GOEXPERIMENT=simd build flag
//   - AMD64 architecture with AVX2 support
//
// Other builds use the portable kernel, which produces identical results.
package contrib
