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

// Package bitmatrix transposes square bit-packed boolean matrices in place.
//
// # Layout
//
// A matrix of N×N bits (N a positive multiple of 256) is a []uint64 in
// row-major order. Row r starts at word r*stride, where stride is the row
// stride in words and is at least N/64; column c of that row is bit c%64
// of word r*stride + c/64. Transpose uses the dense stride N/64;
// TransposeStrided accepts a larger stride so a matrix can live inside a
// wider allocation.
//
// # Algorithm
//
// Transposing bit by bit touches memory in a column-strided pattern and is
// dominated by cache misses. Instead the transpose runs in two phases:
//
//  1. The matrix is cut into 256×256 tiles. Inside each tile six butterfly
//     passes with swap distances 1, 2, 4, 8, 16 and 32 transpose every
//     64×64 block in place. A pass pairs row k with row k+h and exchanges
//     the high h-bit group of every 2h-bit group of row k with the low
//     group of row k+h, operating on a full 256-bit row segment at a time.
//  2. Every 64×64 block (r, c) above the diagonal is swapped word by word
//     with block (c, r) across the whole matrix.
//
// Phase 1 is a handful of AND/ANDNOT/OR/shift operations per 256-bit row
// segment and runs as AVX2 when the package is built with GOEXPERIMENT=simd
// (see hwy.CurrentLevel). Phase 2 only moves whole words.
//
// # Contracts
//
// The functions here do not allocate and do not validate their input
// except in builds with the "invariants" or "race" tags. Callers that take
// sizes from users should check them first with CheckWidth and
// CheckLayout. A matrix must not be read or written by anyone else while it
// is being transposed; independent matrices may be transposed
// concurrently.
//
// Example:
//
//	const n = 512
//	m := make([]uint64, n*n/64)
//	// ... fill m ...
//	bitmatrix.Transpose(m, n)
package bitmatrix
