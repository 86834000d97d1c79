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

package main

import (
	"math/bits"
	"math/rand"

	"github.com/cockroachdb/errors"
	"github.com/folded/Stim/hwy/contrib/bitmatrix"
	"github.com/folded/Stim/hwy/contrib/bitptr"
)

// Fill patterns accepted by --fill.
const (
	fillRandom   = "random"
	fillIdentity = "identity"
	fillTriangle = "triangle"
)

var fillPatterns = []string{fillRandom, fillIdentity, fillTriangle}

// newMatrix allocates a dense n×n matrix filled with pattern. The triangle
// pattern sets every bit on or above the diagonal.
func newMatrix(n int, pattern string, seed int64) ([]uint64, error) {
	if err := bitmatrix.CheckWidth(n); err != nil {
		return nil, err
	}
	m := make([]uint64, n*n/64)
	switch pattern {
	case fillRandom:
		rng := rand.New(rand.NewSource(seed))
		for i := range m {
			m[i] = rng.Uint64()
		}
	case fillIdentity:
		for i := range n {
			bitptr.FromWords(m, i*n+i).Set(true)
		}
	case fillTriangle:
		for r := range n {
			for c := r; c < n; c++ {
				bitptr.FromWords(m, r*n+c).Set(true)
			}
		}
	default:
		return nil, errors.WithHintf(errors.Newf("unknown fill pattern %q", pattern),
			"use one of %v", fillPatterns)
	}
	return m, nil
}

// naiveTranspose is the bit-by-bit reference the fast path is checked
// against.
func naiveTranspose(m []uint64, n int) []uint64 {
	out := make([]uint64, len(m))
	for r := range n {
		for c := range n {
			if bitptr.FromWords(m, c*n+r).Get() {
				bitptr.FromWords(out, r*n+c).Set(true)
			}
		}
	}
	return out
}

// firstDifference returns the row and column of the first bit at which a
// and b differ, or ok=false if they are equal.
func firstDifference(a, b []uint64, n int) (row, col int, ok bool) {
	for i := range a {
		if d := a[i] ^ b[i]; d != 0 {
			off := i*64 + bits.TrailingZeros64(d)
			return off / n, off % n, true
		}
	}
	return 0, 0, false
}
