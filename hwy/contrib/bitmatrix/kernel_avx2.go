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

//go:build amd64 && goexperiment.simd

package bitmatrix

import (
	"simd/archsimd"

	"github.com/folded/Stim/hwy"
)

func init() {
	if hwy.CurrentLevel().HasVectorKernels() {
		kernelTransposePass = transposePassAVX2
		kernelName = "avx2"
	}
}

// transposePassAVX2 is transposePassGeneric with each 256-bit row segment
// held in one YMM register. Every pass mask repeats per 64-bit word, so a
// broadcast of its first word is enough.
func transposePassAVX2(tile []uint64, stride int, h uint, mask hwy.Vec256) {
	m := archsimd.BroadcastUint64x4(mask[0])
	shift := uint64(h)
	step := int(h)
	for group := 0; group < TileBits; group += 2 * step {
		for row := group; row < group+step; row++ {
			sa := tile[row*stride:]
			sb := tile[(row+step)*stride:]
			a := archsimd.LoadUint64x4Slice(sa)
			b := archsimd.LoadUint64x4Slice(sb)
			aHigh := a.AndNot(m)
			bLow := b.And(m)
			a.And(m).Or(bLow.ShiftAllLeft(shift)).StoreSlice(sa)
			aHigh.ShiftAllRight(shift).Or(b.AndNot(m)).StoreSlice(sb)
		}
	}
}
