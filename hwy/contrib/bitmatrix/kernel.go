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

package bitmatrix

import "github.com/folded/Stim/hwy"

// kernelTransposePass applies one butterfly pass to the 256 rows of a tile.
// Architecture-specific files replace it in init when the CPU allows.
var kernelTransposePass = transposePassGeneric

// kernelName names the implementation held in kernelTransposePass.
var kernelName = "generic"

// KernelName reports which implementation of the butterfly pass is in use:
// "generic" or "avx2".
func KernelName() string {
	return kernelName
}

func transposePassGeneric(tile []uint64, stride int, h uint, mask hwy.Vec256) {
	step := int(h)
	for group := 0; group < TileBits; group += 2 * step {
		for row := group; row < group+step; row++ {
			ia := row * stride
			ib := (row + step) * stride
			a, b := butterfly(hwy.Load256(tile[ia:]), hwy.Load256(tile[ib:]), mask, h)
			a.Store(tile[ia:])
			b.Store(tile[ib:])
		}
	}
}
