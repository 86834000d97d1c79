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

import (
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/folded/Stim/hwy"
	"github.com/folded/Stim/internal/invariants"
)

const (
	// TileBits is the side of the tiles processed by the butterfly passes
	// and the granularity matrix sizes must be a multiple of.
	TileBits = 256

	// BlockBits is the side of the blocks moved by SwapBlocks.
	BlockBits = 64
)

// passMasks[i] selects the low half of every 2h-bit group for h = 1<<i:
// h set bits, h clear bits, repeating.
var passMasks = [6]hwy.Vec256{
	hwy.Set256U8(0x55),
	hwy.Set256U8(0x33),
	hwy.Set256U8(0x0F),
	hwy.Set256U16(0x00FF),
	hwy.Set256U32(0x0000FFFF),
	hwy.Set256U64(0x00000000FFFFFFFF),
}

// PassDistances lists the butterfly swap distances in the order
// TransposeTile applies them.
var PassDistances = [6]uint{1, 2, 4, 8, 16, 32}

// Transpose transposes the bitWidth×bitWidth matrix stored densely in m,
// in place. After the call bit (r, c) holds what bit (c, r) held before.
//
// PRECONDITION: bitWidth is a positive multiple of 256 and
// len(m) >= bitWidth*bitWidth/64.
func Transpose(m []uint64, bitWidth int) {
	TransposeStrided(m, bitWidth, bitWidth/64)
}

// TransposeStrided is Transpose for a matrix whose rows start stride words
// apart. Words beyond column bitWidth of each row are not touched.
//
// PRECONDITION: bitWidth is a positive multiple of 256,
// stride >= bitWidth/64 and len(m) >= (bitWidth-1)*stride + bitWidth/64.
func TransposeStrided(m []uint64, bitWidth, stride int) {
	if invariants.Enabled {
		if err := CheckLayout(m, bitWidth, stride); err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "bitmatrix: invalid transpose"))
		}
	}
	TransposeTiles(m, bitWidth, stride)
	SwapBlocks(m, bitWidth, stride)
}

// TransposeTiles is the first phase of TransposeStrided: it bit-transposes
// every 64×64 block of the matrix in place, without moving blocks.
func TransposeTiles(m []uint64, bitWidth, stride int) {
	for row := 0; row < bitWidth; row += TileBits {
		for col := 0; col < bitWidth; col += TileBits {
			TransposeTile(m[row*stride+col/64:], stride)
		}
	}
}

// TransposeTile bit-transposes the sixteen 64×64 blocks of the 256×256
// tile whose top-left word is tile[0]. Rows are stride words apart.
//
// For a tile made of 2×2 blocks, with upper and lower case letters
// standing for the two rows of each block, the layout goes from
//
//	aA bB
//	eE fF
//
// to
//
//	ae bf
//	AE BF
//
// Blocks keep their positions; SwapBlocks moves them afterwards.
func TransposeTile(tile []uint64, stride int) {
	for i, h := range PassDistances {
		kernelTransposePass(tile, stride, h, passMasks[i])
	}
}

// TransposePass runs the single butterfly pass with swap distance h (one
// of PassDistances) over the 256 rows of a tile. Each pass is its own
// inverse.
func TransposePass(h uint, tile []uint64, stride int) {
	i := bits.TrailingZeros(h)
	if invariants.Enabled && (h == 0 || h&(h-1) != 0 || i >= len(passMasks)) {
		panic(errors.AssertionFailedf("bitmatrix: swap distance %d not in %v", h, PassDistances))
	}
	kernelTransposePass(tile, stride, h, passMasks[i])
}

// SwapBlocks is the second phase of TransposeStrided: it swaps every
// 64×64 block (r, c) above the diagonal with block (c, r).
func SwapBlocks(m []uint64, bitWidth, stride int) {
	for blockRow := 0; blockRow < bitWidth; blockRow += BlockBits {
		swapBlockRow(m, bitWidth, stride, blockRow)
	}
}

// swapBlockRow swaps the blocks right of the diagonal in the band of rows
// starting at blockRow with their mirror images. Different bands touch
// disjoint blocks.
func swapBlockRow(m []uint64, bitWidth, stride, blockRow int) {
	for blockCol := blockRow + BlockBits; blockCol < bitWidth; blockCol += BlockBits {
		w0 := blockRow*stride + blockCol/64
		w1 := blockCol*stride + blockRow/64
		for k := 0; k < BlockBits*stride; k += stride {
			m[w0+k], m[w1+k] = m[w1+k], m[w0+k]
		}
	}
}

// butterfly exchanges the high h-bit half of every 2h-bit group of a with
// the low half of the matching group of b. mask selects the low halves.
func butterfly(a, b, mask hwy.Vec256, h uint) (hwy.Vec256, hwy.Vec256) {
	aHigh := a.AndNot(mask)
	bLow := b.And(mask)
	a = a.And(mask).Or(bLow.ShiftLeft64(h))
	b = aHigh.ShiftRight64(h).Or(b.AndNot(mask))
	return a, b
}

// CheckWidth returns an error unless bitWidth is a positive multiple of
// TileBits.
func CheckWidth(bitWidth int) error {
	if bitWidth > 0 && bitWidth%TileBits == 0 {
		return nil
	}
	err := errors.Newf("bit width %d is not a positive multiple of %d", bitWidth, TileBits)
	if bitWidth > 0 {
		up := (bitWidth + TileBits - 1) / TileBits * TileBits
		err = errors.WithHintf(err, "pad the matrix to %d×%d bits", up, up)
	}
	return err
}

// CheckLayout returns an error unless m can hold a bitWidth×bitWidth
// matrix with rows stride words apart.
func CheckLayout(m []uint64, bitWidth, stride int) error {
	if err := CheckWidth(bitWidth); err != nil {
		return err
	}
	if stride < bitWidth/64 {
		return errors.Newf("row stride %d words is shorter than a %d-bit row", stride, bitWidth)
	}
	if need := (bitWidth-1)*stride + bitWidth/64; len(m) < need {
		return errors.Newf("matrix needs %d words, buffer has %d", need, len(m))
	}
	return nil
}
