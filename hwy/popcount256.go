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

// Per-lane population count by repeated pairwise summing. Each stage
// doubles the width of the partial counts: pairs of bits become 2-bit
// counts, pairs of those become 4-bit counts, and so on until every 16-bit
// lane holds its own bit count. AVX2 has no per-lane popcount instruction,
// and this ladder needs only AND, ANDNOT, a lane shift and a lane add.

var (
	popMask2  = Set256U16(0x5555)
	popMask4  = Set256U16(0x3333)
	popMask8  = Set256U16(0x0F0F)
	popMask16 = Set256U16(0x00FF)
)

// popStage folds adjacent groups of `shift` bits: the groups selected by
// mask stay put and the others are shifted down onto them and added.
func popStage(v, mask Vec256, shift uint) Vec256 {
	low := v.And(mask)
	high := v.AndNot(mask).ShiftRight16(shift)
	return low.Add16(high)
}

// PopCount2 replaces every pair of bits with the number of bits set in
// that pair (0..2).
func PopCount2(v Vec256) Vec256 {
	return popStage(v, popMask2, 1)
}

// PopCount4 replaces every nibble with its bit count (0..4).
func PopCount4(v Vec256) Vec256 {
	return popStage(PopCount2(v), popMask4, 2)
}

// PopCount8 replaces every byte with its bit count (0..8).
func PopCount8(v Vec256) Vec256 {
	return popStage(PopCount4(v), popMask8, 4)
}

// PopCount16 returns, in each 16-bit lane, the number of bits set in the
// same lane of v (0..16). Lanes are computed independently.
//
// Example:
//
//	v := hwy.Zero256().WithLane16(3, 0xF00F)
//	hwy.PopCount16(v).Lane16(3) // 8
func PopCount16(v Vec256) Vec256 {
	return popStage(PopCount8(v), popMask16, 8)
}

// SumLanes16 adds up all sixteen 16-bit lanes.
func SumLanes16(v Vec256) int {
	total := 0
	for i := range Lanes16 {
		total += int(v.Lane16(i))
	}
	return total
}
