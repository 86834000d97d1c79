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

// This file provides the portable 256-bit register used by the bit-matrix
// kernels. All operations are value-in, value-out and small enough to be
// inlined, so loops built from them do not allocate.

// Vec256 is a 256-bit register stored as four 64-bit sub-words, sub-word 0
// first. Bit i of the register is bit i%64 of sub-word i/64.
//
// For 16-bit lane operations the register is viewed as sixteen lanes; lane
// i is bits 16*(i%4) through 16*(i%4)+15 of sub-word i/4, matching the
// memory layout of an x86 __m256i on a little-endian machine.
type Vec256 [4]uint64

// Lanes16 is the number of 16-bit lanes in a Vec256.
const Lanes16 = 16

// Zero256 returns the all-zero register.
func Zero256() Vec256 {
	return Vec256{}
}

// Load256 loads four consecutive words from src.
// PRECONDITION: len(src) >= 4.
func Load256(src []uint64) Vec256 {
	_ = src[3] // BCE
	return Vec256{src[0], src[1], src[2], src[3]}
}

// Store writes the register to dst[0:4].
// PRECONDITION: len(dst) >= 4.
func (v Vec256) Store(dst []uint64) {
	_ = dst[3] // BCE
	dst[0] = v[0]
	dst[1] = v[1]
	dst[2] = v[2]
	dst[3] = v[3]
}

// Set256U64 broadcasts x into every 64-bit lane.
func Set256U64(x uint64) Vec256 {
	return Vec256{x, x, x, x}
}

// Set256U32 broadcasts x into every 32-bit lane.
func Set256U32(x uint32) Vec256 {
	return Set256U64(uint64(x) * 0x0000000100000001)
}

// Set256U16 broadcasts x into every 16-bit lane.
func Set256U16(x uint16) Vec256 {
	return Set256U64(uint64(x) * 0x0001000100010001)
}

// Set256U8 broadcasts x into every byte.
func Set256U8(x uint8) Vec256 {
	return Set256U64(uint64(x) * 0x0101010101010101)
}

// And returns v & o.
func (v Vec256) And(o Vec256) Vec256 {
	return Vec256{v[0] & o[0], v[1] & o[1], v[2] & o[2], v[3] & o[3]}
}

// AndNot returns v &^ o (v AND NOT o). Note the operand order follows Go's
// &^ operator and archsimd, not the x86 ANDN instruction.
func (v Vec256) AndNot(o Vec256) Vec256 {
	return Vec256{v[0] &^ o[0], v[1] &^ o[1], v[2] &^ o[2], v[3] &^ o[3]}
}

// Or returns v | o.
func (v Vec256) Or(o Vec256) Vec256 {
	return Vec256{v[0] | o[0], v[1] | o[1], v[2] | o[2], v[3] | o[3]}
}

// Xor returns v ^ o.
func (v Vec256) Xor(o Vec256) Vec256 {
	return Vec256{v[0] ^ o[0], v[1] ^ o[1], v[2] ^ o[2], v[3] ^ o[3]}
}

// ShiftLeft64 shifts each 64-bit lane left by n bits, zero-filling.
func (v Vec256) ShiftLeft64(n uint) Vec256 {
	return Vec256{v[0] << n, v[1] << n, v[2] << n, v[3] << n}
}

// ShiftRight64 shifts each 64-bit lane right by n bits, zero-filling.
func (v Vec256) ShiftRight64(n uint) Vec256 {
	return Vec256{v[0] >> n, v[1] >> n, v[2] >> n, v[3] >> n}
}

// ShiftRight16 shifts each 16-bit lane right by n bits, zero-filling.
// Bits never cross from one lane into its neighbour.
func (v Vec256) ShiftRight16(n uint) Vec256 {
	if n >= 16 {
		return Vec256{}
	}
	keep := uint64(0xFFFF>>n) * 0x0001000100010001
	return v.ShiftRight64(n).And(Set256U64(keep))
}

// Add16 adds each pair of 16-bit lanes, wrapping on overflow.
func (v Vec256) Add16(o Vec256) Vec256 {
	return Vec256{add16(v[0], o[0]), add16(v[1], o[1]), add16(v[2], o[2]), add16(v[3], o[3])}
}

// add16 adds the four 16-bit lanes of a and b without letting carries out
// of bit 15 reach the next lane.
func add16(a, b uint64) uint64 {
	const high = 0x8000800080008000
	sum := (a &^ high) + (b &^ high)
	return sum ^ ((a ^ b) & high)
}

// Lane16 returns 16-bit lane i.
func (v Vec256) Lane16(i int) uint16 {
	return uint16(v[i>>2] >> (uint(i&3) * 16))
}

// WithLane16 returns a copy of v with 16-bit lane i replaced by x.
func (v Vec256) WithLane16(i int, x uint16) Vec256 {
	shift := uint(i&3) * 16
	v[i>>2] = v[i>>2]&^(0xFFFF<<shift) | uint64(x)<<shift
	return v
}

// Bit returns bit i (0..255) of the register.
func (v Vec256) Bit(i int) bool {
	return v[i>>6]>>(uint(i)&63)&1 != 0
}

// Equal reports whether v and o hold the same 256 bits.
func (v Vec256) Equal(o Vec256) bool {
	return v == o
}

// IsZero reports whether every bit of v is clear.
func (v Vec256) IsZero() bool {
	return v[0]|v[1]|v[2]|v[3] == 0
}
