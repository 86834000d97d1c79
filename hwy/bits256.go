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

import "strings"

// Conversions between Vec256 and []bool, and text renderings for dumps and
// test failures. None of this is on a hot path.

// hexDigits uses '.' for the zero nibble so sparse dumps stay readable.
const hexDigits = ".123456789ABCDEF"

// ToBits returns the 256 bits of v in order: sub-word 0 first, least
// significant bit first within each sub-word.
func ToBits(v Vec256) []bool {
	out := make([]bool, 0, 256)
	for _, w := range v {
		for i := range 64 {
			out = append(out, (w>>uint(i))&1 != 0)
		}
	}
	return out
}

// FromBits is the inverse of ToBits. Bit i of the result is set when
// bits[i] is true. Entries past index 255 are ignored.
func FromBits(bits []bool) Vec256 {
	var v Vec256
	n := min(len(bits), 256)
	for i := range n {
		if bits[i] {
			v[i>>6] |= 1 << (uint(i) & 63)
		}
	}
	return v
}

// Hex renders each sub-word as 16 hex digits, most significant nibble
// first, with sub-words separated by a single space. Zero nibbles are
// printed as '.'.
func Hex(v Vec256) string {
	var sb strings.Builder
	sb.Grow(4*16 + 3)
	for w, word := range v {
		if w > 0 {
			sb.WriteByte(' ')
		}
		for shift := 60; shift >= 0; shift -= 4 {
			sb.WriteByte(hexDigits[(word>>uint(shift))&0xF])
		}
	}
	return sb.String()
}

// Binary renders each sub-word as 64 '0'/'1' characters, most significant
// bit first, with sub-words separated by a single space.
func Binary(v Vec256) string {
	var sb strings.Builder
	sb.Grow(4*64 + 3)
	for w, word := range v {
		if w > 0 {
			sb.WriteByte(' ')
		}
		for shift := 63; shift >= 0; shift-- {
			sb.WriteByte('0' + byte((word>>uint(shift))&1))
		}
	}
	return sb.String()
}

// String implements fmt.Stringer using Hex.
func (v Vec256) String() string {
	return Hex(v)
}
