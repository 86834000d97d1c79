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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randVec256(rng *rand.Rand) Vec256 {
	return Vec256{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()}
}

func TestLoadStore256(t *testing.T) {
	src := []uint64{1, 2, 3, 4, 5}
	v := Load256(src[1:])
	require.Equal(t, Vec256{2, 3, 4, 5}, v)

	dst := make([]uint64, 6)
	v.Store(dst[2:])
	require.Equal(t, []uint64{0, 0, 2, 3, 4, 5}, dst)
}

func TestBroadcast(t *testing.T) {
	tests := []struct {
		name string
		got  Vec256
		want uint64
	}{
		{"u8", Set256U8(0x55), 0x5555555555555555},
		{"u8 nibble", Set256U8(0x0F), 0x0F0F0F0F0F0F0F0F},
		{"u16", Set256U16(0x00FF), 0x00FF00FF00FF00FF},
		{"u32", Set256U32(0xFFFF), 0x0000FFFF0000FFFF},
		{"u64", Set256U64(0xFFFFFFFF), 0x00000000FFFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, Set256U64(tt.want), tt.got)
		})
	}
}

func TestBitwise(t *testing.T) {
	a := Vec256{0xFF00FF00FF00FF00, 0, ^uint64(0), 0x123456789ABCDEF0}
	b := Vec256{0x0F0F0F0F0F0F0F0F, ^uint64(0), 0, 0xFFFFFFFF00000000}

	require.Equal(t, Vec256{0x0F000F000F000F00, 0, 0, 0x1234567800000000}, a.And(b))
	require.Equal(t, Vec256{0xF000F000F000F000, 0, ^uint64(0), 0x000000009ABCDEF0}, a.AndNot(b))
	require.Equal(t, Vec256{0xFF0FFF0FFF0FFF0F, ^uint64(0), ^uint64(0), 0xFFFFFFFF9ABCDEF0}, a.Or(b))
	require.Equal(t, Vec256{0xF00FF00FF00FF00F, ^uint64(0), ^uint64(0), 0xEDCBA9879ABCDEF0}, a.Xor(b))
}

func TestShift64(t *testing.T) {
	v := Vec256{1, 0x8000000000000000, 0xF0, 0}
	require.Equal(t, Vec256{1 << 4, 0, 0xF00, 0}, v.ShiftLeft64(4))
	require.Equal(t, Vec256{0, 0x0800000000000000, 0xF, 0}, v.ShiftRight64(4))
}

func TestShiftRight16StaysInLane(t *testing.T) {
	// Lane 1 (bits 16..31 of word 0) must not leak into lane 0.
	v := Zero256().WithLane16(1, 0xFFFF).WithLane16(4, 0x8001)
	got := v.ShiftRight16(1)
	require.Equal(t, uint16(0), got.Lane16(0))
	require.Equal(t, uint16(0x7FFF), got.Lane16(1))
	require.Equal(t, uint16(0x4000), got.Lane16(4))
	require.True(t, v.ShiftRight16(16).IsZero())
}

func TestAdd16Wraps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 100 {
		a, b := randVec256(rng), randVec256(rng)
		sum := a.Add16(b)
		for i := range Lanes16 {
			require.Equal(t, a.Lane16(i)+b.Lane16(i), sum.Lane16(i), "lane %d", i)
		}
	}
}

func TestLane16(t *testing.T) {
	v := Vec256{0x4444333322221111, 0, 0, 0xDDDDCCCCBBBBAAAA}
	require.Equal(t, uint16(0x1111), v.Lane16(0))
	require.Equal(t, uint16(0x4444), v.Lane16(3))
	require.Equal(t, uint16(0xAAAA), v.Lane16(12))
	require.Equal(t, uint16(0xDDDD), v.Lane16(15))

	w := v.WithLane16(2, 0xBEEF)
	require.Equal(t, uint64(0x4444BEEF22221111), w[0])
	require.Equal(t, v[1:], w[1:])
}

func TestBit(t *testing.T) {
	v := Zero256()
	v[2] = 1 << 5
	for i := range 256 {
		require.Equal(t, i == 128+5, v.Bit(i), "bit %d", i)
	}
}
