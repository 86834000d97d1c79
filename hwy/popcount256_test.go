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
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPopCount16Lanes(t *testing.T) {
	samples := []uint16{0x0000, 0xFFFF, 0x5555, 0xAAAA, 0x0001, 0x8000, 0x00FF, 0xFF00, 0x0F0F, 0x7FFF}
	rng := rand.New(rand.NewSource(7))
	for range 32 {
		samples = append(samples, uint16(rng.Uint32()))
	}

	for _, val := range samples {
		for lane := range Lanes16 {
			// The other lanes hold random noise; the counted lane must
			// not depend on them.
			v := randVec256(rng).WithLane16(lane, val)
			got := PopCount16(v).Lane16(lane)
			require.Equal(t, uint16(bits.OnesCount16(val)), got, "value 0x%04X lane %d", val, lane)
		}
	}
}

func TestPopCount16AllLanes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for range 200 {
		v := randVec256(rng)
		got := PopCount16(v)
		for lane := range Lanes16 {
			require.Equal(t, uint16(bits.OnesCount16(v.Lane16(lane))), got.Lane16(lane))
		}
		want := 0
		for _, w := range v {
			want += bits.OnesCount64(w)
		}
		require.Equal(t, want, SumLanes16(got))
	}
}

func TestPopCountStages(t *testing.T) {
	ones := Set256U64(^uint64(0))
	tests := []struct {
		name  string
		stage func(Vec256) Vec256
		want  uint16
	}{
		// Every group is full: pairs hold 0b10, nibbles 0b0100, bytes 8.
		{"pairs", PopCount2, 0xAAAA},
		{"nibbles", PopCount4, 0x4444},
		{"bytes", PopCount8, 0x0808},
		{"lanes", PopCount16, 0x0010},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, Set256U16(tt.want), tt.stage(ones))
		})
	}

	// A single set bit at the top of each group.
	require.Equal(t, Set256U16(0x5555), PopCount2(Set256U16(0xAAAA)))
	require.Equal(t, Set256U16(0x0101), PopCount8(Set256U16(0x8080)))
	require.True(t, PopCount16(Zero256()).IsZero())
}

func BenchmarkPopCount16(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	v := randVec256(rng)
	var sink Vec256
	for b.Loop() {
		sink = PopCount16(v)
		v[0]++
	}
	_ = sink
}
