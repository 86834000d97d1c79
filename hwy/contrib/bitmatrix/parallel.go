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
	"github.com/cockroachdb/errors"
	"github.com/folded/Stim/hwy/contrib/workerpool"
	"github.com/folded/Stim/internal/invariants"
)

// Transposer spreads transposes over a worker pool. It produces exactly
// the same result as the package-level functions.
//
// Tiles are independent in the first phase and block bands are disjoint in
// the second, so each phase is a parallel loop; the phases run one after
// the other. A Transposer is safe for concurrent use on distinct matrices.
type Transposer struct {
	pool *workerpool.Pool
}

// NewTransposer returns a Transposer running on pool. The caller keeps
// ownership of the pool and closes it when done.
func NewTransposer(pool *workerpool.Pool) *Transposer {
	return &Transposer{pool: pool}
}

// Workers returns the size of the underlying pool.
func (t *Transposer) Workers() int {
	return t.pool.NumWorkers()
}

// Transpose is the parallel form of Transpose.
func (t *Transposer) Transpose(m []uint64, bitWidth int) {
	t.TransposeStrided(m, bitWidth, bitWidth/64)
}

// TransposeStrided is the parallel form of TransposeStrided.
func (t *Transposer) TransposeStrided(m []uint64, bitWidth, stride int) {
	if invariants.Enabled {
		if err := CheckLayout(m, bitWidth, stride); err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "bitmatrix: invalid transpose"))
		}
	}
	tilesPerSide := bitWidth / TileBits
	t.pool.ParallelForAtomic(tilesPerSide*tilesPerSide, func(i int) {
		row, col := i/tilesPerSide*TileBits, i%tilesPerSide*TileBits
		TransposeTile(m[row*stride+col/64:], stride)
	})
	// Band b swaps bitWidth/64-1-b blocks, so the work shrinks along the
	// loop; single-index claims keep the tail balanced.
	t.pool.ParallelForAtomic(bitWidth/BlockBits-1, func(band int) {
		swapBlockRow(m, bitWidth, stride, band*BlockBits)
	})
}

// TransposeAll transposes every matrix in ms, each bitWidth×bitWidth and
// stored densely. Matrices are distributed over the workers whole; a
// single matrix is transposed with Transpose instead.
func (t *Transposer) TransposeAll(ms [][]uint64, bitWidth int) {
	if len(ms) == 1 {
		t.Transpose(ms[0], bitWidth)
		return
	}
	t.pool.ParallelFor(len(ms), func(start, end int) {
		for _, m := range ms[start:end] {
			Transpose(m, bitWidth)
		}
	})
}
