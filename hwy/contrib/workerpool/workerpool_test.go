// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// visits records how many times each index was handed out.
type visits []atomic.Int32

func (v visits) requireOnce(t *testing.T) {
	t.Helper()
	for i := range v {
		require.Equal(t, int32(1), v[i].Load(), "index %d", i)
	}
}

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	require.Equal(t, 4, pool.NumWorkers())

	def := New(0)
	defer def.Close()
	require.Equal(t, runtime.GOMAXPROCS(0), def.NumWorkers())
}

func TestLoopsVisitEachIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	loops := []struct {
		name string
		run  func(n int, v visits)
	}{
		{"ParallelFor", func(n int, v visits) {
			pool.ParallelFor(n, func(start, end int) {
				for i := start; i < end; i++ {
					v[i].Add(1)
				}
			})
		}},
		{"ParallelForAtomic", func(n int, v visits) {
			pool.ParallelForAtomic(n, func(i int) { v[i].Add(1) })
		}},
		{"ParallelForAtomicBatched", func(n int, v visits) {
			pool.ParallelForAtomicBatched(n, 7, func(start, end int) {
				require.LessOrEqual(t, end-start, 7)
				for i := start; i < end; i++ {
					v[i].Add(1)
				}
			})
		}},
	}
	for _, loop := range loops {
		t.Run(loop.name, func(t *testing.T) {
			for _, n := range []int{1, 3, 4, 100, 1001} {
				v := make(visits, n)
				loop.run(n, v)
				v.requireOnce(t)
			}
		})
	}
}

func TestEmptyLoops(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	fail := func(int, int) { t.Fatal("fn called for an empty range") }
	pool.ParallelFor(0, fail)
	pool.ParallelFor(-1, fail)
	pool.ParallelForAtomicBatched(0, 4, fail)
	pool.ParallelForAtomic(0, func(int) { t.Fatal("fn called for an empty range") })
}

func TestBatchSizeClamped(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	v := make(visits, 10)
	pool.ParallelForAtomicBatched(10, 0, func(start, end int) {
		require.Equal(t, 1, end-start)
		v[start].Add(1)
	})
	v.requireOnce(t)
}

func TestConcurrentCallers(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	const callers, n = 8, 257
	var wg sync.WaitGroup
	all := make([]visits, callers)
	for c := range callers {
		all[c] = make(visits, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.ParallelForAtomic(n, func(i int) { all[c][i].Add(1) })
		}()
	}
	wg.Wait()
	for _, v := range all {
		v.requireOnce(t)
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	v := make(visits, 100)
	pool.ParallelFor(100, func(start, end int) {
		require.Equal(t, 0, start)
		require.Equal(t, 100, end)
		for i := start; i < end; i++ {
			v[i].Add(1)
		}
	})
	v.requireOnce(t)
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	sink := make([]uint64, 1024)
	for b.Loop() {
		pool.ParallelForAtomic(len(sink), func(i int) {
			sink[i] = sink[i]*31 + uint64(i)
		})
	}
}

// BenchmarkPoolOverhead measures the cost of an almost empty loop.
func BenchmarkPoolOverhead(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelFor(pool.NumWorkers(), func(start, end int) {})
	}
}
