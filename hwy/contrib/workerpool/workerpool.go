// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs index-parallel loops on a fixed set of goroutines
// that live as long as the Pool.
//
// The bit-matrix transposer issues two short parallel loops per matrix (one
// over 256×256 tiles, one over 64-row block bands), often thousands of
// times in a row. Spawning goroutines for every loop would cost more than
// the work in each tile, so the workers are started once and fed through a
// channel.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, m := range matrices {
//	    pool.ParallelForAtomic(tiles, func(i int) {
//	        transposeTile(m, i)
//	    })
//	}
//
// Loops started on a closed Pool run on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers. The loop methods may be called from
// several goroutines at once; each call blocks until its own iterations
// are done.
type Pool struct {
	numWorkers int
	tasks      chan task
	workers    sync.WaitGroup
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines. If numWorkers <= 0 the pool
// gets GOMAXPROCS workers.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	p.workers.Add(numWorkers)
	for range numWorkers {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.workers.Done()
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued tasks have drained and waits for
// them to exit. It is safe to call more than once, but not concurrently
// with a running loop.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
	p.workers.Wait()
}

// fanOut hands body to up to workers goroutines of the pool and waits for
// all of them to return. With a single worker or a closed pool body runs
// inline.
func (p *Pool) fanOut(workers int, body func()) {
	if workers <= 1 || p.closed.Load() {
		body()
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{run: body, done: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges of
// equal size and calls fn(start, end) for each, concurrently. It suits
// loops whose iterations all cost the same, such as transposing a batch
// of equally sized matrices.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if p.closed.Load() {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	var next atomic.Int64
	p.fanOut(workers, func() {
		for {
			start := int(next.Add(int64(chunk))) - chunk
			if start >= n {
				return
			}
			fn(start, min(start+chunk, n))
		}
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n). Workers claim one
// index at a time from a shared counter, which balances loops whose
// iterations differ in cost.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched is ParallelForAtomic with workers claiming
// batchSize indices per counter update; fn receives [start, end). A
// batchSize <= 0 is treated as 1.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	batches := (n + batchSize - 1) / batchSize
	var next atomic.Int64
	p.fanOut(min(p.numWorkers, batches), func() {
		for {
			start := int(next.Add(int64(batchSize))) - batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
