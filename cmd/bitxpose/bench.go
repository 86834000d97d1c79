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

package main

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/folded/Stim/hwy/contrib/bitmatrix"
	"github.com/folded/Stim/hwy/contrib/workerpool"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	minLatency = time.Nanosecond
	maxLatency = time.Minute
)

type benchT struct {
	root    *rootT
	size    int
	iters   int
	workers int
	seed    int64
}

func newBenchCmd(r *rootT) *cobra.Command {
	b := &benchT{root: r}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "time repeated in-place transposes of a random matrix",
		Long: `Transposes one random matrix --iters times and reports the latency
distribution and throughput. --workers 1 runs the serial transpose; any
other value runs the parallel transposer on that many workers (0 means
GOMAXPROCS).`,
		Args: cobra.NoArgs,
		RunE: b.run,
	}
	cmd.Flags().IntVarP(&b.size, "size", "n", 4096, "matrix side in bits (multiple of 256)")
	cmd.Flags().IntVar(&b.iters, "iters", 100, "number of transposes to time")
	cmd.Flags().IntVarP(&b.workers, "workers", "w", 1, "worker goroutines (1 = serial, 0 = GOMAXPROCS)")
	cmd.Flags().Int64Var(&b.seed, "seed", 1, "random seed for the matrix contents")
	return cmd
}

func (b *benchT) run(cmd *cobra.Command, _ []string) error {
	if b.iters <= 0 {
		return errors.Newf("--iters must be positive, got %d", b.iters)
	}
	m, err := newMatrix(b.size, fillRandom, b.seed)
	if err != nil {
		return errors.Wrap(err, "--size")
	}

	transpose := bitmatrix.Transpose
	workers := 1
	if b.workers != 1 {
		pool := workerpool.New(b.workers)
		defer pool.Close()
		tr := bitmatrix.NewTransposer(pool)
		transpose = tr.Transpose
		workers = tr.Workers()
	}
	matrixBytes := uint64(len(m) * 8)
	b.root.logger.Debug("starting benchmark",
		"size", b.size, "bytes", humanize.IBytes(matrixBytes),
		"iters", b.iters, "workers", workers, "kernel", bitmatrix.KernelName())

	// One untimed run to fault in the pages.
	transpose(m, b.size)

	hist := hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 3)
	var total time.Duration
	for range b.iters {
		start := time.Now()
		transpose(m, b.size)
		elapsed := max(time.Since(start), minLatency)
		total += elapsed
		if err := hist.RecordValue(elapsed.Nanoseconds()); err != nil {
			return errors.Wrapf(err, "recording %s", elapsed)
		}
	}

	perSecond := float64(matrixBytes) * float64(b.iters) / total.Seconds()
	ns := func(v int64) string { return time.Duration(v).String() }
	tbl := tablewriter.NewWriter(cmd.OutOrStdout())
	tbl.SetHeader([]string{"size", "bytes", "workers", "kernel", "ops", "mean", "p50", "p99", "max", "throughput"})
	tbl.Append([]string{
		humanize.Comma(int64(b.size)),
		humanize.IBytes(matrixBytes),
		fmt.Sprint(workers),
		bitmatrix.KernelName(),
		humanize.Comma(hist.TotalCount()),
		ns(int64(hist.Mean())),
		ns(hist.ValueAtPercentile(50)),
		ns(hist.ValueAtPercentile(99)),
		ns(hist.Max()),
		humanize.IBytes(uint64(perSecond)) + "/s",
	})
	tbl.Render()
	return nil
}
