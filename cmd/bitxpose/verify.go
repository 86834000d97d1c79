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
	"runtime"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/folded/Stim/hwy/contrib/bitmatrix"
	"github.com/folded/Stim/hwy/contrib/workerpool"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type verifyT struct {
	root    *rootT
	sizes   []int
	seed    int64
	workers int
}

// verifyResult is one row of the verify report. An empty check string
// means the check did not run.
type verifyResult struct {
	size       int
	serial     string
	parallel   string
	involution string
	elapsed    time.Duration
}

func newVerifyCmd(r *rootT) *cobra.Command {
	v := &verifyT{root: r}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "check the transpose against a bit-by-bit reference",
		Long: `For every size, transposes a random matrix with the serial and the
parallel implementation, compares both with a naive bit-by-bit transpose,
and checks that transposing twice restores the input. Sizes are checked
concurrently.`,
		Args: cobra.NoArgs,
		RunE: v.run,
	}
	cmd.Flags().IntSliceVar(&v.sizes, "sizes", []int{256, 512, 1024, 2048}, "matrix sides in bits (multiples of 256)")
	cmd.Flags().Int64Var(&v.seed, "seed", 1, "random seed; size i uses seed+i")
	cmd.Flags().IntVarP(&v.workers, "workers", "w", 0, "workers for the parallel transposer (0 = GOMAXPROCS)")
	return cmd
}

func (v *verifyT) run(cmd *cobra.Command, _ []string) error {
	if len(v.sizes) == 0 {
		return errors.New("--sizes is empty")
	}
	for _, n := range v.sizes {
		if err := bitmatrix.CheckWidth(n); err != nil {
			return errors.Wrap(err, "--sizes")
		}
	}

	pool := workerpool.New(v.workers)
	defer pool.Close()
	tr := bitmatrix.NewTransposer(pool)

	results := make([]verifyResult, len(v.sizes))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, n := range v.sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v.root.logger.Debug("verifying", "size", n, "seed", v.seed+int64(i))
			var err error
			results[i], err = verifySize(n, v.seed+int64(i), tr)
			return err
		})
	}
	err := g.Wait()

	tbl := tablewriter.NewWriter(cmd.OutOrStdout())
	tbl.SetHeader([]string{"size", "serial", "parallel", "involution", "elapsed"})
	for _, res := range results {
		if res.size == 0 {
			continue
		}
		tbl.Append([]string{
			fmt.Sprint(res.size), res.serial, res.parallel, res.involution,
			res.elapsed.Round(time.Millisecond).String(),
		})
	}
	tbl.Render()
	return err
}

// verifySize runs the checks for one size and stops at the first failure.
func verifySize(n int, seed int64, tr *bitmatrix.Transposer) (res verifyResult, err error) {
	res.size = n
	start := time.Now()
	defer func() { res.elapsed = time.Since(start) }()

	orig, err := newMatrix(n, fillRandom, seed)
	if err != nil {
		return res, err
	}
	want := naiveTranspose(orig, n)

	check := func(name string, got, want []uint64) (string, error) {
		if r, c, diff := firstDifference(got, want, n); diff {
			return "FAIL", errors.Newf("size %d: %s transpose differs at bit (%d, %d)", n, name, r, c)
		}
		return "ok", nil
	}

	serial := slices.Clone(orig)
	bitmatrix.Transpose(serial, n)
	if res.serial, err = check("serial", serial, want); err != nil {
		return res, err
	}

	parallel := slices.Clone(orig)
	tr.Transpose(parallel, n)
	if res.parallel, err = check("parallel", parallel, want); err != nil {
		return res, err
	}

	bitmatrix.Transpose(serial, n)
	res.involution, err = check("double", serial, orig)
	return res, err
}
