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

	"github.com/cockroachdb/errors"
	"github.com/folded/Stim/hwy"
	"github.com/folded/Stim/hwy/contrib/bitmatrix"
	"github.com/spf13/cobra"
)

type dumpT struct {
	root      *rootT
	size      int
	rows      int
	format    string
	fill      string
	seed      int64
	transpose bool
}

func newDumpCmd(r *rootT) *cobra.Command {
	d := &dumpT{root: r}
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "print the first 256 columns of the leading rows of a matrix",
		Long: `Builds a matrix from --fill, optionally transposes it, and prints the
first 256 bits of each of the first --rows rows. Each row is shown as four
64-bit words, column 0 in the least significant bit of the first word.`,
		Args: cobra.NoArgs,
		RunE: d.run,
	}
	cmd.Flags().IntVarP(&d.size, "size", "n", 256, "matrix side in bits (multiple of 256)")
	cmd.Flags().IntVar(&d.rows, "rows", 16, "number of rows to print")
	cmd.Flags().StringVar(&d.format, "format", "hex", "row rendering: hex or binary")
	cmd.Flags().StringVar(&d.fill, "fill", fillRandom, fmt.Sprintf("matrix contents: one of %v", fillPatterns))
	cmd.Flags().Int64Var(&d.seed, "seed", 1, "random seed for --fill random")
	cmd.Flags().BoolVarP(&d.transpose, "transpose", "t", false, "transpose before printing")
	return cmd
}

func (d *dumpT) run(cmd *cobra.Command, _ []string) error {
	var render func(hwy.Vec256) string
	switch d.format {
	case "hex":
		render = hwy.Hex
	case "binary":
		render = hwy.Binary
	default:
		return errors.WithHint(errors.Newf("unknown format %q", d.format), "use hex or binary")
	}
	m, err := newMatrix(d.size, d.fill, d.seed)
	if err != nil {
		return errors.Wrap(err, "--size/--fill")
	}
	if d.rows < 0 || d.rows > d.size {
		return errors.Newf("--rows must be in [0, %d], got %d", d.size, d.rows)
	}
	if d.transpose {
		bitmatrix.Transpose(m, d.size)
	}

	stride := d.size / 64
	w := cmd.OutOrStdout()
	for r := range d.rows {
		fmt.Fprintf(w, "%4d %s\n", r, render(hwy.Load256(m[r*stride:])))
	}
	return nil
}
