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

// Command bitxpose benchmarks, verifies and inspects the in-place bit-matrix
// transpose.
//
// Usage:
//
//	bitxpose info
//	bitxpose bench --size 4096 --iters 200 --workers 0
//	bitxpose verify --sizes 256,512,1024,2048 --seed 7
//	bitxpose dump --size 256 --rows 8 --fill triangle --transpose
//
// Set HWY_NO_SIMD=1 to force the portable kernel.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// rootT holds state shared by every subcommand.
type rootT struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	r := &rootT{logger: slog.Default()}
	cmd := &cobra.Command{
		Use:           "bitxpose [command] (flags)",
		Short:         "bit-matrix transpose benchmarking/verification tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if r.verbose {
				level = slog.LevelDebug
			}
			r.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	cmd.PersistentFlags().BoolVarP(&r.verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(
		newInfoCmd(r),
		newBenchCmd(r),
		newVerifyCmd(r),
		newDumpCmd(r),
	)
	return cmd
}

func main() {
	log.SetFlags(0)
	cobra.EnableCommandSorting = false

	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err followed by any hints attached to it.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}
}
