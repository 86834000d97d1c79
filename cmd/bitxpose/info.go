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
	"strconv"

	"github.com/folded/Stim/hwy"
	"github.com/folded/Stim/hwy/contrib/bitmatrix"
	"github.com/klauspost/cpuid/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newInfoCmd(r *rootT) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "report CPU features and the kernels selected at startup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cpu:         %s (%d physical / %d logical cores)\n",
				cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
			fmt.Fprintf(w, "go:          %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "dispatch:    %s (%d-byte registers)\n", hwy.CurrentName(), hwy.CurrentWidth())
			fmt.Fprintf(w, "archsimd:    %v\n", hwy.SimdCompiled())
			fmt.Fprintf(w, "HWY_NO_SIMD: %v\n", hwy.NoSimdEnv())
			fmt.Fprintf(w, "pass kernel: %s\n\n", bitmatrix.KernelName())

			// cpuid reads CPUID itself; x/sys/cpu is what dispatch used.
			// They should agree.
			tbl := tablewriter.NewWriter(w)
			tbl.SetHeader([]string{"feature", "cpuid", "x/sys/cpu"})
			for _, f := range []struct {
				name     string
				cpuid    bool
				dispatch bool
			}{
				{"AVX2", cpuid.CPU.Has(cpuid.AVX2), hwy.HasAVX2()},
				{"AVX-512 F+BW", cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW), hwy.HasAVX512()},
				{"ASIMD", cpuid.CPU.Has(cpuid.ASIMD), hwy.HasASIMD()},
			} {
				tbl.Append([]string{f.name, strconv.FormatBool(f.cpuid), strconv.FormatBool(f.dispatch)})
				if f.cpuid != f.dispatch {
					r.logger.Warn("feature detection disagrees", "feature", f.name,
						"cpuid", f.cpuid, "x/sys/cpu", f.dispatch)
				}
			}
			tbl.Render()
			return nil
		},
	}
}
