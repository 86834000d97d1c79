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
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// TestDataDriven runs the rendering and popcount cases in testdata/.
//
// Each case takes a register as four hex words (sub-word 0 first):
//
//	hex | binary | bits
//	popcount [stage=<2|4|8|16>]
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			v, err := parseVec256(td.Input)
			if err != nil {
				td.Fatalf(t, "%v", err)
			}
			switch td.Cmd {
			case "hex":
				return Hex(v) + "\n"
			case "binary":
				return Binary(v) + "\n"
			case "bits":
				var sb strings.Builder
				for i, b := range ToBits(v) {
					if b {
						fmt.Fprintf(&sb, "%d\n", i)
					}
				}
				return sb.String()
			case "popcount":
				stage := 16
				if td.HasArg("stage") {
					td.ScanArgs(t, "stage", &stage)
				}
				var got Vec256
				switch stage {
				case 2:
					got = PopCount2(v)
				case 4:
					got = PopCount4(v)
				case 8:
					got = PopCount8(v)
				case 16:
					got = PopCount16(v)
				default:
					td.Fatalf(t, "unknown stage %d", stage)
				}
				if stage != 16 {
					return Hex(got) + "\n"
				}
				counts := make([]string, Lanes16)
				for i := range counts {
					counts[i] = strconv.Itoa(int(got.Lane16(i)))
				}
				return strings.Join(counts, " ") + "\n"
			default:
				td.Fatalf(t, "unknown command %q", td.Cmd)
				return ""
			}
		})
	})
}

func parseVec256(input string) (Vec256, error) {
	var v Vec256
	fields := strings.Fields(input)
	if len(fields) != 4 {
		return v, errors.Newf("expected 4 hex words, got %d", len(fields))
	}
	for i, f := range fields {
		w, err := strconv.ParseUint(strings.TrimPrefix(f, "0x"), 16, 64)
		if err != nil {
			return v, errors.Wrapf(err, "word %d", i)
		}
		v[i] = w
	}
	return v, nil
}

func TestParseVec256(t *testing.T) {
	v, err := parseVec256("1 0x2 3 FFFFFFFFFFFFFFFF")
	require.NoError(t, err)
	require.Equal(t, Vec256{1, 2, 3, ^uint64(0)}, v)

	_, err = parseVec256("1 2 3")
	require.ErrorContains(t, err, "expected 4 hex words, got 3")

	_, err = parseVec256("1 2 zz 4")
	require.ErrorContains(t, err, "word 2")
	require.ErrorIs(t, err, strconv.ErrSyntax)
}
