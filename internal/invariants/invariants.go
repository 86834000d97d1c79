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

// Package invariants gates expensive or precondition-only checks behind
// the "invariants" and "race" build tags. Code checks Enabled, which is a
// constant, so the assertions compile away in normal builds:
//
//	if invariants.Enabled && bitWidth%256 != 0 {
//		panic(errors.AssertionFailedf("bit width %d is not a multiple of 256", bitWidth))
//	}
package invariants
