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

package bitptr

import "unsafe"

// Ref is a bit used like a bool variable. Writes through a Ref copy
// values, never addresses: r.AssignRef(o) makes r's bit equal o's bit and
// both keep pointing where they did.
//
// The mutating methods return r so updates can be chained.
type Ref Ptr

// NewRef is the Ref counterpart of New.
func NewRef(base unsafe.Pointer, offset uint) Ref {
	return Ref(New(base, offset))
}

// RefFromBytes is the Ref counterpart of FromBytes.
func RefFromBytes(buf []byte, offset int) Ref {
	return Ref(FromBytes(buf, offset))
}

// RefFromWords is the Ref counterpart of FromWords.
func RefFromWords(words []uint64, offset int) Ref {
	return Ref(FromWords(words, offset))
}

// Bool reads the referenced bit.
func (r Ref) Bool() bool {
	return Ptr(r).Get()
}

// Assign stores v.
func (r Ref) Assign(v bool) Ref {
	Ptr(r).Set(v)
	return r
}

// AssignRef stores the current value of o.
func (r Ref) AssignRef(o Ref) Ref {
	Ptr(r).Set(o.Bool())
	return r
}

// Xor stores r ^ v.
func (r Ref) Xor(v bool) Ref {
	Ptr(r).ToggleIf(v)
	return r
}

// And stores r && v.
func (r Ref) And(v bool) Ref {
	*r.addr &^= b2u8(!v) << r.bit
	return r
}

// Or stores r || v.
func (r Ref) Or(v bool) Ref {
	*r.addr |= b2u8(v) << r.bit
	return r
}

// SwapWith exchanges the values of r and o.
func (r Ref) SwapWith(o Ref) {
	Ptr(r).Swap(Ptr(o))
}

// Ptr returns the plain accessor for the same bit.
func (r Ref) Ptr() Ptr {
	return Ptr(r)
}
