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

// Package bitptr addresses single bits inside packed storage.
//
// A Ptr or Ref is a (byte address, bit index) pair resolved once at
// construction. Neither owns the memory it points into: the caller keeps
// the backing slice alive for as long as the view is used, and passing an
// offset past the end of the storage is a caller bug, not a reported
// error.
//
// Ptr is the plain accessor (Get, Set, Toggle, ToggleIf, Swap). Ref is the
// reference flavour used where a bit stands in for a bool variable: it
// adds assignment from a bool or from another Ref and the compound
// operators ^=, &= and |= as Xor, And and Or.
//
//	words := make([]uint64, 4)
//	p := bitptr.FromWords(words, 70)
//	p.Set(true)          // words[1] == 1<<6
//	r := bitptr.RefFromWords(words, 3)
//	r.AssignRef(bitptr.RefFromWords(words, 70)).Xor(true) // bit 3 ends up false
package bitptr

import "unsafe"

// littleEndian is true when the low byte of a word is stored first.
var littleEndian = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

// Ptr is a handle to one bit of caller-owned memory.
type Ptr struct {
	addr *byte
	bit  uint8
}

// New returns a Ptr to bit offset of the memory starting at base, counting
// bits LSB-first within each byte and bytes in address order.
func New(base unsafe.Pointer, offset uint) Ptr {
	return Ptr{addr: (*byte)(unsafe.Add(base, offset>>3)), bit: uint8(offset & 7)}
}

// FromBytes returns a Ptr to bit offset of buf.
func FromBytes(buf []byte, offset int) Ptr {
	return Ptr{addr: &buf[offset>>3], bit: uint8(offset & 7)}
}

// FromWords returns a Ptr to bit offset%64 of words[offset/64], so that
// the view agrees with shift-and-mask access to the same word on any
// byte order.
func FromWords(words []uint64, offset int) Ptr {
	b := (offset & 63) >> 3
	if !littleEndian {
		b = 7 - b
	}
	return Ptr{
		addr: (*byte)(unsafe.Add(unsafe.Pointer(&words[offset>>6]), b)),
		bit:  uint8(offset & 7),
	}
}

// Get returns the referenced bit.
func (p Ptr) Get() bool {
	return *p.addr>>p.bit&1 != 0
}

// Set stores v into the referenced bit, leaving the rest of the byte alone.
func (p Ptr) Set(v bool) {
	*p.addr = *p.addr&^(1<<p.bit) | b2u8(v)<<p.bit
}

// Toggle flips the referenced bit.
func (p Ptr) Toggle() {
	*p.addr ^= 1 << p.bit
}

// ToggleIf flips the referenced bit when cond is true. It never branches
// on cond and does not need the current value.
func (p Ptr) ToggleIf(cond bool) {
	*p.addr ^= b2u8(cond) << p.bit
}

// Swap exchanges the values of the bits referenced by p and o. The two may
// share a byte or be the same bit; swapping a bit with itself is a no-op.
func (p Ptr) Swap(o Ptr) {
	a, b := p.Get(), o.Get()
	p.Set(b)
	o.Set(a)
}

// Ref returns a reference-flavoured view of the same bit.
func (p Ptr) Ref() Ref {
	return Ref(p)
}

// b2u8 compiles to SETcc rather than a branch.
func b2u8(v bool) uint8 {
	var b uint8
	if v {
		b = 1
	}
	return b
}
