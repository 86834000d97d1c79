// Package hwy provides the 256-bit register type and bit-level primitives
// used by the bit-matrix kernels, with runtime CPU dispatch.
//
// Vec256 is a plain [4]uint64 value. Its operations form a small closed
// set (And, AndNot, Or, Xor, lane shifts, lane add, broadcast) so that
// algorithms built on it read the same whether they end up running as
// portable Go or as archsimd AVX2 kernels selected at init time.
//
// Basic usage:
//
//	import "github.com/folded/Stim/hwy"
//
//	v := hwy.Load256(words)
//	counts := hwy.PopCount16(v)   // per 16-bit lane bit counts
//	fmt.Println(hwy.Hex(v))       // four space-separated 16-digit groups
//
// Set HWY_NO_SIMD=1 to force the portable kernels.
package hwy
