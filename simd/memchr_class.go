// Package simd provides a cross-platform, table-driven byte scan used by
// package prefilter to accelerate first-code-unit class narrowing.
//
// The teacher's own simd package dispatches between hand-written AVX2
// assembly and a pure Go SWAR fallback depending on cpu.X86.HasAVX2; this
// package keeps that same dispatch variable but, since this repository has
// no assembly kernels of its own, uses it to choose between an 8-byte
// word-parallel loop and a scalar byte-by-byte loop instead.
package simd

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// HasAVX2 reports whether the CPU supports AVX2, gating MemchrInTable's
// choice between its word-parallel and scalar loops.
var HasAVX2 = cpu.X86.HasAVX2

// MemchrInTable finds the first byte in haystack for which table[byte] is
// true, starting the scan at index 0. Returns -1 if no such byte exists.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	if len(haystack) == 0 || table == nil {
		return -1
	}
	if !HasAVX2 || len(haystack) < 8 {
		return memchrInTableScalar(haystack, table)
	}
	return memchrInTableWords(haystack, table)
}

func memchrInTableScalar(haystack []byte, table *[256]bool) int {
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// memchrInTableWords reads haystack 8 bytes at a time so the 8 table
// lookups it drives per iteration pipeline better than a byte-by-byte
// scan; it is not a real SIMD kernel, just a wider Go loop.
func memchrInTableWords(haystack []byte, table *[256]bool) int {
	n := len(haystack)
	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		for b := 0; b < 8; b++ {
			if table[byte(chunk>>(8*b))] {
				return idx + b
			}
		}
		idx += 8
	}
	for ; idx < n; idx++ {
		if table[haystack[idx]] {
			return idx
		}
	}
	return -1
}
