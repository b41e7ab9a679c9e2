package simd

import (
	"bytes"
	"testing"
)

func vowelTable() *[256]bool {
	var table [256]bool
	for _, c := range []byte("aeiouAEIOU") {
		table[c] = true
	}
	return &table
}

func TestMemchrInTable(t *testing.T) {
	vowels := vowelTable()

	tests := []struct {
		name     string
		haystack string
		want     int
	}{
		{"empty", "", -1},
		{"first is vowel", "apple", 0},
		{"vowel in middle", "xyz_a_xyz", 4},
		{"no vowels", "rhythm", -1},
		{"upper vowel", "XYZ_A", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MemchrInTable([]byte(tt.haystack), vowels)
			if got != tt.want {
				t.Errorf("MemchrInTable(%q) = %d, want %d", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestMemchrInTable_NilTable(t *testing.T) {
	got := MemchrInTable([]byte("abc"), nil)
	if got != -1 {
		t.Errorf("MemchrInTable with nil table = %d, want -1", got)
	}
}

func TestMemchrInTable_LargeInput(t *testing.T) {
	// Exercise both the word-parallel (>= 8 bytes) and scalar tail paths.
	vowels := vowelTable()

	tests := []struct {
		name   string
		prefix string // no vowels
		match  string // vowel(s)
		want   int
	}{
		{"match at position 0", "", "a", 0},
		{"match at position 8", "xxxxxxxx", "e", 8},
		{"match at position 63", string(bytes.Repeat([]byte{'x'}, 63)), "i", 63},
		{"match at position 64", string(bytes.Repeat([]byte{'x'}, 64)), "o", 64},
		{"no vowels in 1000 bytes", string(bytes.Repeat([]byte{'x'}, 1000)), "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			haystack := []byte(tt.prefix + tt.match)
			got := MemchrInTable(haystack, vowels)
			if got != tt.want {
				t.Errorf("MemchrInTable() = %d, want %d (len=%d)", got, tt.want, len(haystack))
			}
		})
	}
}

func TestMemchrInTable_ScalarAndWordsAgree(t *testing.T) {
	vowels := vowelTable()
	haystack := []byte("the quick brown fox jumps over the lazy dog")

	wantScalar := memchrInTableScalar(haystack, vowels)
	wantWords := memchrInTableWords(haystack, vowels)

	if wantScalar != wantWords {
		t.Errorf("memchrInTableScalar = %d, memchrInTableWords = %d, want equal", wantScalar, wantWords)
	}
}

func BenchmarkMemchrInTable(b *testing.B) {
	vowels := vowelTable()
	sizes := []int{32, 64, 256, 1024, 4096}

	for _, size := range sizes {
		haystack := bytes.Repeat([]byte{'x'}, size-1)
		haystack = append(haystack, 'a')

		b.Run(formatSize(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				MemchrInTable(haystack, vowels)
			}
		})
	}
}

func formatSize(n int) string {
	if n >= 1024 {
		return string(rune('0'+n/1024)) + "KB"
	}
	return string(rune('0'+n/100)) + "00B"
}
