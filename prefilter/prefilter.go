// Package prefilter provides optional, purely additive acceleration for
// package vm's interpreter: given a Program, it builds a Scanner that
// narrows which input positions the interpreter bothers seeding a fresh
// search thread at.
//
// A Scanner never decides whether a match exists — it only ever proves that
// no match can start before some position, by static analysis of the
// Program's leading instructions (see vm.ExtractFirstSet and
// NewLiteralScanner). Disabling the prefilter (passing a nil Scanner,
// or Config.EnablePrefilter = false upstream) can only make a search slower,
// never change its result, in the same spirit as the teacher's own
// prefilter package: "This prefilter is NOT complete — finding a literal is
// only a candidate position."
package prefilter

import (
	"github.com/coregx/pikecore/vm"
)

// Scanner locates candidate start positions for a search over an input of
// code-unit width T.
type Scanner[T uint8 | uint16] interface {
	// Find returns the first index >= from at which a match could possibly
	// begin, or len(input) if no such index exists. It never returns a
	// value that would cause a real match to be skipped.
	Find(input []T, from int) int
}

// Build selects the best available Scanner for program, or returns nil if
// none of the static analyses below yield anything useful. cfg controls the
// depth/size budgets the analyses are allowed to spend.
//
// Selection order mirrors prefilter.Builder.Build in the teacher codebase
// (prefer the most specific, highest-throughput strategy; fall back to a
// coarser one; fall back to nothing):
//  1. LiteralScanner (Aho-Corasick over extracted literal prefixes) — byte
//     input only, since Aho-Corasick here operates over []byte.
//  2. ClassScanner (SWAR-scanned first-code-unit class) — both widths.
//  3. nil — no useful static narrowing is available for this program.
func Build[T uint8 | uint16](program vm.Program, cfg Config) Scanner[T] {
	if !cfg.EnablePrefilter {
		return nil
	}

	if scanner := buildLiteralScanner[T](program, cfg); scanner != nil {
		return scanner
	}

	if firstSet := vm.ExtractFirstSet(program, cfg.MaxFirstSetDepth); firstSet != nil {
		return NewClassScanner[T](firstSet)
	}

	return nil
}

// buildLiteralScanner is a tiny shim so Build's generic signature can return
// a LiteralScanner (always Scanner[byte]) only when T is byte; for T ==
// uint16 it always returns nil, falling through to the class scanner.
func buildLiteralScanner[T uint8 | uint16](program vm.Program, cfg Config) Scanner[T] {
	var zero T
	if _, isByte := any(zero).(byte); !isByte {
		return nil
	}
	lit := NewLiteralScanner(program, cfg)
	if lit == nil {
		return nil
	}
	scanner, _ := any(lit).(Scanner[T])
	return scanner
}
