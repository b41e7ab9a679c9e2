// Package pikecore implements a breadth-first, backtracking-free bytecode
// interpreter for Thompson-style NFA regex programs, following the Pike VM
// approach: every input code unit advances a bounded set of parallel
// threads at once, so a search runs in O(program size x input length) time
// regardless of how the program branches.
//
// pikecore does not parse regex syntax and does not compile patterns: it
// consumes an already-assembled Program (see package asm for a builder) of
// four opcodes — CONSUME_RANGE, FORK, JMP, ACCEPT — and reports the
// leftmost, highest-priority match, exactly the semantics a backtracking
// engine that tries FORK's first branch before its second would report,
// without ever actually backtracking.
//
// Basic usage:
//
//	b := asm.NewBuilder()
//	// ... assemble a program ...
//	prog, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var matches [8]pikecore.MatchRange
//	n := pikecore.FindMatchesOneByte(prog, []byte("hello 123 world"), 0, matches[:], len(matches))
//
// Advanced usage:
//
//	cfg := pikecore.DefaultConfig()
//	cfg.MinLiteralLen = 4
//	n := pikecore.FindMatchesOneByteWithConfig(prog, input, 0, matches[:], len(matches), cfg)
//
// Non-goals: no backtracking fallback, no JIT, no capture groups, no
// overlapping multi-match, no streaming input, no surface regex syntax.
package pikecore

import (
	"github.com/coregx/pikecore/prefilter"
	"github.com/coregx/pikecore/vm"
)

// Program, Instruction, Opcode, and MatchRange are re-exported from package
// vm so that callers of this package's entry points never need to import
// vm directly, in the same spirit as Regexp being an alias for Regex in the
// teacher's root package.
type (
	Program     = vm.Program
	Instruction = vm.Instruction
	Opcode      = vm.Opcode
	MatchRange  = vm.MatchRange
)

// Opcode constants, re-exported from package vm.
const (
	ConsumeRange = vm.ConsumeRange
	Fork         = vm.Fork
	Jmp          = vm.Jmp
	Accept       = vm.Accept
)

// Instruction constructors, re-exported from package vm.
var (
	ConsumeRangeInstr = vm.ConsumeRangeInstr
	ForkInstr         = vm.ForkInstr
	JmpInstr          = vm.JmpInstr
	AcceptInstr       = vm.AcceptInstr
	NewProgram        = vm.NewProgram
)

// Config controls the optional prefilter layer that sits in front of the
// interpreter (see package prefilter). Every field affects only how
// quickly a match is found; the interpreter's output is invariant under
// every Config value, including the zero Config.
type Config = prefilter.Config

// DefaultConfig returns the Config FindMatchesOneByte/FindMatchesTwoByte
// use: the prefilter enabled with conservative thresholds.
func DefaultConfig() Config {
	return prefilter.DefaultConfig()
}

// FindMatchesOneByte finds up to max successive non-overlapping matches of
// program in an 8-bit-code-unit input, starting no earlier than start,
// writing results into out and returning how many were written.
//
// This entry point always runs with DefaultConfig's prefilter settings; use
// FindMatchesOneByteWithConfig to control or disable the prefilter layer.
func FindMatchesOneByte(program Program, input []byte, start int, out []MatchRange, max int) int {
	return FindMatchesOneByteWithConfig(program, input, start, out, max, DefaultConfig())
}

// FindMatchesOneByteWithConfig behaves like FindMatchesOneByte, but builds
// the optional prefilter Scanner from cfg instead of DefaultConfig.
// Setting cfg.EnablePrefilter = false (or passing the zero Config) makes
// this identical to vm.FindMatchesOneByte.
func FindMatchesOneByteWithConfig(program Program, input []byte, start int, out []MatchRange, max int, cfg Config) int {
	vm.CheckDriverPreconditions(program, len(input), start, len(out), max)

	it := vm.NewInterpreter[byte](program)
	scanner := prefilter.Build[byte](program, cfg)
	return vm.FindMatchesWithCandidate(it, input, start, out, max, candidateOf(scanner))
}

// FindMatchesTwoByte finds up to max successive non-overlapping matches of
// program in a 16-bit-code-unit input, starting no earlier than start,
// writing results into out and returning how many were written.
func FindMatchesTwoByte(program Program, input []uint16, start int, out []MatchRange, max int) int {
	return FindMatchesTwoByteWithConfig(program, input, start, out, max, DefaultConfig())
}

// FindMatchesTwoByteWithConfig behaves like FindMatchesTwoByte, but builds
// the optional prefilter Scanner from cfg instead of DefaultConfig.
func FindMatchesTwoByteWithConfig(program Program, input []uint16, start int, out []MatchRange, max int, cfg Config) int {
	vm.CheckDriverPreconditions(program, len(input), start, len(out), max)

	it := vm.NewInterpreter[uint16](program)
	scanner := prefilter.Build[uint16](program, cfg)
	return vm.FindMatchesWithCandidate(it, input, start, out, max, candidateOf(scanner))
}

// IsMatch reports whether program matches anywhere in an 8-bit input.
func IsMatch(program Program, input []byte) bool {
	return vm.NewInterpreter[byte](program).IsMatch(input)
}

// IsMatchTwoByte reports whether program matches anywhere in a 16-bit
// input.
func IsMatchTwoByte(program Program, input []uint16) bool {
	return vm.NewInterpreter[uint16](program).IsMatch(input)
}

// candidateOf adapts a possibly-nil prefilter.Scanner to vm.Candidate: a
// nil Scanner (the common case when Build found nothing useful) becomes a
// nil Candidate, which vm.FindNextMatchFrom treats as "no narrowing".
func candidateOf[T uint8 | uint16](scanner prefilter.Scanner[T]) vm.Candidate[T] {
	if scanner == nil {
		return nil
	}
	return scanner.Find
}
