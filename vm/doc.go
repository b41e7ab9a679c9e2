// Package vm implements a breadth-first, backtracking-free bytecode
// interpreter for regular-expression programs.
//
// The interpreter simulates a nondeterministic finite automaton (NFA) by
// maintaining the set of currently live threads rather than backtracking
// through alternatives. It executes a precompiled Program against an input
// buffer and reports successive non-overlapping matches in time linear in
// the input length, while reproducing the leftmost/highest-priority match a
// conventional backtracking engine would pick.
//
// The package is deliberately narrow: it knows nothing about regex syntax,
// Unicode case folding, capture groups, or lookaround assertions. It consumes
// an already-lowered Program (four opcodes: CONSUME_RANGE, FORK, JMP, ACCEPT)
// and an input buffer of either 8-bit or 16-bit code units, and it reports
// MatchRange values. Everything upstream of the Program — parsing, lowering,
// Unicode handling — is out of scope by design.
package vm
