package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/pikecore/vm"
)

// LiteralScanner narrows a byte search to positions where a literal prefix
// required by program occurs, using an Aho-Corasick automaton the same way
// meta.Engine uses one for literal alternations in the teacher codebase —
// except here the automaton is built from a single extracted literal
// rather than from a regexp/syntax alternation's branches.
type LiteralScanner struct {
	automaton *ahocorasick.Automaton
}

// NewLiteralScanner extracts the literal prefix required by every match of
// program, if one exists, and builds a LiteralScanner over it. It returns
// nil if no useful literal could be extracted.
//
// Extraction walks the straight-line CONSUME_RANGE chain reachable from
// PC 0, following JMP but stopping the instant it reaches a FORK: beyond a
// FORK the program can take more than one path, and this scanner only ever
// handles the single required-literal case, leaving branching programs to
// ClassScanner (grounded on nfa.FirstByteSet, which likewise only covers
// the first code unit rather than following every branch to a fixed
// depth). The chain also stops, keeping whatever it has collected so far,
// the moment it hits a CONSUME_RANGE that is not a single byte (instr.Lo !=
// instr.Hi, or a value outside the ASCII/Latin-1 byte domain Aho-Corasick
// operates in) or an ACCEPT.
func NewLiteralScanner(program vm.Program, cfg Config) *LiteralScanner {
	literal := extractLiteralPrefix(program, cfg)
	if len(literal) < cfg.MinLiteralLen {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern(literal)
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}

	return &LiteralScanner{automaton: automaton}
}

// Find implements Scanner.
func (s *LiteralScanner) Find(input []byte, from int) int {
	m := s.automaton.Find(input, from)
	if m == nil {
		return len(input)
	}
	return m.Start
}

// extractLiteralPrefix walks the straight-line chain starting at PC 0,
// tracking visited PCs the same way vm.ExtractFirstSet does: a JMP that
// loops back to an already-visited PC without ever reaching a
// CONSUME_RANGE (e.g. two JMPs pointing at each other) would otherwise spin
// forever, since the loop's only other bound is prefix length and a pure
// JMP cycle never grows prefix.
func extractLiteralPrefix(program vm.Program, cfg Config) []byte {
	var prefix []byte
	pc := 0
	visited := make([]bool, program.Size())

	for len(prefix) < cfg.MaxLiteralPrefixLen {
		if visited[pc] {
			return prefix
		}
		visited[pc] = true

		instr := program.At(pc)
		switch instr.Op {
		case vm.Jmp:
			pc = instr.Target

		case vm.ConsumeRange:
			if instr.Lo != instr.Hi || instr.Lo > 0xFF {
				return prefix
			}
			prefix = append(prefix, byte(instr.Lo))
			pc++

		default: // Fork, Accept
			return prefix
		}
	}
	return prefix
}
