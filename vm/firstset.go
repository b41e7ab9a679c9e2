package vm

// CodeUnitSet describes the set of code units that can be the first code
// unit consumed by a match starting at PC 0 of a Program. It is a purely
// static analysis over the instruction graph (FORK/JMP epsilon edges,
// CONSUME_RANGE leaves) — it never looks at input — and is used by the
// prefilter package to narrow which positions the driver bothers to seed a
// fresh search thread at. It never changes what FindNextMatch reports;
// disabling it changes only how quickly a match is found.
//
// This mirrors nfa.FirstByteSet in the teacher codebase, generalized from a
// fixed 256-entry byte table to a small list of 16-bit code-unit ranges,
// since CONSUME_RANGE operates on 16-bit code units rather than bytes.
type CodeUnitSet struct {
	ranges   [][2]uint16
	complete bool
}

// maxFirstSetRanges bounds how many distinct ranges ExtractFirstSet will
// collect before giving up on usefulness — a program whose leading
// alternation fans out into hundreds of disjoint ranges is not worth
// narrowing with a linear range scan.
const maxFirstSetRanges = 64

// Contains reports whether c can be the first code unit of a match.
func (s *CodeUnitSet) Contains(c uint16) bool {
	for _, r := range s.ranges {
		if c >= r[0] && c <= r[1] {
			return true
		}
	}
	return false
}

// IsUseful reports whether this set can actually narrow a search: it must
// be a complete, non-empty, proper subset of all 16-bit code units. A set
// that is empty, incomplete, or covers everything gives the prefilter
// nothing to reject.
func (s *CodeUnitSet) IsUseful() bool {
	if !s.complete || len(s.ranges) == 0 {
		return false
	}
	// Find the lowest code unit no range covers; if none exists below
	// 0x10000, the set covers everything.
	next := uint32(0)
	for progress := true; progress && next <= 0xFFFF; {
		progress = false
		for _, r := range s.ranges {
			if uint32(r[0]) <= next && uint32(r[1]) >= next {
				next = uint32(r[1]) + 1
				progress = true
			}
		}
	}
	return next <= 0xFFFF
}

// Ranges returns the underlying inclusive ranges, for callers (such as the
// prefilter package) that want to build their own scan over them.
func (s *CodeUnitSet) Ranges() [][2]uint16 {
	return s.ranges
}

// ExtractFirstSet walks the epsilon graph reachable from PC 0 of program —
// following FORK (both the continuation and the fork target) and JMP — and
// collects the CONSUME_RANGE ranges reachable without first consuming any
// input, exactly mirroring the epsilon-closure traversal the interpreter
// itself performs in stepThread, but statically and over every branch
// rather than the highest-priority one.
//
// It returns nil if the analysis is not useful: if ACCEPT is reachable via
// pure epsilon transitions (the program can match the empty string starting
// at PC 0, so no code unit can be ruled out), if the graph is deeper than
// maxDepth, or if it fans out into more than maxFirstSetRanges ranges.
func ExtractFirstSet(program Program, maxDepth int) *CodeUnitSet {
	visited := make([]bool, program.Size())
	result := &CodeUnitSet{complete: true}
	if !extractFirstSet(program, 0, visited, 0, maxDepth, result) {
		return nil
	}
	if !result.IsUseful() {
		return nil
	}
	return result
}

func extractFirstSet(program Program, pc int, visited []bool, depth, maxDepth int, result *CodeUnitSet) bool {
	if depth > maxDepth {
		return false
	}
	if visited[pc] {
		// Already accounted for on another path through the same cycle
		// (e.g. the FORK/JMP loop compiled for `a*`) — nothing new to add.
		return true
	}
	visited[pc] = true

	instr := program.At(pc)
	switch instr.Op {
	case ConsumeRange:
		if len(result.ranges) >= maxFirstSetRanges {
			return false
		}
		result.ranges = append(result.ranges, [2]uint16{instr.Lo, instr.Hi})
		return true

	case Fork:
		return extractFirstSet(program, pc+1, visited, depth+1, maxDepth, result) &&
			extractFirstSet(program, instr.Target, visited, depth+1, maxDepth, result)

	case Jmp:
		return extractFirstSet(program, instr.Target, visited, depth+1, maxDepth, result)

	case Accept:
		// The program matches the empty string starting here — every code
		// unit is a valid "first" one, so the set cannot be useful.
		return false
	}
	return false
}
