package vm

// FindMatches repeats FindNextMatch until max matches have been produced or
// a search finds none, filling out in order (§4.5, the Match driver).
//
// Zero-length match advancement policy (the open question in the design
// notes is resolved here, not left to the caller): when a match has
// Begin == End, the next search starts at match.End + 1 rather than
// match.End, so a zero-length match can never cause the driver to find the
// same empty span forever. Non-empty matches advance the cursor to
// match.End exactly, as the postcondition requires.
//
// Preconditions (violations panic, per the package's error taxonomy —
// see Program.Validate for the checked alternative upstream of this call):
// program is non-empty, 0 <= start <= len(input), len(out) >= max, max >= 0.
func FindMatches[T uint8 | uint16](program Program, input []T, start int, out []MatchRange, max int) int {
	CheckDriverPreconditions(program, len(input), start, len(out), max)

	it := NewInterpreter[T](program)
	return findMatchesWith(it, input, start, out, max)
}

// findMatchesWith drives a single, already-constructed Interpreter,
// reusing it for every single-match search of one FindMatches call instead
// of re-allocating its Active/Blocked/dedup state for each search.
func findMatchesWith[T uint8 | uint16](it *Interpreter[T], input []T, start int, out []MatchRange, max int) int {
	cursor := start
	count := 0

	for count < max && cursor <= len(input) {
		m, found := it.FindNextMatch(input, cursor)
		if !found {
			break
		}

		out[count] = m
		count++

		if m.Empty() {
			cursor = m.End + 1
		} else {
			cursor = m.End
		}
	}

	return count
}

// CheckDriverPreconditions panics if program, start, out, or max violate
// any of FindMatches' documented preconditions. It is exported so that
// package pikecore's accelerated entry points, which drive an Interpreter
// directly through FindMatchesWithCandidate instead of FindMatches, can
// enforce the exact same checks before starting a search.
func CheckDriverPreconditions(program Program, inputLen, start, outLen, max int) {
	if program.Size() == 0 {
		panic(ErrEmptyProgram)
	}
	if start < 0 || start > inputLen {
		panic(ErrInvalidStart)
	}
	if max < 0 {
		panic("vm: max match count must be >= 0")
	}
	if outLen < max {
		panic(ErrOutputTooSmall)
	}
}

// FindMatchesOneByte finds up to max successive non-overlapping matches of
// program in an 8-bit-code-unit input, starting the search no earlier than
// start, writing results into out and returning how many were written.
//
// This is one of the two public entry points named in the external
// interface: program and input width are fixed at the call site, but both
// share the exact same interpreter logic as FindMatchesTwoByte through the
// generic Interpreter[T] — the width-equivalence property in the testable
// properties list is a consequence of that shared implementation, not
// something the two entry points have to maintain separately.
func FindMatchesOneByte(program Program, input []byte, start int, out []MatchRange, max int) int {
	return FindMatches[byte](program, input, start, out, max)
}

// FindMatchesTwoByte finds up to max successive non-overlapping matches of
// program in a 16-bit-code-unit input (including surrogate-range code
// units, which CONSUME_RANGE treats like any other 16-bit value), starting
// the search no earlier than start, writing results into out and returning
// how many were written.
func FindMatchesTwoByte(program Program, input []uint16, start int, out []MatchRange, max int) int {
	return FindMatches[uint16](program, input, start, out, max)
}
