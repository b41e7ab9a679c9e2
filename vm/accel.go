package vm

// Candidate narrows the position FindNextMatchFrom starts seeding a fresh
// search thread at: given input and a lower bound from, it returns the
// first index >= from at which a match could possibly begin, or
// len(input) if none exists.
//
// A Candidate may only ever move the start forward, never backward, and
// must never skip past a real match's start — see package prefilter's
// Scanner, the only intended implementer of this contract.
type Candidate[T uint8 | uint16] func(input []T, from int) int

// FindNextMatchFrom behaves exactly like FindNextMatch, except the initial
// seed position is first narrowed by candidate (if non-nil).
//
// This is sound by the same argument that justifies skipping any input
// position during an ordinary search: a fresh PC-0 thread seeded at a
// position a Candidate proves cannot start a match would never have reached
// ACCEPT either way, so narrowing the seed forward
// changes no result FindNextMatch would have reported, only how many empty
// iterations it takes to get there.
func (it *Interpreter[T]) FindNextMatchFrom(input []T, start int, candidate Candidate[T]) (MatchRange, bool) {
	if candidate != nil {
		if narrowed := candidate(input, start); narrowed > start {
			start = narrowed
		}
		if start > len(input) {
			start = len(input)
		}
	}
	return it.FindNextMatch(input, start)
}

// FindMatchesWithCandidate drives a single Interpreter exactly like
// findMatchesWith, but narrows every search's seed position with
// candidate. It is the accelerated counterpart package pikecore's wrapper
// functions call when a prefilter Scanner is available; candidate being
// nil makes it behave identically to findMatchesWith.
func FindMatchesWithCandidate[T uint8 | uint16](it *Interpreter[T], input []T, start int, out []MatchRange, max int, candidate Candidate[T]) int {
	cursor := start
	count := 0

	for count < max && cursor <= len(input) {
		m, found := it.FindNextMatchFrom(input, cursor, candidate)
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
