package vm

// Interpreter executes a Program against an input buffer whose code units
// have width T (either uint8 or uint16 — the package is instantiated once
// per width, as the data model requires). It owns the Active set, Blocked
// set, PC-dedup table, and best-match slot exclusively; the Program and
// input buffers are borrowed read-only for the lifetime of the call.
//
// An Interpreter is cheap to construct (three slices, each sized to the
// program) and is not safe to share across concurrent searches — each
// logical search should construct its own instance, or reuse one
// sequentially via FindNextMatch, which resets all mutable state at the
// start of every call.
type Interpreter[T uint8 | uint16] struct {
	program Program
	active  activeSet
	blocked blockedSet
	dedup   dedupTable

	best    MatchRange
	hasBest bool
}

// NewInterpreter constructs an Interpreter for program. program should have
// already passed Validate; NewInterpreter does not re-validate it, matching
// the package's error taxonomy (precondition checking happens upstream of
// the hot path).
func NewInterpreter[T uint8 | uint16](program Program) *Interpreter[T] {
	size := program.Size()
	return &Interpreter[T]{
		program: program,
		active:  newActiveSet(size),
		blocked: newBlockedSet(size),
		dedup:   newDedupTable(size),
	}
}

// stepThread is the epsilon closure for one thread (§4.1 of the component
// design): it advances t through epsilon instructions until it blocks on a
// CONSUME_RANGE, accepts, or is pruned as redundant by the dedup table.
//
// Fork priority discipline: when FORK is encountered, the continuation
// (PC+1) is stepped in place — by looping with t mutated and `continue` —
// while the forked sibling is merely pushed onto Active to be picked up
// later. Because Active is a LIFO stack, the sibling is only popped once
// the continuation has blocked or accepted and every thread the
// continuation spawned transitively (pushed above the sibling) has been
// drained; threads that were already on Active below it run after it. That
// ordering is
// exactly what reproduces a backtracking engine's left-biased alternation
// without ever backtracking.
func (it *Interpreter[T]) stepThread(t thread, i int) {
	for {
		if it.dedup.admit(t.pc, i) {
			return
		}

		instr := it.program.At(t.pc)
		switch instr.Op {
		case ConsumeRange:
			it.blocked.append(t)
			return

		case Fork:
			it.active.push(thread{pc: instr.Target, matchBegin: t.matchBegin})
			t.pc++
			continue

		case Jmp:
			t.pc = instr.Target
			continue

		case Accept:
			it.best = MatchRange{Begin: t.matchBegin, End: i}
			it.hasBest = true
			it.active.clear()
			return
		}
	}
}

// runActive drains the Active set (§4.2): it repeatedly pops the
// highest-priority thread and steps it until Active is empty. Threads
// pushed during stepping (FORK siblings) are drained transitively in LIFO
// order. On return, Active is empty and Blocked holds every thread that
// blocked on a CONSUME_RANGE this pass, ordered highest to lowest priority.
func (it *Interpreter[T]) runActive(i int) {
	for !it.active.empty() {
		t := it.active.pop()
		it.stepThread(t, i)
	}
}

// flushBlocked drains the Blocked set against the next input code unit c
// (§4.3). It walks Blocked from end to start — reverse priority order — so
// that survivors, pushed onto Active in that order, land with the
// Active-set convention preserved (top of stack = highest priority).
func (it *Interpreter[T]) flushBlocked(c uint16) {
	threads := it.blocked.threads
	for idx := len(threads) - 1; idx >= 0; idx-- {
		t := threads[idx]
		instr := it.program.At(t.pc)
		if c >= instr.Lo && c <= instr.Hi {
			it.active.push(thread{pc: t.pc + 1, matchBegin: t.matchBegin})
		}
	}
	it.blocked.clear()
}

// FindNextMatch runs a single-match search (§4.4) starting at input offset
// start and returns the best match found, or (_, false) if none exists.
//
// The dedup table is reset at the start of every call, so calling
// FindNextMatch repeatedly on the same Interpreter (as FindMatches does)
// produces results identical to constructing a fresh Interpreter for each
// call — the reset-idempotence property from the testable properties list.
func (it *Interpreter[T]) FindNextMatch(input []T, start int) (MatchRange, bool) {
	it.dedup.reset()
	it.active.clear()
	it.blocked.clear()
	it.hasBest = false

	i := start
	it.active.push(thread{pc: 0, matchBegin: i})
	it.runActive(i)

	for i < len(input) && !(it.hasBest && it.blocked.empty()) {
		c := widenCodeUnit(input[i])
		i++

		// Implicit .*? prefix: while no match has been committed, seed a
		// fresh lowest-priority search thread at the current offset. Active
		// is empty at this point (runActive's postcondition), so a plain
		// append places it under anything flushBlocked is about to add.
		if !it.hasBest {
			it.active.push(thread{pc: 0, matchBegin: i})
		}

		it.flushBlocked(c)
		it.runActive(i)
	}

	result, found := it.best, it.hasBest
	it.active.clear()
	it.blocked.clear()
	it.hasBest = false
	return result, found
}

// IsMatch reports whether the program matches anywhere in input. It is a
// thin wrapper over FindNextMatch — the same dedup/priority machinery
// decides the answer, so there is no separate boolean-only code path to
// keep in sync with the interpreter's semantics.
func (it *Interpreter[T]) IsMatch(input []T) bool {
	_, found := it.FindNextMatch(input, 0)
	return found
}
