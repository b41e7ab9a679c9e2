package vm

// activeSet is the Active set from the data model: an ordered sequence of
// threads interpreted as a stack, end = highest priority. Threads are
// stepped LIFO, which yields highest-priority-first execution.
//
// It is given inline-sized backing capacity sized at construction time
// (one allocation per interpreter instance) and only spills to a larger
// heap allocation if a program needs more simultaneously live threads than
// fit — bounded by the program size thanks to the dedup table, so that
// spill is rare in practice.
type activeSet struct {
	threads []thread
}

func newActiveSet(capacity int) activeSet {
	return activeSet{threads: make([]thread, 0, capacity)}
}

// push appends t as the new highest-priority thread.
func (a *activeSet) push(t thread) {
	a.threads = append(a.threads, t)
}

// pop removes and returns the highest-priority thread. The caller must
// ensure the set is non-empty.
func (a *activeSet) pop() thread {
	n := len(a.threads) - 1
	t := a.threads[n]
	a.threads = a.threads[:n]
	return t
}

func (a *activeSet) empty() bool {
	return len(a.threads) == 0
}

func (a *activeSet) clear() {
	a.threads = a.threads[:0]
}

// blockedSet is the Blocked set from the data model: an ordered sequence of
// threads parked on a CONSUME_RANGE instruction, ordered start = highest
// priority. A flush traverses it from end to start so that surviving
// threads re-enter the Active set with the Active-set priority convention
// preserved (see the duality documented in the design notes).
type blockedSet struct {
	threads []thread
}

func newBlockedSet(capacity int) blockedSet {
	return blockedSet{threads: make([]thread, 0, capacity)}
}

// append adds t as the new lowest-priority blocked thread.
func (b *blockedSet) append(t thread) {
	b.threads = append(b.threads, t)
}

func (b *blockedSet) empty() bool {
	return len(b.threads) == 0
}

func (b *blockedSet) clear() {
	b.threads = b.threads[:0]
}
