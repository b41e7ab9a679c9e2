package vm

// dedupTable is the PC-dedup vector `seen[pc]` from the data model: one
// signed integer per PC recording the input index at which a thread was
// last admitted at that PC. It is a single contiguous allocation sized to
// the program, reused across matches within one interpreter instance and
// reset by fill (not by reallocation) at the start of every single-match
// search — the dense choice documented as optimal for small-to-moderate
// programs, traded here against the alternative (a generation-counter
// scheme) for simpler invariants, per the design notes.
type dedupTable struct {
	seen []int
}

// newDedupTable allocates a dedup table sized to size PCs, initialized to
// the "never admitted" sentinel.
func newDedupTable(size int) dedupTable {
	d := dedupTable{seen: make([]int, size)}
	d.reset()
	return d
}

// reset fills every entry back to -1 ("never admitted"), as required at the
// start of each single-match search.
func (d *dedupTable) reset() {
	for i := range d.seen {
		d.seen[i] = -1
	}
}

// admit reports whether a thread arriving at pc at input index i is
// redundant (seen[pc] == i already) and, if not, marks pc as admitted at i.
// admit is the single point where seen[pc] is written, matching the
// invariant that it is only ever written when admitting a thread.
func (d *dedupTable) admit(pc, i int) (redundant bool) {
	if d.seen[pc] == i {
		return true
	}
	d.seen[pc] = i
	return false
}
