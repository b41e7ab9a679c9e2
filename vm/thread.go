package vm

// thread is a lightweight execution context: a program counter and the
// input offset at which the thread started matching. Threads are plain
// values — they carry no heap state — so copying one (as FORK does) is
// just a struct copy.
type thread struct {
	pc         int
	matchBegin int
}
