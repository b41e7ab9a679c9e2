// Package asm is a low-level Program builder: it takes already-decided
// opcodes and targets — never surface regex syntax — and assembles a
// vm.Program, with label/patch support for forward references the same way
// loops and alternations need them in the teacher's nfa.Builder.
//
// A compiler that lowers parsed regex syntax into opcodes and targets is
// out of scope for this package; asm only helps a caller (tests, examples,
// or a future compiler) assemble a Program by hand without duplicating raw
// vm.Instruction{} literals everywhere.
package asm

import (
	"fmt"

	"github.com/coregx/pikecore/vm"
)

// Label is a placeholder PC created before the instruction it names has
// been emitted. Resolve it with Builder.Bind once the target instruction's
// real PC is known, then reference it from AddFork/AddJmp.
type Label int

// Builder accumulates instructions in program order and patches forward
// references recorded as Labels once they are bound.
type Builder struct {
	instrs []vm.Instruction
	labels []int // labels[label] == -1 until Bind; instruction PCs awaiting that label are recorded in pending
	pending map[int][]int // label -> list of instruction indices whose Target field needs patching
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{pending: make(map[int][]int)}
}

// NewLabel allocates a new, as-yet-unbound Label.
func (b *Builder) NewLabel() Label {
	b.labels = append(b.labels, -1)
	return Label(len(b.labels) - 1)
}

// Bind fixes label to the next instruction's PC (the one AddConsumeRange,
// AddFork, AddJmp, or AddAccept is about to emit) and patches every
// instruction that referenced it before it was bound.
func (b *Builder) Bind(label Label) {
	pc := len(b.instrs)
	b.labels[label] = pc
	for _, idx := range b.pending[int(label)] {
		b.instrs[idx].Target = pc
	}
	delete(b.pending, int(label))
}

// AddConsumeRange emits a CONSUME_RANGE instruction over [lo, hi] and
// returns its PC.
func (b *Builder) AddConsumeRange(lo, hi uint16) int {
	return b.emit(vm.ConsumeRangeInstr(lo, hi))
}

// AddFork emits a FORK instruction targeting label (which may be bound
// already, or bound later) and returns its PC. The continuation is
// implicitly PC+1, per the instruction set's fork priority discipline.
func (b *Builder) AddFork(target Label) int {
	pc := b.emit(vm.ForkInstr(b.resolve(target)))
	if b.labels[target] < 0 {
		b.pending[int(target)] = append(b.pending[int(target)], pc)
	}
	return pc
}

// AddJmp emits a JMP instruction targeting label and returns its PC.
func (b *Builder) AddJmp(target Label) int {
	pc := b.emit(vm.JmpInstr(b.resolve(target)))
	if b.labels[target] < 0 {
		b.pending[int(target)] = append(b.pending[int(target)], pc)
	}
	return pc
}

// AddAccept emits an ACCEPT instruction and returns its PC.
func (b *Builder) AddAccept() int {
	return b.emit(vm.AcceptInstr())
}

func (b *Builder) emit(instr vm.Instruction) int {
	b.instrs = append(b.instrs, instr)
	return len(b.instrs) - 1
}

// resolve returns label's bound PC, or 0 as a placeholder (patched later by
// Bind) if it is not yet bound.
func (b *Builder) resolve(label Label) int {
	if int(label) >= len(b.labels) {
		return 0
	}
	if pc := b.labels[label]; pc >= 0 {
		return pc
	}
	return 0
}

// Build finalizes the accumulated instructions into a vm.Program and
// validates it. It returns an error — rather than panicking, unlike the
// interpreter's own hot-path preconditions — because a builder-assembled
// program is exactly the situation where a caller is actively constructing
// input and wants a diagnosable failure, not a crash.
func (b *Builder) Build() (vm.Program, error) {
	for label, idxs := range b.pending {
		if len(idxs) > 0 {
			return vm.Program{}, fmt.Errorf("asm: label %d referenced but never bound", label)
		}
	}
	program := vm.NewProgram(b.instrs)
	if err := program.Validate(); err != nil {
		return vm.Program{}, err
	}
	return program, nil
}
