package asm

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/coregx/pikecore/vm"
)

func TestBuilderStraightLine(t *testing.T) {
	b := NewBuilder()
	b.AddConsumeRange('a', 'a')
	b.AddConsumeRange('b', 'b')
	b.AddAccept()

	program, err := b.Build()
	assert.NilError(t, err)
	assert.Equal(t, program.Size(), 3)
	assert.Equal(t, program.At(0).Op, vm.ConsumeRange)
	assert.Equal(t, program.At(2).Op, vm.Accept)
}

func TestBuilderForwardLabel(t *testing.T) {
	// a* : FORK L2; CONSUME 'a'; JMP L0; L2: ACCEPT
	b := NewBuilder()
	loop := b.NewLabel()
	exit := b.NewLabel()

	b.Bind(loop)
	b.AddFork(exit)
	b.AddConsumeRange('a', 'a')
	b.AddJmp(loop)
	b.Bind(exit)
	b.AddAccept()

	program, err := b.Build()
	assert.NilError(t, err)

	forkInstr := program.At(0)
	assert.Equal(t, forkInstr.Op, vm.Fork)
	assert.Equal(t, forkInstr.Target, 3)

	jmpInstr := program.At(2)
	assert.Equal(t, jmpInstr.Op, vm.Jmp)
	assert.Equal(t, jmpInstr.Target, 0)

	assert.Equal(t, program.At(3).Op, vm.Accept)
}

func TestBuilderUnboundLabelFails(t *testing.T) {
	b := NewBuilder()
	dangling := b.NewLabel()
	b.AddFork(dangling)
	b.AddAccept()

	_, err := b.Build()
	assert.ErrorContains(t, err, "never bound")
}

func TestBuilderInvalidConsumeRangeFails(t *testing.T) {
	b := NewBuilder()
	b.AddConsumeRange(5, 2)
	b.AddAccept()

	_, err := b.Build()
	assert.ErrorContains(t, err, "min > max")
}
