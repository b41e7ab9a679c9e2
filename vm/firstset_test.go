package vm_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/coregx/pikecore/vm"
)

func TestExtractFirstSetAlternation(t *testing.T) {
	// (a|b): FORK's continuation blocks on 'a', its target blocks on 'b'.
	program := vm.NewProgram([]vm.Instruction{
		vm.ForkInstr(2),
		vm.ConsumeRangeInstr('a', 'a'),
		vm.ConsumeRangeInstr('b', 'b'),
	})

	set := vm.ExtractFirstSet(program, 16)
	assert.Assert(t, set != nil)
	assert.Assert(t, set.Contains('a'))
	assert.Assert(t, set.Contains('b'))
	assert.Assert(t, !set.Contains('c'))
}

func TestExtractFirstSetEmptyMatchIsNotUseful(t *testing.T) {
	// a*: can match empty, so ACCEPT is epsilon-reachable from pc 0.
	program := vm.NewProgram([]vm.Instruction{
		vm.ForkInstr(3),
		vm.ConsumeRangeInstr('a', 'a'),
		vm.JmpInstr(0),
		vm.AcceptInstr(),
	})

	set := vm.ExtractFirstSet(program, 16)
	assert.Assert(t, set == nil)
}

func TestExtractFirstSetFollowsJmp(t *testing.T) {
	program := vm.NewProgram([]vm.Instruction{
		vm.JmpInstr(2),
		vm.AcceptInstr(),
		vm.ConsumeRangeInstr('x', 'x'),
		vm.AcceptInstr(),
	})

	set := vm.ExtractFirstSet(program, 16)
	assert.Assert(t, set != nil)
	assert.Assert(t, set.Contains('x'))
	assert.Assert(t, !set.Contains('y'))
}
