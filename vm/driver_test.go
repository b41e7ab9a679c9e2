package vm_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/coregx/pikecore/vm"
)

func TestFindMatchesOneByteTwoByteAgree(t *testing.T) {
	program := vm.NewProgram([]vm.Instruction{
		vm.ConsumeRangeInstr('a', 'z'),
		vm.AcceptInstr(),
	})

	var outByte [1]vm.MatchRange
	nByte := vm.FindMatchesOneByte(program, []byte("q"), 0, outByte[:], 1)

	var outWide [1]vm.MatchRange
	nWide := vm.FindMatchesTwoByte(program, []uint16{'q'}, 0, outWide[:], 1)

	assert.Equal(t, nByte, nWide)
	assert.DeepEqual(t, outByte[0], outWide[0])
}

func TestFindMatchesPanicsOnEmptyProgram(t *testing.T) {
	defer func() {
		r := recover()
		assert.Assert(t, r != nil)
	}()
	var out [1]vm.MatchRange
	vm.FindMatchesOneByte(vm.NewProgram(nil), []byte("a"), 0, out[:], 1)
}

func TestFindMatchesPanicsOnOutputTooSmall(t *testing.T) {
	defer func() {
		r := recover()
		assert.Assert(t, r != nil)
	}()
	program := vm.NewProgram([]vm.Instruction{vm.AcceptInstr()})
	var out [0]vm.MatchRange
	vm.FindMatchesOneByte(program, []byte("a"), 0, out[:], 1)
}

func TestFindMatchesPanicsOnInvalidStart(t *testing.T) {
	defer func() {
		r := recover()
		assert.Assert(t, r != nil)
	}()
	program := vm.NewProgram([]vm.Instruction{vm.AcceptInstr()})
	var out [1]vm.MatchRange
	vm.FindMatchesOneByte(program, []byte("a"), 5, out[:], 1)
}
