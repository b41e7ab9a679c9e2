package vm

import "github.com/coregx/pikecore/internal/conv"

// Opcode identifies the kind of a single bytecode instruction.
//
// The instruction set is intentionally tiny: it is the minimal vocabulary
// needed to express a Thompson-style NFA without committing to any surface
// regex syntax. A compiler that lowers a parsed pattern into a Program is
// out of scope for this package.
type Opcode uint8

const (
	// ConsumeRange blocks the owning thread until the next input code unit
	// arrives; the thread survives iff that code unit falls within the
	// instruction's inclusive [Lo, Hi] range.
	ConsumeRange Opcode = iota

	// Fork spawns a lower-priority sibling thread at Target; the forking
	// thread itself continues at PC+1. See the package-level discussion of
	// fork priority in Interpreter.stepThread.
	Fork

	// Jmp sets PC to Target without consuming input.
	Jmp

	// Accept declares that the owning thread has found a match ending at
	// the current input cursor.
	Accept
)

// String returns a human-readable opcode name, mirroring the StateKind
// stringer convention used throughout the teacher's NFA package.
func (op Opcode) String() string {
	switch op {
	case ConsumeRange:
		return "CONSUME_RANGE"
	case Fork:
		return "FORK"
	case Jmp:
		return "JMP"
	case Accept:
		return "ACCEPT"
	default:
		return "UNKNOWN"
	}
}

// Instruction is a single fixed-size bytecode record. Its fields are a
// tagged union: Lo/Hi are meaningful only for ConsumeRange, Target only for
// Fork/Jmp, and Accept uses neither.
//
// Lo and Hi are 16-bit code units (spec: "inclusive [min, max] over 16-bit
// code units") so a single instruction set serves both the one-byte and
// two-byte entry points — an 8-bit input code unit is simply widened to
// uint16 before the range comparison.
type Instruction struct {
	Op     Opcode
	Lo, Hi uint16 // operand for ConsumeRange
	Target int    // operand for Fork/Jmp
}

// ConsumeRangeInstr builds a CONSUME_RANGE instruction over the inclusive
// code-unit range [lo, hi].
func ConsumeRangeInstr(lo, hi uint16) Instruction {
	return Instruction{Op: ConsumeRange, Lo: lo, Hi: hi}
}

// ForkInstr builds a FORK instruction targeting pc target.
func ForkInstr(target int) Instruction {
	return Instruction{Op: Fork, Target: target}
}

// JmpInstr builds a JMP instruction targeting pc target.
func JmpInstr(target int) Instruction {
	return Instruction{Op: Jmp, Target: target}
}

// AcceptInstr builds an ACCEPT instruction.
func AcceptInstr() Instruction {
	return Instruction{Op: Accept}
}

// Program is an immutable, non-empty ordered sequence of instructions,
// indexed by program counter (PC). It is the only thing the interpreter in
// this package consumes; how a Program was produced (by hand, by a test
// builder, or by an external compiler) is of no concern here.
type Program struct {
	instrs []Instruction
}

// NewProgram wraps a slice of instructions as a Program. The slice is
// copied so the caller's backing array cannot alias interpreter state.
func NewProgram(instrs []Instruction) Program {
	cp := make([]Instruction, len(instrs))
	copy(cp, instrs)
	return Program{instrs: cp}
}

// Size returns the number of instructions in the program.
func (p Program) Size() int {
	return len(p.instrs)
}

// At returns the instruction at pc. The caller must ensure
// 0 <= pc < p.Size(); this is a precondition, not a checked error, on the
// interpreter's hot path (see package vm's error taxonomy in errors.go).
func (p Program) At(pc int) Instruction {
	return p.instrs[pc]
}

// Validate checks every operand invariant from the data model: the program
// must be non-empty, every FORK/JMP target must be in range, and every
// CONSUME_RANGE must have Lo <= Hi. This is the "caller's validator"
// upstream of the hot interpretation path — FindNextMatch and FindMatches
// never construct an error themselves and assume Validate has already run.
func (p Program) Validate() error {
	if p.Size() == 0 {
		return ErrEmptyProgram
	}
	size := p.Size()
	for pc, instr := range p.instrs {
		switch instr.Op {
		case ConsumeRange:
			if instr.Lo > instr.Hi {
				return &ProgramError{PC: pc, Err: ErrInvalidRange}
			}
		case Fork, Jmp:
			if instr.Target < 0 || instr.Target >= size {
				return &ProgramError{PC: pc, Err: ErrInvalidTarget}
			}
		case Accept:
			// no operand to validate
		}
	}
	return nil
}

// widenCodeUnit promotes an 8-bit code unit to the 16-bit domain
// CONSUME_RANGE operands are expressed in, so a single Program serves both
// FindMatchesOneByte and FindMatchesTwoByte.
func widenCodeUnit[T uint8 | uint16](c T) uint16 {
	return conv.WidenToUint16(c)
}
