package vm

import (
	"errors"
	"fmt"
)

// Sentinel errors. ErrEmptyProgram, ErrInvalidTarget, and ErrInvalidRange
// are returned by Program.Validate; ErrEmptyProgram, ErrInvalidStart, and
// ErrOutputTooSmall are also the panic values of CheckDriverPreconditions.
// None of these are ever constructed on the hot interpretation path: once a
// Program passes Validate, FindNextMatch and FindMatches run to completion
// without returning an error, exactly as the interpreter's error taxonomy
// is empty at runtime.
var (
	// ErrEmptyProgram indicates a Program with no instructions was supplied.
	// A Program must be non-empty.
	ErrEmptyProgram = errors.New("vm: program must contain at least one instruction")

	// ErrInvalidTarget indicates a FORK or JMP instruction whose target PC
	// falls outside [0, program.size()).
	ErrInvalidTarget = errors.New("vm: fork/jmp target out of range")

	// ErrInvalidRange indicates a CONSUME_RANGE instruction with min > max.
	ErrInvalidRange = errors.New("vm: consume_range has min > max")

	// ErrInvalidStart indicates a search start offset outside [0, len(input)].
	ErrInvalidStart = errors.New("vm: start offset out of range")

	// ErrOutputTooSmall indicates the caller's output buffer is smaller than
	// the requested match count.
	ErrOutputTooSmall = errors.New("vm: output buffer smaller than max match count")
)

// ProgramError wraps a Validate failure with the offending PC, in the same
// spirit as nfa.BuildError in the teacher codebase: it names the instruction
// where the precondition was violated so a caller's own validator can report
// a useful diagnostic instead of a bare sentinel.
type ProgramError struct {
	PC  int
	Err error
}

// Error implements the error interface.
func (e *ProgramError) Error() string {
	return fmt.Sprintf("vm: invalid program at pc %d: %v", e.PC, e.Err)
}

// Unwrap returns the underlying sentinel error so errors.Is(err, ErrInvalidTarget)
// and similar checks work against a *ProgramError.
func (e *ProgramError) Unwrap() error {
	return e.Err
}
