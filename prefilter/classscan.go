package prefilter

import (
	"github.com/coregx/pikecore/simd"
	"github.com/coregx/pikecore/vm"
)

// ClassScanner narrows a search to positions whose code unit is a member of
// a statically extracted vm.CodeUnitSet (see vm.ExtractFirstSet). It is the
// fallback strategy Build reaches for when no useful literal prefix exists.
type ClassScanner[T uint8 | uint16] struct {
	set *vm.CodeUnitSet

	// table and useTable hold a precomputed byte membership table, built
	// only when T is byte: it lets Find dispatch to simd.MemchrInTable
	// instead of walking set.Ranges() one code unit at a time.
	table    [256]bool
	useTable bool
}

// NewClassScanner builds a ClassScanner over set. set must be non-nil and
// useful (see vm.CodeUnitSet.IsUseful); Build only calls this after checking
// that itself.
func NewClassScanner[T uint8 | uint16](set *vm.CodeUnitSet) *ClassScanner[T] {
	scanner := &ClassScanner[T]{set: set}

	var zero T
	if _, isByte := any(zero).(byte); isByte {
		for c := 0; c < 256; c++ {
			scanner.table[c] = set.Contains(uint16(c))
		}
		scanner.useTable = true
	}

	return scanner
}

// Find implements Scanner.
func (s *ClassScanner[T]) Find(input []T, from int) int {
	if s.useTable {
		if bytes, ok := any(input).([]byte); ok {
			if idx := simd.MemchrInTable(bytes[from:], &s.table); idx >= 0 {
				return from + idx
			}
			return len(input)
		}
	}

	for i := from; i < len(input); i++ {
		if s.set.Contains(uint16(input[i])) {
			return i
		}
	}
	return len(input)
}
