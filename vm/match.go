package vm

// MatchRange is a half-open interval [Begin, End) of input offsets
// delimiting a match, as specified in the data model: Begin <= End.
type MatchRange struct {
	Begin int
	End   int
}

// Len returns the number of code units the match spans.
func (m MatchRange) Len() int {
	return m.End - m.Begin
}

// Empty returns true for a zero-length match.
func (m MatchRange) Empty() bool {
	return m.Begin == m.End
}
