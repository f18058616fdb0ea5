package messageformat

// SourceSpan records where an element came from in the original pattern.
// Offsets are rune indexes, Line and Column are 1-based.
type SourceSpan struct {
	Start  int
	End    int
	Line   int
	Column int
}

// IsZero reports whether the span is uninitialized.
func (s SourceSpan) IsZero() bool {
	return s.Start == 0 && s.End == 0 && s.Line == 0 && s.Column == 0
}

// Len returns the span length in runes.
func (s SourceSpan) Len() int {
	return s.End - s.Start
}
