// Package token defines the token data model produced by the lexer:
// source positions and spans, token kinds and flags, and the tagged
// value a token carries for each kind.
package token

import "fmt"

// Position identifies one byte in one source file. Line and Col are
// 1-based; Offset is a 0-based byte count into the untranslated source.
type Position struct {
	File   string
	Line   int
	Col    int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Span is an ordered pair of positions. End marks the byte after the
// last character of the token.
type Span struct {
	Start Position
	End   Position
}

// Len reports the byte length of the span in the untranslated source.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}
