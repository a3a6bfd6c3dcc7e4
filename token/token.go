package token

// Ref is a stable reference to an interned byte string. It is defined
// here (rather than imported from internal/intern) so that token stays
// free of internal package dependencies; internal/intern.Ref has the
// identical underlying representation and the lexer and cmd/yecc-tokens
// convert between them freely.
type Ref uint32

// Token is a tagged record produced by the lexer. Only the fields
// relevant to Kind are meaningful; see spec.md §3 for the full
// sum-over-kinds description this mirrors.
type Token struct {
	Kind  Kind
	Span  Span
	Flags Flag

	// INTEGER_CONSTANT
	IVal   uint64
	SVal   int64
	Base   Base
	// FLOATING_CONSTANT
	FVal        float64
	FloatStyle  FloatStyle
	FloatSuffix FloatSuffix

	// IDENTIFIER / keyword / HEADER_NAME / ERROR: interned spelling.
	Spelling Ref

	// CHARACTER_CONSTANT
	CharValue int64

	// STRING_LITERAL payloads. Exactly one of these is populated,
	// selected by Flags.EncodingFlags via EncodingFromFlag.
	Bytes []byte
	U16   []uint16
	U32   []uint32
}

// IsEOF reports whether t is the sentinel end-of-file token.
func (t *Token) IsEOF() bool { return t.Kind == EOF }

// IsError reports whether t is a TOKEN_ERROR.
func (t *Token) IsError() bool { return t.Kind == ERROR }
