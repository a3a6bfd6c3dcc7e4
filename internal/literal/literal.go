// Package literal implements the literal decoders (component C8):
// integer and floating-point parsing (including hex floats and digit
// separators), escape-sequence decoding, and UTF-8/16/32/wide string and
// character encoding with cross-prefix concatenation support.
//
// Grounded on confucianzuoyuan-zcc's readEscapedChar, readStringLiteral,
// readUTF16StringLiteral, readUTF32StringLiteral, readCharLiteral,
// convertPpInt, and convertPpNumber in tokenize.go, and encodeUTF8 in
// unicode.go. The teacher defers all numeric conversion to a later
// "pp-number" pass and has no UTF-8-proper string kind, no digit
// separators, no hex floats, and no binary integers; this package adds
// all of those per spec.md §4.7.5/§4.7.6/§4.7.7.
package literal

import (
	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/token"
)

// Source is the minimal read interface literal decoders need from a
// translated byte stream. internal/translate.Translator satisfies it.
type Source interface {
	Peek() int
	Next() int
	Position() token.Position
}

// Warning enumerates the diagnosable conditions literal decoders can
// raise. The lexer maps these to diag.Level + a concrete message and
// supplies the span, since only the lexer tracks token-level spans.
type Warning int

const (
	WarnNone Warning = iota
	WarnGNUEscape
	WarnBadHexEscape
	WarnSurrogateEscape
	WarnBadUTF8
	WarnMulticharChar
	WarnStringWidthPromotion
	WarnWideOverflow
	WarnIntegerOverflow
	WarnFloatRange
	WarnPlainNonASCII
)

func isHexDigit(c int) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctalDigit(c int) bool { return c >= '0' && c <= '7' }

func isDecimalDigit(c int) bool { return c >= '0' && c <= '9' }

func isBinaryDigit(c int) bool { return c == '0' || c == '1' }

func hexVal(c int) int {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// Event pairs a Warning with the source position at which it was
// noticed, so the lexer can attach it to a concrete diagnostic span.
type Event struct {
	Warning Warning
	Pos     token.Position
}

// RankEncoding returns the promotion order of enc: plain < u8 < u16 <
// u32 < wide (spec.md §4.7.6).
func RankEncoding(enc token.Encoding) int {
	return int(enc)
}

// WidestUnitBits reports the code-unit bit width an encoding's adjacent
// literals can require at minimum, used by the "never narrow below the
// widest input unit width" promotion rule. EncWide resolves through
// ctx.WcharBits rather than assuming 32, matching lit_info_of in
// _examples/original_source/source/lex/string_concat.c, so that e.g. a
// 16-bit wchar_t target correctly promotes a wide+u32 concatenation to
// u32 instead of silently narrowing the u32 input into 16-bit units.
func WidestUnitBits(enc token.Encoding, ctx *cctx.Context) int {
	return int(UnitBitsForEncoding(enc, ctx))
}
