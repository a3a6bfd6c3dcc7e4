package literal

import "github.com/Yeint-herp/yecc/cctx"

// ReadEscape decodes one escape sequence from src, whose next byte is
// the character immediately following the backslash (the backslash
// itself must already have been consumed by the caller). It returns the
// decoded scalar and any diagnosable events.
//
// Grounded on confucianzuoyuan-zcc's readEscapedChar in tokenize.go,
// generalized to add \u/\U universal-character-name escapes (the
// teacher only ever sees these pre-expanded into raw UTF-8 by
// convertUniversalChars over the whole file) and \e's GNU gating.
func ReadEscape(src Source, ctx *cctx.Context) (int32, []Event) {
	pos := src.Position()
	c := src.Peek()

	if isOctalDigit(c) {
		val := 0
		for i := 0; i < 3 && isOctalDigit(src.Peek()); i++ {
			val = val<<3 + (src.Next() - '0')
		}
		return int32(val), nil
	}

	if c == 'x' {
		src.Next()
		if !isHexDigit(src.Peek()) {
			return 0, []Event{{Warning: WarnBadHexEscape, Pos: pos}}
		}
		val := 0
		for isHexDigit(src.Peek()) {
			val = val<<4 + hexVal(src.Next())
		}
		return int32(val), nil
	}

	if c == 'u' || c == 'U' {
		src.Next()
		n := 4
		if c == 'U' {
			n = 8
		}
		val := 0
		ok := true
		for i := 0; i < n; i++ {
			if !isHexDigit(src.Peek()) {
				ok = false
				break
			}
			val = val<<4 + hexVal(src.Next())
		}
		if !ok {
			return 0xFFFD, []Event{{Warning: WarnBadHexEscape, Pos: pos}}
		}
		if val >= 0xD800 && val <= 0xDFFF {
			return 0xFFFD, []Event{{Warning: WarnSurrogateEscape, Pos: pos}}
		}
		return int32(val), nil
	}

	switch c {
	case 'a':
		src.Next()
		return '\a', nil
	case 'b':
		src.Next()
		return '\b', nil
	case 't':
		src.Next()
		return '\t', nil
	case 'n':
		src.Next()
		return '\n', nil
	case 'v':
		src.Next()
		return '\v', nil
	case 'f':
		src.Next()
		return '\f', nil
	case 'r':
		src.Next()
		return '\r', nil
	case 'e':
		src.Next()
		if !ctx.GNUExtensions {
			return 0x1B, []Event{{Warning: WarnGNUEscape, Pos: pos}}
		}
		return 0x1B, nil
	case '\\', '\'', '"', '?':
		src.Next()
		return int32(c), nil
	default:
		// Unrecognized escape: consume the byte and pass it through
		// unchanged, matching the teacher's default case in
		// readEscapedChar (a deliberately permissive fallback rather
		// than an error, since many historical C sources rely on it).
		if c < 0 {
			return 0, nil
		}
		src.Next()
		return int32(c), nil
	}
}
