package lexer

import (
	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/diag"
	"github.com/Yeint-herp/yecc/internal/literal"
	"github.com/Yeint-herp/yecc/token"
)

// peekLiteralPrefix looks at up to 3 translated bytes to decide whether
// the lexer is sitting at the start of a string or character literal,
// and if so which encoding prefix and delimiter it uses. It consumes
// nothing.
func (l *Lexer) peekLiteralPrefix() (enc token.Encoding, prefixLen int, quote byte, matched bool) {
	w := l.tr.PeekN(3)
	get := func(i int) int {
		if i < len(w) {
			return w[i]
		}
		return -1
	}
	c0 := get(0)
	switch c0 {
	case '"':
		return token.EncPlain, 0, '"', true
	case '\'':
		return token.EncPlain, 0, '\'', true
	case 'u':
		if get(1) == '8' && get(2) == '"' {
			return token.EncUTF8, 2, '"', true
		}
		if get(1) == '8' && get(2) == '\'' {
			return token.EncUTF8, 2, '\'', true
		}
		if get(1) == '"' {
			return token.EncUTF16, 1, '"', true
		}
		if get(1) == '\'' {
			return token.EncUTF16, 1, '\'', true
		}
	case 'U':
		if get(1) == '"' {
			return token.EncUTF32, 1, '"', true
		}
		if get(1) == '\'' {
			return token.EncUTF32, 1, '\'', true
		}
	case 'L':
		if get(1) == '"' {
			return token.EncWide, 1, '"', true
		}
		if get(1) == '\'' {
			return token.EncWide, 1, '\'', true
		}
	}
	return 0, 0, 0, false
}

// readStringOrChar implements spec.md §4.7.6/§4.7.7: decode one literal
// body, then, for string literals, absorb adjacent prefixed literals
// under the cross-prefix promotion rule.
//
// Grounded on confucianzuoyuan-zcc's readStringLiteral family (see
// internal/literal's package doc); the concatenation loop and width
// promotion are new, since the teacher concatenates nothing.
func (l *Lexer) readStringOrChar(enc token.Encoding, prefixLen int, quote byte) token.Token {
	start := l.tr.Position()
	l.consumePrefixAndQuote(prefixLen, enc, quote, start)

	if quote == '\'' {
		return l.finishCharLiteral(start, enc)
	}
	return l.finishStringLiteral(start, enc)
}

func (l *Lexer) consumePrefixAndQuote(prefixLen int, enc token.Encoding, quote byte, pos token.Position) {
	if enc == token.EncUTF8 && quote == '"' {
		if !l.ctx.StdAtLeast(cctx.C23) && !l.ctx.GNUExtensions {
			l.warn(cctx.WarnExtension, zeroSpan(pos), "u8 string literals require C23 or GNU extensions")
		}
	}
	for i := 0; i < prefixLen; i++ {
		l.tr.Next()
	}
	l.tr.Next() // opening quote
}

func (l *Lexer) finishCharLiteral(start token.Position, enc token.Encoding) token.Token {
	body := literal.DecodeBody(l.tr, l.ctx, enc, '\'')
	end := l.tr.Position()
	span := token.Span{Start: start, End: end}

	if !body.Terminated {
		return l.errorf(span, "unterminated character literal")
	}
	if len(body.CodePoints) == 0 {
		return l.errorf(span, "empty character constant")
	}

	unitBits := literal.UnitBitsForEncoding(enc, l.ctx)
	if len(body.CodePoints) > 1 {
		l.warn(cctx.WarnMultichar, span, "multi-character character constant")
	}

	l.emitLiteralEvents(span, body.Events)

	val := literal.PackMultichar(body.CodePoints, unitBits)
	tok := token.Token{Kind: token.CHARACTER_CONSTANT, Span: span, CharValue: val}
	tok.Flags |= enc.Flag()
	return tok
}

func (l *Lexer) finishStringLiteral(start token.Position, enc token.Encoding) token.Token {
	allCps, terminated, lastSpan := l.readOneStringSegment(start, enc)
	widest := enc
	maxBitsEnc := enc
	if !terminated {
		return l.errorf(lastSpan, "unterminated string literal")
	}

	for {
		l.skipWhitespaceAndComments()
		nextEnc, prefixLen, quote, ok := l.peekLiteralPrefix()
		if !ok || quote != '"' {
			break
		}
		segStart := l.tr.Position()
		l.consumePrefixAndQuote(prefixLen, nextEnc, quote, segStart)
		cps, ok2, segSpan := l.readOneStringSegment(segStart, nextEnc)
		if !ok2 {
			return l.errorf(segSpan, "unterminated string literal")
		}
		if literal.RankEncoding(nextEnc) > literal.RankEncoding(widest) {
			widest = nextEnc
		}
		if literal.WidestUnitBits(nextEnc, l.ctx) > literal.WidestUnitBits(maxBitsEnc, l.ctx) {
			maxBitsEnc = nextEnc
		}
		allCps = append(allCps, cps...)
		lastSpan.End = segSpan.End
	}
	if literal.WidestUnitBits(maxBitsEnc, l.ctx) > literal.WidestUnitBits(widest, l.ctx) {
		widest = maxBitsEnc
	}

	if widest != enc {
		l.warn(cctx.WarnStringWidthPromotion, lastSpan, "adjacent string literals promoted to %s", widest.String())
	}

	return l.encodeFinalString(lastSpan, widest, allCps)
}

// readOneStringSegment decodes the body of one string literal segment
// (the opening quote must already be consumed) and reports its code
// points, whether it terminated, and its span.
func (l *Lexer) readOneStringSegment(start token.Position, enc token.Encoding) ([]int32, bool, token.Span) {
	body := literal.DecodeBody(l.tr, l.ctx, enc, '"')
	end := l.tr.Position()
	span := token.Span{Start: start, End: end}
	l.emitLiteralEvents(span, body.Events)
	return body.CodePoints, body.Terminated, span
}

func (l *Lexer) emitLiteralEvents(span token.Span, events []literal.Event) {
	for _, ev := range events {
		switch ev.Warning {
		case literal.WarnGNUEscape:
			l.warn(cctx.WarnExtension, span, "\\e is a GNU extension")
		case literal.WarnBadHexEscape:
			l.sink.Emit(diag.ERROR, span, "invalid hex escape sequence")
		case literal.WarnSurrogateEscape:
			l.sink.Emit(diag.ERROR, span, "universal character name refers to a surrogate")
		case literal.WarnBadUTF8:
			l.sink.Emit(diag.ERROR, span, "invalid UTF-8 sequence in literal")
		case literal.WarnPlainNonASCII:
			l.sink.Emit(diag.ERROR, span, "\\u/\\U universal character names are not valid in plain literals")
		}
	}
}

func (l *Lexer) encodeFinalString(span token.Span, enc token.Encoding, cps []int32) token.Token {
	tok := token.Token{Kind: token.STRING_LITERAL, Span: span}
	tok.Flags |= enc.Flag()
	switch enc {
	case token.EncPlain:
		tok.Bytes = literal.EncodeMask8(cps)
	case token.EncUTF8:
		tok.Bytes = literal.EncodeUTF8(cps)
	case token.EncUTF16:
		tok.U16 = literal.EncodeUTF16(cps)
	case token.EncUTF32:
		tok.U32 = literal.EncodeUTF32(cps)
	case token.EncWide:
		wr := literal.EncodeWide(cps, l.ctx)
		if wr.Clamped {
			l.warn(cctx.WarnOverflow, span, "wide character exceeds target wchar_t range")
		}
		switch wr.Bits {
		case cctx.Wchar8:
			tok.Bytes = wr.Bytes
		case cctx.Wchar16:
			tok.U16 = wr.U16
		case cctx.Wchar32:
			tok.U32 = wr.U32
		}
	}
	return tok
}
