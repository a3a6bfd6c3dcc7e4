package lexer

import (
	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/diag"
	"github.com/Yeint-herp/yecc/internal/keyword"
	"github.com/Yeint-herp/yecc/internal/literal"
	"github.com/Yeint-herp/yecc/token"
)

// readIdentifier implements spec.md §4.7.4: accumulate alpha/digit/'_',
// GNU '$', UCNs, and verbatim UTF-8 sequences, then classify via
// internal/keyword.
//
// Grounded on confucianzuoyuan-zcc's identifier-accumulation loop in
// tokenize() (plain ASCII + isKeyword lookup); generalized to add UCNs,
// raw UTF-8, and GNU '$', and to route classification through
// internal/keyword's context-sensitive table instead of a bare set
// membership test.
func (l *Lexer) readIdentifier() token.Token {
	start := l.tr.Position()
	var raw []byte

loop:
	for {
		c := l.tr.Peek()
		switch {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_':
			raw = append(raw, byte(l.tr.Next()))
		case l.ctx.GNUExtensions && c == '$':
			raw = append(raw, byte(l.tr.Next()))
		case c == '\\' && ucnFollows(l.tr.PeekN(2)):
			raw = append(raw, l.readUCNIntoIdentifier()...)
		case c >= 0x80:
			raw = append(raw, l.readUTF8SeqIntoIdentifier()...)
		default:
			break loop
		}
	}

	end := l.tr.Position()
	span := token.Span{Start: start, End: end}
	spelling := string(raw)

	kind, entry := keyword.Classify(spelling, l.inDirective)
	if entry != nil {
		l.applyKeywordDiagnostics(span, entry)
		if l.inDirective {
			l.applyDirectiveFraming(kind)
		}
	}

	ref := l.interner.Intern(spelling)
	return token.Token{Kind: kind, Span: span, Spelling: token.Ref(ref)}
}

func ucnFollows(window []int) bool {
	return len(window) == 2 && (window[1] == 'u' || window[1] == 'U')
}

// encodeCodepointNoNul returns cp's UTF-8 bytes without the terminator
// literal.EncodeUTF8 appends for full string payloads.
func encodeCodepointNoNul(cp int32) []byte {
	out := literal.EncodeUTF8([]int32{cp})
	return out[:len(out)-1]
}

// readUCNIntoIdentifier consumes a \uHHHH or \UHHHHHHHH universal
// character name, diagnoses its use pre-C99, and returns its UTF-8
// encoding.
func (l *Lexer) readUCNIntoIdentifier() []byte {
	pos := l.tr.Position()
	l.tr.Next() // backslash
	marker := l.tr.Next()
	n := 4
	if marker == 'U' {
		n = 8
	}
	val := 0
	for i := 0; i < n; i++ {
		c := l.tr.Peek()
		if !isHexDigitByte(c) {
			break
		}
		val = val<<4 + hexValByte(l.tr.Next())
	}
	if !l.ctx.StdAtLeast(cctx.C99) && !l.ctx.GNUExtensions {
		l.warn(cctx.WarnExtension, zeroSpan(pos), "universal character names in identifiers require C99 or later")
	}
	return encodeCodepointNoNul(int32(val))
}

func (l *Lexer) readUTF8SeqIntoIdentifier() []byte {
	pos := l.tr.Position()
	if l.ctx.Pedantic && !l.ctx.GNUExtensions {
		l.warn(cctx.WarnPedantic, zeroSpan(pos), "UTF-8 identifier characters are an extension")
	}
	cp, ok := literal.DecodeUTF8Seq(l.tr)
	if !ok {
		l.sink.Emit(diag.ERROR, zeroSpan(pos), "invalid UTF-8 sequence in identifier")
		return nil
	}
	return encodeCodepointNoNul(int32(cp))
}

func isHexDigitByte(c int) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValByte(c int) int {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// applyKeywordDiagnostics implements the diagnostic policy of spec.md
// §4.5.
func (l *Lexer) applyKeywordDiagnostics(span token.Span, e *keyword.Entry) {
	if e.GNUOnly && !l.ctx.GNUExtensions {
		l.warn(cctx.WarnExtension, span, "%q is a GNU extension", e.Spelling)
		return
	}
	if !l.ctx.StdAtLeast(e.MinStd) && !l.ctx.GNUExtensions {
		l.warn(cctx.WarnExtension, span, "%q requires %s or later", e.Spelling, e.MinStd.String())
	}
	if e.Form == keyword.OldForm && l.ctx.StdAtLeast(cctx.C23) {
		l.warn(cctx.WarnDeprecated, span, "%q is deprecated in C23, use the new spelling", e.Spelling)
	}
	if e.Form == keyword.NewForm && !l.ctx.StdAtLeast(cctx.C23) {
		l.warn(cctx.WarnExtension, span, "%q is a C23 extension before C23", e.Spelling)
	}
	if e.C23Status == keyword.StatusRemoved && l.ctx.StdAtLeast(cctx.C23) {
		l.sink.Emit(diag.ERROR, span, "%q was removed in C23", e.Spelling)
	}
}

// applyDirectiveFraming implements spec.md §4.7.1: an include-family
// directive keyword arms header-name mode for the following token.
func (l *Lexer) applyDirectiveFraming(kind token.Kind) {
	switch kind {
	case token.PP_INCLUDE:
		l.ppKind = PPInclude
		l.expectHeaderName = true
	case token.PP_INCLUDE_NEXT:
		l.ppKind = PPIncludeNext
		l.expectHeaderName = true
	case token.PP_IMPORT:
		l.ppKind = PPImport
		l.expectHeaderName = true
	case token.PP_EMBED:
		l.ppKind = PPEmbed
		l.expectHeaderName = true
	default:
		if token.IsDirectiveKeyword(kind) {
			l.ppKind = PPOther
		}
	}
}
