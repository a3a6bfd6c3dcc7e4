// Package lexer implements the core lexer (component C7): the top-level
// next_token state machine tying together the byte stream, translation
// phases, string interner, keyword table, literal decoders, and
// diagnostics sink into a single token source.
//
// Grounded on confucianzuoyuan-zcc's tokenize() in tokenize.go (the
// teacher's single-pass, whole-buffer-resident scanner) and
// preprocess.go's directive-framing special case for "#include". The
// teacher scans an already fully line-spliced, trigraph-free in-memory
// buffer and only frames one directive (`#include`); this package
// generalizes that into the streaming, trigraph/digraph-aware, fully
// directive-framing state machine spec.md §4.7 describes, and recognizes
// five string/char encodings and the whole preprocessor-keyword set
// where the teacher recognizes one.
package lexer

import (
	"fmt"

	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/diag"
	"github.com/Yeint-herp/yecc/internal/intern"
	"github.com/Yeint-herp/yecc/internal/stream"
	"github.com/Yeint-herp/yecc/internal/translate"
	"github.com/Yeint-herp/yecc/token"
)

// PPKind narrows which include-family directive is open, so header-name
// mode knows which quote forms to accept (spec.md §4.7.1).
type PPKind int

const (
	PPNone PPKind = iota
	PPInclude
	PPIncludeNext
	PPImport
	PPEmbed
	PPOther
)

// Lexer is the top-level token source. One Lexer owns one Stream/
// Translator pair; construct a fresh Lexer (and Interner, and Sink) per
// compilation, per spec.md §5.
type Lexer struct {
	tr       *translate.Translator
	ctx      *cctx.Context
	interner *intern.Interner
	sink     *diag.Sink

	atLineStart      bool
	inDirective      bool
	ppKind           PPKind
	expectHeaderName bool
}

// New builds a Lexer over an already-opened Stream. It strips a leading
// UTF-8 BOM per spec.md §4.7.9 before handing the stream to the
// translation layer.
func New(s *stream.Stream, ctx *cctx.Context, interner *intern.Interner, sink *diag.Sink) *Lexer {
	stripBOM(s)
	l := &Lexer{
		ctx:         ctx,
		interner:    interner,
		sink:        sink,
		atLineStart: true,
	}
	l.tr = translate.New(s, ctx, l.onTrigraph)
	return l
}

// stripBOM consumes a leading EF BB BF, if present, and resets column so
// the first real byte sits at column 1. BOMs anywhere else in the file
// are left untouched.
func stripBOM(s *stream.Stream) {
	if s.PeekAt(0) == 0xEF && s.PeekAt(1) == 0xBB && s.PeekAt(2) == 0xBF {
		s.Next()
		s.Next()
		s.Next()
		s.ResetCol(1)
	}
}

func (l *Lexer) onTrigraph(ev translate.TrigraphEvent) {
	if !ev.Translated {
		if l.ctx.WarningEnabled(cctx.WarnTrigraphs) {
			l.sink.Emit(diag.WARNING, zeroSpan(ev.Pos), "trigraph %q ignored, did you mean to enable trigraphs?", ev.Raw)
		}
		return
	}
	if l.ctx.WarningEnabled(cctx.WarnTrigraphs) {
		l.sink.Emit(diag.WARNING, zeroSpan(ev.Pos), "trigraph %q translated to '%c'", ev.Raw, ev.Replacement)
	}
}

func zeroSpan(p token.Position) token.Span { return token.Span{Start: p, End: p} }

func (l *Lexer) warn(w cctx.Warning, span token.Span, format string, args ...interface{}) {
	if !l.ctx.WarningEnabled(w) {
		return
	}
	level := diag.WARNING
	if l.ctx.WarningAsError(w) {
		level = diag.ERROR
	}
	l.sink.Emit(level, span, format, args...)
}

func (l *Lexer) errorf(span token.Span, format string, args ...interface{}) token.Token {
	l.sink.Emit(diag.ERROR, span, format, args...)
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return token.Token{Kind: token.ERROR, Span: span, Spelling: token.Ref(l.interner.Intern(msg))}
}

// Next produces the next token. It always succeeds; end of input yields
// a zero-width TOKEN_EOF. This is the next_token(lexer) entry point of
// spec.md §4.7.
func (l *Lexer) Next() token.Token {
	for {
		l.skipWhitespaceAndComments()

		if tok, ok := l.maybeEnterDirective(); ok {
			return tok
		}

		if l.inDirective && l.tr.Peek() == '\n' {
			l.tr.Next()
			l.inDirective = false
			l.atLineStart = true
			l.ppKind = PPNone
			l.expectHeaderName = false
			continue
		}

		if l.tr.Peek() == translate.EOF {
			pos := l.tr.Position()
			return token.Token{Kind: token.EOF, Span: zeroSpan(pos)}
		}

		if l.inDirective && l.expectHeaderName {
			if tok, ok := l.maybeReadHeaderName(); ok {
				l.expectHeaderName = false
				l.atLineStart = false
				return tok
			}
			l.expectHeaderName = false
		}

		tok := l.dispatch()
		l.atLineStart = false
		return tok
	}
}

// skipWhitespaceAndComments implements spec.md §4.7 step 1. It stops
// (without consuming) at a newline while in_directive, so the caller's
// step-3 check can observe and act on it.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		c := l.tr.Peek()
		switch {
		case c == ' ' || c == '\t' || c == '\v' || c == '\f':
			l.tr.Next()
		case c == '\n':
			if l.inDirective {
				return
			}
			l.tr.Next()
			l.atLineStart = true
		case c == '/' && l.tr2PeekIs('/'):
			l.skipLineComment()
		case c == '/' && l.tr2PeekIs('*'):
			l.skipBlockComment()
		default:
			return
		}
	}
}

// tr2PeekIs reports whether the byte one past the current translated
// byte equals want, without consuming anything.
func (l *Lexer) tr2PeekIs(want int) bool {
	window := l.tr.PeekN(2)
	return len(window) == 2 && window[1] == want
}

func (l *Lexer) skipLineComment() {
	if !(l.ctx.StdAtLeast(cctx.C99) || l.ctx.GNUExtensions) {
		pos := l.tr.Position()
		l.warn(cctx.WarnExtension, zeroSpan(pos), "// comments are a C99/GNU extension")
	}
	l.tr.Next() // '/'
	l.tr.Next() // '/'
	for {
		c := l.tr.Peek()
		if c == translate.EOF || c == '\n' {
			return
		}
		l.tr.Next()
	}
}

func (l *Lexer) skipBlockComment() {
	start := l.tr.Position()
	l.tr.Next() // '/'
	l.tr.Next() // '*'
	for {
		c := l.tr.Peek()
		if c == translate.EOF {
			span := token.Span{Start: start, End: l.tr.Position()}
			l.warn(cctx.WarnUnterminatedComment, span, "unterminated comment")
			l.sink.Emit(diag.ERROR, span, "unterminated comment")
			l.recover()
			return
		}
		if c == '*' && l.tr2PeekIs('/') {
			l.tr.Next()
			l.tr.Next()
			return
		}
		l.tr.Next()
	}
}

// maybeEnterDirective implements step 2: at line start, horizontal
// whitespace is consumed and the next bytes checked for a directive
// opener ('#', or, with trigraphs enabled, the '%:' digraph -- '??='
// already became '#' via the translation layer).
func (l *Lexer) maybeEnterDirective() (token.Token, bool) {
	if !l.atLineStart {
		return token.Token{}, false
	}
	for {
		c := l.tr.Peek()
		if c == ' ' || c == '\t' || c == '\v' || c == '\f' {
			l.tr.Next()
			continue
		}
		break
	}

	start := l.tr.Position()
	c0 := l.tr.Peek()
	if c0 == '#' {
		l.tr.Next()
		end := l.tr.Position()
		l.beginDirective()
		return token.Token{Kind: token.PP_HASH, Span: token.Span{Start: start, End: end}}, true
	}
	if l.ctx.EnableTrigraphs && c0 == '%' && l.tr2PeekIs(':') {
		l.tr.Next()
		l.tr.Next()
		end := l.tr.Position()
		l.warn(cctx.WarnTrigraphs, token.Span{Start: start, End: end}, "digraph '%%:' used for '#'")
		l.beginDirective()
		return token.Token{Kind: token.PP_HASH, Span: token.Span{Start: start, End: end}}, true
	}
	return token.Token{}, false
}

func (l *Lexer) beginDirective() {
	l.inDirective = true
	l.atLineStart = false
	l.ppKind = PPNone
	l.expectHeaderName = false
}

// recover implements spec.md §4.7.8: skip forward to the next newline or
// ';', then reset framing state so the caller always makes progress.
func (l *Lexer) recover() {
	for {
		c := l.tr.Peek()
		if c == translate.EOF || c == '\n' {
			break
		}
		if c == ';' {
			l.tr.Next()
			break
		}
		l.tr.Next()
	}
	l.atLineStart = true
	l.inDirective = false
	l.expectHeaderName = false
	l.ppKind = PPNone
}

// dispatch implements step 6: classify the next token by its first
// (translated) byte and read it.
func (l *Lexer) dispatch() token.Token {
	if enc, prefixLen, quote, ok := l.peekLiteralPrefix(); ok {
		return l.readStringOrChar(enc, prefixLen, quote)
	}

	c := l.tr.Peek()
	if isDecimalDigit(c) {
		return l.readNumber()
	}
	if c == '.' {
		window := l.tr.PeekN(2)
		if len(window) == 2 && isDecimalDigit(window[1]) {
			return l.readNumber()
		}
	}
	if isIdentStart(c, l.ctx) {
		return l.readIdentifier()
	}
	return l.readPunctuator()
}

func isDecimalDigit(c int) bool { return c >= '0' && c <= '9' }

func isIdentStart(c int, ctx *cctx.Context) bool {
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' {
		return true
	}
	if c >= 0x80 {
		return true
	}
	if ctx.GNUExtensions && c == '$' {
		return true
	}
	return false
}
