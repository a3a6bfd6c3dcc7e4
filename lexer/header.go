package lexer

import (
	"github.com/Yeint-herp/yecc/internal/translate"
	"github.com/Yeint-herp/yecc/token"
)

// maybeReadHeaderName implements spec.md §4.7.3 and the dispatch rule of
// §4.7 step 5: consumes and returns a HEADER_NAME token if the current
// pp_kind/quote combination calls for one; otherwise leaves the stream
// untouched and reports ok=false so normal dispatch proceeds.
//
// Grounded on preprocess.go's `#include` handling (the teacher's only
// directive-aware special case), generalized to the angle/quoted forms
// and the wider set of include-family directives spec.md §4.7.1 names.
func (l *Lexer) maybeReadHeaderName() (token.Token, bool) {
	c := l.tr.Peek()
	switch l.ppKind {
	case PPInclude, PPIncludeNext:
		if c == '<' {
			return l.readAngleHeaderName(), true
		}
		if c == '"' {
			return l.readQuotedHeaderName(), true
		}
	case PPImport, PPEmbed:
		if c == '"' {
			return l.readQuotedHeaderName(), true
		}
	}
	return token.Token{}, false
}

func (l *Lexer) readAngleHeaderName() token.Token {
	start := l.tr.Position()
	l.tr.Next() // '<'
	var raw []byte
	for {
		c := l.tr.Peek()
		if c == '>' {
			l.tr.Next()
			end := l.tr.Position()
			ref := l.interner.Intern(string(raw))
			return token.Token{Kind: token.HEADER_NAME, Span: token.Span{Start: start, End: end}, Spelling: token.Ref(ref)}
		}
		if c == translate.EOF || c == '\n' {
			end := l.tr.Position()
			span := token.Span{Start: start, End: end}
			l.recover()
			return l.errorf(span, "missing closing '>' in header name")
		}
		raw = append(raw, byte(l.tr.Next()))
	}
}

func (l *Lexer) readQuotedHeaderName() token.Token {
	start := l.tr.Position()
	l.tr.Next() // opening '"'
	var raw []byte
	for {
		c := l.tr.Peek()
		if c == '"' {
			l.tr.Next()
			end := l.tr.Position()
			ref := l.interner.Intern(string(raw))
			return token.Token{Kind: token.HEADER_NAME, Span: token.Span{Start: start, End: end}, Spelling: token.Ref(ref)}
		}
		if c == translate.EOF || c == '\n' {
			end := l.tr.Position()
			span := token.Span{Start: start, End: end}
			l.recover()
			return l.errorf(span, "missing closing '\"' in header name")
		}
		if c == '\\' {
			n1 := l.tr.PeekN(2)
			if len(n1) == 2 && (n1[1] == '"' || n1[1] == '\\') {
				l.tr.Next()
				raw = append(raw, byte(l.tr.Next()))
				continue
			}
		}
		raw = append(raw, byte(l.tr.Next()))
	}
}
