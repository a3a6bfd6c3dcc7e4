package lexer

import (
	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/token"
)

// punctEntry is one row of the maximal-munch table: a literal byte
// sequence and the kind it produces.
type punctEntry struct {
	bytes string
	kind  token.Kind
}

// puncts is consulted longest-first, per spec.md §4.7.2.
var puncts = []punctEntry{
	{"<<=", token.SHL_ASSIGN}, {">>=", token.SHR_ASSIGN}, {"...", token.ELLIPSIS},
	{"##", token.PP_HASHHASH},
	{"<<", token.SHL}, {">>", token.SHR}, {"&&", token.AMP_AMP}, {"||", token.PIPE_PIPE},
	{"->", token.ARROW}, {"++", token.PLUS_PLUS}, {"--", token.MINUS_MINUS},
	{"+=", token.PLUS_ASSIGN}, {"-=", token.MINUS_ASSIGN}, {"*=", token.STAR_ASSIGN},
	{"/=", token.SLASH_ASSIGN}, {"%=", token.PERCENT_ASSIGN}, {"&=", token.AMP_ASSIGN},
	{"^=", token.CARET_ASSIGN}, {"|=", token.PIPE_ASSIGN}, {"<=", token.LE}, {">=", token.GE},
	{"==", token.EQ_EQ}, {"!=", token.NOT_EQ},
	{"#", token.PP_HASH},
	{"?", token.QUESTION}, {":", token.COLON}, {";", token.SEMI}, {",", token.COMMA},
	{".", token.DOT}, {"+", token.PLUS}, {"-", token.MINUS}, {"*", token.STAR},
	{"/", token.SLASH}, {"%", token.PERCENT}, {"<", token.LT}, {">", token.GT},
	{"=", token.ASSIGN}, {"!", token.BANG}, {"~", token.TILDE}, {"^", token.CARET},
	{"&", token.AMP}, {"|", token.PIPE}, {"(", token.LPAREN}, {")", token.RPAREN},
	{"[", token.LBRACKET}, {"]", token.RBRACKET}, {"{", token.LBRACE}, {"}", token.RBRACE},
}

// digraphs map a byte sequence to the punctuator it substitutes for,
// checked longest-first (spec.md §4.7.2).
var digraphs = []punctEntry{
	{"%:%:", token.PP_HASHHASH},
	{"<:", token.LBRACKET}, {":>", token.RBRACKET}, {"<%", token.LBRACE},
	{"%>", token.RBRACE}, {"%:", token.PP_HASH},
}

// readPunctuator implements spec.md §4.7.2: longest-match punctuator
// recognition, then digraph recognition gated on enable_trigraphs, then
// an unexpected-character error. When digraphs are disabled, a sequence
// that would otherwise have matched one is warned about and ignored,
// then matched against the ordinary single-byte punctuators instead.
//
// Grounded on confucianzuoyuan-zcc's readPunct in tokenize.go, which
// already performs longest-match over a similar table; generalized to
// add digraphs (absent from the teacher) and PP_HASH/PP_HASHHASH as
// first-class punctuator kinds.
func (l *Lexer) readPunctuator() token.Token {
	start := l.tr.Position()
	window := l.tr.PeekN(4)
	text := runesToString(window)

	if l.ctx.EnableTrigraphs {
		for _, d := range digraphs {
			if hasPrefix(text, d.bytes) {
				for range d.bytes {
					l.tr.Next()
				}
				end := l.tr.Position()
				span := token.Span{Start: start, End: end}
				l.warn(cctx.WarnTrigraphs, span, "digraph %q used for %q", d.bytes, d.kind.String())
				return token.Token{Kind: d.kind, Span: span}
			}
		}
	} else {
		for _, d := range digraphs {
			if hasPrefix(text, d.bytes) {
				end := l.tr.Position()
				span := token.Span{Start: start, End: end}
				l.warn(cctx.WarnTrigraphs, span, "digraph %q ignored, did you mean to enable trigraphs?", d.bytes)
				break
			}
		}
	}

	for _, p := range puncts {
		if hasPrefix(text, p.bytes) {
			for range p.bytes {
				l.tr.Next()
			}
			end := l.tr.Position()
			return token.Token{Kind: p.kind, Span: token.Span{Start: start, End: end}}
		}
	}

	c := l.tr.Next()
	end := l.tr.Position()
	span := token.Span{Start: start, End: end}
	return l.errorf(span, "unexpected character '\\x%02X'", c)
}

func runesToString(window []int) string {
	b := make([]byte, 0, len(window))
	for _, c := range window {
		if c < 0 {
			break
		}
		b = append(b, byte(c))
	}
	return string(b)
}

func hasPrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return s[:len(prefix)] == prefix
}
