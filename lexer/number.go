package lexer

import (
	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/internal/literal"
	"github.com/Yeint-herp/yecc/token"
)

// readNumber implements spec.md §4.7.5 by delegating digit/suffix
// accumulation and conversion to internal/literal.ReadNumber, then
// translating its result into a Token and emitting diagnostics.
//
// Grounded on confucianzuoyuan-zcc's convertPpNumber/convertPpInt call
// sites in tokenize(), which invoke the pp-number conversion once a
// whole pp-number span has been delimited; here internal/literal reads
// directly off the translated stream instead.
func (l *Lexer) readNumber() token.Token {
	start := l.tr.Position()
	n := literal.ReadNumber(l.tr, l.ctx.GNUExtensions, l.ctx.StdAtLeast(cctx.C23))
	end := l.tr.Position()
	span := token.Span{Start: start, End: end}

	if n.Malformed {
		return l.errorf(span, "%s", n.Err)
	}

	if n.Imaginary {
		if l.ctx.StdAtLeast(cctx.C23) {
			return l.errorf(span, "imaginary suffix was removed in C23")
		}
		l.warn(cctx.WarnExtension, span, "imaginary numbers are a GNU extension")
	}

	for _, ev := range n.IEvents {
		if ev.Warning == literal.WarnIntegerOverflow {
			l.warn(cctx.WarnOverflow, span, "integer constant overflows its type")
		}
	}
	for _, ev := range n.FEvents {
		if ev.Warning == literal.WarnFloatRange {
			l.warn(cctx.WarnOverflow, span, "floating constant is out of representable range")
		}
	}

	if l.ctx.FloatMode == cctx.FloatDisabled && n.IsFloat {
		return l.errorf(span, "floating-point literals are disabled")
	}

	tok := token.Token{Span: span}
	if n.IsFloat {
		tok.Kind = token.FLOATING_CONSTANT
		tok.FVal = n.FVal
		tok.FloatStyle = n.FStyle
		tok.FloatSuffix = n.FSuffix
		if l.ctx.FloatMode == cctx.FloatSoft {
			// Soft float mode still reports the value; downstream
			// consumers decide whether to evaluate it at compile time.
		}
	} else {
		tok.Kind = token.INTEGER_CONSTANT
		tok.IVal = n.IVal
		tok.SVal = int64(n.IVal)
		tok.Base = n.Base
		tok.Flags |= n.IFlags
	}
	return tok
}
