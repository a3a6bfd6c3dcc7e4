package lexer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/diag"
	"github.com/Yeint-herp/yecc/internal/intern"
	"github.com/Yeint-herp/yecc/internal/stream"
	"github.com/Yeint-herp/yecc/lexer"
	"github.com/Yeint-herp/yecc/token"
)

// newLexer wires up a full pipeline (stream, interner, sink) over src the
// way a caller described in spec.md §5 would, writing diagnostics to buf
// so tests can assert on them.
func newLexer(t *testing.T, name, src string, ctx *cctx.Context) (*lexer.Lexer, *intern.Interner, *bytes.Buffer) {
	t.Helper()
	s := stream.OpenBytes(name, []byte(src))
	in := intern.New()
	var buf bytes.Buffer
	sink := diag.New(&buf, diag.NewStringSource(name, src))
	return lexer.New(s, ctx, in, sink), in, &buf
}

func allTokens(t *testing.T, l *lexer.Lexer) []token.Token {
	t.Helper()
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
		if len(toks) > 1000 {
			t.Fatal("lexer did not reach EOF")
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

// scenario 1: BOM + keywords.
func TestBOMAndKeywords(t *testing.T) {
	src := "\xEF\xBB\xBFint main return"
	l, in, _ := newLexer(t, "a.c", src, cctx.Default())
	toks := allTokens(t, l)
	require.Equal(t, []token.Kind{token.KW_INT, token.IDENTIFIER, token.KW_RETURN, token.EOF}, kinds(toks))
	require.Equal(t, 1, toks[0].Span.Start.Col)
	require.Equal(t, "main", in.Lookup(intern.Ref(toks[1].Spelling)))
}

// scenario 2: directive + header-name, per spec.md §8's worked trace.
func TestDirectiveIncludeHeaderName(t *testing.T) {
	src := "#   include <stdio.h>\n"
	l, in, _ := newLexer(t, "a.c", src, cctx.Default())
	toks := allTokens(t, l)
	require.Equal(t, []token.Kind{token.PP_HASH, token.PP_INCLUDE, token.HEADER_NAME, token.EOF}, kinds(toks))
	require.Equal(t, "stdio.h", in.Lookup(intern.Ref(toks[2].Spelling)))
}

// scenario 3: digraph "%:include" opens a directive when trigraphs are
// enabled, and is otherwise read as ordinary punctuation/identifier.
func TestDigraphHashInclude(t *testing.T) {
	ctx := cctx.Default()
	ctx.EnableTrigraphs = true
	src := "%:include <a.h>\n"
	l, _, _ := newLexer(t, "a.c", src, ctx)
	toks := allTokens(t, l)
	require.Equal(t, []token.Kind{token.PP_HASH, token.PP_INCLUDE, token.HEADER_NAME, token.EOF}, kinds(toks))
}

func TestDigraphDisabledIsNotADirective(t *testing.T) {
	ctx := cctx.Default()
	ctx.EnableTrigraphs = false
	src := "%:include <a.h>\n"
	l, _, _ := newLexer(t, "a.c", src, ctx)
	toks := allTokens(t, l)
	require.NotEqual(t, token.PP_HASH, toks[0].Kind)
	require.Equal(t, token.PERCENT, toks[0].Kind)
}

// A digraph used mid-expression (not at a directive opener) with
// trigraphs disabled warns that it was ignored and still tokenizes as
// its single-byte punctuators, per spec.md §4.7.2.
func TestGenericDigraphIgnoredWhenDisabled(t *testing.T) {
	ctx := cctx.Default()
	ctx.EnableTrigraphs = false
	l, _, buf := newLexer(t, "a.c", "a<:0:>", ctx)
	toks := allTokens(t, l)
	require.Equal(t, []token.Kind{token.IDENTIFIER, token.LT, token.COLON, token.INTEGER_CONSTANT, token.COLON, token.GT, token.EOF}, kinds(toks))
	require.Contains(t, buf.String(), "digraph")
	require.Contains(t, buf.String(), "ignored")
}

func TestGenericDigraphTranslatedWhenEnabled(t *testing.T) {
	ctx := cctx.Default()
	ctx.EnableTrigraphs = true
	l, _, _ := newLexer(t, "a.c", "a<:0:>", ctx)
	toks := allTokens(t, l)
	require.Equal(t, []token.Kind{token.IDENTIFIER, token.LBRACKET, token.INTEGER_CONSTANT, token.RBRACKET, token.EOF}, kinds(toks))
}

// scenario 4: integer bases and digit separators.
func TestIntegerBasesAndSeparators(t *testing.T) {
	ctx := cctx.Default()
	src := "0x1A2Bu 0b101 0755 1'000'000"
	l, _, _ := newLexer(t, "a.c", src, ctx)
	toks := allTokens(t, l)
	require.Len(t, toks, 5) // 4 numbers + EOF
	require.Equal(t, token.INTEGER_CONSTANT, toks[0].Kind)
	require.Equal(t, uint64(0x1A2B), toks[0].IVal)
	require.Equal(t, token.BaseHex, toks[0].Base)
	require.True(t, toks[0].Flags.Has(token.FlagUnsigned))

	require.Equal(t, token.BaseBinary, toks[1].Base)
	require.Equal(t, uint64(5), toks[1].IVal)

	require.Equal(t, token.BaseOctal, toks[2].Base)
	require.Equal(t, uint64(0755), toks[2].IVal)

	require.Equal(t, uint64(1000000), toks[3].IVal)
}

// scenario 5: adjacent string literals promote to the widest encoding.
func TestStringConcatenationPromotion(t *testing.T) {
	ctx := cctx.Default()
	src := `"abc" u8"d" U"e"`
	l, _, buf := newLexer(t, "a.c", src, ctx)
	toks := allTokens(t, l)
	require.Equal(t, []token.Kind{token.STRING_LITERAL, token.EOF}, kinds(toks))
	require.True(t, toks[0].Flags.Has(token.FlagUTF32))
	require.NotEmpty(t, toks[0].U32)
	require.Contains(t, buf.String(), "promoted")
}

// scenario 6: a plain multi-character constant packs its bytes MSB-first
// and keeps the low 8 bits, i.e. the last character.
func TestMultiCharPlainLiteral(t *testing.T) {
	ctx := cctx.Default()
	l, _, buf := newLexer(t, "a.c", "'ab'", ctx)
	toks := allTokens(t, l)
	require.Equal(t, token.CHARACTER_CONSTANT, toks[0].Kind)
	require.Equal(t, int64('b'), toks[0].CharValue)
	require.Contains(t, buf.String(), "multi-character")
}

// scenario 7: an unterminated block comment recovers and keeps lexing.
func TestUnterminatedCommentRecovers(t *testing.T) {
	ctx := cctx.Default()
	src := "int x; /* oops\nint y;"
	l, _, buf := newLexer(t, "a.c", src, ctx)
	toks := allTokens(t, l)
	require.Contains(t, buf.String(), "unterminated comment")
	require.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	for _, tok := range toks {
		require.NotEqual(t, token.ERROR, tok.Kind, "recovery should not itself surface an ERROR token here")
	}
}

// scenario 8: a backslash-newline splice inside an identifier is invisible
// to the resulting spelling.
func TestLineSpliceInIdentifier(t *testing.T) {
	ctx := cctx.Default()
	src := "fo\\\no"
	l, in, _ := newLexer(t, "a.c", src, ctx)
	toks := allTokens(t, l)
	require.Equal(t, token.IDENTIFIER, toks[0].Kind)
	require.Equal(t, "foo", in.Lookup(intern.Ref(toks[0].Spelling)))
}

func TestForwardProgressOnUnexpectedByte(t *testing.T) {
	ctx := cctx.Default()
	l, _, _ := newLexer(t, "a.c", "`", ctx)
	tok := l.Next()
	require.Equal(t, token.ERROR, tok.Kind)
	next := l.Next()
	require.Equal(t, token.EOF, next.Kind)
}

func TestPositionMonotonicity(t *testing.T) {
	ctx := cctx.Default()
	l, _, _ := newLexer(t, "a.c", "int x = 1;\nint y = 2;\n", ctx)
	toks := allTokens(t, l)
	for i := 1; i < len(toks); i++ {
		prev := toks[i-1].Span.Start.Offset
		cur := toks[i].Span.Start.Offset
		require.GreaterOrEqual(t, cur, prev)
	}
}

func TestEmptyInputYieldsEOF(t *testing.T) {
	ctx := cctx.Default()
	l, _, _ := newLexer(t, "a.c", "", ctx)
	tok := l.Next()
	require.Equal(t, token.EOF, tok.Kind)
	require.Equal(t, token.EOF, l.Next().Kind)
}
