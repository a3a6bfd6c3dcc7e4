package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yeint-herp/yecc/token"
)

func TestIsKeyword(t *testing.T) {
	require.True(t, token.IsKeyword(token.KW_INT))
	require.True(t, token.IsKeyword(token.KW_RETURN))
	require.False(t, token.IsKeyword(token.PP_INCLUDE))
	require.False(t, token.IsKeyword(token.IDENTIFIER))
}

func TestIsDirectiveKeyword(t *testing.T) {
	require.True(t, token.IsDirectiveKeyword(token.PP_INCLUDE))
	require.True(t, token.IsDirectiveKeyword(token.PP_DEFINE))
	require.False(t, token.IsDirectiveKeyword(token.PP_HASH))
	require.False(t, token.IsDirectiveKeyword(token.KW_INT))
}

func TestIsPunctuator(t *testing.T) {
	require.True(t, token.IsPunctuator(token.PP_HASH))
	require.True(t, token.IsPunctuator(token.PP_HASHHASH))
	require.True(t, token.IsPunctuator(token.PLUS))
	require.False(t, token.IsPunctuator(token.IDENTIFIER))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "IDENTIFIER", token.IDENTIFIER.String())
	require.Equal(t, "EOF", token.EOF.String())
}

func TestEncodingFlagRoundTrip(t *testing.T) {
	for _, enc := range []token.Encoding{token.EncPlain, token.EncUTF8, token.EncUTF16, token.EncUTF32, token.EncWide} {
		require.Equal(t, enc, token.EncodingFromFlag(enc.Flag()))
	}
}

func TestSpanLen(t *testing.T) {
	sp := token.Span{
		Start: token.Position{File: "a.c", Line: 1, Col: 1, Offset: 0},
		End:   token.Position{File: "a.c", Line: 1, Col: 4, Offset: 3},
	}
	require.Equal(t, 3, sp.Len())
}
