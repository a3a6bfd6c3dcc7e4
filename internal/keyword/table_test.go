package keyword_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yeint-herp/yecc/internal/keyword"
	"github.com/Yeint-herp/yecc/token"
)

func TestPlainKeyword(t *testing.T) {
	k, e := keyword.Classify("int", false)
	require.Equal(t, token.KW_INT, k)
	require.NotNil(t, e)
}

func TestUnknownSpellingIsIdentifier(t *testing.T) {
	k, e := keyword.Classify("frobnicate", false)
	require.Equal(t, token.IDENTIFIER, k)
	require.Nil(t, e)
}

func TestDefinedDegradesOutsideDirective(t *testing.T) {
	k, e := keyword.Classify("defined", false)
	require.Equal(t, token.IDENTIFIER, k)
	require.Nil(t, e)
}

func TestDefinedInsideDirective(t *testing.T) {
	k, e := keyword.Classify("defined", true)
	require.Equal(t, token.PP_DEFINED, k)
	require.NotNil(t, e)
}

func TestRegularKeywordInsideDirectivePrefersWrongContextEntry(t *testing.T) {
	k, e := keyword.Classify("sizeof", true)
	require.Equal(t, token.KW_SIZEOF, k)
	require.NotNil(t, e)
	require.False(t, e.IsPreprocessor)
}

func TestIncludeDirectiveKeyword(t *testing.T) {
	k, e := keyword.Classify("include", true)
	require.Equal(t, token.PP_INCLUDE, k)
	require.True(t, e.IsPreprocessor)
}

func TestC23RemovedImaginary(t *testing.T) {
	entries := keyword.Lookup("_Imaginary")
	require.Len(t, entries, 1)
	require.Equal(t, keyword.StatusRemoved, entries[0].C23Status)
}
