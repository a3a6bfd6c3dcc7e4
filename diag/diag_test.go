package diag_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yeint-herp/yecc/diag"
	"github.com/Yeint-herp/yecc/token"
)

func span(file string, line, startCol, endCol, off int) token.Span {
	return token.Span{
		Start: token.Position{File: file, Line: line, Col: startCol, Offset: off},
		End:   token.Position{File: file, Line: line, Col: endCol, Offset: off + (endCol - startCol)},
	}
}

func TestEmitHeaderAndExcerpt(t *testing.T) {
	src := diag.NewStringSource("foo.c", "x = y + 1;\n")
	var buf bytes.Buffer
	sink := diag.New(&buf, src)

	sink.Emit(diag.ERROR, span("foo.c", 1, 5, 6, 4), "undeclared identifier %q", "y")

	out := buf.String()
	require.Contains(t, out, "yecc: foo.c:1:5")
	require.Contains(t, out, "x = y + 1;")
	require.Contains(t, out, "error: undeclared identifier \"y\"")
	require.Equal(t, 1, sink.ErrorCount())
}

func TestWarningsDoNotCountAsErrors(t *testing.T) {
	src := diag.NewStringSource("foo.c", "int x;\n")
	var buf bytes.Buffer
	sink := diag.New(&buf, src)
	sink.Emit(diag.WARNING, span("foo.c", 1, 1, 4, 0), "extension used")
	require.Equal(t, 0, sink.ErrorCount())
	require.Contains(t, buf.String(), "warning: extension used")
}

func TestContextOmitsHeader(t *testing.T) {
	src := diag.NewStringSource("foo.c", "int x;\n")
	var buf bytes.Buffer
	sink := diag.New(&buf, src)
	sink.Context(diag.NOTE, span("foo.c", 1, 1, 4, 0), "declared here")
	require.NotContains(t, buf.String(), "yecc:")
	require.Contains(t, buf.String(), "note: declared here")
}
