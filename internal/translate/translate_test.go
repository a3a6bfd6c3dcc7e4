package translate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/internal/stream"
	"github.com/Yeint-herp/yecc/internal/translate"
)

func readAll(tr *translate.Translator) string {
	var out []byte
	for {
		c := tr.Next()
		if c == translate.EOF {
			break
		}
		out = append(out, byte(c))
	}
	return string(out)
}

func TestLineSplice(t *testing.T) {
	s := stream.OpenBytes("t.c", []byte("foo\\\nbar"))
	ctx := cctx.Default()
	tr := translate.New(s, ctx, nil)
	require.Equal(t, "foobar", readAll(tr))
}

func TestMultipleSplicesFuse(t *testing.T) {
	s := stream.OpenBytes("t.c", []byte("foo\\\nbar\\\n_baz"))
	ctx := cctx.Default()
	tr := translate.New(s, ctx, nil)
	require.Equal(t, "foobar_baz", readAll(tr))
}

func TestTrigraphTranslation(t *testing.T) {
	s := stream.OpenBytes("t.c", []byte("a??=b"))
	ctx := cctx.Default()
	ctx.EnableTrigraphs = true
	tr := translate.New(s, ctx, nil)
	require.Equal(t, "a#b", readAll(tr))
}

func TestTrigraphDisabledNotTranslated(t *testing.T) {
	s := stream.OpenBytes("t.c", []byte("a??=b"))
	ctx := cctx.Default()
	ctx.EnableTrigraphs = false
	var events []translate.TrigraphEvent
	tr := translate.New(s, ctx, func(e translate.TrigraphEvent) { events = append(events, e) })
	require.Equal(t, "a??=b", readAll(tr))
	require.Len(t, events, 1)
	require.False(t, events[0].Translated)
}

func TestTrigraphProducedBackslashReentersSplice(t *testing.T) {
	// ??/ -> '\', followed by a newline, should elide like a normal splice.
	s := stream.OpenBytes("t.c", []byte("foo??/\nbar"))
	ctx := cctx.Default()
	ctx.EnableTrigraphs = true
	tr := translate.New(s, ctx, nil)
	require.Equal(t, "foobar", readAll(tr))
}

func TestUngetRestoresTranslatedPosition(t *testing.T) {
	s := stream.OpenBytes("t.c", []byte("ab"))
	ctx := cctx.Default()
	tr := translate.New(s, ctx, nil)
	require.Equal(t, int('a'), tr.Next())
	require.Equal(t, int('b'), tr.Next())
	require.True(t, tr.Unget())
	require.Equal(t, int('b'), tr.Next())
}

func TestPeekNRestoresPosition(t *testing.T) {
	s := stream.OpenBytes("t.c", []byte("abcdef"))
	ctx := cctx.Default()
	tr := translate.New(s, ctx, nil)
	window := tr.PeekN(3)
	require.Equal(t, []int{'a', 'b', 'c'}, window)
	require.Equal(t, int('a'), tr.Next())
}
