package literal

import (
	"testing"

	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/token"
	"github.com/stretchr/testify/require"
)

// testSource is a minimal in-memory Source for exercising decoders
// without pulling in internal/stream or internal/translate.
type testSource struct {
	b   []byte
	pos int
}

func newTestSource(s string) *testSource { return &testSource{b: []byte(s)} }

func (t *testSource) Peek() int {
	if t.pos >= len(t.b) {
		return -1
	}
	return int(t.b[t.pos])
}

func (t *testSource) Next() int {
	c := t.Peek()
	if c != -1 {
		t.pos++
	}
	return c
}

func (t *testSource) Position() token.Position {
	return token.Position{Offset: t.pos}
}

func TestParseIntSuffix(t *testing.T) {
	cases := []struct {
		suffix string
		ok     bool
		flags  token.Flag
	}{
		{"", true, 0},
		{"u", true, token.FlagUnsigned},
		{"U", true, token.FlagUnsigned},
		{"l", true, token.FlagLong},
		{"LL", true, token.FlagLongLong},
		{"ul", true, token.FlagUnsigned | token.FlagLong},
		{"llu", true, token.FlagUnsigned | token.FlagLongLong},
		{"lL", false, 0},
		{"uu", false, 0},
		{"lll", false, 0},
		{"x", false, 0},
	}
	for _, c := range cases {
		flags, ok := ParseIntSuffix(c.suffix)
		require.Equal(t, c.ok, ok, "suffix %q", c.suffix)
		if ok {
			require.Equal(t, c.flags, flags, "suffix %q", c.suffix)
		}
	}
}

func TestReadNumberDecimalInteger(t *testing.T) {
	src := newTestSource("12345")
	n := ReadNumber(src, true, false)
	require.False(t, n.Malformed)
	require.False(t, n.IsFloat)
	require.Equal(t, token.BaseDec, n.Base)
	require.Equal(t, uint64(12345), n.IVal)
}

func TestReadNumberHexInteger(t *testing.T) {
	src := newTestSource("0x1A2Bu")
	n := ReadNumber(src, true, false)
	require.False(t, n.Malformed)
	require.Equal(t, token.BaseHex, n.Base)
	require.Equal(t, uint64(0x1A2B), n.IVal)
	require.True(t, n.IFlags.Has(token.FlagUnsigned))
}

func TestReadNumberBinaryInteger(t *testing.T) {
	src := newTestSource("0b1011")
	n := ReadNumber(src, true, false)
	require.False(t, n.Malformed)
	require.Equal(t, token.BaseBinary, n.Base)
	require.Equal(t, uint64(0b1011), n.IVal)
}

func TestReadNumberOctalBadDigit(t *testing.T) {
	src := newTestSource("089")
	n := ReadNumber(src, true, false)
	require.True(t, n.Malformed)
}

func TestReadNumberDigitSeparators(t *testing.T) {
	src := newTestSource("1'000'000")
	n := ReadNumber(src, true, false)
	require.False(t, n.Malformed)
	require.Equal(t, uint64(1000000), n.IVal)
}

func TestReadNumberMisplacedSeparator(t *testing.T) {
	src := newTestSource("1''0")
	n := ReadNumber(src, true, false)
	require.True(t, n.Malformed)
}

func TestReadNumberDecimalFloat(t *testing.T) {
	src := newTestSource("3.14")
	n := ReadNumber(src, true, false)
	require.True(t, n.IsFloat)
	require.False(t, n.Malformed)
	require.InDelta(t, 3.14, n.FVal, 1e-9)
}

func TestReadNumberFloatExponentNoDigits(t *testing.T) {
	src := newTestSource("1e")
	n := ReadNumber(src, true, false)
	require.True(t, n.IsFloat)
	require.True(t, n.Malformed)
}

func TestReadNumberHexFloat(t *testing.T) {
	src := newTestSource("0x1.8p3")
	n := ReadNumber(src, true, false)
	require.True(t, n.IsFloat)
	require.False(t, n.Malformed)
	require.Equal(t, token.FloatHex, n.FStyle)
	require.InDelta(t, 12.0, n.FVal, 1e-9)
}

func TestReadNumberHexFloatMissingExponent(t *testing.T) {
	src := newTestSource("0x1.8")
	n := ReadNumber(src, true, false)
	require.True(t, n.Malformed)
}

func TestReadNumberImaginarySuffix(t *testing.T) {
	src := newTestSource("2.0i")
	n := ReadNumber(src, true, false)
	require.False(t, n.Malformed)
	require.True(t, n.Imaginary)
}

func TestReadNumberBadFloatSuffix(t *testing.T) {
	src := newTestSource("1.0q")
	n := ReadNumber(src, true, false)
	require.True(t, n.Malformed)
}

func TestReadEscapeSimple(t *testing.T) {
	src := newTestSource("n")
	v, events := ReadEscape(src, cctx.Default())
	require.Equal(t, int32('\n'), v)
	require.Empty(t, events)
}

func TestReadEscapeHexRequiresDigit(t *testing.T) {
	src := newTestSource("xz")
	_, events := ReadEscape(src, cctx.Default())
	require.Len(t, events, 1)
	require.Equal(t, WarnBadHexEscape, events[0].Warning)
}

func TestDecodeBodyPlainUniversalCharNameEscape(t *testing.T) {
	src := newTestSource("\\u0041\"")
	ctx := cctx.Default()
	body := DecodeBody(src, ctx, token.EncPlain, '"')
	require.True(t, body.Terminated)
	require.Len(t, body.Events, 1)
	require.Equal(t, WarnPlainNonASCII, body.Events[0].Warning)
	require.Equal(t, int32(0x41), body.CodePoints[0])
}

func TestDecodeBodyPlainOrdinaryEscapeNoWarning(t *testing.T) {
	src := newTestSource(`\n"`)
	ctx := cctx.Default()
	body := DecodeBody(src, ctx, token.EncPlain, '"')
	require.True(t, body.Terminated)
	require.Empty(t, body.Events)
	require.Equal(t, int32('\n'), body.CodePoints[0])
}

func TestDecodeBodyUnterminated(t *testing.T) {
	src := newTestSource("abc")
	ctx := cctx.Default()
	body := DecodeBody(src, ctx, token.EncPlain, '"')
	require.False(t, body.Terminated)
}

func TestPackMulticharMatchesSpecExample(t *testing.T) {
	cps := []int32{'A', 'B', 'C'}
	v := PackMultichar(cps, 8)
	require.Equal(t, int64(0x43), v)
}

func TestEncodeUTF8ASCII(t *testing.T) {
	out := EncodeUTF8([]int32{'h', 'i'})
	require.Equal(t, []byte{'h', 'i', 0}, out)
}

func TestEncodeUTF8MultiByte(t *testing.T) {
	out := EncodeUTF8([]int32{0x20AC}) // EURO SIGN
	require.Equal(t, []byte{0xE2, 0x82, 0xAC, 0}, out)
}

func TestEncodeUTF16SurrogatePair(t *testing.T) {
	out := EncodeUTF16([]int32{0x1F600})
	require.Equal(t, []uint16{0xD83D, 0xDE00, 0}, out)
}

func TestEncodeMask8Truncates(t *testing.T) {
	out := EncodeMask8([]int32{0x141})
	require.Equal(t, byte(0x41), out[0])
}

func TestEncodeWideSelectsWidth(t *testing.T) {
	ctx := cctx.Default()
	ctx.WcharBits = cctx.Wchar16
	r := EncodeWide([]int32{'x'}, ctx)
	require.Equal(t, cctx.Wchar16, r.Bits)
	require.Equal(t, []uint16{'x', 0}, r.U16)
}

func TestDecodeUTF8SeqOverlongRejected(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of NUL.
	src := newTestSource(string([]byte{0xC0, 0x80}))
	_, ok := DecodeUTF8Seq(src)
	require.False(t, ok)
}

func TestDecodeUTF8SeqValid(t *testing.T) {
	src := newTestSource("é") // Latin small letter e with acute, 2 bytes
	_, ok := DecodeUTF8Seq(src)
	require.True(t, ok)
}
