package literal

import (
	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/token"
)

// Body is the decoded intermediate form of a string or character
// literal: a sequence of Unicode scalars (or, for plain literals, raw
// 0..255 code values) plus every diagnosable event noticed while
// decoding it.
type Body struct {
	CodePoints []int32
	Events     []Event
	Terminated bool
}

// DecodeBody reads literal content from src up to (and consuming)
// terminator, applying escape decoding and UTF-8 validation per the
// encoding kind. src's next byte is the first content byte, i.e. the
// opening quote must already have been consumed by the caller.
//
// Grounded on confucianzuoyuan-zcc's readStringLiteral /
// readUTF16StringLiteral / readUTF32StringLiteral / readCharLiteral,
// unified into one body reader parameterized by encoding (the teacher
// has near-duplicate loops per encoding; spec.md's five-encoding matrix
// is better served by one loop switching on a small set of rules).
func DecodeBody(src Source, ctx *cctx.Context, enc token.Encoding, terminator int) Body {
	var b Body
	for {
		c := src.Peek()
		if c == -1 || c == '\n' {
			b.Terminated = false
			return b
		}
		if c == terminator {
			src.Next()
			b.Terminated = true
			return b
		}
		if c == '\\' {
			escPos := src.Position()
			src.Next()
			escChar := src.Peek()
			val, events := ReadEscape(src, ctx)
			if enc == token.EncPlain && (escChar == 'u' || escChar == 'U') {
				// \u/\U are errors in plain character data per
				// spec.md §4.7.6; they still contribute a masked
				// scalar rather than aborting the literal.
				val &= 0xFF
				b.Events = append(b.Events, Event{Warning: WarnPlainNonASCII, Pos: escPos})
			}
			b.CodePoints = append(b.CodePoints, val)
			b.Events = append(b.Events, events...)
			continue
		}
		if c >= 0x80 {
			if enc == token.EncPlain {
				pos := src.Position()
				src.Next()
				b.CodePoints = append(b.CodePoints, '?')
				b.Events = append(b.Events, Event{Warning: WarnBadUTF8, Pos: pos})
				continue
			}
			pos := src.Position()
			cp, ok := DecodeUTF8Seq(src)
			if !ok {
				b.Events = append(b.Events, Event{Warning: WarnBadUTF8, Pos: pos})
			}
			b.CodePoints = append(b.CodePoints, int32(cp))
			continue
		}
		src.Next()
		b.CodePoints = append(b.CodePoints, int32(c))
	}
}

// PackMultichar packs cps big-endian into one scalar, truncating to
// unitBits at every step -- equivalent to "pack then keep only the low
// unitBits bits" but expressed the way spec.md §4.7.7 describes it
// ("pack bytes big-endian into the stored scalar").
func PackMultichar(cps []int32, unitBits uint) int64 {
	var result uint64
	mask := (uint64(1) << unitBits) - 1
	for _, cp := range cps {
		result = ((result << unitBits) | (uint64(cp) & mask)) & mask
	}
	return int64(result)
}

// UnitBitsForEncoding returns the natural code-unit width for a string
// or character encoding, resolving EncWide via ctx.WcharBits.
func UnitBitsForEncoding(enc token.Encoding, ctx *cctx.Context) uint {
	switch enc {
	case token.EncPlain, token.EncUTF8:
		return 8
	case token.EncUTF16:
		return 16
	case token.EncUTF32:
		return 32
	case token.EncWide:
		return uint(ctx.WcharBits)
	default:
		return 8
	}
}
