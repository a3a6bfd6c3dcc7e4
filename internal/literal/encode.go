package literal

import "github.com/Yeint-herp/yecc/cctx"

// EncodeMask8 masks every code point to 8 bits -- the "plain" string
// encoding rule of spec.md §4.7.6 -- and NUL-terminates.
func EncodeMask8(cps []int32) []byte {
	out := make([]byte, 0, len(cps)+1)
	for _, cp := range cps {
		out = append(out, byte(cp&0xFF))
	}
	return append(out, 0)
}

// EncodeUTF8 encodes cps as standard 1-4 byte UTF-8, substituting U+FFFD
// for any code point beyond the Unicode range or in the surrogate range,
// and NUL-terminates.
//
// Grounded on confucianzuoyuan-zcc's unicode.go encodeUTF8, generalized
// from "write through a raw pointer into a fixed buffer" into an
// allocating encoder over a []int32.
func EncodeUTF8(cps []int32) []byte {
	out := make([]byte, 0, len(cps)+1)
	for _, cp := range cps {
		c := uint32(cp)
		if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
			c = 0xFFFD
		}
		out = appendUTF8(out, c)
	}
	return append(out, 0)
}

func appendUTF8(buf []byte, c uint32) []byte {
	switch {
	case c <= 0x7F:
		return append(buf, byte(c))
	case c <= 0x7FF:
		return append(buf, byte(0b11000000|(c>>6)), byte(0b10000000|(c&0x3F)))
	case c <= 0xFFFF:
		return append(buf,
			byte(0b11100000|(c>>12)),
			byte(0b10000000|((c>>6)&0x3F)),
			byte(0b10000000|(c&0x3F)))
	default:
		return append(buf,
			byte(0b11110000|(c>>18)),
			byte(0b10000000|((c>>12)&0x3F)),
			byte(0b10000000|((c>>6)&0x3F)),
			byte(0b10000000|(c&0x3F)))
	}
}

// EncodeUTF16 encodes cps as UTF-16 code units, using surrogate pairs
// for astral code points and substituting U+FFFD for invalid ones, and
// NUL-terminates.
//
// Grounded on confucianzuoyuan-zcc's readUTF16StringLiteral, generalized
// from "decode-and-reencode in one pass" into a standalone encoder over
// already-decoded code points (needed so adjacent-literal concatenation
// can re-encode a merged buffer).
func EncodeUTF16(cps []int32) []uint16 {
	out := make([]uint16, 0, len(cps)+1)
	for _, cp := range cps {
		c := uint32(cp)
		if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
			out = append(out, 0xFFFD)
			continue
		}
		if c < 0x10000 {
			out = append(out, uint16(c))
			continue
		}
		c -= 0x10000
		out = append(out, uint16(0xD800+((c>>10)&0x3FF)), uint16(0xDC00+(c&0x3FF)))
	}
	return append(out, 0)
}

// EncodeUTF32 encodes cps as one 32-bit unit per code point and
// NUL-terminates.
func EncodeUTF32(cps []int32) []uint32 {
	out := make([]uint32, 0, len(cps)+1)
	for _, cp := range cps {
		out = append(out, uint32(cp))
	}
	return append(out, 0)
}

// WideResult holds exactly one of Bytes/U16/U32, selected by
// ctx.WcharBits, plus whether any code point was clamped to U+FFFD for
// exceeding the target's representable range.
type WideResult struct {
	Bits    cctx.WcharBits
	Bytes   []byte
	U16     []uint16
	U32     []uint32
	Clamped bool
}

// EncodeWide encodes cps according to ctx.WcharBits, per spec.md
// §4.7.6's per-width rules, and NUL-terminates.
func EncodeWide(cps []int32, ctx *cctx.Context) WideResult {
	switch ctx.WcharBits {
	case cctx.Wchar8:
		out := make([]byte, 0, len(cps)+1)
		clamped := false
		for _, cp := range cps {
			if cp < 0 || cp > 0xFF {
				out = append(out, 0xFD) // low byte of U+FFFD
				clamped = true
				continue
			}
			out = append(out, byte(cp))
		}
		return WideResult{Bits: cctx.Wchar8, Bytes: append(out, 0), Clamped: clamped}
	case cctx.Wchar16:
		clamped := false
		for _, cp := range cps {
			if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
				clamped = true
			}
		}
		return WideResult{Bits: cctx.Wchar16, U16: EncodeUTF16(cps), Clamped: clamped}
	default: // Wchar32
		clamped := false
		for _, cp := range cps {
			if cp < 0 {
				clamped = true
			}
		}
		return WideResult{Bits: cctx.Wchar32, U32: EncodeUTF32(cps), Clamped: clamped}
	}
}
