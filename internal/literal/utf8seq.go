package literal

// DecodeUTF8Seq consumes one UTF-8 sequence from src, whose next byte is
// known to be >= 0x80 (a lead byte). It returns the decoded code point
// and whether the sequence was well-formed; on failure it returns
// U+FFFD, having consumed only the bytes it determined were invalid (the
// lead byte, plus any continuation bytes that did validate before a bad
// one was found).
func DecodeUTF8Seq(src Source) (rune, bool) {
	lead := src.Next()
	var n int
	var cp int32

	switch {
	case lead&0x80 == 0:
		return rune(lead), true
	case lead&0xE0 == 0xC0:
		n, cp = 1, int32(lead&0x1F)
	case lead&0xF0 == 0xE0:
		n, cp = 2, int32(lead&0x0F)
	case lead&0xF8 == 0xF0:
		n, cp = 3, int32(lead&0x07)
	default:
		return 0xFFFD, false
	}

	for i := 0; i < n; i++ {
		c := src.Peek()
		if c == -1 || c&0xC0 != 0x80 {
			return 0xFFFD, false
		}
		src.Next()
		cp = cp<<6 | int32(c&0x3F)
	}

	if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		return 0xFFFD, false
	}
	// Reject overlong encodings.
	minByLen := [...]int32{0, 0x80, 0x800, 0x10000}
	if n >= 1 && n <= 3 && cp < minByLen[n] {
		return 0xFFFD, false
	}
	return rune(cp), true
}
