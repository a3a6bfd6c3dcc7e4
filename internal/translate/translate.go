// Package translate implements the translation phases (component C6):
// line-splice collapsing and trigraph/digraph recognition, layered
// transparently over internal/stream so every consuming read the lexer
// performs sees already-translated bytes.
//
// Grounded on confucianzuoyuan-zcc's removeBackslashNewline in
// tokenize.go, which performs line splicing once over the whole buffer
// before tokenizing. spec.md §4.6 requires it to be interleaved with
// peek/unget instead, and adds trigraph translation (absent from the
// teacher), so this package is a genuine streaming generalization rather
// than a line-for-line port.
package translate

import (
	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/internal/stream"
	"github.com/Yeint-herp/yecc/token"
)

// EOF mirrors stream.EOF for translated reads.
const EOF = stream.EOF

var trigraphs = map[byte]byte{
	'=': '#', '/': '\\', '\'': '^', '(': '[', ')': ']', '!': '|', '<': '{', '>': '}', '-': '~',
}

// TrigraphEvent is reported via OnTrigraph whenever a "??x" sequence is
// recognized, whether or not trigraphs are enabled.
type TrigraphEvent struct {
	Pos         token.Position
	Raw         string // e.g. "??/"
	Replacement byte   // the byte it maps to
	Translated  bool   // false when trigraphs are disabled (not applied)
}

// Translator wraps a Stream with line-splice and trigraph translation.
// Construct one per Lexer; it owns no resources beyond the Stream
// reference it was given.
type Translator struct {
	s          *stream.Stream
	ctx        *cctx.Context
	onTrigraph func(TrigraphEvent)

	// rawLens records, for each translated byte currently consumed and
	// remembered, how many raw stream bytes it took to produce -- so
	// Unget can step the underlying stream back by the right amount.
	rawLens []int
}

// New constructs a Translator. onTrigraph may be nil.
func New(s *stream.Stream, ctx *cctx.Context, onTrigraph func(TrigraphEvent)) *Translator {
	return &Translator{s: s, ctx: ctx, onTrigraph: onTrigraph}
}

// Stream returns the underlying byte stream, for callers that need raw
// position/blob access (diagnostics, header-name raw scanning).
func (t *Translator) Stream() *stream.Stream { return t.s }

// Position returns the stream's current source position.
func (t *Translator) Position() token.Position { return t.s.Position() }

// EOFAt reports whether the stream is at end of file. Because
// translation never produces output from nothing, EOF-after-translation
// coincides with raw EOF except when trailing bytes are entirely
// consumed by a final splice; callers should prefer checking the result
// of Peek() against EOF.
func (t *Translator) EOFAt() bool { return t.s.EOFAt() }

// translateOne consumes raw bytes from the stream and returns exactly
// one translated byte (or EOF), recording how many raw bytes it took.
func (t *Translator) translateOne() int {
	rawLen := 0
	for {
		c := t.s.Peek()
		if c == EOF {
			if rawLen > 0 {
				t.rawLens = append(t.rawLens, rawLen)
			}
			return EOF
		}

		// Line splice: backslash immediately followed by newline or by
		// \r\n (the stream passes raw bytes through unchanged).
		if c == '\\' {
			n1 := t.s.PeekAt(1)
			if n1 == '\n' {
				t.s.Next()
				t.s.Next()
				rawLen += 2
				continue
			}
			if n1 == '\r' && t.s.PeekAt(2) == '\n' {
				t.s.Next()
				t.s.Next()
				t.s.Next()
				rawLen += 3
				continue
			}
		}

		// Trigraphs.
		if c == '?' && t.s.PeekAt(1) == '?' {
			if rep, ok := trigraphs[byte(t.s.PeekAt(2))]; ok {
				pos := t.s.Position()
				enabled := t.ctx.EnableTrigraphs
				if enabled {
					t.s.Next()
					t.s.Next()
					t.s.Next()
					rawLen += 3
					t.reportTrigraph(pos, rep, true)
					if rep == '\\' {
						// A produced '\\' re-enters splice logic: if
						// followed by a newline, elide it and keep
						// going instead of yielding the backslash.
						if t.s.Peek() == '\n' {
							t.s.Next()
							rawLen++
							continue
						}
					}
					t.rawLens = append(t.rawLens, rawLen)
					return int(rep)
				}
				t.reportTrigraph(pos, rep, false)
				// Not translated: fall through and emit '?' as a plain
				// byte.
			}
		}

		t.s.Next()
		rawLen++
		t.rawLens = append(t.rawLens, rawLen)
		return int(c)
	}
}

func (t *Translator) reportTrigraph(pos token.Position, rep byte, translated bool) {
	if t.onTrigraph == nil {
		return
	}
	raw := "??" + string(inverseTrigraph(rep))
	t.onTrigraph(TrigraphEvent{Pos: pos, Raw: raw, Replacement: rep, Translated: translated})
}

func inverseTrigraph(rep byte) byte {
	for k, v := range trigraphs {
		if v == rep {
			return k
		}
	}
	return '?'
}

const pushbackDepth = 16

// Next consumes and returns the next translated byte.
func (t *Translator) Next() int {
	c := t.translateOne()
	if len(t.rawLens) > pushbackDepth {
		t.rawLens = t.rawLens[1:]
	}
	return c
}

// Unget steps back by one translated byte, restoring the stream to
// exactly the position before that byte was produced.
func (t *Translator) Unget() bool {
	if len(t.rawLens) == 0 {
		return false
	}
	n := t.rawLens[len(t.rawLens)-1]
	t.rawLens = t.rawLens[:len(t.rawLens)-1]
	for i := 0; i < n; i++ {
		if !t.s.Unget() {
			return false
		}
	}
	return true
}

// Peek returns the next translated byte without consuming it.
func (t *Translator) Peek() int {
	c := t.Next()
	if c != EOF {
		t.Unget()
	}
	return c
}

// PeekN materializes up to n translated bytes of lookahead without
// changing the logical position: it saves the raw stream position,
// performs the reads, then seeks back and restores the saved column
// (Seek recomputes the column from offset 0, which would count bytes
// skipped with Stream.ResetCol, such as a stripped BOM).
func (t *Translator) PeekN(n int) []int {
	saved := t.s.Position()
	savedOff := int64(saved.Offset)
	savedLens := append([]int(nil), t.rawLens...)

	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		c := t.Next()
		out = append(out, c)
		if c == EOF {
			break
		}
	}

	t.s.Seek(savedOff)
	t.s.ResetCol(saved.Col)
	t.rawLens = savedLens
	return out
}
