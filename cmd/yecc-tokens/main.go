// Command yecc-tokens runs the lexer over a single file and prints its
// token stream, one token per line (or, with --json, one JSON object per
// line). It exists for manual inspection of the pipeline and as a thin
// integration-test surface; the real entry point is the lexer package.
//
// Grounded on confucianzuoyuan-zcc's main.go argument handling, replaced
// with github.com/alecthomas/kong per the syncthing-syncthing CLI idiom
// instead of the teacher's hand-rolled parseArgs loop.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Yeint-herp/yecc/cctx"
	"github.com/Yeint-herp/yecc/diag"
	"github.com/Yeint-herp/yecc/internal/intern"
	"github.com/Yeint-herp/yecc/internal/stream"
	"github.com/Yeint-herp/yecc/lexer"
	"github.com/Yeint-herp/yecc/token"
)

type cli struct {
	File string `arg:"" help:"C source file to lex." type:"existingfile"`

	Std        string `default:"c17" help:"Language standard: c89, c99, c11, c17, c23."`
	GNU        bool   `default:"true" negatable:"" help:"Accept GNU extensions."`
	Pedantic   bool   `help:"Warn on every extension used."`
	Trigraphs  bool   `help:"Translate ??x trigraph sequences (and the <: :> <% %> %: %:%: digraphs)."`
	WcharBits  int    `default:"32" help:"Width of wchar_t for wide literals: 8, 16, or 32."`
	NoFloat    bool   `help:"Reject floating-point literals outright."`
	SoftFloat  bool   `help:"Select soft-float mode; floating-point literals are still lexed and their values computed."`
	Werror     bool   `help:"Treat every enabled warning as an error."`
	JSON       bool   `help:"Print one JSON object per token instead of plain text."`
}

func stdFromFlag(s string) (cctx.Std, error) {
	switch s {
	case "c89":
		return cctx.C89, nil
	case "c99":
		return cctx.C99, nil
	case "c11":
		return cctx.C11, nil
	case "c17":
		return cctx.C17, nil
	case "c23":
		return cctx.C23, nil
	default:
		return 0, fmt.Errorf("unknown standard %q", s)
	}
}

func (c *cli) buildContext() (*cctx.Context, error) {
	std, err := stdFromFlag(c.Std)
	if err != nil {
		return nil, err
	}
	ctx := cctx.Default()
	ctx.Std = std
	ctx.GNUExtensions = c.GNU
	ctx.Pedantic = c.Pedantic
	ctx.EnableTrigraphs = c.Trigraphs
	ctx.WarningsAsErrors = c.Werror

	switch c.WcharBits {
	case 8:
		ctx.WcharBits = cctx.Wchar8
	case 16:
		ctx.WcharBits = cctx.Wchar16
	case 32:
		ctx.WcharBits = cctx.Wchar32
	default:
		return nil, fmt.Errorf("invalid --wchar-bits %d: must be 8, 16, or 32", c.WcharBits)
	}

	switch {
	case c.NoFloat:
		ctx.FloatMode = cctx.FloatDisabled
	case c.SoftFloat:
		ctx.FloatMode = cctx.FloatSoft
	default:
		ctx.FloatMode = cctx.FloatFull
	}
	return ctx, nil
}

// jsonToken is the wire shape printed with --json: a flattened,
// self-describing view of token.Token that omits fields the token's kind
// leaves zero.
type jsonToken struct {
	Kind     string `json:"kind"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Spelling string `json:"spelling,omitempty"`
	IVal     uint64 `json:"ival,omitempty"`
	Base     string `json:"base,omitempty"`
	FVal     float64 `json:"fval,omitempty"`
	CharVal  int64   `json:"charval,omitempty"`
	Bytes    []byte  `json:"bytes,omitempty"`
	U16      []uint16 `json:"u16,omitempty"`
	U32      []uint32 `json:"u32,omitempty"`
}

func baseString(b token.Base) string {
	switch b {
	case token.BaseDec:
		return "dec"
	case token.BaseHex:
		return "hex"
	case token.BaseOctal:
		return "octal"
	case token.BaseBinary:
		return "binary"
	default:
		return ""
	}
}

func toJSONToken(tok token.Token, in *intern.Interner) jsonToken {
	jt := jsonToken{
		Kind:  tok.Kind.String(),
		Start: tok.Span.Start.String(),
		End:   tok.Span.End.String(),
	}
	switch tok.Kind {
	case token.IDENTIFIER, token.HEADER_NAME, token.ERROR:
		jt.Spelling = in.Lookup(intern.Ref(tok.Spelling))
	case token.INTEGER_CONSTANT:
		jt.IVal = tok.IVal
		jt.Base = baseString(tok.Base)
	case token.FLOATING_CONSTANT:
		jt.FVal = tok.FVal
	case token.CHARACTER_CONSTANT:
		jt.CharVal = tok.CharValue
	case token.STRING_LITERAL:
		jt.Bytes = tok.Bytes
		jt.U16 = tok.U16
		jt.U32 = tok.U32
	default:
		if token.IsKeyword(tok.Kind) || token.IsDirectiveKeyword(tok.Kind) {
			jt.Spelling = in.Lookup(intern.Ref(tok.Spelling))
		}
	}
	return jt
}

func printPlain(w io.Writer, tok token.Token, in *intern.Interner) {
	switch tok.Kind {
	case token.IDENTIFIER, token.HEADER_NAME:
		fmt.Fprintf(w, "%s %-16s %q\n", tok.Span.Start, tok.Kind, in.Lookup(intern.Ref(tok.Spelling)))
	case token.INTEGER_CONSTANT:
		fmt.Fprintf(w, "%s %-16s %d\n", tok.Span.Start, tok.Kind, tok.IVal)
	case token.FLOATING_CONSTANT:
		fmt.Fprintf(w, "%s %-16s %g\n", tok.Span.Start, tok.Kind, tok.FVal)
	case token.CHARACTER_CONSTANT:
		fmt.Fprintf(w, "%s %-16s %d\n", tok.Span.Start, tok.Kind, tok.CharValue)
	case token.STRING_LITERAL:
		fmt.Fprintf(w, "%s %-16s %d bytes\n", tok.Span.Start, tok.Kind, len(tok.Bytes)+2*len(tok.U16)+4*len(tok.U32))
	case token.ERROR:
		fmt.Fprintf(w, "%s %-16s %q\n", tok.Span.Start, tok.Kind, in.Lookup(intern.Ref(tok.Spelling)))
	default:
		fmt.Fprintf(w, "%s %-16s\n", tok.Span.Start, tok.Kind)
	}
}

// run executes the CLI against args (excluding the program name),
// writing token output to stdout and diagnostics to stderr. It is called
// directly from main and from integration tests, so nothing here calls
// os.Exit itself.
func run(args []string, stdout, stderr io.Writer) error {
	var c cli
	parser, err := kong.New(&c, kong.Writers(stdout, stderr), kong.Exit(func(int) {}))
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	ctx, err := c.buildContext()
	if err != nil {
		return err
	}

	s, err := stream.Open(c.File)
	if err != nil {
		return err
	}
	defer s.Close()

	in := intern.New()
	sink := diag.New(stderr, diag.NewFileSource())
	lx := lexer.New(s, ctx, in, sink)

	enc := json.NewEncoder(stdout)
	for {
		tok := lx.Next()
		if c.JSON {
			if err := enc.Encode(toJSONToken(tok, in)); err != nil {
				return err
			}
		} else {
			printPlain(stdout, tok, in)
		}
		if tok.Kind == token.EOF {
			break
		}
	}

	if sink.ErrorCount() > 0 {
		return fmt.Errorf("%d error(s)", sink.ErrorCount())
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
