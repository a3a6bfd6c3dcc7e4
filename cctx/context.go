// Package cctx implements the compiler context (component C4): language
// standard, dialect flags, warning masks, and target parameters consumed
// by the lexer, keyword table, and literal decoders.
//
// Grounded on confucianzuoyuan-zcc's package-level opt_* variables and
// main.go's argument handling, generalized into the struct spec.md §4.4
// describes instead of global mutable state.
package cctx

// Std is a supported C language standard.
type Std int

const (
	C89 Std = iota
	C99
	C11
	C17
	C23
)

func (s Std) String() string {
	switch s {
	case C89:
		return "C89"
	case C99:
		return "C99"
	case C11:
		return "C11"
	case C17:
		return "C17"
	case C23:
		return "C23"
	default:
		return "Std(?)"
	}
}

// FloatMode controls whether floating literals are accepted at all, and
// whether they are fully evaluated.
type FloatMode int

const (
	FloatFull FloatMode = iota
	FloatSoft
	FloatDisabled
)

// Warning identifies one diagnosable extension/style condition. Bits are
// combined into Context's enabled/error masks.
type Warning uint32

const (
	WarnPedantic Warning = 1 << iota
	WarnTrigraphs
	WarnMultichar
	WarnStringWidthPromotion
	WarnExtension
	WarnDeprecated
	WarnOverflow
	WarnExtraToken
	WarnUnterminatedComment

	// WarnAll enables every bit defined above; used as a default mask.
	WarnAll = WarnPedantic | WarnTrigraphs | WarnMultichar |
		WarnStringWidthPromotion | WarnExtension | WarnDeprecated |
		WarnOverflow | WarnExtraToken | WarnUnterminatedComment
)

// WcharBits is the target's wide-character bit width.
type WcharBits int

const (
	Wchar8  WcharBits = 8
	Wchar16 WcharBits = 16
	Wchar32 WcharBits = 32
)

// Context carries every flag the lexer, keyword table, and literal
// decoders consult. It has no behavior of its own beyond the accessors
// below; construct one per compilation (spec.md §9 "Concurrency" note).
type Context struct {
	Std            Std
	GNUExtensions  bool
	Pedantic       bool
	EnableTrigraphs bool
	WcharBits      WcharBits
	FloatMode      FloatMode
	WarningsAsErrors bool

	WarningEnabledMask Warning
	WarningErrorMask   Warning

	// MaxErrors bounds how many ERROR tokens a caller will tolerate
	// before giving up; the lexer itself never consults this (spec.md
	// §7: "the caller ... may count errors and stop"), but it travels
	// with the context as the natural place to configure it from a CLI.
	MaxErrors int
}

// Default returns a Context approximating a typical modern GNU-extended
// C compiler invocation: C17, GNU extensions on, trigraphs off, all
// warnings enabled but not promoted to errors, 32-bit wchar_t.
func Default() *Context {
	return &Context{
		Std:                C17,
		GNUExtensions:      true,
		EnableTrigraphs:    false,
		WcharBits:          Wchar32,
		FloatMode:          FloatFull,
		WarningEnabledMask: WarnAll,
	}
}

// StdAtLeast reports whether ctx's standard is at least v.
func (ctx *Context) StdAtLeast(v Std) bool {
	return ctx.Std >= v
}

// WarningEnabled reports whether diagnostics for w should be emitted
// at all.
func (ctx *Context) WarningEnabled(w Warning) bool {
	return ctx.WarningEnabledMask&w != 0
}

// WarningAsError reports whether an enabled warning w should be
// escalated to an error: either WarningsAsErrors is set, or w is
// individually present in the error mask.
func (ctx *Context) WarningAsError(w Warning) bool {
	if !ctx.WarningEnabled(w) {
		return false
	}
	return ctx.WarningsAsErrors || ctx.WarningErrorMask&w != 0
}
