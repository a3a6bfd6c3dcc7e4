package token

// Kind classifies a Token. The zero value is EOF; EOF and ERROR are
// explicit kinds like everything else.
type Kind int

const (
	EOF Kind = iota
	ERROR

	IDENTIFIER
	INTEGER_CONSTANT
	FLOATING_CONSTANT
	CHARACTER_CONSTANT
	STRING_LITERAL
	HEADER_NAME

	// Punctuators. PP_HASH and PP_HASHHASH double as the '#'/'##'
	// punctuator kinds regardless of whether they open a directive;
	// the lexer's directive-framing state is tracked separately.
	PP_HASH
	PP_HASHHASH
	SHL_ASSIGN // <<=
	SHR_ASSIGN // >>=
	ELLIPSIS   // ...
	SHL        // <<
	SHR        // >>
	AMP_AMP    // &&
	PIPE_PIPE  // ||
	ARROW      // ->
	PLUS_PLUS  // ++
	MINUS_MINUS
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	AMP_ASSIGN
	CARET_ASSIGN
	PIPE_ASSIGN
	LE
	GE
	EQ_EQ
	NOT_EQ
	QUESTION
	COLON
	SEMI
	COMMA
	DOT
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	LT
	GT
	ASSIGN
	BANG
	TILDE
	CARET
	AMP
	PIPE
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE

	// Preprocessor directive keywords.
	PP_INCLUDE
	PP_DEFINE
	PP_UNDEF
	PP_IF
	PP_IFDEF
	PP_IFNDEF
	PP_ELIF
	PP_ELSE
	PP_ENDIF
	PP_ERROR
	PP_LINE
	PP_PRAGMA
	PP_IMPORT
	PP_ELIFDEF
	PP_ELIFNDEF
	PP_EMBED
	PP_WARNING
	PP___HAS_INCLUDE
	PP___HAS_C_ATTRIBUTE
	PP___VA_OPT__
	PP_INCLUDE_NEXT
	PP_IDENT
	PP_SCCS
	PP_ASSERT
	PP_UNASSERT
	PP__ASSERT
	PP__ASSERT_ANY
	PP_DEFINED

	// Language keywords. Both spelling forms of an alternate-form
	// keyword (e.g. KW__BOOL and KW_BOOL) each get their own kind, per
	// spec.
	KW_AUTO
	KW_BREAK
	KW_CASE
	KW_CHAR
	KW_CONST
	KW_CONTINUE
	KW_DEFAULT
	KW_DO
	KW_DOUBLE
	KW_ELSE
	KW_ENUM
	KW_EXTERN
	KW_FLOAT
	KW_FOR
	KW_GOTO
	KW_IF
	KW_INT
	KW_LONG
	KW_REGISTER
	KW_RETURN
	KW_SHORT
	KW_SIGNED
	KW_SIZEOF
	KW_STATIC
	KW_STRUCT
	KW_SWITCH
	KW_TYPEDEF
	KW_UNION
	KW_UNSIGNED
	KW_VOID
	KW_VOLATILE
	KW_WHILE

	KW_INLINE
	KW_RESTRICT

	KW__BOOL
	KW_BOOL
	KW__COMPLEX
	KW__IMAGINARY

	KW__ALIGNAS
	KW_ALIGNAS
	KW__ALIGNOF
	KW_ALIGNOF
	KW__ATOMIC
	KW__GENERIC
	KW__NORETURN
	KW__STATIC_ASSERT
	KW_STATIC_ASSERT
	KW__THREAD_LOCAL
	KW_THREAD_LOCAL

	KW_TRUE
	KW_FALSE
	KW_NULLPTR
	KW_TYPEOF
	KW_TYPEOF_UNQUAL
	KW_CONSTEXPR
	KW__BITINT

	KW_ASM
	KW___ASM__
	KW___ATTRIBUTE__
	KW___EXTENSION__
	KW___RESTRICT
	KW___RESTRICT__
	KW___INLINE
	KW___INLINE__
	KW___THREAD
	KW___TYPEOF__

	maxKind
)

var kindNames = map[Kind]string{
	EOF: "EOF", ERROR: "ERROR",
	IDENTIFIER: "IDENTIFIER", INTEGER_CONSTANT: "INTEGER_CONSTANT",
	FLOATING_CONSTANT: "FLOATING_CONSTANT", CHARACTER_CONSTANT: "CHARACTER_CONSTANT",
	STRING_LITERAL: "STRING_LITERAL", HEADER_NAME: "HEADER_NAME",
	PP_HASH: "PP_HASH", PP_HASHHASH: "PP_HASHHASH",
}

// String renders a best-effort human-readable name. It is used only in
// diagnostics and tests, never in control flow.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	if n, ok := punctNames[k]; ok {
		return n
	}
	if n, ok := directiveKindNames[k]; ok {
		return n
	}
	if n, ok := keywordKindNames[k]; ok {
		return n
	}
	return "Kind(?)"
}

var punctNames = map[Kind]string{
	SHL_ASSIGN: "<<=", SHR_ASSIGN: ">>=", ELLIPSIS: "...", SHL: "<<", SHR: ">>",
	AMP_AMP: "&&", PIPE_PIPE: "||", ARROW: "->", PLUS_PLUS: "++", MINUS_MINUS: "--",
	PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", STAR_ASSIGN: "*=", SLASH_ASSIGN: "/=",
	PERCENT_ASSIGN: "%=", AMP_ASSIGN: "&=", CARET_ASSIGN: "^=", PIPE_ASSIGN: "|=",
	LE: "<=", GE: ">=", EQ_EQ: "==", NOT_EQ: "!=",
	QUESTION: "?", COLON: ":", SEMI: ";", COMMA: ",", DOT: ".", PLUS: "+", MINUS: "-",
	STAR: "*", SLASH: "/", PERCENT: "%", LT: "<", GT: ">", ASSIGN: "=", BANG: "!",
	TILDE: "~", CARET: "^", AMP: "&", PIPE: "|", LPAREN: "(", RPAREN: ")",
	LBRACKET: "[", RBRACKET: "]", LBRACE: "{", RBRACE: "}",
}

var directiveKindNames = map[Kind]string{
	PP_INCLUDE: "PP_INCLUDE", PP_DEFINE: "PP_DEFINE", PP_UNDEF: "PP_UNDEF",
	PP_IF: "PP_IF", PP_IFDEF: "PP_IFDEF", PP_IFNDEF: "PP_IFNDEF", PP_ELIF: "PP_ELIF",
	PP_ELSE: "PP_ELSE", PP_ENDIF: "PP_ENDIF", PP_ERROR: "PP_ERROR", PP_LINE: "PP_LINE",
	PP_PRAGMA: "PP_PRAGMA", PP_IMPORT: "PP_IMPORT", PP_ELIFDEF: "PP_ELIFDEF",
	PP_ELIFNDEF: "PP_ELIFNDEF", PP_EMBED: "PP_EMBED", PP_WARNING: "PP_WARNING",
	PP___HAS_INCLUDE: "PP___HAS_INCLUDE", PP___HAS_C_ATTRIBUTE: "PP___HAS_C_ATTRIBUTE",
	PP___VA_OPT__: "PP___VA_OPT__", PP_INCLUDE_NEXT: "PP_INCLUDE_NEXT",
	PP_IDENT: "PP_IDENT", PP_SCCS: "PP_SCCS", PP_ASSERT: "PP_ASSERT",
	PP_UNASSERT: "PP_UNASSERT", PP__ASSERT: "PP__ASSERT", PP__ASSERT_ANY: "PP__ASSERT_ANY",
	PP_DEFINED: "PP_DEFINED",
}

var keywordKindNames = map[Kind]string{
	KW_AUTO: "KW_AUTO", KW_BREAK: "KW_BREAK", KW_CASE: "KW_CASE", KW_CHAR: "KW_CHAR",
	KW_CONST: "KW_CONST", KW_CONTINUE: "KW_CONTINUE", KW_DEFAULT: "KW_DEFAULT",
	KW_DO: "KW_DO", KW_DOUBLE: "KW_DOUBLE", KW_ELSE: "KW_ELSE", KW_ENUM: "KW_ENUM",
	KW_EXTERN: "KW_EXTERN", KW_FLOAT: "KW_FLOAT", KW_FOR: "KW_FOR", KW_GOTO: "KW_GOTO",
	KW_IF: "KW_IF", KW_INT: "KW_INT", KW_LONG: "KW_LONG", KW_REGISTER: "KW_REGISTER",
	KW_RETURN: "KW_RETURN", KW_SHORT: "KW_SHORT", KW_SIGNED: "KW_SIGNED",
	KW_SIZEOF: "KW_SIZEOF", KW_STATIC: "KW_STATIC", KW_STRUCT: "KW_STRUCT",
	KW_SWITCH: "KW_SWITCH", KW_TYPEDEF: "KW_TYPEDEF", KW_UNION: "KW_UNION",
	KW_UNSIGNED: "KW_UNSIGNED", KW_VOID: "KW_VOID", KW_VOLATILE: "KW_VOLATILE",
	KW_WHILE: "KW_WHILE", KW_INLINE: "KW_INLINE", KW_RESTRICT: "KW_RESTRICT",
	KW__BOOL: "KW__BOOL", KW_BOOL: "KW_BOOL", KW__COMPLEX: "KW__COMPLEX",
	KW__IMAGINARY: "KW__IMAGINARY", KW__ALIGNAS: "KW__ALIGNAS", KW_ALIGNAS: "KW_ALIGNAS",
	KW__ALIGNOF: "KW__ALIGNOF", KW_ALIGNOF: "KW_ALIGNOF", KW__ATOMIC: "KW__ATOMIC",
	KW__GENERIC: "KW__GENERIC", KW__NORETURN: "KW__NORETURN",
	KW__STATIC_ASSERT: "KW__STATIC_ASSERT", KW_STATIC_ASSERT: "KW_STATIC_ASSERT",
	KW__THREAD_LOCAL: "KW__THREAD_LOCAL", KW_THREAD_LOCAL: "KW_THREAD_LOCAL",
	KW_TRUE: "KW_TRUE", KW_FALSE: "KW_FALSE", KW_NULLPTR: "KW_NULLPTR",
	KW_TYPEOF: "KW_TYPEOF", KW_TYPEOF_UNQUAL: "KW_TYPEOF_UNQUAL",
	KW_CONSTEXPR: "KW_CONSTEXPR", KW__BITINT: "KW__BITINT",
	KW_ASM: "KW_ASM", KW___ASM__: "KW___ASM__", KW___ATTRIBUTE__: "KW___ATTRIBUTE__",
	KW___EXTENSION__: "KW___EXTENSION__", KW___RESTRICT: "KW___RESTRICT",
	KW___RESTRICT__: "KW___RESTRICT__", KW___INLINE: "KW___INLINE",
	KW___INLINE__: "KW___INLINE__", KW___THREAD: "KW___THREAD",
	KW___TYPEOF__: "KW___TYPEOF__",
}

// IsKeyword reports whether k is one of the KW_* kinds.
func IsKeyword(k Kind) bool {
	_, ok := keywordKindNames[k]
	return ok
}

// IsDirectiveKeyword reports whether k is one of the PP_* directive kinds
// (excluding PP_HASH/PP_HASHHASH, which are punctuators).
func IsDirectiveKeyword(k Kind) bool {
	_, ok := directiveKindNames[k]
	return ok
}

// IsPunctuator reports whether k is a punctuator kind, including
// PP_HASH/PP_HASHHASH.
func IsPunctuator(k Kind) bool {
	if k == PP_HASH || k == PP_HASHHASH {
		return true
	}
	_, ok := punctNames[k]
	return ok
}
