package token

// Type identifies the kind of a token. Grouped into bands (special,
// literals, hard keywords, soft keywords, operators, punctuation) so
// IsLiteral/IsKeyword/IsOperator can be answered with a range check, the
// same technique the teacher repo uses for its DWScript token set.
type Type int

const (
	ILLEGAL Type = iota
	EOF
	COMMENT
	NEWLINE // significant line break separating statements

	// Literals
	IDENT
	INT
	LONG
	FLOAT
	DOUBLE
	CHAR
	STRING           // plain or raw string
	STRING_TEMPLATE  // the head/tail literal piece of an interpolated string
	NULL

	literalEnd

	// Hard keywords: always keywords, never usable as identifiers.
	CLASS
	INTERFACE
	OBJECT
	ENUM
	FUN
	VAL
	VAR
	IF
	ELSE
	WHEN
	FOR
	WHILE
	DO
	TRY
	CATCH
	FINALLY
	RETURN
	BREAK
	CONTINUE
	THROW
	THIS
	SUPER
	IMPORT
	PACKAGE_KW
	NULL_KW
	TRUE
	FALSE
	IS
	AS
	IN
	FUN_TYPE_ARROW // placeholder alignment, not emitted directly
	TYPEALIAS
	GUARD

	hardKeywordEnd

	// Soft keywords: lexed as IDENT, reinterpreted positionally by the
	// parser. Listed here only so the parser has a canonical name for each.
	softKeywordStart
	PUBLIC
	PRIVATE
	PROTECTED
	INTERNAL
	OPEN
	OVERRIDE
	ABSTRACT
	SEALED
	FINAL_SOFT
	OPERATOR
	SUSPEND
	CONST
	INLINE
	COMPANION
	REIFIED
	VARARG
	CROSSINLINE
	STATIC_SOFT
	OUT
	INSOFT
	STEP
	TO
	IT
	ANNOTATION
	DATA
	INIT
	GET
	SET
	BY
	softKeywordEnd

	keywordEnd

	// Punctuation / delimiters
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACK
	RBRACK
	COMMA
	COLON
	SEMICOLON
	DOT
	AT

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	ASSIGN // =
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	EQ_EQ
	EXCL_EQ
	EQ_EQ_EQ
	EXCL_EQ_EQ
	LESS
	GREATER
	LESS_EQ
	GREATER_EQ
	AMP_AMP
	PIPE_PIPE
	AMP_AMP_ASSIGN
	PIPE_PIPE_ASSIGN
	EXCLAMATION
	INC
	DEC
	ARROW      // ->
	FAT_ARROW  // =>
	DOTDOT     // ..
	DOTDOT_LESS // ..<
	PIPE_GT    // |>
	QUESTION
	QUESTION_DOT  // ?.
	QUESTION_COLON // ?:
	QUESTION_COLON_ASSIGN // ?:=
	BANG_BANG     // !!
	COLON_COLON   // ::
	QUESTION_LBRACK // ?[
	DOLLAR
	DOLLAR_LBRACE // ${
	HASH_LBRACE   // #{

	operatorEnd
)

// IsLiteral reports whether t is one of the literal-producing token kinds.
func (t Type) IsLiteral() bool { return t > NEWLINE && t < literalEnd }

// IsHardKeyword reports whether t is a reserved word.
func (t Type) IsHardKeyword() bool { return t > literalEnd && t < hardKeywordEnd }

// IsSoftKeyword reports whether t is one of the contextual soft keywords.
func (t Type) IsSoftKeyword() bool { return t > softKeywordStart && t < softKeywordEnd }

// IsKeyword reports whether t is any kind of keyword, hard or soft.
func (t Type) IsKeyword() bool { return t > literalEnd && t < keywordEnd }

// IsOperator reports whether t is an operator token.
func (t Type) IsOperator() bool { return t > AT && t < operatorEnd }

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

var typeNames = map[Type]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", COMMENT: "COMMENT", NEWLINE: "NEWLINE",
	IDENT: "IDENT", INT: "INT", LONG: "LONG", FLOAT: "FLOAT", DOUBLE: "DOUBLE",
	CHAR: "CHAR", STRING: "STRING", STRING_TEMPLATE: "STRING_TEMPLATE", NULL: "NULL",

	CLASS: "class", INTERFACE: "interface", OBJECT: "object", ENUM: "enum",
	FUN: "fun", VAL: "val", VAR: "var", IF: "if", ELSE: "else", WHEN: "when",
	FOR: "for", WHILE: "while", DO: "do", TRY: "try", CATCH: "catch",
	FINALLY: "finally", RETURN: "return", BREAK: "break", CONTINUE: "continue",
	THROW: "throw", THIS: "this", SUPER: "super", IMPORT: "import",
	PACKAGE_KW: "package", NULL_KW: "null", TRUE: "true", FALSE: "false",
	IS: "is", AS: "as", IN: "in", TYPEALIAS: "typealias", GUARD: "guard",

	PUBLIC: "public", PRIVATE: "private", PROTECTED: "protected",
	INTERNAL: "internal", OPEN: "open", OVERRIDE: "override",
	ABSTRACT: "abstract", SEALED: "sealed", FINAL_SOFT: "final",
	OPERATOR: "operator", SUSPEND: "suspend", CONST: "const", INLINE: "inline",
	COMPANION: "companion", REIFIED: "reified", VARARG: "vararg",
	CROSSINLINE: "crossinline", STATIC_SOFT: "static", OUT: "out",
	INSOFT: "in", STEP: "step", TO: "to", IT: "it", ANNOTATION: "annotation",
	DATA: "data", INIT: "init", GET: "get", SET: "set", BY: "by",

	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", LBRACK: "[", RBRACK: "]",
	COMMA: ",", COLON: ":", SEMICOLON: ";", DOT: ".", AT: "@",

	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%", ASSIGN: "=",
	PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", STAR_ASSIGN: "*=", SLASH_ASSIGN: "/=",
	PERCENT_ASSIGN: "%=", EQ_EQ: "==", EXCL_EQ: "!=", EQ_EQ_EQ: "===",
	EXCL_EQ_EQ: "!==", LESS: "<", GREATER: ">", LESS_EQ: "<=", GREATER_EQ: ">=",
	AMP_AMP: "&&", PIPE_PIPE: "||", AMP_AMP_ASSIGN: "&&=", PIPE_PIPE_ASSIGN: "||=",
	EXCLAMATION: "!", INC: "++", DEC: "--", ARROW: "->", FAT_ARROW: "=>",
	DOTDOT: "..", DOTDOT_LESS: "..<", PIPE_GT: "|>", QUESTION: "?",
	QUESTION_DOT: "?.", QUESTION_COLON: "?:", QUESTION_COLON_ASSIGN: "?:=",
	BANG_BANG: "!!", COLON_COLON: "::", QUESTION_LBRACK: "?[", DOLLAR: "$",
	DOLLAR_LBRACE: "${", HASH_LBRACE: "#{",
}

// hardKeywords maps a literal lexeme to its hard-keyword token type.
var hardKeywords = map[string]Type{
	"class": CLASS, "interface": INTERFACE, "object": OBJECT, "enum": ENUM,
	"fun": FUN, "val": VAL, "var": VAR, "if": IF, "else": ELSE, "when": WHEN,
	"for": FOR, "while": WHILE, "do": DO, "try": TRY, "catch": CATCH,
	"finally": FINALLY, "return": RETURN, "break": BREAK, "continue": CONTINUE,
	"throw": THROW, "this": THIS, "super": SUPER, "import": IMPORT,
	"package": PACKAGE_KW, "null": NULL_KW, "true": TRUE, "false": FALSE,
	"is": IS, "as": AS, "in": IN, "typealias": TYPEALIAS, "guard": GUARD,
}

// SoftKeywords maps a lexeme to its soft-keyword token type. The lexer never
// consults this table — soft keywords are always lexed as IDENT; only the
// parser looks a lexeme up here to decide whether it is acting as a keyword
// in the current syntactic position.
var SoftKeywords = map[string]Type{
	"public": PUBLIC, "private": PRIVATE, "protected": PROTECTED,
	"internal": INTERNAL, "open": OPEN, "override": OVERRIDE,
	"abstract": ABSTRACT, "sealed": SEALED, "final": FINAL_SOFT,
	"operator": OPERATOR, "suspend": SUSPEND, "const": CONST,
	"inline": INLINE, "companion": COMPANION, "reified": REIFIED,
	"vararg": VARARG, "crossinline": CROSSINLINE, "static": STATIC_SOFT,
	"out": OUT, "step": STEP, "to": TO, "it": IT, "annotation": ANNOTATION,
	"data": DATA, "init": INIT, "get": GET, "set": SET, "by": BY,
}

// LookupIdent classifies lexeme as a hard keyword, returning IDENT for
// everything else (including soft keywords — those remain IDENT at the
// lexer level per spec §4.1).
func LookupIdent(lexeme string) Type {
	if tok, ok := hardKeywords[lexeme]; ok {
		return tok
	}
	return IDENT
}

// IsSoftKeyword reports whether lexeme names a soft keyword and returns its
// token type for the parser's positional reinterpretation.
func IsSoftKeyword(lexeme string) (Type, bool) {
	t, ok := SoftKeywords[lexeme]
	return t, ok
}
