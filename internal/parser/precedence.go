package parser

import "github.com/novalang/nova/internal/token"

// Precedence levels, lowest to highest, matching the operator table.
const (
	_ int = iota
	LOWEST
	ASSIGN      // = += -= *= /= %= &&= ||= ?:=
	TERNARY     // ?  :  (C-style conditional)
	PIPELINE    // |>
	OR          // ||
	AND         // &&
	EQUALITY    // == != === !==
	COMPARISON  // < > <= >=
	TYPECHECK   // is !is as as?
	ELVIS       // ?:
	INFIX_TO    // to
	RANGE       // .. ..< (with optional `step`)
	ADDITIVE    // + -
	MULTIPLICATIVE // * / %
	PREFIX      // -x !x ++x --x
	POSTFIX     // x++ x-- x!! x? .x ?.x ::x (x) [x] ?[x] trailing lambda
)

var precedences = map[token.Type]int{
	token.ASSIGN:                 ASSIGN,
	token.PLUS_ASSIGN:            ASSIGN,
	token.MINUS_ASSIGN:           ASSIGN,
	token.STAR_ASSIGN:            ASSIGN,
	token.SLASH_ASSIGN:           ASSIGN,
	token.PERCENT_ASSIGN:         ASSIGN,
	token.AMP_AMP_ASSIGN:         ASSIGN,
	token.PIPE_PIPE_ASSIGN:       ASSIGN,
	token.QUESTION_COLON_ASSIGN:  ASSIGN,

	token.QUESTION: TERNARY,

	token.PIPE_GT: PIPELINE,

	token.PIPE_PIPE: OR,
	token.AMP_AMP:   AND,

	token.EQ_EQ:      EQUALITY,
	token.EXCL_EQ:    EQUALITY,
	token.EQ_EQ_EQ:   EQUALITY,
	token.EXCL_EQ_EQ: EQUALITY,

	token.LESS:       COMPARISON,
	token.GREATER:    COMPARISON,
	token.LESS_EQ:    COMPARISON,
	token.GREATER_EQ: COMPARISON,

	token.IS:          TYPECHECK,
	token.AS:          TYPECHECK,
	token.EXCLAMATION: TYPECHECK, // !is

	token.QUESTION_COLON: ELVIS,

	token.TO: INFIX_TO,

	token.DOTDOT:      RANGE,
	token.DOTDOT_LESS: RANGE,

	token.PLUS:  ADDITIVE,
	token.MINUS: ADDITIVE,

	token.STAR:    MULTIPLICATIVE,
	token.SLASH:   MULTIPLICATIVE,
	token.PERCENT: MULTIPLICATIVE,

	token.INC:             POSTFIX,
	token.DEC:             POSTFIX,
	token.BANG_BANG:       POSTFIX,
	token.DOT:             POSTFIX,
	token.QUESTION_DOT:    POSTFIX,
	token.COLON_COLON:     POSTFIX,
	token.LPAREN:          POSTFIX,
	token.LBRACK:          POSTFIX,
	token.QUESTION_LBRACK: POSTFIX,
	token.LBRACE:          POSTFIX, // trailing-lambda call sugar
}

func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}
