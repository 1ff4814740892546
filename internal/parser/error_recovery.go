package parser

import "github.com/novalang/nova/internal/token"

// synchronize is ParseTolerant's recovery step: advance past the
// offending token, then skip forward until the next token that plausibly
// starts a new declaration (or closes the enclosing block), so later
// members/top-level items still get parsed.
func (p *Parser) synchronize() {
	p.advance()
	for !p.curIs(token.EOF) && !p.atDeclBoundary() {
		p.advance()
	}
}

func (p *Parser) atDeclBoundary() bool {
	switch p.cur.Type {
	case token.CLASS, token.INTERFACE, token.OBJECT, token.ENUM, token.FUN,
		token.VAL, token.VAR, token.TYPEALIAS, token.IMPORT, token.PACKAGE_KW,
		token.AT, token.RBRACE:
		return true
	}
	if p.cur.Type != token.IDENT {
		return false
	}
	if p.cur.Literal == "constructor" {
		return true
	}
	kw, ok := token.IsSoftKeyword(p.cur.Literal)
	if !ok {
		return false
	}
	switch kw {
	case token.PUBLIC, token.PRIVATE, token.PROTECTED, token.INTERNAL,
		token.OPEN, token.OVERRIDE, token.ABSTRACT, token.SEALED,
		token.FINAL_SOFT, token.OPERATOR, token.SUSPEND, token.CONST,
		token.INLINE, token.COMPANION, token.DATA, token.INIT:
		return true
	}
	return false
}
