package parser

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/token"
)

// parseTypeRef parses a single type reference: a qualified name (plain or
// generic), a function type, or either wrapped in a trailing `?`.
func (p *Parser) parseTypeRef() ast.TypeRef {
	var base ast.TypeRef

	switch {
	case p.curIs(token.SUSPEND) || p.curIsSoft("suspend"):
		base = p.parseFunctionType(true)
	case p.curIs(token.LPAREN):
		base = p.parseFunctionType(false)
	default:
		base = p.parseQualifiedType()
		// Receiver-qualified function type: `String.(Int) -> Boolean`.
		if p.curIs(token.DOT) && p.peekIs(token.LPAREN) {
			p.advance()
			ft := p.parseFunctionType(false).(*ast.FunctionType)
			ft.Receiver = base
			base = ft
		}
	}

	for p.curIs(token.QUESTION) {
		tok := p.cur
		p.advance()
		base = &ast.NullableType{Token: tok, Inner: base}
	}
	return base
}

func (p *Parser) parseQualifiedType() ast.TypeRef {
	tok := p.cur
	var names []string
	name := p.cur.Literal
	p.expect(token.IDENT)
	names = append(names, name)
	for p.curIs(token.DOT) && p.peekIs(token.IDENT) {
		p.advance()
		names = append(names, p.cur.Literal)
		p.advance()
	}

	if p.curIs(token.LESS) {
		return p.parseGenericTypeArgs(tok, names)
	}
	return &ast.SimpleType{Token: tok, QualifiedName: names}
}

func (p *Parser) parseGenericTypeArgs(tok token.Token, names []string) *ast.GenericType {
	gt := &ast.GenericType{Token: tok, QualifiedName: names}
	p.advance() // consume '<'
	for !p.curIs(token.GREATER) && !p.curIs(token.EOF) {
		gt.TypeArgs = append(gt.TypeArgs, p.parseTypeArgument())
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.GREATER)
	return gt
}

func (p *Parser) parseTypeArgument() *ast.TypeArgument {
	tok := p.cur
	if p.curIs(token.STAR) {
		p.advance()
		return &ast.TypeArgument{Token: tok, IsWildcard: true}
	}
	arg := &ast.TypeArgument{Token: tok}
	if kw, ok := token.IsSoftKeyword(p.cur.Literal); ok && (kw == token.OUT || kw == token.INSOFT) {
		if kw == token.OUT {
			arg.Variance = ast.Out
		} else {
			arg.Variance = ast.In
		}
		p.advance()
	}
	arg.Type = p.parseTypeRef()
	return arg
}

// parseFunctionType parses `(T1, T2) -> R`, optionally `suspend`-prefixed.
func (p *Parser) parseFunctionType(suspend bool) ast.TypeRef {
	tok := p.cur
	if suspend {
		p.advance()
		tok = p.cur
	}
	ft := &ast.FunctionType{Token: tok, IsSuspend: suspend}
	p.expect(token.LPAREN)
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		ft.ParamTypes = append(ft.ParamTypes, p.parseTypeRef())
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.ARROW)
	ft.ReturnType = p.parseTypeRef()
	return ft
}

// parseTypeParams parses an optional `<T, out U : Bound>` clause.
func (p *Parser) parseTypeParams() []*ast.TypeParameter {
	if !p.curIs(token.LESS) {
		return nil
	}
	p.advance()
	var params []*ast.TypeParameter
	for !p.curIs(token.GREATER) && !p.curIs(token.EOF) {
		tok := p.cur
		tp := &ast.TypeParameter{Token: tok}
		if p.curIs(token.IDENT) {
			if kw, ok := token.IsSoftKeyword(p.cur.Literal); ok && kw == token.REIFIED {
				tp.IsReified = true
				p.advance()
			}
		}
		if kw, ok := token.IsSoftKeyword(p.cur.Literal); ok && (kw == token.OUT || kw == token.INSOFT) {
			if kw == token.OUT {
				tp.Variance = ast.Out
			} else {
				tp.Variance = ast.In
			}
			p.advance()
		}
		tp.Name = p.cur.Literal
		p.expect(token.IDENT)
		if p.curIs(token.COLON) {
			p.advance()
			tp.UpperBound = p.parseTypeRef()
		}
		params = append(params, tp)
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.GREATER)
	return params
}
