package parser

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/token"
)

func (p *Parser) parseBlock() *ast.Block {
	tok := p.cur
	p.expect(token.LBRACE)
	p.skipNewlines()
	block := &ast.Block{Token: tok}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		block.Statements = append(block.Statements, p.parseStatement())
		p.skipNewlines()
	}
	p.expect(token.RBRACE)
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curIs(token.LBRACE):
		return p.parseBlock()
	case p.curIs(token.IF):
		return p.parseIfStmt()
	case p.curIs(token.WHEN):
		return p.parseWhenStmt()
	case p.curIs(token.FOR):
		return p.parseForStmt()
	case p.curIs(token.WHILE):
		return p.parseWhileStmt()
	case p.curIs(token.DO):
		return p.parseDoWhileStmt()
	case p.curIs(token.TRY):
		return p.parseTryStmt()
	case p.curIs(token.RETURN):
		return p.parseReturnStmt()
	case p.curIs(token.BREAK):
		return p.parseBreakStmt()
	case p.curIs(token.CONTINUE):
		return p.parseContinueStmt()
	case p.curIs(token.THROW):
		return p.parseThrowStmt()
	case p.curIs(token.GUARD):
		return p.parseGuardStmt()
	case p.curIs(token.IDENT) && p.cur.Literal == "use" && p.peekIs(token.LPAREN):
		return p.parseUseStmt()
	case p.curIs(token.VAL), p.curIs(token.VAR):
		tok := p.cur
		decl := p.parsePropertyOrDestructuring(nil, ast.Modifiers{})
		return &ast.DeclarationStmt{Token: tok, Decl: decl}
	case p.curIs(token.CLASS), p.curIs(token.FUN), p.curIs(token.TYPEALIAS):
		tok := p.cur
		var decl ast.Declaration
		switch {
		case p.curIs(token.CLASS):
			decl = p.parseClassDecl(nil, ast.Modifiers{}, false)
		case p.curIs(token.FUN):
			decl = p.parseFunDecl(nil, ast.Modifiers{})
		default:
			decl = p.parseTypeAliasDecl()
		}
		return &ast.DeclarationStmt{Token: tok, Decl: decl}
	default:
		tok := p.cur
		expr := p.parseExpression(LOWEST)
		return &ast.ExpressionStmt{Token: tok, Expr: expr}
	}
}

func (p *Parser) parseIfStmt() ast.Statement {
	tok := p.cur
	p.advance() // if
	p.expect(token.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	then := p.parseStatement()
	stmt := &ast.IfStmt{Token: tok, Condition: cond, Then: then}

	// `else` may trail on the same line or after a significant newline;
	// peek across blank lines with a backtrack mark.
	p.Mark()
	p.skipNewlines()
	if p.curIs(token.ELSE) {
		p.Commit()
		p.advance()
		stmt.Else = p.parseStatement()
	} else {
		p.Reset()
	}
	return stmt
}

func (p *Parser) parseWhenStmt() *ast.WhenStmt {
	tok := p.cur
	p.advance() // when
	stmt := &ast.WhenStmt{Token: tok}

	if p.curIs(token.LPAREN) {
		p.advance()
		if p.curIs(token.VAL) || p.curIs(token.VAR) {
			p.advance()
			stmt.Binding = p.cur.Literal
			p.expect(token.IDENT)
			p.expect(token.ASSIGN)
			stmt.Subject = p.parseExpression(LOWEST)
		} else {
			stmt.Subject = p.parseExpression(LOWEST)
		}
		p.expect(token.RPAREN)
	}

	p.expect(token.LBRACE)
	p.skipNewlines()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt.Branches = append(stmt.Branches, p.parseWhenBranch())
		p.skipNewlines()
	}
	p.expect(token.RBRACE)
	return stmt
}

func (p *Parser) parseWhenBranch() *ast.WhenBranch {
	branch := &ast.WhenBranch{}
	if p.curIs(token.ELSE) {
		p.advance()
		branch.IsElse = true
	} else {
		branch.Conditions = append(branch.Conditions, p.parseWhenCondition())
		for p.curIs(token.COMMA) {
			p.advance()
			branch.Conditions = append(branch.Conditions, p.parseWhenCondition())
		}
	}
	p.expect(token.ARROW)
	branch.Body = p.parseStatement()
	return branch
}

// parseWhenCondition parses one branch condition. `is Type` and `in expr`
// conditions leave the TypeCheckExpr's Value / the BinaryExpr's Left nil
// (the subject is implied); the analyzer does not fill them in.
func (p *Parser) parseWhenCondition() ast.Expression {
	switch {
	case p.curIs(token.IS):
		tok := p.cur
		p.advance()
		negated := false
		return &ast.TypeCheckExpr{Token: tok, Type: p.parseTypeRef(), Negated: negated}
	case p.curIs(token.IN):
		tok := p.cur
		p.advance()
		rhs := p.parseExpression(RANGE)
		return &ast.BinaryExpr{Token: tok, Op: token.IN, Right: rhs}
	default:
		return p.parseExpression(LOWEST)
	}
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	tok := p.cur
	p.advance() // for
	p.expect(token.LPAREN)
	stmt := &ast.ForStmt{Token: tok}

	if p.curIs(token.LPAREN) {
		p.advance()
		for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
			stmt.DestructNames = append(stmt.DestructNames, p.cur.Literal)
			p.expect(token.IDENT)
			if p.curIs(token.COMMA) {
				p.advance()
			}
		}
		p.expect(token.RPAREN)
	} else {
		stmt.VarName = p.cur.Literal
		p.expect(token.IDENT)
		if p.curIs(token.COLON) {
			p.advance()
			stmt.VarType = p.parseTypeRef()
		}
	}

	p.expect(token.IN)
	stmt.Iterable = p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	tok := p.cur
	p.advance() // while
	p.expect(token.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	return &ast.WhileStmt{Token: tok, Condition: cond, Body: p.parseStatement()}
}

func (p *Parser) parseDoWhileStmt() *ast.DoWhileStmt {
	tok := p.cur
	p.advance() // do
	body := p.parseStatement()
	p.skipNewlines()
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	return &ast.DoWhileStmt{Token: tok, Body: body, Condition: cond}
}

func (p *Parser) parseTryStmt() *ast.TryStmt {
	tok := p.cur
	p.advance() // try
	stmt := &ast.TryStmt{Token: tok, Body: p.parseBlock()}
	p.Mark()
	p.skipNewlines()
	for p.curIs(token.CATCH) {
		p.Commit()
		stmt.Catches = append(stmt.Catches, p.parseCatchClause())
		p.Mark()
		p.skipNewlines()
	}
	if p.curIs(token.FINALLY) {
		p.Commit()
		p.advance()
		stmt.Finally = p.parseBlock()
	} else {
		p.Reset()
	}
	return stmt
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	tok := p.cur
	p.advance() // catch
	p.expect(token.LPAREN)
	name := p.cur.Literal
	p.expect(token.IDENT)
	p.expect(token.COLON)
	ty := p.parseTypeRef()
	p.expect(token.RPAREN)
	return &ast.CatchClause{Token: tok, VarName: name, VarType: ty, Body: p.parseBlock()}
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	tok := p.cur
	p.advance() // return
	stmt := &ast.ReturnStmt{Token: tok}
	if p.curIs(token.AT) {
		p.advance()
		stmt.Label = p.cur.Literal
		p.expect(token.IDENT)
	}
	if !p.curIs(token.NEWLINE) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt.Value = p.parseExpression(LOWEST)
	}
	return stmt
}

func (p *Parser) parseBreakStmt() *ast.BreakStmt {
	tok := p.cur
	p.advance() // break
	stmt := &ast.BreakStmt{Token: tok}
	if p.curIs(token.AT) {
		p.advance()
		stmt.Label = p.cur.Literal
		p.expect(token.IDENT)
	}
	return stmt
}

func (p *Parser) parseContinueStmt() *ast.ContinueStmt {
	tok := p.cur
	p.advance() // continue
	stmt := &ast.ContinueStmt{Token: tok}
	if p.curIs(token.AT) {
		p.advance()
		stmt.Label = p.cur.Literal
		p.expect(token.IDENT)
	}
	return stmt
}

func (p *Parser) parseThrowStmt() *ast.ThrowStmt {
	tok := p.cur
	p.advance() // throw
	return &ast.ThrowStmt{Token: tok, Value: p.parseExpression(LOWEST)}
}

func (p *Parser) parseGuardStmt() *ast.GuardStmt {
	tok := p.cur
	p.advance() // guard
	cond := p.parseExpression(LOWEST)
	p.expect(token.ELSE)
	return &ast.GuardStmt{Token: tok, Condition: cond, ElseBody: p.parseBlock()}
}

func (p *Parser) parseUseStmt() *ast.UseStmt {
	tok := p.cur
	p.advance() // use
	p.expect(token.LPAREN)
	name := p.cur.Literal
	p.expect(token.IDENT)
	p.expect(token.ASSIGN)
	resource := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	return &ast.UseStmt{Token: tok, VarName: name, Resource: resource, Body: p.parseBlock()}
}
