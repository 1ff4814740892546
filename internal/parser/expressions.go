package parser

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/lexer"
	"github.com/novalang/nova/internal/token"
)

// parseExpression is the Pratt engine's entry point: parse a prefix
// expression, then keep extending it with infix/postfix continuations as
// long as their precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	tok := p.cur
	prefix, ok := p.prefixFns[tok.Type]
	if !ok {
		p.errorf("expression", "unexpected token %s (%q) in expression", tok.Type, tok.Literal)
		p.advance()
		return &ast.Literal{Token: tok, Kind: ast.LiteralNull}
	}
	p.advance()
	left := prefix(p, tok)

	for {
		opType := p.effectiveOpType()
		prec := precedenceOf(opType)
		if precedence >= prec {
			break
		}
		infix, ok := p.infixFns[opType]
		if !ok {
			break
		}
		opTok := p.cur
		p.advance()
		left = infix(p, left, opTok)
	}
	return left
}

// effectiveOpType maps a soft-keyword IDENT acting as an infix operator
// (`to`, `step`) onto its canonical token.Type for precedence/dispatch
// lookups, without altering what's actually in p.cur.
func (p *Parser) effectiveOpType() token.Type {
	if p.cur.Type == token.IDENT {
		if kw, ok := token.IsSoftKeyword(p.cur.Literal); ok {
			switch kw {
			case token.TO, token.STEP:
				return kw
			}
		}
	}
	return p.cur.Type
}

func (p *Parser) canStartExpression() bool {
	switch p.cur.Type {
	case token.NEWLINE, token.RBRACE, token.RPAREN, token.RBRACK, token.COMMA, token.EOF:
		return false
	}
	_, ok := p.prefixFns[p.cur.Type]
	return ok
}

// parseBlockTailOrExpr parses either a bare expression, or a brace-delimited
// block whose trailing expression statement is taken as its value (used
// where Nova's grammar lets a block stand in for an expression, e.g. an
// `if`/`try` expression branch).
func (p *Parser) parseBlockTailOrExpr() ast.Expression {
	if !p.curIs(token.LBRACE) {
		return p.parseExpression(LOWEST)
	}
	block := p.parseBlock()
	if n := len(block.Statements); n > 0 {
		if es, ok := block.Statements[n-1].(*ast.ExpressionStmt); ok {
			return es.Expr
		}
	}
	return &ast.Literal{Token: block.Token, Kind: ast.LiteralNull}
}

func (p *Parser) registerExpressionFns() {
	p.prefixFns = map[token.Type]prefixParseFn{
		token.INT:        literalPrefix(ast.LiteralInt),
		token.LONG:       literalPrefix(ast.LiteralLong),
		token.FLOAT:      literalPrefix(ast.LiteralFloat),
		token.DOUBLE:     literalPrefix(ast.LiteralDouble),
		token.CHAR:       literalPrefix(ast.LiteralChar),
		token.STRING:     parseStringLiteral,
		token.NULL_KW:    func(p *Parser, tok token.Token) ast.Expression { return &ast.Literal{Token: tok, Kind: ast.LiteralNull} },
		token.TRUE:       func(p *Parser, tok token.Token) ast.Expression { return &ast.Literal{Token: tok, Kind: ast.LiteralBoolean, Value: true} },
		token.FALSE:      func(p *Parser, tok token.Token) ast.Expression { return &ast.Literal{Token: tok, Kind: ast.LiteralBoolean, Value: false} },
		token.IDENT:      parseIdentifier,
		token.THIS:       parseThis,
		token.SUPER:      parseSuper,
		token.LPAREN:     parseGroup,
		token.LBRACK:     parseListLiteral,
		token.HASH_LBRACE: parseSetOrMapLiteral,
		token.LBRACE:     parseLambdaLiteral,
		token.MINUS:      parsePrefixUnary,
		token.PLUS:       parsePrefixUnary,
		token.EXCLAMATION: parsePrefixUnary,
		token.INC:        parsePrefixUnary,
		token.DEC:        parsePrefixUnary,
		token.STAR:       parseSpread,
		token.IF:         parseIfExpr,
		token.WHEN:       parseWhenExpr,
		token.TRY:        parseTryExpr,
		token.OBJECT:     parseObjectLiteral,
		token.COLON_COLON: parseBareMethodRef,
		token.DOT:        parseScopeShorthand,
		token.RETURN:     parseReturnExpr,
		token.BREAK:      parseBreakExpr,
		token.CONTINUE:   parseContinueExpr,
	}

	p.infixFns = map[token.Type]infixParseFn{
		token.ASSIGN:                parseAssign,
		token.PLUS_ASSIGN:           parseAssign,
		token.MINUS_ASSIGN:          parseAssign,
		token.STAR_ASSIGN:           parseAssign,
		token.SLASH_ASSIGN:          parseAssign,
		token.PERCENT_ASSIGN:        parseAssign,
		token.AMP_AMP_ASSIGN:        parseAssign,
		token.PIPE_PIPE_ASSIGN:      parseAssign,
		token.QUESTION_COLON_ASSIGN: parseAssign,

		token.QUESTION: parseQuestion,
		token.PIPE_GT:  parsePipeline,

		token.PIPE_PIPE: parseBinary,
		token.AMP_AMP:   parseBinary,

		token.EQ_EQ:      parseComparisonChain,
		token.EXCL_EQ:    parseComparisonChain,
		token.EQ_EQ_EQ:   parseComparisonChain,
		token.EXCL_EQ_EQ: parseComparisonChain,
		token.LESS:       parseComparisonChain,
		token.GREATER:    parseComparisonChain,
		token.LESS_EQ:    parseComparisonChain,
		token.GREATER_EQ: parseComparisonChain,

		token.IS:          parseIsAs,
		token.AS:          parseIsAs,
		token.EXCLAMATION: parseNotIs,

		token.QUESTION_COLON: parseElvis,
		token.TO:             parseInfixTo,

		token.DOTDOT:      parseRange,
		token.DOTDOT_LESS: parseRange,

		token.PLUS:  parseBinary,
		token.MINUS: parseBinary,

		token.STAR:    parseBinary,
		token.SLASH:   parseBinary,
		token.PERCENT: parseBinary,

		token.INC:       parsePostfixIncDec,
		token.DEC:       parsePostfixIncDec,
		token.BANG_BANG: parseNotNull,
		token.DOT:       parseMember,
		token.QUESTION_DOT:    parseSafeCall,
		token.COLON_COLON:     parseMethodRef,
		token.LPAREN:          parseCall,
		token.LBRACK:          parseIndex,
		token.QUESTION_LBRACK: parseSafeIndex,
		token.LBRACE:          parseTrailingLambdaCall,
	}
}

func literalPrefix(kind ast.LiteralKind) prefixParseFn {
	return func(p *Parser, tok token.Token) ast.Expression {
		return &ast.Literal{Token: tok, Kind: kind, Value: tok.Value}
	}
}

func parseIdentifier(p *Parser, tok token.Token) ast.Expression {
	if kw, ok := token.IsSoftKeyword(tok.Literal); ok && kw == token.IT {
		return &ast.PlaceholderExpr{Token: tok}
	}
	if tok.Literal == "await" {
		return &ast.AwaitExpr{Token: tok, Value: p.parseExpression(PREFIX)}
	}
	return &ast.Identifier{Token: tok, Name: tok.Literal}
}

func parseThis(p *Parser, tok token.Token) ast.Expression {
	e := &ast.ThisExpr{Token: tok}
	if p.curIs(token.AT) {
		p.advance()
		e.Label = p.cur.Literal
		p.expect(token.IDENT)
	}
	return e
}

func parseSuper(p *Parser, tok token.Token) ast.Expression {
	e := &ast.SuperExpr{Token: tok}
	if p.curIs(token.LESS) {
		p.advance()
		e.Qualifier = p.cur.Literal
		p.expect(token.IDENT)
		p.expect(token.GREATER)
	}
	if p.curIs(token.AT) {
		p.advance()
		e.Label = p.cur.Literal
		p.expect(token.IDENT)
	}
	return e
}

func parseGroup(p *Parser, tok token.Token) ast.Expression {
	expr := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	return expr
}

func parseListLiteral(p *Parser, tok token.Token) ast.Expression {
	lit := &ast.CollectionLiteral{Token: tok, Kind: ast.CollectionList}
	p.skipNewlines()
	for !p.curIs(token.RBRACK) && !p.curIs(token.EOF) {
		lit.Elements = append(lit.Elements, p.parseExpression(LOWEST))
		p.skipNewlines()
		if p.curIs(token.COMMA) {
			p.advance()
			p.skipNewlines()
		}
	}
	p.expect(token.RBRACK)
	return lit
}

func parseSetOrMapLiteral(p *Parser, tok token.Token) ast.Expression {
	lit := &ast.CollectionLiteral{Token: tok, Kind: ast.CollectionSet}
	p.skipNewlines()
	if p.curIs(token.RBRACE) {
		p.advance()
		return lit
	}
	first := p.parseExpression(LOWEST)
	if p.curIs(token.COLON) {
		lit.Kind = ast.CollectionMap
		p.advance()
		lit.Keys = append(lit.Keys, first)
		lit.Values = append(lit.Values, p.parseExpression(LOWEST))
		p.skipNewlines()
		for p.curIs(token.COMMA) {
			p.advance()
			p.skipNewlines()
			if p.curIs(token.RBRACE) {
				break
			}
			k := p.parseExpression(LOWEST)
			p.expect(token.COLON)
			v := p.parseExpression(LOWEST)
			lit.Keys = append(lit.Keys, k)
			lit.Values = append(lit.Values, v)
			p.skipNewlines()
		}
	} else {
		lit.Elements = append(lit.Elements, first)
		p.skipNewlines()
		for p.curIs(token.COMMA) {
			p.advance()
			p.skipNewlines()
			if p.curIs(token.RBRACE) {
				break
			}
			lit.Elements = append(lit.Elements, p.parseExpression(LOWEST))
			p.skipNewlines()
		}
	}
	p.expect(token.RBRACE)
	return lit
}

func parseLambdaLiteral(p *Parser, tok token.Token) ast.Expression {
	return p.parseLambdaBody(tok)
}

func parseTrailingLambdaCall(p *Parser, left ast.Expression, tok token.Token) ast.Expression {
	return &ast.CallExpr{Token: tok, Callee: left, TrailingLambda: p.parseLambdaBody(tok)}
}

// parseLambdaBody parses a lambda's contents assuming the opening `{` has
// already been consumed. An explicit parameter list (`a, b ->` or
// `a: Int ->`) is tried first and backed out of if no `->` follows.
func (p *Parser) parseLambdaBody(braceTok token.Token) *ast.LambdaExpr {
	lambda := &ast.LambdaExpr{Token: braceTok}
	p.skipNewlines()

	if p.curIs(token.IDENT) {
		p.Mark()
		var params []*ast.Parameter
		valid := true
		for {
			if !p.curIs(token.IDENT) {
				valid = false
				break
			}
			param := &ast.Parameter{Token: p.cur, Name: p.cur.Literal, NamePos: p.cur.Pos}
			p.advance()
			if p.curIs(token.COLON) {
				p.advance()
				param.Type = p.parseTypeRef()
			}
			params = append(params, param)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		if valid && p.curIs(token.ARROW) {
			p.advance()
			p.Commit()
			lambda.Params = params
		} else {
			p.Reset()
		}
	}

	p.skipNewlines()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		lambda.Body = append(lambda.Body, p.parseStatement())
		p.skipNewlines()
	}
	p.expect(token.RBRACE)
	return lambda
}

func parsePrefixUnary(p *Parser, tok token.Token) ast.Expression {
	return &ast.UnaryExpr{Token: tok, Op: tok.Type, Operand: p.parseExpression(PREFIX), IsPrefix: true}
}

func parseSpread(p *Parser, tok token.Token) ast.Expression {
	return &ast.SpreadExpr{Token: tok, Value: p.parseExpression(PREFIX)}
}

func parseStringLiteral(p *Parser, tok token.Token) ast.Expression {
	parts, ok := tok.Value.([]token.StringPart)
	if !ok || len(parts) == 0 {
		return &ast.Literal{Token: tok, Kind: ast.LiteralString, Value: tok.Literal}
	}
	hasExpr := false
	for _, part := range parts {
		if part.IsExpr {
			hasExpr = true
			break
		}
	}
	if !hasExpr {
		return &ast.Literal{Token: tok, Kind: ast.LiteralString, Value: tok.Literal}
	}

	si := &ast.StringInterpolation{Token: tok}
	for _, part := range parts {
		if !part.IsExpr {
			si.Parts = append(si.Parts, &ast.InterpolationPart{Literal: part.Literal})
			continue
		}
		sub := lexer.New(p.file, part.ExprSource)
		subParser := New(sub, p.file, part.ExprSource)
		si.Parts = append(si.Parts, &ast.InterpolationPart{Expr: subParser.parseExpression(LOWEST)})
	}
	return si
}

func parseIfExpr(p *Parser, tok token.Token) ast.Expression {
	p.expect(token.LPAREN)
	cond := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	then := p.parseBlockTailOrExpr()

	p.Mark()
	p.skipNewlines()
	if !p.curIs(token.ELSE) {
		p.Reset()
		p.errorf("else", "if-expression requires an else branch")
		return &ast.IfExpr{Token: tok, Condition: cond, Then: then, Else: then}
	}
	p.Commit()
	p.advance() // else
	return &ast.IfExpr{Token: tok, Condition: cond, Then: then, Else: p.parseBlockTailOrExpr()}
}

func parseWhenExpr(p *Parser, tok token.Token) ast.Expression {
	expr := &ast.WhenExpr{Token: tok}
	if p.curIs(token.LPAREN) {
		p.advance()
		if p.curIs(token.VAL) || p.curIs(token.VAR) {
			p.advance()
			expr.Binding = p.cur.Literal
			p.expect(token.IDENT)
			p.expect(token.ASSIGN)
			expr.Subject = p.parseExpression(LOWEST)
		} else {
			expr.Subject = p.parseExpression(LOWEST)
		}
		p.expect(token.RPAREN)
	}
	p.expect(token.LBRACE)
	p.skipNewlines()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		expr.Branches = append(expr.Branches, p.parseWhenExprBranch())
		p.skipNewlines()
	}
	p.expect(token.RBRACE)
	return expr
}

func (p *Parser) parseWhenExprBranch() *ast.WhenExprBranch {
	branch := &ast.WhenExprBranch{}
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
	branch.Body = p.parseExpression(LOWEST)
	return branch
}

func parseTryExpr(p *Parser, tok token.Token) ast.Expression {
	e := &ast.TryExpr{Token: tok, Body: p.parseBlockTailOrExpr()}
	for p.curIs(token.CATCH) {
		p.advance()
		p.expect(token.LPAREN)
		name := p.cur.Literal
		p.expect(token.IDENT)
		p.expect(token.COLON)
		ty := p.parseTypeRef()
		p.expect(token.RPAREN)
		e.Catches = append(e.Catches, &ast.CatchExprClause{VarName: name, VarType: ty, Body: p.parseBlockTailOrExpr()})
	}
	if p.curIs(token.FINALLY) {
		p.advance()
		e.Finally = p.parseBlock()
	}
	return e
}

func parseObjectLiteral(p *Parser, tok token.Token) ast.Expression {
	lit := &ast.ObjectLiteralExpr{Token: tok}
	if p.curIs(token.COLON) {
		p.advance()
		first := p.parseTypeRef()
		if p.curIs(token.LPAREN) {
			lit.SuperClass = first
			lit.SuperArgs = p.parseCallArgs()
		} else {
			lit.Interfaces = append(lit.Interfaces, first)
		}
		for p.curIs(token.COMMA) {
			p.advance()
			lit.Interfaces = append(lit.Interfaces, p.parseTypeRef())
		}
	}
	lit.Members = p.parseClassBody()
	return lit
}

func parseBareMethodRef(p *Parser, tok token.Token) ast.Expression {
	method := p.cur.Literal
	p.expect(token.IDENT)
	return &ast.MethodRefExpr{Token: tok, Method: method}
}

func parseScopeShorthand(p *Parser, tok token.Token) ast.Expression {
	name := p.cur.Literal
	p.expect(token.IDENT)
	return &ast.ScopeShorthandExpr{Token: tok, Name: name}
}

func parseReturnExpr(p *Parser, tok token.Token) ast.Expression {
	e := &ast.JumpExpr{Token: tok, Kind: ast.JumpReturn}
	if p.curIs(token.AT) {
		p.advance()
		e.Label = p.cur.Literal
		p.expect(token.IDENT)
	}
	if p.canStartExpression() {
		e.Value = p.parseExpression(LOWEST)
	}
	return e
}

func parseBreakExpr(p *Parser, tok token.Token) ast.Expression {
	e := &ast.JumpExpr{Token: tok, Kind: ast.JumpBreak}
	if p.curIs(token.AT) {
		p.advance()
		e.Label = p.cur.Literal
		p.expect(token.IDENT)
	}
	return e
}

func parseContinueExpr(p *Parser, tok token.Token) ast.Expression {
	e := &ast.JumpExpr{Token: tok, Kind: ast.JumpContinue}
	if p.curIs(token.AT) {
		p.advance()
		e.Label = p.cur.Literal
		p.expect(token.IDENT)
	}
	return e
}

// --- infix / postfix ---

func parseAssign(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	value := p.parseExpression(ASSIGN - 1) // right-associative
	return &ast.AssignExpr{Token: opTok, Target: left, Op: opTok.Type, Value: value}
}

// parseQuestion disambiguates the C-style ternary `cond ? then : else` from
// the trailing error-propagation `expr?` by speculatively parsing a ternary
// and backing out if no `:` follows.
func parseQuestion(p *Parser, left ast.Expression, qTok token.Token) ast.Expression {
	if !p.canStartExpression() {
		return &ast.ErrorPropagationExpr{Token: qTok, Value: left}
	}
	errCount := len(p.errors)
	p.Mark()
	then := p.parseExpression(TERNARY)
	if p.curIs(token.COLON) {
		p.advance()
		els := p.parseExpression(TERNARY - 1)
		p.Commit()
		return &ast.ConditionalExpr{Token: qTok, Condition: left, Then: then, Else: els}
	}
	p.Reset()
	p.errors = p.errors[:errCount]
	return &ast.ErrorPropagationExpr{Token: qTok, Value: left}
}

func parsePipeline(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	return &ast.PipelineExpr{Token: opTok, Value: left, Func: p.parseExpression(PIPELINE)}
}

func parseBinary(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	right := p.parseExpression(precedenceOf(opTok.Type))
	return &ast.BinaryExpr{Token: opTok, Left: left, Op: opTok.Type, Right: right}
}

// parseComparisonChain folds a run of equality/comparison operators into a
// left-to-right AND-combination: `a < b < c` becomes `(a < b) && (b < c)`.
func parseComparisonChain(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	right := p.parseExpression(precedenceOf(opTok.Type))
	result := ast.Expression(&ast.BinaryExpr{Token: opTok, Left: left, Op: opTok.Type, Right: right})
	for isChainable(p.effectiveOpType()) {
		nextTok := p.cur
		p.advance()
		nextRight := p.parseExpression(precedenceOf(nextTok.Type))
		link := &ast.BinaryExpr{Token: nextTok, Left: right, Op: nextTok.Type, Right: nextRight}
		result = &ast.BinaryExpr{Token: nextTok, Left: result, Op: token.AMP_AMP, Right: link}
		right = nextRight
	}
	return result
}

func isChainable(t token.Type) bool {
	switch t {
	case token.EQ_EQ, token.EXCL_EQ, token.EQ_EQ_EQ, token.EXCL_EQ_EQ,
		token.LESS, token.GREATER, token.LESS_EQ, token.GREATER_EQ:
		return true
	}
	return false
}

func parseIsAs(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	if opTok.Type == token.AS {
		safe := false
		if p.curIs(token.QUESTION) {
			safe = true
			p.advance()
		}
		return &ast.TypeCastExpr{Token: opTok, Value: left, Type: p.parseTypeRef(), Safe: safe}
	}
	return &ast.TypeCheckExpr{Token: opTok, Value: left, Type: p.parseTypeRef()}
}

// parseNotIs handles `expr !is Type`, the one infix position a bare `!`
// can appear in (every other use of `!` is prefix negation).
func parseNotIs(p *Parser, left ast.Expression, bangTok token.Token) ast.Expression {
	p.expect(token.IS)
	return &ast.TypeCheckExpr{Token: bangTok, Value: left, Type: p.parseTypeRef(), Negated: true}
}

func parseElvis(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	return &ast.ElvisExpr{Token: opTok, Left: left, Fallback: p.parseExpression(ELVIS)}
}

func parseInfixTo(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	right := p.parseExpression(INFIX_TO)
	return &ast.BinaryExpr{Token: opTok, Left: left, Op: token.TO, Right: right}
}

func parseRange(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	exclusive := opTok.Type == token.DOTDOT_LESS
	right := p.parseExpression(RANGE)
	rng := &ast.RangeExpr{Token: opTok, From: left, To: right, Exclusive: exclusive}
	if p.effectiveOpType() == token.STEP {
		p.advance()
		rng.Step = p.parseExpression(RANGE)
	}
	return rng
}

func parsePostfixIncDec(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	return &ast.UnaryExpr{Token: opTok, Op: opTok.Type, Operand: left, IsPrefix: false}
}

func parseNotNull(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	return &ast.NotNullExpr{Token: opTok, Value: left}
}

func parseMember(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	namePos := p.cur.Pos
	name := p.cur.Literal
	p.expect(token.IDENT)
	return &ast.MemberExpr{Token: opTok, Receiver: left, Name: name, NamePos: namePos}
}

func parseSafeCall(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	namePos := p.cur.Pos
	name := p.cur.Literal
	p.expect(token.IDENT)
	return &ast.SafeCallExpr{Token: opTok, Receiver: left, Name: name, NamePos: namePos}
}

func parseMethodRef(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	method := p.cur.Literal
	p.expect(token.IDENT)
	return &ast.MethodRefExpr{Token: opTok, Receiver: left, Method: method}
}

func parseCall(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	call := &ast.CallExpr{Token: opTok, Callee: left}
	if p.curIs(token.LESS) {
		// explicit type arguments are not parsed anywhere: `f<Int>(x)` reads
		// as comparisons, so CallExpr.TypeArgs is never set by the parser.
	}
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		call.Args = append(call.Args, p.parseArgument())
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RPAREN)
	if p.curIs(token.LBRACE) {
		braceTok := p.cur
		p.advance()
		call.TrailingLambda = p.parseLambdaBody(braceTok)
	}
	return call
}

func (p *Parser) parseArgument() *ast.Argument {
	if p.curIs(token.STAR) {
		p.advance()
		return &ast.Argument{Value: p.parseExpression(LOWEST), IsSpread: true}
	}
	if p.curIs(token.IDENT) && p.peekIs(token.ASSIGN) {
		name := p.cur.Literal
		p.advance()
		p.advance() // '='
		return &ast.Argument{Name: name, Value: p.parseExpression(LOWEST)}
	}
	return &ast.Argument{Value: p.parseExpression(LOWEST)}
}

func parseIndex(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	idx := p.parseExpression(LOWEST)
	p.expect(token.RBRACK)
	if rng, ok := idx.(*ast.RangeExpr); ok {
		return &ast.SliceExpr{Token: opTok, Receiver: left, From: rng.From, To: rng.To}
	}
	return &ast.IndexExpr{Token: opTok, Receiver: left, Index: idx}
}

func parseSafeIndex(p *Parser, left ast.Expression, opTok token.Token) ast.Expression {
	idx := p.parseExpression(LOWEST)
	p.expect(token.RBRACK)
	return &ast.SafeIndexExpr{Token: opTok, Receiver: left, Index: idx}
}
