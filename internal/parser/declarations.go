package parser

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/token"
)

// parseProgram is the top-level loop: optional `package`, zero or more
// `import`s, then declarations (and, tolerated at file scope, bare
// statements collected into ParseResult.TopLevelStatements).
func (p *Parser) parseProgram(tolerant bool) *ast.Program {
	prog := &ast.Program{}
	p.skipNewlines()

	if p.curIs(token.PACKAGE_KW) {
		prog.Package = p.parsePackageDecl()
		p.skipNewlines()
	}
	for p.curIs(token.IMPORT) {
		prog.Imports = append(prog.Imports, p.parseImportDecl())
		p.skipNewlines()
	}

	for !p.curIs(token.EOF) {
		p.skipNewlines()
		if p.curIs(token.EOF) {
			break
		}
		if tolerant {
			p.parseTopLevelItemRecovering(prog)
		} else {
			p.parseTopLevelItemInto(prog)
		}
		p.skipNewlines()
	}
	return prog
}

func (p *Parser) parseTopLevelItemInto(prog *ast.Program) {
	decl, stmt := p.parseTopLevelItem()
	switch {
	case decl != nil:
		prog.Declarations = append(prog.Declarations, decl)
	case stmt != nil:
		p.topLevelStatements = append(p.topLevelStatements, stmt)
	}
}

func (p *Parser) parseTopLevelItemRecovering(prog *ast.Program) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*ParseError); !ok {
				panic(r)
			}
			p.synchronize()
		}
	}()
	p.parseTopLevelItemInto(prog)
}

func (p *Parser) parseTopLevelItem() (ast.Declaration, ast.Statement) {
	anns := p.parseAnnotations()
	mods := p.parseModifiers()

	switch {
	case p.curIs(token.CLASS):
		return p.parseClassDecl(anns, mods, false), nil
	case p.curIs(token.INTERFACE):
		return p.parseClassDecl(anns, mods, true), nil
	case p.curIs(token.OBJECT):
		return p.parseObjectDecl(anns, mods), nil
	case p.curIs(token.ENUM):
		return p.parseEnumDecl(anns, mods), nil
	case p.curIs(token.FUN):
		return p.parseFunDecl(anns, mods), nil
	case p.curIs(token.VAL), p.curIs(token.VAR):
		return p.parsePropertyOrDestructuring(anns, mods), nil
	case p.curIs(token.TYPEALIAS):
		return p.parseTypeAliasDecl(), nil
	default:
		if len(anns) > 0 || mods != (ast.Modifiers{}) {
			p.errorf("", "expected a declaration after modifiers, got %s", p.cur.Type)
			if p.tolerant {
				p.synchronize()
			}
			return nil, nil
		}
		return nil, p.parseStatement()
	}
}

func (p *Parser) parsePackageDecl() *ast.PackageDecl {
	tok := p.cur
	p.advance()
	names := []string{p.cur.Literal}
	p.expect(token.IDENT)
	for p.curIs(token.DOT) {
		p.advance()
		names = append(names, p.cur.Literal)
		p.expect(token.IDENT)
	}
	return &ast.PackageDecl{Token: tok, Name: names}
}

func (p *Parser) parseImportDecl() *ast.ImportDecl {
	tok := p.cur
	p.advance()
	path := []string{p.cur.Literal}
	p.expect(token.IDENT)
	for p.curIs(token.DOT) {
		p.advance()
		if p.curIs(token.STAR) {
			path = append(path, "*")
			p.advance()
			break
		}
		path = append(path, p.cur.Literal)
		p.expect(token.IDENT)
	}
	decl := &ast.ImportDecl{Token: tok, Path: path}
	if p.curIs(token.AS) {
		p.advance()
		decl.Alias = p.cur.Literal
		p.expect(token.IDENT)
	}
	return decl
}

func (p *Parser) parseClassDecl(anns []*ast.Annotation, mods ast.Modifiers, isInterface bool) *ast.ClassDecl {
	tok := p.cur
	p.advance() // class | interface
	decl := &ast.ClassDecl{Token: tok, Annotations: anns, Modifiers: mods, IsInterfaceLike: isInterface}
	decl.NamePos = p.cur.Pos
	decl.Name = p.cur.Literal
	p.expect(token.IDENT)
	decl.TypeParams = p.parseTypeParams()

	if p.curIs(token.LPAREN) {
		decl.PrimaryCtorParams = p.parseParameterList(true)
	}

	if p.curIs(token.COLON) {
		p.advance()
		first := p.parseTypeRef()
		if p.curIs(token.LPAREN) {
			decl.SuperClass = first
			decl.SuperClassArgs = p.parseCallArgs()
		} else {
			decl.Interfaces = append(decl.Interfaces, first)
		}
		for p.curIs(token.COMMA) {
			p.advance()
			decl.Interfaces = append(decl.Interfaces, p.parseTypeRef())
		}
	}

	if p.curIs(token.LBRACE) {
		decl.Members = p.parseClassBody()
	}
	return decl
}

func (p *Parser) parseObjectDecl(anns []*ast.Annotation, mods ast.Modifiers) *ast.ObjectDecl {
	tok := p.cur
	p.advance() // object
	decl := &ast.ObjectDecl{Token: tok, Annotations: anns, Modifiers: mods}
	if p.curIs(token.IDENT) {
		decl.NamePos = p.cur.Pos
		decl.Name = p.cur.Literal
		p.advance()
	}
	if p.curIs(token.COLON) {
		p.advance()
		first := p.parseTypeRef()
		if p.curIs(token.LPAREN) {
			decl.SuperClass = first
			p.parseCallArgs()
		} else {
			decl.Interfaces = append(decl.Interfaces, first)
		}
		for p.curIs(token.COMMA) {
			p.advance()
			decl.Interfaces = append(decl.Interfaces, p.parseTypeRef())
		}
	}
	if p.curIs(token.LBRACE) {
		decl.Members = p.parseClassBody()
	}
	return decl
}

func (p *Parser) parseEnumDecl(anns []*ast.Annotation, mods ast.Modifiers) *ast.EnumDecl {
	tok := p.cur
	p.advance() // enum
	p.expect(token.CLASS)
	decl := &ast.EnumDecl{Token: tok, Annotations: anns, Modifiers: mods}
	decl.NamePos = p.cur.Pos
	decl.Name = p.cur.Literal
	p.expect(token.IDENT)

	if p.curIs(token.LPAREN) {
		decl.PrimaryCtorParams = p.parseParameterList(true)
	}
	if p.curIs(token.COLON) {
		p.advance()
		decl.Interfaces = append(decl.Interfaces, p.parseTypeRef())
		for p.curIs(token.COMMA) {
			p.advance()
			decl.Interfaces = append(decl.Interfaces, p.parseTypeRef())
		}
	}

	p.expect(token.LBRACE)
	p.skipNewlines()
	for p.curIs(token.IDENT) {
		decl.Entries = append(decl.Entries, p.parseEnumEntry())
		if p.curIs(token.COMMA) {
			p.advance()
			p.skipNewlines()
		}
	}
	if p.curIs(token.SEMICOLON) {
		p.advance()
		p.skipNewlines()
		for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
			decl.Members = append(decl.Members, p.parseMemberDecl())
			p.skipNewlines()
		}
	}
	p.expect(token.RBRACE)
	return decl
}

func (p *Parser) parseEnumEntry() *ast.EnumEntry {
	tok := p.cur
	entry := &ast.EnumEntry{Token: tok, Name: p.cur.Literal, NamePos: p.cur.Pos}
	p.expect(token.IDENT)
	if p.curIs(token.LPAREN) {
		entry.Args = p.parseCallArgs()
	}
	if p.curIs(token.LBRACE) {
		entry.Body = p.parseClassBody()
	}
	return entry
}

func (p *Parser) parseClassBody() []ast.Declaration {
	p.expect(token.LBRACE)
	p.skipNewlines()
	var members []ast.Declaration
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		members = append(members, p.parseMemberDecl())
		p.skipNewlines()
	}
	p.expect(token.RBRACE)
	return members
}

func (p *Parser) parseMemberDecl() ast.Declaration {
	if p.curIs(token.IDENT) && p.cur.Literal == "constructor" {
		return p.parseConstructorDecl(ast.Modifiers{})
	}
	if kw, ok := token.IsSoftKeyword(p.cur.Literal); ok && p.curIs(token.IDENT) && kw == token.INIT {
		return p.parseInitBlock()
	}

	anns := p.parseAnnotations()
	mods := p.parseModifiers()

	if p.curIs(token.IDENT) && p.cur.Literal == "constructor" {
		return p.parseConstructorDecl(mods)
	}

	switch {
	case p.curIs(token.CLASS):
		return p.parseClassDecl(anns, mods, false)
	case p.curIs(token.INTERFACE):
		return p.parseClassDecl(anns, mods, true)
	case p.curIs(token.OBJECT):
		return p.parseObjectDecl(anns, mods)
	case p.curIs(token.ENUM):
		return p.parseEnumDecl(anns, mods)
	case p.curIs(token.FUN):
		return p.parseFunDecl(anns, mods)
	case p.curIs(token.VAL), p.curIs(token.VAR):
		return p.parsePropertyOrDestructuring(anns, mods)
	case p.curIs(token.TYPEALIAS):
		return p.parseTypeAliasDecl()
	default:
		p.errorf("", "expected a class member, got %s (%q)", p.cur.Type, p.cur.Literal)
		if p.tolerant {
			p.synchronize()
		}
		return &ast.InitBlockDecl{Token: p.cur, Body: &ast.Block{Token: p.cur}}
	}
}

func (p *Parser) parseConstructorDecl(mods ast.Modifiers) *ast.ConstructorDecl {
	tok := p.cur
	p.advance() // constructor
	decl := &ast.ConstructorDecl{Token: tok, Modifiers: mods}
	decl.Params = p.parseParameterList(false)
	if p.curIs(token.COLON) {
		p.advance()
		switch {
		case p.curIs(token.THIS):
			decl.DelegateTo = "this"
			p.advance()
		case p.curIs(token.SUPER):
			decl.DelegateTo = "super"
			p.advance()
		}
		decl.DelegateArgs = p.parseCallArgs()
	}
	if p.curIs(token.LBRACE) {
		decl.Body = p.parseBlock()
	}
	return decl
}

func (p *Parser) parseInitBlock() *ast.InitBlockDecl {
	tok := p.cur
	p.advance() // init
	return &ast.InitBlockDecl{Token: tok, Body: p.parseBlock()}
}

func (p *Parser) parseTypeAliasDecl() *ast.TypeAliasDecl {
	tok := p.cur
	p.advance()
	decl := &ast.TypeAliasDecl{Token: tok}
	decl.NamePos = p.cur.Pos
	decl.Name = p.cur.Literal
	p.expect(token.IDENT)
	decl.TypeParams = p.parseTypeParams()
	p.expect(token.ASSIGN)
	decl.Aliased = p.parseTypeRef()
	return decl
}

func (p *Parser) parseFunDecl(anns []*ast.Annotation, mods ast.Modifiers) *ast.FunDecl {
	tok := p.cur
	p.advance() // fun
	decl := &ast.FunDecl{Token: tok, Annotations: anns, Modifiers: mods}
	decl.TypeParams = p.parseTypeParams()

	// Extension-function receiver: a type ref immediately followed by '.'.
	// Backtrack if what looked like a receiver type turns out to just be
	// the function name (no receiver present).
	if p.curIs(token.IDENT) && (p.peekIs(token.DOT) || p.peekIs(token.LESS) || p.peekIs(token.QUESTION)) {
		p.Mark()
		recv := p.parseTypeRef()
		if p.curIs(token.DOT) {
			p.advance()
			decl.Receiver = recv
			p.Commit()
		} else {
			p.Reset()
		}
	}

	decl.NamePos = p.cur.Pos
	decl.Name = p.cur.Literal
	p.expect(token.IDENT)
	decl.Params = p.parseParameterList(false)
	if p.curIs(token.COLON) {
		p.advance()
		decl.ReturnType = p.parseTypeRef()
	}
	switch {
	case p.curIs(token.ASSIGN):
		p.advance()
		decl.ExprBody = p.parseExpression(LOWEST)
	case p.curIs(token.LBRACE):
		decl.Body = p.parseBlock()
	}
	return decl
}

func (p *Parser) parsePropertyOrDestructuring(anns []*ast.Annotation, mods ast.Modifiers) ast.Declaration {
	tok := p.cur
	mutable := p.curIs(token.VAR)
	p.advance() // val | var

	if p.curIs(token.LPAREN) {
		return p.parseDestructuringDecl(tok, mutable)
	}

	decl := &ast.PropertyDecl{Token: tok, Annotations: anns, Modifiers: mods, Mutable: mutable}
	decl.NamePos = p.cur.Pos
	decl.Name = p.cur.Literal
	p.expect(token.IDENT)
	if p.curIs(token.COLON) {
		p.advance()
		decl.Type = p.parseTypeRef()
	}
	if p.curIs(token.ASSIGN) {
		p.advance()
		decl.Initializer = p.parseExpression(LOWEST)
	} else if p.curIs(token.IDENT) {
		if kw, ok := token.IsSoftKeyword(p.cur.Literal); ok && kw == token.BY {
			p.advance()
			decl.Delegate = p.parseExpression(LOWEST)
		}
	}
	decl.Getter, decl.Setter = p.parseOptionalAccessors()
	return decl
}

// parseOptionalAccessors looks (with a single backtrack mark) past any
// line breaks for a `get()`/`set(v)` accessor pair following a property.
func (p *Parser) parseOptionalAccessors() (getter, setter *ast.FunDecl) {
	for i := 0; i < 2; i++ {
		p.Mark()
		p.skipNewlines()
		if p.curIs(token.IDENT) {
			if kw, ok := token.IsSoftKeyword(p.cur.Literal); ok && kw == token.GET && p.peekIs(token.LPAREN) && getter == nil {
				p.Commit()
				getter = p.parseAccessorFun()
				continue
			}
			if kw, ok := token.IsSoftKeyword(p.cur.Literal); ok && kw == token.SET && p.peekIs(token.LPAREN) && setter == nil {
				p.Commit()
				setter = p.parseAccessorFun()
				continue
			}
		}
		p.Reset()
		break
	}
	return getter, setter
}

func (p *Parser) parseAccessorFun() *ast.FunDecl {
	tok := p.cur
	fn := &ast.FunDecl{Token: tok, Name: tok.Literal}
	p.advance() // get | set
	fn.Params = p.parseParameterList(false)
	if p.curIs(token.COLON) {
		p.advance()
		fn.ReturnType = p.parseTypeRef()
	}
	switch {
	case p.curIs(token.ASSIGN):
		p.advance()
		fn.ExprBody = p.parseExpression(LOWEST)
	case p.curIs(token.LBRACE):
		fn.Body = p.parseBlock()
	}
	return fn
}

func (p *Parser) parseDestructuringDecl(tok token.Token, mutable bool) *ast.DestructuringDecl {
	decl := &ast.DestructuringDecl{Token: tok, Mutable: mutable}
	p.expect(token.LPAREN)
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		decl.NamePositions = append(decl.NamePositions, p.cur.Pos)
		decl.Names = append(decl.Names, p.cur.Literal)
		p.expect(token.IDENT)
		var ty ast.TypeRef
		if p.curIs(token.COLON) {
			p.advance()
			ty = p.parseTypeRef()
		}
		decl.Types = append(decl.Types, ty)
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.ASSIGN)
	decl.Initializer = p.parseExpression(LOWEST)
	return decl
}

func (p *Parser) parseCallArgs() []ast.Expression {
	p.expect(token.LPAREN)
	var args []ast.Expression
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		args = append(args, p.parseExpression(LOWEST))
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RPAREN)
	return args
}

func (p *Parser) parseParameterList(allowProperty bool) []*ast.Parameter {
	p.expect(token.LPAREN)
	var params []*ast.Parameter
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		params = append(params, p.parseParameter(allowProperty))
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseParameter(allowProperty bool) *ast.Parameter {
	tok := p.cur
	param := &ast.Parameter{Token: tok}
	mods := p.parseModifiers()
	param.Visibility = mods.Visibility
	if mods.Vararg {
		param.IsVararg = true
	}

	if allowProperty && (p.curIs(token.VAL) || p.curIs(token.VAR)) {
		param.IsProperty = true
		param.PropertyMut = p.curIs(token.VAR)
		p.advance()
	}

	param.NamePos = p.cur.Pos
	param.Name = p.cur.Literal
	p.expect(token.IDENT)
	if p.curIs(token.COLON) {
		p.advance()
		param.Type = p.parseTypeRef()
	}
	if p.curIs(token.ASSIGN) {
		p.advance()
		param.DefaultValue = p.parseExpression(LOWEST)
	}
	return param
}
