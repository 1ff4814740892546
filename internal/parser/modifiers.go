package parser

import (
	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/token"
)

// parseAnnotations consumes zero or more `@Name` / `@Name(args)` prefixes.
func (p *Parser) parseAnnotations() []*ast.Annotation {
	var out []*ast.Annotation
	for p.curIs(token.AT) {
		tok := p.cur
		p.advance()
		name := p.cur.Literal
		p.expect(token.IDENT)
		ann := &ast.Annotation{Token: tok, Name: name}
		if p.curIs(token.LPAREN) {
			p.advance()
			for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
				ann.Args = append(ann.Args, p.parseExpression(LOWEST))
				if p.curIs(token.COMMA) {
					p.advance()
				}
			}
			p.expect(token.RPAREN)
		}
		out = append(out, ann)
		p.skipNewlines()
	}
	return out
}

// parseModifiers consumes zero or more soft-keyword modifiers, validating
// the conflicts the spec calls out: duplicate modifiers, more than one
// visibility keyword, and `abstract`+`final` together.
func (p *Parser) parseModifiers() ast.Modifiers {
	var mods ast.Modifiers
	seen := make(map[string]bool)
	visibilityCount := 0

	for p.curIs(token.IDENT) {
		kw, ok := token.IsSoftKeyword(p.cur.Literal)
		if !ok {
			break
		}
		// `to`, `it`, `step`, `get`, `set`, `init` read as
		// soft keywords elsewhere are not declaration modifiers; stop.
		switch kw {
		case token.TO, token.IT, token.STEP, token.GET, token.SET, token.INIT:
			goto done
		}
		if seen[p.cur.Literal] {
			p.errorf("", "duplicate modifier %q", p.cur.Literal)
		}
		seen[p.cur.Literal] = true

		switch kw {
		case token.PUBLIC:
			mods.Visibility = ast.VisibilityPublic
			visibilityCount++
		case token.PRIVATE:
			mods.Visibility = ast.VisibilityPrivate
			visibilityCount++
		case token.PROTECTED:
			mods.Visibility = ast.VisibilityProtected
			visibilityCount++
		case token.INTERNAL:
			mods.Visibility = ast.VisibilityInternal
			visibilityCount++
		case token.OPEN:
			mods.Open = true
		case token.OVERRIDE:
			mods.Override = true
		case token.ABSTRACT:
			mods.Abstract = true
		case token.SEALED:
			mods.Sealed = true
		case token.FINAL_SOFT:
			mods.Final = true
		case token.OPERATOR:
			mods.Operator = true
		case token.SUSPEND:
			mods.Suspend = true
		case token.CONST:
			mods.Const = true
		case token.INLINE:
			mods.Inline = true
		case token.COMPANION:
			mods.Companion = true
		case token.DATA:
			mods.Data = true
		case token.VARARG:
			mods.Vararg = true
		case token.CROSSINLINE:
			mods.Crossinline = true
		case token.STATIC_SOFT:
			mods.Static = true
		default:
			goto done
		}
		p.advance()
	}
done:
	if visibilityCount > 1 {
		p.errorf("", "conflicting visibility modifiers")
	}
	if mods.Abstract && mods.Final {
		p.errorf("", "'abstract' and 'final' cannot be combined")
	}
	return mods
}
