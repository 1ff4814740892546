// Package parser implements Nova's recursive-descent, Pratt-style parser:
// two entry points (strict Parse and tolerant ParseTolerant), a
// single-slot mark/reset mechanism for bounded lookahead, and the
// declaration/statement/expression grammar grounded on the teacher's
// precedence-table + prefix/infix function-map technique.
package parser

import (
	"fmt"

	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/lexer"
	"github.com/novalang/nova/internal/token"
)

// prefixParseFn parses an expression with tok already consumed as its
// leading token.
type prefixParseFn func(p *Parser, tok token.Token) ast.Expression

// infixParseFn parses an expression continuing from an already-parsed
// left operand, with tok the operator/continuation token just consumed.
type infixParseFn func(p *Parser, left ast.Expression, tok token.Token) ast.Expression

// ParseError is one syntax error: the message, the offending token, and
// (when known) what kind of token the parser expected instead.
type ParseError struct {
	Message      string
	Token        token.Token
	ExpectedKind string
}

func (e *ParseError) Error() string { return e.Message }

// ParseResult is the outcome of ParseTolerant: a best-effort Program (a
// declaration in which an error was recorded is still included, with
// whatever nodes were built for it), the accumulated errors, and any
// top-level statements that are not declarations (wrapped by the analyzer
// into a synthetic `main`).
type ParseResult struct {
	Program            *ast.Program
	Errors             []*ParseError
	TopLevelStatements []ast.Statement
}

// mark is a saved parser position for single-slot backtracking.
type mark struct {
	lexerState lexer.State
	cur, peek  token.Token
}

// Parser consumes a token stream and builds an AST. Not re-entrant or
// safe for concurrent use: it owns one Lexer and a small trio of
// lookahead token state.
type Parser struct {
	lx   *lexer.Lexer
	file string
	src  string

	cur, peek token.Token

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn

	errors             []*ParseError
	tolerant           bool
	topLevelStatements []ast.Statement

	// marked is true while a single-slot backtrack mark is live; only one
	// mark may be outstanding at a time (bounded, non-nested lookahead).
	marked   bool
	markData mark
}

// New creates a Parser reading from lx.
func New(lx *lexer.Lexer, file, src string) *Parser {
	p := &Parser{lx: lx, file: file, src: src}
	p.registerExpressionFns()
	p.advance()
	p.advance()
	return p
}

// Errors returns every syntax error accumulated in tolerant mode.
func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lx.NextToken()
}

// Mark begins a single-slot backtracking checkpoint. Panics if a mark is
// already outstanding — Nova's grammar never needs nested speculation.
func (p *Parser) Mark() {
	if p.marked {
		panic("parser: Mark called while a mark is already outstanding")
	}
	p.marked = true
	p.markData = mark{lexerState: p.lx.SaveState(), cur: p.cur, peek: p.peek}
}

// Reset rewinds to the last Mark and discards it.
func (p *Parser) Reset() {
	if !p.marked {
		panic("parser: Reset called with no outstanding mark")
	}
	p.lx.RestoreState(p.markData.lexerState)
	p.cur, p.peek = p.markData.cur, p.markData.peek
	p.marked = false
}

// Commit discards the last Mark without rewinding (the speculative parse
// succeeded).
func (p *Parser) Commit() {
	p.marked = false
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

func (p *Parser) curIsSoft(lexeme string) bool {
	return p.cur.Type == token.IDENT && p.cur.Literal == lexeme
}

// skipNewlines consumes zero or more NEWLINE tokens, used where a
// statement separator is optional (e.g. right after `{`).
func (p *Parser) skipNewlines() {
	for p.curIs(token.NEWLINE) {
		p.advance()
	}
}

// expect advances past cur if it matches t, else records a ParseError (or
// panics in strict mode) and returns false.
func (p *Parser) expect(t token.Type) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.errorf(t.String(), "expected %s, got %s (%q)", t, p.cur.Type, p.cur.Literal)
	return false
}

func (p *Parser) errorf(expectedKind, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	err := &ParseError{Message: msg, Token: p.cur, ExpectedKind: expectedKind}
	if !p.tolerant {
		panic(err)
	}
	p.errors = append(p.errors, err)
}

// Parse runs the strict entry point: the first syntax error aborts and
// is returned as err.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	p.tolerant = false
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			err = pe
		}
	}()
	prog = p.parseProgram(false)
	return prog, nil
}

// ParseTolerant runs the recovering entry point: every syntax error is
// recorded and parsing goes on from where the error was found. Tokens are
// skipped to the next declaration boundary only when a top-level item or a
// class member starts with a token that cannot begin one; other errors are
// not followed by a resynchronization.
func (p *Parser) ParseTolerant() *ParseResult {
	p.tolerant = true
	prog := p.parseProgram(true)
	return &ParseResult{Program: prog, Errors: p.errors, TopLevelStatements: p.topLevelStatements}
}
