package ast

import (
	"strings"

	"github.com/novalang/nova/internal/token"
)

// Block is a brace-delimited sequence of statements introducing a lexical
// scope.
type Block struct {
	Token      token.Token // the '{'
	Statements []Statement
}

func (b *Block) statementNode()      {}
func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) Pos() token.Position  { return b.Token.Pos }
func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// ExpressionStmt wraps an expression used as a statement.
type ExpressionStmt struct {
	Token token.Token
	Expr  Expression
}

func (s *ExpressionStmt) statementNode()      {}
func (s *ExpressionStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStmt) Pos() token.Position  { return s.Token.Pos }
func (s *ExpressionStmt) String() string        { return s.Expr.String() }

// DeclarationStmt wraps a local PropertyDecl, DestructuringDecl, ClassDecl,
// or FunDecl that appears inside a function/block body.
type DeclarationStmt struct {
	Token token.Token
	Decl  Declaration
}

func (s *DeclarationStmt) statementNode()      {}
func (s *DeclarationStmt) TokenLiteral() string { return s.Token.Literal }
func (s *DeclarationStmt) Pos() token.Position  { return s.Token.Pos }
func (s *DeclarationStmt) String() string        { return s.Decl.String() }

// IfStmt is `if (cond) then [else else_]`, used when the `if` appears in
// statement position (it may also appear as an IfExpr in expression
// position, sharing the same shape).
type IfStmt struct {
	Token     token.Token
	Condition Expression
	Then      Statement
	Else      Statement // nil if absent
}

func (s *IfStmt) statementNode()      {}
func (s *IfStmt) TokenLiteral() string { return s.Token.Literal }
func (s *IfStmt) Pos() token.Position  { return s.Token.Pos }
func (s *IfStmt) String() string {
	var sb strings.Builder
	sb.WriteString("if (")
	sb.WriteString(s.Condition.String())
	sb.WriteString(") ")
	sb.WriteString(s.Then.String())
	if s.Else != nil {
		sb.WriteString(" else ")
		sb.WriteString(s.Else.String())
	}
	return sb.String()
}

// WhenBranch is one `condition(s) -> body` arm of a `when`. Conditions is
// empty for the `else` arm. An `is T` condition is a TypeCheckExpr with a
// nil Value and an `in x` condition is a BinaryExpr(IN) with a nil Left;
// any other entry is matched against the subject by plain equality.
type WhenBranch struct {
	Conditions []Expression
	IsElse     bool
	Body       Statement
}

// WhenStmt is Nova's multi-way branch, with or without a subject
// expression (`when (x) { ... }` vs. `when { ... }`).
type WhenStmt struct {
	Token   token.Token
	Subject Expression // nil for subject-less form
	Binding string     // `when (val x = ...)` binding name, empty if none
	Branches []*WhenBranch
}

func (s *WhenStmt) statementNode()      {}
func (s *WhenStmt) TokenLiteral() string { return s.Token.Literal }
func (s *WhenStmt) Pos() token.Position  { return s.Token.Pos }
func (s *WhenStmt) String() string {
	var sb strings.Builder
	sb.WriteString("when ")
	if s.Subject != nil {
		sb.WriteString("(")
		sb.WriteString(s.Subject.String())
		sb.WriteString(") ")
	}
	sb.WriteString("{ ... }")
	return sb.String()
}

// ForStmt is `for (name[: Type] in iterable) body`, optionally
// destructuring the loop variable (`for ((k, v) in map)`).
type ForStmt struct {
	Token          token.Token
	VarName        string
	DestructNames  []string // non-empty when the loop variable is destructured
	VarType        TypeRef
	Iterable       Expression
	Body           Statement
}

func (s *ForStmt) statementNode()      {}
func (s *ForStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ForStmt) Pos() token.Position  { return s.Token.Pos }
func (s *ForStmt) String() string {
	return "for (" + s.VarName + " in " + s.Iterable.String() + ") " + s.Body.String()
}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Token     token.Token
	Condition Expression
	Body      Statement
}

func (s *WhileStmt) statementNode()      {}
func (s *WhileStmt) TokenLiteral() string { return s.Token.Literal }
func (s *WhileStmt) Pos() token.Position  { return s.Token.Pos }
func (s *WhileStmt) String() string {
	return "while (" + s.Condition.String() + ") " + s.Body.String()
}

// DoWhileStmt is `do body while (cond)`.
type DoWhileStmt struct {
	Token     token.Token
	Body      Statement
	Condition Expression
}

func (s *DoWhileStmt) statementNode()      {}
func (s *DoWhileStmt) TokenLiteral() string { return s.Token.Literal }
func (s *DoWhileStmt) Pos() token.Position  { return s.Token.Pos }
func (s *DoWhileStmt) String() string {
	return "do " + s.Body.String() + " while (" + s.Condition.String() + ")"
}

// CatchClause is one `catch (name: Type) body` arm of a TryStmt.
type CatchClause struct {
	Token   token.Token
	VarName string
	VarType TypeRef
	Body    *Block
}

// TryStmt is `try body [catch...]* [finally body]`, used when `try`
// appears in statement position (shares shape with TryExpr).
type TryStmt struct {
	Token    token.Token
	Body     *Block
	Catches  []*CatchClause
	Finally  *Block // nil if absent
}

func (s *TryStmt) statementNode()      {}
func (s *TryStmt) TokenLiteral() string { return s.Token.Literal }
func (s *TryStmt) Pos() token.Position  { return s.Token.Pos }
func (s *TryStmt) String() string       { return "try " + s.Body.String() }

// ReturnStmt is `return [expr]`, optionally labeled (`return@label`).
type ReturnStmt struct {
	Token token.Token
	Label string
	Value Expression // nil for a bare `return`
}

func (s *ReturnStmt) statementNode()      {}
func (s *ReturnStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStmt) Pos() token.Position  { return s.Token.Pos }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

// BreakStmt is `break[@label]`.
type BreakStmt struct {
	Token token.Token
	Label string
}

func (s *BreakStmt) statementNode()      {}
func (s *BreakStmt) TokenLiteral() string { return s.Token.Literal }
func (s *BreakStmt) Pos() token.Position  { return s.Token.Pos }
func (s *BreakStmt) String() string        { return "break" }

// ContinueStmt is `continue[@label]`.
type ContinueStmt struct {
	Token token.Token
	Label string
}

func (s *ContinueStmt) statementNode()      {}
func (s *ContinueStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ContinueStmt) Pos() token.Position  { return s.Token.Pos }
func (s *ContinueStmt) String() string        { return "continue" }

// ThrowStmt is `throw expr`.
type ThrowStmt struct {
	Token token.Token
	Value Expression
}

func (s *ThrowStmt) statementNode()      {}
func (s *ThrowStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ThrowStmt) Pos() token.Position  { return s.Token.Pos }
func (s *ThrowStmt) String() string        { return "throw " + s.Value.String() }

// GuardStmt is `guard condition else body`: body must diverge (return,
// throw, break, or continue) when condition is false.
type GuardStmt struct {
	Token     token.Token
	Condition Expression
	ElseBody  *Block
}

func (s *GuardStmt) statementNode()      {}
func (s *GuardStmt) TokenLiteral() string { return s.Token.Literal }
func (s *GuardStmt) Pos() token.Position  { return s.Token.Pos }
func (s *GuardStmt) String() string {
	return "guard " + s.Condition.String() + " else " + s.ElseBody.String()
}

// UseStmt is `use (name = resource) body`, a resource bound for the
// duration of body and closed (via its `close()` member) on exit.
type UseStmt struct {
	Token    token.Token
	VarName  string
	Resource Expression
	Body     *Block
}

func (s *UseStmt) statementNode()      {}
func (s *UseStmt) TokenLiteral() string { return s.Token.Literal }
func (s *UseStmt) Pos() token.Position  { return s.Token.Pos }
func (s *UseStmt) String() string {
	return "use (" + s.VarName + " = " + s.Resource.String() + ") " + s.Body.String()
}
