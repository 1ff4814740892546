package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novalang/nova/internal/token"
)

func TestNextToken_Basics(t *testing.T) {
	input := "val x = 5\nx = x + 10"

	tests := []struct {
		expectedLiteral string
		expectedType    token.Type
	}{
		{"val", token.VAL},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"5", token.INT},
		{"\\n", token.NEWLINE},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.INT},
		{"", token.EOF},
	}

	l := New("t.nova", input)
	for i, tt := range tests {
		tok := l.NextToken()
		assert.Equalf(t, tt.expectedType, tok.Type, "tests[%d]: type", i)
		assert.Equalf(t, tt.expectedLiteral, tok.Literal, "tests[%d]: literal", i)
	}
}

func TestNextToken_HardKeywords(t *testing.T) {
	input := "class interface object enum fun val var if else when for while do try catch finally return break continue throw this super import package null true false is as in typealias guard"

	expected := []token.Type{
		token.CLASS, token.INTERFACE, token.OBJECT, token.ENUM, token.FUN, token.VAL,
		token.VAR, token.IF, token.ELSE, token.WHEN, token.FOR, token.WHILE, token.DO,
		token.TRY, token.CATCH, token.FINALLY, token.RETURN, token.BREAK, token.CONTINUE,
		token.THROW, token.THIS, token.SUPER, token.IMPORT, token.PACKAGE_KW, token.NULL_KW,
		token.TRUE, token.FALSE, token.IS, token.AS, token.IN, token.TYPEALIAS, token.GUARD,
	}

	l := New("t.nova", input)
	for i, want := range expected {
		tok := l.NextToken()
		assert.Equalf(t, want, tok.Type, "token %d (%q)", i, tok.Literal)
	}
}

func TestNextToken_SoftKeywordsLexAsIdent(t *testing.T) {
	input := "public override operator suspend const it to step"
	l := New("t.nova", input)
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		assert.Equal(t, token.IDENT, tok.Type, "soft keyword %q must lex as IDENT", tok.Literal)
		_, ok := token.IsSoftKeyword(tok.Literal)
		assert.True(t, ok, "%q should be registered as a soft keyword", tok.Literal)
	}
}

func TestNextToken_Operators(t *testing.T) {
	input := "+ - * / % == != === !== < > <= >= && || ++ -- -> => .. ..< |> ?. ?: ?:= !! :: ?["
	expected := []token.Type{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.EQ_EQ, token.EXCL_EQ, token.EQ_EQ_EQ, token.EXCL_EQ_EQ,
		token.LESS, token.GREATER, token.LESS_EQ, token.GREATER_EQ,
		token.AMP_AMP, token.PIPE_PIPE, token.INC, token.DEC,
		token.ARROW, token.FAT_ARROW, token.DOTDOT, token.DOTDOT_LESS,
		token.PIPE_GT, token.QUESTION_DOT, token.QUESTION_COLON,
		token.QUESTION_COLON_ASSIGN, token.BANG_BANG, token.COLON_COLON,
		token.QUESTION_LBRACK,
	}
	l := New("t.nova", input)
	for i, want := range expected {
		tok := l.NextToken()
		require.Equalf(t, want, tok.Type, "token %d (%q)", i, tok.Literal)
	}
}

func TestNextToken_NumericLiterals(t *testing.T) {
	tests := []struct {
		input string
		typ   token.Type
	}{
		{"42", token.INT},
		{"42L", token.LONG},
		{"0xFF_AA", token.INT},
		{"0b1010", token.INT},
		{"3.14", token.DOUBLE},
		{"3.14f", token.FLOAT},
		{"1_000_000", token.INT},
		{"2e10", token.DOUBLE},
	}
	for _, tt := range tests {
		l := New("t.nova", tt.input)
		tok := l.NextToken()
		assert.Equalf(t, tt.typ, tok.Type, "input %q", tt.input)
		assert.Equal(t, tt.input, tok.Literal)
	}
}

func TestNextToken_SignificantNewline(t *testing.T) {
	input := "val x = 1 +\n  2\nval y = 3"
	l := New("t.nova", input)

	var types []token.Type
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}

	newlineCount := 0
	for _, ty := range types {
		if ty == token.NEWLINE {
			newlineCount++
		}
	}
	// the break after "+" is not significant (continuation); the break
	// after "2" is, since it ends the val statement.
	assert.Equal(t, 1, newlineCount)
}

func TestNextToken_StringInterpolation(t *testing.T) {
	input := `"hello $name, you are ${age + 1} years old"`
	l := New("t.nova", input)
	tok := l.NextToken()
	require.Equal(t, token.STRING, tok.Type)

	parts, ok := tok.Value.([]token.StringPart)
	require.True(t, ok)
	require.Len(t, parts, 5)
	assert.Equal(t, "hello ", parts[0].Literal)
	assert.True(t, parts[1].IsExpr)
	assert.Equal(t, "name", parts[1].ExprSource)
	assert.Equal(t, ", you are ", parts[2].Literal)
	assert.True(t, parts[3].IsExpr)
	assert.Equal(t, "age + 1", parts[3].ExprSource)
}

func TestNextToken_MultilineString(t *testing.T) {
	input := "\"\"\"line one\nline two\"\"\""
	l := New("t.nova", input)
	tok := l.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, "line one\nline two", tok.Literal)
}

func TestNextToken_CharLiteral(t *testing.T) {
	l := New("t.nova", `'a'`)
	tok := l.NextToken()
	require.Equal(t, token.CHAR, tok.Type)
	assert.Equal(t, 'a', tok.Value)
}

func TestNextToken_Comments(t *testing.T) {
	input := "// a line comment\nval x = 1 /* block */ + 2"
	l := New("t.nova", input)
	var literals []string
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if tok.Type == token.COMMENT {
			t.Fatalf("comments should be skipped by default")
		}
		literals = append(literals, tok.Literal)
	}
	assert.NotContains(t, literals, "// a line comment")
}

func TestPeek_DoesNotConsume(t *testing.T) {
	l := New("t.nova", "val x = 1")
	first := l.Peek(0)
	second := l.Peek(0)
	assert.Equal(t, first, second)
	assert.Equal(t, token.VAL, l.NextToken().Type)
	assert.Equal(t, token.IDENT, l.NextToken().Type)
}

func TestSaveRestoreState(t *testing.T) {
	l := New("t.nova", "val x = 1 + 2")
	_ = l.NextToken() // val
	saved := l.SaveState()
	_ = l.NextToken() // x
	_ = l.NextToken() // =
	l.RestoreState(saved)
	tok := l.NextToken()
	assert.Equal(t, token.IDENT, tok.Type)
	assert.Equal(t, "x", tok.Literal)
}

func TestLexer_IllegalCharacterRecorded(t *testing.T) {
	l := New("t.nova", "val x = 1 ~ 2")
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
	}
	require.NotEmpty(t, l.Errors())
}
