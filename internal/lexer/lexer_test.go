package lexer

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestNextToken(t *testing.T) {
	input := `func int add(int a, int b) {
	return a + b;
}`

	expected := []struct {
		typ     TokenType
		literal string
	}{
		{TOKEN_FUNC, "func"},
		{TOKEN_TYPE_INT, "int"},
		{TOKEN_IDENT, "add"},
		{TOKEN_LPAREN, "("},
		{TOKEN_TYPE_INT, "int"},
		{TOKEN_IDENT, "a"},
		{TOKEN_COMMA, ","},
		{TOKEN_TYPE_INT, "int"},
		{TOKEN_IDENT, "b"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_RETURN, "return"},
		{TOKEN_IDENT, "a"},
		{TOKEN_PLUS, "+"},
		{TOKEN_IDENT, "b"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_EOF, ""},
	}

	l := New(input)
	for _, want := range expected {
		tok := l.NextToken()
		be.Equal(t, tok.Type, want.typ)
		be.Equal(t, tok.Literal, want.literal)
	}
}

func TestOperators(t *testing.T) {
	input := `= + - * / % == != < > <= >= && || !`

	expected := []TokenType{
		TOKEN_ASSIGN, TOKEN_PLUS, TOKEN_MINUS, TOKEN_ASTERISK, TOKEN_SLASH,
		TOKEN_PERCENT, TOKEN_EQ, TOKEN_NOT_EQ, TOKEN_LT, TOKEN_GT,
		TOKEN_LT_EQ, TOKEN_GT_EQ, TOKEN_AND, TOKEN_OR, TOKEN_NOT,
		TOKEN_EOF,
	}

	l := New(input)
	for _, want := range expected {
		be.Equal(t, l.NextToken().Type, want)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input   string
		typ     TokenType
		literal string
	}{
		{"0", TOKEN_INT, "0"},
		{"12345", TOKEN_INT, "12345"},
		{"3.14", TOKEN_FLOAT, "3.14"},
		{"0.5", TOKEN_FLOAT, "0.5"},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		be.Equal(t, tok.Type, tt.typ)
		be.Equal(t, tok.Literal, tt.literal)
	}
}

// 点号后没有数字时，点号不属于数字
func TestNumberDotWithoutDigit(t *testing.T) {
	l := New("1.x")
	tok := l.NextToken()
	be.Equal(t, tok.Type, TOKEN_INT)
	be.Equal(t, tok.Literal, "1")

	tok = l.NextToken()
	be.Equal(t, tok.Type, TOKEN_ILLEGAL)
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\"b\\c\nd\te"`)
	tok := l.NextToken()
	be.Equal(t, tok.Type, TOKEN_STRING)
	be.Equal(t, tok.Literal, "a\"b\\c\nd\te")
}

func TestBadEscape(t *testing.T) {
	l := New(`"a\qb"`)
	tok := l.NextToken()
	be.Equal(t, tok.Type, TOKEN_ILLEGAL)
	be.Equal(t, tok.Literal, `bad escape \q`)
}

func TestUnterminatedString(t *testing.T) {
	for _, input := range []string{`"abc`, "\"abc\ndef\""} {
		l := New(input)
		tok := l.NextToken()
		be.Equal(t, tok.Type, TOKEN_ILLEGAL)
		be.Equal(t, tok.Literal, "unterminated string")
	}
}

func TestLineComment(t *testing.T) {
	input := "x // rest of line\ny"

	toks := Tokenize(input)
	be.Equal(t, len(toks), 3)
	be.Equal(t, toks[0].Literal, "x")
	be.Equal(t, toks[1].Literal, "y")
	be.Equal(t, toks[2].Type, TOKEN_EOF)
}

func TestLoneAmpersand(t *testing.T) {
	l := New("a & b")
	l.NextToken() // a
	tok := l.NextToken()
	be.Equal(t, tok.Type, TOKEN_ILLEGAL)
}

func TestPositions(t *testing.T) {
	input := "x\n  y"

	l := New(input)
	tok := l.NextToken()
	be.Equal(t, tok.Line, 1)
	be.Equal(t, tok.Column, 1)

	tok = l.NextToken()
	be.Equal(t, tok.Line, 2)
	be.Equal(t, tok.Column, 3)
}

func TestKeywords(t *testing.T) {
	be.Equal(t, LookupIdent("while"), TOKEN_WHILE)
	be.Equal(t, LookupIdent("void"), TOKEN_TYPE_VOID)
	be.Equal(t, LookupIdent("whilex"), TOKEN_IDENT)
}
