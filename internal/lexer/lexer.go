package lexer

import (
	"strings"
	"unicode"
)

// Lexer 词法分析器
type Lexer struct {
	input   string
	pos     int  // 当前位置
	readPos int  // 下一个读取位置
	ch      byte // 当前字符
	line    int  // 当前行号
	column  int  // 当前列号
}

// New 创建一个新的词法分析器
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar 查看下一个字符但不移动位置
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// NextToken 获取下一个 token
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	tok.Line = l.line
	tok.Column = l.column

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_EQ, Literal: "==", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_ASSIGN, l.ch)
		}
	case '+':
		tok = l.newToken(TOKEN_PLUS, l.ch)
	case '-':
		tok = l.newToken(TOKEN_MINUS, l.ch)
	case '*':
		tok = l.newToken(TOKEN_ASTERISK, l.ch)
	case '/':
		if l.peekChar() == '/' {
			tok.Type = TOKEN_COMMENT
			tok.Literal = l.readLineComment()
			return tok
		}
		tok = l.newToken(TOKEN_SLASH, l.ch)
	case '%':
		tok = l.newToken(TOKEN_PERCENT, l.ch)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_NOT_EQ, Literal: "!=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_NOT, l.ch)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_LT_EQ, Literal: "<=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_LT, l.ch)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_GT_EQ, Literal: ">=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_GT, l.ch)
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = Token{Type: TOKEN_AND, Literal: "&&", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_ILLEGAL, l.ch)
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = Token{Type: TOKEN_OR, Literal: "||", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_ILLEGAL, l.ch)
		}
	case ',':
		tok = l.newToken(TOKEN_COMMA, l.ch)
	case ';':
		tok = l.newToken(TOKEN_SEMICOLON, l.ch)
	case '(':
		tok = l.newToken(TOKEN_LPAREN, l.ch)
	case ')':
		tok = l.newToken(TOKEN_RPAREN, l.ch)
	case '{':
		tok = l.newToken(TOKEN_LBRACE, l.ch)
	case '}':
		tok = l.newToken(TOKEN_RBRACE, l.ch)
	case '"':
		return l.readString(tok.Line, tok.Column)
	case 0:
		tok.Literal = ""
		tok.Type = TOKEN_EOF
	default:
		if l.isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = LookupIdent(tok.Literal)
			return tok
		} else if l.isDigit(l.ch) {
			tok.Literal, tok.Type = l.readNumber()
			return tok
		}
		tok = l.newToken(TOKEN_ILLEGAL, l.ch)
	}

	l.readChar()
	return tok
}

// newToken 创建新的 token
func (l *Lexer) newToken(tokenType TokenType, ch byte) Token {
	return Token{Type: tokenType, Literal: string(ch), Line: l.line, Column: l.column}
}

// skipWhitespace 跳过空白字符
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier 读取标识符
func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for l.isLetter(l.ch) || l.isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readNumber 读取数字（整数或浮点数）
// 没有小数点的是整数，带小数点的是浮点数
func (l *Lexer) readNumber() (string, TokenType) {
	pos := l.pos
	tokenType := TOKEN_INT

	for l.isDigit(l.ch) {
		l.readChar()
	}

	// 浮点数
	if l.ch == '.' && l.isDigit(l.peekChar()) {
		tokenType = TOKEN_FLOAT
		l.readChar()
		for l.isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[pos:l.pos], tokenType
}

// readString 读取双引号字符串并解码转义序列
// 支持 \" \\ \n \t，其他转义序列和未结束的字符串返回 ILLEGAL token
func (l *Lexer) readString(line, column int) Token {
	var sb strings.Builder
	l.readChar() // 跳过开头的 "

	for {
		switch l.ch {
		case '"':
			l.readChar() // 跳过结尾的 "
			return Token{Type: TOKEN_STRING, Literal: sb.String(), Line: line, Column: column}
		case 0, '\n':
			return Token{Type: TOKEN_ILLEGAL, Literal: "unterminated string", Line: line, Column: column}
		case '\\':
			l.readChar()
			switch l.ch {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				return Token{Type: TOKEN_ILLEGAL, Literal: "bad escape \\" + string(l.ch), Line: line, Column: column}
			}
			l.readChar()
		default:
			sb.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// readLineComment 读取单行注释
func (l *Lexer) readLineComment() string {
	pos := l.pos
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// isLetter 判断是否为字母
func (l *Lexer) isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

// isDigit 判断是否为数字
func (l *Lexer) isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize 将输入字符串转换为 token 列表（跳过注释）
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TOKEN_COMMENT {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}
