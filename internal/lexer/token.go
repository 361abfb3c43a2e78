package lexer

// TokenType 表示 token 的类型
type TokenType int

const (
	// 特殊 token
	TOKEN_ILLEGAL TokenType = iota
	TOKEN_EOF
	TOKEN_COMMENT

	// 标识符和字面量
	TOKEN_IDENT  // 标识符
	TOKEN_INT    // 整数
	TOKEN_FLOAT  // 浮点数
	TOKEN_STRING // 字符串

	// 运算符
	TOKEN_ASSIGN   // =
	TOKEN_PLUS     // +
	TOKEN_MINUS    // -
	TOKEN_ASTERISK // *
	TOKEN_SLASH    // /
	TOKEN_PERCENT  // %

	TOKEN_EQ     // ==
	TOKEN_NOT_EQ // !=
	TOKEN_LT     // <
	TOKEN_GT     // >
	TOKEN_LT_EQ  // <=
	TOKEN_GT_EQ  // >=

	TOKEN_AND // &&
	TOKEN_OR  // ||
	TOKEN_NOT // !

	// 分隔符
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;

	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
	TOKEN_LBRACE // {
	TOKEN_RBRACE // }

	// 关键字
	TOKEN_FUNC   // func
	TOKEN_RETURN // return
	TOKEN_IF     // if
	TOKEN_ELSE   // else
	TOKEN_WHILE  // while
	TOKEN_FOR    // for
	TOKEN_TRUE   // true
	TOKEN_FALSE  // false

	// 类型关键字
	TOKEN_TYPE_INT    // int
	TOKEN_TYPE_FLOAT  // float
	TOKEN_TYPE_STRING // string
	TOKEN_TYPE_BOOL   // bool
	TOKEN_TYPE_VOID   // void
)

// Token 表示一个词法单元
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"func":   TOKEN_FUNC,
	"return": TOKEN_RETURN,
	"if":     TOKEN_IF,
	"else":   TOKEN_ELSE,
	"while":  TOKEN_WHILE,
	"for":    TOKEN_FOR,
	"true":   TOKEN_TRUE,
	"false":  TOKEN_FALSE,
	"int":    TOKEN_TYPE_INT,
	"float":  TOKEN_TYPE_FLOAT,
	"string": TOKEN_TYPE_STRING,
	"bool":   TOKEN_TYPE_BOOL,
	"void":   TOKEN_TYPE_VOID,
}

// LookupIdent 查找标识符是否为关键字
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

var tokenNames = map[TokenType]string{
	TOKEN_ILLEGAL:     "ILLEGAL",
	TOKEN_EOF:         "EOF",
	TOKEN_COMMENT:     "COMMENT",
	TOKEN_IDENT:       "IDENT",
	TOKEN_INT:         "INT",
	TOKEN_FLOAT:       "FLOAT",
	TOKEN_STRING:      "STRING",
	TOKEN_ASSIGN:      "=",
	TOKEN_PLUS:        "+",
	TOKEN_MINUS:       "-",
	TOKEN_ASTERISK:    "*",
	TOKEN_SLASH:       "/",
	TOKEN_PERCENT:     "%",
	TOKEN_EQ:          "==",
	TOKEN_NOT_EQ:      "!=",
	TOKEN_LT:          "<",
	TOKEN_GT:          ">",
	TOKEN_LT_EQ:       "<=",
	TOKEN_GT_EQ:       ">=",
	TOKEN_AND:         "&&",
	TOKEN_OR:          "||",
	TOKEN_NOT:         "!",
	TOKEN_COMMA:       ",",
	TOKEN_SEMICOLON:   ";",
	TOKEN_LPAREN:      "(",
	TOKEN_RPAREN:      ")",
	TOKEN_LBRACE:      "{",
	TOKEN_RBRACE:      "}",
	TOKEN_FUNC:        "func",
	TOKEN_RETURN:      "return",
	TOKEN_IF:          "if",
	TOKEN_ELSE:        "else",
	TOKEN_WHILE:       "while",
	TOKEN_FOR:         "for",
	TOKEN_TRUE:        "true",
	TOKEN_FALSE:       "false",
	TOKEN_TYPE_INT:    "int",
	TOKEN_TYPE_FLOAT:  "float",
	TOKEN_TYPE_STRING: "string",
	TOKEN_TYPE_BOOL:   "bool",
	TOKEN_TYPE_VOID:   "void",
}

// TokenTypeName 返回 token 类型的名称
func TokenTypeName(t TokenType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTypeKeyword 判断是否为类型关键字
func IsTypeKeyword(t TokenType) bool {
	switch t {
	case TOKEN_TYPE_INT, TOKEN_TYPE_FLOAT, TOKEN_TYPE_STRING, TOKEN_TYPE_BOOL, TOKEN_TYPE_VOID:
		return true
	}
	return false
}
