package parser

import (
	"strconv"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/i18n"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/lexer"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/types"
)

// SyntaxError 语法错误，带源码位置
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return i18n.T(i18n.ErrSyntaxAt, e.Line, e.Column, e.Msg)
}

// Parser 语法分析器
// 遇到第一个错误立即停止，不做错误恢复
type Parser struct {
	l         *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	err       *SyntaxError
}

// New 创建一个新的语法分析器
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// 读取两个 token，初始化 curToken 和 peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// Parse 解析源码为 Program
func Parse(source string) (*Program, error) {
	p := New(lexer.New(source))
	return p.ParseProgram()
}

// nextToken 前进到下一个 token
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	// 跳过注释
	for p.peekToken.Type == lexer.TOKEN_COMMENT {
		p.peekToken = p.l.NextToken()
	}
}

// curTokenIs 检查当前 token 类型
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs 检查下一个 token 类型
func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek 期望下一个 token 类型并前进
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorAt(p.peekToken, i18n.T(i18n.ErrExpectedToken,
		lexer.TokenTypeName(t), p.describeToken(p.peekToken)))
	return false
}

// errorAt 记录第一个错误，之后的错误被忽略
func (p *Parser) errorAt(tok lexer.Token, msg string) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{Line: tok.Line, Column: tok.Column, Msg: msg}
}

// describeToken 返回 token 的可读描述
func (p *Parser) describeToken(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TOKEN_ILLEGAL:
		return tok.Literal
	case lexer.TOKEN_IDENT, lexer.TOKEN_INT, lexer.TOKEN_FLOAT:
		return "'" + tok.Literal + "'"
	case lexer.TOKEN_STRING:
		return "string literal"
	default:
		return "'" + lexer.TokenTypeName(tok.Type) + "'"
	}
}

// ParseProgram 解析整个程序（一个或多个函数声明）
func (p *Parser) ParseProgram() (*Program, error) {
	program := &Program{}

	for !p.curTokenIs(lexer.TOKEN_EOF) && p.err == nil {
		if !p.curTokenIs(lexer.TOKEN_FUNC) {
			p.errorAt(p.curToken, i18n.T(i18n.ErrExpectedFunc, p.describeToken(p.curToken)))
			break
		}
		decl := p.parseFuncDecl()
		if p.err != nil {
			break
		}
		program.Funcs = append(program.Funcs, decl)
		p.nextToken()
	}

	if p.err != nil {
		return nil, p.err
	}
	return program, nil
}

// parseFuncDecl 解析函数声明
// func <type> name (type param, ...) { body }
func (p *Parser) parseFuncDecl() *FuncDecl {
	decl := &FuncDecl{Token: p.curToken}

	if !p.peekTypeKeyword(true) {
		return nil
	}
	decl.RetType = typeFromToken(p.curToken.Type)

	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	decl.Name = p.curToken.Literal

	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}
	decl.Params = p.parseParamList()
	if p.err != nil {
		return nil
	}

	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}
	decl.Body = p.parseBlockStmt()
	return decl
}

// peekTypeKeyword 期望下一个 token 是类型关键字并前进
// allowVoid 为 false 时 void 报错
func (p *Parser) peekTypeKeyword(allowVoid bool) bool {
	if lexer.IsTypeKeyword(p.peekToken.Type) {
		if p.peekToken.Type == lexer.TOKEN_TYPE_VOID && !allowVoid {
			p.errorAt(p.peekToken, i18n.T(i18n.ErrVoidVar))
			return false
		}
		p.nextToken()
		return true
	}
	p.errorAt(p.peekToken, i18n.T(i18n.ErrExpectedType, p.describeToken(p.peekToken)))
	return false
}

// parseParamList 解析参数列表，curToken 为 (，结束时 curToken 为 )
func (p *Parser) parseParamList() []*Param {
	var params []*Param

	if p.peekTokenIs(lexer.TOKEN_RPAREN) {
		p.nextToken()
		return params
	}

	for {
		if !p.peekTypeKeyword(false) {
			return nil
		}
		typ := typeFromToken(p.curToken.Type)
		if !p.expectPeek(lexer.TOKEN_IDENT) {
			return nil
		}
		params = append(params, &Param{Token: p.curToken, Name: p.curToken.Literal, Type: typ})

		if !p.peekTokenIs(lexer.TOKEN_COMMA) {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	return params
}

// parseBlockStmt 解析代码块，curToken 为 {，结束时 curToken 为 }
func (p *Parser) parseBlockStmt() *BlockStmt {
	block := &BlockStmt{Token: p.curToken}
	p.nextToken()

	for !p.curTokenIs(lexer.TOKEN_RBRACE) {
		if p.curTokenIs(lexer.TOKEN_EOF) {
			p.errorAt(p.curToken, i18n.T(i18n.ErrUnterminatedBlock))
			return nil
		}
		stmt := p.parseStatement()
		if p.err != nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}

	return block
}

// parseStatement 解析语句
func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case lexer.TOKEN_TYPE_INT, lexer.TOKEN_TYPE_FLOAT, lexer.TOKEN_TYPE_STRING, lexer.TOKEN_TYPE_BOOL:
		return p.parseVarDecl()
	case lexer.TOKEN_TYPE_VOID:
		p.errorAt(p.curToken, i18n.T(i18n.ErrVoidVar))
		return nil
	case lexer.TOKEN_IF:
		return p.parseIfStmt()
	case lexer.TOKEN_WHILE:
		return p.parseWhileStmt()
	case lexer.TOKEN_FOR:
		return p.parseForStmt()
	case lexer.TOKEN_RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseExpressionStatement()
	}
}

// parseVarDecl 解析变量声明
// type name1 = init, name2, ...;
func (p *Parser) parseVarDecl() *VarDecl {
	decl := &VarDecl{Token: p.curToken, Type: typeFromToken(p.curToken.Type)}

	for {
		if !p.expectPeek(lexer.TOKEN_IDENT) {
			return nil
		}
		name := &VarName{Token: p.curToken, Name: p.curToken.Literal}

		if p.peekTokenIs(lexer.TOKEN_ASSIGN) {
			p.nextToken()
			p.nextToken()
			name.Init = p.parseExpression(LOWEST)
			if p.err != nil {
				return nil
			}
		}
		decl.Names = append(decl.Names, name)

		if !p.peekTokenIs(lexer.TOKEN_COMMA) {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	return decl
}

// parseIfStmt 解析 if 语句
// if (cond) { ... } else { ... }
func (p *Parser) parseIfStmt() *IfStmt {
	stmt := &IfStmt{Token: p.curToken}

	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}
	stmt.Consequence = p.parseBlockStmt()
	if p.err != nil {
		return nil
	}

	if p.peekTokenIs(lexer.TOKEN_ELSE) {
		p.nextToken()
		if !p.expectPeek(lexer.TOKEN_LBRACE) {
			return nil
		}
		stmt.Alternative = p.parseBlockStmt()
	}

	return stmt
}

// parseWhileStmt 解析 while 语句
func (p *Parser) parseWhileStmt() *WhileStmt {
	stmt := &WhileStmt{Token: p.curToken}

	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStmt()
	return stmt
}

// parseForStmt 解析 for 语句
// for (init; cond; post) { ... }，三个子句均可省略
func (p *Parser) parseForStmt() *ForStmt {
	stmt := &ForStmt{Token: p.curToken}

	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}

	// 初始化子句：变量声明、表达式语句或空
	switch {
	case p.peekTokenIs(lexer.TOKEN_SEMICOLON):
		p.nextToken()
	case lexer.IsTypeKeyword(p.peekToken.Type):
		if !p.peekTypeKeyword(false) {
			return nil
		}
		stmt.Init = p.parseVarDecl() // 消费结尾的 ;
		if p.err != nil {
			return nil
		}
	default:
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		if p.err != nil {
			return nil
		}
		stmt.Init = &ExprStmt{Expression: expr}
		if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
			return nil
		}
	}

	// 条件子句（可选）
	if !p.peekTokenIs(lexer.TOKEN_SEMICOLON) {
		p.nextToken()
		stmt.Condition = p.parseExpression(LOWEST)
		if p.err != nil {
			return nil
		}
	}
	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}

	// 更新子句（可选）
	if !p.peekTokenIs(lexer.TOKEN_RPAREN) {
		p.nextToken()
		stmt.Post = p.parseExpression(LOWEST)
		if p.err != nil {
			return nil
		}
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStmt()
	return stmt
}

// parseReturnStmt 解析 return 语句
func (p *Parser) parseReturnStmt() *ReturnStmt {
	stmt := &ReturnStmt{Token: p.curToken}

	if p.peekTokenIs(lexer.TOKEN_SEMICOLON) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	return stmt
}

// parseExpressionStatement 解析表达式语句
func (p *Parser) parseExpressionStatement() Statement {
	expr := p.parseExpression(LOWEST)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	return &ExprStmt{Expression: expr}
}

// 运算符优先级
const (
	_ int = iota
	LOWEST
	OR          // ||
	AND         // &&
	EQUALS      // == !=
	LESSGREATER // > < >= <=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -X !X +X
)

var precedences = map[lexer.TokenType]int{
	lexer.TOKEN_OR:       OR,
	lexer.TOKEN_AND:      AND,
	lexer.TOKEN_EQ:       EQUALS,
	lexer.TOKEN_NOT_EQ:   EQUALS,
	lexer.TOKEN_LT:       LESSGREATER,
	lexer.TOKEN_GT:       LESSGREATER,
	lexer.TOKEN_LT_EQ:    LESSGREATER,
	lexer.TOKEN_GT_EQ:    LESSGREATER,
	lexer.TOKEN_PLUS:     SUM,
	lexer.TOKEN_MINUS:    SUM,
	lexer.TOKEN_ASTERISK: PRODUCT,
	lexer.TOKEN_SLASH:    PRODUCT,
	lexer.TOKEN_PERCENT:  PRODUCT,
}

// peekPrecedence 获取下一个 token 的优先级
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// curPrecedence 获取当前 token 的优先级
func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression 解析表达式
// 二元运算符用优先级爬升实现左结合，赋值只在最低优先级处理且右结合
func (p *Parser) parseExpression(precedence int) Expression {
	var left Expression

	switch p.curToken.Type {
	case lexer.TOKEN_IDENT:
		if p.peekTokenIs(lexer.TOKEN_LPAREN) {
			left = p.parseCallExpression()
		} else {
			left = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
		}
	case lexer.TOKEN_INT:
		left = p.parseIntegerLiteral()
	case lexer.TOKEN_FLOAT:
		left = p.parseFloatLiteral()
	case lexer.TOKEN_STRING:
		left = &StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	case lexer.TOKEN_TRUE:
		left = &BoolLiteral{Token: p.curToken, Value: true}
	case lexer.TOKEN_FALSE:
		left = &BoolLiteral{Token: p.curToken, Value: false}
	case lexer.TOKEN_LPAREN:
		left = p.parseGroupedExpression()
	case lexer.TOKEN_PLUS, lexer.TOKEN_MINUS, lexer.TOKEN_NOT:
		left = p.parsePrefixExpression()
	case lexer.TOKEN_ILLEGAL:
		p.errorAt(p.curToken, p.curToken.Literal)
		return nil
	default:
		p.errorAt(p.curToken, i18n.T(i18n.ErrUnexpectedToken, p.describeToken(p.curToken)))
		return nil
	}
	if p.err != nil {
		return nil
	}

	// 解析二元运算符，左结合
	for p.err == nil && precedence < p.peekPrecedence() {
		p.nextToken()
		left = p.parseInfixExpression(left)
	}
	if p.err != nil {
		return nil
	}

	// 赋值：仅在最低优先级处理，目标必须是裸标识符
	if precedence == LOWEST && p.peekTokenIs(lexer.TOKEN_ASSIGN) {
		ident, ok := left.(*Identifier)
		if !ok {
			p.errorAt(p.peekToken, i18n.T(i18n.ErrBadAssignTarget))
			return nil
		}
		p.nextToken() // 消费 =
		assign := &AssignExpr{Token: p.curToken, Name: ident.Value, NameToken: ident.Token}
		p.nextToken()
		assign.Value = p.parseExpression(LOWEST) // 右结合
		if p.err != nil {
			return nil
		}
		return assign
	}

	return left
}

// parseIntegerLiteral 解析整数字面量
func (p *Parser) parseIntegerLiteral() Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorAt(p.curToken, i18n.T(i18n.ErrBadNumber, p.curToken.Literal))
		return nil
	}
	return &IntegerLiteral{Token: p.curToken, Value: value}
}

// parseFloatLiteral 解析浮点数字面量
func (p *Parser) parseFloatLiteral() Expression {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorAt(p.curToken, i18n.T(i18n.ErrBadNumber, p.curToken.Literal))
		return nil
	}
	return &FloatLiteral{Token: p.curToken, Value: value}
}

// parseGroupedExpression 解析括号表达式
func (p *Parser) parseGroupedExpression() Expression {
	token := p.curToken
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if p.err != nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	return &ParenExpr{Token: token, X: expr}
}

// parsePrefixExpression 解析前缀表达式
func (p *Parser) parsePrefixExpression() Expression {
	expr := &UnaryExpr{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}
	p.nextToken()
	expr.Operand = p.parseExpression(PREFIX)
	if p.err != nil {
		return nil
	}
	return expr
}

// parseInfixExpression 解析中缀表达式
func (p *Parser) parseInfixExpression(left Expression) Expression {
	expr := &BinaryExpr{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if p.err != nil {
		return nil
	}
	return expr
}

// parseCallExpression 解析函数调用，curToken 为函数名
func (p *Parser) parseCallExpression() Expression {
	expr := &CallExpr{Token: p.curToken, Name: p.curToken.Literal}
	p.nextToken() // 消费 (

	if p.peekTokenIs(lexer.TOKEN_RPAREN) {
		p.nextToken()
		return expr
	}

	p.nextToken()
	expr.Arguments = append(expr.Arguments, p.parseExpression(LOWEST))
	for p.err == nil && p.peekTokenIs(lexer.TOKEN_COMMA) {
		p.nextToken()
		p.nextToken()
		expr.Arguments = append(expr.Arguments, p.parseExpression(LOWEST))
	}
	if p.err != nil {
		return nil
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	return expr
}

// typeFromToken 将类型关键字 token 转为类型
func typeFromToken(t lexer.TokenType) types.Type {
	switch t {
	case lexer.TOKEN_TYPE_INT:
		return types.Int
	case lexer.TOKEN_TYPE_FLOAT:
		return types.Float
	case lexer.TOKEN_TYPE_STRING:
		return types.String
	case lexer.TOKEN_TYPE_BOOL:
		return types.Bool
	case lexer.TOKEN_TYPE_VOID:
		return types.Void
	}
	return types.Invalid
}
