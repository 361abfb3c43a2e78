package parser

import (
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/lexer"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/symbol"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/types"
)

// Node AST 节点接口
type Node interface {
	TokenLiteral() string
}

// Statement 语句接口
type Statement interface {
	Node
	statementNode()
}

// Expression 表达式接口
// Type 返回语义分析阶段标注的类型，未解析时为 types.Invalid
type Expression interface {
	Node
	expressionNode()
	Type() types.Type
}

// Program 表示一个完整的程序（函数声明列表）
type Program struct {
	Funcs []*FuncDecl
}

func (p *Program) TokenLiteral() string { return "program" }

// FuncDecl 函数声明
type FuncDecl struct {
	Token   lexer.Token // func token
	Name    string      // 函数名
	RetType types.Type  // 返回类型
	Params  []*Param    // 参数列表
	Body    *BlockStmt  // 函数体
}

func (f *FuncDecl) TokenLiteral() string { return f.Token.Literal }
func (f *FuncDecl) statementNode()       {}

// Param 函数参数
type Param struct {
	Token lexer.Token    // 参数名 token
	Name  string         // 参数名
	Type  types.Type     // 参数类型
	Sym   *symbol.Symbol // 语义分析阶段绑定
}

// BlockStmt 代码块
type BlockStmt struct {
	Token      lexer.Token // { token
	Statements []Statement
}

func (b *BlockStmt) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStmt) statementNode()       {}

// VarDecl 变量声明，支持逗号分隔的多个变量
type VarDecl struct {
	Token lexer.Token // 类型关键字 token
	Type  types.Type  // 声明类型
	Names []*VarName  // 变量名列表
}

func (v *VarDecl) TokenLiteral() string { return v.Token.Literal }
func (v *VarDecl) statementNode()       {}

// VarName 单个变量名和可选的初始化表达式
type VarName struct {
	Token lexer.Token    // 变量名 token
	Name  string         // 变量名
	Init  Expression     // 初始化表达式（可选）
	Sym   *symbol.Symbol // 语义分析阶段绑定
}

// ExprStmt 表达式语句
type ExprStmt struct {
	Expression Expression
}

func (e *ExprStmt) TokenLiteral() string { return e.Expression.TokenLiteral() }
func (e *ExprStmt) statementNode()       {}

// IfStmt if 语句
type IfStmt struct {
	Token       lexer.Token
	Condition   Expression
	Consequence *BlockStmt // then 分支
	Alternative *BlockStmt // else 分支（可选）
}

func (i *IfStmt) TokenLiteral() string { return i.Token.Literal }
func (i *IfStmt) statementNode()       {}

// WhileStmt while 语句
type WhileStmt struct {
	Token     lexer.Token
	Condition Expression
	Body      *BlockStmt
}

func (w *WhileStmt) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStmt) statementNode()       {}

// ForStmt for 语句
// Init 可以是 VarDecl、ExprStmt 或 nil，Condition 和 Post 都是可选的
type ForStmt struct {
	Token     lexer.Token
	Init      Statement
	Condition Expression
	Post      Expression
	Body      *BlockStmt
}

func (f *ForStmt) TokenLiteral() string { return f.Token.Literal }
func (f *ForStmt) statementNode()       {}

// ReturnStmt return 语句
type ReturnStmt struct {
	Token lexer.Token
	Value Expression // 返回值（可选）
}

func (r *ReturnStmt) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStmt) statementNode()       {}

// ========== 表达式 ==========

// Identifier 标识符
type Identifier struct {
	Token lexer.Token
	Value string
	Typ   types.Type
	Sym   *symbol.Symbol // 语义分析阶段绑定的声明
}

func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) Type() types.Type     { return i.Typ }

// IntegerLiteral 整数字面量
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (i *IntegerLiteral) TokenLiteral() string { return i.Token.Literal }
func (i *IntegerLiteral) expressionNode()      {}
func (i *IntegerLiteral) Type() types.Type     { return types.Int }

// FloatLiteral 浮点数字面量
type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (f *FloatLiteral) TokenLiteral() string { return f.Token.Literal }
func (f *FloatLiteral) expressionNode()      {}
func (f *FloatLiteral) Type() types.Type     { return types.Float }

// StringLiteral 字符串字面量（转义已在词法阶段解码）
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) Type() types.Type     { return types.String }

// BoolLiteral 布尔字面量
type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BoolLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BoolLiteral) expressionNode()      {}
func (b *BoolLiteral) Type() types.Type     { return types.Bool }

// AssignExpr 赋值表达式，目标必须是裸标识符，右结合
type AssignExpr struct {
	Token     lexer.Token    // = token
	Name      string         // 目标变量名
	NameToken lexer.Token    // 目标变量 token
	Value     Expression
	Typ       types.Type
	Sym       *symbol.Symbol // 语义分析阶段绑定的目标声明
}

func (a *AssignExpr) TokenLiteral() string { return a.Token.Literal }
func (a *AssignExpr) expressionNode()      {}
func (a *AssignExpr) Type() types.Type     { return a.Typ }

// BinaryExpr 二元表达式
type BinaryExpr struct {
	Token    lexer.Token
	Left     Expression
	Operator string
	Right    Expression
	Typ      types.Type // 结果类型
	Operand  types.Type // 提升后的操作数类型
}

func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) Type() types.Type     { return b.Typ }

// UnaryExpr 一元前缀表达式
type UnaryExpr struct {
	Token    lexer.Token
	Operator string
	Operand  Expression
	Typ      types.Type
}

func (u *UnaryExpr) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpr) expressionNode()      {}
func (u *UnaryExpr) Type() types.Type     { return u.Typ }

// CallExpr 函数调用表达式
type CallExpr struct {
	Token     lexer.Token // 函数名 token
	Name      string      // 函数名
	Arguments []Expression
	Typ       types.Type
	Builtin   bool // 是否为内置函数（print）
}

func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) expressionNode()      {}
func (c *CallExpr) Type() types.Type     { return c.Typ }

// ParenExpr 括号表达式
type ParenExpr struct {
	Token lexer.Token // ( token
	X     Expression
}

func (p *ParenExpr) TokenLiteral() string { return p.Token.Literal }
func (p *ParenExpr) expressionNode()      {}
func (p *ParenExpr) Type() types.Type {
	if p.X == nil {
		return types.Invalid
	}
	return p.X.Type()
}
