package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/types"
)

// Op IR 指令操作码
type Op int

const (
	OpDeclLocal   Op = iota // 声明局部变量，可带初始化表达式
	OpEval                  // 求值表达式并丢弃结果
	OpBranchFalse           // 条件为假时跳转到 Label
	OpJump                  // 无条件跳转到 Label
	OpLabel                 // 跳转目标
	OpRet                   // 函数返回，X 为返回值（void 函数为 nil）
)

var opNames = map[Op]string{
	OpDeclLocal:   "decl",
	OpEval:        "eval",
	OpBranchFalse: "brfalse",
	OpJump:        "jump",
	OpLabel:       "label",
	OpRet:         "ret",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "unknown"
}

// LabelKind 标注标签和跳转在源码结构中的角色
// 扁平的指令序列对 goto 后端足够，脚本后端依赖这些标注还原块结构
type LabelKind int

const (
	KindNone    LabelKind = iota
	KindLoop              // 循环入口标签 / 循环退出分支 / 回边跳转
	KindLoopEnd           // 循环结束标签
	KindElse              // else 入口标签 / if 的条件分支
	KindEndIf             // if 结束标签 / then 分支末尾的跳转
)

// Instr 单条 IR 指令
// 字段按操作码取用：DeclLocal 用 Name/Typ/X，Eval 和 Ret 用 X，
// BranchFalse 用 X/Label/Kind，Jump 和 Label 用 Label/Kind
type Instr struct {
	Op    Op
	Name  string     // 局部变量的唯一名称
	Typ   types.Type // 局部变量类型
	X     Expr
	Label int // 跳转目标编号
	Kind  LabelKind
}

// Expr IR 表达式
// 表达式保持树形，控制流已在指令层拉平
type Expr interface {
	exprNode()
	Type() types.Type
}

// Literal 字面量
type Literal struct {
	Typ   types.Type
	Int   int64
	Float float64
	Str   string
	Bool  bool
}

func (l *Literal) exprNode()        {}
func (l *Literal) Type() types.Type { return l.Typ }

// Load 读取局部变量
type Load struct {
	Name string
	Typ  types.Type
}

func (l *Load) exprNode()        {}
func (l *Load) Type() types.Type { return l.Typ }

// Assign 给局部变量赋值，整个表达式的值为赋入的值
type Assign struct {
	Name  string
	Value Expr
	Typ   types.Type
}

func (a *Assign) exprNode()        {}
func (a *Assign) Type() types.Type { return a.Typ }

// Binary 二元运算
type Binary struct {
	Op      string
	Left    Expr
	Right   Expr
	Typ     types.Type // 结果类型
	Operand types.Type // 提升后的操作数类型
}

func (b *Binary) exprNode()        {}
func (b *Binary) Type() types.Type { return b.Typ }

// Unary 一元运算
type Unary struct {
	Op      string
	Operand Expr
	Typ     types.Type
}

func (u *Unary) exprNode()        {}
func (u *Unary) Type() types.Type { return u.Typ }

// Call 函数调用，Builtin 为真时 Name 是内置函数
type Call struct {
	Name    string
	Args    []Expr
	Typ     types.Type
	Builtin bool
}

func (c *Call) exprNode()        {}
func (c *Call) Type() types.Type { return c.Typ }

// Param 函数参数
type Param struct {
	Name string
	Typ  types.Type
}

// Func 单个函数的 IR
type Func struct {
	Name   string
	Params []Param
	Ret    types.Type
	Code   []Instr
}

// Program 完整程序的 IR，函数按声明顺序排列
type Program struct {
	Funcs []*Func
}

// Func 按名称查找函数
func (p *Program) Func(name string) *Func {
	for _, fn := range p.Funcs {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// ========== 调试输出 ==========

// String 输出人类可读的指令序列，用于调试和测试
func (f *Func) String() string {
	var b strings.Builder
	b.WriteString("func ")
	b.WriteString(f.Name)
	b.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(" ")
		b.WriteString(p.Typ.String())
	}
	b.WriteString(") ")
	b.WriteString(f.Ret.String())
	b.WriteString("\n")
	for _, ins := range f.Code {
		b.WriteString("  ")
		b.WriteString(ins.String())
		b.WriteString("\n")
	}
	return b.String()
}

// String 输出单条指令
func (i Instr) String() string {
	switch i.Op {
	case OpDeclLocal:
		if i.X != nil {
			return fmt.Sprintf("decl %s %s = %s", i.Name, i.Typ, ExprString(i.X))
		}
		return fmt.Sprintf("decl %s %s", i.Name, i.Typ)
	case OpEval:
		return "eval " + ExprString(i.X)
	case OpBranchFalse:
		return fmt.Sprintf("brfalse %s -> L%d", ExprString(i.X), i.Label)
	case OpJump:
		return fmt.Sprintf("jump L%d", i.Label)
	case OpLabel:
		return fmt.Sprintf("L%d:", i.Label)
	case OpRet:
		if i.X != nil {
			return "ret " + ExprString(i.X)
		}
		return "ret"
	}
	return "unknown"
}

// ExprString 输出表达式的全括号形式
func ExprString(e Expr) string {
	switch x := e.(type) {
	case *Literal:
		switch x.Typ {
		case types.Int:
			return strconv.FormatInt(x.Int, 10)
		case types.Float:
			return strconv.FormatFloat(x.Float, 'g', -1, 64)
		case types.String:
			return strconv.Quote(x.Str)
		case types.Bool:
			return strconv.FormatBool(x.Bool)
		}
	case *Load:
		return x.Name
	case *Assign:
		return fmt.Sprintf("(%s = %s)", x.Name, ExprString(x.Value))
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", ExprString(x.Left), x.Op, ExprString(x.Right))
	case *Unary:
		return fmt.Sprintf("(%s%s)", x.Op, ExprString(x.Operand))
	case *Call:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = ExprString(a)
		}
		return fmt.Sprintf("%s(%s)", x.Name, strings.Join(args, ", "))
	}
	return "?"
}
