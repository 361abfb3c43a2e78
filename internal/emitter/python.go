// Package emitter 把 IR 翻译成目标语言源代码
// 两个后端消费同一份 IR，不回头查看 AST
package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/ir"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/types"
)

// 名称改写前缀，避免和目标语言的关键字、内置名冲突
const (
	funcPrefix = "ml_"
	varPrefix  = "v_"
)

// PythonEmitter 生成 Python 3 脚本
// IR 是扁平的跳转序列，标签上的结构标注用来还原缩进块
type PythonEmitter struct {
	out    strings.Builder
	indent int
	// 每层已输出的语句数，用于给空块补 pass
	stmts []int
}

// EmitPython 把程序翻译为完整的 Python 脚本
func EmitPython(program *ir.Program) string {
	e := &PythonEmitter{}

	e.line("#!/usr/bin/env python3")
	e.line("# Generated code. Do not edit.")
	e.line("")

	if usesIntDiv(program) {
		e.line("def _my_idiv(a, b):")
		e.line("    q = a // b")
		e.line("    if q < 0 and q * b != a:")
		e.line("        q += 1")
		e.line("    return q")
		e.line("")
	}
	if usesIntMod(program) {
		e.line("def _my_imod(a, b):")
		e.line("    r = a % b")
		e.line("    if r != 0 and (r < 0) != (a < 0):")
		e.line("        r -= b")
		e.line("    return r")
		e.line("")
	}

	for _, fn := range program.Funcs {
		e.emitFunc(fn)
		e.line("")
	}

	e.line("if __name__ == \"__main__\":")
	e.line("    " + funcPrefix + "main()")

	return e.out.String()
}

// usesIntDiv 扫描程序是否出现整数除法
func usesIntDiv(program *ir.Program) bool {
	return usesIntOp(program, "/")
}

// usesIntMod 扫描程序是否出现整数取模
func usesIntMod(program *ir.Program) bool {
	return usesIntOp(program, "%")
}

func usesIntOp(program *ir.Program, op string) bool {
	found := false
	var walk func(e ir.Expr)
	walk = func(e ir.Expr) {
		switch x := e.(type) {
		case *ir.Binary:
			if x.Op == op && x.Operand == types.Int {
				found = true
			}
			walk(x.Left)
			walk(x.Right)
		case *ir.Unary:
			walk(x.Operand)
		case *ir.Assign:
			walk(x.Value)
		case *ir.Call:
			for _, a := range x.Args {
				walk(a)
			}
		}
	}
	for _, fn := range program.Funcs {
		for _, ins := range fn.Code {
			if ins.X != nil {
				walk(ins.X)
			}
		}
	}
	return found
}

func (e *PythonEmitter) line(s string) {
	e.out.WriteString(s)
	e.out.WriteString("\n")
}

// stmt 输出一条带缩进的语句并计入当前块
func (e *PythonEmitter) stmt(s string) {
	e.out.WriteString(strings.Repeat("    ", e.indent))
	e.out.WriteString(s)
	e.out.WriteString("\n")
	if len(e.stmts) > 0 {
		e.stmts[len(e.stmts)-1]++
	}
}

// open 输出块头并进入新的缩进层
func (e *PythonEmitter) open(header string) {
	e.stmt(header)
	e.indent++
	e.stmts = append(e.stmts, 0)
}

// close 离开当前缩进层，空块补 pass
func (e *PythonEmitter) close() {
	if e.stmts[len(e.stmts)-1] == 0 {
		e.stmt("pass")
	}
	e.stmts = e.stmts[:len(e.stmts)-1]
	e.indent--
}

func (e *PythonEmitter) emitFunc(fn *ir.Func) {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = varPrefix + p.Name
	}
	e.line(fmt.Sprintf("def %s%s(%s):", funcPrefix, fn.Name, strings.Join(params, ", ")))

	e.indent = 1
	e.stmts = []int{0}

	for _, ins := range fn.Code {
		e.emitInstr(ins)
	}

	e.stmts = nil
	e.indent = 0
}

func (e *PythonEmitter) emitInstr(ins ir.Instr) {
	switch ins.Op {
	case ir.OpDeclLocal:
		init := ins.X
		if init == nil {
			init = pyZero(ins.Typ)
		}
		e.stmt(varPrefix + ins.Name + " = " + e.expr(init))

	case ir.OpEval:
		// 顶层赋值写成普通赋值语句，嵌套赋值才用海象运算符
		if a, ok := ins.X.(*ir.Assign); ok {
			e.stmt(varPrefix + a.Name + " = " + e.expr(a.Value))
		} else {
			e.stmt(e.expr(ins.X))
		}

	case ir.OpBranchFalse:
		switch ins.Kind {
		case ir.KindLoop:
			// 循环退出分支
			e.stmt("if not " + e.expr(ins.X) + ":")
			e.indent++
			e.stmt("break")
			e.indent--
		default:
			// if 的条件分支，块体由后续指令填充
			e.open("if " + e.expr(ins.X) + ":")
		}

	case ir.OpJump:
		switch ins.Kind {
		case ir.KindLoop:
			// 回边，while True 隐含
		case ir.KindEndIf:
			// then 分支结束，等待 else 入口
			e.close()
		}

	case ir.OpLabel:
		switch ins.Kind {
		case ir.KindLoop:
			e.open("while True:")
		case ir.KindLoopEnd:
			e.close()
		case ir.KindElse:
			e.open("else:")
		case ir.KindEndIf:
			e.close()
		}

	case ir.OpRet:
		if ins.X != nil {
			e.stmt("return " + e.expr(ins.X))
		} else {
			e.stmt("return")
		}
	}
}

// pyZero 类型零值
func pyZero(t types.Type) ir.Expr {
	switch t {
	case types.Int:
		return &ir.Literal{Typ: types.Int}
	case types.Float:
		return &ir.Literal{Typ: types.Float}
	case types.String:
		return &ir.Literal{Typ: types.String}
	case types.Bool:
		return &ir.Literal{Typ: types.Bool}
	}
	return nil
}

// expr 输出表达式，复合表达式全部加括号，不依赖目标语言的优先级
func (e *PythonEmitter) expr(x ir.Expr) string {
	switch v := x.(type) {
	case *ir.Literal:
		return pyLiteral(v)

	case *ir.Load:
		return varPrefix + v.Name

	case *ir.Assign:
		return "(" + varPrefix + v.Name + " := " + e.expr(v.Value) + ")"

	case *ir.Unary:
		if v.Op == "!" {
			return "(not " + e.expr(v.Operand) + ")"
		}
		return "(" + v.Op + e.expr(v.Operand) + ")"

	case *ir.Binary:
		left, right := e.expr(v.Left), e.expr(v.Right)
		switch v.Op {
		case "&&":
			return "(" + left + " and " + right + ")"
		case "||":
			return "(" + left + " or " + right + ")"
		case "/":
			// 整数除法向零截断，与本地后端保持一致
			if v.Operand == types.Int {
				return "_my_idiv(" + left + ", " + right + ")"
			}
		case "%":
			if v.Operand == types.Int {
				return "_my_imod(" + left + ", " + right + ")"
			}
		}
		return "(" + left + " " + v.Op + " " + right + ")"

	case *ir.Call:
		if v.Builtin {
			return e.printCall(v)
		}
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = e.expr(a)
		}
		return funcPrefix + v.Name + "(" + strings.Join(args, ", ") + ")"
	}
	return ""
}

// printCall 按参数的静态类型选择输出格式
func (e *PythonEmitter) printCall(call *ir.Call) string {
	if len(call.Args) == 0 {
		return "print()"
	}
	arg := call.Args[0]
	switch arg.Type() {
	case types.Float:
		// 与本地后端的 %f 对齐，固定六位小数
		return "print(\"%f\" % " + e.expr(arg) + ")"
	case types.Bool:
		return "print(\"true\" if " + e.expr(arg) + " else \"false\")"
	default:
		return "print(" + e.expr(arg) + ")"
	}
}

// pyLiteral 输出字面量
func pyLiteral(l *ir.Literal) string {
	switch l.Typ {
	case types.Int:
		return strconv.FormatInt(l.Int, 10)
	case types.Float:
		return floatLiteral(l.Float)
	case types.String:
		return strconv.Quote(l.Str)
	case types.Bool:
		if l.Bool {
			return "True"
		}
		return "False"
	}
	return ""
}

// floatLiteral 输出浮点字面量，保证带小数点或指数
// 两个后端共用，避免整数形式的浮点被目标语言当成整数
func floatLiteral(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
