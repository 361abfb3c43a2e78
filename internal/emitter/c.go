package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/ir"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/types"
)

// CEmitter 生成 C99 源代码
// 标签和跳转直接映射为 C 的 label 和 goto，结构标注在这个后端用不上
type CEmitter struct {
	out    strings.Builder
	indent int
}

// EmitC 把程序翻译为完整的 C 翻译单元
func EmitC(program *ir.Program) string {
	e := &CEmitter{}

	e.line("/* Generated code. Do not edit. */")
	e.line("#include <stdio.h>")
	e.line("#include <stdbool.h>")
	if usesConcat(program) {
		e.line("#include <stdlib.h>")
		e.line("#include <string.h>")
	} else if usesStrcmp(program) {
		e.line("#include <string.h>")
	}
	e.line("")

	if usesConcat(program) {
		e.line("static const char *_my_concat(const char *a, const char *b) {")
		e.line("    char *buf = malloc(strlen(a) + strlen(b) + 1);")
		e.line("    strcpy(buf, a);")
		e.line("    strcat(buf, b);")
		e.line("    return buf;")
		e.line("}")
		e.line("")
	}

	// 先输出全部原型，支持前向和相互调用
	for _, fn := range program.Funcs {
		e.line(e.prototype(fn) + ";")
	}
	e.line("")

	for _, fn := range program.Funcs {
		e.emitFunc(fn)
		e.line("")
	}

	e.line("int main(void) {")
	e.line("    " + funcPrefix + "main();")
	e.line("    return 0;")
	e.line("}")

	return e.out.String()
}

// usesConcat 扫描程序是否出现字符串拼接
func usesConcat(program *ir.Program) bool {
	return usesStringOp(program, "+")
}

// usesStrcmp 扫描程序是否出现字符串比较
func usesStrcmp(program *ir.Program) bool {
	return usesStringOp(program, "==") || usesStringOp(program, "!=")
}

func usesStringOp(program *ir.Program, op string) bool {
	found := false
	var walk func(e ir.Expr)
	walk = func(e ir.Expr) {
		switch x := e.(type) {
		case *ir.Binary:
			if x.Op == op && x.Operand == types.String {
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

// cType 类型到 C 类型的映射
func cType(t types.Type) string {
	switch t {
	case types.Int:
		return "long long"
	case types.Float:
		return "double"
	case types.String:
		return "const char *"
	case types.Bool:
		return "bool"
	case types.Void:
		return "void"
	}
	return "void"
}

// declare 输出一个带类型的声明符，处理指针类型的空格
func declare(t types.Type, name string) string {
	ct := cType(t)
	if strings.HasSuffix(ct, "*") {
		return ct + name
	}
	return ct + " " + name
}

func (e *CEmitter) prototype(fn *ir.Func) string {
	if len(fn.Params) == 0 {
		return "static " + declare(fn.Ret, funcPrefix+fn.Name) + "(void)"
	}
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = declare(p.Typ, varPrefix+p.Name)
	}
	return "static " + declare(fn.Ret, funcPrefix+fn.Name) + "(" + strings.Join(params, ", ") + ")"
}

func (e *CEmitter) line(s string) {
	e.out.WriteString(s)
	e.out.WriteString("\n")
}

func (e *CEmitter) stmt(s string) {
	e.out.WriteString(strings.Repeat("    ", e.indent))
	e.out.WriteString(s)
	e.out.WriteString("\n")
}

func (e *CEmitter) emitFunc(fn *ir.Func) {
	e.line(e.prototype(fn) + " {")
	e.indent = 1

	for _, ins := range fn.Code {
		e.emitInstr(ins)
	}

	e.indent = 0
	e.line("}")
}

func (e *CEmitter) emitInstr(ins ir.Instr) {
	switch ins.Op {
	case ir.OpDeclLocal:
		init := ins.X
		if init == nil {
			init = cZero(ins.Typ)
		}
		e.stmt(declare(ins.Typ, varPrefix+ins.Name) + " = " + e.expr(init) + ";")

	case ir.OpEval:
		if a, ok := ins.X.(*ir.Assign); ok {
			e.stmt(varPrefix + a.Name + " = " + e.expr(a.Value) + ";")
		} else {
			e.stmt(e.exprStmt(ins.X) + ";")
		}

	case ir.OpBranchFalse:
		e.stmt(fmt.Sprintf("if (!%s) goto L%d;", e.expr(ins.X), ins.Label))

	case ir.OpJump:
		e.stmt(fmt.Sprintf("goto L%d;", ins.Label))

	case ir.OpLabel:
		// 标签顶格一层，空语句让标签可以出现在块尾
		e.out.WriteString(fmt.Sprintf("L%d:;\n", ins.Label))

	case ir.OpRet:
		if ins.X != nil {
			e.stmt("return " + e.expr(ins.X) + ";")
		} else {
			e.stmt("return;")
		}
	}
}

// cZero 类型零值
func cZero(t types.Type) ir.Expr {
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

// exprStmt 输出表达式语句，纯求值丢弃结果时抑制编译器警告
func (e *CEmitter) exprStmt(x ir.Expr) string {
	if c, ok := x.(*ir.Call); ok && c.Typ == types.Void {
		return e.expr(x)
	}
	return "(void)" + e.expr(x)
}

// expr 输出表达式，复合表达式全部加括号
func (e *CEmitter) expr(x ir.Expr) string {
	switch v := x.(type) {
	case *ir.Literal:
		return cLiteral(v)

	case *ir.Load:
		return varPrefix + v.Name

	case *ir.Assign:
		return "(" + varPrefix + v.Name + " = " + e.expr(v.Value) + ")"

	case *ir.Unary:
		return "(" + v.Op + e.expr(v.Operand) + ")"

	case *ir.Binary:
		left, right := e.expr(v.Left), e.expr(v.Right)
		if v.Operand == types.String {
			switch v.Op {
			case "+":
				return "_my_concat(" + left + ", " + right + ")"
			case "==":
				return "(strcmp(" + left + ", " + right + ") == 0)"
			case "!=":
				return "(strcmp(" + left + ", " + right + ") != 0)"
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

// printCall 按参数的静态类型选择 printf 格式
func (e *CEmitter) printCall(call *ir.Call) string {
	if len(call.Args) == 0 {
		return "printf(\"\\n\")"
	}
	arg := call.Args[0]
	s := e.expr(arg)
	switch arg.Type() {
	case types.Int:
		return "printf(\"%lld\\n\", " + s + ")"
	case types.Float:
		return "printf(\"%f\\n\", " + s + ")"
	case types.Bool:
		return "printf(\"%s\\n\", " + s + " ? \"true\" : \"false\")"
	default:
		return "printf(\"%s\\n\", " + s + ")"
	}
}

// cLiteral 输出字面量
func cLiteral(l *ir.Literal) string {
	switch l.Typ {
	case types.Int:
		return strconv.FormatInt(l.Int, 10) + "LL"
	case types.Float:
		return floatLiteral(l.Float)
	case types.String:
		return cQuote(l.Str)
	case types.Bool:
		if l.Bool {
			return "true"
		}
		return "false"
	}
	return ""
}

// cQuote 输出 C 字符串字面量
// 词法阶段已把源码转义解码成原始字节，这里重新编码
func cQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString("\\\"")
		case '\\':
			b.WriteString("\\\\")
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
