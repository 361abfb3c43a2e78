package ir

import (
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/parser"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/types"
)

// Builder 把语义分析后的 AST 下沉为扁平的 IR 指令序列
// 控制流改写为标签和条件跳转，作用域信息已在标识符绑定中消化
type Builder struct {
	code   []Instr
	labels int
}

// Build 下沉整个程序
// 输入必须已通过语义分析，标识符绑定和类型标注均已就位
func Build(program *parser.Program) *Program {
	out := &Program{}
	for _, fn := range program.Funcs {
		out.Funcs = append(out.Funcs, buildFunc(fn))
	}
	return out
}

// buildFunc 下沉单个函数
func buildFunc(fn *parser.FuncDecl) *Func {
	b := &Builder{}

	f := &Func{
		Name: fn.Name,
		Ret:  fn.RetType,
	}
	for _, param := range fn.Params {
		f.Params = append(f.Params, Param{Name: param.Sym.IRName, Typ: param.Type})
	}

	b.buildBlock(fn.Body)

	// 函数体结尾不是 return 时补一个隐式返回
	// 非 void 函数返回对应类型的零值
	if n := len(b.code); n == 0 || b.code[n-1].Op != OpRet {
		b.emit(Instr{Op: OpRet, X: zeroValue(fn.RetType)})
	}

	f.Code = b.code
	return f
}

// zeroValue 返回类型的零值字面量，void 返回 nil
func zeroValue(t types.Type) Expr {
	switch t {
	case types.Int:
		return &Literal{Typ: types.Int, Int: 0}
	case types.Float:
		return &Literal{Typ: types.Float, Float: 0}
	case types.String:
		return &Literal{Typ: types.String, Str: ""}
	case types.Bool:
		return &Literal{Typ: types.Bool, Bool: false}
	}
	return nil
}

func (b *Builder) emit(ins Instr) {
	b.code = append(b.code, ins)
}

// newLabel 分配一个函数内唯一的标签编号
func (b *Builder) newLabel() int {
	n := b.labels
	b.labels++
	return n
}

func (b *Builder) buildBlock(block *parser.BlockStmt) {
	for _, stmt := range block.Statements {
		b.buildStmt(stmt)
	}
}

func (b *Builder) buildStmt(stmt parser.Statement) {
	switch s := stmt.(type) {
	case *parser.VarDecl:
		for _, name := range s.Names {
			ins := Instr{Op: OpDeclLocal, Name: name.Sym.IRName, Typ: s.Type}
			if name.Init != nil {
				ins.X = b.buildExpr(name.Init)
			}
			b.emit(ins)
		}
	case *parser.ExprStmt:
		b.emit(Instr{Op: OpEval, X: b.buildExpr(s.Expression)})
	case *parser.IfStmt:
		b.buildIf(s)
	case *parser.WhileStmt:
		b.buildLoop(s.Condition, nil, s.Body)
	case *parser.ForStmt:
		if s.Init != nil {
			b.buildStmt(s.Init)
		}
		b.buildLoop(s.Condition, s.Post, s.Body)
	case *parser.ReturnStmt:
		ins := Instr{Op: OpRet}
		if s.Value != nil {
			ins.X = b.buildExpr(s.Value)
		}
		b.emit(ins)
	}
}

// buildIf 下沉 if 语句
//
// 有 else 分支:            无 else 分支:
//   brfalse cond -> Lelse    brfalse cond -> Lend
//   <then>                   <then>
//   jump Lend                Lend:
//   Lelse:
//   <else>
//   Lend:
func (b *Builder) buildIf(s *parser.IfStmt) {
	cond := b.buildExpr(s.Condition)

	if s.Alternative == nil {
		end := b.newLabel()
		b.emit(Instr{Op: OpBranchFalse, X: cond, Label: end, Kind: KindEndIf})
		b.buildBlock(s.Consequence)
		b.emit(Instr{Op: OpLabel, Label: end, Kind: KindEndIf})
		return
	}

	elseLabel := b.newLabel()
	end := b.newLabel()
	b.emit(Instr{Op: OpBranchFalse, X: cond, Label: elseLabel, Kind: KindElse})
	b.buildBlock(s.Consequence)
	b.emit(Instr{Op: OpJump, Label: end, Kind: KindEndIf})
	b.emit(Instr{Op: OpLabel, Label: elseLabel, Kind: KindElse})
	b.buildBlock(s.Alternative)
	b.emit(Instr{Op: OpLabel, Label: end, Kind: KindEndIf})
}

// buildLoop 下沉 while 和 for 的循环部分
//
//   Lhead:
//   brfalse cond -> Lend
//   <body>
//   eval post        (仅 for)
//   jump Lhead
//   Lend:
//
// 条件为空的 for 循环省略 brfalse
func (b *Builder) buildLoop(cond parser.Expression, post parser.Expression, body *parser.BlockStmt) {
	head := b.newLabel()
	end := b.newLabel()

	b.emit(Instr{Op: OpLabel, Label: head, Kind: KindLoop})
	if cond != nil {
		b.emit(Instr{Op: OpBranchFalse, X: b.buildExpr(cond), Label: end, Kind: KindLoop})
	}
	b.buildBlock(body)
	if post != nil {
		b.emit(Instr{Op: OpEval, X: b.buildExpr(post)})
	}
	b.emit(Instr{Op: OpJump, Label: head, Kind: KindLoop})
	b.emit(Instr{Op: OpLabel, Label: end, Kind: KindLoopEnd})
}

// buildExpr 下沉表达式
// 标识符换成语义分析分配的唯一名称，括号节点在此消失
func (b *Builder) buildExpr(expr parser.Expression) Expr {
	switch e := expr.(type) {
	case *parser.IntegerLiteral:
		return &Literal{Typ: types.Int, Int: e.Value}
	case *parser.FloatLiteral:
		return &Literal{Typ: types.Float, Float: e.Value}
	case *parser.StringLiteral:
		return &Literal{Typ: types.String, Str: e.Value}
	case *parser.BoolLiteral:
		return &Literal{Typ: types.Bool, Bool: e.Value}
	case *parser.ParenExpr:
		return b.buildExpr(e.X)
	case *parser.Identifier:
		return &Load{Name: e.Sym.IRName, Typ: e.Typ}
	case *parser.AssignExpr:
		return &Assign{Name: e.Sym.IRName, Value: b.buildExpr(e.Value), Typ: e.Typ}
	case *parser.UnaryExpr:
		return &Unary{Op: e.Operator, Operand: b.buildExpr(e.Operand), Typ: e.Typ}
	case *parser.BinaryExpr:
		return &Binary{
			Op:      e.Operator,
			Left:    b.buildExpr(e.Left),
			Right:   b.buildExpr(e.Right),
			Typ:     e.Typ,
			Operand: e.Operand,
		}
	case *parser.CallExpr:
		call := &Call{Name: e.Name, Typ: e.Typ, Builtin: e.Builtin}
		for _, arg := range e.Arguments {
			call.Args = append(call.Args, b.buildExpr(arg))
		}
		return call
	}
	return nil
}
