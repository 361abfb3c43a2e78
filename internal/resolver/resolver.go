package resolver

import (
	"fmt"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/i18n"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/lexer"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/parser"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/symbol"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/types"
)

// ErrorKind 语义错误类别
type ErrorKind int

const (
	ErrUndeclared ErrorKind = iota // 未声明的标识符或函数
	ErrRedeclared                  // 同一作用域重复声明
	ErrType                        // 类型不匹配
	ErrArity                       // 调用参数数量不匹配
	ErrReturn                      // return 语句与返回类型不符
	ErrEntry                       // 入口点缺失或非法
)

// SemanticError 语义错误，带源码位置和类别
type SemanticError struct {
	Kind   ErrorKind
	Line   int
	Column int
	Msg    string
}

func (e *SemanticError) Error() string {
	return i18n.T(i18n.ErrSemanticAt, e.Line, e.Column, e.Msg)
}

// Resolver 语义分析器
// 遍历 AST，维护嵌套作用域，绑定标识符，检查类型
type Resolver struct {
	funcs    *symbol.Table
	arena    *symbol.Arena
	curFunc  *parser.FuncDecl
	declared map[string]bool // 当前函数源码中出现的全部声明名
	irUsed   map[string]bool // 已分配的 IR 名称
	irNames  map[string]int  // 当前函数内 IR 名称去重计数
	err      *SemanticError
}

// Resolve 对语法合法的程序做语义分析
// 成功时返回全局函数签名表，AST 已就地标注类型和绑定
func Resolve(program *parser.Program) (*symbol.Table, error) {
	r := &Resolver{
		funcs: symbol.NewTable(),
		arena: symbol.NewArena(),
	}

	if len(program.Funcs) == 0 {
		return nil, &SemanticError{Kind: ErrEntry, Line: 1, Column: 1, Msg: i18n.T(i18n.ErrNoFuncs)}
	}

	// 先注册全部函数签名，支持前向和相互调用
	for _, fn := range program.Funcs {
		r.registerFunc(fn)
		if r.err != nil {
			return nil, r.err
		}
	}

	// 入口点检查
	main := r.funcs.Get("main")
	if main == nil {
		return nil, &SemanticError{Kind: ErrEntry, Line: 1, Column: 1, Msg: i18n.T(i18n.ErrNoMain)}
	}
	if len(main.Params) > 0 {
		return nil, &SemanticError{Kind: ErrEntry, Line: main.Line, Column: main.Column, Msg: i18n.T(i18n.ErrMainParams)}
	}

	// 逐个解析函数体
	for _, fn := range program.Funcs {
		r.resolveFunc(fn)
		if r.err != nil {
			return nil, r.err
		}
	}

	return r.funcs, nil
}

// errorAt 记录第一个错误
func (r *Resolver) errorAt(kind ErrorKind, tok lexer.Token, msg string) {
	if r.err != nil {
		return
	}
	r.err = &SemanticError{Kind: kind, Line: tok.Line, Column: tok.Column, Msg: msg}
}

// registerFunc 注册函数签名
func (r *Resolver) registerFunc(fn *parser.FuncDecl) {
	if fn.Name == "print" {
		r.errorAt(ErrRedeclared, fn.Token, i18n.T(i18n.ErrReservedName, fn.Name))
		return
	}

	sig := &symbol.FuncSig{
		Name:   fn.Name,
		Ret:    fn.RetType,
		Line:   fn.Token.Line,
		Column: fn.Token.Column,
	}
	for _, param := range fn.Params {
		sig.Params = append(sig.Params, param.Type)
	}

	if !r.funcs.Add(sig) {
		r.errorAt(ErrRedeclared, fn.Token, i18n.T(i18n.ErrDupFunc, fn.Name))
	}
}

// resolveFunc 解析函数体
func (r *Resolver) resolveFunc(fn *parser.FuncDecl) {
	r.curFunc = fn
	r.declared = collectDeclaredNames(fn)
	r.irUsed = make(map[string]bool)
	r.irNames = make(map[string]int)

	scope := r.arena.Push(symbol.NoScope)
	for _, param := range fn.Params {
		sym := &symbol.Symbol{
			Name:   param.Name,
			Kind:   symbol.SymbolParam,
			Type:   param.Type,
			Line:   param.Token.Line,
			Column: param.Token.Column,
			IRName: r.uniqueIRName(param.Name),
		}
		if !r.arena.Declare(scope, sym) {
			r.errorAt(ErrRedeclared, param.Token, i18n.T(i18n.ErrRedeclaredVar, param.Name))
			return
		}
		param.Sym = sym
	}

	r.resolveBlock(fn.Body, scope)
}

// collectDeclaredNames 预先收集函数内全部声明名（参数和局部变量）
// 给遮蔽变量起后缀名时用来避开用户自己写的名字，包括尚未解析到的声明
func collectDeclaredNames(fn *parser.FuncDecl) map[string]bool {
	names := make(map[string]bool)
	for _, param := range fn.Params {
		names[param.Name] = true
	}

	var walkStmt func(parser.Statement)
	walkBlock := func(block *parser.BlockStmt) {
		if block == nil {
			return
		}
		for _, stmt := range block.Statements {
			walkStmt(stmt)
		}
	}
	walkStmt = func(stmt parser.Statement) {
		switch s := stmt.(type) {
		case *parser.VarDecl:
			for _, name := range s.Names {
				names[name.Name] = true
			}
		case *parser.IfStmt:
			walkBlock(s.Consequence)
			walkBlock(s.Alternative)
		case *parser.WhileStmt:
			walkBlock(s.Body)
		case *parser.ForStmt:
			if s.Init != nil {
				walkStmt(s.Init)
			}
			walkBlock(s.Body)
		}
	}
	walkBlock(fn.Body)

	return names
}

// uniqueIRName 为声明生成函数内唯一的 IR 名称
// 首次出现的名字保持原样，遮蔽的同名变量依次得到 name_1、name_2 等名称，
// 跳过与用户声明或已分配名称重合的候选
func (r *Resolver) uniqueIRName(name string) string {
	if !r.irUsed[name] {
		r.irUsed[name] = true
		return name
	}

	n := r.irNames[name]
	for {
		n++
		candidate := fmt.Sprintf("%s_%d", name, n)
		if !r.irUsed[candidate] && !r.declared[candidate] {
			r.irNames[name] = n
			r.irUsed[candidate] = true
			return candidate
		}
	}
}

// resolveBlock 在新的子作用域中解析代码块
func (r *Resolver) resolveBlock(block *parser.BlockStmt, parent int) {
	scope := r.arena.Push(parent)
	for _, stmt := range block.Statements {
		r.resolveStmt(stmt, scope)
		if r.err != nil {
			return
		}
	}
}

// resolveStmt 解析语句
func (r *Resolver) resolveStmt(stmt parser.Statement, scope int) {
	switch s := stmt.(type) {
	case *parser.VarDecl:
		r.resolveVarDecl(s, scope)
	case *parser.ExprStmt:
		r.resolveExpr(s.Expression, scope)
	case *parser.IfStmt:
		r.resolveCondition(s.Condition, scope, "if")
		if r.err != nil {
			return
		}
		r.resolveBlock(s.Consequence, scope)
		if r.err == nil && s.Alternative != nil {
			r.resolveBlock(s.Alternative, scope)
		}
	case *parser.WhileStmt:
		r.resolveCondition(s.Condition, scope, "while")
		if r.err != nil {
			return
		}
		r.resolveBlock(s.Body, scope)
	case *parser.ForStmt:
		// for 循环变量拥有自己的作用域
		forScope := r.arena.Push(scope)
		if s.Init != nil {
			r.resolveStmt(s.Init, forScope)
			if r.err != nil {
				return
			}
		}
		if s.Condition != nil {
			r.resolveCondition(s.Condition, forScope, "for")
			if r.err != nil {
				return
			}
		}
		if s.Post != nil {
			r.resolveExpr(s.Post, forScope)
			if r.err != nil {
				return
			}
		}
		r.resolveBlock(s.Body, forScope)
	case *parser.ReturnStmt:
		r.resolveReturn(s, scope)
	}
}

// resolveVarDecl 解析变量声明
// 初始化表达式先于绑定解析，因此初始化里的同名标识符指向外层声明
func (r *Resolver) resolveVarDecl(decl *parser.VarDecl, scope int) {
	for _, name := range decl.Names {
		if name.Init != nil {
			initType := r.resolveExpr(name.Init, scope)
			if r.err != nil {
				return
			}
			if !types.AssignableTo(initType, decl.Type) {
				r.errorAt(ErrType, name.Token,
					i18n.T(i18n.ErrInitType, name.Name, decl.Type, initType))
				return
			}
		}

		if r.arena.LookupLocal(scope, name.Name) != nil {
			r.errorAt(ErrRedeclared, name.Token, i18n.T(i18n.ErrRedeclaredVar, name.Name))
			return
		}
		sym := &symbol.Symbol{
			Name:   name.Name,
			Kind:   symbol.SymbolVar,
			Type:   decl.Type,
			Line:   name.Token.Line,
			Column: name.Token.Column,
			IRName: r.uniqueIRName(name.Name),
		}
		r.arena.Declare(scope, sym)
		name.Sym = sym
	}
}

// resolveCondition 解析条件表达式，必须是 bool 类型
func (r *Resolver) resolveCondition(cond parser.Expression, scope int, construct string) {
	condType := r.resolveExpr(cond, scope)
	if r.err != nil {
		return
	}
	if condType != types.Bool {
		r.errorAt(ErrType, tokenOf(cond), i18n.T(i18n.ErrCondBool, construct, condType))
	}
}

// resolveReturn 解析 return 语句
func (r *Resolver) resolveReturn(stmt *parser.ReturnStmt, scope int) {
	retType := r.curFunc.RetType

	if stmt.Value == nil {
		if retType != types.Void {
			r.errorAt(ErrReturn, stmt.Token, i18n.T(i18n.ErrReturnMissing, r.curFunc.Name, retType))
		}
		return
	}

	if retType == types.Void {
		r.errorAt(ErrReturn, stmt.Token, i18n.T(i18n.ErrReturnVoid, r.curFunc.Name))
		return
	}

	valType := r.resolveExpr(stmt.Value, scope)
	if r.err != nil {
		return
	}
	if !types.AssignableTo(valType, retType) {
		r.errorAt(ErrReturn, stmt.Token, i18n.T(i18n.ErrReturnType, r.curFunc.Name, retType, valType))
	}
}

// resolveExpr 解析表达式并返回其类型
func (r *Resolver) resolveExpr(expr parser.Expression, scope int) types.Type {
	switch e := expr.(type) {
	case *parser.IntegerLiteral:
		return types.Int
	case *parser.FloatLiteral:
		return types.Float
	case *parser.StringLiteral:
		return types.String
	case *parser.BoolLiteral:
		return types.Bool
	case *parser.ParenExpr:
		return r.resolveExpr(e.X, scope)
	case *parser.Identifier:
		sym := r.arena.Lookup(scope, e.Value)
		if sym == nil {
			r.errorAt(ErrUndeclared, e.Token, i18n.T(i18n.ErrUndeclaredVar, e.Value))
			return types.Invalid
		}
		e.Sym = sym
		e.Typ = sym.Type
		return sym.Type
	case *parser.AssignExpr:
		return r.resolveAssign(e, scope)
	case *parser.UnaryExpr:
		return r.resolveUnary(e, scope)
	case *parser.BinaryExpr:
		return r.resolveBinary(e, scope)
	case *parser.CallExpr:
		return r.resolveCall(e, scope)
	}
	return types.Invalid
}

// resolveAssign 解析赋值表达式
// 目标必须已在某个外层作用域声明，值类型必须与目标一致
func (r *Resolver) resolveAssign(e *parser.AssignExpr, scope int) types.Type {
	sym := r.arena.Lookup(scope, e.Name)
	if sym == nil {
		r.errorAt(ErrUndeclared, e.NameToken, i18n.T(i18n.ErrUndeclaredVar, e.Name))
		return types.Invalid
	}

	valType := r.resolveExpr(e.Value, scope)
	if r.err != nil {
		return types.Invalid
	}
	if !types.AssignableTo(valType, sym.Type) {
		r.errorAt(ErrType, e.Token, i18n.T(i18n.ErrAssignType, valType, e.Name, sym.Type))
		return types.Invalid
	}

	e.Sym = sym
	e.Typ = sym.Type
	return sym.Type
}

// resolveUnary 解析一元表达式
// ! 要求 bool 操作数，+ - 要求数值操作数
func (r *Resolver) resolveUnary(e *parser.UnaryExpr, scope int) types.Type {
	operandType := r.resolveExpr(e.Operand, scope)
	if r.err != nil {
		return types.Invalid
	}

	switch e.Operator {
	case "!":
		if operandType != types.Bool {
			r.errorAt(ErrType, e.Token, i18n.T(i18n.ErrUnaryOperand, e.Operator, operandType))
			return types.Invalid
		}
		e.Typ = types.Bool
	case "+", "-":
		if !operandType.IsNumeric() {
			r.errorAt(ErrType, e.Token, i18n.T(i18n.ErrUnaryOperand, e.Operator, operandType))
			return types.Invalid
		}
		e.Typ = operandType
	}
	return e.Typ
}

// resolveBinary 解析二元表达式
// int 和 float 混合的算术/关系运算提升为 float，+ 对两个 string 表示拼接
func (r *Resolver) resolveBinary(e *parser.BinaryExpr, scope int) types.Type {
	leftType := r.resolveExpr(e.Left, scope)
	if r.err != nil {
		return types.Invalid
	}
	rightType := r.resolveExpr(e.Right, scope)
	if r.err != nil {
		return types.Invalid
	}

	fail := func() types.Type {
		r.errorAt(ErrType, e.Token, i18n.T(i18n.ErrBinaryOperand, e.Operator, leftType, rightType))
		return types.Invalid
	}

	switch e.Operator {
	case "+":
		if leftType == types.String && rightType == types.String {
			e.Operand = types.String
			e.Typ = types.String
			return e.Typ
		}
		fallthrough
	case "-", "*", "/":
		promoted, ok := types.Promote(leftType, rightType)
		if !ok {
			return fail()
		}
		e.Operand = promoted
		e.Typ = promoted
	case "%":
		if leftType != types.Int || rightType != types.Int {
			return fail()
		}
		e.Operand = types.Int
		e.Typ = types.Int
	case "<", ">", "<=", ">=":
		promoted, ok := types.Promote(leftType, rightType)
		if !ok {
			return fail()
		}
		e.Operand = promoted
		e.Typ = types.Bool
	case "==", "!=":
		if promoted, ok := types.Promote(leftType, rightType); ok {
			e.Operand = promoted
		} else if leftType == rightType && leftType.IsValue() {
			e.Operand = leftType
		} else {
			return fail()
		}
		e.Typ = types.Bool
	case "&&", "||":
		if leftType != types.Bool || rightType != types.Bool {
			return fail()
		}
		e.Operand = types.Bool
		e.Typ = types.Bool
	default:
		return fail()
	}
	return e.Typ
}

// resolveCall 解析函数调用
func (r *Resolver) resolveCall(e *parser.CallExpr, scope int) types.Type {
	// 内置 print：0 或 1 个任意值类型参数
	if e.Name == "print" {
		e.Builtin = true
		if len(e.Arguments) > 1 {
			r.errorAt(ErrArity, e.Token, i18n.T(i18n.ErrPrintArity))
			return types.Invalid
		}
		if len(e.Arguments) == 1 {
			argType := r.resolveExpr(e.Arguments[0], scope)
			if r.err != nil {
				return types.Invalid
			}
			if !argType.IsValue() {
				r.errorAt(ErrType, e.Token, i18n.T(i18n.ErrVoidValue))
				return types.Invalid
			}
		}
		e.Typ = types.Void
		return e.Typ
	}

	sig := r.funcs.Get(e.Name)
	if sig == nil {
		r.errorAt(ErrUndeclared, e.Token, i18n.T(i18n.ErrUndeclaredFunc, e.Name))
		return types.Invalid
	}

	if len(e.Arguments) != len(sig.Params) {
		r.errorAt(ErrArity, e.Token,
			i18n.T(i18n.ErrCallArity, e.Name, len(sig.Params), len(e.Arguments)))
		return types.Invalid
	}

	for i, arg := range e.Arguments {
		argType := r.resolveExpr(arg, scope)
		if r.err != nil {
			return types.Invalid
		}
		if !types.AssignableTo(argType, sig.Params[i]) {
			r.errorAt(ErrType, tokenOf(arg),
				i18n.T(i18n.ErrArgType, i+1, e.Name, sig.Params[i], argType))
			return types.Invalid
		}
	}

	e.Typ = sig.Ret
	return e.Typ
}

// tokenOf 取表达式的位置 token
func tokenOf(expr parser.Expression) lexer.Token {
	switch e := expr.(type) {
	case *parser.Identifier:
		return e.Token
	case *parser.IntegerLiteral:
		return e.Token
	case *parser.FloatLiteral:
		return e.Token
	case *parser.StringLiteral:
		return e.Token
	case *parser.BoolLiteral:
		return e.Token
	case *parser.AssignExpr:
		return e.NameToken
	case *parser.BinaryExpr:
		return e.Token
	case *parser.UnaryExpr:
		return e.Token
	case *parser.CallExpr:
		return e.Token
	case *parser.ParenExpr:
		return e.Token
	}
	return lexer.Token{}
}
