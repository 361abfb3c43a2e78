package resolver

import (
	"testing"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/parser"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/types"
	"github.com/nalgeon/be"
)

func mustParse(t *testing.T, source string) *parser.Program {
	t.Helper()
	program, err := parser.Parse(source)
	be.Err(t, err, nil)
	return program
}

func TestResolveOK(t *testing.T) {
	program := mustParse(t, `
func int add(int a, int b) {
	return a + b;
}

func void main() {
	int x = add(1, 2);
	print(x);
}`)

	table, err := Resolve(program)
	be.Err(t, err, nil)
	be.Equal(t, table.Len(), 2)

	sig := table.Get("add")
	be.Equal(t, sig.Ret, types.Int)
	be.Equal(t, len(sig.Params), 2)
}

func TestTypeAnnotations(t *testing.T) {
	program := mustParse(t, `
func void main() {
	int i = 1;
	float f = 2.5;
	bool b = i < 3;
}`)

	_, err := Resolve(program)
	be.Err(t, err, nil)

	body := program.Funcs[0].Body.Statements
	lt := body[2].(*parser.VarDecl).Names[0].Init.(*parser.BinaryExpr)
	be.Equal(t, lt.Type(), types.Bool)
	be.Equal(t, lt.Operand, types.Int)
}

// int 和 float 混合运算提升为 float
func TestNumericPromotion(t *testing.T) {
	program := mustParse(t, `
func void main() {
	int i = 2;
	float f = 1.5 + i;
}`)

	_, err := Resolve(program)
	be.Err(t, err, nil)

	add := program.Funcs[0].Body.Statements[1].(*parser.VarDecl).Names[0].Init.(*parser.BinaryExpr)
	be.Equal(t, add.Type(), types.Float)
	be.Equal(t, add.Operand, types.Float)
}

// 内层声明遮蔽外层，离开作用域后外层恢复可见
func TestShadowing(t *testing.T) {
	program := mustParse(t, `
func void main() {
	int x = 1;
	if (true) {
		float x = 2.5;
		float y = x;
	}
	int z = x;
}`)

	_, err := Resolve(program)
	be.Err(t, err, nil)

	body := program.Funcs[0].Body.Statements
	outer := body[0].(*parser.VarDecl).Names[0]
	inner := body[1].(*parser.IfStmt).Consequence.Statements[0].(*parser.VarDecl).Names[0]

	// 遮蔽的声明得到不同的唯一名称
	be.Equal(t, outer.Sym.IRName, "x")
	be.Equal(t, inner.Sym.IRName, "x_1")

	// 作用域结束后引用回到外层声明
	z := body[2].(*parser.VarDecl).Names[0].Init.(*parser.Identifier)
	be.Equal(t, z.Sym, outer.Sym)
}

// 遮蔽变量的后缀名避开用户自己声明的同形名字
func TestShadowSuffixAvoidsUserNames(t *testing.T) {
	program := mustParse(t, `
func void main() {
	int x = 1;
	int x_1 = 10;
	if (true) {
		int x = 2;
	}
}`)

	_, err := Resolve(program)
	be.Err(t, err, nil)

	body := program.Funcs[0].Body.Statements
	be.Equal(t, body[0].(*parser.VarDecl).Names[0].Sym.IRName, "x")
	be.Equal(t, body[1].(*parser.VarDecl).Names[0].Sym.IRName, "x_1")

	inner := body[2].(*parser.IfStmt).Consequence.Statements[0].(*parser.VarDecl).Names[0]
	be.Equal(t, inner.Sym.IRName, "x_2")
}

// 预收集覆盖后出现的声明：遮蔽先解析也不能占用 x_1
func TestShadowSuffixAvoidsLaterNames(t *testing.T) {
	program := mustParse(t, `
func void main() {
	int x = 1;
	if (true) {
		int x = 2;
	}
	int x_1 = 10;
}`)

	_, err := Resolve(program)
	be.Err(t, err, nil)

	body := program.Funcs[0].Body.Statements
	inner := body[1].(*parser.IfStmt).Consequence.Statements[0].(*parser.VarDecl).Names[0]
	be.Equal(t, inner.Sym.IRName, "x_2")
	be.Equal(t, body[2].(*parser.VarDecl).Names[0].Sym.IRName, "x_1")
}

// 初始化表达式先于声明生效，其中的同名标识符指向外层
func TestInitSeesOuterBinding(t *testing.T) {
	program := mustParse(t, `
func void main() {
	int x = 1;
	if (true) {
		int x = x + 1;
	}
}`)

	_, err := Resolve(program)
	be.Err(t, err, nil)

	body := program.Funcs[0].Body.Statements
	outer := body[0].(*parser.VarDecl).Names[0]
	inner := body[1].(*parser.IfStmt).Consequence.Statements[0].(*parser.VarDecl).Names[0]

	ref := inner.Init.(*parser.BinaryExpr).Left.(*parser.Identifier)
	be.Equal(t, ref.Sym, outer.Sym)
}

func TestSemanticErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"no main", `func void f() { }`, ErrEntry},
		{"main with params", `func void main(int x) { }`, ErrEntry},
		{"duplicate function", `func void f() { } func int f() { return 0; } func void main() { }`, ErrRedeclared},
		{"redefine print", `func void print() { } func void main() { }`, ErrRedeclared},
		{"undeclared variable", `func void main() { x = 1; }`, ErrUndeclared},
		{"undeclared function", `func void main() { f(); }`, ErrUndeclared},
		{"redeclared in scope", `func void main() { int x; int x; }`, ErrRedeclared},
		{"redeclared param", `func void f(int a, int a) { } func void main() { }`, ErrRedeclared},
		{"init type mismatch", `func void main() { int x = 1.5; }`, ErrType},
		{"assign type mismatch", `func void main() { int x; x = true; }`, ErrType},
		{"assign float to int", `func void main() { int x; x = 1.0; }`, ErrType},
		{"if condition not bool", `func void main() { if (1) { } }`, ErrType},
		{"while condition not bool", `func void main() { while (1.5) { } }`, ErrType},
		{"mod on float", `func void main() { float x = 1.5 % 2.0; }`, ErrType},
		{"string plus int", `func void main() { string s = "a" + 1; }`, ErrType},
		{"relational on string", `func void main() { bool b = "a" < "b"; }`, ErrType},
		{"relational on bool", `func void main() { bool b = true < false; }`, ErrType},
		{"eq mixed types", `func void main() { bool b = 1 == "a"; }`, ErrType},
		{"and on int", `func void main() { bool b = 1 && 2; }`, ErrType},
		{"not on int", `func void main() { bool b = !1; }`, ErrType},
		{"minus on string", `func void main() { string s = -"a"; }`, ErrType},
		{"minus on bool", `func void main() { bool b = -true; }`, ErrType},
		{"call arity", `func int f(int a) { return a; } func void main() { f(); }`, ErrArity},
		{"call arg type", `func int f(int a) { return a; } func void main() { f(1.5); }`, ErrType},
		{"print two args", `func void main() { print(1, 2); }`, ErrArity},
		{"void as value", `func void f() { } func void main() { int x = f(); }`, ErrType},
		{"void as print arg", `func void f() { } func void main() { print(f()); }`, ErrType},
		{"return value from void", `func void main() { return 1; }`, ErrReturn},
		{"return nothing from int", `func int f() { return; } func void main() { }`, ErrReturn},
		{"return wrong type", `func int f() { return 1.5; } func void main() { }`, ErrReturn},
		{"use before declare", `func void main() { x = 1; int x; }`, ErrUndeclared},
		{"scope ends at block", `func void main() { if (true) { int x = 1; } x = 2; }`, ErrUndeclared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := mustParse(t, tt.input)
			_, err := Resolve(program)
			be.Equal(t, err != nil, true)

			semErr, ok := err.(*SemanticError)
			be.True(t, ok)
			be.Equal(t, semErr.Kind, tt.kind)
		})
	}
}

// string + string 是拼接，string == 和 != 合法
func TestStringOps(t *testing.T) {
	program := mustParse(t, `
func void main() {
	string s = "a" + "b";
	bool eq = s == "ab";
	bool ne = s != "x";
}`)

	_, err := Resolve(program)
	be.Err(t, err, nil)
}

// 函数可以在声明之前被调用
func TestForwardCall(t *testing.T) {
	program := mustParse(t, `
func void main() {
	int x = later(1);
	print(x);
}

func int later(int n) {
	return n;
}`)

	_, err := Resolve(program)
	be.Err(t, err, nil)
}

// for 的循环变量在循环结束后不可见
func TestForScopeEnds(t *testing.T) {
	program := mustParse(t, `
func void main() {
	for (int i = 0; i < 3; i = i + 1) { }
	i = 5;
}`)

	_, err := Resolve(program)
	be.Equal(t, err != nil, true)
	be.Equal(t, err.(*SemanticError).Kind, ErrUndeclared)
}
