package emitter

import (
	"strings"
	"testing"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/ir"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/parser"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/resolver"
	"github.com/nalgeon/be"
)

// lower 解析、语义分析并下沉源码
func lower(t *testing.T, source string) *ir.Program {
	t.Helper()
	program, err := parser.Parse(source)
	be.Err(t, err, nil)
	_, err = resolver.Resolve(program)
	be.Err(t, err, nil)
	return ir.Build(program)
}

func TestPythonWhile(t *testing.T) {
	prog := lower(t, `
func void main() {
	int x = 1;
	while (x < 3) {
		x = x + 1;
	}
	print(x);
}`)

	want := `#!/usr/bin/env python3
# Generated code. Do not edit.

def ml_main():
    v_x = 1
    while True:
        if not (v_x < 3):
            break
        v_x = (v_x + 1)
    print(v_x)
    return

if __name__ == "__main__":
    ml_main()
`
	be.Equal(t, EmitPython(prog), want)
}

func TestPythonIfElse(t *testing.T) {
	prog := lower(t, `
func void main() {
	int n = 5;
	if (n > 0) {
		print(1);
	} else {
		print(2);
	}
}`)

	out := EmitPython(prog)
	be.True(t, strings.Contains(out, "    if (v_n > 0):\n        print(1)\n    else:\n        print(2)\n"))
}

// 空块补 pass
func TestPythonEmptyBlocks(t *testing.T) {
	prog := lower(t, `
func void main() {
	if (true) { }
	for (;;) { }
}`)

	out := EmitPython(prog)
	be.True(t, strings.Contains(out, "    if True:\n        pass\n"))
	be.True(t, strings.Contains(out, "    while True:\n        pass\n"))
}

// 短路运算符映射到 and / or / not
func TestPythonLogicalOps(t *testing.T) {
	prog := lower(t, `
func void main() {
	bool a = true, b = false;
	bool c = a && b || !a;
}`)

	out := EmitPython(prog)
	be.True(t, strings.Contains(out, "v_c = ((v_a and v_b) or (not v_a))"))
}

// 整数除法和取模经过截断辅助函数，浮点除法不经过
func TestPythonIntDivision(t *testing.T) {
	prog := lower(t, `
func void main() {
	int q = 7 / 2;
	int r = 7 % 2;
	float f = 7.0 / 2.0;
}`)

	out := EmitPython(prog)
	be.True(t, strings.Contains(out, "def _my_idiv(a, b):"))
	be.True(t, strings.Contains(out, "def _my_imod(a, b):"))
	be.True(t, strings.Contains(out, "v_q = _my_idiv(7, 2)"))
	be.True(t, strings.Contains(out, "v_r = _my_imod(7, 2)"))
	be.True(t, strings.Contains(out, "v_f = (7.0 / 2.0)"))
}

// 程序里没有整数除法时不输出辅助函数
func TestPythonNoHelpers(t *testing.T) {
	prog := lower(t, `func void main() { print(1 + 2); }`)

	out := EmitPython(prog)
	be.Equal(t, strings.Contains(out, "_my_idiv"), false)
	be.Equal(t, strings.Contains(out, "_my_imod"), false)
}

// print 按静态类型选择格式
func TestPythonPrintDispatch(t *testing.T) {
	prog := lower(t, `
func void main() {
	print(42);
	print(1.5);
	print(true);
	print("hi");
	print();
}`)

	out := EmitPython(prog)
	be.True(t, strings.Contains(out, "print(42)\n"))
	be.True(t, strings.Contains(out, "print(\"%f\" % 1.5)\n"))
	be.True(t, strings.Contains(out, "print(\"true\" if True else \"false\")\n"))
	be.True(t, strings.Contains(out, "print(\"hi\")\n"))
	be.True(t, strings.Contains(out, "print()\n"))
}

// 嵌套赋值用海象运算符，顶层赋值是普通赋值
func TestPythonNestedAssign(t *testing.T) {
	prog := lower(t, `
func void main() {
	int a, b;
	a = b = 3;
}`)

	out := EmitPython(prog)
	be.True(t, strings.Contains(out, "v_a = (v_b := 3)"))
}

// 浮点字面量始终带小数点
func TestPythonFloatLiteral(t *testing.T) {
	prog := lower(t, `func void main() { float f = 2.0; }`)

	out := EmitPython(prog)
	be.True(t, strings.Contains(out, "v_f = 2.0"))
}

// 无初始化的声明得到类型零值
func TestPythonZeroInit(t *testing.T) {
	prog := lower(t, `
func void main() {
	int i;
	float f;
	string s;
	bool b;
}`)

	out := EmitPython(prog)
	be.True(t, strings.Contains(out, "v_i = 0\n"))
	be.True(t, strings.Contains(out, "v_f = 0.0\n"))
	be.True(t, strings.Contains(out, "v_s = \"\"\n"))
	be.True(t, strings.Contains(out, "v_b = False\n"))
}

// 同一份 IR 输出两次，结果完全一致
func TestPythonDeterministic(t *testing.T) {
	prog := lower(t, `
func int fib(int n) {
	if (n < 2) { return n; }
	return fib(n - 1) + fib(n - 2);
}

func void main() {
	print(fib(10));
}`)

	be.Equal(t, EmitPython(prog), EmitPython(prog))
}
