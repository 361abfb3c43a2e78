package emitter

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestCWhile(t *testing.T) {
	prog := lower(t, `
func void main() {
	int x = 1;
	while (x < 3) {
		x = x + 1;
	}
	print(x);
}`)

	want := `/* Generated code. Do not edit. */
#include <stdio.h>
#include <stdbool.h>

static void ml_main(void);

static void ml_main(void) {
    long long v_x = 1LL;
L0:;
    if (!(v_x < 3LL)) goto L1;
    v_x = (v_x + 1LL);
    goto L0;
L1:;
    printf("%lld\n", v_x);
    return;
}

int main(void) {
    ml_main();
    return 0;
}
`
	be.Equal(t, EmitC(prog), want)
}

// 所有函数先输出原型，支持相互递归
func TestCPrototypes(t *testing.T) {
	prog := lower(t, `
func bool even(int n) {
	if (n == 0) { return true; }
	return odd(n - 1);
}

func bool odd(int n) {
	if (n == 0) { return false; }
	return even(n - 1);
}

func void main() {
	print(even(10));
}`)

	out := EmitC(prog)
	be.True(t, strings.Contains(out, "static bool ml_even(long long v_n);\n"))
	be.True(t, strings.Contains(out, "static bool ml_odd(long long v_n);\n"))

	// 原型在全部定义之前
	be.True(t, strings.Index(out, "ml_odd(long long v_n);") < strings.Index(out, "ml_even(long long v_n) {"))
}

// 类型映射
func TestCTypes(t *testing.T) {
	prog := lower(t, `
func void main() {
	int i;
	float f;
	string s;
	bool b;
}`)

	out := EmitC(prog)
	be.True(t, strings.Contains(out, "long long v_i = 0LL;"))
	be.True(t, strings.Contains(out, "double v_f = 0.0;"))
	be.True(t, strings.Contains(out, "const char *v_s = \"\";"))
	be.True(t, strings.Contains(out, "bool v_b = false;"))
}

// 字符串拼接和比较经过辅助函数
func TestCStringOps(t *testing.T) {
	prog := lower(t, `
func void main() {
	string s = "a" + "b";
	bool eq = s == "ab";
	bool ne = s != "x";
}`)

	out := EmitC(prog)
	be.True(t, strings.Contains(out, "#include <stdlib.h>"))
	be.True(t, strings.Contains(out, "#include <string.h>"))
	be.True(t, strings.Contains(out, "static const char *_my_concat(const char *a, const char *b)"))
	be.True(t, strings.Contains(out, "_my_concat(\"a\", \"b\")"))
	be.True(t, strings.Contains(out, "(strcmp(v_s, \"ab\") == 0)"))
	be.True(t, strings.Contains(out, "(strcmp(v_s, \"x\") != 0)"))
}

// 没有字符串运算时不引入 string.h 和辅助函数
func TestCNoStringHelpers(t *testing.T) {
	prog := lower(t, `func void main() { print(1); }`)

	out := EmitC(prog)
	be.Equal(t, strings.Contains(out, "string.h"), false)
	be.Equal(t, strings.Contains(out, "_my_concat"), false)
}

// print 按静态类型选择 printf 格式
func TestCPrintDispatch(t *testing.T) {
	prog := lower(t, `
func void main() {
	print(42);
	print(1.5);
	print(true);
	print("hi");
	print();
}`)

	out := EmitC(prog)
	be.True(t, strings.Contains(out, `printf("%lld\n", 42LL);`))
	be.True(t, strings.Contains(out, `printf("%f\n", 1.5);`))
	be.True(t, strings.Contains(out, `printf("%s\n", true ? "true" : "false");`))
	be.True(t, strings.Contains(out, `printf("%s\n", "hi");`))
	be.True(t, strings.Contains(out, `printf("\n");`))
}

// 字符串字面量重新编码转义
func TestCStringQuoting(t *testing.T) {
	prog := lower(t, `func void main() { print("a\"b\\c\nd\te"); }`)

	out := EmitC(prog)
	be.True(t, strings.Contains(out, `"a\"b\\c\nd\te"`))
}

// 表达式语句的结果显式丢弃
func TestCDiscardedValue(t *testing.T) {
	prog := lower(t, `
func int f() { return 1; }
func void main() {
	f();
	1 + 2;
}`)

	out := EmitC(prog)
	be.True(t, strings.Contains(out, "(void)ml_f();"))
	be.True(t, strings.Contains(out, "(void)(1LL + 2LL);"))
}

// 遮蔽变量和用户的 x_1 在输出中是两个不同的变量
func TestCShadowNoRedefinition(t *testing.T) {
	prog := lower(t, `
func void main() {
	int x = 1;
	int x_1 = 10;
	if (true) {
		int x = 2;
		print(x);
	}
	print(x_1);
}`)

	out := EmitC(prog)
	be.Equal(t, strings.Count(out, "long long v_x_1 = "), 1)
	be.True(t, strings.Contains(out, "long long v_x_2 = 2LL;"))
	be.True(t, strings.Contains(out, `printf("%lld\n", v_x_1);`))
}

func TestCDeterministic(t *testing.T) {
	prog := lower(t, `
func int fib(int n) {
	if (n < 2) { return n; }
	return fib(n - 1) + fib(n - 2);
}

func void main() {
	print(fib(10));
}`)

	be.Equal(t, EmitC(prog), EmitC(prog))
}
