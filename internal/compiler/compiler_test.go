package compiler

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/parser"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/resolver"
	"github.com/nalgeon/be"
)

const example = `
func int add(int a, int b) {
	return a + b;
}

func void main() {
	int x = add(2, 3);
	print(x);
}
`

func TestCompileScript(t *testing.T) {
	out, err := Compile(example, ModeScript)
	be.Err(t, err, nil)
	be.True(t, strings.Contains(out, "def ml_add(v_a, v_b):"))
	be.True(t, strings.Contains(out, "def ml_main():"))
	be.True(t, strings.Contains(out, "ml_add(2, 3)"))
}

func TestCompileNative(t *testing.T) {
	out, err := Compile(example, ModeNative)
	be.Err(t, err, nil)
	be.True(t, strings.Contains(out, "static long long ml_add(long long v_a, long long v_b)"))
	be.True(t, strings.Contains(out, "int main(void)"))
}

func TestCompileSyntaxError(t *testing.T) {
	_, err := Compile(`func void main() { int x = ; }`, ModeScript)
	be.Equal(t, err != nil, true)
	_, ok := err.(*parser.SyntaxError)
	be.True(t, ok)
}

func TestCompileSemanticError(t *testing.T) {
	_, err := Compile(`func void main() { x = 1; }`, ModeScript)
	be.Equal(t, err != nil, true)
	_, ok := err.(*resolver.SemanticError)
	be.True(t, ok)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("script")
	be.Err(t, err, nil)
	be.Equal(t, mode, ModeScript)

	mode, err = ParseMode("native")
	be.Err(t, err, nil)
	be.Equal(t, mode, ModeNative)

	_, err = ParseMode("wasm")
	be.Equal(t, err != nil, true)
}

func TestTargetExt(t *testing.T) {
	be.Equal(t, ModeScript.TargetExt(), ".py")
	be.Equal(t, ModeNative.TargetExt(), ".c")
}

// 同一源码编译两次输出完全一致
func TestCompileDeterministic(t *testing.T) {
	for _, mode := range []Mode{ModeScript, ModeNative} {
		a, err := Compile(example, mode)
		be.Err(t, err, nil)
		b, err := Compile(example, mode)
		be.Err(t, err, nil)
		be.Equal(t, a, b)
	}
}

// 两个后端运行同一程序，输出必须一致
// 覆盖截断除法、取模、短路求值、浮点输出和字符串运算
const differentialSource = `
func int tdiv(int a, int b) {
	return a / b;
}

func bool loud(bool v) {
	print("evaluated");
	return v;
}

func void main() {
	print(tdiv(7, 2));
	print(tdiv(0 - 7, 2));
	print(7 % 3);
	print((0 - 7) % 3);

	if (false && loud(true)) { }
	if (true || loud(true)) { }

	print(1.0 / 4.0);
	print("a" + "b");
	print("ab" == "a" + "b");

	int total = 0;
	for (int i = 1; i <= 5; i = i + 1) {
		total = total + i;
	}
	print(total);
}
`

const differentialWant = `3
-3
1
-1
0.250000
ab
true
15
`

func TestDifferential(t *testing.T) {
	python, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not found")
	}
	cc, err := exec.LookPath("cc")
	if err != nil {
		t.Skip("cc not found")
	}

	dir := t.TempDir()

	// 脚本后端
	script, err := Compile(differentialSource, ModeScript)
	be.Err(t, err, nil)
	scriptPath := filepath.Join(dir, "prog.py")
	be.Err(t, os.WriteFile(scriptPath, []byte(script), 0644), nil)

	pyOut, err := exec.Command(python, scriptPath).CombinedOutput()
	if err != nil {
		t.Fatalf("python run failed: %v\n%s", err, pyOut)
	}

	// 本地后端
	cSource, err := Compile(differentialSource, ModeNative)
	be.Err(t, err, nil)
	cPath := filepath.Join(dir, "prog.c")
	be.Err(t, os.WriteFile(cPath, []byte(cSource), 0644), nil)

	binPath := filepath.Join(dir, "prog")
	if out, err := exec.Command(cc, "-std=c99", "-o", binPath, cPath).CombinedOutput(); err != nil {
		t.Fatalf("cc failed: %v\n%s", err, out)
	}

	cOut, err := exec.Command(binPath).CombinedOutput()
	if err != nil {
		t.Fatalf("native run failed: %v\n%s", err, cOut)
	}

	be.Equal(t, string(pyOut), string(cOut))
	be.Equal(t, string(pyOut), differentialWant)
}
