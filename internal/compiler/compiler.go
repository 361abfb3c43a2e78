// Package compiler 把前后端各阶段串成完整的编译管线
package compiler

import (
	"fmt"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/emitter"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/i18n"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/ir"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/parser"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/resolver"
)

// Mode 编译模式
type Mode string

const (
	ModeScript Mode = "script" // 生成 Python 脚本
	ModeNative Mode = "native" // 生成 C 源码，交给外部工具链
)

// ParseMode 解析模式字符串
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeScript, ModeNative:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%s", i18n.T(i18n.ErrBadMode, s))
}

// TargetExt 目标源文件的扩展名
func (m Mode) TargetExt() string {
	if m == ModeNative {
		return ".c"
	}
	return ".py"
}

// Compile 把源代码编译为目标语言源代码
// 出错时返回第一个语法或语义错误
func Compile(source string, mode Mode) (string, error) {
	prog, err := Lower(source)
	if err != nil {
		return "", err
	}

	switch mode {
	case ModeNative:
		return emitter.EmitC(prog), nil
	default:
		return emitter.EmitPython(prog), nil
	}
}

// Lower 执行到 IR 为止的前端阶段：解析、语义分析、下沉
func Lower(source string) (*ir.Program, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	if _, err := resolver.Resolve(program); err != nil {
		return nil, err
	}

	return ir.Build(program), nil
}
