package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/compiler"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/config"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/i18n"
)

// sourceExt mylang 源文件扩展名
const sourceExt = ".my"

// compileInput 读取源文件并编译为目标语言源代码
// 返回生成的源代码、生效的配置和模式
func compileInput(input, modeFlag string, verbose bool) (string, *config.Config, compiler.Mode, error) {
	if !strings.HasSuffix(input, sourceExt) {
		return "", nil, "", fmt.Errorf("%s", i18n.T(i18n.ErrBadExtension, input))
	}

	// 配置文件从源文件所在目录向上查找
	cfg, configPath, err := config.FindAndLoad(filepath.Dir(input))
	if err != nil {
		return "", nil, "", fmt.Errorf("%s", i18n.T(i18n.ErrCannotLoadConfig, err))
	}
	if verbose && configPath != "" {
		printInfo(i18n.T(i18n.MsgUsingConfig, configPath))
	}

	// 命令行的 -mode 覆盖配置文件
	modeStr := cfg.Build.Mode
	if modeFlag != "" {
		modeStr = modeFlag
	}
	mode, err := compiler.ParseMode(modeStr)
	if err != nil {
		return "", nil, "", err
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return "", nil, "", fmt.Errorf("%s", i18n.T(i18n.ErrCannotReadFile, input, err))
	}

	if verbose {
		printInfo(i18n.T(i18n.MsgCompiling, input, mode))
	}

	out, err := compiler.Compile(string(source), mode)
	if err != nil {
		return "", nil, "", fmt.Errorf("%s", i18n.T(i18n.ErrCompileFailed, input, err))
	}

	return out, cfg, mode, nil
}

// baseName 去掉路径和扩展名的源文件名
func baseName(input string) string {
	return strings.TrimSuffix(filepath.Base(input), sourceExt)
}

// writeTarget 把生成的源代码写入文件
func writeTarget(path, content string, verbose bool) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("%s", i18n.T(i18n.ErrCannotWriteFile, path, err))
	}
	if verbose {
		printInfo(i18n.T(i18n.MsgWrote, path))
	}
	return nil
}

// buildNative 把生成的 C 源码交给外部 C 编译器，产出可执行文件
// C 源码写入临时文件，成功后删除
func buildNative(cSource, output, cc string, verbose bool) error {
	if _, err := exec.LookPath(cc); err != nil {
		return fmt.Errorf("%s", i18n.T(i18n.ErrToolNotFound, cc))
	}

	tmp, err := os.CreateTemp("", "mylang-*.c")
	if err != nil {
		return fmt.Errorf("%s", i18n.T(i18n.ErrCannotWriteFile, "temp file", err))
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(cSource); err != nil {
		tmp.Close()
		return fmt.Errorf("%s", i18n.T(i18n.ErrCannotWriteFile, tmpPath, err))
	}
	tmp.Close()

	args := []string{"-std=c99", "-O2", "-o", output, tmpPath}
	if verbose {
		printInfo(i18n.T(i18n.MsgInvoking, cc+" "+strings.Join(args, " ")))
	}

	cmd := exec.Command(cc, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s", i18n.T(i18n.ErrToolFailed, cc, err))
	}
	return nil
}
