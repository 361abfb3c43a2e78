package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/compiler"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/i18n"
)

// buildCmd 编译 mylang 源文件
func buildCmd(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	modeFlag := fs.String("mode", "", i18n.T(i18n.MsgBuildOptMode))
	emit := fs.String("emit", "", i18n.T(i18n.MsgBuildOptEmit))
	output := fs.String("o", "", i18n.T(i18n.MsgBuildOptOutput))
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgBuildOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgBuildUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgBuildDescription))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	input := fs.Arg(0)

	out, cfg, mode, err := compileInput(input, *modeFlag, *verbose)
	if err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}

	// -emit 把生成的源代码写到指定路径，不继续构建
	// 命令行优先于配置文件的 emit 键
	emitPath := *emit
	if emitPath == "" {
		emitPath = cfg.Build.Emit
	}
	if emitPath != "" {
		if err := writeTarget(emitPath, out, *verbose); err != nil {
			printError("Error: " + err.Error())
			os.Exit(1)
		}
		return
	}

	// script 模式的产物就是生成的脚本
	if mode == compiler.ModeScript {
		target := *output
		if target == "" {
			target = cfg.Build.Output
		}
		if target == "" {
			target = baseName(input) + mode.TargetExt()
		}
		if err := writeTarget(target, out, *verbose); err != nil {
			printError("Error: " + err.Error())
			os.Exit(1)
		}
		return
	}

	// native 模式：调用外部 C 编译器产出可执行文件
	target := *output
	if target == "" {
		target = cfg.Build.Output
	}
	if target == "" {
		target = baseName(input)
	}
	if err := buildNative(out, target, cfg.Build.CC, *verbose); err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}
}
