package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/compiler"
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/i18n"
)

// runCmd 编译并立即运行 mylang 源文件
func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	modeFlag := fs.String("mode", "", i18n.T(i18n.MsgRunOptMode))
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgRunOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgRunUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgRunDescription))
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

	// 中间产物放在临时目录，运行结束后清理
	tmpDir, err := os.MkdirTemp("", "mylang-run-")
	if err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}
	defer os.RemoveAll(tmpDir)

	var cmd *exec.Cmd
	switch mode {
	case compiler.ModeScript:
		script := filepath.Join(tmpDir, baseName(input)+".py")
		if err := writeTarget(script, out, *verbose); err != nil {
			printError("Error: " + err.Error())
			os.Exit(1)
		}
		if _, err := exec.LookPath(cfg.Build.Python); err != nil {
			printError("Error: " + i18n.T(i18n.ErrToolNotFound, cfg.Build.Python))
			os.Exit(1)
		}
		if *verbose {
			printInfo(i18n.T(i18n.MsgRunning, script))
		}
		cmd = exec.Command(cfg.Build.Python, script)

	case compiler.ModeNative:
		bin := filepath.Join(tmpDir, baseName(input))
		if err := buildNative(out, bin, cfg.Build.CC, *verbose); err != nil {
			printError("Error: " + err.Error())
			os.Exit(1)
		}
		if *verbose {
			printInfo(i18n.T(i18n.MsgRunning, bin))
		}
		cmd = exec.Command(bin)
	}

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		// 被运行程序的非零退出码原样传出
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		printError(i18n.T(i18n.ErrRunError, err))
		os.Exit(1)
	}
}
