package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// 语法错误
	ErrSyntaxAt:          "第 %d:%d 行：语法错误：%s",
	ErrExpectedToken:     "期望 %s，实际为 %s",
	ErrUnexpectedToken:   "意外的 %s",
	ErrExpectedFunc:      "期望函数声明，实际为 %s",
	ErrExpectedType:      "期望类型名称，实际为 %s",
	ErrVoidVar:           "void 只能用作返回类型",
	ErrBadAssignTarget:   "赋值语句左侧必须是变量",
	ErrBadNumber:         "非法数字字面量 '%s'",
	ErrUnterminatedBlock: "文件意外结束，代码块未闭合",

	// 语义错误
	ErrSemanticAt:     "第 %d:%d 行：%s",
	ErrNoFuncs:        "程序中没有函数声明",
	ErrNoMain:         "未定义函数 'main'",
	ErrMainParams:     "函数 'main' 不能有参数",
	ErrReservedName:   "'%s' 是内置函数，不能重新定义",
	ErrDupFunc:        "函数 '%s' 已经定义",
	ErrRedeclaredVar:  "'%s' 在当前作用域中已经声明",
	ErrUndeclaredVar:  "未声明的变量 '%s'",
	ErrUndeclaredFunc: "未声明的函数 '%s'",
	ErrInitType:       "不能用 %[3]s 类型的值初始化 %[2]s 类型的 '%[1]s'",
	ErrAssignType:     "不能把 %[1]s 类型的值赋给 %[3]s 类型的 '%[2]s'",
	ErrCondBool:       "%s 条件必须是 bool 类型，实际为 %s",
	ErrUnaryOperand:   "运算符 '%s' 不能作用于 %s",
	ErrBinaryOperand:  "运算符 '%s' 不能作用于 %s 和 %s",
	ErrCallArity:      "函数 '%s' 需要 %d 个参数，实际传入 %d 个",
	ErrArgType:        "'%[2]s' 的第 %[1]d 个参数必须是 %[3]s 类型，实际为 %[4]s",
	ErrPrintArity:     "print 最多接受一个参数",
	ErrVoidValue:      "void 值不能用作表达式",
	ErrReturnMissing:  "函数 '%s' 必须返回 %s 类型的值",
	ErrReturnVoid:     "函数 '%s' 没有返回值",
	ErrReturnType:     "函数 '%s' 必须返回 %s 类型，实际为 %s",

	// 用法和帮助
	MsgUsage:          "用法: mylang <命令> [参数]",
	MsgCommands:       "命令:",
	MsgCmdBuild:       "  build     编译源文件",
	MsgCmdRun:         "  run       编译并运行源文件",
	MsgCmdVersion:     "  version   显示版本信息",
	MsgCmdHelp:        "  help      显示帮助",
	MsgUseHelp:        "使用 'mylang help' 查看更多信息。",
	MsgUnknownCommand: "未知命令: %s",

	// build 命令
	MsgBuildUsage:       "用法: mylang build [选项] <file.my>",
	MsgBuildDescription: "把源文件编译为脚本或本地可执行文件。",
	MsgBuildOptMode:     "  -mode     编译模式: script 或 native（默认取配置文件）",
	MsgBuildOptEmit:     "  -emit     把生成的源代码写到指定路径，不继续构建",
	MsgBuildOptOutput:   "  -o        输出路径",
	MsgBuildOptVerbose:  "  -v        显示详细输出",

	// run 命令
	MsgRunUsage:       "用法: mylang run [选项] <file.my>",
	MsgRunDescription: "编译并立即运行源文件。",
	MsgRunOptMode:     "  -mode     编译模式: script 或 native（默认取配置文件）",
	MsgRunOptVerbose:  "  -v        显示详细输出",

	// 通用错误
	ErrInputRequired:    "必须指定输入文件",
	ErrBadExtension:     "输入文件必须以 .my 结尾: %s",
	ErrBadMode:          "非法模式 '%s'，必须是 'script' 或 'native'",
	ErrCannotReadFile:   "无法读取 %s: %v",
	ErrCannotWriteFile:  "无法写入 %s: %v",
	ErrCannotLoadConfig: "无法加载配置: %v",
	ErrCompileFailed:    "%s: %v",
	ErrToolNotFound:     "在 PATH 中找不到所需工具 '%s'",
	ErrToolFailed:       "%s 执行失败: %v",
	ErrRunError:         "运行失败: %v",

	// 信息
	MsgUsingConfig: "使用配置 %s",
	MsgCompiling:   "正在编译 %s（%s 模式）",
	MsgWrote:       "已写入 %s",
	MsgInvoking:    "正在调用 %s",
	MsgRunning:     "正在运行 %s",
}
