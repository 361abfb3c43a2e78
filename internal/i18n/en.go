package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Parser errors
	ErrSyntaxAt:          "line %d:%d: syntax error: %s",
	ErrExpectedToken:     "expected %s, got %s",
	ErrUnexpectedToken:   "unexpected %s",
	ErrExpectedFunc:      "expected function declaration, got %s",
	ErrExpectedType:      "expected type name, got %s",
	ErrVoidVar:           "void can only be used as a return type",
	ErrBadAssignTarget:   "left side of assignment must be a variable",
	ErrBadNumber:         "invalid number literal '%s'",
	ErrUnterminatedBlock: "unexpected end of file, unterminated block",

	// Resolver errors
	ErrSemanticAt:     "line %d:%d: %s",
	ErrNoFuncs:        "program contains no function declarations",
	ErrNoMain:         "function 'main' is not defined",
	ErrMainParams:     "function 'main' cannot have parameters",
	ErrReservedName:   "'%s' is a built-in function and cannot be redefined",
	ErrDupFunc:        "function '%s' is already defined",
	ErrRedeclaredVar:  "'%s' is already declared in this scope",
	ErrUndeclaredVar:  "undeclared variable '%s'",
	ErrUndeclaredFunc: "undeclared function '%s'",
	ErrInitType:       "cannot initialize '%s' of type %s with value of type %s",
	ErrAssignType:     "cannot assign value of type %s to '%s' of type %s",
	ErrCondBool:       "%s condition must be bool, got %s",
	ErrUnaryOperand:   "operator '%s' cannot be applied to %s",
	ErrBinaryOperand:  "operator '%s' cannot be applied to %s and %s",
	ErrCallArity:      "function '%s' expects %d argument(s), got %d",
	ErrArgType:        "argument %d of '%s' must be %s, got %s",
	ErrPrintArity:     "print expects at most one argument",
	ErrVoidValue:      "void value cannot be used as an expression",
	ErrReturnMissing:  "function '%s' must return a value of type %s",
	ErrReturnVoid:     "function '%s' does not return a value",
	ErrReturnType:     "function '%s' must return %s, got %s",

	// Usage and help
	MsgUsage:          "Usage: mylang <command> [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdBuild:       "  build     compile a source file",
	MsgCmdRun:         "  run       compile and run a source file",
	MsgCmdVersion:     "  version   print version information",
	MsgCmdHelp:        "  help      show this help",
	MsgUseHelp:        "Use 'mylang help' for more information.",
	MsgUnknownCommand: "unknown command: %s",

	// Build command
	MsgBuildUsage:       "Usage: mylang build [options] <file.my>",
	MsgBuildDescription: "Compile a source file to a script or native executable.",
	MsgBuildOptMode:     "  -mode     compilation mode: script or native (default from config)",
	MsgBuildOptEmit:     "  -emit     write the generated source to this path instead of building",
	MsgBuildOptOutput:   "  -o        output path",
	MsgBuildOptVerbose:  "  -v        verbose output",

	// Run command
	MsgRunUsage:       "Usage: mylang run [options] <file.my>",
	MsgRunDescription: "Compile and immediately run a source file.",
	MsgRunOptMode:     "  -mode     compilation mode: script or native (default from config)",
	MsgRunOptVerbose:  "  -v        verbose output",

	// Common errors
	ErrInputRequired:    "input file is required",
	ErrBadExtension:     "input file must have .my extension: %s",
	ErrBadMode:          "invalid mode '%s', must be 'script' or 'native'",
	ErrCannotReadFile:   "cannot read %s: %v",
	ErrCannotWriteFile:  "cannot write %s: %v",
	ErrCannotLoadConfig: "cannot load config: %v",
	ErrCompileFailed:    "%s: %v",
	ErrToolNotFound:     "required tool '%s' not found in PATH",
	ErrToolFailed:       "%s failed: %v",
	ErrRunError:         "run failed: %v",

	// Info messages
	MsgUsingConfig: "using config %s",
	MsgCompiling:   "compiling %s (%s mode)",
	MsgWrote:       "wrote %s",
	MsgInvoking:    "invoking %s",
	MsgRunning:     "running %s",
}
