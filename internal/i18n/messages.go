package i18n

// Message keys for parser errors
const (
	ErrSyntaxAt          = "parser.syntax_at"          // args: line, column, message
	ErrExpectedToken     = "parser.expected_token"     // args: expected, got
	ErrUnexpectedToken   = "parser.unexpected_token"   // args: got
	ErrExpectedFunc      = "parser.expected_func"      // args: got
	ErrExpectedType      = "parser.expected_type"      // args: got
	ErrVoidVar           = "parser.void_var"
	ErrBadAssignTarget   = "parser.bad_assign_target"
	ErrBadNumber         = "parser.bad_number"         // args: literal
	ErrUnterminatedBlock = "parser.unterminated_block"
)

// Message keys for resolver errors
const (
	ErrSemanticAt    = "resolver.semantic_at"     // args: line, column, message
	ErrNoFuncs       = "resolver.no_funcs"
	ErrNoMain        = "resolver.no_main"
	ErrMainParams    = "resolver.main_params"
	ErrReservedName  = "resolver.reserved_name"   // args: name
	ErrDupFunc       = "resolver.dup_func"        // args: name
	ErrRedeclaredVar = "resolver.redeclared_var"  // args: name
	ErrUndeclaredVar = "resolver.undeclared_var"  // args: name
	ErrUndeclaredFunc = "resolver.undeclared_func" // args: name
	ErrInitType      = "resolver.init_type"       // args: name, declared, got
	ErrAssignType    = "resolver.assign_type"     // args: got, name, declared
	ErrCondBool      = "resolver.cond_bool"       // args: construct, got
	ErrUnaryOperand  = "resolver.unary_operand"   // args: operator, got
	ErrBinaryOperand = "resolver.binary_operand"  // args: operator, left, right
	ErrCallArity     = "resolver.call_arity"      // args: name, want, got
	ErrArgType       = "resolver.arg_type"        // args: position, name, want, got
	ErrPrintArity    = "resolver.print_arity"
	ErrVoidValue     = "resolver.void_value"
	ErrReturnMissing = "resolver.return_missing"  // args: funcName, want
	ErrReturnVoid    = "resolver.return_void"     // args: funcName
	ErrReturnType    = "resolver.return_type"     // args: funcName, want, got
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdBuild       = "cli.cmd_build"
	MsgCmdRun         = "cli.cmd_run"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command

	// Build command
	MsgBuildUsage       = "cli.build_usage"
	MsgBuildDescription = "cli.build_description"
	MsgBuildOptMode     = "cli.build_opt_mode"
	MsgBuildOptEmit     = "cli.build_opt_emit"
	MsgBuildOptOutput   = "cli.build_opt_output"
	MsgBuildOptVerbose  = "cli.build_opt_verbose"

	// Run command
	MsgRunUsage       = "cli.run_usage"
	MsgRunDescription = "cli.run_description"
	MsgRunOptMode     = "cli.run_opt_mode"
	MsgRunOptVerbose  = "cli.run_opt_verbose"

	// Common errors
	ErrInputRequired    = "cli.input_required"
	ErrBadExtension     = "cli.bad_extension"       // args: path
	ErrBadMode          = "cli.bad_mode"            // args: mode
	ErrCannotReadFile   = "cli.cannot_read_file"    // args: path, error
	ErrCannotWriteFile  = "cli.cannot_write_file"   // args: path, error
	ErrCannotLoadConfig = "cli.cannot_load_config"  // args: error
	ErrCompileFailed    = "cli.compile_failed"      // args: path, error
	ErrToolNotFound     = "cli.tool_not_found"      // args: tool
	ErrToolFailed       = "cli.tool_failed"         // args: tool, error
	ErrRunError         = "cli.run_error"           // args: error

	// Info messages
	MsgUsingConfig = "cli.using_config" // args: configPath
	MsgCompiling   = "cli.compiling"    // args: path, mode
	MsgWrote       = "cli.wrote"        // args: path
	MsgInvoking    = "cli.invoking"     // args: command
	MsgRunning     = "cli.running"      // args: path
)
