// Command sample runs the codiculum sample program.
//
// With no flags, no config file and no CODICULUM_* environment it prints
//
//	Value: 10
//	Sum: 8
//
// and exits 0.
//
// Inputs
//
// The program has three integer inputs: the value printed by MyClass and the
// two operands of Add. They are resolved in this order, later wins:
//
//   - built-in defaults (10, 5, 3)
//   - a YAML file given with --config
//   - CODICULUM_VALUE, CODICULUM_A, CODICULUM_B
//   - --value, --a, --b when set explicitly
//
// Example config:
//
//	value: 42
//	a: 1
//	b: 2
//	log_level: debug
//
// Output
//
// stdout carries only the program lines. Logs are written to stderr by zap,
// at the level from --log-level / CODICULUM_LOG_LEVEL / log_level (default
// "error", which keeps stderr quiet on success).
//
// Exit codes
//
//   - 0: success
//   - 1: the program failed while writing output
//   - 2: bad flags or configuration
package main
