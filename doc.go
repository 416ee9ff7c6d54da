// Package codiculum holds the codiculum sample program.
//
// The program prints a MyClass value and the sum of two integers:
//
//	Value: 10
//	Sum: 8
//
// Layout:
//
//   - sample: Add, MyClass and the Program composition root
//   - sample/config: defaults, YAML file and environment inputs
//   - cmd/sample: the command-line entry point
//
// Running:
//
//	go run ./cmd/sample
package codiculum
