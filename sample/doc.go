// Package sample is the codiculum sample program as a library.
//
// It exposes the three pieces the program is built from:
//
//   - Add: sums two integers when both are strictly positive, 0 otherwise
//   - MyClass: holds one integer and prints it as "Value: <n>"
//   - Program: the composition root that prints a MyClass and a sum
//
// Program is constructed through ProgramBuilder, which follows the same
// explicit wiring style used across the repo: required dependencies are
// injected by name, optional ones come from a Registry, and Build validates
// the result.
//
// Import
//
//	"github.com/asherban/codiculum/sample"
package sample
