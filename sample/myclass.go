package sample

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// MyClass stores a single integer and knows how to print it.
type MyClass struct {
	Value int
}

// NewMyClass copies v into a new MyClass.
func NewMyClass(v int) *MyClass { return &MyClass{Value: v} }

// PrintValue writes "Value: <n>\n" to w.
func (c *MyClass) PrintValue(w io.Writer) error {
	return writeLine(w, "Value: ", c.Value)
}

// PrintSum writes "Sum: <n>\n" to w.
func PrintSum(w io.Writer, sum int) error {
	return writeLine(w, "Sum: ", sum)
}

func writeLine(w io.Writer, label string, n int) error {
	line := make([]byte, 0, len(label)+21)
	line = append(line, label...)
	line = strconv.AppendInt(line, int64(n), 10)
	line = append(line, '\n')

	if _, err := w.Write(line); err != nil {
		return errors.Wrapf(err, "write %q line", label)
	}
	return nil
}
