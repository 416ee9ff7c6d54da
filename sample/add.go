package sample

// Add returns a+b when both operands are strictly positive, otherwise 0.
//
// Overflow is not detected: a sum of two large positive ints wraps the same
// way a+b does.
func Add(a, b int) int {
	if a > 0 && b > 0 {
		return a + b
	}
	return 0
}
