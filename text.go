package papergrid

import "strings"

// Strip removes every escape sequence from s. It is meant for measuring;
// rendered output keeps the escapes.
func Strip(s string) string {
	return defaultOps.Strip(s)
}

// Trim removes leading and trailing whitespace from s, keeping escape sequences in order.
func Trim(s string) string {
	return defaultOps.Trim(s)
}

// SplitLines splits s around each occurrence of sep, keeping styling intact on both sides.
func SplitLines(s, sep string) []string {
	return defaultOps.SplitLines(s, sep)
}

// CountLines returns the number of '\n' separated lines in s. An empty string is one line.
func CountLines(s string) int {
	return strings.Count(s, "\n") + 1
}
