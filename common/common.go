package common

import "fmt"

/*
EscapeSymbol renders a symbol for a report row: newline as \n, other
control characters as CTRL(n).
*/
func EscapeSymbol(r rune) string {
	switch {
	case r == '\n':
		return "\\n"
	case r < 32 || r == 127:
		return fmt.Sprintf("CTRL(%d)", r)
	default:
		return string(r)
	}
}

/*MaxInt max int*/
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
