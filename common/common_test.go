package common

import "testing"

func TestEscapeSymbol(t *testing.T) {
	if got := EscapeSymbol('\n'); got != "\\n" {
		t.Errorf("newline escaped to %q", got)
	}
	if got := EscapeSymbol('\t'); got != "CTRL(9)" {
		t.Errorf("tab escaped to %q", got)
	}
	if got := EscapeSymbol(127); got != "CTRL(127)" {
		t.Errorf("DEL escaped to %q", got)
	}
	if got := EscapeSymbol('ж'); got != "ж" {
		t.Errorf("ж escaped to %q", got)
	}
}

func TestMaxInt(t *testing.T) {
	if MaxInt(2, 3) != 3 || MaxInt(3, 2) != 3 {
		t.Error("MaxInt")
	}
}
