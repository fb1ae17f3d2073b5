package freq

import (
	"bytes"
	"strings"
	"testing"
)

func TestFreq(t *testing.T) {
	var out bytes.Buffer
	if e := Freq(strings.NewReader("aab"), &out); e != nil {
		t.Fatal(e)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("%d rows, want 2:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "a\t2\t1\t") {
		t.Errorf("first row %q, want a with count 2 and a 1 bit code", lines[0])
	}
	if !strings.HasPrefix(lines[1], "b\t1\t1\t") {
		t.Errorf("second row %q, want b with count 1 and a 1 bit code", lines[1])
	}
}

func TestFreqEmpty(t *testing.T) {
	var out bytes.Buffer
	if e := Freq(strings.NewReader(""), &out); e != nil {
		t.Fatal(e)
	}
	if out.Len() != 0 {
		t.Fatalf("output %q for empty input", out.String())
	}
}
