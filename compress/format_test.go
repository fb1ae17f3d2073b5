package compress

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/vseledkin/gopress/huffman"
)

func TestHeaderRoundTrip(t *testing.T) {
	table := huffman.FrequencyTable{'a': 5, 'b': 2, 'я': 7, '\n': 1}
	var buf bytes.Buffer
	if e := writeHeader(&buf, table, 42); e != nil {
		t.Fatal(e)
	}
	got, bitLen, e := readHeader(&buf)
	if e != nil {
		t.Fatal(e)
	}
	if bitLen != 42 {
		t.Fatalf("bit length %d, want 42", bitLen)
	}
	if len(got) != len(table) {
		t.Fatalf("table size %d, want %d", len(got), len(table))
	}
	for r, count := range table {
		if got[r] != count {
			t.Errorf("count of %q = %d, want %d", r, got[r], count)
		}
	}
}

func TestBadMagic(t *testing.T) {
	if _, _, e := readHeader(bytes.NewReader([]byte("nope----------"))); e == nil {
		t.Fatal("garbage header accepted")
	}
}

func TestCompressDecompressFile(t *testing.T) {
	dir := t.TempDir()
	text := "to be or not to be, that is the question\nвот в чём вопрос\n"
	in := filepath.Join(dir, "in.txt")
	packed := filepath.Join(dir, "in.gpz")
	restored := filepath.Join(dir, "restored.txt")
	if e := ioutil.WriteFile(in, []byte(text), 0644); e != nil {
		t.Fatal(e)
	}
	if e := Compress(in, packed); e != nil {
		t.Fatal(e)
	}
	if e := Decompress(packed, restored); e != nil {
		t.Fatal(e)
	}
	out, e := ioutil.ReadFile(restored)
	if e != nil {
		t.Fatal(e)
	}
	if string(out) != text {
		t.Fatalf("round trip %q, want %q", out, text)
	}
}

func TestCompressEmptyFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.txt")
	packed := filepath.Join(dir, "empty.gpz")
	restored := filepath.Join(dir, "restored.txt")
	if e := ioutil.WriteFile(in, nil, 0644); e != nil {
		t.Fatal(e)
	}
	if e := Compress(in, packed); e != nil {
		t.Fatal(e)
	}
	if e := Decompress(packed, restored); e != nil {
		t.Fatal(e)
	}
	out, e := ioutil.ReadFile(restored)
	if e != nil {
		t.Fatal(e)
	}
	if len(out) != 0 {
		t.Fatalf("restored empty file has %d bytes", len(out))
	}
}
