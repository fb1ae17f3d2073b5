package batch

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "summaries")
	sample := filepath.Join(dir, "sample.txt")
	empty := filepath.Join(dir, "empty.txt")
	if e := ioutil.WriteFile(sample, []byte("abracadabra\nabracadabra\n"), 0644); e != nil {
		t.Fatal(e)
	}
	if e := ioutil.WriteFile(empty, []byte("  \n"), 0644); e != nil {
		t.Fatal(e)
	}

	results, e := Run(&Config{Files: []string{sample, empty, filepath.Join(dir, "missing.txt")}, Output: out})
	if e != nil {
		t.Fatal(e)
	}
	if len(results) != 1 {
		t.Fatalf("%d results, want 1 (empty and missing files skipped)", len(results))
	}
	r := results[0]
	if !r.DecodedOK {
		t.Error("round trip failed")
	}
	if r.Stats.Chars != 24 {
		t.Errorf("chars %d, want 24", r.Stats.Chars)
	}

	for _, p := range []string{
		filepath.Join(out, "sample", "encoded_sample.txt"),
		filepath.Join(out, "sample", "freq_length_sample.txt"),
		filepath.Join(out, "sample", "summary_sample.txt"),
		filepath.Join(out, "summary_data.csv"),
	} {
		if _, e := os.Stat(p); e != nil {
			t.Errorf("missing report %s: %v", p, e)
		}
	}

	encoded, e := ioutil.ReadFile(filepath.Join(out, "sample", "encoded_sample.txt"))
	if e != nil {
		t.Fatal(e)
	}
	if len(encoded) != r.Stats.HuffmanBits {
		t.Errorf("encoded text has %d bits, stats say %d", len(encoded), r.Stats.HuffmanBits)
	}
	if strings.Trim(string(encoded), "01") != "" {
		t.Error("encoded text contains characters other than 0 and 1")
	}

	csvData, e := ioutil.ReadFile(filepath.Join(out, "summary_data.csv"))
	if e != nil {
		t.Fatal(e)
	}
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	if len(lines) != 2 {
		t.Fatalf("%d csv lines, want header plus one row", len(lines))
	}
	if !strings.HasPrefix(lines[1], "sample,24,") {
		t.Errorf("csv row %q, want it to start with sample,24,", lines[1])
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	body := "files:\n  - a.txt\n  - b.txt\noutput: reports\n"
	if e := ioutil.WriteFile(path, []byte(body), 0644); e != nil {
		t.Fatal(e)
	}
	cfg, e := LoadConfig(path)
	if e != nil {
		t.Fatal(e)
	}
	if len(cfg.Files) != 2 || cfg.Files[0] != "a.txt" || cfg.Output != "reports" {
		t.Fatalf("config %+v", cfg)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	if e := os.MkdirAll(filepath.Join(dir, "nested"), 0755); e != nil {
		t.Fatal(e)
	}
	for _, p := range []string{"a.txt", "b.log", filepath.Join("nested", "c.txt")} {
		if e := ioutil.WriteFile(filepath.Join(dir, p), []byte("x"), 0644); e != nil {
			t.Fatal(e)
		}
	}
	files, e := Scan(dir, "txt")
	if e != nil {
		t.Fatal(e)
	}
	if len(files) != 2 {
		t.Fatalf("found %d files, want 2: %v", len(files), files)
	}
}
