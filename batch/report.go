package batch

import (
	"encoding/csv"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vseledkin/gopress/common"
	"github.com/vseledkin/gopress/huffman"
)

func writeReports(outDir string, result Result, enc huffman.Bits) error {
	folder := filepath.Join(outDir, result.Base)
	if e := os.MkdirAll(folder, 0755); e != nil {
		return errors.Wrapf(e, "cannot create %s", folder)
	}
	encodedPath := filepath.Join(folder, "encoded_"+result.Base+".txt")
	if e := ioutil.WriteFile(encodedPath, []byte(enc.String()), 0644); e != nil {
		return errors.Wrapf(e, "cannot write %s", encodedPath)
	}
	if e := writeTable(filepath.Join(folder, "freq_length_"+result.Base+".txt"), result.Stats); e != nil {
		return e
	}
	return writeSummary(filepath.Join(folder, "summary_"+result.Base+".txt"), result)
}

func writeTable(path string, s huffman.Stats) error {
	var sb strings.Builder
	width := len("Character")
	for _, row := range s.Symbols {
		width = common.MaxInt(width, len(common.EscapeSymbol(row.Symbol)))
	}
	fmt.Fprintf(&sb, "%-*s  %9s  %11s  %s\n", width, "Character", "Frequency", "Code Length", "Huffman Code")
	for _, row := range s.Symbols {
		fmt.Fprintf(&sb, "%-*s  %9d  %11d  %s\n", width, common.EscapeSymbol(row.Symbol), row.Count, row.CodeLen, row.Code)
	}
	return errors.Wrapf(ioutil.WriteFile(path, []byte(sb.String()), 0644), "cannot write %s", path)
}

func writeSummary(path string, result Result) error {
	s := result.Stats
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Huffman Compression Summary: %s ===\n\n", result.Base)
	fmt.Fprintf(&sb, "File size: %d characters\n", s.Chars)
	fmt.Fprintf(&sb, "Unique characters: %d\n", s.Alphabet)
	fmt.Fprintf(&sb, "Runtime: %v\n", result.Runtime)
	fmt.Fprintf(&sb, "Decoded correctly: %t\n\n", result.DecodedOK)
	fmt.Fprintf(&sb, "ASCII bits: %d\n", s.ASCIIBits)
	fmt.Fprintf(&sb, "Fixed bits: %d\n", s.FixedBits)
	fmt.Fprintf(&sb, "Huffman bits: %d\n\n", s.HuffmanBits)
	fmt.Fprintf(&sb, "Compression ratio (Huffman/ASCII): %.4f\n", s.RatioASCII)
	fmt.Fprintf(&sb, "Compression ratio (Huffman/Fixed): %.4f\n", s.RatioFixed)
	return errors.Wrapf(ioutil.WriteFile(path, []byte(sb.String()), 0644), "cannot write %s", path)
}

func writeCSV(path string, results []Result) error {
	if e := os.MkdirAll(filepath.Dir(path), 0755); e != nil {
		return errors.Wrapf(e, "cannot create %s", filepath.Dir(path))
	}
	f, e := os.Create(path)
	if e != nil {
		return errors.Wrapf(e, "cannot create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"file", "chars", "alphabet", "ascii_bits", "fixed_bits", "huffman_bits", "runtime_seconds", "ratio_ascii", "ratio_fixed", "decoded_ok"}
	if e = w.Write(header); e != nil {
		return e
	}
	for _, r := range results {
		s := r.Stats
		record := []string{
			r.Base,
			strconv.Itoa(s.Chars),
			strconv.Itoa(s.Alphabet),
			strconv.Itoa(s.ASCIIBits),
			strconv.Itoa(s.FixedBits),
			strconv.Itoa(s.HuffmanBits),
			strconv.FormatFloat(r.Runtime.Seconds(), 'f', 4, 64),
			strconv.FormatFloat(s.RatioASCII, 'f', 4, 64),
			strconv.FormatFloat(s.RatioFixed, 'f', 4, 64),
			strconv.FormatBool(r.DecodedOK),
		}
		if e = w.Write(record); e != nil {
			return e
		}
	}
	w.Flush()
	return w.Error()
}
