package huffman

import (
	mathbits "math/bits"
	"sort"

	"github.com/vseledkin/gopress/common"
)

/*
SymbolStat - one row of the frequency/code-length table.
*/
type SymbolStat struct {
	Symbol  rune
	Count   int
	CodeLen int
	Code    string
}

/*
Stats - plain numbers describing a code table applied to the text its
frequency table came from: totals, fixed-width baselines and the
per-symbol breakdown. Consumed by the reporting layer as data only.
*/
type Stats struct {
	Chars       int
	Alphabet    int
	HuffmanBits int
	ASCIIBits   int
	FixedBits   int
	RatioASCII  float64
	RatioFixed  float64
	Symbols     []SymbolStat
}

/*
FixedWidth - bits per symbol of the smallest fixed-width code covering
an alphabet of n symbols, never less than 1 bit.
*/
func FixedWidth(n int) int {
	if n <= 1 {
		return 1
	}
	return common.MaxInt(1, mathbits.Len(uint(n-1)))
}

/*
Measure computes Stats for a code table against a frequency table. The
per-symbol rows come out sorted by count descending, ties by symbol,
so the output is reproducible.
*/
func Measure(table FrequencyTable, codes CodeTable) Stats {
	var s Stats
	s.Alphabet = len(table)
	for r, count := range table {
		s.Chars += count
		code := codes[r]
		s.HuffmanBits += count * code.Len
		s.Symbols = append(s.Symbols, SymbolStat{
			Symbol:  r,
			Count:   count,
			CodeLen: code.Len,
			Code:    code.String(),
		})
	}
	sort.Slice(s.Symbols, func(i, j int) bool {
		if s.Symbols[i].Count == s.Symbols[j].Count {
			return s.Symbols[i].Symbol < s.Symbols[j].Symbol
		}
		return s.Symbols[i].Count > s.Symbols[j].Count
	})
	s.ASCIIBits = s.Chars * 8
	s.FixedBits = s.Chars * FixedWidth(s.Alphabet)
	if s.ASCIIBits > 0 {
		s.RatioASCII = float64(s.HuffmanBits) / float64(s.ASCIIBits)
	}
	if s.FixedBits > 0 {
		s.RatioFixed = float64(s.HuffmanBits) / float64(s.FixedBits)
	}
	return s
}
