package huffman

import (
	"sort"
)

/*
FrequencyTable - symbol occurrence counts, one entry per distinct rune
of the input. The sum of counts equals the rune length of the input.
*/
type FrequencyTable map[rune]int

/*
BuildFrequencyTable counts rune occurrences in text. An empty text
yields an empty table.
*/
func BuildFrequencyTable(text string) FrequencyTable {
	table := make(FrequencyTable)
	for _, r := range text {
		table[r]++
	}
	return table
}

/*
Total - sum of all counts, equals the rune length of the source text.
*/
func (t FrequencyTable) Total() int {
	var total int
	for _, count := range t {
		total += count
	}
	return total
}

/*
Symbols - the alphabet in ascending rune order.
*/
func (t FrequencyTable) Symbols() []rune {
	symbols := make([]rune, 0, len(t))
	for r := range t {
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}
