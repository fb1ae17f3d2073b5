package compress

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/vseledkin/gopress/huffman"
)

// container layout:
// magic "GPZ1" | alphabet uint32 | entries (rune int32, count uint64) | bitLen uint64 | payload
var magic = [4]byte{'G', 'P', 'Z', '1'}

var ErrInvalidFormat = errors.New("not a gopress container")

func writeHeader(w io.Writer, table huffman.FrequencyTable, bitLen uint64) error {
	if _, e := w.Write(magic[:]); e != nil {
		return e
	}
	if e := binary.Write(w, binary.LittleEndian, uint32(len(table))); e != nil {
		return e
	}
	// ascending symbol order, the same order the tree builder uses
	for _, r := range table.Symbols() {
		if e := binary.Write(w, binary.LittleEndian, int32(r)); e != nil {
			return e
		}
		if e := binary.Write(w, binary.LittleEndian, uint64(table[r])); e != nil {
			return e
		}
	}
	return binary.Write(w, binary.LittleEndian, bitLen)
}

func readHeader(r io.Reader) (huffman.FrequencyTable, uint64, error) {
	var m [4]byte
	if _, e := io.ReadFull(r, m[:]); e != nil {
		return nil, 0, errors.Wrap(e, "read magic")
	}
	if m != magic {
		return nil, 0, ErrInvalidFormat
	}
	var alphabet uint32
	if e := binary.Read(r, binary.LittleEndian, &alphabet); e != nil {
		return nil, 0, errors.Wrap(e, "read alphabet size")
	}
	table := make(huffman.FrequencyTable, alphabet)
	for i := uint32(0); i < alphabet; i++ {
		var symbol int32
		var count uint64
		if e := binary.Read(r, binary.LittleEndian, &symbol); e != nil {
			return nil, 0, errors.Wrap(e, "read symbol")
		}
		if e := binary.Read(r, binary.LittleEndian, &count); e != nil {
			return nil, 0, errors.Wrap(e, "read count")
		}
		table[rune(symbol)] = int(count)
	}
	var bitLen uint64
	if e := binary.Read(r, binary.LittleEndian, &bitLen); e != nil {
		return nil, 0, errors.Wrap(e, "read bit length")
	}
	return table, bitLen, nil
}
