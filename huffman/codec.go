package huffman

import (
	"bytes"
	"strings"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

/*
Bits - a packed bit stream, the concatenation of code words in input
order. Len counts the valid bits; the final byte of Data is
zero-padded. A Bits value is only meaningful together with the tree or
table that produced it.
*/
type Bits struct {
	Data []byte
	Len  int
}

/*
String renders the stream as "0"/"1" text, first bit first, padding
excluded.
*/
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.Len)
	for i := 0; i < b.Len; i++ {
		if b.Data[i>>3]&(1<<uint(7-i&7)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

/*
Encode appends the code word of every rune of text to a packed bit
stream. Returns *UnknownSymbolError if a rune has no entry in codes;
nothing is skipped silently. Empty text encodes to an empty stream.
*/
func Encode(text string, codes CodeTable) (Bits, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	var n int
	for _, r := range text {
		code, ok := codes[r]
		if !ok {
			return Bits{}, &UnknownSymbolError{Symbol: r}
		}
		if e := w.WriteBits(code.Bits, uint8(code.Len)); e != nil {
			return Bits{}, errors.Wrap(e, "write code word")
		}
		n += code.Len
	}
	if e := w.Close(); e != nil {
		return Bits{}, errors.Wrap(e, "flush bit stream")
	}
	return Bits{Data: buf.Bytes(), Len: n}, nil
}

/*
Decode walks the tree bit by bit: 0 descends left, 1 right, a leaf
emits its symbol and resets the walk to the root. Returns ErrTruncated
when the stream ends between code words. An empty stream decodes to ""
whatever the tree.
*/
func Decode(enc Bits, root *Node) (string, error) {
	if enc.Len == 0 {
		return "", nil
	}
	if root == nil {
		return "", ErrTruncated
	}
	r := bitio.NewReader(bytes.NewReader(enc.Data))
	var sb strings.Builder
	if root.Leaf() {
		// degenerate one-symbol tree, every bit is the code "0"
		for i := 0; i < enc.Len; i++ {
			if _, e := r.ReadBool(); e != nil {
				return "", errors.Wrap(e, "read bit")
			}
			sb.WriteRune(root.Symbol)
		}
		return sb.String(), nil
	}
	node := root
	for i := 0; i < enc.Len; i++ {
		bit, e := r.ReadBool()
		if e != nil {
			return "", errors.Wrap(e, "read bit")
		}
		if bit {
			node = node.Right
		} else {
			node = node.Left
		}
		if node.Leaf() {
			sb.WriteRune(node.Symbol)
			node = root
		}
	}
	if node != root {
		return "", ErrTruncated
	}
	return sb.String(), nil
}

/*
Codec - frequency table, tree and code table built from one text,
ready to encode that text or any text over the same alphabet. Safe for
concurrent readers, nothing is mutated after NewCodec.
*/
type Codec struct {
	Freq  FrequencyTable
	Root  *Node
	Codes CodeTable
}

/*
NewCodec builds the whole pipeline for text: frequencies, tree, codes.
*/
func NewCodec(text string) *Codec {
	freq := BuildFrequencyTable(text)
	root := BuildTree(freq)
	return &Codec{Freq: freq, Root: root, Codes: BuildCodeTable(root)}
}

func (c *Codec) Encode(text string) (Bits, error) {
	return Encode(text, c.Codes)
}

func (c *Codec) Decode(enc Bits) (string, error) {
	return Decode(enc, c.Root)
}

/*
Stats measures the codec against its own frequency table.
*/
func (c *Codec) Stats() Stats {
	return Measure(c.Freq, c.Codes)
}
