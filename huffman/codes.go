package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeLen bounds the length of a single code; Code.Bits is a uint64.
// Hitting it takes a Fibonacci-like frequency profile over 65+ symbols.
const MaxCodeLen = 64

/*
Code - one prefix code word. The most significant of the low Len bits
is the first edge on the path from the root: 0 descends left, 1 right.
*/
type Code struct {
	Bits uint64
	Len  int
}

/*
String renders the code as a "0"/"1" string, first bit first.
*/
func (c Code) String() string {
	if c.Len == 0 {
		return ""
	}
	return fmt.Sprintf("%0"+strconv.Itoa(c.Len)+"b", c.Bits)
}

/*
CodeTable - symbol to code word mapping. Codes are prefix-free by
construction: they are root-to-leaf paths of one tree.
*/
type CodeTable map[rune]Code

/*
BuildCodeTable walks the tree depth first accumulating the path as a
code word, 0 for a left edge and 1 for a right edge. A lone leaf as
root gets the one-bit code "0" so that it remains decodable. A nil
root yields an empty table.
*/
func BuildCodeTable(root *Node) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}
	if root.Leaf() {
		codes[root.Symbol] = Code{Bits: 0, Len: 1}
		return codes
	}
	var walk func(n *Node, bits uint64, length int)
	walk = func(n *Node, bits uint64, length int) {
		if n.Leaf() {
			codes[n.Symbol] = Code{Bits: bits, Len: length}
			return
		}
		assert.Assertf(n.Left != nil && n.Right != nil, "internal node of weight %d lacks a child", n.Weight)
		assert.Assertf(length < MaxCodeLen, "code length exceeds %d bits", MaxCodeLen)
		walk(n.Left, bits<<1, length+1)
		walk(n.Right, bits<<1|1, length+1)
	}
	walk(root, 0, 0)
	return codes
}
