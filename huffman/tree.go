package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

/*
Node - huffman tree node, a leaf holding a symbol or an internal node
holding the combined weight of its two children. Immutable once built.
*/
type Node struct {
	Symbol rune
	Weight int
	Left   *Node
	Right  *Node
	seq    int
}

/*
Leaf reports whether n holds a symbol rather than children.
*/
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

/*
TreeHeap - min-heap of tree nodes ordered by weight; equal weights are
ordered by insertion sequence so repeated builds agree bit for bit.
*/
type TreeHeap []*Node

func (th TreeHeap) Len() int { return len(th) }
func (th TreeHeap) Less(i, j int) bool {
	if th[i].Weight == th[j].Weight {
		return th[i].seq < th[j].seq
	}
	return th[i].Weight < th[j].Weight
}

func (th TreeHeap) Swap(i, j int) { th[i], th[j] = th[j], th[i] }

/*
Push heap interface implementation
*/
func (th *TreeHeap) Push(e interface{}) {
	*th = append(*th, e.(*Node))
}

/*
Pop heap interface implementation
*/
func (th *TreeHeap) Pop() (popped interface{}) {
	popped = (*th)[len(*th)-1]
	*th = (*th)[:len(*th)-1]
	return
}

/*
BuildTree builds the huffman tree by repeatedly merging the two
lightest nodes. Leaves enter the heap in ascending symbol order and
every node carries an insertion sequence, so the tree is a pure
function of the frequency table. Returns nil for an empty table; a
single-entry table yields a lone leaf as root.
*/
func BuildTree(table FrequencyTable) *Node {
	if len(table) == 0 {
		return nil
	}
	th := make(TreeHeap, 0, len(table))
	var seq int
	for _, r := range table.Symbols() {
		count := table[r]
		assert.Assertf(count > 0, "frequency of %q is %d, want > 0", r, count)
		th = append(th, &Node{Symbol: r, Weight: count, seq: seq})
		seq++
	}
	heap.Init(&th)
	for th.Len() > 1 {
		// two subtrees with least weight
		a := heap.Pop(&th).(*Node)
		b := heap.Pop(&th).(*Node)
		// merge and re-insert into queue
		heap.Push(&th, &Node{Weight: a.Weight + b.Weight, Left: a, Right: b, seq: seq})
		seq++
	}
	return heap.Pop(&th).(*Node)
}
