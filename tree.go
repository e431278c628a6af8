package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// NodeID addresses one node in a Tree's arena.
type NodeID int32

// NoNode is the NodeID of an absent child.
const NoNode = NodeID(-1)

// Tree is a Huffman encoding tree.  Its nodes live in a single arena owned by
// the Tree; each node is referenced by exactly one parent, except for the
// root.
//
// Leaves carry a Symbol and have no children.  Internal nodes carry
// InvalidSymbol and always have both a zero-branch and a one-branch child.
//
type Tree struct {
	nodes     []node
	root      NodeID
	numLeaves int
}

type node struct {
	weight uint64
	symbol Symbol
	zero   NodeID
	one    NodeID
}

// BuildTree constructs the Huffman tree for a non-empty FrequencyTable.
//
// One leaf per (Symbol, count) pair enters a priority queue, in ascending
// Symbol order.  The two lowest-weight entries A and B (in removal order)
// are then merged repeatedly into a new internal node whose zero-branch is A
// and whose one-branch is B, until a single entry, the root, remains.
//
// A table with exactly one entry produces a Tree consisting of one leaf.
//
func BuildTree(ft FrequencyTable) *Tree {
	assert.Assertf(len(ft) != 0, "BuildTree called with an empty FrequencyTable")

	symbols := ft.Symbols()
	t := &Tree{
		nodes:     make([]node, 0, 2*len(symbols)-1),
		root:      NoNode,
		numLeaves: len(symbols),
	}

	var q nodeQueue
	q.h.list = make([]queueEntry, 0, len(symbols))
	for _, symbol := range symbols {
		freq := ft[symbol]
		assert.Assertf(freq != 0, "symbol %v has a frequency of 0", symbol)
		id := t.add(node{weight: freq, symbol: symbol, zero: NoNode, one: NoNode})
		q.Push(id, freq)
	}

	for q.Len() > 1 {
		a, weightA := q.PopMin()
		b, weightB := q.PopMin()

		// Saturating addition
		sum := weightA + weightB
		if sum < weightA {
			sum = math.MaxUint64
		}

		id := t.add(node{weight: sum, symbol: InvalidSymbol, zero: a, one: b})
		q.Push(id, sum)
	}

	t.root, _ = q.PopMin()
	return t
}

func (t *Tree) add(n node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

// Release drops every node of the Tree.  Any further use of the Tree other
// than Release itself panics.
func (t *Tree) Release() {
	t.nodes = nil
	t.root = NoNode
	t.numLeaves = 0
}

// Root returns the NodeID of the root node.
func (t *Tree) Root() NodeID {
	assert.Assertf(t.root != NoNode, "use of released Tree")
	return t.root
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaf nodes, which equals the number of
// entries in the FrequencyTable the Tree was built from.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// IsLeaf returns true iff the node has no children.
func (t *Tree) IsLeaf(id NodeID) bool {
	n := &t.nodes[id]
	return n.zero == NoNode && n.one == NoNode
}

// Symbol returns the Symbol of a leaf, or InvalidSymbol for internal nodes.
func (t *Tree) Symbol(id NodeID) Symbol {
	return t.nodes[id].symbol
}

// Weight returns the weight of the node: the frequency of a leaf, or the sum
// of its children's weights for an internal node.
func (t *Tree) Weight(id NodeID) uint64 {
	return t.nodes[id].weight
}

// Child returns the zero-branch (bit == false) or one-branch (bit == true)
// child of the node, or NoNode if the node is a leaf.
func (t *Tree) Child(id NodeID, bit bool) NodeID {
	n := &t.nodes[id]
	if bit {
		return n.one
	}
	return n.zero
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.Len())
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.NumLeaves())
	if t.root != NoNode {
		fmt.Fprintf(&buf, "\tRoot() = #%d\n", t.root)
	}
	for id := NodeID(0); id < NodeID(len(t.nodes)); id++ {
		n := t.nodes[id]
		if t.IsLeaf(id) {
			fmt.Fprintf(&buf, "\t#%d = leaf %v weight %d\n", id, n.symbol, n.weight)
		} else {
			fmt.Fprintf(&buf, "\t#%d = node #%d #%d weight %d\n", id, n.zero, n.one, n.weight)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
