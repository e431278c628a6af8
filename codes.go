package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol of a Tree to its Code.
type CodeTable map[Symbol]Code

// Codes derives the CodeTable of this Tree.  Taking the zero-branch appends
// a 0 bit and taking the one-branch appends a 1 bit.
//
// If the root is itself a leaf, its Symbol is assigned the empty Code.  Such
// a Code cannot be framed in a bitstream; see Decode.
//
func (t *Tree) Codes() CodeTable {
	codes := make(CodeTable, t.NumLeaves())

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the zero child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are pushed; leaves are recorded on the spot.

	type stackItem struct {
		id   NodeID
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2ceil(t.NumLeaves()))

	processChild := func(id NodeID, code Code) {
		if !t.IsLeaf(id) {
			stack = append(stack, stackItem{id: id, code: code})
			return
		}
		symbol := t.Symbol(id)
		_, dupe := codes[symbol]
		assert.Assertf(!dupe, "symbol %v appears in more than one leaf", symbol)
		codes[symbol] = code
	}

	processChild(t.Root(), Code{})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.Child(top.id, false), top.code.Append(false))
		case 1:
			processChild(t.Child(top.id, true), top.code.Append(true))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
	return codes
}

// WeightedLength returns the sum of (frequency × code length) over every
// Symbol in ft.  For a CodeTable derived from a Tree built from ft, this is
// exactly the number of bits in the encoded body.
//
func (codes CodeTable) WeightedLength(ft FrequencyTable) uint64 {
	var sum uint64
	for symbol, count := range ft {
		sum += count * uint64(codes[symbol].Size)
	}
	return sum
}

// MinSize is the bit length of the shortest code.
func (codes CodeTable) MinSize() int {
	var minSize int
	first := true
	for _, hc := range codes {
		if first || hc.Size < minSize {
			minSize = hc.Size
			first = false
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code.
func (codes CodeTable) MaxSize() int {
	var maxSize int
	for _, hc := range codes {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer, in ascending Symbol order.
func (codes CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", codes.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", codes.MaxSize())
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if hc, found := codes[symbol]; found {
			fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
