package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits: the path from the root of a Tree to
// one of its leaves.  The zero value is the empty Code.
type Code struct {
	// Size holds the number of valid bits.
	Size int

	// words holds the actual values of the bits.  The least significant
	// bit of words[0] is the first bit.
	words []uint64
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	var hc Code
	for index := 0; index < len(str); index++ {
		switch str[index] {
		case '0':
			hc = hc.Append(false)
		case '1':
			hc = hc.Append(true)
		default:
			return Code{}, fmt.Errorf("invalid character %q at index %d in Huffman code %q", str[index], index, str)
		}
	}
	return hc, nil
}

// MustParseCode is like ParseCode, but panics on error.
func MustParseCode(str string) Code {
	hc, err := ParseCode(str)
	if err != nil {
		panic(err)
	}
	return hc
}

// Bit returns the bit at the given index.  Index 0 is the first bit.
func (hc Code) Bit(index int) bool {
	if index < 0 || index >= hc.Size {
		panic(fmt.Errorf("bit index %d out of range [0, %d)", index, hc.Size))
	}
	return (hc.words[index>>6]>>(uint(index)&63))&1 != 0
}

// Append returns a new Code consisting of this Code followed by one more
// bit.  The receiver is not modified, so sibling paths may safely share a
// parent Code.
func (hc Code) Append(bit bool) Code {
	numWords := (hc.Size >> 6) + 1
	words := make([]uint64, numWords)
	copy(words, hc.words)
	if bit {
		words[hc.Size>>6] |= uint64(1) << (uint(hc.Size) & 63)
	}
	return Code{Size: hc.Size + 1, words: words}
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code
// has the empty Code as a prefix, and every Code is a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for index := 0; index < prefix.Size; index++ {
		if hc.Bit(index) != prefix.Bit(index) {
			return false
		}
	}
	return true
}

// Equal returns true iff both Codes hold the same bits.
func (hc Code) Equal(other Code) bool {
	return hc.Size == other.Size && hc.HasPrefix(other)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	for index := 0; index < hc.Size; index++ {
		if hc.Bit(index) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code{}
