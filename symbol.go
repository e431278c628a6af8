package huffman

import (
	"strconv"
)

// Symbol represents a symbol in the compressor's alphabet: a literal byte
// value (0 through 255) or EndMarker.
type Symbol int32

const (
	// EndMarker is the synthetic symbol that terminates every encoded body.
	// It never occurs in literal input.
	EndMarker = Symbol(256)

	// NumSymbols is the size of the alphabet, EndMarker included.
	NumSymbols = 257

	// MaxSymbol is the maximum valid symbol.
	MaxSymbol = EndMarker
)

// InvalidSymbol is carried by internal tree nodes, and is returned by some
// functions to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsByte returns true iff this Symbol stands for a literal byte.
func (s Symbol) IsByte() bool {
	return s >= 0 && s <= 255
}

// IsValid returns true iff this Symbol is a byte or EndMarker.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns a human-readable name for the Symbol.
func (s Symbol) String() string {
	switch {
	case s == EndMarker:
		return "EOF"
	case s == InvalidSymbol:
		return "-"
	case s >= 0x20 && s < 0x7f:
		return strconv.QuoteRune(rune(s))
	case s.IsByte():
		return "0x" + strconv.FormatUint(uint64(s)|0x100, 16)[1:]
	default:
		return "Symbol(" + strconv.Itoa(int(s)) + ")"
	}
}
