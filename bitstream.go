package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitWriter is a bit-oriented sink.  *bitio.Writer satisfies it.
type BitWriter interface {
	WriteBool(bit bool) error
}

// BitReader is a bit-oriented source.  *bitio.Reader satisfies it.
type BitReader interface {
	ReadBool() (bool, error)
}

var (
	_ BitWriter = (*bitio.Writer)(nil)
	_ BitReader = (*bitio.Reader)(nil)
)

// Encode reads r until io.EOF and writes the Code of every byte to w,
// followed by the Code of EndMarker.
//
// Every byte read from r must have a Code, as is the case when codes was
// derived from a FrequencyTable built over the same input.  A missing Code is
// a broken invariant and causes a panic, not an error return.
//
func Encode(w BitWriter, r io.ByteReader, codes CodeTable) error {
	endCode, found := codes[EndMarker]
	assert.Assertf(found, "CodeTable has no code for %v", EndMarker)
	assert.Assertf(endCode.Size != 0 || len(codes) == 1, "CodeTable has a zero-length code for %v", EndMarker)

	for {
		ch, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input while encoding: %w", err)
		}

		symbol := Symbol(ch)
		hc, found := codes[symbol]
		assert.Assertf(found && hc.Size != 0, "CodeTable has no code for %v", symbol)
		if err := writeCode(w, hc); err != nil {
			return err
		}
	}

	return writeCode(w, endCode)
}

func writeCode(w BitWriter, hc Code) error {
	for index := 0; index < hc.Size; index++ {
		if err := w.WriteBool(hc.Bit(index)); err != nil {
			return fmt.Errorf("failed to write encoded bits: %w", err)
		}
	}
	return nil
}

// Decode reads bits from r, walking t from its root, and writes each decoded
// byte to w until it reaches EndMarker.
//
// If the root of t is itself the EndMarker leaf, the stream is empty: Decode
// returns immediately without reading any bits.  If r runs out of bits
// before EndMarker is reached, Decode returns ErrTruncatedBody.
//
func Decode(w io.ByteWriter, r BitReader, t *Tree) error {
	root := t.Root()
	if t.IsLeaf(root) {
		symbol := t.Symbol(root)
		assert.Assertf(symbol == EndMarker, "single-leaf Tree holds %v instead of %v", symbol, EndMarker)
		return nil
	}

	cursor := root
	for {
		bit, err := r.ReadBool()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncatedBody
		}
		if err != nil {
			return fmt.Errorf("failed to read encoded bits: %w", err)
		}

		cursor = t.Child(cursor, bit)
		if !t.IsLeaf(cursor) {
			continue
		}

		symbol := t.Symbol(cursor)
		if symbol == EndMarker {
			return nil
		}
		if err := w.WriteByte(byte(symbol)); err != nil {
			return fmt.Errorf("failed to write decoded output: %w", err)
		}
		cursor = root
	}
}
