package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// headerSeparator terminates the entry count and every frequency.
const headerSeparator = ' '

// WriteHeader serializes the FrequencyTable to w.
//
// The layout is the decimal entry count followed by a space, then one entry
// per byte Symbol in ascending order: the raw byte, its decimal frequency,
// and a space.  EndMarker is not written; its count is always 1.
//
// The table is validated before anything is written.
//
func WriteHeader(w io.Writer, ft FrequencyTable) error {
	if err := ft.Validate(); err != nil {
		return fmt.Errorf("refusing to write header: %w", err)
	}

	symbols := ft.Symbols()
	numEntries := len(symbols) - 1

	var buf bytes.Buffer
	buf.Grow(4 + numEntries*8)
	buf.WriteString(strconv.Itoa(numEntries))
	buf.WriteByte(headerSeparator)
	for _, symbol := range symbols {
		if symbol == EndMarker {
			continue
		}
		buf.WriteByte(byte(symbol))
		buf.WriteString(strconv.FormatUint(ft[symbol], 10))
		buf.WriteByte(headerSeparator)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// ReadHeader parses a header written by WriteHeader and returns the
// FrequencyTable it describes, with EndMarker re-inserted at a count of 1.
//
// Exactly the header's bytes are consumed from r, so the body may be read
// from r afterward.  Any header that WriteHeader could not have produced is
// rejected with an error wrapping ErrMalformedHeader.
//
func ReadHeader(r io.ByteReader) (FrequencyTable, error) {
	numEntries, err := readHeaderNumber(r, "entry count")
	if err != nil {
		return nil, err
	}
	if numEntries > 256 {
		return nil, malformedf("entry count %d exceeds 256", numEntries)
	}

	ft := make(FrequencyTable, numEntries+1)
	prev := InvalidSymbol
	for index := uint64(0); index < numEntries; index++ {
		ch, err := r.ReadByte()
		if err != nil {
			return nil, headerReadError(err, "entry %d of %d: missing byte", index, numEntries)
		}

		symbol := Symbol(ch)
		if _, dupe := ft[symbol]; dupe {
			return nil, malformedf("entry %d of %d: duplicate entry for %v", index, numEntries, symbol)
		}
		if symbol < prev {
			return nil, malformedf("entry %d of %d: %v follows %v", index, numEntries, symbol, prev)
		}
		prev = symbol

		freq, err := readHeaderNumber(r, fmt.Sprintf("frequency of %v", symbol))
		if err != nil {
			return nil, err
		}
		if freq == 0 {
			return nil, malformedf("entry %d of %d: zero frequency for %v", index, numEntries, symbol)
		}

		ft[symbol] = freq
	}

	ft[EndMarker] = 1
	return ft, nil
}

// readHeaderNumber reads one or more decimal digits followed by
// headerSeparator.  Leading zeros are rejected.
func readHeaderNumber(r io.ByteReader, what string) (uint64, error) {
	var value uint64
	var numDigits int
	for {
		ch, err := r.ReadByte()
		if err != nil {
			return 0, headerReadError(err, "%s: unexpected end of header", what)
		}

		if ch == headerSeparator && numDigits != 0 {
			return value, nil
		}
		if ch < '0' || ch > '9' {
			return 0, malformedf("%s: unexpected byte %q", what, ch)
		}

		if numDigits == 1 && value == 0 {
			return 0, malformedf("%s: leading zero", what)
		}

		digit := uint64(ch - '0')
		if value > (math.MaxUint64-digit)/10 {
			return 0, malformedf("%s: value overflows 64 bits", what)
		}
		value = value*10 + digit
		numDigits++
	}
}

func headerReadError(err error, format string, args ...interface{}) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return malformedf(format, args...)
	}
	return fmt.Errorf("failed to read header: %s: %w", fmt.Sprintf(format, args...), err)
}
