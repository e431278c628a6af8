package huffman

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// FrequencyTable maps each Symbol to its number of occurrences.
//
// A valid FrequencyTable always contains EndMarker with a count of exactly 1,
// holds no zero counts, and holds no Symbols other than bytes and EndMarker.
//
type FrequencyTable map[Symbol]uint64

// BuildFrequencyTable consumes r from its current position until io.EOF and
// counts the occurrences of each byte.  EndMarker is then added with a count
// of 1, so an empty input still produces a valid one-entry table.
//
func BuildFrequencyTable(r io.ByteReader) (FrequencyTable, error) {
	var counts [256]uint64
	for {
		ch, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input while counting frequencies: %w", err)
		}
		counts[ch]++
	}

	ft := make(FrequencyTable, 8)
	for index, count := range counts {
		if count != 0 {
			ft[Symbol(index)] = count
		}
	}
	ft[EndMarker] = 1
	return ft, nil
}

// Symbols returns the Symbols of this table in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(ft))
	for symbol := range ft {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Total returns the sum of all counts, EndMarker included.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft {
		sum += count
	}
	return sum
}

// Validate checks the FrequencyTable invariants.
func (ft FrequencyTable) Validate() error {
	if count, found := ft[EndMarker]; !found {
		return ErrMissingEndMarker
	} else if count != 1 {
		return fmt.Errorf("frequency of %v is %d, expected 1", EndMarker, count)
	}
	for _, symbol := range ft.Symbols() {
		if !symbol.IsValid() {
			return fmt.Errorf("frequency table holds invalid symbol %d", int32(symbol))
		}
		if ft[symbol] == 0 {
			return fmt.Errorf("frequency table holds zero count for %v", symbol)
		}
	}
	return nil
}

// Equal returns true iff both tables hold the same (Symbol, count) pairs.
func (ft FrequencyTable) Equal(other FrequencyTable) bool {
	if len(ft) != len(other) {
		return false
	}
	for symbol, count := range ft {
		if otherCount, found := other[symbol]; !found || otherCount != count {
			return false
		}
	}
	return true
}
