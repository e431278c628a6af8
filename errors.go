package huffman

import (
	"errors"
	"fmt"
	"io"
)

// ErrMalformedHeader is returned by ReadHeader (and thus Decompress) when the
// header of a compressed stream cannot be parsed.
var ErrMalformedHeader = errors.New("huffman: malformed header")

// ErrMissingEndMarker is returned when a FrequencyTable lacks EndMarker.
var ErrMissingEndMarker = errors.New("huffman: frequency table has no end marker")

// ErrTruncatedBody is returned by Decode when the bit source runs dry before
// the end marker's code has been read.
var ErrTruncatedBody = fmt.Errorf("huffman: body ended before end marker: %w", io.ErrUnexpectedEOF)

func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedHeader, fmt.Sprintf(format, args...))
}
