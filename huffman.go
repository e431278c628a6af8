package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Compress reads r from its current offset to io.EOF and writes the
// compressed stream to w.
//
// The input is read twice: once to count frequencies, and again after
// seeking back to the starting offset to encode the body.  Nothing is
// written to w before the first pass succeeds.
//
func Compress(w io.Writer, r io.ReadSeeker) error {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("failed to determine input offset: %w", err)
	}

	ft, err := BuildFrequencyTable(bufio.NewReader(r))
	if err != nil {
		return err
	}

	t := BuildTree(ft)
	defer t.Release()

	codes := t.Codes()

	bw := bitio.NewWriter(w)
	if err := WriteHeader(bw, ft); err != nil {
		return err
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind input: %w", err)
	}

	if err := Encode(bw, bufio.NewReader(r), codes); err != nil {
		return err
	}

	if err := bw.Close(); err != nil {
		return fmt.Errorf("failed to flush encoded bits: %w", err)
	}
	return nil
}

// Decompress reads a compressed stream from r and writes the original bytes
// to w.  On error, whatever was already written to w must be discarded.
func Decompress(w io.Writer, r io.Reader) error {
	br := bitio.NewReader(r)

	ft, err := ReadHeader(br)
	if err != nil {
		return err
	}

	t := BuildTree(ft)
	defer t.Release()

	out := bufio.NewWriter(w)
	if err := Decode(out, br, t); err != nil {
		return err
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write decoded output: %w", err)
	}
	return nil
}

// CompressBytes is a convenience wrapper around Compress for in-memory data.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Compress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes is a convenience wrapper around Decompress for in-memory
// data.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decompress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
