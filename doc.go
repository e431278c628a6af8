// Package huffman implements a lossless single-stream compressor built on
// plain (non-canonical) Huffman codes.
//
// A compressed stream consists of a textual header holding the byte
// frequency table, followed by the Huffman-coded body.  The decoder rebuilds
// the exact same tree from the header, so the tree construction below must
// stay deterministic: leaves enter the priority queue in ascending Symbol
// order, and entries of equal weight leave it in insertion order.
//
// The body is terminated by a synthetic end-of-stream symbol, EndMarker,
// which is always present in the frequency table with a count of 1.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
