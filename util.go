package huffman

import (
	mathbits "math/bits"
)

// log2ceil returns ceil(log2(n)), but at least 1.  A tree with n leaves is
// at least this deep, which makes it a good capacity hint for tree walks.
func log2ceil(n int) int {
	if n <= 2 {
		return 1
	}
	return mathbits.Len(uint(n - 1))
}
