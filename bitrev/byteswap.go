package bitrev

import "math/bits"

// ReverseLog2ByteSwap reverses the bits inside every byte and then the byte order.
func ReverseLog2ByteSwap(input uint64) uint64 {
	return bits.ReverseBytes64(reverseWithinBytes(input))
}
