package bitrev

// byteShuffle is the permutation applied to the low lane of a 16 byte vector. Entry i
// names the source byte written to byte i. Indexes with the high bit set zero the
// destination byte, which clears the unused upper lane.
var byteShuffle = [16]byte{
	7, 6, 5, 4, 3, 2, 1, 0,
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
}

// ReverseLog2Shuffle reverses the bits inside every byte and then reorders the bytes
// with a vector byte shuffle, returning the bottom 64 bit lane. Without shuffle
// support it falls back to a scalar byte swap.
func ReverseLog2Shuffle(input uint64) uint64 {
	return shuffleBytes(reverseWithinBytes(input))
}

// HasVectorShuffle reports whether ReverseLog2Shuffle runs on vector instructions.
func HasVectorShuffle() bool {
	return hasShuffle
}
