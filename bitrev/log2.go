package bitrev

const (
	oddBits     = 0xaaaaaaaaaaaaaaaa // 10101010
	evenBits    = 0x5555555555555555 // 01010101
	highPairs   = 0xcccccccccccccccc // 11001100
	lowPairs    = 0x3333333333333333 // 00110011
	highNibbles = 0xf0f0f0f0f0f0f0f0
	lowNibbles  = 0x0f0f0f0f0f0f0f0f
	highBytes   = 0xff00ff00ff00ff00
	lowBytes    = 0x00ff00ff00ff00ff
	highShorts  = 0xffff0000ffff0000
	lowShorts   = 0x0000ffff0000ffff
)

// ReverseLog2 swaps adjacent blocks of 1, 2, 4, 8, 16 and 32 bits in that order.
// Masking, shifting and recombining stay in separate statements.
func ReverseLog2(input uint64) uint64 {
	var left, right uint64
	var result = input

	left = result & oddBits
	right = result & evenBits
	left = left >> 1
	right = right << 1
	result = left | right

	left = result & highPairs
	right = result & lowPairs
	left = left >> 2
	right = right << 2
	result = left | right

	left = result & highNibbles
	right = result & lowNibbles
	left = left >> 4
	right = right << 4
	result = left | right

	left = result & highBytes
	right = result & lowBytes
	left = left >> 8
	right = right << 8
	result = left | right

	left = result & highShorts
	right = result & lowShorts
	left = left >> 16
	right = right << 16
	result = left | right

	// the shifts clear the other half on their own
	left = result >> 32
	right = result << 32
	result = left | right

	return result
}

// ReverseLog2Xor is ReverseLog2 recombining with XOR. Both operands of every stage
// are masked to disjoint bit positions, so XOR and OR agree.
func ReverseLog2Xor(input uint64) uint64 {
	var left, right uint64
	var result = input

	left = result & oddBits
	right = result & evenBits
	left = left >> 1
	right = right << 1
	result = left ^ right

	left = result & highPairs
	right = result & lowPairs
	left = left >> 2
	right = right << 2
	result = left ^ right

	left = result & highNibbles
	right = result & lowNibbles
	left = left >> 4
	right = right << 4
	result = left ^ right

	left = result & highBytes
	right = result & lowBytes
	left = left >> 8
	right = right << 8
	result = left ^ right

	left = result & highShorts
	right = result & lowShorts
	left = left >> 16
	right = right << 16
	result = left ^ right

	left = result >> 32
	right = result << 32
	result = left ^ right

	return result
}

// ReverseLog2Compact fuses mask and shift into one expression per operand.
func ReverseLog2Compact(input uint64) uint64 {
	var left, right uint64
	var result = input

	left = (result & oddBits) >> 1
	right = (result & evenBits) << 1
	result = left | right

	left = (result & highPairs) >> 2
	right = (result & lowPairs) << 2
	result = left | right

	left = (result & highNibbles) >> 4
	right = (result & lowNibbles) << 4
	result = left | right

	left = (result & highBytes) >> 8
	right = (result & lowBytes) << 8
	result = left | right

	left = (result & highShorts) >> 16
	right = (result & lowShorts) << 16
	result = left | right

	left = result >> 32
	right = result << 32
	result = left | right

	return result
}

// reverseWithinBytes runs the first three swap stages, leaving every byte bit-reversed
// in place.
func reverseWithinBytes(input uint64) uint64 {
	var left, right uint64
	var result = input

	left = result & oddBits
	right = result & evenBits
	left = left >> 1
	right = right << 1
	result = left ^ right

	left = result & highPairs
	right = result & lowPairs
	left = left >> 2
	right = right << 2
	result = left ^ right

	left = result & highNibbles
	right = result & lowNibbles
	left = left >> 4
	right = right << 4
	result = left ^ right

	return result
}
