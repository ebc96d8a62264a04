package bitrev

import "math/bits"

var byteTable [256]uint8

func init() {
	for i := range byteTable {
		byteTable[i] = uint8(ReverseNaive(uint64(i)) >> 56)
	}
}

// ReverseTable looks every byte up in a 256 entry table and moves it to the mirrored
// byte position.
func ReverseTable(input uint64) uint64 {
	return uint64(byteTable[input&0xff])<<56 |
		uint64(byteTable[(input>>8)&0xff])<<48 |
		uint64(byteTable[(input>>16)&0xff])<<40 |
		uint64(byteTable[(input>>24)&0xff])<<32 |
		uint64(byteTable[(input>>32)&0xff])<<24 |
		uint64(byteTable[(input>>40)&0xff])<<16 |
		uint64(byteTable[(input>>48)&0xff])<<8 |
		uint64(byteTable[input>>56])
}

func ReverseBuiltin(input uint64) uint64 {
	return bits.Reverse64(input)
}
