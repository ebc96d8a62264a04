package bitrev

// ReverseNaive walks the input from bit 0 to bit 63 and pushes each set bit into the
// accumulator from the right. It branches once per bit and serves as the reference
// every other strategy is checked against.
func ReverseNaive(input uint64) uint64 {
	var output uint64
	for i := 0; i < 64; i++ {
		var mask uint64 = 1 << i
		set := input&mask != 0
		output = output << 1
		if set {
			output = output | 1
		}
	}
	return output
}
