package bitrev

func ReverseBranchless(input uint64) uint64 {
	var output uint64
	var remaining = input
	for i := 0; i < 64; i++ {
		bit := remaining & 1
		remaining = remaining >> 1
		shifted := output << 1
		output = shifted | bit
	}
	return output
}
