//go:build amd64 && !purego
// +build amd64,!purego

package bitrev

import (
	"golang.org/x/sys/cpu"
	"math/bits"
)

var hasShuffle = cpu.X86.HasSSSE3

func shuffleBytes(x uint64) uint64 {
	if hasShuffle {
		return shuffleBytesSSSE3(x, &byteShuffle)
	}
	return bits.ReverseBytes64(x)
}

// shuffleBytesSSSE3 loads x into the low lane of an XMM register and permutes it with
// PSHUFB using index.
//
//go:noescape
func shuffleBytesSSSE3(x uint64, index *[16]byte) uint64
