//go:build !amd64 || purego
// +build !amd64 purego

package bitrev

import "math/bits"

const hasShuffle = false

func shuffleBytes(x uint64) uint64 {
	return bits.ReverseBytes64(x)
}
