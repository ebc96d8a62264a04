package utils

import (
	"crypto/rand"
	"encoding/binary"
)

// RandomSeed draws a non-zero seed from the system entropy source.
func RandomSeed() uint64 {
	var data [8]byte
	for {
		if _, err := rand.Read(data[:]); err != nil {
			panic(err)
		}
		if seed := binary.BigEndian.Uint64(data[:]); seed != 0 {
			return seed
		}
	}
}
