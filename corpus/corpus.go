package corpus

import (
	"encoding/binary"
	"encoding/hex"
	"github.com/fernandosanchezjr/sha256-simd"
)

type Corpus struct {
	Seed  uint64
	Words []uint64
}

// Edges returns zero, all ones, every single bit word and every value of the low
// byte, in that order.
func Edges() []uint64 {
	var words = make([]uint64, 0, 2+64+256)
	words = append(words, 0, 0xffffffffffffffff)
	for i := 0; i < 64; i++ {
		words = append(words, 1<<uint(i))
	}
	for b := 0; b < 256; b++ {
		words = append(words, uint64(b))
	}
	return words
}

// Build returns size words: the edge words first, then words drawn from a Source
// seeded with seed. When size is smaller than the edge set the edges are truncated.
func Build(size int, seed uint64) *Corpus {
	if size < 0 {
		size = 0
	}
	var words = make([]uint64, size)
	var n = copy(words, Edges())
	NewSource(seed).Fill(words[n:])
	return &Corpus{Seed: seed, Words: words}
}

func (c *Corpus) Len() int {
	return len(c.Words)
}

// Fingerprint hashes the words in little endian order, identifying the exact input set
// a run was measured on.
func (c *Corpus) Fingerprint() string {
	var buf = make([]byte, 8*len(c.Words))
	for i, w := range c.Words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	var sum = sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
