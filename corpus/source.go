package corpus

import (
	"gonum.org/v1/gonum/mathext/prng"
	"math"
	"math/bits"
	"math/rand"
)

type Mode int

const (
	Add Mode = iota
	Sub
	Random
	Xoshiro
	MT
	Zipf8
	Zipf16
	Zipf32
	Zipf48
	ZipfShifted
	EmbeddedZero16
	EmbeddedZero32
	EmbeddedFF16
	EmbeddedFF32
	SingleBit
	SingleByte
	Sparse
	Dense
	Zero
	lastMode
)

// MaxReuse is the number of words drawn before the source switches mode.
const MaxReuse = 8

var masks = []uint64{
	0xffffffffffffffff,
	0xffffffffffffffff,
	0xffffffffffffffff,
	0xffffffffffffffff,
	0xf5f5f5f5f5f5f5f5,
	0x5555555555555555,
	0xaaaaaaaaaaaaaaaa,
	0x5a5a5a5a5a5a5a5a,
	0x00ff00ff00ff00ff,
	0xffff0000ffff0000,
}

// Source produces input words mixing several distributions, so the harness sees
// dense, sparse, banded and byte aligned patterns as well as uniform noise. A Source
// is deterministic for a given seed and is not safe for concurrent use.
type Source struct {
	lastResult uint64
	mode       Mode
	swapBytes  bool
	retrieved  int
	mask       uint64
	rng        *rand.Rand
	zipfRng8   *rand.Zipf
	zipfRng16  *rand.Zipf
	zipfRng32  *rand.Zipf
	zipfRng48  *rand.Zipf
	xoshiroRng *prng.Xoshiro256starstar
	mtRng      *prng.MT19937_64
}

func NewSource(seed uint64) *Source {
	s := &Source{
		xoshiroRng: prng.NewXoshiro256starstar(seed),
		mtRng:      prng.NewMT19937_64(),
	}
	s.Reseed(seed)
	return s
}

func newZipf(seed int64, bitCount float64) *rand.Zipf {
	return rand.NewZipf(rand.New(rand.NewSource(seed)), 2.0, 1.0, uint64(math.Pow(2, bitCount))-1)
}

func (s *Source) Reseed(seed uint64) {
	var base = int64(seed)
	s.rng = rand.New(rand.NewSource(base))
	s.zipfRng8 = newZipf(base+1, 8)
	s.zipfRng16 = newZipf(base+2, 16)
	s.zipfRng32 = newZipf(base+3, 32)
	s.zipfRng48 = newZipf(base+4, 48)
	s.xoshiroRng.Seed(seed)
	s.mtRng.Seed(seed)
	s.lastResult = 0
	s.retrieved = 0
	s.shuffle()
}

func (s *Source) Mode() Mode {
	return s.mode
}

func (s *Source) Uint64() uint64 {
	switch s.mode {
	case Add:
		s.lastResult += 1
	case Sub:
		s.lastResult -= 1
	case Random:
		s.lastResult = s.rng.Uint64()
	case Xoshiro:
		s.lastResult = s.xoshiroRng.Uint64()
	case MT:
		s.lastResult = s.mtRng.Uint64()
	case Zipf8:
		s.lastResult = s.zipfRng8.Uint64()
	case Zipf16:
		s.lastResult = s.zipfRng16.Uint64()
	case Zipf32:
		s.lastResult = s.zipfRng32.Uint64()
	case Zipf48:
		s.lastResult = s.zipfRng48.Uint64()
	case ZipfShifted:
		s.lastResult = s.zipfRng16.Uint64() << uint(s.rng.Intn(48))
	case EmbeddedZero16:
		s.lastResult = s.xoshiroRng.Uint64() & 0xffffff0000ffffff
	case EmbeddedZero32:
		s.lastResult = s.xoshiroRng.Uint64() & 0xffff00000000ffff
	case EmbeddedFF16:
		s.lastResult = s.xoshiroRng.Uint64() | 0x000000ffff000000
	case EmbeddedFF32:
		s.lastResult = s.xoshiroRng.Uint64() | 0x0000ffffffff0000
	case SingleBit:
		s.lastResult = 1 << uint(s.rng.Intn(64))
	case SingleByte:
		s.lastResult = uint64(s.rng.Intn(256)) << uint(8*s.rng.Intn(8))
	case Sparse:
		s.lastResult = s.mtRng.Uint64() & s.xoshiroRng.Uint64() & s.rng.Uint64()
	case Dense:
		s.lastResult = s.mtRng.Uint64() | s.xoshiroRng.Uint64() | s.rng.Uint64()
	case Zero:
		s.lastResult = 0
	}
	var result = s.lastResult
	if s.retrieved >= MaxReuse {
		s.shuffle()
		s.retrieved = 0
	}
	s.retrieved += 1
	if s.swapBytes {
		result = bits.ReverseBytes64(result)
	}
	return result & s.mask
}

// Fill overwrites words with the next len(words) values.
func (s *Source) Fill(words []uint64) {
	for i := range words {
		words[i] = s.Uint64()
	}
}

func (s *Source) shuffle() {
	s.mode = Mode(s.rng.Intn(int(lastMode)))
	if s.mode == Zero {
		s.lastResult = 0
		s.mode = Mode(s.rng.Intn(2))
	}
	s.swapBytes = s.rng.Intn(2) == 0
	s.mask = masks[s.rng.Intn(len(masks))]
}
