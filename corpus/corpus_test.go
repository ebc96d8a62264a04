package corpus

import (
	"github.com/fernandosanchezjr/bitinverter/utils"
	log "github.com/sirupsen/logrus"
	"testing"
)

func TestSource_Deterministic(t *testing.T) {
	a := NewSource(1234)
	b := NewSource(1234)
	for i := 0; i < 4096; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d: %016x != %016x", i, x, y)
		}
	}
}

func TestSource_Reseed(t *testing.T) {
	s := NewSource(99)
	first := make([]uint64, 256)
	s.Fill(first)
	s.Reseed(99)
	second := make([]uint64, 256)
	s.Fill(second)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("draw %d differs after reseed", i)
		}
	}
}

func TestSource_Modes(t *testing.T) {
	s := NewSource(5)
	seen := map[Mode]bool{}
	for i := 0; i < 1<<14; i++ {
		seen[s.Mode()] = true
		s.Uint64()
	}
	if seen[Zero] {
		t.Fatal("Zero mode must be replaced when selected")
	}
	if len(seen) < int(lastMode)-1 {
		t.Fatalf("only %d of %d modes used", len(seen), int(lastMode)-1)
	}
}

func TestSource_Sample(t *testing.T) {
	s := NewSource(utils.RandomSeed())
	for i := 0; i < 32; i++ {
		log.WithFields(log.Fields{
			"mode":  s.Mode(),
			"value": utils.Word64(s.Uint64()),
		}).Debugln("Sample")
	}
}

func TestEdges(t *testing.T) {
	edges := Edges()
	if len(edges) != 2+64+256 {
		t.Fatalf("got %d edge words", len(edges))
	}
	if edges[0] != 0 || edges[1] != 0xffffffffffffffff {
		t.Fatal("fixed points missing")
	}
	for i := 0; i < 64; i++ {
		if edges[2+i] != 1<<uint(i) {
			t.Fatalf("single bit %d missing", i)
		}
	}
	for b := 0; b < 256; b++ {
		if edges[66+b] != uint64(b) {
			t.Fatalf("low byte %d missing", b)
		}
	}
}

func TestBuild(t *testing.T) {
	c := Build(10000, 42)
	if c.Len() != 10000 || c.Seed != 42 {
		t.Fatalf("unexpected corpus size %d seed %d", c.Len(), c.Seed)
	}
	edges := Edges()
	for i, w := range edges {
		if c.Words[i] != w {
			t.Fatalf("word %d is not edge word", i)
		}
	}
	small := Build(3, 42)
	if small.Len() != 3 || small.Words[2] != 1 {
		t.Fatalf("truncated corpus %v", small.Words)
	}
	if Build(-1, 1).Len() != 0 {
		t.Fatal("negative size produced words")
	}
}

func TestFingerprint(t *testing.T) {
	a := Build(5000, 7)
	b := Build(5000, 7)
	c := Build(5000, 8)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("same corpus hashed differently")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatal("different seeds hashed the same")
	}
	if len(a.Fingerprint()) != 64 {
		t.Fatalf("fingerprint %q is not hex sha256", a.Fingerprint())
	}
}
