package data

import (
	"encoding/gob"
	"github.com/fernandosanchezjr/bitinverter/utils"
	"time"
)

// Result is the timing of one strategy over a corpus.
type Result struct {
	Strategy string
	Words    int
	Rounds   int
	Elapsed  time.Duration
	NsPerOp  float64
	Rate     utils.Rate
	Checksum utils.Word64
}

// Mismatch records a strategy disagreeing with the reference on one input. When
// Involution is set, Got is the strategy applied twice and Want is the input.
type Mismatch struct {
	Strategy   string
	Input      utils.Word64
	Want       utils.Word64
	Got        utils.Word64
	Involution bool
}

// Run is one verification and benchmark pass, as stored.
type Run struct {
	Time        time.Time
	Seed        uint64
	Words       int
	Fingerprint string
	Vector      bool
	Reference   string
	Checked     uint64
	Mismatches  []Mismatch
	Results     []Result
}

func init() {
	gob.Register(Run{})
}

func NewRun(t time.Time) *Run {
	return &Run{Time: t}
}

func (r *Run) Passed() bool {
	return len(r.Mismatches) == 0
}

// Result returns the timing stored for strategy, if any.
func (r *Run) Result(strategy string) (Result, bool) {
	for _, result := range r.Results {
		if result.Strategy == strategy {
			return result, true
		}
	}
	return Result{}, false
}

// Fastest returns the result with the lowest ns/op.
func (r *Run) Fastest() (Result, bool) {
	var best Result
	var found bool
	for _, result := range r.Results {
		if !found || result.NsPerOp < best.NsPerOp {
			best = result
			found = true
		}
	}
	return best, found
}
