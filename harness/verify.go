package harness

import (
	"context"
	"github.com/fernandosanchezjr/bitinverter/backend/data"
	"github.com/fernandosanchezjr/bitinverter/bitrev"
	"github.com/fernandosanchezjr/bitinverter/utils"
	"sync"
	"sync/atomic"
)

const (
	MaxReportedMismatches = 64
	checkBlock            = 4096
)

type Verification struct {
	Reference  bitrev.Strategy
	Strategies []bitrev.Strategy
	Checked    uint64
	Failed     uint64
	Mismatches []data.Mismatch
}

type verifyWorker struct {
	reference  bitrev.Reverser
	names      []string
	funcs      []bitrev.Reverser
	checked    uint64
	failed     uint64
	mismatches []data.Mismatch
}

func (w *verifyWorker) record(m data.Mismatch) {
	w.failed += 1
	if len(w.mismatches) < MaxReportedMismatches {
		w.mismatches = append(w.mismatches, m)
	}
}

func (w *verifyWorker) check(words []uint64) {
	for _, x := range words {
		want := w.reference(x)
		for pos, f := range w.funcs {
			got := f(x)
			if got != want {
				w.record(data.Mismatch{
					Strategy: w.names[pos],
					Input:    utils.Word64(x),
					Want:     utils.Word64(want),
					Got:      utils.Word64(got),
				})
			}
			if back := f(got); back != x {
				w.record(data.Mismatch{
					Strategy:   w.names[pos],
					Input:      utils.Word64(x),
					Want:       utils.Word64(x),
					Got:        utils.Word64(back),
					Involution: true,
				})
			}
		}
		w.checked += uint64(len(w.funcs))
	}
}

func strategyFuncs(strategies []bitrev.Strategy) (names []string, funcs []bitrev.Reverser, err error) {
	if len(strategies) == 0 {
		return nil, nil, ErrNoStrategies
	}
	names = make([]string, len(strategies))
	funcs = make([]bitrev.Reverser, len(strategies))
	for pos, s := range strategies {
		if funcs[pos] = s.Func(); funcs[pos] == nil {
			return nil, nil, bitrev.ErrUnknownStrategy
		}
		names[pos] = s.String()
	}
	return
}

// Verify checks every strategy against reference and for involution on every word,
// spreading the words over workers goroutines. A *MismatchError is returned along
// with the verification when any check fails.
func Verify(
	ctx context.Context,
	words []uint64,
	reference bitrev.Strategy,
	strategies []bitrev.Strategy,
	workers int,
) (*Verification, error) {
	if !reference.Valid() {
		return nil, bitrev.ErrUnknownStrategy
	}
	names, funcs, err := strategyFuncs(strategies)
	if err != nil {
		return nil, err
	}
	result := &Verification{Reference: reference, Strategies: strategies}
	err = verify(ctx, words, reference.Func(), names, funcs, workers, result)
	return result, err
}

func verify(
	ctx context.Context,
	words []uint64,
	reference bitrev.Reverser,
	names []string,
	funcs []bitrev.Reverser,
	workers int,
	result *Verification,
) error {
	if workers <= 0 {
		return ErrInvalidWorkers
	}
	var chunk = (len(words) + workers - 1) / workers
	var wg sync.WaitGroup
	var mtx sync.Mutex
	var cancelled int32
	for start := 0; start < len(words); start += chunk {
		end := start + chunk
		if end > len(words) {
			end = len(words)
		}
		wg.Add(1)
		go func(part []uint64) {
			defer wg.Done()
			w := &verifyWorker{reference: reference, names: names, funcs: funcs}
			for len(part) > 0 {
				if ctx.Err() != nil {
					atomic.StoreInt32(&cancelled, 1)
					break
				}
				n := checkBlock
				if n > len(part) {
					n = len(part)
				}
				w.check(part[:n])
				part = part[n:]
			}
			mtx.Lock()
			defer mtx.Unlock()
			result.Checked += w.checked
			result.Failed += w.failed
			for _, m := range w.mismatches {
				if len(result.Mismatches) < MaxReportedMismatches {
					result.Mismatches = append(result.Mismatches, m)
				}
			}
		}(words[start:end])
	}
	wg.Wait()
	if atomic.LoadInt32(&cancelled) != 0 {
		return ctx.Err()
	}
	if result.Failed > 0 {
		return &MismatchError{Count: result.Failed, First: result.Mismatches[0]}
	}
	return nil
}
