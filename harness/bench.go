package harness

import (
	"context"
	"fmt"
	"github.com/fernandosanchezjr/bitinverter/backend/data"
	"github.com/fernandosanchezjr/bitinverter/bitrev"
	"github.com/fernandosanchezjr/bitinverter/utils"
	"time"
)

func timeStrategy(f bitrev.Reverser, words []uint64, rounds int) (checksum uint64, elapsed time.Duration) {
	start := time.Now()
	for r := 0; r < rounds; r++ {
		for _, x := range words {
			checksum += f(x)
		}
	}
	return checksum, time.Since(start)
}

// Benchmark times each strategy over rounds passes of words, one strategy at a time.
// Output checksums must agree across strategies.
func Benchmark(
	ctx context.Context,
	words []uint64,
	strategies []bitrev.Strategy,
	rounds int,
) ([]data.Result, error) {
	names, funcs, err := strategyFuncs(strategies)
	if err != nil {
		return nil, err
	}
	return benchmark(ctx, words, names, funcs, rounds)
}

func benchmark(
	ctx context.Context,
	words []uint64,
	names []string,
	funcs []bitrev.Reverser,
	rounds int,
) ([]data.Result, error) {
	if rounds <= 0 {
		rounds = 1
	}
	var results = make([]data.Result, 0, len(funcs))
	for pos, f := range funcs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		checksum, elapsed := timeStrategy(f, words, rounds)
		ops := uint64(len(words)) * uint64(rounds)
		result := data.Result{
			Strategy: names[pos],
			Words:    len(words),
			Rounds:   rounds,
			Elapsed:  elapsed,
			Rate:     utils.NewRate(ops, elapsed),
			Checksum: utils.Word64(checksum),
		}
		if ops > 0 {
			result.NsPerOp = float64(elapsed.Nanoseconds()) / float64(ops)
		}
		if len(results) > 0 && results[0].Checksum != result.Checksum {
			return append(results, result), fmt.Errorf("%w: %s checksum %s, %s checksum %s",
				ErrMismatch, results[0].Strategy, results[0].Checksum, result.Strategy, result.Checksum)
		}
		results = append(results, result)
	}
	return results, nil
}
