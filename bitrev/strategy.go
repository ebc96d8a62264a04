package bitrev

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Reverser reverses the bit order of a 64 bit word.
type Reverser func(uint64) uint64

// Strategy names one of the interchangeable reversal algorithms. Names returned by
// String are stable and used in configuration and stored results.
type Strategy int

const (
	Naive Strategy = iota
	Branchless
	Log2
	Log2Xor
	Log2Compact
	Log2ByteSwap
	Log2Shuffle
	Table
	Builtin
	lastStrategy
)

var strategyNames = [lastStrategy]string{
	Naive:        "naive",
	Branchless:   "branchless",
	Log2:         "log2",
	Log2Xor:      "log2-xor",
	Log2Compact:  "log2-compact",
	Log2ByteSwap: "log2-byteswap",
	Log2Shuffle:  "log2-shuffle",
	Table:        "table",
	Builtin:      "builtin",
}

var strategyFuncs = [lastStrategy]Reverser{
	Naive:        ReverseNaive,
	Branchless:   ReverseBranchless,
	Log2:         ReverseLog2,
	Log2Xor:      ReverseLog2Xor,
	Log2Compact:  ReverseLog2Compact,
	Log2ByteSwap: ReverseLog2ByteSwap,
	Log2Shuffle:  ReverseLog2Shuffle,
	Table:        ReverseTable,
	Builtin:      ReverseBuiltin,
}

func (s Strategy) Valid() bool {
	return s >= Naive && s < lastStrategy
}

func (s Strategy) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return strategyNames[s]
}

// Func returns the implementation behind s, or nil when s is not a known strategy.
func (s Strategy) Func() Reverser {
	if !s.Valid() {
		return nil
	}
	return strategyFuncs[s]
}

// Reverse applies the strategy to x. It panics when s is not valid.
func (s Strategy) Reverse(x uint64) uint64 {
	return strategyFuncs[s](x)
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	var result = make([]Strategy, 0, lastStrategy)
	for s := Naive; s < lastStrategy; s++ {
		result = append(result, s)
	}
	return result
}

func ParseStrategy(name string) (Strategy, error) {
	var normalized = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == normalized {
			return Strategy(s), nil
		}
	}
	return Naive, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ParseStrategies resolves a list of names. An empty list selects every strategy.
func ParseStrategies(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return Strategies(), nil
	}
	var result = make([]Strategy, 0, len(names))
	var seen = map[Strategy]bool{}
	for _, name := range names {
		s, err := ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		result = append(result, s)
	}
	return result, nil
}

// Reverse is the default reversal, the six stage swap network.
func Reverse(x uint64) uint64 {
	return ReverseLog2(x)
}
