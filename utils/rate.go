package utils

import (
	"github.com/dustin/go-humanize"
	"strconv"
	"time"
)

const MaxRawRate = 1000

// Rate is a throughput in reversals per second.
type Rate float64

func NewRate(ops uint64, elapsed time.Duration) Rate {
	if elapsed <= 0 {
		return 0
	}
	return Rate(float64(ops) / elapsed.Seconds())
}

func (r Rate) String() string {
	if r < MaxRawRate {
		return strconv.FormatFloat(float64(r), 'f', 2, 64) + " op/s"
	} else {
		return humanize.SIWithDigits(float64(r), 2, "op/s")
	}
}

func (r Rate) Fraction(dividend Rate) float64 {
	return float64(dividend) / float64(r)
}
