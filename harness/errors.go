package harness

import (
	"errors"
	"fmt"
	"github.com/fernandosanchezjr/bitinverter/backend/data"
)

var (
	ErrMismatch       = errors.New("strategies disagree")
	ErrRunInProgress  = errors.New("run already in progress")
	ErrNoStrategies   = errors.New("no strategies selected")
	ErrInvalidWorkers = errors.New("workers must be positive")
)

// MismatchError reports strategies producing output that disagrees with the reference.
type MismatchError struct {
	Count uint64
	First data.Mismatch
}

func (e *MismatchError) Error() string {
	var kind = "reverse"
	if e.First.Involution {
		kind = "involution"
	}
	return fmt.Sprintf("%v: %d mismatches, first %s %s(%s) = %s, want %s",
		ErrMismatch, e.Count, kind, e.First.Strategy, e.First.Input, e.First.Got, e.First.Want)
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}
