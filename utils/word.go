package utils

import "fmt"

type Word64 uint64

func (w Word64) String() string {
	return fmt.Sprintf("%016x", uint64(w))
}
