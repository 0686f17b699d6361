package swap

import (
	"errors"
	"fmt"
)

// ErrLength is the sentinel for a length violation. Any *LengthError matches
// it through errors.Is.
var ErrLength = errors.New("length violation")

// LengthError reports an initializer that does not fit a fixed capacity.
type LengthError struct {
	Max int // capacity of the container
	Got int // number of values supplied
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("length violation: %d values exceed capacity %d", e.Got, e.Max)
}

// Is matches ErrLength and any *LengthError with the same capacity,
// regardless of how many values were supplied.
func (e *LengthError) Is(target error) bool {
	if target == ErrLength {
		return true
	}
	var t *LengthError
	if !errors.As(target, &t) {
		return false
	}
	return e.Max == t.Max
}
