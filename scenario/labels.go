package scenario

import (
	"strings"

	"github.com/marcodamonte/concepts/swap-resolution/swap"
)

// Labels is a non-generic container of three strings. It has no Exchange
// method and no exact overload, so the resolver swaps it through the generic
// tier, copying the whole array.
type Labels struct {
	items [swap.TripleCap]string
}

// NewLabels fails with a *swap.LengthError for more than three values.
func NewLabels(vals ...string) (*Labels, error) {
	if len(vals) > swap.TripleCap {
		return nil, &swap.LengthError{Max: swap.TripleCap, Got: len(vals)}
	}
	l := &Labels{}
	copy(l.items[:], vals)
	return l, nil
}

func (l *Labels) String() string {
	return "{" + strings.Join(l.items[:], " ") + "}"
}
