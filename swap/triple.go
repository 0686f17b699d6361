package swap

import (
	"fmt"
	"strings"
)

// TripleCap is the fixed capacity of a Triple.
const TripleCap = 3

// Triple is a fixed-size container of up to three values stored inline.
// Slots not filled at construction hold the zero value of T.
//
// Because storage is an array and not a relocatable handle, exchanging two
// Triples has to move every element; there is no pointer to trade.
type Triple[T any] struct {
	items [TripleCap]T
}

// NewTriple builds a Triple from vals in order. More than TripleCap values is
// a length violation: no Triple is returned and nothing is truncated.
func NewTriple[T any](vals ...T) (*Triple[T], error) {
	if len(vals) > TripleCap {
		return nil, &LengthError{Max: TripleCap, Got: len(vals)}
	}
	t := &Triple[T]{}
	copy(t.items[:], vals)
	return t, nil
}

// MustTriple is NewTriple for initialization paths that cannot fail.
//
//	t := swap.MustTriple(1, 2, 3)
func MustTriple[T any](vals ...T) *Triple[T] {
	t, err := NewTriple(vals...)
	if err != nil {
		panic(err)
	}
	return t
}

// At returns the element at index i without a bounds check of its own.
// Callers must keep i in [0, TripleCap); anything else panics.
func (t *Triple[T]) At(i int) T { return t.items[i] }

// Values returns a copy of the three slots.
func (t *Triple[T]) Values() []T {
	out := make([]T, TripleCap)
	copy(out, t.items[:])
	return out
}

// Exchange swaps the contents of t and other element by element, using the
// generic swap for each slot. Exchanging a Triple with itself is a no-op.
func (t *Triple[T]) Exchange(other *Triple[T]) {
	for i := range t.items {
		Generic(&t.items[i], &other.items[i])
	}
}

func (t *Triple[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range t.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte('}')
	return sb.String()
}
