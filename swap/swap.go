// Package swap exchanges two values of the same type through one of three
// implementations, picked the way an overload resolver would pick them:
//
//  1. exact: a non-generic function registered for exactly that type
//  2. specialized: the type belongs to a container family that knows how to
//     exchange itself (its pointer has an Exchange(*T) method)
//  3. generic: copy through a temporary
//
// The most specific applicable tier always wins. Go has no overloading or
// template specialization, so the choice is made by a Resolver once per type
// and cached; every later call for that type goes straight to the chosen
// implementation.
package swap

// Tier identifies which implementation performed a swap. Lower values take
// precedence.
type Tier int

const (
	TierExact Tier = iota + 1
	TierSpecialized
	TierGeneric
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierSpecialized:
		return "specialized"
	case TierGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Exchanger is the capability that puts a type in the specialized tier:
// *T knows how to trade contents with another *T.
type Exchanger[T any] interface {
	Exchange(other *T)
}

// Generic is the fallback tier. It works for any T and always costs one full
// copy of T through a temporary.
func Generic[T any](a, b *T) {
	tmp := *a
	*a = *b
	*b = tmp
}

// Triples is the specialized tier for the Triple family. It exchanges the
// inline storage slot by slot; no temporary Triple is built.
func Triples[T any](a, b *Triple[T]) { a.Exchange(b) }

// Texts is the exact tier for Text: buffer ownership changes hands, no byte
// is copied.
func Texts(a, b *Text) { a.Exchange(b) }

// Strings is the exact tier for string. A Go string is an immutable
// (pointer, length) header, so trading headers never copies the bytes.
func Strings(a, b *string) { *a, *b = *b, *a }
