package swap_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/marcodamonte/concepts/swap-resolution/swap"
)

// Run:
//
//	go test -bench=. -benchmem ./swap
//
// BenchmarkTextExact stays flat however long the text is; BenchmarkArrayGeneric
// pays for copying the whole array three times per swap.

func benchResolver() *swap.Resolver {
	return swap.NewResolver(swap.Config{Logger: log.New(&bytes.Buffer{}, "", 0)})
}

func BenchmarkTextExact(b *testing.B) {
	r := benchResolver()
	x := swap.NewText(strings.Repeat("a", 4096))
	y := swap.NewText(strings.Repeat("b", 4096))
	b.ResetTimer()
	for range b.N {
		swap.Swap(r, x, y)
	}
}

func BenchmarkTripleSpecialized(b *testing.B) {
	r := benchResolver()
	x, y := swap.MustTriple("Hi", "Bye", "End"), swap.MustTriple("Moin", "Tschüss", "Aus")
	b.ResetTimer()
	for range b.N {
		swap.Swap(r, x, y)
	}
}

func BenchmarkArrayGeneric(b *testing.B) {
	r := benchResolver()
	var x, y [512]int
	b.ResetTimer()
	for range b.N {
		swap.Swap(r, &x, &y)
	}
}
