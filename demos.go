package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/concepts/swap-resolution/scenario"
	"github.com/marcodamonte/concepts/swap-resolution/swap"
)

type demo struct {
	out   io.Writer
	color bool
	r     *swap.Resolver
}

func (d *demo) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

// ── Generic tier ─────────────────────────────────────────────────────────────
// int has no exact overload and no Exchange method, so the resolver falls
// back to copy-through-temporary. Calling swap.Generic directly does the same.

func (d *demo) demoInts() error {
	i1, i2 := 1, 2
	d.printf("  before:            i1=%d i2=%d\n", i1, i2)

	tier := swap.Swap(d.r, &i1, &i2)
	d.printf("  after swap.Swap:   i1=%d i2=%d  (%s)\n", i1, i2, tier)

	swap.Generic(&i1, &i2)
	d.printf("  after swap.Generic: i1=%d i2=%d\n", i1, i2)

	swap.Swap(d.r, &i1, &i1)
	d.printf("  self-swap:         i1=%d  ← unchanged\n", i1)
	return nil
}

// ── Exact tier ───────────────────────────────────────────────────────────────
// string and Text have non-generic overloads registered. Text also has an
// Exchange method, which would qualify it for the specialized tier, but the
// exact overload wins. Either way only buffer ownership moves.

func (d *demo) demoStrings() error {
	s1, s2 := "StrOne", "StrTwo"
	d.printf("  strings before: %s %s\n", s1, s2)
	tier := swap.Swap(d.r, &s1, &s2)
	d.printf("  strings after:  %s %s  (%s)\n", s1, s2, tier)

	t1, t2 := swap.NewText("Hello"), swap.NewText("Goodbye")
	t1.WriteString(", world")
	before := &t1.Bytes()[0]
	d.printf("\n  Text before: %q (cap %d)  %q (cap %d)\n", t1, t1.Cap(), t2, t2.Cap())

	tier = swap.Swap(d.r, t1, t2)
	d.printf("  Text after:  %q (cap %d)  %q (cap %d)  (%s)\n", t1, t1.Cap(), t2, t2.Cap(), tier)
	d.printf("  t2 now owns t1's old buffer: %v\n", &t2.Bytes()[0] == before)
	return nil
}

// ── Specialized tier ─────────────────────────────────────────────────────────
// *Triple[T] has Exchange(*Triple[T]), so every instantiation of the family
// is swapped slot by slot without building a temporary Triple.

func (d *demo) demoTripleInts() error {
	a, err := swap.NewTriple(1, 2, 3)
	if err != nil {
		return err
	}
	b, err := swap.NewTriple(11, 22, 33)
	if err != nil {
		return err
	}

	d.printf("  before:             %v %v\n", a, b)
	tier := swap.Swap(d.r, a, b)
	d.printf("  after swap.Swap:    %v %v  (%s)\n", a, b, tier)
	swap.Triples(a, b)
	d.printf("  after swap.Triples: %v %v\n", a, b)
	d.printf("  a.At(1) = %d\n", a.At(1))
	return nil
}

func (d *demo) demoTripleStrings() error {
	a, err := swap.NewTriple("Hi", "Bye", "End")
	if err != nil {
		return err
	}
	b, err := swap.NewTriple("Moin", "Tschüss", "Aus")
	if err != nil {
		return err
	}

	d.printf("  before: %v %v\n", a, b)
	tier := swap.Swap(d.r, a, b)
	d.printf("  after:  %v %v  (%s)\n", a, b, tier)
	return nil
}

// ── Generic tier for a concrete container ────────────────────────────────────
// Labels looks like a Triple[string] but offers no Exchange, so the resolver
// can only copy it whole.

func (d *demo) demoLabels() error {
	a, err := scenario.NewLabels("One", "two", "three")
	if err != nil {
		return err
	}
	b, err := scenario.NewLabels("Eins", "zwei", "drei")
	if err != nil {
		return err
	}

	d.printf("  before: %v %v\n", a, b)
	tier := swap.Swap(d.r, a, b)
	d.printf("  after:  %v %v  (%s)\n", a, b, tier)
	return nil
}

// ── Length violation ─────────────────────────────────────────────────────────
// Four values do not fit; NewTriple returns a *LengthError and no Triple.
// The error is handed back to runSection, which reports it as a known kind.

func (d *demo) demoLengthViolation() error {
	t, err := swap.NewTriple("Hi", "Bye", "End", "Extra")
	if err != nil {
		return fmt.Errorf("NewTriple: %w", err)
	}
	d.printf("  unexpectedly built %v\n", t)
	return nil
}

// ── Registering an exact overload ────────────────────────────────────────────
// account has Exchange, so it starts in the specialized tier. Registering a
// non-generic function for it moves it to the exact tier on the next call.

type account struct {
	owner   string
	balance int
}

func (a *account) Exchange(other *account) {
	a.owner, other.owner = other.owner, a.owner
	a.balance, other.balance = other.balance, a.balance
}

func (d *demo) demoRegisterExact() error {
	a, b := &account{"alice", 10}, &account{"bob", 20}

	tier := swap.Swap(d.r, a, b)
	d.printf("  before registration: %s  → a=%v b=%v\n", tier, *a, *b)

	swap.RegisterExact(d.r, func(x, y *account) {
		*x, *y = *y, *x
	})

	tier = swap.Swap(d.r, a, b)
	d.printf("  after registration:  %s        → a=%v b=%v\n", tier, *a, *b)
	return nil
}

// ── Scenario table ───────────────────────────────────────────────────────────

func (d *demo) demoScenarios(cases []scenario.Case) error {
	failed := 0
	for _, res := range scenario.RunAll(d.r, cases) {
		mark := "✓"
		if !res.Pass {
			mark = "✗"
			failed++
		}

		switch {
		case res.Err != nil:
			d.printf("  %s %-20s expect=%-16s err=%v\n", mark, res.Case.Name, res.Case.Expect, res.Err)
		default:
			d.printf("  %s %-20s %-11s %v %v → %v %v\n", mark, res.Case.Name, res.Tier,
				res.Before[0], res.Before[1], res.After[0], res.After[1])
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed: %w", failed, len(cases), scenario.ErrUnexpected)
	}
	return nil
}
