package scenario

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/marcodamonte/concepts/swap-resolution/swap"
)

// Outcome records what a swap did to both operands.
type Outcome struct {
	Case   Case
	Tier   swap.Tier
	Before [2]string
	After  [2]string
}

// Result pairs an Outcome with its verdict against Case.Expect.
type Result struct {
	Outcome
	Err  error // error from Run, if any
	Pass bool
}

// Run builds both operands of c, swaps them through r and verifies the
// exchange. Construction failures are returned as-is; a length violation
// matches swap.ErrLength.
func Run(r *swap.Resolver, c Case) (Outcome, error) {
	if c.Expect == "" {
		c.Expect = ExpectOK
	}
	if err := c.validate(); err != nil {
		return Outcome{Case: c}, err
	}

	switch c.Kind {
	case KindInt:
		a, err := strconv.Atoi(c.Left[0])
		if err != nil {
			return Outcome{Case: c}, fmt.Errorf("scenario %q: left: %w", c.Name, err)
		}
		b, err := strconv.Atoi(c.Right[0])
		if err != nil {
			return Outcome{Case: c}, fmt.Errorf("scenario %q: right: %w", c.Name, err)
		}
		return exchange(r, c, &a, &b, func(v *int) string { return strconv.Itoa(*v) })

	case KindString:
		a, b := c.Left[0], c.Right[0]
		return exchange(r, c, &a, &b, func(v *string) string { return *v })

	case KindText:
		return exchange(r, c, swap.NewText(c.Left[0]), swap.NewText(c.Right[0]), (*swap.Text).String)

	case KindTripleInt:
		a, err := buildTriple(c.Name, "left", c.Left, strconv.Atoi)
		if err != nil {
			return Outcome{Case: c}, err
		}
		b, err := buildTriple(c.Name, "right", c.Right, strconv.Atoi)
		if err != nil {
			return Outcome{Case: c}, err
		}
		return exchange(r, c, a, b, (*swap.Triple[int]).String)

	case KindTripleString:
		ident := func(s string) (string, error) { return s, nil }
		a, err := buildTriple(c.Name, "left", c.Left, ident)
		if err != nil {
			return Outcome{Case: c}, err
		}
		b, err := buildTriple(c.Name, "right", c.Right, ident)
		if err != nil {
			return Outcome{Case: c}, err
		}
		return exchange(r, c, a, b, (*swap.Triple[string]).String)

	case KindLabels:
		a, err := NewLabels(c.Left...)
		if err != nil {
			return Outcome{Case: c}, fmt.Errorf("scenario %q: left: %w", c.Name, err)
		}
		b, err := NewLabels(c.Right...)
		if err != nil {
			return Outcome{Case: c}, fmt.Errorf("scenario %q: right: %w", c.Name, err)
		}
		return exchange(r, c, a, b, (*Labels).String)
	}
	return Outcome{Case: c}, fmt.Errorf("%w: %q: unknown kind %q", ErrInvalidCase, c.Name, c.Kind)
}

// RunAll runs every case and judges it against its Expect field.
func RunAll(r *swap.Resolver, cases []Case) []Result {
	out := make([]Result, 0, len(cases))
	for _, c := range cases {
		o, err := Run(r, c)
		res := Result{Outcome: o, Err: err}
		switch c.Expect {
		case ExpectLengthViolation:
			res.Pass = errors.Is(err, swap.ErrLength)
			if err == nil {
				res.Err = fmt.Errorf("scenario %q: %w: expected a length violation", c.Name, ErrUnexpected)
			}
		default:
			res.Pass = err == nil
		}
		out = append(out, res)
	}
	return out
}

func buildTriple[T any](name, side string, raw []string, parse func(string) (T, error)) (*swap.Triple[T], error) {
	vals := make([]T, 0, len(raw))
	for _, s := range raw {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %s: %w", name, side, err)
		}
		vals = append(vals, v)
	}
	t, err := swap.NewTriple(vals...)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %s: %w", name, side, err)
	}
	return t, nil
}

// exchange swaps a and b and checks each side now shows what the other
// showed before.
func exchange[T any](r *swap.Resolver, c Case, a, b *T, show func(*T) string) (Outcome, error) {
	o := Outcome{Case: c, Before: [2]string{show(a), show(b)}}
	o.Tier = swap.Swap(r, a, b)
	o.After = [2]string{show(a), show(b)}
	if o.After[0] != o.Before[1] || o.After[1] != o.Before[0] {
		return o, fmt.Errorf("scenario %q: %w: before %v, after %v", c.Name, ErrNotSwapped, o.Before, o.After)
	}
	return o, nil
}
