package swap

import (
	"log"
	"reflect"
	"sync"
	"sync/atomic"
)

// Config holds resolver construction parameters.
type Config struct {
	// Logger receives resolution and dispatch traces. If nil, log.Default()
	// is used.
	Logger *log.Logger

	// Verbose logs every dispatch, not only the first resolution of a type.
	Verbose bool
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Logger == nil {
		out.Logger = log.Default()
	}
	return out
}

// Metrics counts swaps per tier. Fields are updated atomically.
type Metrics struct {
	Exact       int64
	Specialized int64
	Generic     int64
}

// entry is a resolved strategy. fn is a func(a, b *T) for the keyed T.
type entry struct {
	tier Tier
	fn   any
}

// Resolver picks the most specific swap implementation for a type.
//
//	r := swap.NewResolver(swap.Config{})
//	swap.Swap(r, &x, &y)            // resolves once, then reuses the choice
//	swap.RegisterExact(r, mySwap)   // add a non-generic overload
type Resolver struct {
	cfg     Config
	mu      sync.Mutex
	exact   map[reflect.Type]any
	cache   map[reflect.Type]entry
	metrics Metrics
}

// NewResolver returns a Resolver with the built-in exact overloads for Text
// and string already registered.
func NewResolver(cfg Config) *Resolver {
	r := &Resolver{
		cfg:   cfg.withDefaults(),
		exact: make(map[reflect.Type]any),
		cache: make(map[reflect.Type]entry),
	}
	RegisterExact(r, Texts)
	RegisterExact(r, Strings)
	return r
}

// RegisterExact installs fn as the non-generic overload for exactly T. It
// replaces any earlier overload for T and drops the cached resolution, so the
// next Swap for T picks fn up.
func RegisterExact[T any](r *Resolver, fn func(a, b *T)) {
	key := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.exact[key] = fn
	delete(r.cache, key)
}

// Swap exchanges *a and *b with the most specific implementation available
// for T and reports which tier ran. Passing the same pointer twice is a
// no-op for every tier.
func Swap[T any](r *Resolver, a, b *T) Tier {
	e := lookup[T](r)
	e.fn.(func(a, b *T))(a, b)

	switch e.tier {
	case TierExact:
		atomic.AddInt64(&r.metrics.Exact, 1)
	case TierSpecialized:
		atomic.AddInt64(&r.metrics.Specialized, 1)
	case TierGeneric:
		atomic.AddInt64(&r.metrics.Generic, 1)
	}
	if r.cfg.Verbose {
		r.cfg.Logger.Printf("[swap] %s swap for %v", e.tier, reflect.TypeFor[T]())
	}
	return e.tier
}

// Resolve reports the tier Swap would use for T without swapping anything.
func Resolve[T any](r *Resolver) Tier {
	return lookup[T](r).tier
}

// Metrics returns a snapshot of the per-tier counters.
func (r *Resolver) Metrics() Metrics {
	return Metrics{
		Exact:       atomic.LoadInt64(&r.metrics.Exact),
		Specialized: atomic.LoadInt64(&r.metrics.Specialized),
		Generic:     atomic.LoadInt64(&r.metrics.Generic),
	}
}

// lookup returns the cached strategy for T, resolving it on first use.
func lookup[T any](r *Resolver) entry {
	key := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.cache[key]; ok {
		return e
	}

	var e entry
	if fn, ok := r.exact[key]; ok {
		e = entry{tier: TierExact, fn: fn}
	} else if _, ok := any((*T)(nil)).(Exchanger[T]); ok {
		e = entry{tier: TierSpecialized, fn: func(a, b *T) {
			any(a).(Exchanger[T]).Exchange(b)
		}}
	} else {
		e = entry{tier: TierGeneric, fn: Generic[T]}
	}

	r.cache[key] = e
	r.cfg.Logger.Printf("[resolver] %v resolved to %s swap", key, e.tier)
	return e
}
