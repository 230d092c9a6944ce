package money

import (
	"fmt"
	"strings"
	"sync"
)

// Registry is an interning store for currencies.
// It remembers the default definition of each registered code, so that a bare
// code like "JPY" resolves to the exponent registered for it instead of
// [DefaultScale], and memoizes validated definitions.
//
// Registry is owned by its caller; the package keeps no global registry.
// Currencies are compared by value, so equality never depends on whether a
// currency came from a registry.
// Registry is safe for concurrent use by multiple goroutines.
// The zero value is an empty registry ready to use.
type Registry struct {
	mu       sync.RWMutex
	defaults map[string]Currency
	interned map[CurrencyDef]Currency
}

// NewRegistry returns a registry with the given currencies registered.
// It panics if two currencies share a code but not an exponent.
func NewRegistry(currs ...Currency) *Registry {
	r := &Registry{}
	for _, c := range currs {
		if err := r.Register(c); err != nil {
			panic(fmt.Sprintf("NewRegistry(%v) failed: %v", currs, err))
		}
	}
	return r
}

// NewISORegistry returns a registry with the [ISO 4217] currencies registered,
// each with the exponent of its minor unit.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
func NewISORegistry() *Registry {
	return NewRegistry(isoCurrencies[:]...)
}

// Register makes c the default definition of its code.
// Registering the same currency twice is a no-op.
//
// Register returns an error if the currency is not valid, or if its code is
// already registered with a different exponent.
func (r *Registry) Register(c Currency) error {
	if !c.IsValid() {
		return fmt.Errorf("registering %v: %w", c.Def(), ErrInvalidCurrency)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.defaults == nil {
		r.defaults = make(map[string]Currency)
	}
	if d, ok := r.defaults[c.Code()]; ok {
		if d != c {
			return fmt.Errorf("registering %v: %w: code is registered with exponent %v", c.Def(), ErrInvalidCurrency, d.Scale())
		}
		return nil
	}
	r.defaults[c.Code()] = c
	return nil
}

// Lookup returns the currency registered for the code.
// If the code is not registered, Lookup returns the currency with the
// exponent [DefaultScale].
// Codes are case-insensitive.
//
// Lookup returns an error if the code is not valid, see [NewCurr].
func (r *Registry) Lookup(code string) (Currency, error) {
	norm, err := normCode(code)
	if err != nil {
		return Currency{}, err
	}
	r.mu.RLock()
	c, ok := r.defaults[norm]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}
	return NewCurr(norm, DefaultScale)
}

// Parse is like [ParseCurr], but a bare code resolves with [Registry.Lookup].
func (r *Registry) Parse(curr string) (Currency, error) {
	if !strings.Contains(curr, ":") {
		return r.Lookup(curr)
	}
	c, err := ParseCurr(curr)
	if err != nil {
		return Currency{}, err
	}
	return r.intern(c), nil
}

// Intern validates the definition and returns the currency it denotes.
// The first currency interned for a definition is kept and returned by
// subsequent calls, including concurrent ones.
//
// Intern returns an error if the definition is not valid, see [NewCurr].
func (r *Registry) Intern(def CurrencyDef) (Currency, error) {
	c, err := def.Curr()
	if err != nil {
		return Currency{}, err
	}
	r.mu.RLock()
	d, ok := r.interned[c.Def()]
	r.mu.RUnlock()
	if ok {
		return d, nil
	}
	return r.intern(c), nil
}

// intern stores c unless a currency with the same definition is present,
// and returns the stored one.
func (r *Registry) intern(c Currency) Currency {
	def := c.Def()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.interned == nil {
		r.interned = make(map[CurrencyDef]Currency)
	}
	if d, ok := r.interned[def]; ok {
		return d
	}
	r.interned[def] = c
	return c
}

// Len returns the number of registered codes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defaults)
}
