package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two currencies.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency        // currency being exchanged
	quote Currency        // currency being obtained in exchange for the base currency
	value decimal.Decimal // how many units of quote currency are needed to exchange for 1 unit of the base currency
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
// The rate is kept exact; rounding happens when an amount is converted.
//
// NewExchRate returns an error if:
//   - either currency is the zero value;
//   - the rate is not positive;
//   - the currencies are equal and the rate is not 1.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !base.IsValid() || !quote.IsValid() {
		return ExchangeRate{}, ErrMissingCurrency
	}
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be positive")
	}
	if base == quote && !rate.IsOne() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be equal to 1")
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also methods [ParseCurr] and [decimal.Parse].
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("base currency parsing: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("quote currency parsing: %w", err)
	}
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate parsing: %w", err)
	}
	r, err := NewExchRate(b, q, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate construction: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the rate.
func (r ExchangeRate) Decimal() decimal.Decimal {
	return r.value
}

// Conv returns the amount converted from the base currency to the quote currency.
// It rounds like [Amount.ConvertTo]: first to the scale of the base currency,
// then to the scale of the quote currency.
//
// Conv returns [ErrCurrencyMismatch] if the amount is not denominated in the
// base currency.
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	if b.Curr() != r.Base() {
		return Amount{}, fmt.Errorf("converting %v at %v: %w", b, r, ErrCurrencyMismatch)
	}
	return b.ConvertTo(r.Quote(), r.value)
}

// Inv returns the inverse of the exchange rate.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	d := r.value
	if d.IsZero() {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, errDivisionByZero)
	}
	e, err := d.One().Quo(d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRate(r.Quote(), r.Base(), e.Trim(0))
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, for example "EUR/USD 1.0995".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.Base().label() + "/" + r.Quote().label() + " " + r.value.String()
}
