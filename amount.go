package money

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	// ErrCurrencyMismatch is returned when an operation combines amounts
	// denominated in different currencies.
	ErrCurrencyMismatch = fmt.Errorf("%w: currency mismatch", ErrCurrency)

	errAmountOverflow = errors.New("amount overflow")
	errDivisionByZero = errors.New("division by zero")
)

// Amount type represents a monetary amount.
// The value of an amount is always rounded to the scale of its currency,
// so "EUR 1" and "EUR 1.00" are the same amount.
// Its zero value has no currency and is not produced by any constructor.
// Amount is a comparable immutable value and is safe for concurrent use by
// multiple goroutines.
type Amount struct {
	curr  Currency        // currency with its exponent
	value decimal.Decimal // monetary value at the scale of curr
}

// newAmountUnsafe creates a new amount without checking the scale.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d}
}

// newAmountSafe creates a new amount, rounding or padding the value to the
// scale of the currency.
func newAmountSafe(c Currency, d decimal.Decimal) (Amount, error) {
	if !c.IsValid() {
		return Amount{}, ErrMissingCurrency
	}
	d, err := roundHalfUp(d, c.Scale())
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(c, d), nil
}

// roundHalfUp returns d rounded to exactly scale digits after the decimal
// point, with ties rounded away from zero.
func roundHalfUp(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	if d.Scale() <= scale {
		d = d.Pad(scale)
		if d.Scale() != scale {
			return decimal.Decimal{}, fmt.Errorf("padding %v to %v digits: %w", d, scale, errAmountOverflow)
		}
		return d, nil
	}
	t := d.Trunc(scale)
	r, err := d.Sub(t)
	if err != nil {
		return decimal.Decimal{}, err
	}
	half, err := decimal.New(5, scale+1)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if r.CmpAbs(half) < 0 {
		return t, nil
	}
	t, err = t.AddExact(t.ULP().CopySign(d), scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("rounding %v: %w", d, err)
	}
	return t, nil
}

// NewAmount returns an amount of the currency equal to the decimal rounded
// half away from zero to the scale of the currency.
// See also method [Amount.Decimal].
//
// NewAmount returns an error if:
//   - the currency is the zero value ([ErrMissingCurrency]);
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Scale]) digits.
//     For example, when the exponent is 2, NewAmount will return an error
//     if the integer part of the result has more than 17 digits (19 - 2 = 17).
func NewAmount(curr Currency, amount decimal.Decimal) (Amount, error) {
	a, err := newAmountSafe(curr, amount)
	if err != nil {
		return Amount{}, fmt.Errorf("constructing amount from %v %v: %w", curr, amount, err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(curr Currency, amount decimal.Decimal) Amount {
	a, err := NewAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v) failed: %v", curr, amount, err))
	}
	return a
}

// NewAmountFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount.
// See also method [Amount.MinorUnits].
//
// NewAmountFromMinorUnits returns an error if the currency is the zero value
// or the units cannot be represented at the scale of the currency.
func NewAmountFromMinorUnits(curr Currency, units int64) (Amount, error) {
	if !curr.IsValid() {
		return Amount{}, fmt.Errorf("converting minor units: %w", ErrMissingCurrency)
	}
	d, err := decimal.New(units, curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("converting minor units: %w", err)
	}
	return newAmountUnsafe(curr, d), nil
}

// NewAmountFromFloat64 converts a float to a (possibly rounded) amount.
// The float is first converted to its shortest decimal representation,
// so 0.1 becomes exactly 0.10 and not the nearest binary fraction.
//
// NewAmountFromFloat64 returns an error if:
//   - the currency is the zero value;
//   - the float is a special value (NaN or Inf);
//   - the integer part of the result has too many digits, see [NewAmount].
func NewAmountFromFloat64(curr Currency, amount float64) (Amount, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Amount{}, fmt.Errorf("converting float: special value %v", amount)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	a, err := ParseAmountIn(curr, s)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

// ParseAmount converts currency and decimal strings to a (possibly rounded) amount.
// The currency string is parsed with [ParseCurr], so "EUR" has the exponent 2 and
// "BTC:8" the exponent 8.
//
// ParseAmount returns [ErrMissingCurrency] if the currency string is empty, and
// [ErrInvalidCurrency] if it is malformed.
func ParseAmount(curr, amount string) (Amount, error) {
	if curr == "" {
		return Amount{}, fmt.Errorf("parsing currency: %w", ErrMissingCurrency)
	}
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	return ParseAmountIn(c, amount)
}

// ParseAmountIn converts a decimal string to a (possibly rounded) amount of
// the given currency.
// See also constructor [decimal.Parse].
func ParseAmountIn(curr Currency, amount string) (Amount, error) {
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	a, err := newAmountSafe(curr, d)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return a, nil
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// MinorUnits returns the amount in minor units of currency (e.g. cents).
// If the result cannot be represented as an int64, then false is returned.
// See also constructor [NewAmountFromMinorUnits].
func (a Amount) MinorUnits() (units int64, ok bool) {
	u := a.value.Coef()
	if a.IsNeg() {
		if u > -math.MinInt64 {
			return 0, false
		}
		return -int64(u), true //nolint:gosec
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
// Its scale is equal to the scale of the currency.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.value.IsPos()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return newAmountUnsafe(a.curr, a.value.Abs())
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.curr, a.value.Neg())
}

// Zero returns an amount with a value of 0 in the currency of amount a.
func (a Amount) Zero() Amount {
	return newAmountUnsafe(a.curr, a.value.Zero())
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Currency.Equal].
func (a Amount) SameCurr(b Amount) bool {
	return a.curr.Equal(b.curr)
}

// Equal returns true if amounts have the same value and the same currency.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.value.Cmp(b.value) == 0
}

// Matches reports whether v is an amount equal to a.
// The accepted variants are Amount and *Amount; any other value, including
// nil, does not match.
func (a Amount) Matches(v any) bool {
	switch v := v.(type) {
	case Amount:
		return a.Equal(v)
	case *Amount:
		return v != nil && a.Equal(*v)
	default:
		return false
	}
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if:
//   - amounts are denominated in different currencies ([ErrCurrencyMismatch]);
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	d, err := a.value.AddExact(b.value, a.curr.Scale())
	if err != nil {
		return Amount{}, err
	}
	return newAmountSafe(a.curr, d)
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies ([ErrCurrencyMismatch]);
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	d, err := a.value.SubExact(b.value, a.curr.Scale())
	if err != nil {
		return Amount{}, err
	}
	return newAmountSafe(a.curr, d)
}

// Mul returns the product of amount a and factor e, rounded half away from
// zero to the scale of the currency.
// The product is computed exactly and rounded once.
//
// Mul returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	c, err := a.mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) mul(e decimal.Decimal) (Amount, error) {
	if !a.curr.IsValid() {
		return Amount{}, ErrMissingCurrency
	}
	// a * e = coef(a) * coef(e) / 10^(scale(a) + scale(e))
	num := new(big.Int).Mul(bigCoef(a.value), bigCoef(e))
	den := pow10(a.value.Scale() + e.Scale())
	num.Mul(num, pow10(a.curr.Scale()))
	d, err := quoHalfUp(num, den, a.curr.Scale(), a.value.IsNeg() != e.IsNeg())
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(a.curr, d), nil
}

// Quo returns the quotient of amount a and divisor e, rounded half away from
// zero to the scale of the currency.
// The quotient is computed exactly and rounded once.
// To divide an amount into parts without losing minor units, use
// [Amount.Allocate] or [Amount.Split] instead.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	c, err := a.quo(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) quo(e decimal.Decimal) (Amount, error) {
	if !a.curr.IsValid() {
		return Amount{}, ErrMissingCurrency
	}
	if e.IsZero() {
		return Amount{}, errDivisionByZero
	}
	// a / e = coef(a) * 10^scale(e) / (coef(e) * 10^scale(a))
	num := new(big.Int).Mul(bigCoef(a.value), pow10(e.Scale()+a.curr.Scale()))
	den := new(big.Int).Mul(bigCoef(e), pow10(a.value.Scale()))
	d, err := quoHalfUp(num, den, a.curr.Scale(), a.value.IsNeg() != e.IsNeg())
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(a.curr, d), nil
}

// quoHalfUp divides num by den, rounds the quotient half away from zero to an
// integer, and returns it as a decimal with the given scale, negated if neg
// is true.
// Both num and den must be non-negative, and den must be positive.
func quoHalfUp(num, den *big.Int, scale int, neg bool) (decimal.Decimal, error) {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Lsh(r, 1).Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if q.Cmp(pow10(decimal.MaxPrec)) >= 0 {
		return decimal.Decimal{}, errAmountOverflow
	}
	d, err := decimalFromUnits(q.Uint64(), scale)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if neg && !d.IsZero() {
		d = d.Neg()
	}
	return d, nil
}

// bigCoef returns the coefficient of d, ignoring its sign.
func bigCoef(d decimal.Decimal) *big.Int {
	return new(big.Int).SetUint64(d.Coef())
}

// pow10 returns 10^n.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// ConvertTo returns the amount converted to the target currency at the given rate.
// The conversion rounds twice: the product a * rate is first rounded to the
// scale of the currency of a, and the result is then rounded to the scale of
// the target currency.
// See also method [ExchangeRate.Conv].
//
// ConvertTo returns an error if:
//   - the target currency is the zero value;
//   - the rate is not positive;
//   - the integer part of the result has too many digits.
func (a Amount) ConvertTo(target Currency, rate decimal.Decimal) (Amount, error) {
	c, err := a.convertTo(target, rate)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v to %v at %v: %w", a, target, rate, err)
	}
	return c, nil
}

func (a Amount) convertTo(target Currency, rate decimal.Decimal) (Amount, error) {
	if !target.IsValid() {
		return Amount{}, ErrMissingCurrency
	}
	if !rate.IsPos() {
		return Amount{}, fmt.Errorf("exchange rate must be positive")
	}
	b, err := a.mul(rate)
	if err != nil {
		return Amount{}, err
	}
	return newAmountSafe(target, b.value)
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// Sum returns the total of the amounts.
//
// Sum returns an error if there are no amounts, or if they are not all
// denominated in the same currency.
func Sum(amounts ...Amount) (Amount, error) {
	if len(amounts) == 0 {
		return Amount{}, fmt.Errorf("computing sum: no amounts")
	}
	var err error
	total := amounts[0]
	for _, b := range amounts[1:] {
		total, err = total.Add(b)
		if err != nil {
			return Amount{}, fmt.Errorf("computing sum: %w", err)
		}
	}
	return total, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, for example "EUR 7.14".
// The currency includes its exponent unless it is [DefaultScale],
// for example "BTC:8 0.00012345", so that amounts in currencies with the same
// code remain distinguishable.
// See also methods [Currency.MarshalText], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.curr.label() + " " + a.value.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | EUR 5.67    | Currency and amount        |
//	| %s, %v | JPY:0 567   | Currency and amount        |
//	| %q     | "EUR 5.67"  | Quoted currency and amount |
//	| %f     | 5.67        | Amount                     |
//	| %d     | 567         | Amount in minor units      |
//	| %c     | EUR         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// Precision is supported for the %f verb; the default precision is the scale
// of the currency, and values are rounded half away from zero.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V':
		writePadded(state, a.String())
	case 'q', 'Q':
		writePadded(state, `"`+a.String()+`"`)
	case 'c', 'C':
		writePadded(state, a.curr.Code())
	case 'f', 'F':
		d := a.value
		if p, ok := state.Precision(); ok {
			if r, err := roundHalfUp(d, p); err == nil {
				d = r
			}
		}
		writePadded(state, d.String())
	case 'd', 'D':
		s := a.value.String()
		if u, ok := a.MinorUnits(); ok {
			s = strconv.FormatInt(u, 10)
		}
		writePadded(state, s)
	default:
		writeBadVerb(state, verb, "money.Amount", a.String())
	}
}
