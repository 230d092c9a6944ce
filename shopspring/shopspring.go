// Package shopspring converts between amounts and the decimals of
// github.com/shopspring/decimal, so that code built on that package can use
// currency-safe amounts and exact allocation.
package shopspring

import (
	"fmt"
	"math/big"

	gv "github.com/govalues/decimal"
	"github.com/shopspring/decimal"

	"github.com/centwise/money"
)

// ToDecimal returns the value of the amount as a decimal.
// The conversion is exact and keeps the scale of the currency, so
// EUR 7.10 becomes 7.10 and not 7.1.
func ToDecimal(a money.Amount) decimal.Decimal {
	d := a.Decimal()
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return decimal.NewFromBigInt(coef, -int32(d.Scale())) //nolint:gosec
}

// FromDecimal returns an amount of the currency equal to the decimal rounded
// half away from zero to the scale of the currency.
//
// FromDecimal returns an error if the currency is the zero value
// ([money.ErrMissingCurrency]) or the rounded value has too many digits,
// see [money.NewAmount].
func FromDecimal(curr money.Currency, d decimal.Decimal) (money.Amount, error) {
	if !curr.IsValid() {
		return money.Amount{}, fmt.Errorf("converting %v: %w", d, money.ErrMissingCurrency)
	}
	scale := int32(curr.Scale()) //nolint:gosec
	a, err := money.ParseAmountIn(curr, d.Round(scale).StringFixed(scale))
	if err != nil {
		return money.Amount{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return a, nil
}

// Weights converts allocation weights to the decimals accepted by
// [money.Amount.Allocate].
// Weights must be exact: a weight with more than 19 significant digits is an
// error rather than being rounded.
func Weights(ws []decimal.Decimal) ([]gv.Decimal, error) {
	res := make([]gv.Decimal, len(ws))
	for i, w := range ws {
		d, err := toGV(w)
		if err != nil {
			return nil, fmt.Errorf("converting weight %v at %v: %w", w, i, err)
		}
		res[i] = d
	}
	return res, nil
}

// Allocate is like [money.Amount.Allocate], but takes the weights as
// shopspring decimals.
func Allocate(a money.Amount, ws ...decimal.Decimal) ([]money.Amount, error) {
	weights, err := Weights(ws)
	if err != nil {
		return nil, err
	}
	return a.Allocate(weights...)
}

func toGV(d decimal.Decimal) (gv.Decimal, error) {
	coef := d.Coefficient()
	exp := d.Exponent()
	if exp > 0 {
		coef.Mul(coef, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
		exp = 0
	}
	if len(new(big.Int).Abs(coef).String()) > gv.MaxPrec || -exp > gv.MaxScale {
		return gv.Decimal{}, fmt.Errorf("%v has too many digits", d)
	}
	if !coef.IsInt64() {
		return gv.Parse(decimal.NewFromBigInt(coef, exp).String())
	}
	return gv.New(coef.Int64(), int(-exp))
}
