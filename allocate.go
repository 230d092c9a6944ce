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
	// ErrNoRatios is returned when an allocation has no ratios, or when all
	// ratios are zero and the amount is not.
	ErrNoRatios = errors.New("no ratios defined")
	// ErrNegativeRatio is returned when an allocation ratio is negative.
	ErrNegativeRatio = errors.New("negative ratio")
	// ErrDuplicateRatio is returned when an allocation key appears twice.
	ErrDuplicateRatio = errors.New("duplicate ratio key")
)

// Ratio is the weight of a keyed part of an allocation.
// See function [AllocateByKey].
type Ratio[K comparable] struct {
	Key    K
	Weight decimal.Decimal
}

// Allocate splits the amount into parts proportional to the weights, without
// losing or creating a single minor unit: the parts always sum up to the
// original amount. The i-th part corresponds to the i-th weight.
//
// Each part receives the integer number of minor units below its exact share.
// The units left over are handed out one at a time:
//
//  1. first to the parts whose exact share rounds up (half up), in order;
//  2. then, if units are still left, to every part with a non-zero weight,
//     in order, including parts that already received a unit.
//
// A part never receives more than two units above the integer part of its
// exact share, and a zero weight always yields a zero part.
// For example, EUR 1.00 allocated by 1:2 yields EUR 0.33 and EUR 0.67, and
// EUR 0.05 allocated by 3:7 yields EUR 0.02 and EUR 0.03.
// A negative amount is allocated as its absolute value with every part negated.
// See also methods [Amount.Split] and [AllocateByKey].
//
// Allocate returns an error if:
//   - there are no weights, or all weights are zero while the amount is not
//     zero ([ErrNoRatios]); a zero amount with all weights zero yields zero parts;
//   - any weight is negative ([ErrNegativeRatio]).
func (a Amount) Allocate(weights ...decimal.Decimal) ([]Amount, error) {
	parts, err := a.allocate(weights)
	if err != nil {
		return nil, fmt.Errorf("allocating %v by %v: %w", a, weights, err)
	}
	return parts, nil
}

func (a Amount) allocate(weights []decimal.Decimal) ([]Amount, error) {
	if len(weights) == 0 {
		return nil, ErrNoRatios
	}
	ws, sum, err := scaleWeights(weights)
	if err != nil {
		return nil, err
	}
	if sum.Sign() == 0 {
		if !a.IsZero() {
			return nil, ErrNoRatios
		}
		parts := make([]Amount, len(weights))
		for i := range parts {
			parts[i] = a
		}
		return parts, nil
	}

	units := allocateUnits(a.value.Coef(), ws, sum)

	parts := make([]Amount, len(units))
	for i, u := range units {
		d, err := decimalFromUnits(u, a.curr.Scale())
		if err != nil {
			return nil, err
		}
		parts[i] = newAmountUnsafe(a.curr, d.CopySign(a.value))
	}
	return parts, nil
}

// AllocateByKey is like [Amount.Allocate], but the parts are identified by keys.
// The order of ratios decides which keys receive the left over minor units.
// The result has exactly the keys of the ratios.
//
// AllocateByKey returns an error in the same cases as [Amount.Allocate], and
// also if a key appears more than once ([ErrDuplicateRatio]).
func AllocateByKey[K comparable](a Amount, ratios []Ratio[K]) (map[K]Amount, error) {
	seen := make(map[K]struct{}, len(ratios))
	weights := make([]decimal.Decimal, len(ratios))
	for i, r := range ratios {
		if _, ok := seen[r.Key]; ok {
			return nil, fmt.Errorf("allocating %v: key %v: %w", a, r.Key, ErrDuplicateRatio)
		}
		seen[r.Key] = struct{}{}
		weights[i] = r.Weight
	}
	parts, err := a.Allocate(weights...)
	if err != nil {
		return nil, err
	}
	res := make(map[K]Amount, len(ratios))
	for i, r := range ratios {
		res[r.Key] = parts[i]
	}
	return res, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice.
// It is the same as allocating by equal weights.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("splitting %v into %v parts: number of parts must be positive", a, parts)
	}
	one := decimal.MustNew(1, 0)
	weights := make([]decimal.Decimal, parts)
	for i := range weights {
		weights[i] = one
	}
	res, err := a.allocate(weights)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return res, nil
}

// scaleWeights converts the weights to integers sharing the largest scale
// among them, and returns them with their sum.
func scaleWeights(weights []decimal.Decimal) ([]*big.Int, *big.Int, error) {
	scale := 0
	for i, w := range weights {
		if w.IsNeg() {
			return nil, nil, fmt.Errorf("weight %v at %v: %w", w, i, ErrNegativeRatio)
		}
		scale = max(scale, w.Scale())
	}
	sum := new(big.Int)
	ws := make([]*big.Int, len(weights))
	for i, w := range weights {
		n := bigCoef(w)
		if k := scale - w.Scale(); k > 0 {
			n.Mul(n, pow10(k))
		}
		ws[i] = n
		sum.Add(sum, n)
	}
	return ws, sum, nil
}

// allocateUnits distributes total minor units proportionally to the weights.
// The sum of weights must be positive.
// The returned units always sum up to total.
func allocateUnits(total uint64, weights []*big.Int, sum *big.Int) []uint64 {
	n := len(weights)
	units := make([]uint64, n)
	roundsUp := make([]bool, n) // exact share rounds half up

	t := new(big.Int).SetUint64(total)
	var prod, quo, rem big.Int
	allocated := uint64(0)
	for i, w := range weights {
		if w.Sign() == 0 {
			continue
		}
		prod.Mul(t, w)
		quo.QuoRem(&prod, sum, &rem)
		units[i] = quo.Uint64()
		allocated += units[i]
		if rem.Sign() != 0 {
			rem.Lsh(&rem, 1)
			roundsUp[i] = rem.Cmp(sum) >= 0
		}
	}

	// The leftover equals the sum of the fractional shares, which is less than
	// the number of inexact parts.
	leftover := total - allocated
	for i := 0; i < n && leftover > 0; i++ {
		if roundsUp[i] {
			units[i]++
			leftover--
		}
	}
	// The leftover is still less than the number of parts with a non-zero
	// weight, so a single pass in order exhausts it.
	for i := 0; i < n && leftover > 0; i++ {
		if weights[i].Sign() != 0 {
			units[i]++
			leftover--
		}
	}
	return units
}

// decimalFromUnits returns units / 10^scale as a non-negative decimal.
func decimalFromUnits(units uint64, scale int) (decimal.Decimal, error) {
	if units <= math.MaxInt64 {
		return decimal.New(int64(units), scale)
	}
	s := strconv.FormatUint(units, 10)
	if scale > 0 {
		for len(s) <= scale {
			s = "0" + s
		}
		s = s[:len(s)-scale] + "." + s[len(s)-scale:]
	}
	return decimal.Parse(s)
}
