/*
Package money implements exact monetary values in various currencies and
the allocation of amounts into parts without losing a single minor unit.
It leverages the [decimal] package's capabilities for handling decimal
floating-point numbers and combines it with a [Currency] struct for
representing different currencies.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Currencies with arbitrary exponents, including sub-cent precision
  - Currency-checked arithmetic and comparison operations
  - Allocation by arbitrary ratios with a fair remainder distribution
  - Conversion of monetary values using exchange rates

# Representation

An [Amount] consists of a [Currency] and a decimal.Decimal value, which is
always rounded to the exponent of the currency.
A Currency is a comparable value made of a code and an exponent.
Two currencies with the same code but different exponents are different
currencies, and amounts in them cannot be combined.

Currencies given by a bare code, like "EUR", have the exponent [DefaultScale].
Use [NewCurr] or [CurrencyDef] for other exponents, or a [Registry] to resolve
codes to registered exponents, for example to the ISO 4217 ones.

# Allocation

[Amount.Allocate] and [AllocateByKey] split an amount proportionally to a
list of weights. The computation is carried out on integer minor units with
exact rational shares, so the parts always sum up to the original amount.
Minor units left over after rounding down are first given to the parts whose
exact share rounds up, and only then to all parts with a non-zero weight
in order:

	EUR 1.00 by 1:2   -> EUR 0.33, EUR 0.67
	EUR 0.05 by 3:7   -> EUR 0.02, EUR 0.03
	EUR 10.00 by 1:1:1 -> EUR 3.34, EUR 3.33, EUR 3.33

# Rounding

Construction and arithmetic round half away from zero to the exponent of the
currency. Conversion with [Amount.ConvertTo] rounds twice, first to the
source currency and then to the target currency.

# Errors

Constructors and operations return errors that wrap one of the exported
sentinel errors where the caller may want to react:
[ErrInvalidCurrency], [ErrMissingCurrency], [ErrCurrencyMismatch],
[ErrNoRatios], [ErrNegativeRatio] and [ErrDuplicateRatio].
Nothing is retried and no partial results are returned.
The Must functions panic instead and are meant for initialization.
*/
package money
