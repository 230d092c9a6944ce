package money

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

//go:generate go run scripts/currency/codegen.go

// DefaultScale is the exponent assumed for a currency given by its bare code.
const DefaultScale = 2

// maxCodeLen is the longest accepted currency code.
const maxCodeLen = 12

var (
	// ErrInvalidCurrency is returned when a currency code or definition is
	// absent or malformed.
	ErrInvalidCurrency = errors.New("invalid currency")
	// ErrCurrency is wrapped by [ErrCurrencyMismatch] and [ErrMissingCurrency],
	// so a single errors.Is check catches both.
	ErrCurrency = errors.New("currency error")
	// ErrMissingCurrency is returned when an amount is constructed without a currency.
	ErrMissingCurrency = fmt.Errorf("%w: missing currency", ErrCurrency)
)

// Currency type represents a currency identified by its code and the number
// of decimal digits of its minor unit (the exponent).
// The zero value has no code and is not a valid currency.
//
// Two currencies are equal if and only if both their codes and their exponents
// are equal, so "EUR" with exponent 2 and "EUR" with exponent 4 are distinct.
// This makes it possible to accumulate sub-cent values in a currency that is
// later rounded to its usual precision.
//
// Currency is a comparable value type, and the == operator is the same
// as [Currency.Equal]. It is safe for concurrent use by multiple goroutines.
type Currency struct {
	code  string
	scale uint8
}

// CurrencyDef is the explicit {code, exponent} definition of a currency.
// It is the serialized form of a currency whose exponent is not [DefaultScale].
type CurrencyDef struct {
	Code     string `json:"code" cbor:"code"`
	Exponent int    `json:"exponent" cbor:"exponent"`
}

// Curr converts the definition to a currency.
// See also constructor [NewCurr].
func (d CurrencyDef) Curr() (Currency, error) {
	return NewCurr(d.Code, d.Exponent)
}

// NewCurr returns a currency with the given code and exponent.
// The code is case-insensitive and is stored in upper case.
//
// NewCurr returns an error if:
//   - the code is empty, longer than 12 characters, or contains characters
//     other than ASCII letters and digits;
//   - the exponent is negative or greater than [decimal.MaxScale].
func NewCurr(code string, exp int) (Currency, error) {
	norm, err := normCode(code)
	if err != nil {
		return Currency{}, err
	}
	if exp < 0 || exp > decimal.MaxScale {
		return Currency{}, fmt.Errorf("%w: exponent %v is out of range [0, %v]", ErrInvalidCurrency, exp, decimal.MaxScale)
	}
	return Currency{code: norm, scale: uint8(exp)}, nil //nolint:gosec
}

// MustNewCurr is like [NewCurr] but panics if the currency cannot be constructed.
// It simplifies safe initialization of global variables holding currencies.
func MustNewCurr(code string, exp int) Currency {
	c, err := NewCurr(code, exp)
	if err != nil {
		panic(fmt.Sprintf("NewCurr(%q, %v) failed: %v", code, exp, err))
	}
	return c
}

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	EUR
//	eur
//	BTC:8
//
// A bare code denotes a currency with the exponent [DefaultScale].
// The code may be followed by a colon and an explicit exponent, which is the
// text form produced by [Currency.MarshalText].
//
// ParseCurr returns an error if the string does not represent a valid currency.
func ParseCurr(curr string) (Currency, error) {
	code, exp, ok := strings.Cut(curr, ":")
	if !ok {
		return NewCurr(code, DefaultScale)
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return Currency{}, fmt.Errorf("%w: exponent %q is not an integer", ErrInvalidCurrency, exp)
	}
	return NewCurr(code, e)
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

func normCode(code string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("%w: empty code", ErrInvalidCurrency)
	}
	if len(code) > maxCodeLen {
		return "", fmt.Errorf("%w: code %q is longer than %v characters", ErrInvalidCurrency, code, maxCodeLen)
	}
	for i := 0; i < len(code); i++ {
		switch ch := code[i]; {
		case ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'z':
		default:
			return "", fmt.Errorf("%w: code %q contains %q", ErrInvalidCurrency, code, ch)
		}
	}
	return strings.ToUpper(code), nil
}

// Code returns the code of the currency, for example "EUR".
func (c Currency) Code() string {
	return c.code
}

// Scale returns the exponent of the currency, that is the number of digits
// after the decimal point required for representing its minor unit.
//   - A scale of 0 indicates a currency without minor units, like the Japanese Yen.
//   - A scale of 2 indicates a currency whose minor unit is 0.01, like the cent.
//   - Larger scales model sub-cent precision, for example for accumulation buckets.
func (c Currency) Scale() int {
	return int(c.scale)
}

// IsValid returns true if the currency has a code.
// Only the zero value is not valid.
func (c Currency) IsValid() bool {
	return c.code != ""
}

// Def returns the explicit definition of the currency.
func (c Currency) Def() CurrencyDef {
	return CurrencyDef{Code: c.code, Exponent: c.Scale()}
}

// Equal returns true if both the codes and the exponents of the currencies match.
func (c Currency) Equal(d Currency) bool {
	return c == d
}

// Matches reports whether v denotes the same currency as c.
// The accepted variants are:
//
//	Currency, *Currency   compared with [Currency.Equal]
//	CurrencyDef           compared by code and exponent
//	string                parsed with [ParseCurr]
//
// Any other value, including nil and malformed input, does not match.
func (c Currency) Matches(v any) bool {
	switch v := v.(type) {
	case Currency:
		return c.Equal(v)
	case *Currency:
		return v != nil && c.Equal(*v)
	case CurrencyDef:
		d, err := v.Curr()
		return err == nil && c.Equal(d)
	case string:
		d, err := ParseCurr(v)
		return err == nil && c.Equal(d)
	default:
		return false
	}
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the currency.
// String does not include the exponent, use [Currency.MarshalText] for a lossless form.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.code
}

// label returns the bare code if the exponent is [DefaultScale],
// and "CODE:exponent" otherwise.
func (c Currency) label() string {
	if c.hasDefaultScale() {
		return c.code
	}
	return c.code + ":" + strconv.Itoa(c.Scale())
}

// hasDefaultScale returns true if the currency can be serialized as a bare code.
func (c Currency) hasDefaultScale() bool {
	return c.Scale() == DefaultScale
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText returns the bare code if the exponent is [DefaultScale],
// and "CODE:exponent" otherwise.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("marshaling %T: %w", c, ErrInvalidCurrency)
	}
	text := []byte(c.code)
	if !c.hasDefaultScale() {
		text = append(text, ':')
		text = strconv.AppendInt(text, int64(c.scale), 10)
	}
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON returns a JSON string with the bare code if the exponent is
// [DefaultScale], and a [CurrencyDef] object otherwise:
//
//	"EUR"
//	{"code":"BTC","exponent":8}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("marshaling %T: %w", c, ErrInvalidCurrency)
	}
	if c.hasDefaultScale() {
		return json.Marshal(c.code)
	}
	return json.Marshal(c.Def())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts both forms produced by [Currency.MarshalJSON].
// A definition without an exponent uses [DefaultScale].
// Unlike most unmarshalers, UnmarshalJSON rejects null.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	var err error
	*c, err = parseJSONCurr(text)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

func parseJSONCurr(text []byte) (Currency, error) {
	text = bytes.TrimSpace(text)
	switch {
	case len(text) == 0, string(text) == "null":
		return Currency{}, fmt.Errorf("%w: null", ErrInvalidCurrency)
	case text[0] == '"':
		var code string
		if err := json.Unmarshal(text, &code); err != nil {
			return Currency{}, err
		}
		return ParseCurr(code)
	case text[0] == '{':
		var def struct {
			Code     string `json:"code"`
			Exponent *int   `json:"exponent"`
		}
		if err := json.Unmarshal(text, &def); err != nil {
			return Currency{}, err
		}
		exp := DefaultScale
		if def.Exponent != nil {
			exp = *def.Exponent
		}
		return NewCurr(def.Code, exp)
	default:
		return Currency{}, fmt.Errorf("%w: unexpected JSON %s", ErrInvalidCurrency, text)
	}
}

// Scan implements the [sql.Scanner] interface.
// The column must hold the text form, see [Currency.MarshalText].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%w: null", ErrInvalidCurrency)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Currency{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// It returns the text form, see [Currency.MarshalText].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | EUR     | Currency        |
//	| %q         | "EUR"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	switch verb {
	case 'c', 'C', 's', 'S', 'v', 'V':
		writePadded(state, c.code)
	case 'q', 'Q':
		writePadded(state, `"`+c.code+`"`)
	default:
		writeBadVerb(state, verb, "money.Currency", c.code)
	}
}

// writePadded writes s honouring the width and the '-' flag of the state.
func writePadded(state fmt.State, s string) {
	w, ok := state.Width()
	if !ok || w <= len(s) {
		state.Write([]byte(s)) //nolint:errcheck
		return
	}
	pad := strings.Repeat(" ", w-len(s))
	if state.Flag('-') {
		state.Write([]byte(s + pad)) //nolint:errcheck
		return
	}
	state.Write([]byte(pad + s)) //nolint:errcheck
}

func writeBadVerb(state fmt.State, verb rune, typ, s string) {
	//nolint:errcheck
	state.Write([]byte("%!" + string(verb) + "(" + typ + "=" + s + ")"))
}
