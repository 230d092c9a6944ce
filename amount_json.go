package money

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// amountJSON is the serialized form of an amount.
type amountJSON struct {
	Amount   string   `json:"amount"`
	Currency Currency `json:"currency"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is a string with exactly as many decimal places as the exponent
// of its currency, and the currency is serialized with [Currency.MarshalJSON]:
//
//	{"amount":"7.14","currency":"EUR"}
//	{"amount":"0.00012345","currency":{"code":"BTC","exponent":8}}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.curr.IsValid() {
		return nil, fmt.Errorf("marshaling %T: %w", a, ErrMissingCurrency)
	}
	return json.Marshal(amountJSON{
		Amount:   a.value.String(),
		Currency: a.curr,
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts the form produced by [Amount.MarshalJSON], with the amount given
// either as a string or as a number. The amount is rounded to the exponent of
// the currency.
//
// UnmarshalJSON returns [ErrMissingCurrency] if the currency is absent or null.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	var err error
	*a, err = parseJSONAmount(text)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

func parseJSONAmount(text []byte) (Amount, error) {
	var raw struct {
		Amount   json.RawMessage `json:"amount"`
		Currency json.RawMessage `json:"currency"`
	}
	if err := json.Unmarshal(text, &raw); err != nil {
		return Amount{}, err
	}
	if len(raw.Currency) == 0 || string(raw.Currency) == "null" {
		return Amount{}, ErrMissingCurrency
	}
	c, err := parseJSONCurr(raw.Currency)
	if err != nil {
		return Amount{}, err
	}
	s := string(bytes.TrimSpace(raw.Amount))
	switch {
	case s == "", s == "null":
		return Amount{}, fmt.Errorf("missing amount")
	case s[0] == '"':
		if err := json.Unmarshal(raw.Amount, &s); err != nil {
			return Amount{}, err
		}
	}
	return ParseAmountIn(c, s)
}
