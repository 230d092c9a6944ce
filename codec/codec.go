// Package codec implements the CBOR wire form of amounts and allocations.
//
// The records use the same field names as the JSON form of [money.Amount]:
// an amount is a map with the keys "amount" and "currency", where the amount
// is a decimal string and the currency is either its bare code or, when the
// exponent differs from [money.DefaultScale], a map with the keys "code" and
// "exponent". Encoding is canonical, so equal values always encode to equal
// bytes.
package codec

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/centwise/money"
)

// CBOR major types of the currency variants.
const (
	majorText = 3
	majorMap  = 5
)

var errEmptyAllocation = errors.New("empty allocation")

type amountRecord struct {
	Amount   string          `cbor:"amount"`
	Currency cbor.RawMessage `cbor:"currency"`
}

type allocationRecord struct {
	Currency cbor.RawMessage   `cbor:"currency"`
	Parts    map[string]string `cbor:"parts"`
}

type currencyRecord struct {
	Code     string `cbor:"code"`
	Exponent *int   `cbor:"exponent"`
}

// Codec encodes and decodes amounts and allocations.
// It is safe for concurrent use by multiple goroutines.
type Codec struct {
	encoder      cbor.EncMode
	decoder      cbor.DecMode
	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
}

// NewCodec creates a new Codec.
func NewCodec() *Codec {

	// We should never fail here if the options are valid, so use panic to keep
	// the function signature for the codec clean.
	encoder, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decoder, err := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	compressor, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic(err)
	}
	decompressor, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}

	c := Codec{
		encoder:      encoder,
		decoder:      decoder,
		compressor:   compressor,
		decompressor: decompressor,
	}

	return &c
}

// EncodeAmount returns the CBOR encoding of the amount.
func (c *Codec) EncodeAmount(a money.Amount) ([]byte, error) {
	curr, err := c.encodeCurr(a.Curr())
	if err != nil {
		return nil, fmt.Errorf("could not encode currency: %w", err)
	}
	rec := amountRecord{
		Amount:   a.Decimal().String(),
		Currency: curr,
	}
	data, err := c.encoder.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("could not encode amount: %w", err)
	}
	return data, nil
}

// DecodeAmount decodes an amount encoded by [Codec.EncodeAmount].
// The amount is rounded to the exponent of its currency.
func (c *Codec) DecodeAmount(data []byte) (money.Amount, error) {
	var rec amountRecord
	err := c.decoder.Unmarshal(data, &rec)
	if err != nil {
		return money.Amount{}, fmt.Errorf("could not decode amount: %w", err)
	}
	curr, err := c.decodeCurr(rec.Currency)
	if err != nil {
		return money.Amount{}, fmt.Errorf("could not decode currency: %w", err)
	}
	a, err := money.ParseAmountIn(curr, rec.Amount)
	if err != nil {
		return money.Amount{}, fmt.Errorf("could not decode amount: %w", err)
	}
	return a, nil
}

// EncodeAllocation returns the CBOR encoding of an allocation.
// The currency is stored once for all parts.
//
// EncodeAllocation returns an error if the allocation has no parts, or if the
// parts are not all denominated in the same currency ([money.ErrCurrencyMismatch]).
func (c *Codec) EncodeAllocation(parts map[string]money.Amount) ([]byte, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("could not encode allocation: %w", errEmptyAllocation)
	}
	var curr money.Currency
	rec := allocationRecord{
		Parts: make(map[string]string, len(parts)),
	}
	for key, a := range parts {
		if len(rec.Parts) == 0 {
			curr = a.Curr()
		}
		if a.Curr() != curr {
			return nil, fmt.Errorf("could not encode part %q: %w", key, money.ErrCurrencyMismatch)
		}
		rec.Parts[key] = a.Decimal().String()
	}
	var err error
	rec.Currency, err = c.encodeCurr(curr)
	if err != nil {
		return nil, fmt.Errorf("could not encode currency: %w", err)
	}
	data, err := c.encoder.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("could not encode allocation: %w", err)
	}
	return data, nil
}

// DecodeAllocation decodes an allocation encoded by [Codec.EncodeAllocation].
func (c *Codec) DecodeAllocation(data []byte) (map[string]money.Amount, error) {
	var rec allocationRecord
	err := c.decoder.Unmarshal(data, &rec)
	if err != nil {
		return nil, fmt.Errorf("could not decode allocation: %w", err)
	}
	curr, err := c.decodeCurr(rec.Currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode currency: %w", err)
	}
	if len(rec.Parts) == 0 {
		return nil, fmt.Errorf("could not decode allocation: %w", errEmptyAllocation)
	}
	parts := make(map[string]money.Amount, len(rec.Parts))
	for key, s := range rec.Parts {
		a, err := money.ParseAmountIn(curr, s)
		if err != nil {
			return nil, fmt.Errorf("could not decode part %q: %w", key, err)
		}
		parts[key] = a
	}
	return parts, nil
}

// Compress compresses the data with zstd.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	compressed := c.compressor.EncodeAll(data, nil)
	return compressed, nil
}

// Decompress reverses [Codec.Compress].
func (c *Codec) Decompress(compressed []byte) ([]byte, error) {
	data, err := c.decompressor.DecodeAll(compressed, nil)
	return data, err
}

// MarshalAllocation encodes and compresses an allocation.
func (c *Codec) MarshalAllocation(parts map[string]money.Amount) ([]byte, error) {
	data, err := c.EncodeAllocation(parts)
	if err != nil {
		return nil, err
	}
	compressed, err := c.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("could not compress data: %w", err)
	}
	return compressed, nil
}

// UnmarshalAllocation decompresses and decodes an allocation produced by
// [Codec.MarshalAllocation].
func (c *Codec) UnmarshalAllocation(compressed []byte) (map[string]money.Amount, error) {
	data, err := c.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("could not decompress data: %w", err)
	}
	return c.DecodeAllocation(data)
}

func (c *Codec) encodeCurr(curr money.Currency) (cbor.RawMessage, error) {
	if !curr.IsValid() {
		return nil, money.ErrMissingCurrency
	}
	if curr.Scale() == money.DefaultScale {
		return c.encoder.Marshal(curr.Code())
	}
	return c.encoder.Marshal(curr.Def())
}

func (c *Codec) decodeCurr(raw cbor.RawMessage) (money.Currency, error) {
	if len(raw) == 0 || raw[0] == 0xf6 {
		return money.Currency{}, money.ErrMissingCurrency
	}
	switch raw[0] >> 5 {
	case majorText:
		var code string
		err := c.decoder.Unmarshal(raw, &code)
		if err != nil {
			return money.Currency{}, err
		}
		return money.ParseCurr(code)
	case majorMap:
		var rec currencyRecord
		err := c.decoder.Unmarshal(raw, &rec)
		if err != nil {
			return money.Currency{}, err
		}
		exp := money.DefaultScale
		if rec.Exponent != nil {
			exp = *rec.Exponent
		}
		return money.NewCurr(rec.Code, exp)
	default:
		return money.Currency{}, fmt.Errorf("%w: unexpected CBOR type", money.ErrInvalidCurrency)
	}
}
