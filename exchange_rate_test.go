package money

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/govalues/decimal"
)

func TestExchangeRate_ZeroValue(t *testing.T) {
	got := ExchangeRate{}
	if got.Base().IsValid() || got.Quote().IsValid() {
		t.Errorf("ExchangeRate{} has currencies %v/%v, want none", got.Base().Def(), got.Quote().Def())
	}
	if _, err := got.Inv(); err == nil {
		t.Errorf("ExchangeRate{}.Inv() did not fail")
	}
}

func TestExchangeRate_Sizeof(t *testing.T) {
	r := ExchangeRate{}
	s := unsafe.Sizeof(r)
	if s > 72 {
		t.Errorf("unsafe.Sizeof(%v) = %v, want at most %v", r, s, 72)
	}
}

func TestNewExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q, d string
		}{
			{"EUR", "USD", "1.0995"},
			{"EUR", "JPY:0", "160.55"},
			{"EUR", "EUR", "1"},
			{"EUR", "EUR", "1.000"},
			{"EUR", "EUR:4", "1.0001"},
		}
		for _, tt := range tests {
			b, q := MustParseCurr(tt.b), MustParseCurr(tt.q)
			d := decimal.MustParse(tt.d)
			got, err := NewExchRate(b, q, d)
			if err != nil {
				t.Errorf("NewExchRate(%v, %v, %v) failed: %v", tt.b, tt.q, d, err)
				continue
			}
			if got.Base() != b || got.Quote() != q || got.Decimal() != d {
				t.Errorf("NewExchRate(%v, %v, %v) = %v", tt.b, tt.q, d, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		eur, usd := MustParseCurr("EUR"), MustParseCurr("USD")
		tests := map[string]struct {
			b, q Currency
			d    string
			want error
		}{
			"no base":        {Currency{}, usd, "1", ErrMissingCurrency},
			"no quote":       {eur, Currency{}, "1", ErrMissingCurrency},
			"zero rate":      {eur, usd, "0", nil},
			"negative rate":  {eur, usd, "-1.1", nil},
			"same currency":  {eur, eur, "2", nil},
			"same currency2": {usd, usd, "0.9", nil},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				d := decimal.MustParse(tt.d)
				_, err := NewExchRate(tt.b, tt.q, d)
				if err == nil {
					t.Errorf("NewExchRate(%v, %v, %v) did not fail", tt.b, tt.q, d)
					return
				}
				if tt.want != nil && !errors.Is(err, tt.want) {
					t.Errorf("NewExchRate(%v, %v, %v) = %v, want %v", tt.b, tt.q, d, err, tt.want)
				}
			})
		}
	})
}

func TestParseExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q, d, want string
		}{
			{"EUR", "USD", "1.0995", "EUR/USD 1.0995"},
			{"eur", "usd", "1.1", "EUR/USD 1.1"},
			{"BTC:8", "EUR", "55000.12", "BTC:8/EUR 55000.12"},
		}
		for _, tt := range tests {
			got, err := ParseExchRate(tt.b, tt.q, tt.d)
			if err != nil {
				t.Errorf("ParseExchRate(%q, %q, %q) failed: %v", tt.b, tt.q, tt.d, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseExchRate(%q, %q, %q) = %q, want %q", tt.b, tt.q, tt.d, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			b, q, d string
		}{
			"base":     {"", "USD", "1"},
			"quote":    {"EUR", "U S", "1"},
			"exponent": {"EUR:x", "USD", "1"},
			"rate 1":   {"EUR", "USD", "x"},
			"rate 2":   {"EUR", "USD", "0"},
			"rate 3":   {"EUR", "USD", "-1"},
			"same":     {"EUR", "EUR", "2"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseExchRate(tt.b, tt.q, tt.d)
				if err == nil {
					t.Errorf("ParseExchRate(%q, %q, %q) did not fail", tt.b, tt.q, tt.d)
				}
			})
		}
	})
}

func TestMustParseExchRate(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseExchRate(\"EUR\", \"USD\", \"0\") did not panic")
			}
		}()
		MustParseExchRate("EUR", "USD", "0")
	})
}

func TestExchangeRate_Conv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q, r, d, want string
		}{
			{"EUR", "USD", "1.0995", "10", "11.00"},
			{"EUR", "USD", "1.0994", "10", "10.99"},
			{"EUR", "JPY:0", "160.55", "1", "161"},
			{"EUR", "JPY:0", "2.4951", "1", "3"},
			{"EUR", "EUR", "1", "7.14", "7.14"},
			{"EUR", "EUR:4", "1", "7.14", "7.1400"},
			{"EUR:4", "EUR", "1", "7.1449", "7.14"},
			{"EUR:4", "EUR", "1", "7.1450", "7.15"},
			{"USD", "EUR", "0.9", "-10", "-9"},
		}
		for _, tt := range tests {
			r := MustParseExchRate(tt.b, tt.q, tt.r)
			a := MustParseAmount(tt.b, tt.d)
			got, err := r.Conv(a)
			if err != nil {
				t.Errorf("%v.Conv(%v) failed: %v", r, a, err)
				continue
			}
			want := MustParseAmount(tt.q, tt.want)
			if !got.Equal(want) {
				t.Errorf("%v.Conv(%v) = %q, want %q", r, a, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		r := MustParseExchRate("EUR", "USD", "1.0995")
		tests := map[string]Amount{
			"quote":    MustParseAmount("USD", "1"),
			"exponent": MustParseAmount("EUR:4", "1"),
			"zero":     {},
		}
		for name, a := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := r.Conv(a)
				if !errors.Is(err, ErrCurrencyMismatch) {
					t.Errorf("%v.Conv(%v) = %v, want %v", r, a, err, ErrCurrencyMismatch)
				}
			})
		}
	})
}

func TestExchangeRate_Inv(t *testing.T) {
	tests := []struct {
		b, q, d, want string
	}{
		{"EUR", "USD", "1.25", "0.8"},
		{"EUR", "USD", "2", "0.5"},
		{"EUR", "USD", "3", "0.3333333333333333333"},
		{"EUR", "EUR", "1", "1"},
	}
	for _, tt := range tests {
		r := MustParseExchRate(tt.b, tt.q, tt.d)
		got, err := r.Inv()
		if err != nil {
			t.Errorf("%v.Inv() failed: %v", r, err)
			continue
		}
		if got.Base() != r.Quote() || got.Quote() != r.Base() {
			t.Errorf("%v.Inv() = %v, want %v/%v", r, got, r.Quote(), r.Base())
		}
		want := decimal.MustParse(tt.want)
		if got.Decimal().Cmp(want) != 0 {
			t.Errorf("%v.Inv() = %v, want %v", r, got.Decimal(), want)
		}
	}
}

func TestExchangeRate_String(t *testing.T) {
	tests := []struct {
		b, q, d, want string
	}{
		{"EUR", "USD", "1.0995", "EUR/USD 1.0995"},
		{"USD", "JPY:0", "151.20", "USD/JPY:0 151.20"},
		{"EUR", "EUR", "1", "EUR/EUR 1"},
	}
	for _, tt := range tests {
		r := MustParseExchRate(tt.b, tt.q, tt.d)
		got := r.String()
		if got != tt.want {
			t.Errorf("%v.String() = %q, want %q", r, got, tt.want)
		}
	}
}
