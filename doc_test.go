package money_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/centwise/money"
	"github.com/govalues/decimal"
)

func TaxAmount(priceAfterTax money.Amount, taxRate decimal.Decimal) (money.Amount, money.Amount, error) {
	// Price
	one := taxRate.One()
	taxRate, err := taxRate.Add(one)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}

	priceBeforeTax, err := priceAfterTax.Quo(taxRate)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}

	// Tax Amount
	taxAmount, err := priceAfterTax.Sub(priceBeforeTax)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}

	return priceBeforeTax, taxAmount, nil
}

// In this example, the sales tax amount is calculated for a product with
// a given price after tax, using a specified tax rate.
func Example_taxCalculation() {
	priceAfterTax := money.MustParseAmount("USD", "10")
	vatRate := decimal.MustParse("0.065")

	priceBeforeTax, vatAmount, err := TaxAmount(priceAfterTax, vatRate)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price (before tax) = %v\n", priceBeforeTax)
	fmt.Printf("VAT %-6k         = %v\n", vatRate, vatAmount)
	fmt.Printf("Price (after tax)  = %v\n", priceAfterTax)

	// Output:
	// Price (before tax) = USD 9.39
	// VAT 6.5%           = USD 0.61
	// Price (after tax)  = USD 10.00
}

// In this example, a restaurant bill is shared by three guests according to
// what each of them ordered. The tip is split equally.
func Example_billSharing() {
	bill := money.MustParseAmount("EUR", "87.40")
	tip := money.MustParseAmount("EUR", "10.00")

	shares, err := money.AllocateByKey(bill, []money.Ratio[string]{
		{Key: "Ann", Weight: decimal.MustParse("24.90")},
		{Key: "Ben", Weight: decimal.MustParse("31.50")},
		{Key: "Cid", Weight: decimal.MustParse("19.00")},
	})
	if err != nil {
		panic(err)
	}
	tips, err := tip.Split(3)
	if err != nil {
		panic(err)
	}

	for i, guest := range []string{"Ann", "Ben", "Cid"} {
		total, err := shares[guest].Add(tips[i])
		if err != nil {
			panic(err)
		}
		fmt.Printf("%v pays %v\n", guest, total)
	}
	// Output:
	// Ann pays EUR 32.21
	// Ben pays EUR 39.84
	// Cid pays EUR 25.35
}

func ParseStripe(reg *money.Registry, currency string, amount int64) (money.Amount, error) {
	// Stripe uses ISO 4217 codes in lower case
	curr, err := reg.Lookup(currency)
	if err != nil {
		return money.Amount{}, err
	}
	return money.NewAmountFromMinorUnits(curr, amount)
}

// This is an example of how to parse a monetary amount formatted as
// [Stripe API] minor units.
//
// [Stripe API]: https://stripe.com/docs/api/prices/object
func ExampleNewAmountFromMinorUnits_stripe() {
	reg := money.NewISORegistry()
	fmt.Println(ParseStripe(reg, "usd", 567))
	fmt.Println(ParseStripe(reg, "jpy", 567))
	fmt.Println(ParseStripe(reg, "omr", 567))
	// Output:
	// USD 5.67 <nil>
	// JPY:0 567 <nil>
	// OMR:3 0.567 <nil>
}

func ExampleNewAmountFromMinorUnits() {
	eur := money.MustParseCurr("EUR")
	fmt.Println(money.NewAmountFromMinorUnits(eur, 714))
	fmt.Println(money.NewAmountFromMinorUnits(eur, -5))
	// Output:
	// EUR 7.14 <nil>
	// EUR -0.05 <nil>
}

func ExampleNewAmount() {
	eur := money.MustParseCurr("EUR")
	fmt.Println(money.NewAmount(eur, decimal.MustParse("1.005")))
	fmt.Println(money.NewAmount(eur, decimal.MustParse("-1.005")))
	_, err := money.NewAmount(money.Currency{}, decimal.MustParse("1"))
	fmt.Println(errors.Is(err, money.ErrMissingCurrency))
	// Output:
	// EUR 1.01 <nil>
	// EUR -1.01 <nil>
	// true
}

func ExampleNewAmountFromFloat64() {
	eur := money.MustParseCurr("EUR")
	fmt.Println(money.NewAmountFromFloat64(eur, 0.1+0.2))
	// Output: EUR 0.30 <nil>
}

func ExampleParseAmount() {
	fmt.Println(money.ParseAmount("EUR", "7.14"))
	fmt.Println(money.ParseAmount("BTC:8", "0.5"))
	fmt.Println(money.ParseAmount("JPY:0", "1234.5"))
	// Output:
	// EUR 7.14 <nil>
	// BTC:8 0.50000000 <nil>
	// JPY:0 1235 <nil>
}

func ExampleMustParseAmount() {
	fmt.Println(money.MustParseAmount("EUR", "7.14"))
	// Output: EUR 7.14
}

func ExampleAmount_MinorUnits() {
	a := money.MustParseAmount("EUR", "7.14")
	b := money.MustParseAmount("JPY:0", "100")
	fmt.Println(a.MinorUnits())
	fmt.Println(b.MinorUnits())
	// Output:
	// 714 true
	// 100 true
}

func ExampleAmount_Allocate() {
	a := money.MustParseAmount("EUR", "1.00")
	fmt.Println(a.Allocate(decimal.MustNew(1, 0), decimal.MustNew(2, 0)))
	b := money.MustParseAmount("EUR", "0.05")
	fmt.Println(b.Allocate(decimal.MustNew(3, 0), decimal.MustNew(7, 0)))
	c := money.MustParseAmount("EUR", "1.00")
	fmt.Println(c.Allocate(decimal.Zero, decimal.MustNew(1, 0), decimal.MustNew(2, 0)))
	// Output:
	// [EUR 0.33 EUR 0.67] <nil>
	// [EUR 0.02 EUR 0.03] <nil>
	// [EUR 0.00 EUR 0.33 EUR 0.67] <nil>
}

func ExampleAllocateByKey() {
	a := money.MustParseAmount("EUR", "10.00")
	parts, err := money.AllocateByKey(a, []money.Ratio[string]{
		{Key: "A", Weight: decimal.MustNew(5, 0)},
		{Key: "B", Weight: decimal.MustNew(2, 0)},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(parts["A"], parts["B"])
	// Output: EUR 7.14 EUR 2.86
}

func ExampleAmount_Split() {
	a := money.MustParseAmount("USD", "1.01")
	fmt.Println(a.Split(1))
	fmt.Println(a.Split(2))
	fmt.Println(a.Split(3))
	fmt.Println(a.Split(4))
	// Output:
	// [USD 1.01] <nil>
	// [USD 0.51 USD 0.50] <nil>
	// [USD 0.34 USD 0.34 USD 0.33] <nil>
	// [USD 0.26 USD 0.25 USD 0.25 USD 0.25] <nil>
}

func ExampleAmount_Add() {
	a := money.MustParseAmount("EUR", "5.67")
	b := money.MustParseAmount("EUR", "23.00")
	c := money.MustParseAmount("EUR:4", "1")
	fmt.Println(a.Add(b))
	_, err := a.Add(c)
	fmt.Println(errors.Is(err, money.ErrCurrencyMismatch))
	// Output:
	// EUR 28.67 <nil>
	// true
}

func ExampleAmount_Sub() {
	a := money.MustParseAmount("EUR", "5.67")
	b := money.MustParseAmount("EUR", "23.00")
	fmt.Println(a.Sub(b))
	// Output: EUR -17.33 <nil>
}

func ExampleAmount_Mul() {
	a := money.MustParseAmount("EUR", "5.67")
	e := decimal.MustParse("2")
	f := decimal.MustParse("0.125")
	fmt.Println(a.Mul(e))
	fmt.Println(a.Mul(f))
	// Output:
	// EUR 11.34 <nil>
	// EUR 0.71 <nil>
}

func ExampleAmount_Quo() {
	a := money.MustParseAmount("EUR", "10.00")
	e := decimal.MustParse("3")
	fmt.Println(a.Quo(e))
	// Output: EUR 3.33 <nil>
}

func ExampleAmount_ConvertTo() {
	a := money.MustParseAmount("EUR", "1.00")
	jpy := money.MustParseCurr("JPY:0")
	rate := decimal.MustParse("2.4951")
	fmt.Println(a.ConvertTo(jpy, rate))
	// Output: JPY:0 3 <nil>
}

func ExampleAmount_Cmp() {
	a := money.MustParseAmount("EUR", "-23")
	b := money.MustParseAmount("EUR", "5.67")
	fmt.Println(a.Cmp(b))
	fmt.Println(a.Cmp(a))
	fmt.Println(b.Cmp(a))
	// Output:
	// -1 <nil>
	// 0 <nil>
	// 1 <nil>
}

func ExampleAmount_Equal() {
	a := money.MustParseAmount("EUR", "1")
	b := money.MustParseAmount("EUR", "1.00")
	c := money.MustParseAmount("EUR:4", "1")
	fmt.Println(a.Equal(b))
	fmt.Println(a.Equal(c))
	// Output:
	// true
	// false
}

func ExampleAmount_Matches() {
	a := money.MustParseAmount("EUR", "1")
	b := money.MustParseAmount("EUR", "1")
	fmt.Println(a.Matches(b))
	fmt.Println(a.Matches(&b))
	fmt.Println(a.Matches("EUR 1.00"))
	fmt.Println(a.Matches(nil))
	// Output:
	// true
	// true
	// false
	// false
}

func ExampleSum() {
	a := money.MustParseAmount("EUR", "3.34")
	b := money.MustParseAmount("EUR", "3.33")
	fmt.Println(money.Sum(a, b, b))
	// Output: EUR 10.00 <nil>
}

func ExampleAmount_Format() {
	a := money.MustParseAmount("EUR", "5.67")
	fmt.Printf("%v\n", a)
	fmt.Printf("%q\n", a)
	fmt.Printf("%f\n", a)
	fmt.Printf("%.1f\n", a)
	fmt.Printf("%d\n", a)
	fmt.Printf("%c\n", a)
	// Output:
	// EUR 5.67
	// "EUR 5.67"
	// 5.67
	// 5.7
	// 567
	// EUR
}

func ExampleAmount_String() {
	a := money.MustParseAmount("EUR", "5.67")
	b := money.MustParseAmount("BTC:8", "0.00012345")
	fmt.Println(a.String())
	fmt.Println(b.String())
	// Output:
	// EUR 5.67
	// BTC:8 0.00012345
}

func ExampleAmount_MarshalJSON() {
	a := money.MustParseAmount("EUR", "7.14")
	b := money.MustParseAmount("BTC:8", "0.00012345")
	text, _ := json.Marshal(a)
	fmt.Println(string(text))
	text, _ = json.Marshal(b)
	fmt.Println(string(text))
	// Output:
	// {"amount":"7.14","currency":"EUR"}
	// {"amount":"0.00012345","currency":{"code":"BTC","exponent":8}}
}

func ExampleAmount_UnmarshalJSON() {
	var a money.Amount
	err := json.Unmarshal([]byte(`{"amount":"7.145","currency":"EUR"}`), &a)
	fmt.Println(a, err)
	err = json.Unmarshal([]byte(`{"amount":"7.14"}`), &a)
	fmt.Println(errors.Is(err, money.ErrMissingCurrency))
	// Output:
	// EUR 7.15 <nil>
	// true
}

func ExampleParseCurr() {
	c := money.MustParseCurr("eur")
	d := money.MustParseCurr("BTC:8")
	fmt.Println(c.Code(), c.Scale())
	fmt.Println(d.Code(), d.Scale())
	// Output:
	// EUR 2
	// BTC 8
}

func ExampleNewCurr() {
	c, err := money.NewCurr("EUR", 4)
	fmt.Println(c.Code(), c.Scale(), err)
	_, err = money.NewCurr("EUR", 20)
	fmt.Println(errors.Is(err, money.ErrInvalidCurrency))
	// Output:
	// EUR 4 <nil>
	// true
}

func ExampleCurrency_Equal() {
	c := money.MustParseCurr("EUR")
	d := money.MustParseCurr("EUR:2")
	e := money.MustParseCurr("EUR:4")
	fmt.Println(c.Equal(d))
	fmt.Println(c.Equal(e))
	// Output:
	// true
	// false
}

func ExampleCurrency_Matches() {
	c := money.MustParseCurr("EUR")
	fmt.Println(c.Matches("eur"))
	fmt.Println(c.Matches(money.CurrencyDef{Code: "EUR", Exponent: 2}))
	fmt.Println(c.Matches("EUR:4"))
	fmt.Println(c.Matches(42))
	// Output:
	// true
	// true
	// false
	// false
}

func ExampleCurrency_MarshalText() {
	c := money.MustParseCurr("EUR")
	d := money.MustParseCurr("JPY:0")
	fmt.Println(c.MarshalText())
	fmt.Println(d.MarshalText())
	// Output:
	// [69 85 82] <nil>
	// [74 80 89 58 48] <nil>
}

func ExampleCurrency_MarshalJSON() {
	c := money.MustParseCurr("EUR")
	d := money.MustParseCurr("BTC:8")
	text, _ := json.Marshal(c)
	fmt.Println(string(text))
	text, _ = json.Marshal(d)
	fmt.Println(string(text))
	// Output:
	// "EUR"
	// {"code":"BTC","exponent":8}
}

func ExampleCurrency_Format() {
	c := money.MustParseCurr("EUR")
	fmt.Printf("%v %q %c\n", c, c, c)
	// Output: EUR "EUR" EUR
}

func ExampleRegistry_Lookup() {
	reg := money.NewISORegistry()
	for _, code := range []string{"EUR", "jpy", "KWD", "XYZ"} {
		c, err := reg.Lookup(code)
		if err != nil {
			panic(err)
		}
		fmt.Println(c.Code(), c.Scale())
	}
	// Output:
	// EUR 2
	// JPY 0
	// KWD 3
	// XYZ 2
}

func ExampleRegistry_Intern() {
	var reg money.Registry
	c, err := reg.Intern(money.CurrencyDef{Code: "usdc", Exponent: 6})
	fmt.Println(c.Code(), c.Scale(), err)
	// Output: USDC 6 <nil>
}

func ExampleExchangeRate_Conv() {
	r := money.MustParseExchRate("EUR", "USD", "1.0995")
	a := money.MustParseAmount("EUR", "10")
	fmt.Println(r.Conv(a))
	// Output: USD 11.00 <nil>
}

func ExampleExchangeRate_Inv() {
	r := money.MustParseExchRate("EUR", "USD", "1.25")
	fmt.Println(r.Inv())
	// Output: USD/EUR 0.8 <nil>
}
