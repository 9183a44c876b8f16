package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Currency is an ISO 4217 currency code.
type Currency string

// DefaultCurrency is the storefront's pricing currency.
const DefaultCurrency Currency = "JMD"

// Money is an immutable amount in a single currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

func NewMoney(amount decimal.Decimal, cur Currency) Money {
	return Money{amount: amount, currency: cur}
}

func Zero(cur Currency) Money {
	return Money{amount: decimal.Zero, currency: cur}
}

// ParsePrice reads a display price such as "JMD 1,200.00": an ISO currency
// code, whitespace, then a decimal amount with optional thousands separators.
func ParsePrice(s string) (Money, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Money{}, &PriceParseError{Input: s}
	}

	unit, err := currency.ParseISO(fields[0])
	if err != nil {
		return Money{}, &PriceParseError{Input: s, Err: err}
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(fields[1], ",", ""))
	if err != nil {
		return Money{}, &PriceParseError{Input: s, Err: err}
	}

	return NewMoney(amount, Currency(unit.String())), nil
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Mul returns the amount multiplied by a quantity.
func (m Money) Mul(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty))), currency: m.currency}
}

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String formats the exact amount with thousands separators and at least two
// decimals, e.g. "JMD 1,200.00" or "JMD 0.125". ParsePrice reads it back
// unchanged.
func (m Money) String() string {
	return string(m.currency) + " " + groupDigits(m.amount.String(), 2)
}

// Display formats the amount rounded to cents, e.g. "JMD 1,200.01".
func (m Money) Display() string {
	return string(m.currency) + " " + groupDigits(m.amount.StringFixed(2), 2)
}

// groupDigits inserts commas into the integer part of a plain decimal string
// and pads the fraction to minFrac digits.
func groupDigits(s string, minFrac int) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) < minFrac {
		frac += strings.Repeat("0", minFrac-len(frac))
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// MarshalJSON stores the exact amount in the "JMD 1,200.00" layout.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePrice(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
