package plancast

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display value for reports. The engine computes in floats;
// Money carries the amount as a decimal and formats it with the
// currency's own symbol and fraction rules.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M wraps an engine value in a currency.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency resolves the currency definition, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// Currency returns the ISO currency code.
func (m Money) Currency() string { return m.cur }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.value.IsNegative() }

// Neg returns the amount with its sign flipped.
func (m Money) Neg() Money { return Money{value: m.value.Neg(), cur: m.cur} }

// AsFloat returns the amount as a float for further aggregation.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// String formats the amount with the currency's symbol, rounded to its
// fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is String with an explicit sign, rendering zero as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
