// Package money holds the bounds of a DECIMAL(18,2) amount column.
//
// Every check here looks at the exponent and digit count before rounding or
// formatting, since shopspring/decimal rescales through big.Int and a short
// input like "1e10000000" would otherwise expand to ten million digits.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	// IntegerDigits is what DECIMAL(18,2) leaves in front of the point.
	IntegerDigits = 16
	maxTextLen    = 40
	// widest coefficient a stored amount can need, with trailing zeros allowed
	maxDigits = IntegerDigits + 2 + 2
)

var (
	ErrInvalid = errors.New("invalid amount")

	limit = decimal.New(1, IntegerDigits)
)

// Bounded reports whether d is cheap to round and format: its exponent and
// coefficient stay within a few digits of the column.
func Bounded(d decimal.Decimal) bool {
	e := d.Exponent()
	if e < -maxDigits || e > IntegerDigits {
		return false
	}
	return d.NumDigits() <= maxDigits
}

// TwoPlaces reports whether d has at most two fractional digits.
func TwoPlaces(d decimal.Decimal) bool {
	return Bounded(d) && d.Equal(d.Round(2))
}

// Valid reports whether d is a positive amount the column can store.
func Valid(d decimal.Decimal) bool {
	return TwoPlaces(d) && d.IsPositive() && d.LessThan(limit)
}

// Parse reads a client supplied amount. Anything Valid rejects is ErrInvalid.
func Parse(s string) (decimal.Decimal, error) {
	if s == "" || len(s) > maxTextLen {
		return decimal.Zero, ErrInvalid
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !Valid(d) {
		return decimal.Zero, ErrInvalid
	}
	return d, nil
}
