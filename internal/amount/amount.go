// Package amount handles monetary amounts expressed in major currency units.
package amount

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotPositive is returned for zero or negative amounts.
var ErrNotPositive = errors.New("amount must be positive")

// minorExponent is the number of minor units per major unit as a power of ten.
// INR, USD and the other currencies the academy accepts all use two.
const minorExponent = 2

// Parse reads a user-entered major-unit amount such as "500" or "499.50".
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if err := Validate(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// Validate reports whether d is a usable payment amount.
func Validate(d decimal.Decimal) error {
	if !d.IsPositive() {
		return fmt.Errorf("%s: %w", d.String(), ErrNotPositive)
	}
	return nil
}

// Number renders d as a bare JSON number, the shape the order endpoint expects.
func Number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// ToMinor converts major units to minor units, rounding half away from zero.
func ToMinor(d decimal.Decimal) int64 {
	return d.Shift(minorExponent).Round(0).IntPart()
}

// FromMinor converts minor units back to a major-unit decimal.
func FromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -minorExponent)
}

// Format renders minor units for display, e.g. "500.00 INR".
func Format(minor int64, currency string) string {
	return FromMinor(minor).StringFixed(minorExponent) + " " + currency
}
