// Package amount normalizes free-text numeric form fields.
//
// Quantity, rate and payment fields arrive as raw operator input and stay
// raw on the draft for display and validation purposes; the calculators only
// ever see the normalized value. A blank or malformed field normalizes to
// zero rather than producing an error, so an untouched field contributes
// nothing to a derived total.
package amount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse returns the numeric value of a raw form field, or 0 when the field
// is empty or not a number. It never fails.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}

	return d.InexactFloat64()
}

// ParseOr behaves like Parse but substitutes fallback when the field
// normalizes to zero. Used for rate fields that must never be zero, e.g. a
// new vehicle's gas rate.
func ParseOr(s string, fallback float64) float64 {
	if v := Parse(s); v != 0 {
		return v
	}

	return fallback
}
