package types

import "github.com/shopspring/decimal"

// MaxExponent bounds the decimal exponent of amounts and balances in either
// direction. Arithmetic rescales operands to the smaller exponent, so values
// outside this range make a single deposit arbitrarily expensive.
const MaxExponent = 28

// WithinScale reports whether d's exponent lies in [-MaxExponent, MaxExponent].
func WithinScale(d decimal.Decimal) bool {
	e := d.Exponent()
	return e >= -MaxExponent && e <= MaxExponent
}
