package rates

import "github.com/shopspring/decimal"

// Reference is the currency every salary is normalized into.
const Reference = "RUR"

// Table maps a currency code to the multiplier converting one unit of
// that currency into the reference currency.
type Table map[string]decimal.Decimal

// Multiplier returns the conversion factor for code. Unknown codes get
// 1 (no conversion) rather than an error.
func (t Table) Multiplier(code string) decimal.Decimal {
	if m, ok := t[code]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// Fallback is the hardcoded table used whenever the live source is
// unavailable.
func Fallback() Table {
	return Table{
		Reference: decimal.NewFromInt(1),
		"USD":     decimal.NewFromInt(90),
		"EUR":     decimal.NewFromInt(100),
		"KZT":     decimal.NewFromFloat(0.18),
	}
}
