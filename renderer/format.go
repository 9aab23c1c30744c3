package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats v in the currency code, e.g. "$1,234.50" for USD.
// Values are rounded to the currency fraction.
func Money(v decimal.Decimal, code string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, code).Currency()
	return cur.Formatter().Format(v.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// Amount formats v in the currency code, or as a bare number when code is
// empty. Zero is rendered empty so that sparse tables stay readable.
func Amount(v decimal.Decimal, code string) string {
	if v.IsZero() {
		return ""
	}
	if code == "" {
		return v.String()
	}
	return Money(v, code)
}

// NullMoney formats an optional amount, "n/a" when it is not valid.
func NullMoney(v decimal.NullDecimal, code string) string {
	if !v.Valid {
		return "n/a"
	}
	return Money(v.Decimal, code)
}
