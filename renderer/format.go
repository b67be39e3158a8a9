// Package renderer turns tracker results into markdown documents.
//
// Rounding to two decimals happens here and only here: the engine keeps full
// precision.
package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats v as money in the currency with ISO code cur.
func Amount(v float64, cur string) string {
	c := money.New(0, cur).Currency()
	dec := decimal.NewFromFloat(v).Shift(int32(c.Fraction)).Round(0)
	return c.Formatter().Format(dec.IntPart())
}

// SignedAmount is like Amount but always shows the sign of non zero values.
// 0 is represented as a "-"
func SignedAmount(v float64, cur string) string {
	d := decimal.NewFromFloat(v).Round(2)
	switch {
	case d.IsZero():
		return "-"
	case d.IsPositive():
		return "+" + Amount(v, cur)
	default:
		return Amount(v, cur)
	}
}

// Quantity formats shares or prices with two decimals.
func Quantity(v float64) string { return decimal.NewFromFloat(v).StringFixed(2) }
