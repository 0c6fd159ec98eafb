package engine

import "github.com/shopspring/decimal"

// round2 rounds a monetary amount half-up to two decimal places.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
