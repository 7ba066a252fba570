// Package pricing derives rental prices from base prices and rental period
// multipliers. All results are rounded half-up to cents; callers persist the
// rounded value and never recompute it, so cart-add time and checkout time
// always agree.
package pricing

import "github.com/shopspring/decimal"

// ForPeriod returns basePrice scaled by the rental period multiplier,
// rounded to two decimal places.
func ForPeriod(basePrice, multiplier float64) float64 {
	price := decimal.NewFromFloat(basePrice).Mul(decimal.NewFromFloat(multiplier))
	return round2(price)
}

// Sum adds already-rounded prices without accumulating float error.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return round2(total)
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
