package service

import (
	"math"

	"saas_cpq_api/internal/quotes/transport"
)

// Subtotal sums sell price times quantity across line items. Cost is the
// purchase basis and deliberately excluded from customer-facing totals.
func Subtotal(items []transport.NormalizedLineItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Sell * item.Qty
	}
	return subtotal
}

// Total applies the tax rate to the subtotal, subtracts the absolute discount
// and rounds to 2 decimal places. A discount exceeding the taxed subtotal
// yields a negative total; callers accept that rather than clamping.
func Total(subtotal, taxRate, discount float64) float64 {
	return round2(subtotal*(1+taxRate) - discount)
}

// round2 rounds half away from zero on the cents boundary.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
