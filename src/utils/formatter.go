package utils

import (
	"math"
)

// Prices are quoted on a 0-100 scale with two decimal places.
const PricePrecision = 2

type Formatter struct {
}

func (m *Formatter) Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func (m *Formatter) ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(m.Round(num*output)) / output
}

// FormatPrice rounds a price to the venue tick before submission.
func (m *Formatter) FormatPrice(price float64) float64 {
	return m.ToFixed(price, PricePrecision)
}
