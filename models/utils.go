package models

import (
	"math"
)

// RoundCents rounds to currency precision, two decimals, half-up.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
