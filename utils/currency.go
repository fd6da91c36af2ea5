package utils

import (
	"strconv"
)

// RoundMoney rounds to two decimal places, half to even on the exact
// binary value of amount.
func RoundMoney(amount float64) float64 {
	return Round(amount, 2)
}

// Round rounds amount to places decimal digits.
func Round(amount float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(amount, 'f', places, 64), 64)
	if err != nil {
		return amount
	}
	return rounded
}
