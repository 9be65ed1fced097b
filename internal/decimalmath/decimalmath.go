// Package decimalmath holds the arithmetic behind the "ignore the decimal,
// multiply, then put it back" method. All functions are pure.
package decimalmath

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CountDecimalPlaces returns the number of digits after the decimal point in
// the shortest representation of x. Whole numbers have zero places.
func CountDecimalPlaces(x float64) int {
	exp := decimal.NewFromFloat(x).Exponent()
	if exp >= 0 {
		return 0
	}
	return int(-exp)
}

// StripDecimal removes the decimal point from x, e.g. 3.9 becomes 39.
// The shift is done in decimal so 3.9 never drifts to 38.
func StripDecimal(x float64) int {
	places := CountDecimalPlaces(x)
	return int(decimal.NewFromFloat(x).Shift(int32(places)).Round(0).IntPart())
}

// Multiply returns the exact decimal product of a and b.
func Multiply(a, b float64) decimal.Decimal {
	return decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b))
}

// FormatProduct renders a × b with as many fractional digits as the operands
// have together (at least one), then drops a fractional part made only of
// zeros: 3.9 × 7 is "27.3", 2.5 × 4 is "10".
func FormatProduct(a, b float64) string {
	places := CountDecimalPlaces(a) + CountDecimalPlaces(b)
	if places < 1 {
		places = 1
	}
	s := Multiply(a, b).StringFixed(int32(places))
	if i := strings.IndexByte(s, '.'); i >= 0 && strings.Trim(s[i+1:], "0") == "" {
		s = s[:i]
	}
	return s
}

// PlaceDecimal writes product with its decimal point moved hops places to the
// left, padding with zeros when the point passes the leading digit:
// (195, 1) is "19.5", (5, 2) is "0.05".
func PlaceDecimal(product, hops int) string {
	digits := strconv.Itoa(product)
	if hops <= 0 {
		return digits
	}
	if len(digits) <= hops {
		return "0." + strings.Repeat("0", hops-len(digits)) + digits
	}
	cut := len(digits) - hops
	return digits[:cut] + "." + digits[cut:]
}

// Digits returns how many decimal digits n has. Zero has one digit.
func Digits(n int) int {
	if n < 0 {
		n = -n
	}
	return len(strconv.Itoa(n))
}
