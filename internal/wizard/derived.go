package wizard

import (
	"github.com/abhisek/hoot/internal/decimalmath"
	"github.com/abhisek/hoot/internal/problemgen"
)

// Derived holds every value the lesson checks answers against. It depends
// only on the problem.
type Derived struct {
	// First and Second are the operands with their decimal points removed.
	First  int
	Second int

	// IntProduct is First × Second.
	IntProduct int

	// TotalDecimalPlaces is the number of decimal places across both operands.
	TotalDecimalPlaces int

	// UseColumn selects column multiplication for a two-digit by one-digit
	// product. Otherwise the product is entered directly.
	UseColumn bool

	OnesDigit    int
	TensDigit    int
	OnesProduct  int
	Carry        int
	WrittenDigit int

	// TensExpected is TensDigit × Second + Carry.
	TensExpected int

	// MaxHops bounds the decimal hop counter.
	MaxHops int

	// FinalAnswer is the exact product as displayed once solved.
	FinalAnswer string
}

// Derive computes the answer key for p.
func Derive(p problemgen.Problem) Derived {
	op2 := float64(p.Integer)
	d := Derived{
		First:              decimalmath.StripDecimal(p.Decimal),
		Second:             decimalmath.StripDecimal(op2),
		TotalDecimalPlaces: decimalmath.CountDecimalPlaces(p.Decimal) + decimalmath.CountDecimalPlaces(op2),
		FinalAnswer:        decimalmath.FormatProduct(p.Decimal, op2),
	}
	d.IntProduct = d.First * d.Second
	d.UseColumn = d.First > 9 && d.Second < 10
	d.OnesDigit = d.First % 10
	d.TensDigit = d.First / 10
	d.OnesProduct = d.OnesDigit * d.Second
	d.Carry = d.OnesProduct / 10
	d.WrittenDigit = d.OnesProduct % 10
	d.TensExpected = d.TensDigit*d.Second + d.Carry
	d.MaxHops = decimalmath.Digits(d.IntProduct) + 1
	return d
}
