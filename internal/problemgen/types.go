package problemgen

import (
	"fmt"
	"strconv"
)

// Problem is one practice multiplication: a decimal times a single digit.
// Problems are immutable; a new one is generated for every round.
type Problem struct {
	// Decimal has at most one fractional digit and lies in [0.1, 9.9].
	Decimal float64

	// Integer is the single-digit multiplier in [2, 9].
	Integer int

	// ID identifies the problem. Sessions are bound to it.
	ID string
}

// String renders the problem the way the learner sees it, e.g. "3.9 × 5".
func (p Problem) String() string {
	return fmt.Sprintf("%s × %d", FormatOperand(p.Decimal), p.Integer)
}

// Plain renders the problem with an ASCII operator, e.g. "3.9 x 5".
// Used in prompts sent to the tutor text generator.
func (p Problem) Plain() string {
	return fmt.Sprintf("%s x %d", FormatOperand(p.Decimal), p.Integer)
}

// FormatOperand renders a decimal operand in its shortest form (4, 3.9).
func FormatOperand(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
