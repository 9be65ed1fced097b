package wizard

// Action is a discrete learner or host event fed to Reduce.
type Action interface {
	isAction()
}

// Start leaves the intro.
type Start struct{}

// SubmitHideDecimals submits both operands rewritten without decimal points.
type SubmitHideDecimals struct {
	First  string
	Second string
}

// SubmitColumnOnes submits the ones-digit product of column multiplication.
type SubmitColumnOnes struct{ Value string }

// SubmitColumnTens submits the tens-digit product plus carry.
type SubmitColumnTens struct{ Value string }

// SubmitDirectMultiply submits the whole-number product.
type SubmitDirectMultiply struct{ Value string }

// SubmitDecimalCount submits the number of decimal places, 0 to 4.
type SubmitDecimalCount struct{ Value string }

// MoveDecimal hops the decimal point one place.
type MoveDecimal struct{ Direction Direction }

// CheckFinalAnswer checks the hop count.
type CheckFinalAnswer struct{}

// FeedbackResolved delivers text for a request effect. Generation must match
// the session the request was issued for.
type FeedbackResolved struct {
	Generation uint64
	Text       string
	Mood       Mood
}

func (Start) isAction()                {}
func (SubmitHideDecimals) isAction()   {}
func (SubmitColumnOnes) isAction()     {}
func (SubmitColumnTens) isAction()     {}
func (SubmitDirectMultiply) isAction() {}
func (SubmitDecimalCount) isAction()   {}
func (MoveDecimal) isAction()          {}
func (CheckFinalAnswer) isAction()     {}
func (FeedbackResolved) isAction()     {}
