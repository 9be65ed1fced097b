package wizard

import "github.com/abhisek/hoot/internal/problemgen"

// Effect is work the host performs after a reduction. Request effects are
// answered with a FeedbackResolved carrying the same Generation.
type Effect interface {
	isEffect()
}

// RequestIntroduction asks for flavor text for a freshly bound problem.
type RequestIntroduction struct {
	Generation uint64
	Problem    problemgen.Problem
}

// Hint step labels sent with RequestHint.
const (
	HintIntegerMultiplication = "Integer Multiplication"
	HintCountingDecimals      = "Counting Decimals"
)

// RequestHint asks for a corrective hint after a wrong free-entry answer.
type RequestHint struct {
	Generation uint64
	Step       string // HintIntegerMultiplication or HintCountingDecimals
	Problem    string // e.g. "39 x 5"
	Submitted  string
}

// RequestCelebration asks for the closing message of a solved problem.
type RequestCelebration struct {
	Generation uint64
}

// AwardPoint increments the score ledger. Emitted once per solved problem.
type AwardPoint struct {
	Generation uint64
	Problem    problemgen.Problem
	Mistakes   int
}

// Celebrate triggers the visual celebration.
type Celebrate struct {
	Generation uint64
}

func (RequestIntroduction) isEffect() {}
func (RequestHint) isEffect()         {}
func (RequestCelebration) isEffect()  {}
func (AwardPoint) isEffect()          {}
func (Celebrate) isEffect()           {}
