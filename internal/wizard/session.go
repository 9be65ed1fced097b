package wizard

import (
	"strconv"
	"strings"

	"github.com/abhisek/hoot/internal/decimalmath"
	"github.com/abhisek/hoot/internal/problemgen"
)

// MaxDecimalCount is the largest decimal count the learner can submit.
const MaxDecimalCount = 4

// Inputs are the raw entries accepted so far, kept for display of
// completed steps.
type Inputs struct {
	HideFirst    string
	HideSecond   string
	Multiply     string
	ColumnOnes   string
	ColumnTens   string
	DecimalCount string
}

// Session is the lesson state for one bound problem. It is a value: Reduce
// returns a new Session and never mutates its argument.
type Session struct {
	// Problem is the bound problem.
	Problem problemgen.Problem

	// Derived is the answer key for Problem.
	Derived Derived

	// Step is the current stage.
	Step Step

	// Skipped is true when the intro jumped over HideDecimals.
	Skipped bool

	// Inputs holds accepted answers.
	Inputs Inputs

	// Column is the column-multiplication sub-phase.
	Column ColumnPhase

	// Hops is the decimal hop counter, in [0, Derived.MaxHops].
	Hops int

	// Feedback is what the tutor is saying.
	Feedback Feedback

	// Generation identifies this binding. Feedback for another generation
	// is dropped.
	Generation uint64

	// Attempts counts rejected submissions per step.
	Attempts [numSteps]int
}

// New binds p to the first session.
func New(p problemgen.Problem) (Session, []Effect) {
	return bind(p, 1)
}

// Bind discards s and returns a fresh session for p with the next
// generation. Any in-flight feedback for s becomes stale.
func (s Session) Bind(p problemgen.Problem) (Session, []Effect) {
	return bind(p, s.Generation+1)
}

func bind(p problemgen.Problem, gen uint64) (Session, []Effect) {
	s := Session{
		Problem:    p,
		Derived:    Derive(p),
		Step:       StepIntro,
		Generation: gen,
		Feedback: Feedback{
			Message: msgLoading,
			Mood:    MoodThinking,
			Pending: true,
		},
	}
	return s, []Effect{RequestIntroduction{Generation: gen, Problem: p}}
}

// Mistakes is the total number of rejected submissions.
func (s Session) Mistakes() int {
	n := 0
	for _, a := range s.Attempts {
		n += a
	}
	return n
}

// Done reports whether step has been completed.
func (s Session) Done(step Step) bool {
	return step.Less(s.Step)
}

// HopperDisplay renders the product with the decimal point at the current
// hop position.
func (s Session) HopperDisplay() string {
	return decimalmath.PlaceDecimal(s.Derived.IntProduct, s.Hops)
}

// CanSubmit reports whether a would be evaluated by Reduce. It is false
// while feedback is pending, when a targets another step, or when the
// entered values do not parse.
func (s Session) CanSubmit(a Action) bool {
	switch a := a.(type) {
	case Start:
		return !s.Feedback.Pending && s.Step == StepIntro
	case SubmitHideDecimals:
		_, ok1 := parseInt(a.First)
		_, ok2 := parseInt(a.Second)
		return s.accepting(StepHideDecimals) && ok1 && ok2
	case SubmitColumnOnes:
		_, ok := parseInt(a.Value)
		return s.accepting(StepMultiply) && s.Derived.UseColumn && s.Column == ColumnOnes && ok
	case SubmitColumnTens:
		_, ok := parseInt(a.Value)
		return s.accepting(StepMultiply) && s.Derived.UseColumn && s.Column == ColumnTens && ok
	case SubmitDirectMultiply:
		_, ok := parseInt(a.Value)
		return s.accepting(StepMultiply) && !s.Derived.UseColumn && ok
	case SubmitDecimalCount:
		n, ok := parseInt(a.Value)
		return s.accepting(StepCountDecimals) && ok && n >= 0 && n <= MaxDecimalCount
	case MoveDecimal:
		if s.Step != StepPlaceDecimal {
			return false
		}
		if a.Direction == Right {
			return s.Hops > 0
		}
		return s.Hops < s.Derived.MaxHops
	case CheckFinalAnswer:
		return s.accepting(StepPlaceDecimal)
	default:
		return false
	}
}

func (s Session) accepting(step Step) bool {
	return !s.Feedback.Pending && s.Step == step
}

// parseInt accepts an optionally signed run of digits surrounded by spaces.
func parseInt(v string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}
