package wizard

// Step is a stage of the lesson. Steps are totally ordered: a session only
// ever moves forward until a new problem is bound.
type Step int

const (
	StepIntro         Step = iota // Waiting for the learner to start
	StepHideDecimals              // Rewrite both operands without the dot
	StepMultiply                  // Multiply the whole numbers
	StepCountDecimals             // Count the decimal places in the original problem
	StepPlaceDecimal              // Hop the decimal point back into the product
	StepSuccess                   // Solved; only binding a new problem leaves
)

// String returns the step identifier.
func (s Step) String() string {
	switch s {
	case StepIntro:
		return "intro"
	case StepHideDecimals:
		return "hide-decimals"
	case StepMultiply:
		return "multiply"
	case StepCountDecimals:
		return "count-decimals"
	case StepPlaceDecimal:
		return "place-decimal"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Less reports whether s comes before o in the lesson.
func (s Step) Less(o Step) bool {
	return s < o
}

// Title is the heading shown for a working step, e.g. "Step 2: Multiply
// Integers". Intro and Success have no numbered heading.
func (s Step) Title() string {
	switch s {
	case StepHideDecimals:
		return "Step 1: Remove Decimals"
	case StepMultiply:
		return "Step 2: Multiply Integers"
	case StepCountDecimals:
		return "Step 3: Count Decimal Places"
	case StepPlaceDecimal:
		return "Step 4: Place the Decimal"
	default:
		return ""
	}
}

// WorkingSteps lists the numbered steps in order.
var WorkingSteps = []Step{StepHideDecimals, StepMultiply, StepCountDecimals, StepPlaceDecimal}

const numSteps = int(StepSuccess) + 1

// ColumnPhase is the sub-phase of column multiplication.
type ColumnPhase int

const (
	ColumnOnes ColumnPhase = iota // Multiply the ones digit
	ColumnTens                    // Multiply the tens digit and add the carry
)

func (c ColumnPhase) String() string {
	if c == ColumnTens {
		return "tens"
	}
	return "ones"
}

// Direction is the way the decimal point hops in the final step.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}
