package wizard

import (
	"fmt"

	"github.com/abhisek/hoot/internal/problemgen"
)

// Reduce applies a to s and returns the next session together with the
// effects the host must run. Actions that are not currently submittable
// (see Session.CanSubmit) leave the session unchanged. Wrong answers are
// never errors: the session stays on its step with a hint.
func Reduce(s Session, a Action) (Session, []Effect) {
	if r, ok := a.(FeedbackResolved); ok {
		return resolve(s, r), nil
	}
	if !s.CanSubmit(a) {
		return s, nil
	}

	switch a := a.(type) {
	case Start:
		return start(s), nil
	case SubmitHideDecimals:
		return submitHide(s, a), nil
	case SubmitColumnOnes:
		return submitOnes(s, a), nil
	case SubmitColumnTens:
		return submitTens(s, a), nil
	case SubmitDirectMultiply:
		return submitDirect(s, a)
	case SubmitDecimalCount:
		return submitCount(s, a)
	case MoveDecimal:
		return move(s, a), nil
	case CheckFinalAnswer:
		return check(s)
	}
	return s, nil
}

func resolve(s Session, r FeedbackResolved) Session {
	if r.Generation != s.Generation || !s.Feedback.Pending {
		return s
	}
	s.Feedback = Feedback{Message: r.Text, Mood: r.Mood}
	return s
}

func start(s Session) Session {
	if s.Derived.TotalDecimalPlaces == 0 {
		s.Step = StepMultiply
		s.Skipped = true
		s.Feedback = say(msgSkipHide, MoodHappy)
		return s
	}
	s.Step = StepHideDecimals
	s.Feedback = say(msgHidePrompt, MoodThinking)
	return s
}

func submitHide(s Session, a SubmitHideDecimals) Session {
	v1, _ := parseInt(a.First)
	v2, _ := parseInt(a.Second)
	if v1 != s.Derived.First || v2 != s.Derived.Second {
		return reject(s, msgHideRetry)
	}
	s.Inputs.HideFirst, s.Inputs.HideSecond = a.First, a.Second
	s.Step = StepMultiply
	s.Feedback = say(msgHideSuccess(s.Derived), MoodHappy)
	return s
}

func submitOnes(s Session, a SubmitColumnOnes) Session {
	if v, _ := parseInt(a.Value); v != s.Derived.OnesProduct {
		return reject(s, msgOnesRetry(s.Derived))
	}
	s.Inputs.ColumnOnes = a.Value
	s.Column = ColumnTens
	s.Feedback = say(msgOnesSuccess(s.Derived), MoodHappy)
	return s
}

func submitTens(s Session, a SubmitColumnTens) Session {
	if v, _ := parseInt(a.Value); v != s.Derived.TensExpected {
		return reject(s, msgTensRetry(s.Derived))
	}
	s.Inputs.ColumnTens = a.Value
	s.Step = StepCountDecimals
	s.Feedback = say(msgTensSuccess, MoodCelebrating)
	return s
}

func submitDirect(s Session, a SubmitDirectMultiply) (Session, []Effect) {
	if v, _ := parseInt(a.Value); v != s.Derived.IntProduct {
		s.Attempts[s.Step]++
		s = wait(s)
		return s, []Effect{RequestHint{
			Generation: s.Generation,
			Step:       HintIntegerMultiplication,
			Problem:    fmt.Sprintf("%d x %d", s.Derived.First, s.Derived.Second),
			Submitted:  a.Value,
		}}
	}
	s.Inputs.Multiply = a.Value
	s.Step = StepCountDecimals
	s.Feedback = say(msgDirectOK, MoodHappy)
	return s, nil
}

func submitCount(s Session, a SubmitDecimalCount) (Session, []Effect) {
	if v, _ := parseInt(a.Value); v != s.Derived.TotalDecimalPlaces {
		s.Attempts[s.Step]++
		s = wait(s)
		return s, []Effect{RequestHint{
			Generation: s.Generation,
			Step:       HintCountingDecimals,
			Problem:    s.Problem.Plain(),
			Submitted:  a.Value,
		}}
	}
	s.Inputs.DecimalCount = a.Value
	s.Step = StepPlaceDecimal
	s.Feedback = say(msgCountSuccess(s.Derived), MoodHappy)
	return s, nil
}

func move(s Session, a MoveDecimal) Session {
	switch a.Direction {
	case Left:
		s.Hops = min(s.Hops+1, s.Derived.MaxHops)
	case Right:
		s.Hops = max(s.Hops-1, 0)
	}
	return s
}

func check(s Session) (Session, []Effect) {
	if s.Hops != s.Derived.TotalDecimalPlaces {
		return reject(s, msgHopsRetry(s.Hops, s.Derived.TotalDecimalPlaces)), nil
	}
	s.Step = StepSuccess
	s = wait(s)
	return s, []Effect{
		AwardPoint{Generation: s.Generation, Problem: s.Problem, Mistakes: s.Mistakes()},
		Celebrate{Generation: s.Generation},
		RequestCelebration{Generation: s.Generation},
	}
}

func reject(s Session, msg string) Session {
	s.Attempts[s.Step]++
	s.Feedback = say(msg, MoodThinking)
	return s
}

// wait marks feedback pending and keeps the current message on screen.
func wait(s Session) Session {
	s.Feedback.Pending = true
	s.Feedback.Mood = MoodWaiting
	return s
}

func say(msg string, mood Mood) Feedback {
	return Feedback{Message: msg, Mood: mood}
}

// Next binds a freshly generated problem. It is the host's way to advance
// after Success, and also abandons an unfinished session.
func Next(s Session, g problemgen.Generator) (Session, []Effect) {
	return s.Bind(g.Generate())
}
