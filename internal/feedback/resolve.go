package feedback

import (
	"context"

	"github.com/abhisek/hoot/internal/wizard"
)

// Resolve answers a request effect through ch. It reports false for effects
// that are not text requests.
func Resolve(ctx context.Context, ch Channel, e wizard.Effect) (wizard.FeedbackResolved, bool) {
	switch e := e.(type) {
	case wizard.RequestIntroduction:
		return wizard.FeedbackResolved{
			Generation: e.Generation,
			Text:       ch.Introduction(ctx, e.Problem.Decimal, e.Problem.Integer),
			Mood:       wizard.MoodHappy,
		}, true
	case wizard.RequestHint:
		return wizard.FeedbackResolved{
			Generation: e.Generation,
			Text:       ch.Hint(ctx, e.Step, e.Problem, e.Submitted),
			Mood:       wizard.MoodThinking,
		}, true
	case wizard.RequestCelebration:
		return wizard.FeedbackResolved{
			Generation: e.Generation,
			Text:       ch.Celebration(ctx),
			Mood:       wizard.MoodCelebrating,
		}, true
	default:
		return wizard.FeedbackResolved{}, false
	}
}
