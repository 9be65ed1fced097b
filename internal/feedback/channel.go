// Package feedback turns lesson events into tutor text. Text comes from an
// LLM when one is configured and from fixed fallbacks otherwise. Channels
// never fail.
package feedback

import (
	"context"
	"fmt"

	"github.com/abhisek/hoot/internal/problemgen"
)

// Channel produces tutor text for the three kinds of lesson events.
type Channel interface {
	// Introduction returns flavor text for a newly bound problem.
	Introduction(ctx context.Context, decimal float64, integer int) string

	// Hint returns a corrective hint after a wrong answer at step.
	Hint(ctx context.Context, step, problem, submitted string) string

	// Celebration returns the closing message for a solved problem.
	Celebration(ctx context.Context) string
}

// Fallback texts.
const (
	FallbackHint        = "Don't give up! You can do it. Try checking your math again."
	FallbackCelebration = "Amazing job! You are a Decimal Detective master!"
)

// FallbackIntroduction is the offline introduction for decimal × integer.
func FallbackIntroduction(decimal float64, integer int) string {
	return fmt.Sprintf("Let's multiply %s × %d together!", problemgen.FormatOperand(decimal), integer)
}

// Fallback is a Channel that always answers with the fixed texts.
type Fallback struct{}

func (Fallback) Introduction(_ context.Context, decimal float64, integer int) string {
	return FallbackIntroduction(decimal, integer)
}

func (Fallback) Hint(context.Context, string, string, string) string {
	return FallbackHint
}

func (Fallback) Celebration(context.Context) string {
	return FallbackCelebration
}
