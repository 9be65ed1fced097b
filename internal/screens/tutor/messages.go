package tutor

import (
	"time"

	"github.com/abhisek/hoot/internal/wizard"
)

// feedbackMsg carries tutor text for a request effect.
type feedbackMsg struct {
	Resolved wizard.FeedbackResolved
}

// scoreMsg is sent when the score has been read or incremented.
type scoreMsg struct {
	Score int
	Err   error
}

// burstTickMsg advances the celebration burst for a generation.
type burstTickMsg struct {
	Generation uint64
	At         time.Time
}
