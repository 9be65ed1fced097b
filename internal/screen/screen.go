package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoot/internal/ui/layout"
)

// Screen is one full-window view hosted by the router.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ScoreProvider is implemented by screens that know the learner's score.
// The header shows it.
type ScoreProvider interface {
	Score() int
}

// Resumer is implemented by screens that need to act when the screen
// above them is popped, e.g. to restart a cursor blink.
type Resumer interface {
	Resume() tea.Cmd
}
