package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hoot/internal/ui/theme"
	"github.com/abhisek/hoot/internal/wizard"
)

const owlHappy = ` ,___,
 (^v^)
 /)__)
--"-"--`

const owlThinking = ` ,___,
 (o,O)  ?
 /)__)
--"-"--`

const owlCelebrating = `\,___,/
 (*v*)
 /)__)
--"-"--`

const owlWaiting = ` ,___,
 (-.-)  …
 /)__)
--"-"--`

// RenderOwl returns Professor Hoot's portrait for the given mood.
func RenderOwl(mood wizard.Mood) string {
	art := owlHappy
	fg := theme.Primary

	switch mood {
	case wizard.MoodThinking:
		art = owlThinking
		fg = theme.Secondary
	case wizard.MoodCelebrating:
		art = owlCelebrating
		fg = theme.Gold
	case wizard.MoodWaiting:
		art = owlWaiting
		fg = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
