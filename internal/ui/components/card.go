package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hoot/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all lesson cards so
// they line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
// The active card gets the primary border.
func Card(content string, cw int, active bool) string {
	style := theme.Card
	if active {
		style = theme.ActiveCard
	}
	return style.Width(cw).Render(content)
}

// SpeechBubble renders what the tutor is saying.
func SpeechBubble(text string, width int) string {
	return theme.Bubble.Width(width).Render(text)
}

// HighlightDecimal renders a number with its decimal point picked out.
func HighlightDecimal(s string) string {
	var out string
	for _, r := range s {
		if r == '.' {
			out += theme.DecimalPoint.Render("•")
			continue
		}
		out += theme.Digit.Render(string(r))
	}
	return out
}
