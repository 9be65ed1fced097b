package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoot/internal/ui/theme"
)

// DigitChoice is a horizontal picker over the digits 0..Max. Left and right
// move the selection; typing a digit in range selects it directly.
type DigitChoice struct {
	Max      int
	Selected int
}

// NewDigitChoice creates a picker for 0..maxDigit with 0 selected.
func NewDigitChoice(maxDigit int) DigitChoice {
	return DigitChoice{Max: maxDigit}
}

// Update handles keyboard selection.
func (d DigitChoice) Update(msg tea.Msg) (DigitChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if d.Selected > 0 {
			d.Selected--
		}
	case "right", "l":
		if d.Selected < d.Max {
			d.Selected++
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 0 && n <= d.Max {
			d.Selected = n
		}
	}
	return d, nil
}

// Value returns the selected digit as text.
func (d DigitChoice) Value() string {
	return strconv.Itoa(d.Selected)
}

// View renders the row of digits with the selection highlighted.
func (d DigitChoice) View() string {
	parts := make([]string, 0, d.Max+1)
	for i := 0; i <= d.Max; i++ {
		label := strconv.Itoa(i)
		if i == d.Selected {
			parts = append(parts, theme.ChoiceActive.Render(label))
		} else {
			parts = append(parts, theme.ChoiceInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
