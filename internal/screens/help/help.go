// Package help explains the decimal multiplication method.
package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hoot/internal/router"
	"github.com/abhisek/hoot/internal/screen"
	"github.com/abhisek/hoot/internal/ui/components"
	"github.com/abhisek/hoot/internal/ui/layout"
	"github.com/abhisek/hoot/internal/ui/theme"
	"github.com/abhisek/hoot/internal/wizard"
)

var stepNotes = map[wizard.Step]string{
	wizard.StepHideDecimals:  "Hide the decimal point: 3.9 becomes 39.",
	wizard.StepMultiply:      "Multiply the whole numbers: 39 × 5 = 195.",
	wizard.StepCountDecimals: "Count the digits after every decimal point: 3.9 has 1.",
	wizard.StepPlaceDecimal:  "Hop the point that many places from the right: 19.5.",
}

// HelpScreen is a read-only card describing the four steps.
type HelpScreen struct{}

var (
	_ screen.Screen          = (*HelpScreen)(nil)
	_ screen.KeyHintProvider = (*HelpScreen)(nil)
)

// New creates a HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd { return nil }

func (h *HelpScreen) Title() string { return "How It Works" }

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back to the case"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "q", "?", "enter":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	lines := make([]string, 0, len(wizard.WorkingSteps)*3)
	for _, step := range wizard.WorkingSteps {
		lines = append(lines, theme.StepActive.Render(step.Title()), theme.Body.Render(stepNotes[step]), "")
	}
	lines = append(lines, theme.Hint.Render("No decimals? Step 1 is skipped."))

	card := components.Card(strings.Join(lines, "\n"), components.ContentWidth(width), true)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, components.RenderOwl(wizard.MoodHappy), "", card))
}
