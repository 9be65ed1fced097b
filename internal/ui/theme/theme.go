package theme

import (
	"charm.land/lipgloss/v2"
)

// Night-forest palette: owl amber on deep blue, gold for the decimal point.
var (
	Primary   = lipgloss.Color("#F59E0B") // owl amber
	Secondary = lipgloss.Color("#38BDF8") // moonlit sky
	Accent    = lipgloss.Color("#C084FC") // lantern violet
	Gold      = lipgloss.Color("#FDE047")
	Success   = lipgloss.Color("#4ADE80")
	Error     = lipgloss.Color("#FB7185")
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#8394AE")
	BgDark    = lipgloss.Color("#0B1120")
	BgCard    = lipgloss.Color("#16213A")
	Border    = lipgloss.Color("#2E3B57")
)

// Typography
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)

	Body = lipgloss.NewStyle().Foreground(Text)

	Hint = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	ActiveCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 2)

	Bubble = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Foreground(Text).
		Padding(0, 1)
)

// States
var (
	StepDone = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StepActive = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	StepLocked = lipgloss.NewStyle().
			Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	DecimalPoint = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	Digit = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	ChoiceActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	ChoiceInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
