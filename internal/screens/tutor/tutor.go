// Package tutor is the lesson screen. It holds one wizard session, turns key
// presses into wizard actions and runs the effects the wizard asks for.
package tutor

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoot/internal/feedback"
	"github.com/abhisek/hoot/internal/problemgen"
	"github.com/abhisek/hoot/internal/router"
	"github.com/abhisek/hoot/internal/screen"
	"github.com/abhisek/hoot/internal/screens/help"
	"github.com/abhisek/hoot/internal/store"
	"github.com/abhisek/hoot/internal/ui/components"
	"github.com/abhisek/hoot/internal/ui/layout"
	"github.com/abhisek/hoot/internal/wizard"
)

// Scorer reads and bumps the durable score. *score.Ledger implements it.
type Scorer interface {
	Read(ctx context.Context) (int, error)
	Increment(ctx context.Context) (int, error)
}

// SolveRecorder records solved problems. store.EventRepo implements it.
type SolveRecorder interface {
	AppendSolve(ctx context.Context, data store.SolveEventData) error
}

// Deps are the collaborators of the tutor screen.
type Deps struct {
	Generator problemgen.Generator
	Channel   feedback.Channel
	Scores    Scorer
	Solves    SolveRecorder // optional
}

// TutorScreen implements screen.Screen for the lesson.
type TutorScreen struct {
	deps    Deps
	session wizard.Session
	initial []wizard.Effect
	score   int

	hideFirst  components.TextInput
	hideSecond components.TextInput
	answer     components.TextInput
	count      components.DigitChoice

	burst    int // remaining celebration frames
	burstGen uint64
}

var (
	_ screen.Screen          = (*TutorScreen)(nil)
	_ screen.KeyHintProvider = (*TutorScreen)(nil)
	_ screen.ScoreProvider   = (*TutorScreen)(nil)
)

// New creates the tutor screen bound to a freshly generated problem.
func New(deps Deps) *TutorScreen {
	if deps.Channel == nil {
		deps.Channel = feedback.Fallback{}
	}
	s := &TutorScreen{
		deps:       deps,
		hideFirst:  components.NewTextInput("First number: ", "", true, 4),
		hideSecond: components.NewTextInput("Second number:", "", true, 4),
		answer:     components.NewTextInput("Answer:", "", true, 4),
		count:      components.NewDigitChoice(wizard.MaxDecimalCount),
	}
	s.session, s.initial = wizard.New(deps.Generator.Generate())
	return s
}

func (s *TutorScreen) Init() tea.Cmd {
	effects := s.initial
	s.initial = nil
	return tea.Batch(s.loadScore(), s.run(effects), s.syncInputs())
}

// Title is the heading of the current step.
func (s *TutorScreen) Title() string {
	switch s.session.Step {
	case wizard.StepIntro:
		return "New Case"
	case wizard.StepSuccess:
		return "Case Closed!"
	default:
		return s.session.Step.Title()
	}
}

// Score returns the last known score.
func (s *TutorScreen) Score() int {
	return s.score
}

// Session returns the current lesson state.
func (s *TutorScreen) Session() wizard.Session {
	return s.session
}

func (s *TutorScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Check"}}
	switch s.session.Step {
	case wizard.StepIntro:
		hints = []layout.KeyHint{{Key: "Enter", Description: "Start"}}
	case wizard.StepHideDecimals:
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Switch box"})
	case wizard.StepCountDecimals:
		hints = append(hints, layout.KeyHint{Key: "←→ 0-4", Description: "Pick"})
	case wizard.StepPlaceDecimal:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Hop the dot"})
	case wizard.StepSuccess:
		hints = []layout.KeyHint{{Key: "Enter", Description: "Next problem"}}
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+N", Description: "New problem"},
		layout.KeyHint{Key: "?", Description: "How it works"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackMsg:
		s.session, _ = wizard.Reduce(s.session, msg.Resolved)
		return s, nil

	case scoreMsg:
		if msg.Err == nil {
			s.score = msg.Score
		}
		return s, nil

	case burstTickMsg:
		return s, s.handleBurstTick(msg)

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	return s, s.forward(msg)
}

func (s *TutorScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "?":
		return func() tea.Msg { return router.PushScreenMsg{Screen: help.New()} }
	case "ctrl+n":
		return s.next()
	}

	switch s.session.Step {
	case wizard.StepIntro:
		if msg.String() == "enter" {
			return s.dispatch(wizard.Start{})
		}
		return nil

	case wizard.StepHideDecimals:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			return s.toggleHideFocus()
		case "enter":
			a := wizard.SubmitHideDecimals{First: s.hideFirst.Value(), Second: s.hideSecond.Value()}
			if !s.session.CanSubmit(a) && !s.session.Feedback.Pending {
				return s.toggleHideFocus()
			}
			return s.dispatch(a)
		}

	case wizard.StepMultiply:
		if msg.String() == "enter" {
			return s.dispatch(s.multiplyAction())
		}

	case wizard.StepCountDecimals:
		if msg.String() == "enter" {
			return s.dispatch(wizard.SubmitDecimalCount{Value: s.count.Value()})
		}
		s.count, _ = s.count.Update(msg)
		return nil

	case wizard.StepPlaceDecimal:
		switch msg.String() {
		case "left", "h":
			return s.dispatch(wizard.MoveDecimal{Direction: wizard.Left})
		case "right", "l":
			return s.dispatch(wizard.MoveDecimal{Direction: wizard.Right})
		case "enter":
			return s.dispatch(wizard.CheckFinalAnswer{})
		}
		return nil

	case wizard.StepSuccess:
		switch msg.String() {
		case "enter", "n":
			return s.next()
		}
		return nil
	}

	return s.forward(msg)
}

// multiplyAction picks the submission for the current multiply sub-step.
func (s *TutorScreen) multiplyAction() wizard.Action {
	v := s.answer.Value()
	switch {
	case !s.session.Derived.UseColumn:
		return wizard.SubmitDirectMultiply{Value: v}
	case s.session.Column == wizard.ColumnOnes:
		return wizard.SubmitColumnOnes{Value: v}
	default:
		return wizard.SubmitColumnTens{Value: v}
	}
}

// dispatch reduces a and starts the resulting effects. Inputs are cleared
// whenever the lesson moves to another step or column.
func (s *TutorScreen) dispatch(a wizard.Action) tea.Cmd {
	before := s.session
	var effects []wizard.Effect
	s.session, effects = wizard.Reduce(s.session, a)

	cmd := s.run(effects)
	if before.Step != s.session.Step || before.Column != s.session.Column {
		s.resetInputs()
		return tea.Batch(cmd, s.syncInputs())
	}
	return cmd
}

// next abandons the current session and binds a new problem.
func (s *TutorScreen) next() tea.Cmd {
	var effects []wizard.Effect
	s.session, effects = wizard.Next(s.session, s.deps.Generator)
	s.burst = 0
	s.resetInputs()
	return tea.Batch(s.run(effects), s.syncInputs())
}

func (s *TutorScreen) resetInputs() {
	s.hideFirst.Reset()
	s.hideSecond.Reset()
	s.answer.Reset()
	s.count = components.NewDigitChoice(wizard.MaxDecimalCount)
}

// syncInputs focuses the input that belongs to the current step.
func (s *TutorScreen) syncInputs() tea.Cmd {
	s.hideFirst.Blur()
	s.hideSecond.Blur()
	s.answer.Blur()

	switch s.session.Step {
	case wizard.StepHideDecimals:
		return s.hideFirst.Focus()
	case wizard.StepMultiply:
		return s.answer.Focus()
	}
	return nil
}

// Resume restarts the cursor of whichever input had focus before an
// overlay opened.
func (s *TutorScreen) Resume() tea.Cmd {
	switch {
	case s.hideFirst.Focused():
		return s.hideFirst.Focus()
	case s.hideSecond.Focused():
		return s.hideSecond.Focus()
	case s.answer.Focused():
		return s.answer.Focus()
	}
	return nil
}

func (s *TutorScreen) toggleHideFocus() tea.Cmd {
	if s.hideFirst.Focused() {
		s.hideFirst.Blur()
		return s.hideSecond.Focus()
	}
	s.hideSecond.Blur()
	return s.hideFirst.Focus()
}

// forward hands msg to the focused text input.
func (s *TutorScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case s.hideFirst.Focused():
		s.hideFirst, cmd = s.hideFirst.Update(msg)
	case s.hideSecond.Focused():
		s.hideSecond, cmd = s.hideSecond.Update(msg)
	case s.answer.Focused():
		s.answer, cmd = s.answer.Update(msg)
	}
	return cmd
}
