package tutor

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hoot/internal/problemgen"
	"github.com/abhisek/hoot/internal/ui/components"
	"github.com/abhisek/hoot/internal/ui/layout"
	"github.com/abhisek/hoot/internal/ui/theme"
	"github.com/abhisek/hoot/internal/wizard"
)

const skippedMarker = "Skipped: No decimals found!"

var confetti = []string{"✦", "★", "•", "✧", "✺"}

func (s *TutorScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sess := s.session

	sections := []string{
		s.renderProblem(),
		components.NewProgressBar(stepsDone(sess), len(wizard.WorkingSteps), cw).View(),
		"",
		s.renderTutor(width, height, cw),
		"",
	}

	switch sess.Step {
	case wizard.StepIntro:
		sections = append(sections, s.renderIntro(cw))
	default:
		for _, step := range wizard.WorkingSteps {
			sections = append(sections, s.renderStep(step, cw, height))
		}
		if sess.Step == wizard.StepSuccess {
			sections = append(sections, s.renderSuccess(cw))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (s *TutorScreen) renderProblem() string {
	p := s.session.Problem
	return theme.Title.Render("Solve: ") +
		components.HighlightDecimal(problemgen.FormatOperand(p.Decimal)) +
		theme.Body.Render(fmt.Sprintf(" × %d", p.Integer))
}

// renderTutor draws the owl beside its speech bubble. Short terminals get
// the bubble only.
func (s *TutorScreen) renderTutor(width, height, cw int) string {
	fb := s.session.Feedback
	msg := fb.Message
	if fb.Pending && fb.Mood == wizard.MoodWaiting {
		msg += "\n" + theme.Hint.Render("Professor Hoot is thinking...")
	}
	if s.burst > 0 {
		msg = renderConfetti(s.burst, cw-4) + "\n" + msg
	}

	if layout.IsCompactHeight(height) {
		return components.SpeechBubble(msg, cw)
	}

	owl := components.RenderOwl(fb.Mood)
	if layout.IsCompactWidth(width) {
		return lipgloss.JoinVertical(lipgloss.Center, owl, components.SpeechBubble(msg, cw))
	}
	bubble := components.SpeechBubble(msg, cw-lipgloss.Width(owl)-2)
	return lipgloss.JoinHorizontal(lipgloss.Center, owl, "  ", bubble)
}

func renderConfetti(frame, width int) string {
	var b strings.Builder
	for i := 0; i < width/2; i++ {
		c := confetti[(i+frame)%len(confetti)]
		color := theme.Gold
		if (i+frame)%3 == 0 {
			color = theme.Secondary
		} else if (i+frame)%3 == 1 {
			color = theme.Accent
		}
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(c) + " ")
	}
	return b.String()
}

func (s *TutorScreen) renderIntro(cw int) string {
	start := components.NewButton("Start the case", s.session.CanSubmit(wizard.Start{}))
	return components.Card(lipgloss.JoinVertical(lipgloss.Center,
		theme.Body.Render("Ignore the decimal, multiply, then put it back."),
		"",
		start.View(),
	), cw, true)
}

func (s *TutorScreen) renderStep(step wizard.Step, cw, height int) string {
	sess := s.session
	switch {
	case sess.Done(step):
		heading := theme.StepDone.Render("✓ " + step.Title())
		result := s.stepResult(step)
		if layout.IsCompactHeight(height) {
			return components.Card(heading+"  "+result, cw, false)
		}
		return components.Card(heading+"\n"+result, cw, false)
	case sess.Step == step:
		return components.Card(theme.StepActive.Render(step.Title())+"\n\n"+s.stepBody(step), cw, true)
	default:
		return theme.StepLocked.Width(cw).Render("  " + step.Title())
	}
}

// stepResult summarises a completed step.
func (s *TutorScreen) stepResult(step wizard.Step) string {
	sess := s.session
	d := sess.Derived
	switch step {
	case wizard.StepHideDecimals:
		if sess.Skipped {
			return theme.Hint.Render(skippedMarker)
		}
		return theme.Body.Render(fmt.Sprintf("%s → %d    %d → %d",
			problemgen.FormatOperand(sess.Problem.Decimal), d.First, sess.Problem.Integer, d.Second))
	case wizard.StepMultiply:
		return theme.Body.Render(fmt.Sprintf("%d × %d = %d", d.First, d.Second, d.IntProduct))
	case wizard.StepCountDecimals:
		return theme.Body.Render(fmt.Sprintf("Total: %d place(s)", d.TotalDecimalPlaces))
	case wizard.StepPlaceDecimal:
		return theme.Body.Render("Answer: ") + components.HighlightDecimal(d.FinalAnswer)
	}
	return ""
}

// stepBody is the working area of the active step.
func (s *TutorScreen) stepBody(step wizard.Step) string {
	sess := s.session
	d := sess.Derived
	switch step {
	case wizard.StepHideDecimals:
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.Body.Render("Write each number without its decimal point."),
			"",
			s.hideFirst.View(),
			s.hideSecond.View(),
			"",
			s.checkButton(wizard.SubmitHideDecimals{First: s.hideFirst.Value(), Second: s.hideSecond.Value()}),
		)

	case wizard.StepMultiply:
		if !d.UseColumn {
			return lipgloss.JoinVertical(lipgloss.Left,
				theme.Body.Render(fmt.Sprintf("What is %d × %d?", d.First, d.Second)),
				"",
				s.answer.View(),
				"",
				s.checkButton(s.multiplyAction()),
			)
		}
		lines := []string{renderColumns(d), ""}
		if sess.Column == wizard.ColumnOnes {
			lines = append(lines, theme.Body.Render(fmt.Sprintf("Ones: %d × %d = ?", d.OnesDigit, d.Second)))
		} else {
			lines = append(lines,
				theme.Hint.Render(fmt.Sprintf("Wrote %d, carried %d", d.WrittenDigit, d.Carry)),
				theme.Body.Render(fmt.Sprintf("Tens: %d × %d + %d = ?", d.TensDigit, d.Second, d.Carry)),
			)
		}
		lines = append(lines, "", s.answer.View(), "", s.checkButton(s.multiplyAction()))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)

	case wizard.StepCountDecimals:
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.Body.Render(fmt.Sprintf("How many digits are after the decimal points in %s?", sess.Problem)),
			"",
			s.count.View(),
			"",
			s.checkButton(wizard.SubmitDecimalCount{Value: s.count.Value()}),
		)

	case wizard.StepPlaceDecimal:
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.Body.Render("Hop the decimal point back into the product."),
			"",
			"   "+components.HighlightDecimal(sess.HopperDisplay()),
			theme.Hint.Render(fmt.Sprintf("   hops: %d", sess.Hops)),
			"",
			s.checkButton(wizard.CheckFinalAnswer{}),
		)
	}
	return ""
}

// renderColumns lays out the column multiplication above the answer line.
func renderColumns(d wizard.Derived) string {
	top := fmt.Sprintf("   %d %d", d.TensDigit, d.OnesDigit)
	mid := fmt.Sprintf(" ×   %d", d.Second)
	rule := " " + strings.Repeat("─", 5)
	return theme.Digit.Render(strings.Join([]string{top, mid, rule}, "\n"))
}

func (s *TutorScreen) checkButton(a wizard.Action) string {
	return components.NewButton("Check", s.session.CanSubmit(a)).View()
}

func (s *TutorScreen) renderSuccess(cw int) string {
	d := s.session.Derived
	return components.Card(lipgloss.JoinVertical(lipgloss.Center,
		theme.Correct.Render("Case closed!"),
		theme.Body.Render(s.session.Problem.String()+" = ")+components.HighlightDecimal(d.FinalAnswer),
		"",
		components.NewButton("Next problem", true).View(),
	), cw, true)
}

func stepsDone(sess wizard.Session) int {
	n := 0
	for _, step := range wizard.WorkingSteps {
		if sess.Done(step) {
			n++
		}
	}
	return n
}
