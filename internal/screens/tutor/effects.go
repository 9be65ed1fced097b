package tutor

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoot/internal/decimalmath"
	"github.com/abhisek/hoot/internal/feedback"
	"github.com/abhisek/hoot/internal/store"
	"github.com/abhisek/hoot/internal/wizard"
)

const (
	burstFrames   = 12
	burstInterval = 150 * time.Millisecond
)

// run turns effects into commands. Text requests and score writes run off
// the update loop; their results come back as messages.
func (s *TutorScreen) run(effects []wizard.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, e := range effects {
		cmds = append(cmds, s.effectCmd(e))
	}
	return tea.Batch(cmds...)
}

func (s *TutorScreen) effectCmd(e wizard.Effect) tea.Cmd {
	switch e := e.(type) {
	case wizard.AwardPoint:
		return s.award(e)
	case wizard.Celebrate:
		s.burst = burstFrames
		s.burstGen = e.Generation
		return burstTick(e.Generation)
	default:
		ch := s.deps.Channel
		return func() tea.Msg {
			r, ok := feedback.Resolve(context.Background(), ch, e)
			if !ok {
				return nil
			}
			return feedbackMsg{Resolved: r}
		}
	}
}

// award bumps the score and records the solve. Failures are logged and
// never reach the lesson.
func (s *TutorScreen) award(e wizard.AwardPoint) tea.Cmd {
	scores, solves := s.deps.Scores, s.deps.Solves
	return func() tea.Msg {
		ctx := context.Background()

		if solves != nil {
			err := solves.AppendSolve(ctx, store.SolveEventData{
				ProblemID: e.Problem.ID,
				Decimal:   e.Problem.Decimal,
				Integer:   e.Problem.Integer,
				Product:   decimalmath.FormatProduct(e.Problem.Decimal, float64(e.Problem.Integer)),
				Mistakes:  e.Mistakes,
			})
			if err != nil {
				slog.Error("record solve", "problem", e.Problem.ID, "error", err)
			}
		}

		if scores == nil {
			return nil
		}
		n, err := scores.Increment(ctx)
		if err != nil {
			slog.Error("award point", "problem", e.Problem.ID, "error", err)
			return scoreMsg{Err: err}
		}
		slog.Info("problem solved", "problem", e.Problem.Plain(), "mistakes", e.Mistakes, "score", n)
		return scoreMsg{Score: n}
	}
}

func (s *TutorScreen) loadScore() tea.Cmd {
	scores := s.deps.Scores
	if scores == nil {
		return nil
	}
	return func() tea.Msg {
		n, err := scores.Read(context.Background())
		if err != nil {
			slog.Error("load score", "error", err)
		}
		return scoreMsg{Score: n, Err: err}
	}
}

func burstTick(gen uint64) tea.Cmd {
	return tea.Tick(burstInterval, func(t time.Time) tea.Msg {
		return burstTickMsg{Generation: gen, At: t}
	})
}

func (s *TutorScreen) handleBurstTick(msg burstTickMsg) tea.Cmd {
	if msg.Generation != s.burstGen || s.burst == 0 {
		return nil
	}
	s.burst--
	if s.burst == 0 {
		return nil
	}
	return burstTick(msg.Generation)
}
