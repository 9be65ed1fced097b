// Package app hosts the screens in a single Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hoot/internal/router"
	"github.com/abhisek/hoot/internal/screen"
	"github.com/abhisek/hoot/internal/screens/tutor"
	"github.com/abhisek/hoot/internal/screens/welcome"
	"github.com/abhisek/hoot/internal/ui/layout"
)

// Options configures the program.
type Options struct {
	Tutor tutor.Deps

	// SkipWelcome opens the lesson without the splash screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting on the splash screen, or on the
// lesson when opts.SkipWelcome is set.
func newAppModel(opts Options) AppModel {
	lesson := func() screen.Screen { return tutor.New(opts.Tutor) }

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = lesson()
	} else {
		initial = welcome.New(lesson)
	}
	return AppModel{router: router.New(initial)}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.score(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kh, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kh.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// score is the score known to the topmost screen that tracks one.
func (m AppModel) score() int {
	screens := m.router.Screens()
	for i := len(screens) - 1; i >= 0; i-- {
		if sp, ok := screens[i].(screen.ScoreProvider); ok {
			return sp.Score()
		}
	}
	return 0
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
