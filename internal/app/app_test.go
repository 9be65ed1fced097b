package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hoot/internal/problemgen"
	"github.com/abhisek/hoot/internal/router"
	"github.com/abhisek/hoot/internal/screen"
	"github.com/abhisek/hoot/internal/screens/help"
	"github.com/abhisek/hoot/internal/screens/tutor"
)

type fixedGenerator struct{}

func (fixedGenerator) Generate() problemgen.Problem {
	return problemgen.Problem{Decimal: 3.9, Integer: 5, ID: "p1"}
}

type staticScores struct{ n int }

func (s staticScores) Read(context.Context) (int, error)      { return s.n, nil }
func (s staticScores) Increment(context.Context) (int, error) { return s.n + 1, nil }

func testOptions(skip bool) Options {
	return Options{
		Tutor:       tutor.Deps{Generator: fixedGenerator{}, Scores: staticScores{n: 3}},
		SkipWelcome: skip,
	}
}

func sized(m AppModel, w, h int) AppModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(AppModel)
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(true))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestWelcomeFirst(t *testing.T) {
	m := newAppModel(testOptions(false))
	assert.Equal(t, "", m.router.Active().Title())

	m.Update(router.ReplaceScreenMsg{Screen: tutor.New(testOptions(true).Tutor)})
	assert.Equal(t, "New Case", m.router.Active().Title())
}

func TestEscPopsHelpOnly(t *testing.T) {
	m := newAppModel(testOptions(true))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd, "esc on the lesson does nothing")

	_, cmd = m.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.Equal(t, 2, m.router.Depth())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 1, m.router.Depth())
}

// scoredScreen is a stub screen that tracks a score.
type scoredScreen struct{ n int }

func (s *scoredScreen) Init() tea.Cmd                           { return nil }
func (s *scoredScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *scoredScreen) View(int, int) string                    { return "" }
func (s *scoredScreen) Title() string                           { return "Scored" }
func (s *scoredScreen) Score() int                              { return s.n }

func TestScoreFromScreenBelowHelp(t *testing.T) {
	m := AppModel{router: router.New(&scoredScreen{n: 7})}
	assert.Equal(t, 7, m.score())

	m.Update(router.PushScreenMsg{Screen: help.New()})
	assert.Equal(t, 2, m.router.Depth())
	assert.Equal(t, 7, m.score())
}

func TestNoScoreProvider(t *testing.T) {
	m := newAppModel(testOptions(false))
	assert.Zero(t, m.score())
}

func TestWindowSize(t *testing.T) {
	m := sized(newAppModel(testOptions(true)), 100, 40)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}
