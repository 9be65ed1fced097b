package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/hoot/internal/wizard"
)

func TestDigitChoice_Arrows(t *testing.T) {
	d := NewDigitChoice(4)

	d, _ = d.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 0, d.Selected, "left at 0 stays")

	for range 6 {
		d, _ = d.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	assert.Equal(t, 4, d.Selected, "right stops at max")
	assert.Equal(t, "4", d.Value())
}

func TestDigitChoice_TypedDigit(t *testing.T) {
	d := NewDigitChoice(4)

	d, _ = d.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Equal(t, 3, d.Selected)

	d, _ = d.Update(tea.KeyPressMsg{Code: '7', Text: "7"})
	assert.Equal(t, 3, d.Selected, "digits above max are ignored")
}

func TestTextInput_NumericOnly(t *testing.T) {
	in := NewTextInput("Answer", "", true, 4)
	in.Focus()

	in, _ = in.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	in, _ = in.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	in, _ = in.Update(tea.KeyPressMsg{Code: '2', Text: "2"})

	assert.Equal(t, "42", in.Value())

	in.Reset()
	assert.Empty(t, in.Value())
}

func TestRenderOwl_MoodsDiffer(t *testing.T) {
	seen := map[string]wizard.Mood{}
	for _, m := range []wizard.Mood{wizard.MoodHappy, wizard.MoodThinking, wizard.MoodCelebrating, wizard.MoodWaiting} {
		art := RenderOwl(m)
		prev, dup := seen[art]
		assert.False(t, dup, "%s renders the same as %s", m, prev)
		seen[art] = m
	}
}

func TestHighlightDecimal_KeepsDigits(t *testing.T) {
	out := HighlightDecimal("19.5")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "•")
}

func TestProgressBar_Counter(t *testing.T) {
	assert.Contains(t, NewProgressBar(2, 4, 30).View(), "2/4")
}
