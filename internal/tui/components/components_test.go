package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m tea.Model, msgs ...tea.KeyMsg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func options() []Option {
	return []Option{
		{Label: "Linux OS", Value: "linux"},
		{Label: "BSD OS", Value: "bsd"},
		{Label: "NT OS", Value: "nt"},
	}
}

func TestSelector_NavigateAndSelect(t *testing.T) {
	m := press(NewSelector("Choose", options()), keyDown, keyDown, keyDown, keyUp, keyEnter)
	s := m.(Selector)

	assert.True(t, s.Submitted())
	assert.False(t, s.Cancelled())
	assert.Equal(t, 1, s.Selected())
	assert.Equal(t, "bsd", s.Value())
}

func TestSelector_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyQ, keyEsc} {
		s := press(NewSelector("Choose", options()), k).(Selector)
		assert.True(t, s.Cancelled())
		assert.Nil(t, s.SelectedOption())
		assert.Equal(t, "", s.Value())
	}
}

func TestSelector_WithCursor(t *testing.T) {
	s := press(NewSelector("Choose", options()).WithCursor("nt"), keyEnter).(Selector)
	assert.Equal(t, "nt", s.Value())
}

func TestSelector_EmptyOptions(t *testing.T) {
	s := press(NewSelector("Nothing", nil), keyEnter).(Selector)
	assert.False(t, s.Submitted())
}

func TestSelector_View(t *testing.T) {
	view := NewSelector("Choose Operating System", options()).View()
	assert.Contains(t, view, "Choose Operating System")
	assert.Contains(t, view, "● Linux OS")
	assert.Contains(t, view, "○ BSD OS")
}

func TestPrompt_Submit(t *testing.T) {
	p := press(NewPrompt("Text", "-new content-"), keyEnter).(Prompt)
	require.True(t, p.Submitted())
	assert.Equal(t, "-new content-", p.Value())
}

func TestPrompt_Typing(t *testing.T) {
	m := press(NewPrompt("Text", ""),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")},
		keyEnter,
	)
	p := m.(Prompt)
	assert.True(t, p.Submitted())
	assert.Equal(t, "hi", p.Value())
}

func TestPrompt_RequiredBlocksEmpty(t *testing.T) {
	p := press(NewPrompt("Text", ""), keyEnter).(Prompt)
	assert.False(t, p.Submitted())
	assert.Contains(t, p.View(), ErrFieldRequired.Error())
}

func TestPrompt_Cancel(t *testing.T) {
	p := press(NewPrompt("Text", "x"), keyEsc).(Prompt)
	assert.True(t, p.Cancelled())
	assert.False(t, p.Submitted())
}
