package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Prompt is a single-field program: enter submits, esc cancels.
type Prompt struct {
	field     TextField
	keyMap    KeyMap
	help      lipgloss.Style
	submitted bool
	cancelled bool
}

// NewPrompt creates a required prompt pre-filled with initial.
func NewPrompt(label, initial string) Prompt {
	field := NewTextField(label, initial).WithRequired(true).WithValue(initial)
	field.Focus()
	return Prompt{
		field:  field,
		keyMap: DefaultKeyMap(),
		help:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

// Init implements tea.Model.
func (p Prompt) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, p.keyMap.Select):
			if err := p.field.Validate(); err != nil {
				return p, nil
			}
			p.submitted = true
			return p, tea.Quit
		case key.Matches(msg, p.keyMap.Back), msg.Type == tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit
		}
	}
	var cmd tea.Cmd
	p.field, cmd = p.field.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p Prompt) View() string {
	return p.field.View() + "\n" + p.help.Render(p.keyMap.InputHelpText())
}

// Value returns the entered text.
func (p Prompt) Value() string { return p.field.Value() }

// Submitted returns true if the user confirmed the value.
func (p Prompt) Submitted() bool { return p.submitted }

// Cancelled returns true if the user backed out.
func (p Prompt) Cancelled() bool { return p.cancelled }
