package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/osmodel/internal/tui/components"
)

// ErrCancelled is returned by a Picker when the user backs out.
var ErrCancelled = errors.New("cancelled by user")

// Picker asks the user for a choice or a line of text.
type Picker interface {
	Select(title string, options []components.Option, initial string) (string, error)
	Prompt(label, initial string) (string, error)
}

// TeaPicker runs each question as its own bubbletea program.
type TeaPicker struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPicker creates a picker on stdin and stdout.
func NewTeaPicker() *TeaPicker {
	return &TeaPicker{in: os.Stdin, out: os.Stdout}
}

func (p *TeaPicker) run(model tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return final, nil
}

func (p *TeaPicker) Select(title string, options []components.Option, initial string) (string, error) {
	final, err := p.run(components.NewSelector(title, options).WithCursor(initial))
	if err != nil {
		return "", err
	}
	s := final.(components.Selector)
	if !s.Submitted() {
		return "", ErrCancelled
	}
	return s.Value(), nil
}

func (p *TeaPicker) Prompt(label, initial string) (string, error) {
	final, err := p.run(components.NewPrompt(label, initial))
	if err != nil {
		return "", err
	}
	pr := final.(components.Prompt)
	if !pr.Submitted() {
		return "", ErrCancelled
	}
	return pr.Value(), nil
}
