package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	DirectoryStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	FileStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Symbols for visual feedback.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
)

// RenderLine styles one line of scenario output by its shape.
func RenderLine(line string) string {
	trimmed := strings.TrimLeft(line, "-")
	switch {
	case line == osmodel.RootSeparator || line == osmodel.DeviceSeparator:
		return SeparatorStyle.Render(line)
	case strings.HasPrefix(line, "[ERROR] "):
		return ErrorStyle.Render(line)
	case strings.HasPrefix(trimmed, "+ "):
		return DirectoryStyle.Render(line)
	case strings.HasPrefix(trimmed, "  ") && strings.Contains(line, " content => "):
		return FileStyle.Render(line)
	case strings.HasSuffix(line, " has been reset."):
		return SuccessStyle.Render(line)
	case strings.HasPrefix(line, "(Consumed "):
		return WarningStyle.Render(line)
	}
	return line
}
