package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the prompt's rendering.
type Style struct {
	Prompt     lipgloss.Style
	Text       lipgloss.Style
	ActiveText lipgloss.Style
	Cursor     lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ActiveText: lipgloss.NewStyle(),
		Cursor:     lipgloss.NewStyle().Reverse(true),
	}
}
