package adapter_bubbletea

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Zen-Editor/zen/theme"
)

// Theme holds the terminal styles of the editor chrome.
type Theme struct {
	EditorStyle      lipgloss.Style
	StatusLineStyle  lipgloss.Style
	StatusLabelStyle lipgloss.Style
	CommandLineStyle lipgloss.Style
	MessageStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
	LineNumberStyle  lipgloss.Style
	PlaceholderStyle lipgloss.Style
}

func color(c theme.RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// NewTheme derives the chrome styles from an editor theme.
func NewTheme(t theme.Theme) Theme {
	c := t.Colors
	return Theme{
		EditorStyle:      lipgloss.NewStyle().Background(color(c.EditorBg)).Foreground(color(c.TextPrimary)),
		StatusLineStyle:  lipgloss.NewStyle().Background(color(c.PanelBg)).Foreground(color(c.TextSecondary)),
		StatusLabelStyle: lipgloss.NewStyle().Background(color(c.ButtonActive)).Foreground(color(c.TextPrimary)).Bold(true),
		CommandLineStyle: lipgloss.NewStyle().Background(color(c.WindowBg)).Foreground(color(c.TextPrimary)),
		MessageStyle:     lipgloss.NewStyle().Foreground(color(t.Syntax.String)),
		ErrorStyle:       lipgloss.NewStyle().Foreground(color(t.Syntax.Variables)),
		LineNumberStyle:  lipgloss.NewStyle().Foreground(color(c.TextDisabled)).Width(4).Align(lipgloss.Right),
		PlaceholderStyle: lipgloss.NewStyle().Foreground(color(c.TextDisabled)),
	}
}
