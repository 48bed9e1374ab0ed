package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by the UI.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Header  string
}

// DefaultTheme returns the built-in Dracula-flavored palette.
func DefaultTheme() Theme {
	return Theme{
		Name:    "Dracula",
		Text:    "#F8F8F2",
		Muted:   "#6272A4",
		Faint:   "#44475A",
		Accent:  "#BD93F9",
		Warning: "#FFB86C",
		Header:  "#8BE9FD",
	}
}

// Styles holds the Lipgloss styles derived from a theme.
type Styles struct {
	Title       lipgloss.Style
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	TableHeader lipgloss.Style
	Cell        lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		TableHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Header)).
			Bold(true),

		Cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
	}
}
