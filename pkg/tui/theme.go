package tui

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the viewer.
type Theme struct {
	Title       lipgloss.Style
	Meta        lipgloss.Style
	Explanation lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Bookmark    lipgloss.Style
	ModalFrame  lipgloss.Style
	ModalTitle  lipgloss.Style
	Selected    lipgloss.Style
	Media       lipgloss.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		Meta:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Explanation: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Bookmark:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		ModalFrame:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2),
		ModalTitle:  lipgloss.NewStyle().Bold(true).Underline(true),
		Selected:    lipgloss.NewStyle().Reverse(true),
		Media:       lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
	}
}
