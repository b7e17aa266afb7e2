package tui

import (
	"github.com/charmbracelet/lipgloss"

	"actlog/pkg/store"
)

// Styles carries the lipgloss styles for one theme preference.
type Styles struct {
	Title        lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Entry        lipgloss.Style
	Comment      lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles builds the style set for the stored theme preference.
func NewStyles(t store.Theme) Styles {
	if t == store.ThemeDark {
		return Styles{
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Button:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("250")),
			ButtonActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
			Entry:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Comment:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("114")),
			Help:         lipgloss.NewStyle().Faint(true),
		}
	}
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("53")),
		Button:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("238")),
		ButtonActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		Entry:        lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Comment:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Status:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("28")),
		Help:         lipgloss.NewStyle().Faint(true),
	}
}
