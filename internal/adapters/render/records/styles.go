package records

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	id      lipgloss.Style
	name    lipgloss.Style
	detail  lipgloss.Style
	trait   lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		id:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		trait:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
