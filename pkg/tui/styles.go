package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	status     lipgloss.Style
	header     lipgloss.Style
	compact    lipgloss.Style
	cardTitle  lipgloss.Style
	meta       lipgloss.Style
	translated lipgloss.Style
	pending    lipgloss.Style
	summary    lipgloss.Style
	link       lipgloss.Style
	message    lipgloss.Style
	skeleton   lipgloss.Style
	errorMsg   lipgloss.Style
	help       lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		status:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		header:     lipgloss.NewStyle().PaddingBottom(1),
		compact:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		cardTitle:  lipgloss.NewStyle().Bold(true),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		translated: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		summary:    lipgloss.NewStyle(),
		link:       lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Underline(true),
		message:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		skeleton:   lipgloss.NewStyle().Faint(true),
		errorMsg:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		help:       lipgloss.NewStyle().Faint(true),
	}
}
