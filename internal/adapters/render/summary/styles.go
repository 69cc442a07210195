package summary

import "github.com/charmbracelet/lipgloss"

type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	faint   lipgloss.Style
}

func newStyles() styles {
	return styles{
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faint:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
