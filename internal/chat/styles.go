package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title    lipgloss.Style
	Input    lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Answer   lipgloss.Style
	Thinking lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("15")).
			Padding(0, 1),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).MarginTop(1),
		Answer:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2).MarginTop(1),
		Thinking: lipgloss.NewStyle().Faint(true),
	}
}
