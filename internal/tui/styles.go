package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E57373"))
	statusStyle  = lipgloss.NewStyle().Italic(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Reverse(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5C5C99")).
			Padding(0, 1).
			Width(18)
	cardValueStyle = lipgloss.NewStyle().Bold(true)
)
