package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const pageWidth = 72

var divider = strings.Repeat("─", pageWidth)

// renderPage frames body between a title and a footer of key hints.
func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	hints := "ctrl+c: quit"
	if strings.TrimSpace(hotKeys) != "" {
		hints = hotKeys + " │ " + hints
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		divider,
		"",
		body,
		"",
		divider,
		helpStyle.Render(hints),
	))
}

// fitText cuts v to at most max runes, ending in "..." when there is room.
func fitText(v string, max int) string {
	runes := []rune(v)
	switch {
	case max <= 0 || len(runes) <= max:
		return v
	case max <= 3:
		return string(runes[:max])
	default:
		return string(runes[:max-3]) + "..."
	}
}
