package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/jobwise/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	barWidth       = 30
	maxTimeRows    = 14
	maxRoleRows    = 5
	labelWidth     = 12
	roleLabelWidth = 24
)

func periodLabel(p models.Period) string {
	switch p {
	case models.PeriodLast30Days:
		return "Last 30 days"
	case models.PeriodLast90Days:
		return "Last 90 days"
	case models.PeriodAllTime:
		return "All time"
	}
	return string(p)
}

func renderTabs(active models.Period) string {
	tabs := make([]string, 0, len(models.Periods))
	for _, p := range models.Periods {
		style := tabStyle
		if p == active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(periodLabel(p)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderSummary(s models.AnalyticsSummary) string {
	card := func(label, value string) string {
		return cardStyle.Render(label + "\n" + cardValueStyle.Render(value))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Applications", fmt.Sprintf("%d", s.TotalApplications)),
		card("Interview rate", fmt.Sprintf("%.1f%%", s.InterviewRate)),
		card("Offer rate", fmt.Sprintf("%.1f%%", s.OfferRate)),
		card("Avg response", formatDays(s.AvgResponseTime)),
	)
}

func formatDays(days int64) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// bar scales value against max. A non-zero value always gets one cell.
func bar(value, max int64, width int) string {
	if value <= 0 || max <= 0 {
		return ""
	}
	n := int(value * int64(width) / max)
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func renderStatusBars(distribution []models.StatusCount) string {
	var max int64
	for _, s := range distribution {
		if s.Value > max {
			max = s.Value
		}
	}

	lines := make([]string, 0, len(distribution))
	for _, s := range distribution {
		b := bar(s.Value, max, barWidth)
		if s.Color != "" {
			b = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(b)
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %d", labelWidth, s.Name, b, s.Value))
	}
	return strings.Join(lines, "\n")
}

// renderTimeSeries shows the most recent days only.
func renderTimeSeries(points []models.TimePoint) string {
	if len(points) == 0 {
		return "No applications in this period"
	}
	if len(points) > maxTimeRows {
		points = points[len(points)-maxTimeRows:]
	}

	var max int64
	for _, p := range points {
		if p.Count > max {
			max = p.Count
		}
	}

	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("%-*s %s %d", labelWidth, p.Date, bar(p.Count, max, barWidth), p.Count))
	}
	return strings.Join(lines, "\n")
}

func renderRoles(roles []models.RoleCount) string {
	if len(roles) == 0 {
		return "No roles yet"
	}
	if len(roles) > maxRoleRows {
		roles = roles[:maxRoleRows]
	}

	lines := make([]string, 0, len(roles))
	for _, r := range roles {
		lines = append(lines, fmt.Sprintf("%-*s %d", roleLabelWidth, fitText(r.Role, roleLabelWidth), r.Count))
	}
	return strings.Join(lines, "\n")
}

func renderInsights(insights []models.Insight) string {
	if len(insights) == 0 {
		return "Nothing stands out yet. Keep applying!"
	}
	return insightsText(insights)
}

// insightsText is the plain-text form used for the clipboard.
func insightsText(insights []models.Insight) string {
	lines := make([]string, 0, len(insights))
	for _, in := range insights {
		lines = append(lines, fmt.Sprintf("• %s: %s", in.Title, in.Description))
	}
	return strings.Join(lines, "\n")
}

func renderAnalytics(a models.Analytics) string {
	if a.Summary.TotalApplications == 0 {
		return renderSummary(a.Summary) + "\n\nNo applications yet for this period."
	}

	sections := []string{
		renderSummary(a.Summary),
		sectionStyle.Render("Status"),
		renderStatusBars(a.StatusDistribution),
		sectionStyle.Render("Applications over time"),
		renderTimeSeries(a.TimeData),
		sectionStyle.Render("Top roles"),
		renderRoles(a.RoleData),
		sectionStyle.Render("Insights"),
		renderInsights(a.Insights),
	}
	return strings.Join(sections, "\n\n")
}
