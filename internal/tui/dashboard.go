package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/jobwise/internal/service"
	"github.com/MKhiriev/jobwise/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long transient status and error lines stay visible.
const statusTTL = 5 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type dashboardModel struct {
	ctx       context.Context
	analytics service.ClientAnalyticsService
	user      models.UserProfile

	periodIdx int
	loaded    map[models.Period]models.Analytics
	loading   bool
	spinner   spinner.Model

	errMsg string
	status string
	seq    int

	logout         bool
	sessionExpired bool
}

func newDashboardModel(ctx context.Context, analytics service.ClientAnalyticsService, user models.UserProfile) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return dashboardModel{
		ctx:       ctx,
		analytics: analytics,
		user:      user,
		loaded:    make(map[models.Period]models.Analytics),
		loading:   true,
		spinner:   s,
	}
}

func (m dashboardModel) period() models.Period {
	return models.Periods[m.periodIdx]
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad(m.period()))
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshTickMsg:
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoad(m.period())

	case analyticsLoadedMsg:
		if msg.period == m.period() {
			m.loading = false
		}
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrUnauthenticated) {
				m.logout = true
				m.sessionExpired = true
				return m, tea.Quit
			}
			// the last successful data stays on screen
			return m.flashError(humanizeError(msg.err))
		}
		m.loaded[msg.period] = msg.analytics
		if msg.period == m.period() {
			m.errMsg = ""
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.flashError("Clipboard unavailable: " + msg.err.Error())
		}
		return m.flashStatus("Insights copied to clipboard")

	case clearStatusMsg:
		if msg.seq == m.seq {
			m.status = ""
			m.errMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		case key.Matches(msg, keys.tab):
			return m.switchPeriod(1)
		case key.Matches(msg, keys.backtab):
			return m.switchPeriod(-1)
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, m.cmdLoad(m.period())
		case key.Matches(msg, keys.copy):
			data, ok := m.loaded[m.period()]
			if !ok || len(data.Insights) == 0 {
				return m.flashStatus("No insights to copy")
			}
			return m, cmdCopy(insightsText(data.Insights))
		}
	}

	return m, nil
}

func (m dashboardModel) switchPeriod(step int) (tea.Model, tea.Cmd) {
	n := len(models.Periods)
	m.periodIdx = (m.periodIdx + step + n) % n
	m.errMsg = ""
	m.loading = true
	return m, m.cmdLoad(m.period())
}

func (m dashboardModel) flashError(text string) (tea.Model, tea.Cmd) {
	m.seq++
	m.errMsg = text
	return m, clearAfter(m.seq)
}

func (m dashboardModel) flashStatus(text string) (tea.Model, tea.Cmd) {
	m.seq++
	m.status = text
	return m, clearAfter(m.seq)
}

func clearAfter(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m dashboardModel) cmdLoad(period models.Period) tea.Cmd {
	ctx, svc := m.ctx, m.analytics
	return func() tea.Msg {
		a, err := svc.Load(ctx, period)
		return analyticsLoadedMsg{period: period, analytics: a, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(renderTabs(m.period()))
	b.WriteString("\n\n")

	if data, ok := m.loaded[m.period()]; ok {
		b.WriteString(renderAnalytics(data))
	} else if !m.loading {
		b.WriteString("No data loaded yet. Press r to retry.")
	}

	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	title := "JOB SEARCH ANALYTICS"
	if m.user.Name != "" {
		title += " · " + m.user.Name
	}

	return renderPage(title, b.String(), "tab: period │ r: refresh │ c: copy insights │ l: log out │ q: quit")
}
