// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/jobwise/internal/service"
	"github.com/MKhiriev/jobwise/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authMode int

const (
	modeLogin authMode = iota
	modeSignup
	modeForgot
)

type formField struct {
	label  string
	secret bool
	input  textinput.Model
}

// loginModel is the Bubble Tea model of the authentication screen. It covers
// login, signup and password recovery through the security question. On
// success the authenticated profile is kept in user and the program quits.
type loginModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	buildInfo models.AppBuildInfo

	mode     authMode
	fields   []formField
	focus    int
	question string

	submitting bool
	errMsg     string
	notice     string

	user *models.UserProfile
	quit bool
}

func newLoginModel(ctx context.Context, auth service.ClientAuthService, buildInfo models.AppBuildInfo, notice string) *loginModel {
	m := &loginModel{
		ctx:       ctx,
		auth:      auth,
		buildInfo: buildInfo,
		notice:    notice,
	}
	m.setMode(modeLogin)
	return m
}

func newInput(placeholder string, secret bool, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

// setMode swaps the form. The typed email survives the switch.
func (m *loginModel) setMode(mode authMode) {
	email := m.value("Email")

	m.mode = mode
	m.question = ""
	m.errMsg = ""
	m.submitting = false

	switch mode {
	case modeSignup:
		m.fields = []formField{
			{label: "Name", input: newInput("Ada Lovelace", false, 100)},
			{label: "Email", input: newInput("you@example.com", false, 254)},
			{label: "Password", secret: true, input: newInput("password", true, 72)},
			{label: "Question", input: newInput("What was your first pet's name?", false, 200)},
			{label: "Answer", secret: true, input: newInput("answer", true, 200)},
		}
	case modeForgot:
		m.fields = []formField{
			{label: "Email", input: newInput("you@example.com", false, 254)},
		}
	default:
		m.fields = []formField{
			{label: "Email", input: newInput("you@example.com", false, 254)},
			{label: "Password", secret: true, input: newInput("password", true, 72)},
		}
	}

	for i := range m.fields {
		if m.fields[i].label == "Email" {
			m.fields[i].input.SetValue(email)
		}
	}
	m.focus = 0
	m.fields[0].input.Focus()
}

func (m *loginModel) value(label string) string {
	for _, f := range m.fields {
		if f.label == label {
			if f.secret {
				return f.input.Value()
			}
			return strings.TrimSpace(f.input.Value())
		}
	}
	return ""
}

func (m *loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		user := msg.user
		m.user = &user
		return m, tea.Quit

	case securityQuestionMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.question = msg.question
		m.fields[0].input.Blur()
		m.fields = append(m.fields[:1],
			formField{label: "Answer", secret: true, input: newInput("answer", true, 200)},
			formField{label: "New password", secret: true, input: newInput("new password", true, 72)},
		)
		m.focus = 1
		m.fields[1].input.Focus()
		return m, nil

	case passwordResetMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.setMode(modeLogin)
		m.notice = "Password reset. Log in with the new password."
		m.focusField(1)
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, keys.esc):
			if m.mode != modeLogin {
				m.setMode(modeLogin)
			}
			return m, nil
		case key.Matches(msg, keys.signup):
			m.notice = ""
			m.setMode(modeSignup)
			return m, nil
		case key.Matches(msg, keys.forgot):
			m.notice = ""
			m.setMode(modeForgot)
			return m, nil
		case key.Matches(msg, keys.tab):
			m.focusField(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusField(m.focus - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.focus < len(m.fields)-1 {
				m.focusField(m.focus + 1)
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *loginModel) focusField(i int) {
	m.fields[m.focus].input.Blur()
	m.focus = (i + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()
}

func (m *loginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	for _, f := range m.fields {
		if m.value(f.label) == "" {
			m.errMsg = f.label + " is required"
			return nil
		}
	}

	m.errMsg = ""
	m.submitting = true

	ctx, auth := m.ctx, m.auth
	switch {
	case m.mode == modeSignup:
		req := models.SignupRequest{
			Name:             m.value("Name"),
			Email:            m.value("Email"),
			Password:         m.value("Password"),
			SecurityQuestion: m.value("Question"),
			SecurityAnswer:   m.value("Answer"),
		}
		return func() tea.Msg {
			user, err := auth.Signup(ctx, req)
			return authResultMsg{user: user, err: err}
		}
	case m.mode == modeForgot && m.question == "":
		email := m.value("Email")
		return func() tea.Msg {
			question, err := auth.SecurityQuestion(ctx, email)
			return securityQuestionMsg{question: question, err: err}
		}
	case m.mode == modeForgot:
		req := models.ResetPasswordRequest{
			Email:          m.value("Email"),
			SecurityAnswer: m.value("Answer"),
			NewPassword:    m.value("New password"),
		}
		return func() tea.Msg {
			return passwordResetMsg{err: auth.ResetPassword(ctx, req)}
		}
	default:
		req := models.LoginRequest{Email: m.value("Email"), Password: m.value("Password")}
		return func() tea.Msg {
			user, err := auth.Login(ctx, req)
			return authResultMsg{user: user, err: err}
		}
	}
}

func (m *loginModel) View() string {
	var b strings.Builder

	if m.question != "" {
		b.WriteString("Security question: ")
		b.WriteString(m.question)
		b.WriteString("\n\n")
	}

	for _, f := range m.fields {
		b.WriteString(padLabel(f.label))
		b.WriteString(" [")
		b.WriteString(f.input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[please wait...]\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("jobwise " + m.buildInfo.BuildVersion()))

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *loginModel) title() string {
	switch m.mode {
	case modeSignup:
		return "SIGN UP"
	case modeForgot:
		return "RESET PASSWORD"
	}
	return "LOG IN"
}

func (m *loginModel) hotKeys() string {
	if m.mode == modeLogin {
		return "enter: submit │ tab: next field │ ctrl+n: sign up │ ctrl+f: forgot password"
	}
	return "enter: submit │ tab: next field │ esc: back to login"
}

func padLabel(label string) string {
	const width = 13
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}
