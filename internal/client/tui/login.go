package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mogligram/mogligram/internal/client/validation"
)

// loginModel holds the two-field login form. Field errors are recomputed on
// every keystroke, so the user sees the first violated rule while typing.
type loginModel struct {
	identifier textinput.Model
	password   textinput.Model
	focus      int

	identifierErr string
	passwordErr   string

	submitting bool
	submitErr  string
}

func newLoginModel() loginModel {
	id := textinput.New()
	id.Prompt = ""
	id.Placeholder = "email or 10-digit phone"
	id.CharLimit = 254
	id.Width = 40

	pw := textinput.New()
	pw.Prompt = ""
	pw.Placeholder = "password"
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'
	pw.CharLimit = 128
	pw.Width = 40

	return loginModel{identifier: id, password: pw}
}

func (l *loginModel) focusCmd() tea.Cmd {
	l.focus = 0
	l.password.Blur()
	return l.identifier.Focus()
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyDown, tea.KeyShiftTab, tea.KeyUp:
			var cmd tea.Cmd
			if m.login.focus == 0 {
				m.login.focus = 1
				m.login.identifier.Blur()
				cmd = m.login.password.Focus()
			} else {
				m.login.focus = 0
				m.login.password.Blur()
				cmd = m.login.identifier.Focus()
			}
			return m, cmd

		case tea.KeyEnter:
			if m.login.submitting {
				return m, nil
			}
			m.login.validate()
			if m.login.identifierErr != "" || m.login.passwordErr != "" {
				return m, nil
			}
			m.login.submitting = true
			m.login.submitErr = ""
			return m, m.loginCmd(m.login.identifier.Value(), m.login.password.Value())
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.login.identifier, cmd = m.login.identifier.Update(msg)
	cmds = append(cmds, cmd)
	m.login.password, cmd = m.login.password.Update(msg)
	cmds = append(cmds, cmd)

	m.login.validate()
	return m, tea.Batch(cmds...)
}

// validate refreshes the per-field errors. Untouched empty fields stay
// error-free so the form does not open covered in red.
func (l *loginModel) validate() {
	l.identifierErr = ""
	l.passwordErr = ""

	if v := l.identifier.Value(); strings.TrimSpace(v) != "" {
		if _, err := validation.ClassifyIdentifier(v); err != nil {
			l.identifierErr = err.Error()
		}
	}
	if v := l.password.Value(); v != "" {
		if err := validation.ValidatePassword(v); err != nil {
			l.passwordErr = err.Error()
		}
	}
}

func (l loginModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Mogligram — sign in"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Identifier"))
	b.WriteString(l.identifier.View())
	b.WriteString("\n")
	if l.identifierErr != "" {
		b.WriteString(errorStyle.Render("  " + l.identifierErr))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("Password"))
	b.WriteString(l.password.View())
	b.WriteString("\n")
	if l.passwordErr != "" {
		b.WriteString(errorStyle.Render("  " + l.passwordErr))
		b.WriteString("\n")
	}

	if l.submitting {
		b.WriteString("\n" + dimStyle.Render("signing in…"))
	} else if l.submitErr != "" {
		b.WriteString("\n" + errorStyle.Render(l.submitErr))
	}

	b.WriteString(helpStyle.Render("\ntab: switch field • enter: sign in • ctrl+c: quit"))
	return b.String()
}
